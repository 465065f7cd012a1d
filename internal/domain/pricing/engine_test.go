package pricing

import (
	"errors"
	"reflect"
	"testing"

	"hospital_estimate/internal/domain/entities"
)

func testCatalog() Catalog {
	return NewCatalog(
		[]entities.Service{
			{ID: "svc-nursing", Name: "Nursing Care", CategoryID: "cat-nursing", MRP: 100, IsDailyCharge: true, VisitsPerDay: 2},
			{ID: "svc-xray", Name: "Chest X-Ray", CategoryID: "cat-radiology", MRP: 250, IsDailyCharge: false, VisitsPerDay: 1},
			{ID: "svc-physio", Name: "Physiotherapy", CategoryID: "cat-procedures", MRP: 150, IsDailyCharge: false, VisitsPerDay: 3},
		},
		[]entities.ServiceCategory{
			{ID: "cat-nursing", Name: "nursing", DisplayName: "Nursing"},
			{ID: "cat-radiology", Name: "radiology", DisplayName: "Radiology"},
			{ID: "cat-procedures", Name: "procedures", DisplayName: "Procedures"},
		},
		[]entities.PatientCategory{
			{ID: "pc-general", Name: "general", DisplayName: "General"},
			{ID: "pc-deluxe", Name: "deluxe", DisplayName: "Deluxe"},
		},
	)
}

func mustTable(t *testing.T, rows []entities.Discount) DiscountTable {
	t.Helper()
	table, err := NewDiscountTable(rows)
	if err != nil {
		t.Fatalf("unexpected table error: %v", err)
	}
	return table
}

func validRequest() Request {
	return Request{
		PatientName:      "Asha Rao",
		PatientUHID:      "UH-1001",
		PatientCategory:  "general",
		LengthOfStay:     3,
		SelectedServices: []string{"svc-nursing"},
	}
}

func TestComputeEstimate_Validation(t *testing.T) {
	catalog := testCatalog()
	table := mustTable(t, nil)

	t.Run("patient name required", func(t *testing.T) {
		req := validRequest()
		req.PatientName = "   "
		_, err := ComputeEstimate(req, catalog, table)
		if !errors.Is(err, ErrPatientNameRequired) {
			t.Fatalf("expected ErrPatientNameRequired, got %v", err)
		}
	})

	t.Run("unknown patient category", func(t *testing.T) {
		req := validRequest()
		req.PatientCategory = "royal"
		_, err := ComputeEstimate(req, catalog, table)
		if !errors.Is(err, ErrUnknownPatientCategory) {
			t.Fatalf("expected ErrUnknownPatientCategory, got %v", err)
		}
	})

	t.Run("invalid length of stay", func(t *testing.T) {
		req := validRequest()
		req.LengthOfStay = 0
		_, err := ComputeEstimate(req, catalog, table)
		if !errors.Is(err, ErrInvalidLengthOfStay) {
			t.Fatalf("expected ErrInvalidLengthOfStay, got %v", err)
		}
	})

	t.Run("no services selected", func(t *testing.T) {
		req := validRequest()
		req.SelectedServices = nil
		_, err := ComputeEstimate(req, catalog, table)
		if !errors.Is(err, ErrNoServicesSelected) {
			t.Fatalf("expected ErrNoServicesSelected, got %v", err)
		}
	})

	t.Run("unknown service id fails fast", func(t *testing.T) {
		req := validRequest()
		req.SelectedServices = []string{"svc-nursing", "svc-missing", "svc-xray"}
		res, err := ComputeEstimate(req, catalog, table)
		var unknown *UnknownServiceError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected UnknownServiceError, got %v", err)
		}
		if unknown.ID != "svc-missing" {
			t.Fatalf("expected first unresolvable id, got %q", unknown.ID)
		}
		if unknown.Error() != "unknown service id: svc-missing" {
			t.Fatalf("unexpected message: %q", unknown.Error())
		}
		if len(res.Lines) != 0 {
			t.Fatalf("expected no partial result, got %d lines", len(res.Lines))
		}
	})
}

func TestComputeEstimate_Quantities(t *testing.T) {
	catalog := testCatalog()
	table := mustTable(t, nil)

	t.Run("daily charge scales with stay and visits", func(t *testing.T) {
		req := validRequest() // nursing: daily, 2 visits/day, mrp 100, stay 3
		res, err := ComputeEstimate(req, catalog, table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line := res.Lines[0]
		if line.Quantity != 6 {
			t.Fatalf("expected quantity 6, got %d", line.Quantity)
		}
		if line.LineTotal != 600.00 {
			t.Fatalf("expected line_total 600.00, got %v", line.LineTotal)
		}
		if line.UnitDescription != "2 visits/day × 3 days" {
			t.Fatalf("unexpected unit description: %q", line.UnitDescription)
		}
	})

	t.Run("one-time charge ignores stay length", func(t *testing.T) {
		for _, stay := range []int{1, 7, 45} {
			req := validRequest()
			req.LengthOfStay = stay
			req.SelectedServices = []string{"svc-xray"}
			res, err := ComputeEstimate(req, catalog, table)
			if err != nil {
				t.Fatalf("stay %d: unexpected error: %v", stay, err)
			}
			line := res.Lines[0]
			if line.Quantity != 1 || line.LineTotal != 250.00 {
				t.Fatalf("stay %d: expected quantity 1 total 250.00, got %d/%v", stay, line.Quantity, line.LineTotal)
			}
			if line.UnitDescription != "One-time charge" {
				t.Fatalf("unexpected unit description: %q", line.UnitDescription)
			}
		}
	})

	t.Run("one-time charge scales with visit count only", func(t *testing.T) {
		req := validRequest()
		req.LengthOfStay = 10
		req.SelectedServices = []string{"svc-physio"} // 3 visits, mrp 150
		res, err := ComputeEstimate(req, catalog, table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line := res.Lines[0]
		if line.Quantity != 3 || line.LineTotal != 450.00 {
			t.Fatalf("expected quantity 3 total 450.00, got %d/%v", line.Quantity, line.LineTotal)
		}
		if line.UnitDescription != "One-time charge × 3 visits" {
			t.Fatalf("unexpected unit description: %q", line.UnitDescription)
		}
	})
}

func TestComputeEstimate_Discounts(t *testing.T) {
	catalog := testCatalog()

	t.Run("percentage discount", func(t *testing.T) {
		table := mustTable(t, []entities.Discount{
			{ID: "d1", PatientCategoryID: "pc-general", ServiceCategoryID: "cat-nursing", Type: entities.DiscountTypePercentage, Value: 10},
		})
		res, err := ComputeEstimate(validRequest(), catalog, table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line := res.Lines[0]
		if line.DiscountAmount != 60.00 || line.DiscountPercentage != 10 {
			t.Fatalf("expected 60.00 at 10%%, got %v at %v", line.DiscountAmount, line.DiscountPercentage)
		}
		if line.FinalAmount != 540.00 {
			t.Fatalf("expected final 540.00, got %v", line.FinalAmount)
		}
	})

	t.Run("flat discount clamps to line total", func(t *testing.T) {
		table := mustTable(t, []entities.Discount{
			{ID: "d1", PatientCategoryID: "pc-general", ServiceCategoryID: "cat-radiology", Type: entities.DiscountTypeFlat, Value: 500},
		})
		req := validRequest()
		req.SelectedServices = []string{"svc-xray"} // line_total 250
		res, err := ComputeEstimate(req, catalog, table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line := res.Lines[0]
		if line.DiscountAmount != 250.00 {
			t.Fatalf("expected clamped discount 250.00, got %v", line.DiscountAmount)
		}
		if line.FinalAmount != 0.00 {
			t.Fatalf("expected final 0.00, got %v", line.FinalAmount)
		}
		if line.DiscountPercentage != 100.00 {
			t.Fatalf("expected derived percentage 100, got %v", line.DiscountPercentage)
		}
	})

	t.Run("flat discount below line total", func(t *testing.T) {
		table := mustTable(t, []entities.Discount{
			{ID: "d1", PatientCategoryID: "pc-general", ServiceCategoryID: "cat-radiology", Type: entities.DiscountTypeFlat, Value: 50},
		})
		req := validRequest()
		req.SelectedServices = []string{"svc-xray"}
		res, err := ComputeEstimate(req, catalog, table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line := res.Lines[0]
		if line.DiscountAmount != 50.00 || line.FinalAmount != 200.00 {
			t.Fatalf("expected 50.00/200.00, got %v/%v", line.DiscountAmount, line.FinalAmount)
		}
		if line.DiscountPercentage != 20.00 {
			t.Fatalf("expected derived percentage 20, got %v", line.DiscountPercentage)
		}
	})

	t.Run("absent rule means zero discount", func(t *testing.T) {
		table := mustTable(t, []entities.Discount{
			{ID: "d1", PatientCategoryID: "pc-deluxe", ServiceCategoryID: "cat-nursing", Type: entities.DiscountTypePercentage, Value: 25},
		})
		res, err := ComputeEstimate(validRequest(), catalog, table) // general, not deluxe
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line := res.Lines[0]
		if line.DiscountAmount != 0 || line.DiscountPercentage != 0 {
			t.Fatalf("expected no discount, got %v at %v", line.DiscountAmount, line.DiscountPercentage)
		}
		if line.FinalAmount != line.LineTotal {
			t.Fatalf("expected final == line_total, got %v/%v", line.FinalAmount, line.LineTotal)
		}
	})

	t.Run("percentage rounds half up per line", func(t *testing.T) {
		// 3 visits × 150 = 450; 3.33% of 450 = 14.985 -> 14.99
		table := mustTable(t, []entities.Discount{
			{ID: "d1", PatientCategoryID: "pc-general", ServiceCategoryID: "cat-procedures", Type: entities.DiscountTypePercentage, Value: 3.33},
		})
		req := validRequest()
		req.SelectedServices = []string{"svc-physio"}
		res, err := ComputeEstimate(req, catalog, table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		line := res.Lines[0]
		if line.DiscountAmount != 14.99 {
			t.Fatalf("expected 14.99, got %v", line.DiscountAmount)
		}
		if line.FinalAmount != 435.01 {
			t.Fatalf("expected 435.01, got %v", line.FinalAmount)
		}
	})
}

func TestComputeEstimate_Rollup(t *testing.T) {
	catalog := testCatalog()
	table := mustTable(t, []entities.Discount{
		{ID: "d1", PatientCategoryID: "pc-general", ServiceCategoryID: "cat-nursing", Type: entities.DiscountTypePercentage, Value: 10},
		{ID: "d2", PatientCategoryID: "pc-general", ServiceCategoryID: "cat-radiology", Type: entities.DiscountTypeFlat, Value: 50},
	})

	req := validRequest()
	req.SelectedServices = []string{"svc-nursing", "svc-xray", "svc-physio"}
	res, err := ComputeEstimate(req, catalog, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(res.Lines))
	}
	// Order of lines follows order of selection.
	if res.Lines[0].ServiceName != "Nursing Care" || res.Lines[1].ServiceName != "Chest X-Ray" || res.Lines[2].ServiceName != "Physiotherapy" {
		t.Fatalf("lines out of selection order: %+v", res.Lines)
	}

	var subtotal, discount float64
	for _, line := range res.Lines {
		if line.DiscountAmount < 0 || line.DiscountAmount > line.LineTotal {
			t.Fatalf("discount out of range on %s: %v/%v", line.ServiceName, line.DiscountAmount, line.LineTotal)
		}
		if line.FinalAmount != round2(line.LineTotal-line.DiscountAmount) {
			t.Fatalf("final amount mismatch on %s", line.ServiceName)
		}
		subtotal += line.LineTotal
		discount += line.DiscountAmount
	}
	if res.Summary.Subtotal != round2(subtotal) {
		t.Fatalf("subtotal %v != sum of lines %v", res.Summary.Subtotal, subtotal)
	}
	if res.Summary.TotalDiscount != round2(discount) {
		t.Fatalf("total_discount %v != sum of lines %v", res.Summary.TotalDiscount, discount)
	}
	if res.Summary.FinalTotal != round2(res.Summary.Subtotal-res.Summary.TotalDiscount) {
		t.Fatalf("final_total %v != subtotal - total_discount", res.Summary.FinalTotal)
	}
	// 600 + 250 + 450 = 1300; discount 60 + 50 = 110
	if res.Summary.Subtotal != 1300.00 || res.Summary.TotalDiscount != 110.00 || res.Summary.FinalTotal != 1190.00 {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}
	if res.Summary.DiscountPercentage != 8.46 { // 110/1300*100 = 8.4615...
		t.Fatalf("expected overall percentage 8.46, got %v", res.Summary.DiscountPercentage)
	}
}

func TestComputeEstimate_PatientDetails(t *testing.T) {
	catalog := testCatalog()
	table := mustTable(t, nil)

	t.Run("uhid defaults when blank", func(t *testing.T) {
		req := validRequest()
		req.PatientUHID = "  "
		res, err := ComputeEstimate(req, catalog, table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Patient.UHID != "Not provided" {
			t.Fatalf("expected placeholder uhid, got %q", res.Patient.UHID)
		}
	})

	t.Run("category resolves to display name", func(t *testing.T) {
		res, err := ComputeEstimate(validRequest(), catalog, table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Patient.Category != "General" {
			t.Fatalf("expected display name, got %q", res.Patient.Category)
		}
		if res.Patient.Name != "Asha Rao" || res.Patient.LengthOfStay != 3 {
			t.Fatalf("unexpected patient details: %+v", res.Patient)
		}
	})
}

func TestComputeEstimate_Deterministic(t *testing.T) {
	catalog := testCatalog()
	table := mustTable(t, []entities.Discount{
		{ID: "d1", PatientCategoryID: "pc-general", ServiceCategoryID: "cat-nursing", Type: entities.DiscountTypePercentage, Value: 12.5},
	})
	req := validRequest()
	req.SelectedServices = []string{"svc-nursing", "svc-xray"}

	first, err := ComputeEstimate(req, catalog, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeEstimate(req, catalog, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got\n%+v\n%+v", first, second)
	}
}

func TestNewDiscountTable_DuplicatePair(t *testing.T) {
	_, err := NewDiscountTable([]entities.Discount{
		{ID: "d1", PatientCategoryID: "pc-general", ServiceCategoryID: "cat-nursing", Type: entities.DiscountTypePercentage, Value: 10},
		{ID: "d2", PatientCategoryID: "pc-general", ServiceCategoryID: "cat-nursing", Type: entities.DiscountTypeFlat, Value: 25},
	})
	var dup *DuplicateDiscountError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateDiscountError, got %v", err)
	}
	if dup.PatientCategoryID != "pc-general" || dup.ServiceCategoryID != "cat-nursing" {
		t.Fatalf("unexpected duplicate pair: %+v", dup)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2.005, 2.01},
		{2.004, 2.0},
		{14.985, 14.99},
		{0, 0},
		{599.999, 600.0},
	}
	for _, tc := range cases {
		if got := round2(tc.in); got != tc.want {
			t.Fatalf("round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
