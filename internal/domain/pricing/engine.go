package pricing

import (
	"fmt"
	"math"
	"strings"

	"hospital_estimate/internal/domain/entities"
)

// Request is the input to an estimate computation.
type Request struct {
	PatientName      string
	PatientUHID      string
	PatientCategory  string
	LengthOfStay     int
	SelectedServices []string
}

// Result is a fully itemized, totaled estimate. The caller attaches
// generated_at/generated_by before sending it out.
type Result struct {
	Patient entities.PatientDetails
	Lines   []entities.EstimateLine
	Summary entities.EstimateSummary
}

// ComputeEstimate prices the selected services for one patient.
//
// The function is pure: no clock, no I/O, no shared state. Identical inputs
// produce identical output, and it either returns a complete result or an
// error, never a partial one.
//
// Per line:
//   - quantity = length_of_stay * visits_per_day for daily charges,
//     visits_per_day for one-time charges
//   - line_total = round2(mrp * quantity)
//   - percentage discounts take round2(line_total * value / 100); flat
//     discounts clamp to line_total so a line can never go negative
//
// Summary values are sums of already-rounded line values; rounding happens
// once per line so totals never drift from what the lines show.
func ComputeEstimate(req Request, catalog Catalog, table DiscountTable) (Result, error) {
	if strings.TrimSpace(req.PatientName) == "" {
		return Result{}, ErrPatientNameRequired
	}
	patientCat, ok := catalog.PatientCategories[req.PatientCategory]
	if !ok {
		return Result{}, ErrUnknownPatientCategory
	}
	if req.LengthOfStay < 1 {
		return Result{}, ErrInvalidLengthOfStay
	}
	if len(req.SelectedServices) == 0 {
		return Result{}, ErrNoServicesSelected
	}

	lines := make([]entities.EstimateLine, 0, len(req.SelectedServices))
	var subtotal, totalDiscount float64

	// Selection order is preserved so the rendered estimate is reviewable
	// against what the user picked.
	for _, id := range req.SelectedServices {
		service, ok := catalog.Services[id]
		if !ok {
			return Result{}, &UnknownServiceError{ID: id}
		}
		category, ok := catalog.ServiceCategories[service.CategoryID]
		if !ok {
			return Result{}, &UnknownServiceCategoryError{ServiceID: service.ID, CategoryID: service.CategoryID}
		}

		quantity := service.VisitsPerDay
		if service.IsDailyCharge {
			quantity = req.LengthOfStay * service.VisitsPerDay
		}
		lineTotal := round2(service.MRP * float64(quantity))

		var discountAmount, discountPercentage float64
		if rule, ok := table.Lookup(patientCat.ID, service.CategoryID); ok {
			switch rule.Type {
			case entities.DiscountTypePercentage:
				discountAmount = round2(lineTotal * rule.Value / 100)
				discountPercentage = round2(rule.Value)
			case entities.DiscountTypeFlat:
				discountAmount = math.Min(rule.Value, lineTotal)
				if lineTotal > 0 {
					discountPercentage = round2(discountAmount / lineTotal * 100)
				}
			}
		}

		lines = append(lines, entities.EstimateLine{
			ServiceName:        service.Name,
			Category:           category.DisplayName,
			UnitDescription:    unitDescription(service, req.LengthOfStay),
			UnitPrice:          service.MRP,
			Quantity:           quantity,
			LineTotal:          lineTotal,
			DiscountPercentage: discountPercentage,
			DiscountAmount:     discountAmount,
			FinalAmount:        round2(lineTotal - discountAmount),
		})

		subtotal += lineTotal
		totalDiscount += discountAmount
	}

	// round2 here only strips float representation noise; the operands are
	// sums of 2dp values.
	subtotal = round2(subtotal)
	totalDiscount = round2(totalDiscount)

	var overallPercentage float64
	if subtotal > 0 {
		overallPercentage = round2(totalDiscount / subtotal * 100)
	}

	uhid := strings.TrimSpace(req.PatientUHID)
	if uhid == "" {
		uhid = "Not provided"
	}

	return Result{
		Patient: entities.PatientDetails{
			Name:         strings.TrimSpace(req.PatientName),
			UHID:         uhid,
			Category:     patientCat.DisplayName,
			LengthOfStay: req.LengthOfStay,
		},
		Lines: lines,
		Summary: entities.EstimateSummary{
			Subtotal:           subtotal,
			TotalDiscount:      totalDiscount,
			DiscountPercentage: overallPercentage,
			FinalTotal:         round2(subtotal - totalDiscount),
		},
	}, nil
}

func unitDescription(s entities.Service, lengthOfStay int) string {
	if s.IsDailyCharge {
		return fmt.Sprintf("%d visits/day × %d days", s.VisitsPerDay, lengthOfStay)
	}
	if s.VisitsPerDay > 1 {
		return fmt.Sprintf("One-time charge × %d visits", s.VisitsPerDay)
	}
	return "One-time charge"
}

// round2 rounds to 2 decimal places, half away from zero. Estimate values
// are non-negative, so this is round-half-up.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
