package request

import (
	"testing"

	"hospital_estimate/internal/domain/entities"
)

func TestUpdateDiscountRequest_ToInput(t *testing.T) {
	dt := "flat"
	value := 250.0
	r := UpdateDiscountRequest{DiscountType: &dt, DiscountValue: &value}

	input := r.ToInput()
	if input.Type == nil || *input.Type != entities.DiscountTypeFlat {
		t.Fatalf("expected flat type, got %+v", input.Type)
	}
	if input.Value == nil || *input.Value != 250 {
		t.Fatalf("expected value 250, got %+v", input.Value)
	}
	if input.PatientCategoryID != nil || input.ServiceCategoryID != nil {
		t.Fatalf("expected nil category ids, got %+v", input)
	}

	empty := UpdateDiscountRequest{}
	if got := empty.ToInput(); got.Type != nil || got.Value != nil {
		t.Fatalf("expected all-nil input, got %+v", got)
	}
}
