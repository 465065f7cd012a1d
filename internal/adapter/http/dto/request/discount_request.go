package request

import (
	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase"
)

type DiscountRequest struct {
	PatientCategoryID string  `json:"patient_category_id"`
	ServiceCategoryID string  `json:"service_category_id"`
	DiscountType      string  `json:"discount_type"`
	DiscountValue     float64 `json:"discount_value"`
}

func (r DiscountRequest) ToInput() usecase.DiscountInput {
	return usecase.DiscountInput{
		PatientCategoryID: r.PatientCategoryID,
		ServiceCategoryID: r.ServiceCategoryID,
		Type:              entities.DiscountType(r.DiscountType),
		Value:             r.DiscountValue,
	}
}

// UpdateDiscountRequest uses pointers so absent fields are left untouched.
type UpdateDiscountRequest struct {
	PatientCategoryID *string  `json:"patient_category_id"`
	ServiceCategoryID *string  `json:"service_category_id"`
	DiscountType      *string  `json:"discount_type"`
	DiscountValue     *float64 `json:"discount_value"`
}

func (r UpdateDiscountRequest) ToInput() usecase.UpdateDiscountInput {
	input := usecase.UpdateDiscountInput{
		PatientCategoryID: r.PatientCategoryID,
		ServiceCategoryID: r.ServiceCategoryID,
		Value:             r.DiscountValue,
	}
	if r.DiscountType != nil {
		t := entities.DiscountType(*r.DiscountType)
		input.Type = &t
	}
	return input
}
