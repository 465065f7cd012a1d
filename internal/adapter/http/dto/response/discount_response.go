package response

import (
	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase"
)

type DiscountResponse struct {
	ID                     string  `json:"id"`
	PatientCategoryID      string  `json:"patient_category_id"`
	PatientCategoryDisplay string  `json:"patient_category_display"`
	ServiceCategoryID      string  `json:"service_category_id"`
	ServiceCategoryDisplay string  `json:"service_category_display"`
	DiscountType           string  `json:"discount_type"`
	DiscountValue          float64 `json:"discount_value"`
}

func FromDiscountDetail(d usecase.DiscountDetail) DiscountResponse {
	return DiscountResponse{
		ID:                     d.ID,
		PatientCategoryID:      d.PatientCategoryID,
		PatientCategoryDisplay: d.PatientCategoryDisplay,
		ServiceCategoryID:      d.ServiceCategoryID,
		ServiceCategoryDisplay: d.ServiceCategoryDisplay,
		DiscountType:           string(d.Type),
		DiscountValue:          d.Value,
	}
}

func FromDiscountDetails(details []usecase.DiscountDetail) []DiscountResponse {
	out := make([]DiscountResponse, 0, len(details))
	for _, d := range details {
		out = append(out, FromDiscountDetail(d))
	}
	return out
}

func FromDiscount(d entities.Discount) DiscountResponse {
	return DiscountResponse{
		ID:                d.ID,
		PatientCategoryID: d.PatientCategoryID,
		ServiceCategoryID: d.ServiceCategoryID,
		DiscountType:      string(d.Type),
		DiscountValue:     d.Value,
	}
}
