package response

import (
	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase"
)

type ServiceResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	CategoryID          string  `json:"category_id"`
	CategoryName        string  `json:"category_name"`
	CategoryDisplayName string  `json:"category_display_name"`
	CostPrice           float64 `json:"cost_price"`
	MRP                 float64 `json:"mrp"`
	IsDailyCharge       bool    `json:"is_daily_charge"`
	VisitsPerDay        int     `json:"visits_per_day"`
}

func FromServiceDetail(d usecase.ServiceDetail) ServiceResponse {
	return ServiceResponse{
		ID:                  d.ID,
		Name:                d.Name,
		CategoryID:          d.CategoryID,
		CategoryName:        d.CategoryName,
		CategoryDisplayName: d.CategoryDisplayName,
		CostPrice:           d.CostPrice,
		MRP:                 d.MRP,
		IsDailyCharge:       d.IsDailyCharge,
		VisitsPerDay:        d.VisitsPerDay,
	}
}

func FromServiceDetails(details []usecase.ServiceDetail) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(details))
	for _, d := range details {
		out = append(out, FromServiceDetail(d))
	}
	return out
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

func FromServiceCategories(categories []entities.ServiceCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name, DisplayName: c.DisplayName})
	}
	return out
}

func FromPatientCategories(categories []entities.PatientCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name, DisplayName: c.DisplayName})
	}
	return out
}
