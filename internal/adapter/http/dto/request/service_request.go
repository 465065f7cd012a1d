package request

import (
	"hospital_estimate/internal/usecase"
)

type CreateServiceRequest struct {
	Name          string  `json:"name"`
	CategoryID    string  `json:"category_id"`
	CostPrice     float64 `json:"cost_price"`
	MRP           float64 `json:"mrp"`
	IsDailyCharge bool    `json:"is_daily_charge"`
	VisitsPerDay  int     `json:"visits_per_day"`
}

func (r CreateServiceRequest) ToInput() usecase.CreateServiceInput {
	return usecase.CreateServiceInput{
		Name:          r.Name,
		CategoryID:    r.CategoryID,
		CostPrice:     r.CostPrice,
		MRP:           r.MRP,
		IsDailyCharge: r.IsDailyCharge,
		VisitsPerDay:  r.VisitsPerDay,
	}
}

// UpdateServiceRequest uses pointers so absent fields are left untouched.
type UpdateServiceRequest struct {
	Name          *string  `json:"name"`
	CategoryID    *string  `json:"category_id"`
	CostPrice     *float64 `json:"cost_price"`
	MRP           *float64 `json:"mrp"`
	IsDailyCharge *bool    `json:"is_daily_charge"`
	VisitsPerDay  *int     `json:"visits_per_day"`
}

func (r UpdateServiceRequest) ToInput() usecase.UpdateServiceInput {
	return usecase.UpdateServiceInput{
		Name:          r.Name,
		CategoryID:    r.CategoryID,
		CostPrice:     r.CostPrice,
		MRP:           r.MRP,
		IsDailyCharge: r.IsDailyCharge,
		VisitsPerDay:  r.VisitsPerDay,
	}
}
