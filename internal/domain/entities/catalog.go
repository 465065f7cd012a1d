package entities

import "time"

// ServiceCategory groups billable services and is one half of the discount
// lookup key.
//
// Storage model (DynamoDB):
//   - PK: id
type ServiceCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// PatientCategory is the admission class a patient is billed under (general,
// deluxe, ...). It is the other half of the discount lookup key.
//
// Storage model (DynamoDB):
//   - PK: id
type PatientCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Service is a billable hospital service. Immutable reference data from the
// estimate engine's point of view; administrators maintain it via CRUD.
//
// Monetary representation:
//   - CostPrice is internal and never enters an estimate.
//   - MRP is the unit price charged to the patient.
//
// Billing cadence:
//   - IsDailyCharge services are billed once per day of stay.
//   - VisitsPerDay multiplies the daily (or one-time) quantity.
//
// Storage model (DynamoDB):
//   - PK: id
type Service struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CategoryID    string    `json:"category_id"`
	CostPrice     float64   `json:"cost_price"`
	MRP           float64   `json:"mrp"`
	IsDailyCharge bool      `json:"is_daily_charge"`
	VisitsPerDay  int       `json:"visits_per_day"`
	CreatedAt     time.Time `json:"created_at"`
}
