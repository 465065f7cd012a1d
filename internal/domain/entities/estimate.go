package entities

import (
	"encoding/json"
	"time"
)

// EstimateLine is one priced, discounted row of a computed estimate. Lines
// are derived by the pricing engine and never stored on their own; a saved
// estimate snapshots them inside its EstimateData document.
type EstimateLine struct {
	ServiceName        string  `json:"service_name"`
	Category           string  `json:"category"`
	UnitDescription    string  `json:"unit_description"`
	UnitPrice          float64 `json:"unit_price"`
	Quantity           int     `json:"quantity"`
	LineTotal          float64 `json:"line_total"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DiscountAmount     float64 `json:"discount_amount"`
	FinalAmount        float64 `json:"final_amount"`
}

// EstimateSummary is the rollup over a set of estimate lines.
//
// Invariants:
//   - Subtotal and TotalDiscount are sums of already-rounded line values.
//   - FinalTotal = Subtotal - TotalDiscount.
type EstimateSummary struct {
	Subtotal           float64 `json:"subtotal"`
	TotalDiscount      float64 `json:"total_discount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	FinalTotal         float64 `json:"final_total"`
}

// PatientDetails echoes the patient information an estimate was computed for.
type PatientDetails struct {
	Name         string `json:"name"`
	UHID         string `json:"uhid"`
	Category     string `json:"category"`
	LengthOfStay int    `json:"length_of_stay"`
}

// EstimateDocument is the full invoice-shaped result returned by
// generate-estimate and snapshotted by save-estimate. GeneratedAt and
// GeneratedBy are stamped outside the pure computation.
type EstimateDocument struct {
	PatientDetails PatientDetails  `json:"patient_details"`
	EstimateLines  []EstimateLine  `json:"estimate_lines"`
	Summary        EstimateSummary `json:"summary"`
	GeneratedAt    string          `json:"generated_at"`
	GeneratedBy    string          `json:"generated_by"`
}

// SavedEstimate is a persisted snapshot of a computed estimate. Created on
// save, never mutated, retained for reporting and printing.
//
// Storage model (DynamoDB):
//   - PK: id
//   - EstimateNumber comes from an atomic counter so it stays unique under
//     concurrent saves.
type SavedEstimate struct {
	ID                  string          `json:"id"`
	EstimateNumber      string          `json:"estimate_number"`
	PatientName         string          `json:"patient_name"`
	PatientUHID         string          `json:"patient_uhid"`
	PatientCategory     string          `json:"patient_category"`
	LengthOfStay        int             `json:"length_of_stay"`
	Subtotal            float64         `json:"subtotal"`
	TotalDiscount       float64         `json:"total_discount"`
	FinalTotal          float64         `json:"final_total"`
	GeneratedByRole     Role            `json:"generated_by_role"`
	GeneratedByUserID   string          `json:"generated_by_user_id"`
	GeneratedByUsername string          `json:"generated_by"`
	EstimateData        json.RawMessage `json:"estimate_data"`
	CreatedAt           time.Time       `json:"created_at"`
}
