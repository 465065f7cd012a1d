package response

import (
	"encoding/json"
	"time"

	"hospital_estimate/internal/domain/entities"
)

type SaveEstimateResponse struct {
	Message        string `json:"message"`
	EstimateNumber string `json:"estimate_number"`
	EstimateID     string `json:"estimate_id"`
}

func FromSavedEstimateRef(e entities.SavedEstimate) SaveEstimateResponse {
	return SaveEstimateResponse{
		Message:        "Estimate saved successfully",
		EstimateNumber: e.EstimateNumber,
		EstimateID:     e.ID,
	}
}

// SavedEstimateListItem is a row of the saved-estimates listing; the full
// snapshot is fetched per id.
type SavedEstimateListItem struct {
	ID              string    `json:"id"`
	EstimateNumber  string    `json:"estimate_number"`
	PatientName     string    `json:"patient_name"`
	PatientUHID     string    `json:"patient_uhid"`
	PatientCategory string    `json:"patient_category"`
	TotalAmount     float64   `json:"total_amount"`
	GeneratedByRole string    `json:"generated_by_role"`
	GeneratedBy     string    `json:"generated_by"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromSavedEstimateList(estimates []entities.SavedEstimate) []SavedEstimateListItem {
	items := make([]SavedEstimateListItem, 0, len(estimates))
	for _, e := range estimates {
		items = append(items, SavedEstimateListItem{
			ID:              e.ID,
			EstimateNumber:  e.EstimateNumber,
			PatientName:     e.PatientName,
			PatientUHID:     e.PatientUHID,
			PatientCategory: e.PatientCategory,
			TotalAmount:     e.FinalTotal,
			GeneratedByRole: string(e.GeneratedByRole),
			GeneratedBy:     e.GeneratedByUsername,
			CreatedAt:       e.CreatedAt,
		})
	}
	return items
}

type SavedEstimateResponse struct {
	ID              string          `json:"id"`
	EstimateNumber  string          `json:"estimate_number"`
	PatientName     string          `json:"patient_name"`
	PatientUHID     string          `json:"patient_uhid"`
	PatientCategory string          `json:"patient_category"`
	LengthOfStay    int             `json:"length_of_stay"`
	Subtotal        float64         `json:"subtotal"`
	TotalDiscount   float64         `json:"total_discount"`
	FinalTotal      float64         `json:"final_total"`
	GeneratedByRole string          `json:"generated_by_role"`
	GeneratedBy     string          `json:"generated_by"`
	EstimateData    json.RawMessage `json:"estimate_data"`
	CreatedAt       time.Time       `json:"created_at"`
}

func FromSavedEstimate(e entities.SavedEstimate) SavedEstimateResponse {
	return SavedEstimateResponse{
		ID:              e.ID,
		EstimateNumber:  e.EstimateNumber,
		PatientName:     e.PatientName,
		PatientUHID:     e.PatientUHID,
		PatientCategory: e.PatientCategory,
		LengthOfStay:    e.LengthOfStay,
		Subtotal:        e.Subtotal,
		TotalDiscount:   e.TotalDiscount,
		FinalTotal:      e.FinalTotal,
		GeneratedByRole: string(e.GeneratedByRole),
		GeneratedBy:     e.GeneratedByUsername,
		EstimateData:    e.EstimateData,
		CreatedAt:       e.CreatedAt,
	}
}
