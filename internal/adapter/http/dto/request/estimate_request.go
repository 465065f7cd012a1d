package request

import (
	"encoding/json"
	"strings"

	"hospital_estimate/internal/domain/pricing"
	"hospital_estimate/internal/usecase"
)

// GenerateEstimateRequest is the estimate-generation payload. Validation of
// the business rules lives in the pricing engine; the DTO only shapes the
// JSON.
type GenerateEstimateRequest struct {
	PatientName      string   `json:"patient_name"`
	PatientUHID      string   `json:"patient_uhid"`
	PatientCategory  string   `json:"patient_category"`
	LengthOfStay     int      `json:"length_of_stay"`
	SelectedServices []string `json:"selected_services"`
}

func (r GenerateEstimateRequest) ToEngineRequest() pricing.Request {
	return pricing.Request{
		PatientName:      strings.TrimSpace(r.PatientName),
		PatientUHID:      strings.TrimSpace(r.PatientUHID),
		PatientCategory:  strings.TrimSpace(r.PatientCategory),
		LengthOfStay:     r.LengthOfStay,
		SelectedServices: r.SelectedServices,
	}
}

type SaveEstimateRequest struct {
	PatientName     string          `json:"patient_name"`
	PatientUHID     string          `json:"patient_uhid"`
	PatientCategory string          `json:"patient_category"`
	LengthOfStay    int             `json:"length_of_stay"`
	EstimateData    json.RawMessage `json:"estimate_data"`
}

func (r SaveEstimateRequest) ToSaveInput() usecase.SaveEstimateInput {
	return usecase.SaveEstimateInput{
		PatientName:     strings.TrimSpace(r.PatientName),
		PatientUHID:     strings.TrimSpace(r.PatientUHID),
		PatientCategory: strings.TrimSpace(r.PatientCategory),
		LengthOfStay:    r.LengthOfStay,
		EstimateData:    r.EstimateData,
	}
}
