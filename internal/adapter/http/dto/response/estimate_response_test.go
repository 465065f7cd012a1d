package response

import (
	"encoding/json"
	"testing"
	"time"

	"hospital_estimate/internal/domain/entities"
)

func TestFromSavedEstimateList(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := FromSavedEstimateList([]entities.SavedEstimate{
		{
			ID:                  "se-1",
			EstimateNumber:      "EST007",
			PatientName:         "Asha Rao",
			PatientUHID:         "UH-99",
			PatientCategory:     "general",
			FinalTotal:          1190,
			GeneratedByRole:     entities.RoleManager,
			GeneratedByUsername: "meera",
			CreatedAt:           created,
		},
	})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.TotalAmount != 1190 {
		t.Fatalf("expected total_amount from final total, got %v", row.TotalAmount)
	}
	if row.GeneratedBy != "meera" || row.GeneratedByRole != "manager" {
		t.Fatalf("unexpected attribution: %+v", row)
	}

	if empty := FromSavedEstimateList(nil); len(empty) != 0 {
		t.Fatalf("expected empty slice, got %v", empty)
	}
}

func TestFromSavedEstimate_PreservesSnapshot(t *testing.T) {
	snapshot := json.RawMessage(`{"estimate_lines":[],"summary":{"subtotal":0,"total_discount":0,"discount_percentage":0,"final_total":0}}`)
	resp := FromSavedEstimate(entities.SavedEstimate{
		ID:             "se-1",
		EstimateNumber: "EST007",
		LengthOfStay:   4,
		EstimateData:   snapshot,
	})

	if string(resp.EstimateData) != string(snapshot) {
		t.Fatalf("expected snapshot passed through untouched")
	}
	if resp.LengthOfStay != 4 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
