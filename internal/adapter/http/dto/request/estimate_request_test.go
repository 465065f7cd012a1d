package request

import (
	"testing"
)

func TestGenerateEstimateRequest_ToEngineRequest(t *testing.T) {
	r := GenerateEstimateRequest{
		PatientName:      "  Asha Rao  ",
		PatientUHID:      " UH-99 ",
		PatientCategory:  " general ",
		LengthOfStay:     3,
		SelectedServices: []string{"svc-1", "svc-2"},
	}

	req := r.ToEngineRequest()
	if req.PatientName != "Asha Rao" || req.PatientUHID != "UH-99" || req.PatientCategory != "general" {
		t.Fatalf("expected trimmed fields, got %+v", req)
	}
	if req.LengthOfStay != 3 || len(req.SelectedServices) != 2 {
		t.Fatalf("unexpected request: %+v", req)
	}
}
