package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital_estimate/internal/adapter/http/handlers/mocks"
	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDiscountHandler_ListDiscounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDiscountUseCase(ctrl)
	uc.EXPECT().ListDiscounts(gomock.Any()).Return([]usecase.DiscountDetail{
		{
			Discount: entities.Discount{
				ID: "d-1", PatientCategoryID: "pc-charity", ServiceCategoryID: "sc-lab",
				Type: entities.DiscountTypePercentage, Value: 50,
			},
			PatientCategoryDisplay: "Charity",
			ServiceCategoryDisplay: "Laboratory",
		},
	}, nil)
	h := NewDiscountHandler(uc)

	r := gin.New()
	r.GET("/api/discounts", h.ListDiscounts)

	req := httptest.NewRequest(http.MethodGet, "/api/discounts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var rows []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %v", rows)
	}
	row := rows[0]
	if row["patient_category_display"] != "Charity" || row["discount_type"] != "percentage" || row["discount_value"] != 50.0 {
		t.Fatalf("unexpected row: %v", row)
	}
}

func TestDiscountHandler_UpsertDiscount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDiscountUseCase(ctrl)
		uc.EXPECT().Upsert(gomock.Any(), usecase.DiscountInput{
			PatientCategoryID: "pc-1", ServiceCategoryID: "sc-1",
			Type: entities.DiscountTypePercentage, Value: 15,
		}).Return(entities.Discount{ID: "d-1", Type: entities.DiscountTypePercentage, Value: 15}, true, nil)
		h := NewDiscountHandler(uc)

		r := gin.New()
		r.POST("/api/discounts", h.UpsertDiscount)

		body := `{"patient_category_id":"pc-1","service_category_id":"sc-1","discount_type":"percentage","discount_value":15}`
		req := httptest.NewRequest(http.MethodPost, "/api/discounts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("overwrite returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDiscountUseCase(ctrl)
		uc.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			Return(entities.Discount{ID: "d-1"}, false, nil)
		h := NewDiscountHandler(uc)

		r := gin.New()
		r.POST("/api/discounts", h.UpsertDiscount)

		body := `{"patient_category_id":"pc-1","service_category_id":"sc-1","discount_type":"flat","discount_value":500}`
		req := httptest.NewRequest(http.MethodPost, "/api/discounts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid value maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDiscountUseCase(ctrl)
		uc.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			Return(entities.Discount{}, false, usecase.ErrInvalidDiscountValue)
		h := NewDiscountHandler(uc)

		r := gin.New()
		r.POST("/api/discounts", h.UpsertDiscount)

		body := `{"patient_category_id":"pc-1","service_category_id":"sc-1","discount_type":"percentage","discount_value":150}`
		req := httptest.NewRequest(http.MethodPost, "/api/discounts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDiscountHandler_UpdateDiscount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pair conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDiscountUseCase(ctrl)
		uc.EXPECT().UpdateByID(gomock.Any(), "d-1", gomock.Any()).
			Return(entities.Discount{}, usecase.ErrDiscountPairExists)
		h := NewDiscountHandler(uc)

		r := gin.New()
		r.PUT("/api/discounts/:id", h.UpdateDiscount)

		req := httptest.NewRequest(http.MethodPut, "/api/discounts/d-1", bytes.NewBufferString(`{"patient_category_id":"pc-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDiscountUseCase(ctrl)
		uc.EXPECT().UpdateByID(gomock.Any(), "d-gone", gomock.Any()).
			Return(entities.Discount{}, usecase.ErrDiscountNotFound)
		h := NewDiscountHandler(uc)

		r := gin.New()
		r.PUT("/api/discounts/:id", h.UpdateDiscount)

		req := httptest.NewRequest(http.MethodPut, "/api/discounts/d-gone", bytes.NewBufferString(`{"discount_value":20}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDiscountHandler_DeleteDiscount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDiscountUseCase(ctrl)
	uc.EXPECT().DeleteByID(gomock.Any(), "d-1").Return(nil)
	h := NewDiscountHandler(uc)

	r := gin.New()
	r.DELETE("/api/discounts/:id", h.DeleteDiscount)

	req := httptest.NewRequest(http.MethodDelete, "/api/discounts/d-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
