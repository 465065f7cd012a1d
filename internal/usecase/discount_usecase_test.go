package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital_estimate/internal/domain/entities"
	mock_interfaces "hospital_estimate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type discountMocks struct {
	discounts         *mock_interfaces.MockIDiscountRepository
	serviceCategories *mock_interfaces.MockIServiceCategoryRepository
	patientCategories *mock_interfaces.MockIPatientCategoryRepository
}

func newDiscountUseCaseWithMocks(t *testing.T) (*DiscountUseCase, discountMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := discountMocks{
		discounts:         mock_interfaces.NewMockIDiscountRepository(ctrl),
		serviceCategories: mock_interfaces.NewMockIServiceCategoryRepository(ctrl),
		patientCategories: mock_interfaces.NewMockIPatientCategoryRepository(ctrl),
	}
	return NewDiscountUseCase(m.discounts, m.serviceCategories, m.patientCategories), m
}

func TestDiscountUseCase_ListDiscounts(t *testing.T) {
	uc, m := newDiscountUseCaseWithMocks(t)
	m.discounts.EXPECT().List(gomock.Any()).Return([]entities.Discount{
		{ID: "d-1", PatientCategoryID: "pc-charity", ServiceCategoryID: "sc-lab", Type: entities.DiscountTypePercentage, Value: 50},
	}, nil)
	m.serviceCategories.EXPECT().List(gomock.Any()).Return([]entities.ServiceCategory{
		{ID: "sc-lab", Name: "laboratory", DisplayName: "Laboratory"},
	}, nil)
	m.patientCategories.EXPECT().List(gomock.Any()).Return([]entities.PatientCategory{
		{ID: "pc-charity", Name: "charity", DisplayName: "Charity"},
	}, nil)

	details, err := uc.ListDiscounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 discount, got %d", len(details))
	}
	d := details[0]
	if d.PatientCategoryDisplay != "Charity" || d.ServiceCategoryDisplay != "Laboratory" {
		t.Fatalf("unexpected denormalized names: %+v", d)
	}
}

func TestDiscountUseCase_Upsert(t *testing.T) {
	t.Run("missing category ids", func(t *testing.T) {
		uc, _ := newDiscountUseCaseWithMocks(t)
		_, _, err := uc.Upsert(context.Background(), DiscountInput{Type: entities.DiscountTypeFlat, Value: 100})
		if !errors.Is(err, ErrInvalidDiscountInput) {
			t.Fatalf("expected ErrInvalidDiscountInput, got %v", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc, _ := newDiscountUseCaseWithMocks(t)
		_, _, err := uc.Upsert(context.Background(), DiscountInput{
			PatientCategoryID: "pc-1", ServiceCategoryID: "sc-1",
			Type: entities.DiscountType("bogus"), Value: 10,
		})
		if !errors.Is(err, ErrInvalidDiscountType) {
			t.Fatalf("expected ErrInvalidDiscountType, got %v", err)
		}
	})

	t.Run("percentage above 100 rejected", func(t *testing.T) {
		uc, _ := newDiscountUseCaseWithMocks(t)
		_, _, err := uc.Upsert(context.Background(), DiscountInput{
			PatientCategoryID: "pc-1", ServiceCategoryID: "sc-1",
			Type: entities.DiscountTypePercentage, Value: 120,
		})
		if !errors.Is(err, ErrInvalidDiscountValue) {
			t.Fatalf("expected ErrInvalidDiscountValue, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc, m := newDiscountUseCaseWithMocks(t)
		m.patientCategories.EXPECT().GetByID(gomock.Any(), "pc-gone").Return(entities.PatientCategory{}, nil)
		m.serviceCategories.EXPECT().GetByID(gomock.Any(), "sc-1").
			Return(entities.ServiceCategory{ID: "sc-1"}, nil)

		_, _, err := uc.Upsert(context.Background(), DiscountInput{
			PatientCategoryID: "pc-gone", ServiceCategoryID: "sc-1",
			Type: entities.DiscountTypeFlat, Value: 100,
		})
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("creates a new rule", func(t *testing.T) {
		uc, m := newDiscountUseCaseWithMocks(t)
		m.patientCategories.EXPECT().GetByID(gomock.Any(), "pc-1").Return(entities.PatientCategory{ID: "pc-1"}, nil)
		m.serviceCategories.EXPECT().GetByID(gomock.Any(), "sc-1").Return(entities.ServiceCategory{ID: "sc-1"}, nil)
		m.discounts.EXPECT().GetByPair(gomock.Any(), "pc-1", "sc-1").Return(entities.Discount{}, nil)
		m.discounts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Discount{})).DoAndReturn(
			func(_ context.Context, d entities.Discount) (entities.Discount, error) {
				if d.ID == "" {
					t.Fatalf("expected generated id")
				}
				return d, nil
			},
		)

		d, created, err := uc.Upsert(context.Background(), DiscountInput{
			PatientCategoryID: "pc-1", ServiceCategoryID: "sc-1",
			Type: entities.DiscountTypePercentage, Value: 15,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Fatalf("expected created=true")
		}
		if d.Value != 15 {
			t.Fatalf("unexpected rule: %+v", d)
		}
	})

	t.Run("overwrites the existing rule for the pair", func(t *testing.T) {
		uc, m := newDiscountUseCaseWithMocks(t)
		m.patientCategories.EXPECT().GetByID(gomock.Any(), "pc-1").Return(entities.PatientCategory{ID: "pc-1"}, nil)
		m.serviceCategories.EXPECT().GetByID(gomock.Any(), "sc-1").Return(entities.ServiceCategory{ID: "sc-1"}, nil)
		m.discounts.EXPECT().GetByPair(gomock.Any(), "pc-1", "sc-1").Return(entities.Discount{
			ID: "d-1", PatientCategoryID: "pc-1", ServiceCategoryID: "sc-1",
			Type: entities.DiscountTypePercentage, Value: 10,
		}, nil)
		m.discounts.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Discount{})).DoAndReturn(
			func(_ context.Context, d entities.Discount) (entities.Discount, error) {
				if d.ID != "d-1" {
					t.Fatalf("expected update of d-1, got %q", d.ID)
				}
				return d, nil
			},
		)

		d, created, err := uc.Upsert(context.Background(), DiscountInput{
			PatientCategoryID: "pc-1", ServiceCategoryID: "sc-1",
			Type: entities.DiscountTypeFlat, Value: 500,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created {
			t.Fatalf("expected created=false")
		}
		if d.Type != entities.DiscountTypeFlat || d.Value != 500 {
			t.Fatalf("expected overwritten rule, got %+v", d)
		}
	})
}

func TestDiscountUseCase_UpdateByID(t *testing.T) {
	stored := entities.Discount{
		ID: "d-1", PatientCategoryID: "pc-1", ServiceCategoryID: "sc-1",
		Type: entities.DiscountTypePercentage, Value: 10,
	}

	t.Run("not found", func(t *testing.T) {
		uc, m := newDiscountUseCaseWithMocks(t)
		m.discounts.EXPECT().GetByID(gomock.Any(), "d-gone").Return(entities.Discount{}, nil)

		_, err := uc.UpdateByID(context.Background(), "d-gone", UpdateDiscountInput{})
		if !errors.Is(err, ErrDiscountNotFound) {
			t.Fatalf("expected ErrDiscountNotFound, got %v", err)
		}
	})

	t.Run("value change keeps pair untouched", func(t *testing.T) {
		uc, m := newDiscountUseCaseWithMocks(t)
		m.discounts.EXPECT().GetByID(gomock.Any(), "d-1").Return(stored, nil)
		m.discounts.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Discount{})).DoAndReturn(
			func(_ context.Context, d entities.Discount) (entities.Discount, error) {
				return d, nil
			},
		)

		value := 25.0
		d, err := uc.UpdateByID(context.Background(), "d-1", UpdateDiscountInput{Value: &value})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Value != 25 || d.PatientCategoryID != "pc-1" {
			t.Fatalf("unexpected rule: %+v", d)
		}
	})

	t.Run("moving onto a covered pair refused", func(t *testing.T) {
		uc, m := newDiscountUseCaseWithMocks(t)
		m.discounts.EXPECT().GetByID(gomock.Any(), "d-1").Return(stored, nil)
		m.discounts.EXPECT().GetByPair(gomock.Any(), "pc-2", "sc-1").
			Return(entities.Discount{ID: "d-2"}, nil)

		pc := "pc-2"
		_, err := uc.UpdateByID(context.Background(), "d-1", UpdateDiscountInput{PatientCategoryID: &pc})
		if !errors.Is(err, ErrDiscountPairExists) {
			t.Fatalf("expected ErrDiscountPairExists, got %v", err)
		}
	})

	t.Run("pair check tolerates finding itself", func(t *testing.T) {
		uc, m := newDiscountUseCaseWithMocks(t)
		m.discounts.EXPECT().GetByID(gomock.Any(), "d-1").Return(stored, nil)
		m.discounts.EXPECT().GetByPair(gomock.Any(), "pc-1", "sc-1").Return(stored, nil)
		m.discounts.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Discount{})).DoAndReturn(
			func(_ context.Context, d entities.Discount) (entities.Discount, error) {
				return d, nil
			},
		)

		pc := "pc-1"
		if _, err := uc.UpdateByID(context.Background(), "d-1", UpdateDiscountInput{PatientCategoryID: &pc}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("resulting rule is validated", func(t *testing.T) {
		uc, m := newDiscountUseCaseWithMocks(t)
		m.discounts.EXPECT().GetByID(gomock.Any(), "d-1").Return(stored, nil)

		value := 150.0
		_, err := uc.UpdateByID(context.Background(), "d-1", UpdateDiscountInput{Value: &value})
		if !errors.Is(err, ErrInvalidDiscountValue) {
			t.Fatalf("expected ErrInvalidDiscountValue, got %v", err)
		}
	})
}

func TestDiscountUseCase_DeleteByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newDiscountUseCaseWithMocks(t)
		m.discounts.EXPECT().GetByID(gomock.Any(), "d-gone").Return(entities.Discount{}, nil)

		if err := uc.DeleteByID(context.Background(), "d-gone"); !errors.Is(err, ErrDiscountNotFound) {
			t.Fatalf("expected ErrDiscountNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newDiscountUseCaseWithMocks(t)
		m.discounts.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Discount{ID: "d-1"}, nil)
		m.discounts.EXPECT().Delete(gomock.Any(), "d-1").Return(nil)

		if err := uc.DeleteByID(context.Background(), "d-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
