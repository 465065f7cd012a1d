package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidServiceInput = errors.New("name, category_id, cost_price, and mrp are required")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrCategoryNotFound    = errors.New("service category not found")
)

// ServiceDetail is a Service with its category denormalized the way the
// services listing renders it.
type ServiceDetail struct {
	entities.Service
	CategoryName        string
	CategoryDisplayName string
}

type CreateServiceInput struct {
	Name          string
	CategoryID    string
	CostPrice     float64
	MRP           float64
	IsDailyCharge bool
	VisitsPerDay  int
}

// UpdateServiceInput carries a partial update; nil fields keep their stored
// value.
type UpdateServiceInput struct {
	Name          *string
	CategoryID    *string
	CostPrice     *float64
	MRP           *float64
	IsDailyCharge *bool
	VisitsPerDay  *int
}

// ICatalogUseCase maintains the billable-service catalog and exposes the
// category reference lists.
type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]ServiceDetail, error)
	CreateService(ctx context.Context, input CreateServiceInput) (entities.Service, error)
	UpdateService(ctx context.Context, id string, input UpdateServiceInput) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error
	ListServiceCategories(ctx context.Context) ([]entities.ServiceCategory, error)
	ListPatientCategories(ctx context.Context) ([]entities.PatientCategory, error)
}

type CatalogUseCase struct {
	services          interfaces.IServiceRepository
	serviceCategories interfaces.IServiceCategoryRepository
	patientCategories interfaces.IPatientCategoryRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(
	services interfaces.IServiceRepository,
	serviceCategories interfaces.IServiceCategoryRepository,
	patientCategories interfaces.IPatientCategoryRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		services:          services,
		serviceCategories: serviceCategories,
		patientCategories: patientCategories,
	}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]ServiceDetail, error) {
	services, err := u.services.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := u.serviceCategories.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entities.ServiceCategory, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	details := make([]ServiceDetail, 0, len(services))
	for _, s := range services {
		cat := byID[s.CategoryID]
		details = append(details, ServiceDetail{
			Service:             s,
			CategoryName:        cat.Name,
			CategoryDisplayName: cat.DisplayName,
		})
	}
	return details, nil
}

func (u *CatalogUseCase) CreateService(ctx context.Context, input CreateServiceInput) (entities.Service, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || strings.TrimSpace(input.CategoryID) == "" {
		return entities.Service{}, ErrInvalidServiceInput
	}
	if input.CostPrice < 0 || input.MRP < 0 {
		return entities.Service{}, ErrInvalidServiceInput
	}
	if input.VisitsPerDay < 1 {
		input.VisitsPerDay = 1
	}

	category, err := u.serviceCategories.GetByID(ctx, input.CategoryID)
	if err != nil {
		return entities.Service{}, err
	}
	if category.ID == "" {
		return entities.Service{}, ErrCategoryNotFound
	}

	s := entities.Service{
		ID:            uuid.NewString(),
		Name:          input.Name,
		CategoryID:    category.ID,
		CostPrice:     input.CostPrice,
		MRP:           input.MRP,
		IsDailyCharge: input.IsDailyCharge,
		VisitsPerDay:  input.VisitsPerDay,
		CreatedAt:     time.Now().UTC(),
	}
	return u.services.Create(ctx, s)
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, id string, input UpdateServiceInput) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return entities.Service{}, ErrInvalidServiceInput
		}
		s.Name = name
	}
	if input.CategoryID != nil {
		category, err := u.serviceCategories.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return entities.Service{}, err
		}
		if category.ID == "" {
			return entities.Service{}, ErrCategoryNotFound
		}
		s.CategoryID = category.ID
	}
	if input.CostPrice != nil {
		if *input.CostPrice < 0 {
			return entities.Service{}, ErrInvalidServiceInput
		}
		s.CostPrice = *input.CostPrice
	}
	if input.MRP != nil {
		if *input.MRP < 0 {
			return entities.Service{}, ErrInvalidServiceInput
		}
		s.MRP = *input.MRP
	}
	if input.IsDailyCharge != nil {
		s.IsDailyCharge = *input.IsDailyCharge
	}
	if input.VisitsPerDay != nil {
		if *input.VisitsPerDay < 1 {
			return entities.Service{}, ErrInvalidServiceInput
		}
		s.VisitsPerDay = *input.VisitsPerDay
	}

	return u.services.Update(ctx, s)
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}

	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s.ID == "" {
		return ErrServiceNotFound
	}
	return u.services.Delete(ctx, id)
}

func (u *CatalogUseCase) ListServiceCategories(ctx context.Context) ([]entities.ServiceCategory, error) {
	return u.serviceCategories.List(ctx)
}

func (u *CatalogUseCase) ListPatientCategories(ctx context.Context) ([]entities.PatientCategory, error) {
	return u.patientCategories.List(ctx)
}
