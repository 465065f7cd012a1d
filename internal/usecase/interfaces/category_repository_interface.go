package interfaces

import (
	"context"

	"hospital_estimate/internal/domain/entities"
)

// IServiceCategoryRepository abstracts DynamoDB persistence for
// ServiceCategory. Categories are small, seeded reference tables.

type IServiceCategoryRepository interface {
	Create(ctx context.Context, c entities.ServiceCategory) (entities.ServiceCategory, error)
	GetByID(ctx context.Context, id string) (entities.ServiceCategory, error)
	GetByName(ctx context.Context, name string) (entities.ServiceCategory, error)
	List(ctx context.Context) ([]entities.ServiceCategory, error)
}

// IPatientCategoryRepository abstracts DynamoDB persistence for
// PatientCategory.

type IPatientCategoryRepository interface {
	Create(ctx context.Context, c entities.PatientCategory) (entities.PatientCategory, error)
	GetByID(ctx context.Context, id string) (entities.PatientCategory, error)
	GetByName(ctx context.Context, name string) (entities.PatientCategory, error)
	List(ctx context.Context) ([]entities.PatientCategory, error)
}
