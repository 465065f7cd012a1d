package interfaces

import (
	"context"

	"hospital_estimate/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// Repositories return zero-value entities (ID == "") for not-found lookups;
// usecases translate that into their own not-found errors.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
