package interfaces

import (
	"context"

	"hospital_estimate/internal/domain/entities"
)

// ISavedEstimateRepository abstracts DynamoDB persistence for saved
// estimates.
//
// NextEstimateNumber must be atomic: two concurrent saves may never receive
// the same number. The DynamoDB implementation uses an ADD counter update.

type ISavedEstimateRepository interface {
	NextEstimateNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, e entities.SavedEstimate) (entities.SavedEstimate, error)
	GetByID(ctx context.Context, id string) (entities.SavedEstimate, error)
	ListAll(ctx context.Context) ([]entities.SavedEstimate, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.SavedEstimate, error)
}
