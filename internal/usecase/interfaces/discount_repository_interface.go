package interfaces

import (
	"context"

	"hospital_estimate/internal/domain/entities"
)

// IDiscountRepository abstracts DynamoDB persistence for Discount rules.
//
// GetByPair resolves the single rule for a
// (patient_category_id, service_category_id) pair; the repository relies on
// writes going through Create/Update to keep the pair unique.

type IDiscountRepository interface {
	Create(ctx context.Context, d entities.Discount) (entities.Discount, error)
	GetByID(ctx context.Context, id string) (entities.Discount, error)
	GetByPair(ctx context.Context, patientCategoryID, serviceCategoryID string) (entities.Discount, error)
	List(ctx context.Context) ([]entities.Discount, error)
	Update(ctx context.Context, d entities.Discount) (entities.Discount, error)
	Delete(ctx context.Context, id string) error
}
