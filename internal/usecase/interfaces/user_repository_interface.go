package interfaces

import (
	"context"

	"hospital_estimate/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for staff accounts.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	Count(ctx context.Context) (int, error)
	CountByRole(ctx context.Context, role entities.Role) (int, error)
	ListPending(ctx context.Context) ([]entities.User, error)
	SetApproval(ctx context.Context, id string, approved, rejected bool) (entities.User, error)
}
