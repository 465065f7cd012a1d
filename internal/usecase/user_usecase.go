package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidSignupInput = errors.New("username, password, and role are required")
	ErrInvalidRole        = errors.New("invalid role specified")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrAdminAlreadyExists = errors.New("only one admin account is allowed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotApproved = errors.New("account awaiting admin approval")
	ErrAccountRejected    = errors.New("account has been rejected")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserID      = errors.New("invalid user id")
)

// SignupResult reports whether the new account was auto-approved (only the
// very first admin is).
type SignupResult struct {
	User         entities.User
	AutoApproved bool
}

// IUserUseCase covers staff account lifecycle: signup with admin approval,
// credential checks for login, and the admin approval queue.
type IUserUseCase interface {
	SignUp(ctx context.Context, username, password string, role entities.Role) (SignupResult, error)
	Login(ctx context.Context, username, password string) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	ListPending(ctx context.Context) ([]entities.User, error)
	Approve(ctx context.Context, id string) (entities.User, error)
	Reject(ctx context.Context, id string) (entities.User, error)
}

type UserUseCase struct {
	users interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(users interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

func (u *UserUseCase) SignUp(ctx context.Context, username, password string, role entities.Role) (SignupResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || role == "" {
		return SignupResult{}, ErrInvalidSignupInput
	}
	if !role.Valid() {
		return SignupResult{}, ErrInvalidRole
	}

	existing, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return SignupResult{}, err
	}
	if existing.ID != "" {
		return SignupResult{}, ErrUsernameTaken
	}

	total, err := u.users.Count(ctx)
	if err != nil {
		return SignupResult{}, err
	}

	// A single admin account governs approvals; the first one bootstraps
	// itself.
	isFirstAdmin := false
	if role == entities.RoleAdmin {
		admins, err := u.users.CountByRole(ctx, entities.RoleAdmin)
		if err != nil {
			return SignupResult{}, err
		}
		if admins > 0 {
			return SignupResult{}, ErrAdminAlreadyExists
		}
		isFirstAdmin = total == 0
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return SignupResult{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Approved:     isFirstAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.users.Create(ctx, user)
	if err != nil {
		return SignupResult{}, err
	}
	return SignupResult{User: created, AutoApproved: isFirstAdmin}, nil
}

func (u *UserUseCase) Login(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	// Same error whether the user exists or not.
	if user.ID == "" {
		return entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.User{}, ErrInvalidCredentials
	}

	if user.Rejected {
		return entities.User{}, ErrAccountRejected
	}
	if !user.Approved {
		return entities.User{}, ErrAccountNotApproved
	}
	return user, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) ListPending(ctx context.Context) ([]entities.User, error) {
	pending, err := u.users.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return pending, nil
}

func (u *UserUseCase) Approve(ctx context.Context, id string) (entities.User, error) {
	return u.setApproval(ctx, id, true, false)
}

func (u *UserUseCase) Reject(ctx context.Context, id string) (entities.User, error) {
	return u.setApproval(ctx, id, false, true)
}

func (u *UserUseCase) setApproval(ctx context.Context, id string, approved, rejected bool) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	updated, err := u.users.SetApproval(ctx, id, approved, rejected)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}
