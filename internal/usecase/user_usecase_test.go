package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital_estimate/internal/domain/entities"
	mock_interfaces "hospital_estimate/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newUserUseCaseWithMock(t *testing.T) (*UserUseCase, *mock_interfaces.MockIUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	return NewUserUseCase(repo), repo
}

func TestUserUseCase_SignUp(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc, _ := newUserUseCaseWithMock(t)
		if _, err := uc.SignUp(context.Background(), "", "pw", entities.RoleUser); !errors.Is(err, ErrInvalidSignupInput) {
			t.Fatalf("expected ErrInvalidSignupInput, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc, _ := newUserUseCaseWithMock(t)
		if _, err := uc.SignUp(context.Background(), "meera", "pw", entities.Role("owner")); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("username taken", func(t *testing.T) {
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "meera").Return(entities.User{ID: "u-1"}, nil)

		if _, err := uc.SignUp(context.Background(), "meera", "pw", entities.RoleUser); !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("second admin rejected", func(t *testing.T) {
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "boss2").Return(entities.User{}, nil)
		repo.EXPECT().Count(gomock.Any()).Return(3, nil)
		repo.EXPECT().CountByRole(gomock.Any(), entities.RoleAdmin).Return(1, nil)

		if _, err := uc.SignUp(context.Background(), "boss2", "pw", entities.RoleAdmin); !errors.Is(err, ErrAdminAlreadyExists) {
			t.Fatalf("expected ErrAdminAlreadyExists, got %v", err)
		}
	})

	t.Run("first admin auto approved", func(t *testing.T) {
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "boss").Return(entities.User{}, nil)
		repo.EXPECT().Count(gomock.Any()).Return(0, nil)
		repo.EXPECT().CountByRole(gomock.Any(), entities.RoleAdmin).Return(0, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if !u.Approved {
					t.Fatalf("expected first admin auto-approved")
				}
				if u.PasswordHash == "" || u.PasswordHash == "pw" {
					t.Fatalf("expected hashed password")
				}
				return u, nil
			},
		)

		res, err := uc.SignUp(context.Background(), "boss", "pw", entities.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.AutoApproved {
			t.Fatalf("expected auto approval")
		}
	})

	t.Run("regular user awaits approval", func(t *testing.T) {
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "meera").Return(entities.User{}, nil)
		repo.EXPECT().Count(gomock.Any()).Return(1, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Approved || u.Rejected {
					t.Fatalf("expected pending account, got %+v", u)
				}
				return u, nil
			},
		)

		res, err := uc.SignUp(context.Background(), "meera", "pw", entities.RoleUser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AutoApproved {
			t.Fatalf("expected pending approval")
		}
	})
}

func TestUserUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	approved := entities.User{ID: "u-1", Username: "meera", PasswordHash: string(hash), Role: entities.RoleUser, Approved: true}

	t.Run("success", func(t *testing.T) {
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "meera").Return(approved, nil)

		user, err := uc.Login(context.Background(), "meera", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u-1" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	t.Run("unknown user gets the generic error", func(t *testing.T) {
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(entities.User{}, nil)

		if _, err := uc.Login(context.Background(), "ghost", "secret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "meera").Return(approved, nil)

		if _, err := uc.Login(context.Background(), "meera", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unapproved account blocked", func(t *testing.T) {
		pending := approved
		pending.Approved = false
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "meera").Return(pending, nil)

		if _, err := uc.Login(context.Background(), "meera", "secret"); !errors.Is(err, ErrAccountNotApproved) {
			t.Fatalf("expected ErrAccountNotApproved, got %v", err)
		}
	})

	t.Run("rejected account blocked", func(t *testing.T) {
		rejected := approved
		rejected.Rejected = true
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "meera").Return(rejected, nil)

		if _, err := uc.Login(context.Background(), "meera", "secret"); !errors.Is(err, ErrAccountRejected) {
			t.Fatalf("expected ErrAccountRejected, got %v", err)
		}
	})
}

func TestUserUseCase_ApprovalFlow(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().SetApproval(gomock.Any(), "u-1", true, false).Return(entities.User{ID: "u-1", Approved: true}, nil)

		user, err := uc.Approve(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !user.Approved {
			t.Fatalf("expected approved, got %+v", user)
		}
	})

	t.Run("reject", func(t *testing.T) {
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().SetApproval(gomock.Any(), "u-1", false, true).Return(entities.User{ID: "u-1", Rejected: true}, nil)

		user, err := uc.Reject(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !user.Rejected {
			t.Fatalf("expected rejected, got %+v", user)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		uc, repo := newUserUseCaseWithMock(t)
		repo.EXPECT().SetApproval(gomock.Any(), "ghost", true, false).Return(entities.User{}, nil)

		if _, err := uc.Approve(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
