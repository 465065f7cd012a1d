package response

import (
	"time"

	"hospital_estimate/internal/domain/entities"
)

type LoginResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IsAdmin   bool   `json:"is_admin"`
	IsManager bool   `json:"is_manager"`
	Token     string `json:"token"`
}

func FromLogin(u entities.User, token string) LoginResponse {
	return LoginResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		IsAdmin:   u.IsAdmin(),
		IsManager: u.IsManager(),
		Token:     token,
	}
}

type UserInfoResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IsAdmin   bool   `json:"is_admin"`
	IsManager bool   `json:"is_manager"`
	Approved  bool   `json:"approved"`
}

func FromUserInfo(u entities.User) UserInfoResponse {
	return UserInfoResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		IsAdmin:   u.IsAdmin(),
		IsManager: u.IsManager(),
		Approved:  u.Approved,
	}
}

type PendingUserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPendingUsers(users []entities.User) []PendingUserResponse {
	out := make([]PendingUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, PendingUserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Role:      string(u.Role),
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}
