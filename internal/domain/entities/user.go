package entities

import "time"

// Role is the access level of a staff account.

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}

// User is a staff account. New accounts wait for admin approval before they
// can log in; the very first admin is auto-approved at signup.
//
// Storage model (DynamoDB):
//   - PK: id
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Approved     bool      `json:"approved"`
	Rejected     bool      `json:"rejected"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) IsManager() bool {
	return u.Role == RoleManager
}
