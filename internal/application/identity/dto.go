package identity

import (
	"time"

	"github.com/producao/backend/internal/domain/identity"
	"github.com/producao/backend/internal/infrastructure/auth"
)

// RegisterInput contains the data needed to register a user
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// LoginInput contains the credentials for authentication
type LoginInput struct {
	Email    string
	Password string
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// LoginResult contains the authenticated user and their token pair
type LoginResult struct {
	User   UserResponse    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

func toUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
