package auth

import (
	"time"

	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	Provider  string    `json:"auth_provider"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(user *domain.Users) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.UserName,
		Email:     user.Email,
		Provider:  user.AuthProvider,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
