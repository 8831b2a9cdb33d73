package dto

import (
	"time"

	"github.com/spec-kit/bizcard-service/internal/domain"
)

// UserRegisterRequest payload for new users.
type UserRegisterRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Phone      string `json:"phone" validate:"required,len=10,numeric"`
	Address    string `json:"address" validate:"required,max=200"`
	IsAdmin    bool   `json:"isAdmin"`
	IsBusiness bool   `json:"isBusiness"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdateRequest payload for full replacement.
type UserUpdateRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Phone      string `json:"phone" validate:"required,len=10,numeric"`
	Address    string `json:"address" validate:"required,max=200"`
	IsAdmin    bool   `json:"isAdmin"`
	IsBusiness bool   `json:"isBusiness"`
}

// UserPatchRequest toggles the isBusiness flag only. The pointer lets
// the handler reject payloads where the field is absent or not a boolean.
type UserPatchRequest struct {
	IsBusiness *bool `json:"isBusiness"`
}

// AuthResponse standard response for login.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the serialized account, never carrying the password hash.
type UserResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	Address             string     `json:"address"`
	IsAdmin             bool       `json:"isAdmin"`
	IsBusiness          bool       `json:"isBusiness"`
	FailedLoginAttempts int        `json:"failedLoginAttempts"`
	LockUntil           *time.Time `json:"lockUntil,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// NewUserResponse maps a domain user to its response shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:                  user.ID,
		Name:                user.Name,
		Email:               user.Email,
		Phone:               user.Phone,
		Address:             user.Address,
		IsAdmin:             user.IsAdmin,
		IsBusiness:          user.IsBusiness,
		FailedLoginAttempts: user.FailedLoginAttempts,
		LockUntil:           user.LockUntil,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}
}
