// Package identity holds the authentication and user administration
// services.
package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/identity"
)

type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Active      bool      `json:"active"`
	Superuser   bool      `json:"superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func userToInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Active:      user.Active,
		Superuser:   user.Superuser,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
	User             UserInfo
}

type CreateUserInput struct {
	Username    string
	DisplayName string
	Email       string
	Password    string
	Superuser   bool
}

// UpdateUserInput carries a partial patch; nil fields are left untouched.
type UpdateUserInput struct {
	DisplayName *string
	Email       *string
}
