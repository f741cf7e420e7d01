// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bulkup/internal/domain/entity"
)

// UserUsecase defines the interface for account-related business operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*AuthOutput, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput defines the data required to refresh a session.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// UserOutput is the public projection of a user, stripped of credentials.
type UserOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthOutput carries the authenticated user and a fresh token pair.
type AuthOutput struct {
	User         *UserOutput `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

// NewUserOutput maps a user entity to its public projection.
func NewUserOutput(user *entity.User) *UserOutput {
	return &UserOutput{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}
}
