// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterClientInput defines the data required to register a new client account.
type RegisterClientInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// RegisterCobblerInput defines the data required for a cobbler to apply.
// The account starts in pending status until an administrator approves it.
type RegisterCobblerInput struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	Address     string
	CompanyName string
	SiretNumber string
	TermsIP     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// UpdateProfileInput carries optional profile fields. Nil pointers are left untouched.
type UpdateProfileInput struct {
	Name            *string
	Phone           *string
	Address         *string
	DeliveryAddress *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterClient(ctx context.Context, input RegisterClientInput) (*RegisterOutput, error)
	RegisterCobbler(ctx context.Context, input RegisterCobblerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input RefreshInput) (*LoginOutput, error)
	Logout(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)
}
