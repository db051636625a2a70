// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including any attached profiles.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage, including any attached profiles.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateCobblerProfile modifies an existing cobbler profile.
	UpdateCobblerProfile(ctx context.Context, profile *entity.CobblerProfile) error

	// ListCobblersByStatus retrieves all users with a cobbler profile in the given status.
	ListCobblersByStatus(ctx context.Context, status entity.PartnerStatus) ([]*entity.User, error)

	// FindEligibleCobblers returns the id and workshop coordinate of every
	// approved cobbler whose position is known. Cobblers without a geocoded
	// address are excluded.
	FindEligibleCobblers(ctx context.Context) ([]*entity.EligibleCobbler, error)

	// CountClients returns the total number of users holding a client profile.
	CountClients(ctx context.Context) (int64, error)

	// CountCobblersByStatus returns the number of cobbler profiles in the given status.
	CountCobblersByStatus(ctx context.Context, status entity.PartnerStatus) (int64, error)
}
