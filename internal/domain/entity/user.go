// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID             uuid.UUID       // The Global Unique Identifier (GUID) for the user.
	Email          string          // The user's primary contact email, used as a login identifier.
	Name           string          // The user's display name or real name.
	Phone          string          // Contact phone number.
	Address        string          // Free-text postal address as entered by the user.
	Coordinate     *Coordinate     // Geocoded location of Address, nil until resolved.
	IsAdmin        bool            // Marks an administrative account.
	ClientProfile  *ClientProfile  // Nil if this person does not have the 'client' role.
	CobblerProfile *CobblerProfile // Nil if this person does not have the 'cobbler' role.
	CreatedAt      time.Time       // Timestamp of when this user account was created.
	UpdatedAt      time.Time       // Timestamp of the last modification to this user's data.
}

// ClientProfile holds data specific to the "client" role.
type ClientProfile struct {
	UserID          uuid.UUID // Foreign Key that links this profile to a core User entity.
	DeliveryAddress string    // Preferred delivery address when it differs from User.Address.
	UpdatedAt       time.Time // Timestamp of the last modification to this profile.
}

// CobblerProfile holds data specific to the "cobbler" role.
// A cobbler becomes eligible for order assignment only when Status is
// approved and the owning User carries a non-nil Coordinate.
type CobblerProfile struct {
	UserID          uuid.UUID     // Foreign Key that links this profile to a core User entity.
	CompanyName     string        // Registered company or workshop name.
	SiretNumber     string        // Commercial registry number.
	Status          PartnerStatus // Vetting state: pending, approved or rejected.
	RejectionReason string        // Reason given by the administrator on rejection.
	BankAccount     string        // IBAN used for payouts.
	StripeAccountID string        // Stripe Connect Express account, empty until onboarding.
	IDCardFrontKey  string        // Blob storage key of the identity card front scan.
	IDCardBackKey   string        // Blob storage key of the identity card back scan.
	RegistryDocKey  string        // Blob storage key of the commercial registry extract.
	TermsSignedAt   *time.Time    // When the partner terms were accepted.
	TermsSignedIP   string        // IP address recorded at terms acceptance.
	ApprovedAt      *time.Time    // Set when an administrator approves the profile.
	RejectedAt      *time.Time    // Set when an administrator rejects the profile.
	UpdatedAt       time.Time     // Timestamp of the last modification to this profile.
}

// Roles derives the role set from which profiles are attached to the user.
func (u *User) Roles() Roles {
	var roles Roles
	if u.ClientProfile != nil {
		roles = append(roles, RoleClient)
	}
	if u.CobblerProfile != nil {
		roles = append(roles, RoleCobbler)
	}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}

// EligibleCobbler is the projection of a cobbler used by nearest-partner
// assignment: an identifier with a known coordinate. Snapshots of these
// are read-only and safe to scan concurrently.
type EligibleCobbler struct {
	ID         uuid.UUID
	Coordinate Coordinate
}
