package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(50)"`
	Address   string    `gorm:"type:text"`
	Latitude  *float64  `gorm:"type:double precision"`
	Longitude *float64  `gorm:"type:double precision"`
	IsAdmin   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	ClientProfile   *ClientProfileModel   `gorm:"foreignKey:UserID"`
	CobblerProfile  *CobblerProfileModel  `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ClientProfileModel mirrors the 'client_profiles' table. UserID references users.id (UUID).
type ClientProfileModel struct {
	UserID          uuid.UUID `gorm:"primaryKey"`
	DeliveryAddress string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientProfileModel) TableName() string {
	return "client_profiles"
}

// CobblerProfileModel mirrors the 'cobbler_profiles' table. UserID references users.id (UUID).
// Status moves pending -> approved|rejected through the admin vetting flow.
type CobblerProfileModel struct {
	UserID          uuid.UUID `gorm:"primaryKey"`
	CompanyName     string    `gorm:"type:varchar(150);not null"`
	SiretNumber     string    `gorm:"type:varchar(50);not null;unique"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason string    `gorm:"type:text"`
	BankAccount     string    `gorm:"type:varchar(100)"`
	StripeAccountID string    `gorm:"type:varchar(100)"`
	IDCardFrontKey  string    `gorm:"type:varchar(255)"`
	IDCardBackKey   string    `gorm:"type:varchar(255)"`
	RegistryDocKey  string    `gorm:"type:varchar(255)"`
	TermsSignedAt   *time.Time
	TermsSignedIP   string `gorm:"type:varchar(45)"`
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CobblerProfileModel) TableName() string {
	return "cobbler_profiles"
}
