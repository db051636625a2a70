package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentTransactionModel mirrors the 'payment_transactions' table.
type PaymentTransactionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index"`
	StripeSessionID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_payment_session_id"`
	Amount          float64   `gorm:"type:numeric(10,2);not null"`
	ApplicationFee  float64   `gorm:"type:numeric(10,2);not null"`
	Currency        string    `gorm:"type:varchar(3);not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentTransactionModel) TableName() string {
	return "payment_transactions"
}
