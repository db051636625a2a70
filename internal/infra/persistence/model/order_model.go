package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. ClientID is null for guest checkouts,
// CobblerID is null while no assignment has been made.
type OrderModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Reference       string     `gorm:"type:varchar(20);unique;not null"`
	ClientID        *uuid.UUID `gorm:"type:uuid;index"`
	CobblerID       *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentState    string     `gorm:"type:varchar(20);not null;default:'unpaid'"`
	DeliveryOption  string     `gorm:"type:varchar(20);not null"`
	DeliveryAddress string     `gorm:"type:text;not null"`
	ContactName     string     `gorm:"type:varchar(100);not null"`
	ContactEmail    string     `gorm:"type:varchar(255);not null"`
	ContactPhone    string     `gorm:"type:varchar(50)"`
	Notes           string     `gorm:"type:text"`
	PhotoKeys       string     `gorm:"type:text"` // JSON-encoded list of storage keys
	Subtotal        float64    `gorm:"type:numeric(10,2);not null"`
	DeliveryFee     float64    `gorm:"type:numeric(10,2);not null"`
	Total           float64    `gorm:"type:numeric(10,2);not null"`
	Currency        string     `gorm:"type:varchar(3);not null"`
	CreatedAt       time.Time  `gorm:"index"`
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Service name and unit price
// are denormalized so later catalog edits do not rewrite order history.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID   uuid.UUID `gorm:"type:uuid;not null"`
	ServiceName string    `gorm:"type:varchar(150);not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   float64   `gorm:"type:numeric(10,2);not null"`
	Total       float64   `gorm:"type:numeric(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
