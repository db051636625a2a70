package model

import (
	"time"

	"github.com/google/uuid"
)

// RepairServiceModel mirrors the 'repair_services' table. Names and
// descriptions are stored per language, French being the reference text.
type RepairServiceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NameFR        string    `gorm:"type:varchar(150);not null"`
	NameEN        string    `gorm:"type:varchar(150)"`
	NameDE        string    `gorm:"type:varchar(150)"`
	NameIT        string    `gorm:"type:varchar(150)"`
	DescriptionFR string    `gorm:"type:text"`
	DescriptionEN string    `gorm:"type:text"`
	DescriptionDE string    `gorm:"type:text"`
	DescriptionIT string    `gorm:"type:text"`
	Price         float64   `gorm:"type:numeric(10,2);not null"`
	EstimatedDays int       `gorm:"not null;default:5"`
	Category      string    `gorm:"type:varchar(50);index"`
	Gender        string    `gorm:"type:varchar(20)"`
	ImageURL      string    `gorm:"type:varchar(255)"`
	IsActive      bool      `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RepairServiceModel) TableName() string {
	return "repair_services"
}
