package model

import "time"

// SettingsModel mirrors the 'platform_settings' table. A single row with a
// fixed ID holds the whole document.
type SettingsModel struct {
	ID                    int     `gorm:"primaryKey"`
	StandardDeliveryPrice float64 `gorm:"type:numeric(10,2);not null"`
	ExpressDeliveryPrice  float64 `gorm:"type:numeric(10,2);not null"`
	StandardDeliveryDays  int     `gorm:"not null"`
	ExpressDeliveryDays   int     `gorm:"not null"`
	CommissionPercent     float64 `gorm:"type:numeric(5,2);not null"`
	Currency              string  `gorm:"type:varchar(3);not null"`
	VATPercent            float64 `gorm:"type:numeric(5,2);not null"`
	SupportEmail          string  `gorm:"type:varchar(255)"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingsModel) TableName() string {
	return "platform_settings"
}
