// Package entity contains the core business objects of the project.
package entity

import "time"

// Settings is the singleton platform settings document. It is the single
// source of truth for commission and delivery pricing: order creation and
// report math read from here, never from hardcoded constants.
type Settings struct {
	DeliveryStandardPrice float64 // CHF, default 8.00.
	DeliveryExpressPrice  float64 // CHF, default 20.00.
	DeliveryStandardDays  int     // Announced standard delivery delay.
	DeliveryExpressDays   int     // Announced express delivery delay.
	PlatformCommission    float64 // Percent retained by the platform, default 15.
	Currency              string  // ISO code, default "CHF".
	VATRate               float64 // Percent, default 7.7.
	SupportEmail          string
	UpdatedAt             time.Time
}

// DefaultSettings returns the settings applied before an administrator
// ever writes the document.
func DefaultSettings() *Settings {
	return &Settings{
		DeliveryStandardPrice: 8.0,
		DeliveryExpressPrice:  20.0,
		DeliveryStandardDays:  5,
		DeliveryExpressDays:   2,
		PlatformCommission:    15,
		Currency:              "CHF",
		VATRate:               7.7,
	}
}

// DeliveryPrice returns the price for the given delivery option.
func (s *Settings) DeliveryPrice(option DeliveryOption) float64 {
	if option == DeliveryExpress {
		return s.DeliveryExpressPrice
	}

	return s.DeliveryStandardPrice
}
