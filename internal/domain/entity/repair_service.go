// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RepairService is one offering of the repair catalog.
// Names and descriptions are multilingual with French as the base locale.
type RepairService struct {
	ID            uuid.UUID // The Global Unique Identifier for the service.
	Name          LocalizedText
	Description   LocalizedText
	Price         float64 // Unit price in the platform currency.
	EstimatedDays int     // Typical turnaround in days.
	Category      string  // e.g. "semelles", "talons", "entretien".
	Gender        string  // "homme", "femme" or "mixte".
	ImageURL      string  // Illustration shown in the catalog.
	IsActive      bool    // Inactive services are hidden from the public catalog.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LocalizedText carries a French base value plus optional translations.
type LocalizedText struct {
	FR string // Required base locale.
	EN string
	DE string
	IT string
}

// In returns the text for the given language code, falling back to French.
func (t LocalizedText) In(lang string) string {
	switch lang {
	case "en":
		if t.EN != "" {
			return t.EN
		}
	case "de":
		if t.DE != "" {
			return t.DE
		}
	case "it":
		if t.IT != "" {
			return t.IT
		}
	}

	return t.FR
}
