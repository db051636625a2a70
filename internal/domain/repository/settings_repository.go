// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cordonnier/internal/domain/entity"
)

// SettingsRepository manages the singleton platform settings document.
type SettingsRepository interface {
	// Get returns the current settings. Implementations return the default
	// settings when none have been stored yet.
	Get(ctx context.Context) (*entity.Settings, error)

	// Save stores the settings, replacing the previous document.
	Save(ctx context.Context, settings *entity.Settings) error
}
