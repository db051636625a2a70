package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaItemModel mirrors the 'media_items' table. The composite unique index
// on category and position gives uploads replace semantics per slot.
type MediaItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Category    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_media_category_position"`
	Position    int       `gorm:"not null;uniqueIndex:idx_media_category_position"`
	Title       string    `gorm:"type:varchar(150)"`
	StorageKey  string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MediaItemModel) TableName() string {
	return "media_items"
}
