package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaModel is the GORM-specific struct for the 'media' table.
type MediaModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Description      string    `gorm:"type:text"`
	DisplayType      string    `gorm:"type:varchar(32);not null"`
	Price            float64   `gorm:"type:decimal(12,2);not null"`
	DailyImpressions int       `gorm:"not null;default:0"`
	Status           string    `gorm:"type:varchar(16);not null;index:idx_media_on_status"`
	BusinessID       uuid.UUID `gorm:"not null;index:idx_media_on_business"`
	LocationID       uuid.UUID `gorm:"type:uuid;not null;index:idx_media_on_location"`
	Location         *LocationModel `gorm:"foreignKey:LocationID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (MediaModel) TableName() string {
	return "media"
}
