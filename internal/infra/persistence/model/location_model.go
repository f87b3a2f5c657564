package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BusinessID         uuid.UUID `gorm:"not null;index:idx_locations_on_business"`
	Street             string    `gorm:"type:varchar(255);not null"`
	City               string    `gorm:"type:varchar(255);not null"`
	Province           string    `gorm:"type:varchar(255);not null"`
	Country            string    `gorm:"type:varchar(255);not null"`
	PostalCode         string    `gorm:"type:varchar(32);not null"`
	Latitude           *float64  `gorm:"type:decimal(10,8)"`
	Longitude          *float64  `gorm:"type:decimal(11,8)"`
	RawGeocodeResponse json.RawMessage `gorm:"type:jsonb"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
