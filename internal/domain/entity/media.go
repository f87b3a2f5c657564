package entity

import (
	"time"

	"github.com/google/uuid"
)

// MediaStatus is the lifecycle status of an inventory item.
type MediaStatus string

const (
	MediaStatusActive   MediaStatus = "ACTIVE"
	MediaStatusInactive MediaStatus = "INACTIVE"
)

// DisplayType describes the physical kind of advertising surface.
type DisplayType string

const (
	DisplayTypeBillboard     DisplayType = "BILLBOARD"
	DisplayTypeDigitalScreen DisplayType = "DIGITAL_SCREEN"
	DisplayTypePoster        DisplayType = "POSTER"
)

// Media is one advertising space offered on the marketplace. It
// references exactly one Location for its coordinates; the catalog
// service creates and updates it, the query engine only reads.
type Media struct {
	ID               uuid.UUID
	Title            string
	Description      string
	DisplayType      DisplayType
	Price            float64 // Price per day.
	DailyImpressions int
	Status           MediaStatus
	BusinessID       uuid.UUID
	LocationID       uuid.UUID
	Location         *Location
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
