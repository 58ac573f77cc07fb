package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusRequested = "requested"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	BaseModel
	UserID    uuid.UUID `gorm:"index"`
	VenueID   uuid.UUID `gorm:"index"`
	Category  string
	Date      time.Time
	PartySize int
	Status    string `gorm:"default:requested"`
	Notes     string

	Venue Venue `gorm:"foreignKey:VenueID"`
}
