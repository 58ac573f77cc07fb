package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Itinerary struct {
	BaseModel
	UserID      uuid.UUID `gorm:"index"`
	Title       string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	TotalCost   int64
	PlanSource  string // gemini | fallback

	Days []ItineraryDay `gorm:"constraint:OnDelete:CASCADE"`
}

type ItineraryDay struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"index"`
	DayNumber   int
	Date        time.Time

	Activities []ItineraryActivity `gorm:"foreignKey:ItineraryDayID;constraint:OnDelete:CASCADE"`
}

type ItineraryActivity struct {
	BaseModel
	ItineraryDayID uuid.UUID `gorm:"index"`
	Time           string    // "8:30 AM" clock label, ordering handled by the planner
	Description    string
	Category       string
	VenueID        string
	VenueName      string
	Notes          string
}
