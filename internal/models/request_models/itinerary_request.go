package request_models

import "fairway/internal/models/response_models"

type SaveItineraryRequest struct {
	Title string                    `json:"title" binding:"required"`
	Plan  *response_models.TripPlan `json:"plan" binding:"required"`
}

type AddItineraryActivityRequest struct {
	DayNumber   int    `json:"day_number" binding:"required,min=1"`
	Time        string `json:"time" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
	VenueID     string `json:"venue_id"`
	VenueName   string `json:"venue_name"`
	Notes       string `json:"notes"`
}
