package request_models

import "github.com/google/uuid"

type CreateVenueRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required,oneof=golf_course hotel restaurant experience"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Price       int64    `json:"price" binding:"min=0"`
	Rating      float64  `json:"rating"`
	Tags        []string `json:"tags"`

	Holes         int    `json:"holes"`
	Par           int    `json:"par"`
	Difficulty    string `json:"difficulty"`
	CuisineType   string `json:"cuisine_type"`
	DurationHours int    `json:"duration_hours"`
}

type UpdateVenueRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	CreateVenueRequest
}

type SemanticSearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}
