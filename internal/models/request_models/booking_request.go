package request_models

type CreateBookingRequest struct {
	VenueID   string `json:"venue_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // "2006-01-02"
	PartySize int    `json:"party_size" binding:"required,min=1"`
	Notes     string `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}
