package response_models

type BookingResponse struct {
	ID        string `json:"id"`
	VenueID   string `json:"venue_id"`
	VenueName string `json:"venue_name,omitempty"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	PartySize int    `json:"party_size"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
}
