package response_models

type ItineraryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TotalCost   int64  `json:"total_cost"`
	PlanSource  string `json:"plan_source"`
}

type ItineraryDetailResponse struct {
	ItineraryResponse
	Days []PlanDay `json:"days"`
}
