package request_models

// PlanRequest is the trip-planning form payload. Dates are "2006-01-02".
type PlanRequest struct {
	Destination        string   `json:"destination" binding:"required"`
	StartDate          string   `json:"start_date" binding:"required"`
	EndDate            string   `json:"end_date" binding:"required"`
	Golfers            int      `json:"golfers"`
	BudgetMin          int64    `json:"budget_min"`
	BudgetMax          int64    `json:"budget_max"`
	DesiredActivities  []string `json:"desired_activities"`
	NeedsVehicleRental bool     `json:"needs_vehicle_rental"`
	VehicleType        string   `json:"vehicle_type"`
}
