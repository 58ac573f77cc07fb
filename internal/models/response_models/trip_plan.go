package response_models

const (
	ActivityCategoryGolf           = "golf"
	ActivityCategoryHotel          = "hotel"
	ActivityCategoryRestaurant     = "restaurant"
	ActivityCategoryExperience     = "experience"
	ActivityCategoryTransportation = "transportation"
	ActivityCategoryOther          = "other"
)

const (
	PlanSourceGemini   = "gemini"
	PlanSourceFallback = "fallback"
)

type PlanActivity struct {
	Time        string `json:"time"` // "3:04 PM" clock label
	Description string `json:"description"`
	Category    string `json:"category"`
	VenueID     string `json:"venue_id,omitempty"`
	VenueName   string `json:"venue_name,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type PlanDay struct {
	Day        int            `json:"day"`
	Date       string         `json:"date"` // "2006-01-02"
	Activities []PlanActivity `json:"activities"`
}

type Transportation struct {
	Type            string `json:"type"`
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`
	CostPerDay      int64  `json:"cost_per_day"`
	TotalCost       int64  `json:"total_cost"`
}

// CostBreakdown carries the five category subtotals; TotalCost on the plan
// always equals their exact sum.
type CostBreakdown struct {
	Golf           int64 `json:"golf"`
	Hotel          int64 `json:"hotel"`
	Restaurants    int64 `json:"restaurants"`
	Experiences    int64 `json:"experiences"`
	Transportation int64 `json:"transportation"`
}

type TripPlan struct {
	Destination    string          `json:"destination"`
	Days           []PlanDay       `json:"days"`
	GolfCourses    []CatalogItem   `json:"golf_courses"`
	Hotels         []CatalogItem   `json:"hotels"`
	Restaurants    []CatalogItem   `json:"restaurants"`
	Experiences    []CatalogItem   `json:"experiences"`
	Transportation *Transportation `json:"transportation,omitempty"`
	Costs          CostBreakdown   `json:"costs"`
	TotalCost      int64           `json:"total_cost"`
	Source         string          `json:"source"`
	Diagnostics    []string        `json:"diagnostics,omitempty"`
}
