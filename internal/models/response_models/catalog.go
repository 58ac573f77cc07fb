package response_models

const (
	VenueCategoryGolfCourse = "golf_course"
	VenueCategoryHotel      = "hotel"
	VenueCategoryRestaurant = "restaurant"
	VenueCategoryExperience = "experience"
)

// CatalogItem is the canonical venue shape the planning engine consumes.
// Provider payloads are normalized into it at the catalog boundary; Price is
// per round, per night, or per person depending on Category.
type CatalogItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       int64   `json:"price"`
	Rating      float64 `json:"rating,omitempty"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address,omitempty"`

	Holes         int    `json:"holes,omitempty"`
	Par           int    `json:"par,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
	CuisineType   string `json:"cuisine_type,omitempty"`
	DurationHours int    `json:"duration_hours,omitempty"`
}

// Catalog bundles the four candidate pools handed to the planner.
type Catalog struct {
	GolfCourses []CatalogItem `json:"golf_courses"`
	Hotels      []CatalogItem `json:"hotels"`
	Restaurants []CatalogItem `json:"restaurants"`
	Experiences []CatalogItem `json:"experiences"`
}
