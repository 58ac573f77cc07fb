package db_models

// Venue is the admin-managed catalog record. Category decides which of the
// variant columns carry meaning; the planner only ever reads Price.
type Venue struct {
	BaseModel
	Name        string
	Category    string `gorm:"index"` // golf_course | hotel | restaurant | experience
	Description string
	Address     string
	Price       int64 // per round / per night / per person, by category
	Rating      float64

	// golf course
	Holes      int
	Par        int
	Difficulty string

	// restaurant
	CuisineType string

	// experience
	DurationHours int
}
