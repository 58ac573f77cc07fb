package providers

import "fairway/internal/models/response_models"

// Bundled sample venues served when a provider has no credentials. Fresh
// slices are returned so callers can reorder or trim without clobbering
// the shared data.

func SampleGolfCourses() []response_models.CatalogItem {
	return []response_models.CatalogItem{
		{
			ID:         "gc-cypress-dunes",
			Name:       "Cypress Dunes Golf Club",
			Category:   response_models.VenueCategoryGolfCourse,
			Price:      189,
			Rating:     4.8,
			Address:    "1 Shoreline Drive",
			Holes:      18,
			Par:        72,
			Difficulty: "championship",
		},
		{
			ID:         "gc-harbor-links",
			Name:       "Harbor Links",
			Category:   response_models.VenueCategoryGolfCourse,
			Price:      159,
			Rating:     4.5,
			Address:    "220 Marina Way",
			Holes:      18,
			Par:        71,
			Difficulty: "intermediate",
		},
		{
			ID:         "gc-eagle-ridge",
			Name:       "Eagle Ridge National",
			Category:   response_models.VenueCategoryGolfCourse,
			Price:      175,
			Rating:     4.6,
			Address:    "98 Summit Road",
			Holes:      18,
			Par:        72,
			Difficulty: "advanced",
		},
		{
			ID:         "gc-willow-creek",
			Name:       "Willow Creek Golf Course",
			Category:   response_models.VenueCategoryGolfCourse,
			Price:      95,
			Rating:     4.2,
			Address:    "47 Creekside Lane",
			Holes:      18,
			Par:        70,
			Difficulty: "beginner",
		},
	}
}

func SampleHotels() []response_models.CatalogItem {
	return []response_models.CatalogItem{
		{
			ID:       "ht-fairway-grand",
			Name:     "The Fairway Grand Resort",
			Category: response_models.VenueCategoryHotel,
			Price:    389,
			Rating:   4.7,
			Address:  "500 Resort Boulevard",
		},
		{
			ID:       "ht-seaside-lodge",
			Name:     "Seaside Lodge & Spa",
			Category: response_models.VenueCategoryHotel,
			Price:    259,
			Rating:   4.4,
			Address:  "12 Ocean View Terrace",
		},
	}
}

func SampleRestaurants() []response_models.CatalogItem {
	return []response_models.CatalogItem{
		{
			ID:          "rs-clubhouse-grill",
			Name:        "The Clubhouse Grill",
			Category:    response_models.VenueCategoryRestaurant,
			Price:       85,
			Rating:      4.6,
			Address:     "1 Shoreline Drive",
			CuisineType: "steakhouse",
		},
		{
			ID:          "rs-harbor-oyster",
			Name:        "Harbor Oyster Bar",
			Category:    response_models.VenueCategoryRestaurant,
			Price:       70,
			Rating:      4.5,
			Address:     "230 Marina Way",
			CuisineType: "seafood",
		},
		{
			ID:          "rs-trattoria-verde",
			Name:        "Trattoria Verde",
			Category:    response_models.VenueCategoryRestaurant,
			Price:       60,
			Rating:      4.3,
			Address:     "88 Old Town Square",
			CuisineType: "italian",
		},
	}
}

func SampleExperiences() []response_models.CatalogItem {
	return []response_models.CatalogItem{
		{
			ID:            "ex-whale-watch",
			Name:          "Coastal Whale Watching Cruise",
			Category:      response_models.VenueCategoryExperience,
			Price:         95,
			Rating:        4.8,
			Description:   "Three-hour guided cruise along the headlands",
			DurationHours: 3,
		},
		{
			ID:            "ex-whiskey-tasting",
			Name:          "Links Whiskey Tasting",
			Category:      response_models.VenueCategoryExperience,
			Price:         75,
			Rating:        4.6,
			Description:   "Flight of six single malts with a local guide",
			DurationHours: 2,
		},
	}
}
