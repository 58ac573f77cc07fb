package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fairway/internal/repositories"
	"fairway/internal/services"
)

var Module = fx.Provide(
	provideItineraryService, provideItineraryRepo)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(itineraryRepo repositories.ItineraryRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo)
}
