package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fairway/internal/repositories"
	"fairway/internal/services"
)

var Module = fx.Provide(
	provideBookingService, provideBookingRepo)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(bookingRepo repositories.BookingRepository, venueRepo repositories.VenueRepository) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, venueRepo)
}
