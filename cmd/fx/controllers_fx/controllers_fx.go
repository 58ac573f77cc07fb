package controllers_fx

import (
	"go.uber.org/fx"

	"fairway/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewVenueController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewBookingController))
