package main

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fairway/cmd/fx/account_fx"
	"fairway/cmd/fx/booking_fx"
	"fairway/cmd/fx/catalog_fx"
	"fairway/cmd/fx/controllers_fx"
	"fairway/cmd/fx/db_fx"
	"fairway/cmd/fx/itinerary_fx"
	"fairway/cmd/fx/planner_fx"
	"fairway/cmd/fx/venue_fx"
	"fairway/internal/api/controllers"
	"fairway/internal/infra"
	"fairway/pkg/middleware"
	"fairway/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	utils.LoadConfig()
	utils.InitializeLogger()

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		planner_fx.Module,
		venue_fx.Module,
		itinerary_fx.Module,
		booking_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) error {
	return infra.AutoMigrate(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	server := &http.Server{
		Addr:    ":" + utils.AppConfig.AppPort,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				utils.GetLogger().Info("starting HTTP server", zap.String("port", utils.AppConfig.AppPort))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					utils.GetLogger().Fatal("server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			utils.GetLogger().Info("stopping HTTP server")
			infra.ClosePostgresql(db)
			return server.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	catalogController *controllers.CatalogController,
	venueController *controllers.VenueController,
	itineraryController *controllers.ItineraryController,
	bookingController *controllers.BookingController) *gin.Engine {

	if utils.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Trace-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
	}))

	RegisterRoutes(r, accountController, planController, catalogController, venueController, itineraryController, bookingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	catalogController *controllers.CatalogController,
	venueController *controllers.VenueController,
	itineraryController *controllers.ItineraryController,
	bookingController *controllers.BookingController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.GetProfile)

	plans := r.Group("/plans")
	plans.POST("/generate", planController.GeneratePlan)
	plans.POST("/generate/summary", planController.GeneratePlanSummary)
	plans.POST("/generate/pdf", planController.GeneratePlanPDF)

	catalog := r.Group("/catalog")
	catalog.GET("", catalogController.GetCatalog)
	catalog.GET("/venues", catalogController.BrowseVenues)
	catalog.POST("/search", catalogController.SemanticSearch)

	r.GET("/venues/:id", venueController.GetVenueById)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.POST("/venues", venueController.CreateVenue)
	admin.PUT("/venues", venueController.UpdateVenue)
	admin.DELETE("/venues/:id", venueController.DeleteVenue)

	itineraries := r.Group("/itineraries", middleware.JWTAuthMiddleware())
	itineraries.POST("", itineraryController.SaveItinerary)
	itineraries.GET("", itineraryController.ListItineraries)
	itineraries.GET("/:id", itineraryController.GetItineraryDetails)
	itineraries.DELETE("/:id", itineraryController.DeleteItinerary)
	itineraries.POST("/:id/activities", itineraryController.AddActivity)
	itineraries.DELETE("/:id/activities/:activityId", itineraryController.RemoveActivity)

	bookings := r.Group("/bookings", middleware.JWTAuthMiddleware())
	bookings.POST("", bookingController.CreateBooking)
	bookings.GET("", bookingController.ListBookings)
	bookings.PATCH("/:id/status", bookingController.UpdateBookingStatus)
}
