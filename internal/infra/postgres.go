package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fairway/internal/models/db_models"
	"fairway/pkg/utils"
)

func InitPostgresql() *gorm.DB {
	dsn := utils.AppConfig.PostgresURL

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

// AutoMigrate keeps the schema aligned with the model set. The
// venue_embeddings table additionally needs the pgvector extension,
// created out of band (CREATE EXTENSION IF NOT EXISTS vector).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Venue{},
		&db_models.VenueEmbedding{},
		&db_models.Itinerary{},
		&db_models.ItineraryDay{},
		&db_models.ItineraryActivity{},
		&db_models.Booking{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
