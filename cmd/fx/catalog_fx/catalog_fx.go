package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fairway/internal/providers"
	"fairway/internal/repositories"
	"fairway/internal/services"
	"fairway/pkg/utils"
)

var Module = fx.Provide(
	provideGolfClient,
	provideHotelClient,
	provideRestaurantClient,
	provideExperienceClient,
	provideEmbeddingClient,
	provideVenueRepo,
	provideVenueEmbeddingRepo,
	provideCatalogService)

func provideGolfClient() services.GolfSearcher {
	return providers.NewGolfClient(providers.Config{
		BaseURL: utils.AppConfig.GolfAPIURL,
		APIKey:  utils.AppConfig.GolfAPIKey,
	})
}

func provideHotelClient() services.HotelSearcher {
	return providers.NewHotelClient(providers.Config{
		BaseURL: utils.AppConfig.HotelAPIURL,
		APIKey:  utils.AppConfig.HotelAPIKey,
	})
}

func provideRestaurantClient() services.RestaurantSearcher {
	return providers.NewRestaurantClient(providers.Config{
		BaseURL: utils.AppConfig.RestaurantAPIURL,
		APIKey:  utils.AppConfig.RestaurantAPIKey,
	})
}

func provideExperienceClient() services.ExperienceSearcher {
	return providers.NewExperienceClient(providers.Config{
		BaseURL: utils.AppConfig.ExperienceAPIURL,
		APIKey:  utils.AppConfig.ExperienceAPIKey,
	})
}

// provideEmbeddingClient picks the embedding backend from config. Returning
// nil disables semantic search without taking down the rest of the app.
func provideEmbeddingClient() utils.EmbeddingClientInterface {
	switch utils.AppConfig.EmbeddingProvider {
	case "openai":
		if utils.AppConfig.OpenAIAPIKey == "" {
			return nil
		}
		return utils.NewOpenAIEmbeddingClient(utils.AppConfig.OpenAIAPIKey, utils.AppConfig.OpenAIModel)
	case "gemini":
		if utils.AppConfig.GeminiAPIKey == "" {
			return nil
		}
		client, err := utils.NewGeminiEmbeddingClient(utils.AppConfig.GeminiAPIKey, "")
		if err != nil {
			utils.GetLogger().Warn("gemini embedding client init failed", zap.Error(err))
			return nil
		}
		return client
	default:
		return nil
	}
}

func provideVenueRepo(db *gorm.DB) repositories.VenueRepository {
	return repositories.NewVenueRepository(db)
}

func provideVenueEmbeddingRepo(db *gorm.DB) repositories.VenueEmbeddingRepository {
	return repositories.NewVenueEmbeddingRepository(db)
}

func provideCatalogService(
	golf services.GolfSearcher,
	hotels services.HotelSearcher,
	restaurants services.RestaurantSearcher,
	experiences services.ExperienceSearcher,
	embeddings utils.EmbeddingClientInterface,
	embeddingRepo repositories.VenueEmbeddingRepository,
	venueRepo repositories.VenueRepository,
) services.CatalogServiceInterface {
	return services.NewCatalogService(golf, hotels, restaurants, experiences, embeddings, embeddingRepo, venueRepo)
}
