package venue_fx

import (
	"go.uber.org/fx"

	"fairway/internal/repositories"
	"fairway/internal/services"
	"fairway/pkg/utils"
)

var Module = fx.Provide(
	provideVenueService)

func provideVenueService(
	venueRepo repositories.VenueRepository,
	embeddingRepo repositories.VenueEmbeddingRepository,
	embeddings utils.EmbeddingClientInterface,
) services.VenueServiceInterface {
	return services.NewVenueService(venueRepo, embeddingRepo, embeddings)
}
