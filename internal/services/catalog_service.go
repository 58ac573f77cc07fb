package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"fairway/internal/models/db_models"
	"fairway/internal/models/response_models"
	"fairway/internal/repositories"
	"fairway/pkg/utils"
)

// Provider boundaries, satisfied by the clients in internal/providers.
type GolfSearcher interface {
	SearchCourses(ctx context.Context, destination string) ([]response_models.CatalogItem, error)
}

type HotelSearcher interface {
	SearchHotels(ctx context.Context, destination string) ([]response_models.CatalogItem, error)
}

type RestaurantSearcher interface {
	SearchRestaurants(ctx context.Context, destination string) ([]response_models.CatalogItem, error)
}

type ExperienceSearcher interface {
	SearchExperiences(ctx context.Context, destination string, categories []string) ([]response_models.CatalogItem, error)
}

type CatalogServiceInterface interface {
	ResolveCatalog(ctx context.Context, destination string, categories []string) response_models.Catalog
	SearchSemantic(ctx context.Context, query string, limit int) ([]response_models.CatalogItem, error)
	BrowseVenues(ctx context.Context, category string, page, pageSize int) ([]response_models.CatalogItem, error)
}

type CatalogService struct {
	golf        GolfSearcher
	hotels      HotelSearcher
	restaurants RestaurantSearcher
	experiences ExperienceSearcher

	embeddings    utils.EmbeddingClientInterface
	embeddingRepo repositories.VenueEmbeddingRepository
	venueRepo     repositories.VenueRepository
}

func NewCatalogService(
	golf GolfSearcher,
	hotels HotelSearcher,
	restaurants RestaurantSearcher,
	experiences ExperienceSearcher,
	embeddings utils.EmbeddingClientInterface,
	embeddingRepo repositories.VenueEmbeddingRepository,
	venueRepo repositories.VenueRepository,
) CatalogServiceInterface {
	return &CatalogService{
		golf:          golf,
		hotels:        hotels,
		restaurants:   restaurants,
		experiences:   experiences,
		embeddings:    embeddings,
		embeddingRepo: embeddingRepo,
		venueRepo:     venueRepo,
	}
}

// ResolveCatalog fans out to the four providers concurrently and joins
// before returning. A failing provider leaves its pool empty; the planner
// degrades instead of the request failing.
func (s *CatalogService) ResolveCatalog(ctx context.Context, destination string, categories []string) response_models.Catalog {
	var catalog response_models.Catalog
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		items, err := s.golf.SearchCourses(ctx, destination)
		if err != nil {
			utils.GetLogger().Warn("golf provider failed", zap.Error(err))
			return
		}
		catalog.GolfCourses = items
	}()

	go func() {
		defer wg.Done()
		items, err := s.hotels.SearchHotels(ctx, destination)
		if err != nil {
			utils.GetLogger().Warn("hotel provider failed", zap.Error(err))
			return
		}
		catalog.Hotels = items
	}()

	go func() {
		defer wg.Done()
		items, err := s.restaurants.SearchRestaurants(ctx, destination)
		if err != nil {
			utils.GetLogger().Warn("restaurant provider failed", zap.Error(err))
			return
		}
		catalog.Restaurants = items
	}()

	go func() {
		defer wg.Done()
		items, err := s.experiences.SearchExperiences(ctx, destination, categories)
		if err != nil {
			utils.GetLogger().Warn("experience provider failed", zap.Error(err))
			return
		}
		catalog.Experiences = items
	}()

	wg.Wait()
	return catalog
}

// SearchSemantic embeds the query and ranks stored venues by vector
// similarity.
func (s *CatalogService) SearchSemantic(ctx context.Context, query string, limit int) ([]response_models.CatalogItem, error) {
	if s.embeddings == nil {
		return nil, utils.ErrSearchUnavailable
	}

	vector, err := s.embeddings.GetEmbedding(ctx, query)
	if err != nil {
		utils.GetLogger().Warn("query embedding failed", zap.Error(err))
		return nil, utils.ErrSearchUnavailable
	}

	matches, err := s.embeddingRepo.ListByVector(vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(matches) == 0 {
		return []response_models.CatalogItem{}, nil
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.VenueID)
	}

	venues, err := s.venueRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Preserve similarity order from the vector lookup.
	byID := make(map[string]db_models.Venue, len(venues))
	for _, v := range venues {
		byID[v.ID.String()] = v
	}

	items := make([]response_models.CatalogItem, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			items = append(items, VenueToCatalogItem(v))
		}
	}
	return items, nil
}

func (s *CatalogService) BrowseVenues(ctx context.Context, category string, page, pageSize int) ([]response_models.CatalogItem, error) {
	var venues []db_models.Venue
	var err error

	if category == "" {
		venues, err = s.venueRepo.List(ctx, page, pageSize)
	} else {
		venues, err = s.venueRepo.ListByCategory(ctx, category, page, pageSize)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.CatalogItem, 0, len(venues))
	for _, v := range venues {
		items = append(items, VenueToCatalogItem(v))
	}
	return items, nil
}

// VenueToCatalogItem converts a stored venue row into the canonical
// catalog shape the planner consumes.
func VenueToCatalogItem(v db_models.Venue) response_models.CatalogItem {
	return response_models.CatalogItem{
		ID:            v.ID.String(),
		Name:          v.Name,
		Category:      v.Category,
		Price:         v.Price,
		Rating:        v.Rating,
		Description:   v.Description,
		Address:       v.Address,
		Holes:         v.Holes,
		Par:           v.Par,
		Difficulty:    v.Difficulty,
		CuisineType:   v.CuisineType,
		DurationHours: v.DurationHours,
	}
}
