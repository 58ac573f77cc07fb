package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fairway/internal/models/db_models"
	"fairway/internal/models/request_models"
	"fairway/internal/models/response_models"
	"fairway/internal/repositories"
	"fairway/pkg/utils"
)

type VenueServiceInterface interface {
	CreateVenue(ctx context.Context, req request_models.CreateVenueRequest) (string, error)
	UpdateVenue(ctx context.Context, req request_models.UpdateVenueRequest) error
	DeleteVenue(ctx context.Context, id uuid.UUID) error
	GetVenueById(ctx context.Context, id string) (response_models.CatalogItem, error)
}

type VenueService struct {
	venueRepo     repositories.VenueRepository
	embeddingRepo repositories.VenueEmbeddingRepository
	embeddings    utils.EmbeddingClientInterface
}

func NewVenueService(
	venueRepo repositories.VenueRepository,
	embeddingRepo repositories.VenueEmbeddingRepository,
	embeddings utils.EmbeddingClientInterface,
) VenueServiceInterface {
	return &VenueService{
		venueRepo:     venueRepo,
		embeddingRepo: embeddingRepo,
		embeddings:    embeddings,
	}
}

func (s *VenueService) CreateVenue(ctx context.Context, req request_models.CreateVenueRequest) (string, error) {
	venue := venueFromRequest(req)

	id, err := s.venueRepo.Create(ctx, &venue)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	s.refreshEmbedding(ctx, id.String(), req)
	return id.String(), nil
}

func (s *VenueService) UpdateVenue(ctx context.Context, req request_models.UpdateVenueRequest) error {
	existing, err := s.venueRepo.GetByID(ctx, req.ID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrVenueNotFound
	}

	venue := venueFromRequest(req.CreateVenueRequest)
	venue.BaseModel = existing.BaseModel

	if err := s.venueRepo.Update(ctx, &venue); err != nil {
		return err
	}

	s.refreshEmbedding(ctx, req.ID.String(), req.CreateVenueRequest)
	return nil
}

func (s *VenueService) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	if err := s.embeddingRepo.DeleteByVenueID(id.String()); err != nil {
		utils.GetLogger().Warn("failed to delete venue embedding", zap.String("venue_id", id.String()), zap.Error(err))
	}
	return s.venueRepo.Delete(ctx, id)
}

func (s *VenueService) GetVenueById(ctx context.Context, id string) (response_models.CatalogItem, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return response_models.CatalogItem{}, utils.ErrDatabaseError
	}
	if venue == nil {
		return response_models.CatalogItem{}, utils.ErrVenueNotFound
	}
	return VenueToCatalogItem(*venue), nil
}

// refreshEmbedding recomputes the venue's search vector. Embedding failures
// are logged and swallowed so admin writes never depend on the embedding
// provider being up.
func (s *VenueService) refreshEmbedding(ctx context.Context, venueID string, req request_models.CreateVenueRequest) {
	if s.embeddings == nil {
		return
	}

	text := fmt.Sprintf("%s. %s. Category: %s. Tags: %s",
		req.Name, req.Description, req.Category, strings.Join(req.Tags, ", "))

	vector, err := s.embeddings.GetEmbedding(ctx, text)
	if err != nil {
		utils.GetLogger().Warn("venue embedding failed", zap.String("venue_id", venueID), zap.Error(err))
		return
	}

	if err := s.embeddingRepo.DeleteByVenueID(venueID); err != nil {
		utils.GetLogger().Warn("stale embedding cleanup failed", zap.String("venue_id", venueID), zap.Error(err))
	}
	if err := s.embeddingRepo.Create(db_models.VenueEmbedding{
		VenueID:     venueID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Embedding:   vector,
	}); err != nil {
		utils.GetLogger().Warn("venue embedding insert failed", zap.String("venue_id", venueID), zap.Error(err))
	}
}

func venueFromRequest(req request_models.CreateVenueRequest) db_models.Venue {
	return db_models.Venue{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Address:       req.Address,
		Price:         req.Price,
		Rating:        req.Rating,
		Holes:         req.Holes,
		Par:           req.Par,
		Difficulty:    req.Difficulty,
		CuisineType:   req.CuisineType,
		DurationHours: req.DurationHours,
	}
}
