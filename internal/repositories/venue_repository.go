package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fairway/internal/models/db_models"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error)
	Update(ctx context.Context, venue *db_models.Venue) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Venue, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error)
	ListByCategory(ctx context.Context, category string, page, pageSize int) ([]db_models.Venue, error)
	ListByIDs(ctx context.Context, ids []string) ([]db_models.Venue, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(venue).Error; err != nil {
		return uuid.Nil, err
	}
	return venue.ID, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *db_models.Venue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(venue)
		if result.Error != nil {
			return fmt.Errorf("failed to update venue: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *venueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Venue{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Read helpers return a default value plus nil error when no rows match.

func (r *venueRepository) GetByID(ctx context.Context, id string) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("name asc").
		Find(&venues).Error

	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) ListByCategory(ctx context.Context, category string, page, pageSize int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Offset(offset).
		Limit(pageSize).
		Order("rating desc").
		Find(&venues).Error

	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) ListByIDs(ctx context.Context, ids []string) ([]db_models.Venue, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var venues []db_models.Venue
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&venues).Error

	if err != nil {
		return nil, err
	}
	return venues, nil
}
