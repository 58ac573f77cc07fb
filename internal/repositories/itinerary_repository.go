package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fairway/internal/models/db_models"
)

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error)
	ListByUserId(ctx context.Context, page, pageSize int, userId string) ([]db_models.Itinerary, error)
	GetDetailsById(ctx context.Context, itineraryId string) (*db_models.Itinerary, error)
	Delete(ctx context.Context, itineraryId string) error
	AddActivity(ctx context.Context, itineraryId string, dayNumber int, activity db_models.ItineraryActivity) error
	RemoveActivity(ctx context.Context, itineraryId string, activityId uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// Create persists the itinerary with its materialized days and activities
// in one transaction.
func (r *itineraryRepository) Create(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(itinerary).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return itinerary.ID, nil
}

func (r *itineraryRepository) ListByUserId(ctx context.Context, page, pageSize int, userId string) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at desc").
		Offset(offset).
		Limit(pageSize).
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) GetDetailsById(ctx context.Context, itineraryId string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number asc")
		}).
		Preload("Days.Activities").
		First(&itinerary, "id = ?", itineraryId).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) Delete(ctx context.Context, itineraryId string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dayIds []uuid.UUID
		if err := tx.Model(&db_models.ItineraryDay{}).
			Where("itinerary_id = ?", itineraryId).
			Pluck("id", &dayIds).Error; err != nil {
			return err
		}

		if len(dayIds) > 0 {
			if err := tx.Delete(&db_models.ItineraryActivity{}, "itinerary_day_id IN ?", dayIds).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&db_models.ItineraryDay{}, "itinerary_id = ?", itineraryId).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Itinerary{}, "id = ?", itineraryId).Error
	})
}

func (r *itineraryRepository) AddActivity(ctx context.Context, itineraryId string, dayNumber int, activity db_models.ItineraryActivity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var day db_models.ItineraryDay
		err := tx.Where("itinerary_id = ? AND day_number = ?", itineraryId, dayNumber).
			First(&day).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Grow the itinerary by one day at a time up to the requested day.
			var itinerary db_models.Itinerary
			if err := tx.First(&itinerary, "id = ?", itineraryId).Error; err != nil {
				return err
			}
			day = db_models.ItineraryDay{
				ItineraryID: itinerary.ID,
				DayNumber:   dayNumber,
				Date:        itinerary.StartDate.AddDate(0, 0, dayNumber-1),
			}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		activity.ItineraryDayID = day.ID
		return tx.Create(&activity).Error
	})
}

func (r *itineraryRepository) RemoveActivity(ctx context.Context, itineraryId string, activityId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND itinerary_day_id IN (?)",
			activityId,
			r.db.Model(&db_models.ItineraryDay{}).
				Select("id").
				Where("itinerary_id = ?", itineraryId),
		).
		Delete(&db_models.ItineraryActivity{}).Error
}
