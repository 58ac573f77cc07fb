package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fairway/internal/models/db_models"
	"fairway/internal/models/request_models"
	"fairway/internal/models/response_models"
	"fairway/internal/repositories"
	"fairway/pkg/utils"
)

type ItineraryServiceInterface interface {
	SaveGeneratedPlan(ctx context.Context, userId string, req request_models.SaveItineraryRequest) (string, error)
	GetListOfItinerariesByUserId(ctx context.Context, page, pageSize int, userId string) ([]response_models.ItineraryResponse, error)
	GetItineraryDetails(ctx context.Context, userId, itineraryId string) (*response_models.ItineraryDetailResponse, error)
	DeleteItinerary(ctx context.Context, userId, itineraryId string) error
	AddActivity(ctx context.Context, userId, itineraryId string, req request_models.AddItineraryActivityRequest) error
	RemoveActivity(ctx context.Context, userId, itineraryId string, activityId uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{itineraryRepo: itineraryRepo}
}

// SaveGeneratedPlan materializes a generated plan into itinerary rows so it
// survives independently of the catalog and planner that produced it.
func (s *ItineraryService) SaveGeneratedPlan(ctx context.Context, userId string, req request_models.SaveItineraryRequest) (string, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	plan := req.Plan
	if len(plan.Days) == 0 {
		return "", utils.ErrInvalidInput
	}

	days := make([]db_models.ItineraryDay, 0, len(plan.Days))
	for _, d := range plan.Days {
		date, err := time.Parse(dateLayout, d.Date)
		if err != nil {
			return "", utils.ErrInvalidInput
		}

		activities := make([]db_models.ItineraryActivity, 0, len(d.Activities))
		for _, a := range d.Activities {
			activities = append(activities, db_models.ItineraryActivity{
				Time:        a.Time,
				Description: a.Description,
				Category:    a.Category,
				VenueID:     a.VenueID,
				VenueName:   a.VenueName,
				Notes:       a.Notes,
			})
		}

		days = append(days, db_models.ItineraryDay{
			DayNumber:  d.Day,
			Date:       date,
			Activities: activities,
		})
	}

	startDate := days[0].Date
	endDate := days[len(days)-1].Date

	itinerary := db_models.Itinerary{
		UserID:      userUUID,
		Title:       req.Title,
		Destination: plan.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalCost:   plan.TotalCost,
		PlanSource:  plan.Source,
		Days:        days,
	}

	id, err := s.itineraryRepo.Create(ctx, &itinerary)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (s *ItineraryService) GetListOfItinerariesByUserId(ctx context.Context, page, pageSize int, userId string) ([]response_models.ItineraryResponse, error) {
	itineraries, err := s.itineraryRepo.ListByUserId(ctx, page, pageSize, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		responses = append(responses, itinerarySummary(it))
	}
	return responses, nil
}

func (s *ItineraryService) GetItineraryDetails(ctx context.Context, userId, itineraryId string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.ownedItinerary(ctx, userId, itineraryId)
	if err != nil {
		return nil, err
	}

	days := make([]response_models.PlanDay, 0, len(itinerary.Days))
	for _, d := range itinerary.Days {
		activities := make([]response_models.PlanActivity, 0, len(d.Activities))
		for _, a := range d.Activities {
			activities = append(activities, response_models.PlanActivity{
				Time:        a.Time,
				Description: a.Description,
				Category:    a.Category,
				VenueID:     a.VenueID,
				VenueName:   a.VenueName,
				Notes:       a.Notes,
			})
		}
		days = append(days, response_models.PlanDay{
			Day:        d.DayNumber,
			Date:       d.Date.Format(dateLayout),
			Activities: activities,
		})
	}

	return &response_models.ItineraryDetailResponse{
		ItineraryResponse: itinerarySummary(*itinerary),
		Days:              days,
	}, nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, userId, itineraryId string) error {
	if _, err := s.ownedItinerary(ctx, userId, itineraryId); err != nil {
		return err
	}
	return s.itineraryRepo.Delete(ctx, itineraryId)
}

func (s *ItineraryService) AddActivity(ctx context.Context, userId, itineraryId string, req request_models.AddItineraryActivityRequest) error {
	if _, err := s.ownedItinerary(ctx, userId, itineraryId); err != nil {
		return err
	}
	return s.itineraryRepo.AddActivity(ctx, itineraryId, req.DayNumber, db_models.ItineraryActivity{
		Time:        req.Time,
		Description: req.Description,
		Category:    req.Category,
		VenueID:     req.VenueID,
		VenueName:   req.VenueName,
		Notes:       req.Notes,
	})
}

func (s *ItineraryService) RemoveActivity(ctx context.Context, userId, itineraryId string, activityId uuid.UUID) error {
	if _, err := s.ownedItinerary(ctx, userId, itineraryId); err != nil {
		return err
	}
	return s.itineraryRepo.RemoveActivity(ctx, itineraryId, activityId)
}

// ownedItinerary fetches the itinerary and enforces ownership. A foreign
// itinerary reads as not found so the API leaks nothing about other users.
func (s *ItineraryService) ownedItinerary(ctx context.Context, userId, itineraryId string) (*db_models.Itinerary, error) {
	itinerary, err := s.itineraryRepo.GetDetailsById(ctx, itineraryId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil || itinerary.UserID.String() != userId {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}

func itinerarySummary(it db_models.Itinerary) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		ID:          it.ID.String(),
		Title:       it.Title,
		Destination: it.Destination,
		StartDate:   it.StartDate.Format(dateLayout),
		EndDate:     it.EndDate.Format(dateLayout),
		TotalCost:   it.TotalCost,
		PlanSource:  it.PlanSource,
	}
}
