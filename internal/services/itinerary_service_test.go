package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"fairway/internal/models/request_models"
	"fairway/internal/models/response_models"
	"fairway/pkg/utils"
)

func samplePlan() *response_models.TripPlan {
	return &response_models.TripPlan{
		Destination: "Monterey",
		TotalCost:   3486,
		Source:      response_models.PlanSourceFallback,
		Days: []response_models.PlanDay{
			{Day: 1, Date: "2026-06-05", Activities: []response_models.PlanActivity{
				{Time: "8:30 AM", Description: "Tee time at Cypress Dunes", Category: "golf", VenueID: "g1", VenueName: "Cypress Dunes"},
				{Time: "3:00 PM", Description: "Check in at Fairway Grand", Category: "hotel"},
			}},
			{Day: 2, Date: "2026-06-06", Activities: []response_models.PlanActivity{
				{Time: "11:00 AM", Description: "Check out of Fairway Grand", Category: "hotel"},
			}},
		},
	}
}

func TestSaveGeneratedPlan(t *testing.T) {
	repo := newFakeItineraryRepo()
	service := NewItineraryService(repo)
	userId := uuid.New().String()

	id, err := service.SaveGeneratedPlan(context.Background(), userId, request_models.SaveItineraryRequest{
		Title: "June trip",
		Plan:  samplePlan(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, ok := repo.itineraries[id]
	if !ok {
		t.Fatal("itinerary not persisted")
	}
	if stored.Title != "June trip" || stored.Destination != "Monterey" {
		t.Errorf("stored = %+v", stored)
	}
	if stored.TotalCost != 3486 {
		t.Errorf("total cost = %d, want 3486", stored.TotalCost)
	}
	if len(stored.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(stored.Days))
	}
	if stored.StartDate.Format("2006-01-02") != "2026-06-05" {
		t.Errorf("start date = %v", stored.StartDate)
	}
	if stored.EndDate.Format("2006-01-02") != "2026-06-06" {
		t.Errorf("end date = %v", stored.EndDate)
	}
	if len(stored.Days[0].Activities) != 2 {
		t.Errorf("day 1 activities = %d, want 2", len(stored.Days[0].Activities))
	}
}

func TestSaveGeneratedPlanRejectsEmptyPlan(t *testing.T) {
	service := NewItineraryService(newFakeItineraryRepo())

	_, err := service.SaveGeneratedPlan(context.Background(), uuid.New().String(), request_models.SaveItineraryRequest{
		Title: "empty",
		Plan:  &response_models.TripPlan{},
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestGetItineraryDetailsEnforcesOwnership(t *testing.T) {
	repo := newFakeItineraryRepo()
	service := NewItineraryService(repo)
	owner := uuid.New().String()

	id, err := service.SaveGeneratedPlan(context.Background(), owner, request_models.SaveItineraryRequest{
		Title: "mine",
		Plan:  samplePlan(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.GetItineraryDetails(context.Background(), owner, id); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}

	if _, err := service.GetItineraryDetails(context.Background(), uuid.New().String(), id); !errors.Is(err, utils.ErrItineraryNotFound) {
		t.Fatalf("foreign read: got %v, want ErrItineraryNotFound", err)
	}
}

func TestDeleteItineraryEnforcesOwnership(t *testing.T) {
	repo := newFakeItineraryRepo()
	service := NewItineraryService(repo)
	owner := uuid.New().String()

	id, _ := service.SaveGeneratedPlan(context.Background(), owner, request_models.SaveItineraryRequest{
		Title: "mine",
		Plan:  samplePlan(),
	})

	if err := service.DeleteItinerary(context.Background(), uuid.New().String(), id); !errors.Is(err, utils.ErrItineraryNotFound) {
		t.Fatalf("foreign delete: got %v, want ErrItineraryNotFound", err)
	}
	if _, ok := repo.itineraries[id]; !ok {
		t.Fatal("itinerary vanished after rejected delete")
	}

	if err := service.DeleteItinerary(context.Background(), owner, id); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := repo.itineraries[id]; ok {
		t.Fatal("itinerary still present after delete")
	}
}

func TestAddActivityRoundTrips(t *testing.T) {
	repo := newFakeItineraryRepo()
	service := NewItineraryService(repo)
	owner := uuid.New().String()

	id, _ := service.SaveGeneratedPlan(context.Background(), owner, request_models.SaveItineraryRequest{
		Title: "mine",
		Plan:  samplePlan(),
	})

	err := service.AddActivity(context.Background(), owner, id, request_models.AddItineraryActivityRequest{
		DayNumber:   2,
		Time:        "1:30 PM",
		Description: "Lunch at the clubhouse",
		Category:    "restaurant",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	details, err := service.GetItineraryDetails(context.Background(), owner, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details.Days[1].Activities) != 2 {
		t.Errorf("day 2 activities = %d, want 2", len(details.Days[1].Activities))
	}
}
