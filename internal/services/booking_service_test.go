package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"fairway/internal/models/db_models"
	"fairway/internal/models/request_models"
	"fairway/pkg/utils"
)

func seedVenue(repo *fakeVenueRepo) db_models.Venue {
	venue := db_models.Venue{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Cypress Dunes",
		Category:  "golf_course",
		Price:     189,
	}
	repo.venues[venue.ID.String()] = venue
	return venue
}

func TestCreateBooking(t *testing.T) {
	venueRepo := newFakeVenueRepo()
	venue := seedVenue(venueRepo)
	service := NewBookingService(newFakeBookingRepo(), venueRepo)
	userId := uuid.New().String()

	booking, err := service.CreateBooking(context.Background(), userId, request_models.CreateBookingRequest{
		VenueID:   venue.ID.String(),
		Date:      "2026-06-05",
		PartySize: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.Status != db_models.BookingStatusRequested {
		t.Errorf("status = %q, want requested", booking.Status)
	}
	if booking.VenueName != "Cypress Dunes" {
		t.Errorf("venue name = %q", booking.VenueName)
	}
	if booking.Category != "golf_course" {
		t.Errorf("category = %q, want the venue's category", booking.Category)
	}
}

func TestCreateBookingUnknownVenue(t *testing.T) {
	service := NewBookingService(newFakeBookingRepo(), newFakeVenueRepo())

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), request_models.CreateBookingRequest{
		VenueID:   uuid.New().String(),
		Date:      "2026-06-05",
		PartySize: 2,
	})
	if !errors.Is(err, utils.ErrVenueNotFound) {
		t.Fatalf("got %v, want ErrVenueNotFound", err)
	}
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	venueRepo := newFakeVenueRepo()
	venue := seedVenue(venueRepo)
	service := NewBookingService(newFakeBookingRepo(), venueRepo)

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), request_models.CreateBookingRequest{
		VenueID:   venue.ID.String(),
		Date:      "next friday",
		PartySize: 2,
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{db_models.BookingStatusRequested, db_models.BookingStatusConfirmed, true},
		{db_models.BookingStatusRequested, db_models.BookingStatusCancelled, true},
		{db_models.BookingStatusConfirmed, db_models.BookingStatusCancelled, true},
		{db_models.BookingStatusConfirmed, db_models.BookingStatusRequested, false},
		{db_models.BookingStatusCancelled, db_models.BookingStatusConfirmed, false},
		{db_models.BookingStatusCancelled, db_models.BookingStatusRequested, false},
	}

	for _, tc := range cases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			bookingRepo := newFakeBookingRepo()
			venueRepo := newFakeVenueRepo()
			venue := seedVenue(venueRepo)
			service := NewBookingService(bookingRepo, venueRepo)
			userId := uuid.New()

			booking := db_models.Booking{
				BaseModel: db_models.BaseModel{ID: uuid.New()},
				UserID:    userId,
				VenueID:   venue.ID,
				Status:    tc.from,
			}
			bookingRepo.bookings[booking.ID.String()] = booking

			err := service.UpdateBookingStatus(context.Background(), userId.String(), booking.ID.String(), tc.to)
			if tc.allowed && err != nil {
				t.Fatalf("%s -> %s should be allowed: %v", tc.from, tc.to, err)
			}
			if !tc.allowed && !errors.Is(err, utils.ErrInvalidTransition) {
				t.Fatalf("%s -> %s: got %v, want ErrInvalidTransition", tc.from, tc.to, err)
			}
		})
	}
}

func TestUpdateBookingStatusEnforcesOwnership(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	venueRepo := newFakeVenueRepo()
	venue := seedVenue(venueRepo)
	service := NewBookingService(bookingRepo, venueRepo)

	booking := db_models.Booking{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		UserID:    uuid.New(),
		VenueID:   venue.ID,
		Status:    db_models.BookingStatusRequested,
	}
	bookingRepo.bookings[booking.ID.String()] = booking

	err := service.UpdateBookingStatus(context.Background(), uuid.New().String(), booking.ID.String(), db_models.BookingStatusConfirmed)
	if !errors.Is(err, utils.ErrBookingNotFound) {
		t.Fatalf("foreign booking: got %v, want ErrBookingNotFound", err)
	}
}
