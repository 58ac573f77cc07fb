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

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userId string, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	GetListOfBookingsByUserId(ctx context.Context, page, pageSize int, userId string) ([]response_models.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, userId, bookingId, status string) error
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	venueRepo   repositories.VenueRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository, venueRepo repositories.VenueRepository) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, userId string, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	venueUUID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if venue == nil {
		return nil, utils.ErrVenueNotFound
	}

	booking := db_models.Booking{
		UserID:    userUUID,
		VenueID:   venueUUID,
		Category:  venue.Category,
		Date:      date,
		PartySize: req.PartySize,
		Status:    db_models.BookingStatusRequested,
		Notes:     req.Notes,
	}

	id, err := s.bookingRepo.Create(ctx, &booking)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.BookingResponse{
		ID:        id.String(),
		VenueID:   venue.ID.String(),
		VenueName: venue.Name,
		Category:  venue.Category,
		Date:      date.Format(dateLayout),
		PartySize: req.PartySize,
		Status:    db_models.BookingStatusRequested,
		Notes:     req.Notes,
	}, nil
}

func (s *BookingService) GetListOfBookingsByUserId(ctx context.Context, page, pageSize int, userId string) ([]response_models.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListByUserId(ctx, page, pageSize, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, response_models.BookingResponse{
			ID:        b.ID.String(),
			VenueID:   b.VenueID.String(),
			VenueName: b.Venue.Name,
			Category:  b.Category,
			Date:      b.Date.Format(dateLayout),
			PartySize: b.PartySize,
			Status:    b.Status,
			Notes:     b.Notes,
		})
	}
	return responses, nil
}

func (s *BookingService) UpdateBookingStatus(ctx context.Context, userId, bookingId, status string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil || booking.UserID.String() != userId {
		return utils.ErrBookingNotFound
	}

	if !validBookingTransition(booking.Status, status) {
		return utils.ErrInvalidTransition
	}
	return s.bookingRepo.UpdateStatus(ctx, bookingId, status)
}

// validBookingTransition encodes the booking lifecycle: a request can be
// confirmed or cancelled, a confirmed booking can only be cancelled, and
// cancelled is terminal.
func validBookingTransition(from, to string) bool {
	switch from {
	case db_models.BookingStatusRequested:
		return to == db_models.BookingStatusConfirmed || to == db_models.BookingStatusCancelled
	case db_models.BookingStatusConfirmed:
		return to == db_models.BookingStatusCancelled
	default:
		return false
	}
}
