package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidTripWindow  = errors.New("trip end date is before start date")
	ErrInvalidPartySize   = errors.New("golfer count must be at least 1")
	ErrInvalidBudget      = errors.New("budget minimum exceeds budget maximum")
	ErrVenueNotFound      = errors.New("venue not found")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPlannerUnavailable = errors.New("plan generator unavailable")
	ErrSearchUnavailable  = errors.New("semantic search not configured")
	ErrDatabaseError      = errors.New("database error")
)
