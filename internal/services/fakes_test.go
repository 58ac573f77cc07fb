package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"fairway/internal/models/db_models"
	"fairway/internal/models/response_models"
)

// In-memory repositories shared by the service tests.

type fakeVenueRepo struct {
	venues map[string]db_models.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: make(map[string]db_models.Venue)}
}

func (r *fakeVenueRepo) Create(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error) {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	r.venues[venue.ID.String()] = *venue
	return venue.ID, nil
}

func (r *fakeVenueRepo) Update(ctx context.Context, venue *db_models.Venue) error {
	r.venues[venue.ID.String()] = *venue
	return nil
}

func (r *fakeVenueRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.venues, id.String())
	return nil
}

func (r *fakeVenueRepo) GetByID(ctx context.Context, id string) (*db_models.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *fakeVenueRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error) {
	return r.all(), nil
}

func (r *fakeVenueRepo) ListByCategory(ctx context.Context, category string, page, pageSize int) ([]db_models.Venue, error) {
	var out []db_models.Venue
	for _, v := range r.all() {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVenueRepo) ListByIDs(ctx context.Context, ids []string) ([]db_models.Venue, error) {
	var out []db_models.Venue
	for _, id := range ids {
		if v, ok := r.venues[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVenueRepo) all() []db_models.Venue {
	out := make([]db_models.Venue, 0, len(r.venues))
	for _, v := range r.venues {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

type fakeEmbeddingRepo struct {
	rows []db_models.VenueEmbedding
}

func (r *fakeEmbeddingRepo) Create(embedding db_models.VenueEmbedding) error {
	r.rows = append(r.rows, embedding)
	return nil
}

func (r *fakeEmbeddingRepo) DeleteByVenueID(venueID string) error {
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.VenueID != venueID {
			kept = append(kept, row)
		}
	}
	r.rows = kept
	return nil
}

func (r *fakeEmbeddingRepo) ListByVector(vector pgvector.Vector, limit int) ([]db_models.VenueEmbedding, error) {
	if limit <= 0 || limit > len(r.rows) {
		limit = len(r.rows)
	}
	return r.rows[:limit], nil
}

type fakeEmbeddingClient struct {
	err error
}

func (c *fakeEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if c.err != nil {
		return pgvector.Vector{}, c.err
	}
	return pgvector.NewVector([]float32{0.1, 0.2, 0.3}), nil
}

type fakeBookingRepo struct {
	bookings map[string]db_models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]db_models.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *db_models.Booking) (uuid.UUID, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	r.bookings[booking.ID.String()] = *booking
	return booking.ID, nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*db_models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBookingRepo) ListByUserId(ctx context.Context, page, pageSize int, userId string) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, b := range r.bookings {
		if b.UserID.String() == userId {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	b := r.bookings[id]
	b.Status = status
	r.bookings[id] = b
	return nil
}

type fakeItineraryRepo struct {
	itineraries map[string]db_models.Itinerary
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{itineraries: make(map[string]db_models.Itinerary)}
}

func (r *fakeItineraryRepo) Create(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error) {
	if itinerary.ID == uuid.Nil {
		itinerary.ID = uuid.New()
	}
	r.itineraries[itinerary.ID.String()] = *itinerary
	return itinerary.ID, nil
}

func (r *fakeItineraryRepo) ListByUserId(ctx context.Context, page, pageSize int, userId string) ([]db_models.Itinerary, error) {
	var out []db_models.Itinerary
	for _, it := range r.itineraries {
		if it.UserID.String() == userId {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeItineraryRepo) GetDetailsById(ctx context.Context, itineraryId string) (*db_models.Itinerary, error) {
	it, ok := r.itineraries[itineraryId]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *fakeItineraryRepo) Delete(ctx context.Context, itineraryId string) error {
	delete(r.itineraries, itineraryId)
	return nil
}

func (r *fakeItineraryRepo) AddActivity(ctx context.Context, itineraryId string, dayNumber int, activity db_models.ItineraryActivity) error {
	it := r.itineraries[itineraryId]
	for i := range it.Days {
		if it.Days[i].DayNumber == dayNumber {
			it.Days[i].Activities = append(it.Days[i].Activities, activity)
			r.itineraries[itineraryId] = it
			return nil
		}
	}
	it.Days = append(it.Days, db_models.ItineraryDay{DayNumber: dayNumber, Activities: []db_models.ItineraryActivity{activity}})
	r.itineraries[itineraryId] = it
	return nil
}

func (r *fakeItineraryRepo) RemoveActivity(ctx context.Context, itineraryId string, activityId uuid.UUID) error {
	it := r.itineraries[itineraryId]
	for i := range it.Days {
		kept := it.Days[i].Activities[:0]
		for _, a := range it.Days[i].Activities {
			if a.ID != activityId {
				kept = append(kept, a)
			}
		}
		it.Days[i].Activities = kept
	}
	r.itineraries[itineraryId] = it
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]db_models.Account)}
}

func (r *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.accounts[account.Email] = *account
	return nil
}

func (r *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, a := range r.accounts {
		if a.ID.String() == id {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	a, ok := r.accounts[email]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// Static provider stand-ins for the catalog fan-out tests.

type staticSearcher struct {
	items []response_models.CatalogItem
	err   error
}

func (s *staticSearcher) SearchCourses(ctx context.Context, destination string) ([]response_models.CatalogItem, error) {
	return s.items, s.err
}

func (s *staticSearcher) SearchHotels(ctx context.Context, destination string) ([]response_models.CatalogItem, error) {
	return s.items, s.err
}

func (s *staticSearcher) SearchRestaurants(ctx context.Context, destination string) ([]response_models.CatalogItem, error) {
	return s.items, s.err
}

func (s *staticSearcher) SearchExperiences(ctx context.Context, destination string, categories []string) ([]response_models.CatalogItem, error) {
	return s.items, s.err
}
