package services

import (
	"context"
	"errors"
	"testing"

	"fairway/internal/models/response_models"
	"fairway/pkg/utils"
)

type scriptedPlanClient struct {
	responses []string
	errs      []error
	calls     int
}

func (c *scriptedPlanClient) GeneratePlanJSON(ctx context.Context, prompt string) (string, error) {
	i := c.calls
	c.calls++
	if i < len(c.errs) && c.errs[i] != nil {
		return "", c.errs[i]
	}
	if i < len(c.responses) {
		return c.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

func validRemotePlan() string {
	return `{
	  "days": [
	    {"day": 1, "date": "2026-06-05", "activities": [
	      {"time": "8:30 AM", "description": "Tee time at Cypress Dunes", "category": "golf", "venue_id": "g1"},
	      {"time": "3:00 PM", "description": "Check in at Fairway Grand", "category": "hotel", "venue_id": "h1"},
	      {"time": "7:00 PM", "description": "Dinner at Clubhouse Grill", "category": "restaurant", "venue_id": "r1"}
	    ]},
	    {"day": 2, "date": "2026-06-06", "activities": [
	      {"time": "8:30 AM", "description": "Tee time at Harbor Links", "category": "golf", "venue_id": "g2"}
	    ]},
	    {"day": 3, "date": "2026-06-07", "activities": [
	      {"time": "11:00 AM", "description": "Check out of Fairway Grand", "category": "hotel", "venue_id": "h1"}
	    ]}
	  ]
	}`
}

func remoteConstraints() TripConstraints {
	return TripConstraints{
		Destination:        "Monterey",
		StartDate:          day("2026-06-05"),
		EndDate:            day("2026-06-08"),
		Golfers:            3,
		NeedsVehicleRental: true,
	}
}

func TestGeminiPlannerUsesRemoteSchedule(t *testing.T) {
	client := &scriptedPlanClient{responses: []string{validRemotePlan()}}
	gen := NewGeminiPlanGenerator(client)

	plan, err := gen.GenerateTripPlan(context.Background(), remoteConstraints(), testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Source != response_models.PlanSourceGemini {
		t.Errorf("source = %q, want %q", plan.Source, response_models.PlanSourceGemini)
	}
	if len(plan.Days) != 3 {
		t.Fatalf("day count = %d, want 3", len(plan.Days))
	}

	// Venue references are rebound against the deterministic selection.
	first := plan.Days[0].Activities[0]
	if first.VenueID != "g1" || first.VenueName != "Cypress Dunes" {
		t.Errorf("venue rebind failed: %+v", first)
	}

	// Costs ignore the model output entirely.
	wantTotal := int64(189+159+175)*3 + 389*3 + 2*100*3 + 50*3
	if plan.TotalCost != wantTotal {
		t.Errorf("total = %d, want %d", plan.TotalCost, wantTotal)
	}
}

func TestGeminiPlannerStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validRemotePlan() + "\n```"
	client := &scriptedPlanClient{responses: []string{fenced}}
	gen := NewGeminiPlanGenerator(client)

	if _, err := gen.GenerateTripPlan(context.Background(), remoteConstraints(), testCatalog()); err != nil {
		t.Fatalf("fenced JSON rejected: %v", err)
	}
}

func TestGeminiPlannerRetriesThenSucceeds(t *testing.T) {
	client := &scriptedPlanClient{
		errs:      []error{errors.New("transient"), nil},
		responses: []string{"", validRemotePlan()},
	}
	gen := NewGeminiPlanGenerator(client)

	if _, err := gen.GenerateTripPlan(context.Background(), remoteConstraints(), testCatalog()); err != nil {
		t.Fatalf("retry path failed: %v", err)
	}
	if client.calls != 2 {
		t.Errorf("calls = %d, want 2", client.calls)
	}
}

func TestGeminiPlannerRejectsWrongDayCount(t *testing.T) {
	short := `{"days": [{"day": 1, "date": "2026-06-05", "activities": [{"time": "8:30 AM", "description": "x"}]}]}`
	client := &scriptedPlanClient{responses: []string{short, short, short}}
	gen := NewGeminiPlanGenerator(client)

	_, err := gen.GenerateTripPlan(context.Background(), remoteConstraints(), testCatalog())
	if !errors.Is(err, utils.ErrPlannerUnavailable) {
		t.Fatalf("got %v, want ErrPlannerUnavailable after exhausting retries", err)
	}
	if client.calls != 3 {
		t.Errorf("calls = %d, want 3", client.calls)
	}
}

func TestGeminiPlannerUnknownVenueDegrades(t *testing.T) {
	plan := `{
	  "days": [
	    {"day": 1, "date": "2026-06-05", "activities": [
	      {"time": "8:30 AM", "description": "Tee time somewhere", "category": "golf", "venue_id": "bogus"}
	    ]},
	    {"day": 2, "date": "2026-06-06", "activities": [{"time": "9:00 AM", "description": "x", "category": "weird"}]},
	    {"day": 3, "date": "2026-06-07", "activities": [{"time": "9:00 AM", "description": "y"}]}
	  ]
	}`
	client := &scriptedPlanClient{responses: []string{plan}}
	gen := NewGeminiPlanGenerator(client)

	result, err := gen.GenerateTripPlan(context.Background(), remoteConstraints(), testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := result.Days[0].Activities[0]
	if first.VenueID != "" || first.VenueName != "" {
		t.Errorf("unknown venue should be unreferenced, got %+v", first)
	}

	second := result.Days[1].Activities[0]
	if second.Category != response_models.ActivityCategoryOther {
		t.Errorf("unknown category normalized to %q, want other", second.Category)
	}
}
