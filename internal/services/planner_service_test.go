package services

import (
	"context"
	"errors"
	"testing"

	"fairway/internal/models/request_models"
	"fairway/internal/models/response_models"
	"fairway/pkg/utils"
)

type stubCatalogService struct {
	catalog response_models.Catalog
}

func (s *stubCatalogService) ResolveCatalog(ctx context.Context, destination string, categories []string) response_models.Catalog {
	return s.catalog
}

func (s *stubCatalogService) SearchSemantic(ctx context.Context, query string, limit int) ([]response_models.CatalogItem, error) {
	return nil, utils.ErrSearchUnavailable
}

func (s *stubCatalogService) BrowseVenues(ctx context.Context, category string, page, pageSize int) ([]response_models.CatalogItem, error) {
	return nil, nil
}

type failingGenerator struct {
	err error
}

func (g *failingGenerator) GenerateTripPlan(ctx context.Context, c TripConstraints, catalog response_models.Catalog) (*response_models.TripPlan, error) {
	return nil, g.err
}

func validPlanRequest() request_models.PlanRequest {
	return request_models.PlanRequest{
		Destination: "Monterey",
		StartDate:   "2026-06-05",
		EndDate:     "2026-06-08",
		Golfers:     3,
	}
}

func TestCreateTripPlanFallsBackWhenRemoteFails(t *testing.T) {
	service := NewPlannerService(
		&stubCatalogService{catalog: testCatalog()},
		&failingGenerator{err: utils.ErrPlannerUnavailable},
		NewTripEngine(),
	)

	plan, err := service.CreateTripPlan(context.Background(), validPlanRequest())
	if err != nil {
		t.Fatalf("fallback should succeed: %v", err)
	}

	if plan.Source != response_models.PlanSourceFallback {
		t.Errorf("source = %q, want fallback", plan.Source)
	}

	found := false
	for _, d := range plan.Diagnostics {
		if d == "remote planner unavailable; deterministic fallback used" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing fallback diagnostic, got %v", plan.Diagnostics)
	}
}

func TestCreateTripPlanUsesEngineWhenNoRemoteConfigured(t *testing.T) {
	service := NewPlannerService(&stubCatalogService{catalog: testCatalog()}, nil, NewTripEngine())

	plan, err := service.CreateTripPlan(context.Background(), validPlanRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Source != response_models.PlanSourceFallback {
		t.Errorf("source = %q, want fallback", plan.Source)
	}
	for _, d := range plan.Diagnostics {
		if d == "remote planner unavailable; deterministic fallback used" {
			t.Error("no remote was configured, diagnostic should not appear")
		}
	}
}

func TestCreateTripPlanRejectsBadDates(t *testing.T) {
	service := NewPlannerService(&stubCatalogService{}, nil, NewTripEngine())

	req := validPlanRequest()
	req.StartDate = "June 5th"
	if _, err := service.CreateTripPlan(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}

	req = validPlanRequest()
	req.EndDate = "2026-06-01"
	if _, err := service.CreateTripPlan(context.Background(), req); !errors.Is(err, utils.ErrInvalidTripWindow) {
		t.Fatalf("got %v, want ErrInvalidTripWindow", err)
	}
}

func TestCreateTripPlanPropagatesConstraintErrors(t *testing.T) {
	service := NewPlannerService(&stubCatalogService{}, &failingGenerator{err: errors.New("should not run")}, NewTripEngine())

	req := validPlanRequest()
	req.Golfers = 0
	if _, err := service.CreateTripPlan(context.Background(), req); !errors.Is(err, utils.ErrInvalidPartySize) {
		t.Fatalf("got %v, want ErrInvalidPartySize", err)
	}
}
