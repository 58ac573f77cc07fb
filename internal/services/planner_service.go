package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fairway/internal/models/request_models"
	"fairway/internal/models/response_models"
	"fairway/pkg/utils"
)

const dateLayout = "2006-01-02"

type PlannerServiceInterface interface {
	CreateTripPlan(ctx context.Context, req request_models.PlanRequest) (*response_models.TripPlan, error)
	RenderPlanSummary(plan *response_models.TripPlan) string
}

// PlannerService orchestrates a plan request: resolve the venue catalog,
// then run the remote generator when one is wired, falling back to the
// deterministic engine whenever the remote attempt fails.
type PlannerService struct {
	catalog CatalogServiceInterface
	remote  PlanGeneratorInterface // nil when no remote planner is configured
	engine  PlanGeneratorInterface
}

func NewPlannerService(catalog CatalogServiceInterface, remote PlanGeneratorInterface, engine PlanGeneratorInterface) PlannerServiceInterface {
	return &PlannerService{
		catalog: catalog,
		remote:  remote,
		engine:  engine,
	}
}

func (s *PlannerService) CreateTripPlan(ctx context.Context, req request_models.PlanRequest) (*response_models.TripPlan, error) {
	constraints, err := constraintsFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := ValidateConstraints(constraints); err != nil {
		return nil, err
	}

	catalog := s.catalog.ResolveCatalog(ctx, constraints.Destination, constraints.DesiredActivities)

	if s.remote != nil {
		plan, err := s.remote.GenerateTripPlan(ctx, constraints, catalog)
		if err == nil {
			return plan, nil
		}
		utils.GetLogger().Warn("remote planner failed, using deterministic engine",
			zap.String("destination", constraints.Destination),
			zap.Error(err))

		plan, engineErr := s.engine.GenerateTripPlan(ctx, constraints, catalog)
		if engineErr != nil {
			return nil, engineErr
		}
		plan.Diagnostics = append(plan.Diagnostics, "remote planner unavailable; deterministic fallback used")
		return plan, nil
	}

	return s.engine.GenerateTripPlan(ctx, constraints, catalog)
}

func (s *PlannerService) RenderPlanSummary(plan *response_models.TripPlan) string {
	return RenderSummary(plan, plan.Destination)
}

func constraintsFromRequest(req request_models.PlanRequest) (TripConstraints, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return TripConstraints{}, utils.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return TripConstraints{}, utils.ErrInvalidInput
	}

	return TripConstraints{
		Destination:        req.Destination,
		StartDate:          start,
		EndDate:            end,
		Golfers:            req.Golfers,
		BudgetMin:          req.BudgetMin,
		BudgetMax:          req.BudgetMax,
		DesiredActivities:  req.DesiredActivities,
		NeedsVehicleRental: req.NeedsVehicleRental,
		VehicleType:        req.VehicleType,
	}, nil
}
