package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fairway/internal/models/response_models"
	"fairway/pkg/utils"
)

// GeminiPlanGenerator is the remote planning strategy. It asks the model for
// the day-by-day schedule only; venue selection and every cost figure stay
// deterministic so the totals invariant holds regardless of what the model
// returns.
type GeminiPlanGenerator struct {
	client      utils.PlanModelClient
	maxAttempts int
}

func NewGeminiPlanGenerator(client utils.PlanModelClient) *GeminiPlanGenerator {
	return &GeminiPlanGenerator{
		client:      client,
		maxAttempts: 3,
	}
}

type remotePlanWire struct {
	Days []struct {
		Day        int    `json:"day"`
		Date       string `json:"date"`
		Activities []struct {
			Time        string `json:"time"`
			Description string `json:"description"`
			Category    string `json:"category"`
			VenueID     string `json:"venue_id"`
			Notes       string `json:"notes"`
		} `json:"activities"`
	} `json:"days"`
}

func (g *GeminiPlanGenerator) GenerateTripPlan(ctx context.Context, c TripConstraints, catalog response_models.Catalog) (*response_models.TripPlan, error) {
	if err := ValidateConstraints(c); err != nil {
		return nil, err
	}

	days := TripDurationDays(c.StartDate, c.EndDate)
	sel, diags := selectVenues(c, catalog, days)

	prompt := buildPlanPrompt(c, sel, days)

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		raw, err := g.client.GeneratePlanJSON(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		planDays, err := g.parseRemotePlan(raw, days, sel)
		if err != nil {
			utils.GetLogger().Warn("remote plan rejected",
				zap.Int("attempt", attempt), zap.Error(err))
			lastErr = err
			continue
		}

		var sortDiags []string
		for i := range planDays {
			sortDiags = append(sortDiags, sortDayActivities(&planDays[i])...)
		}

		costs, transport := aggregateCosts(c, sel, days)
		plan := assemblePlan(c, planDays, sel, transport, costs, append(diags, sortDiags...))
		plan.Source = response_models.PlanSourceGemini
		return plan, nil
	}

	return nil, fmt.Errorf("%w: %v", utils.ErrPlannerUnavailable, lastErr)
}

// parseRemotePlan validates structure against the expected day count and
// rebinds venue references. An unknown venue id degrades to an unreferenced
// activity instead of failing the whole plan.
func (g *GeminiPlanGenerator) parseRemotePlan(raw string, expectedDays int, sel venueSelection) ([]response_models.PlanDay, error) {
	var wire remotePlanWire
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &wire); err != nil {
		return nil, fmt.Errorf("invalid plan JSON: %w", err)
	}

	if len(wire.Days) != expectedDays {
		return nil, fmt.Errorf("expected %d days, got %d", expectedDays, len(wire.Days))
	}

	venues := venueIndex(sel)

	planDays := make([]response_models.PlanDay, 0, expectedDays)
	for i, d := range wire.Days {
		if len(d.Activities) == 0 {
			return nil, fmt.Errorf("day %d has no activities", i+1)
		}

		day := response_models.PlanDay{Day: i + 1, Date: d.Date}
		for _, a := range d.Activities {
			activity := response_models.PlanActivity{
				Time:        a.Time,
				Description: a.Description,
				Category:    normalizeActivityCategory(a.Category),
				Notes:       a.Notes,
			}
			if v, ok := venues[a.VenueID]; ok {
				activity.VenueID = v.ID
				activity.VenueName = v.Name
			}
			day.Activities = append(day.Activities, activity)
		}
		planDays = append(planDays, day)
	}

	return planDays, nil
}

func venueIndex(sel venueSelection) map[string]response_models.CatalogItem {
	idx := make(map[string]response_models.CatalogItem)
	for _, c := range sel.courses {
		idx[c.ID] = c
	}
	if sel.hotel != nil {
		idx[sel.hotel.ID] = *sel.hotel
	}
	for _, r := range sel.restaurants {
		idx[r.ID] = r
	}
	for _, e := range sel.experiences {
		idx[e.ID] = e
	}
	return idx
}

func normalizeActivityCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case response_models.ActivityCategoryGolf:
		return response_models.ActivityCategoryGolf
	case response_models.ActivityCategoryHotel:
		return response_models.ActivityCategoryHotel
	case response_models.ActivityCategoryRestaurant:
		return response_models.ActivityCategoryRestaurant
	case response_models.ActivityCategoryExperience:
		return response_models.ActivityCategoryExperience
	case response_models.ActivityCategoryTransportation:
		return response_models.ActivityCategoryTransportation
	default:
		return response_models.ActivityCategoryOther
	}
}

func buildPlanPrompt(c TripConstraints, sel venueSelection, dayCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a %d-day golf trip schedule for %d golfers visiting %s.\n\n", dayCount, c.Golfers, c.Destination)

	b.WriteString("Available venues (use exact venue_id values):\n")
	writeVenueLine := func(kind string, v response_models.CatalogItem) {
		fmt.Fprintf(&b, "- venue_id:%s | %s | %s\n", v.ID, kind, v.Name)
	}
	for _, course := range sel.courses {
		writeVenueLine("golf course", course)
	}
	if sel.hotel != nil {
		writeVenueLine("hotel", *sel.hotel)
	}
	for _, r := range sel.restaurants {
		writeVenueLine("restaurant", r)
	}
	for _, e := range sel.experiences {
		writeVenueLine("experience", e)
	}

	if len(c.DesiredActivities) > 0 {
		fmt.Fprintf(&b, "\nTraveler interests: %s\n", strings.Join(c.DesiredActivities, ", "))
	}

	fmt.Fprintf(&b, `
Hard constraints:
- Exactly %d days in "days", day = 1..%d with no gaps.
- Times are clock labels like "8:30 AM"; order activities within a day.
- Hotel check-in on day 1, check-out on the final day of multi-day trips.
- category is one of: golf, hotel, restaurant, experience, transportation, other.
- Use only venue_id values from the list above, or omit the field.

Return JSON only, in this exact format:
{
  "days": [
    {
      "day": 1,
      "date": "%s",
      "activities": [
        {"time": "8:30 AM", "description": "Tee time at ...", "category": "golf", "venue_id": "...", "notes": ""}
      ]
    }
  ]
}
`, dayCount, dayCount, c.StartDate.Format("2006-01-02"))

	return b.String()
}
