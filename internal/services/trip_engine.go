package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"fairway/internal/models/response_models"
	"fairway/pkg/utils"
)

// TripConstraints is the immutable planning input. Dates are calendar days;
// a trip whose start and end coincide is a one-day trip.
type TripConstraints struct {
	Destination        string
	StartDate          time.Time
	EndDate            time.Time
	Golfers            int
	BudgetMin          int64
	BudgetMax          int64
	DesiredActivities  []string
	NeedsVehicleRental bool
	VehicleType        string
}

// PlanGeneratorInterface is the strategy boundary between the remote
// language-model planner and the deterministic engine. Callers pick one;
// the deterministic engine never depends on the remote one being reachable.
type PlanGeneratorInterface interface {
	GenerateTripPlan(ctx context.Context, constraints TripConstraints, catalog response_models.Catalog) (*response_models.TripPlan, error)
}

// Fixed schedule slots and cost heuristics. The meal and vehicle rates are
// flat estimates, deliberately decoupled from catalog restaurant prices.
const (
	teeTimeSlot    = "8:30 AM"
	checkOutSlot   = "11:00 AM"
	lunchSlot      = "1:30 PM"
	experienceSlot = "2:00 PM"
	checkInSlot    = "3:00 PM"
	dinnerSlot     = "7:00 PM"

	mealEstimatePerGolfer = 100
	vehicleRatePerDay     = 50

	maxCoursesPerTrip     = 3
	maxRestaurantsPerTrip = 3
	maxExperiencesPerTrip = 2
)

const clockLayout = "3:04 PM"

// TripEngine is the deterministic itinerary planner. It is pure: no I/O,
// no clock reads beyond the caller-supplied dates, and identical inputs
// always produce identical plans.
type TripEngine struct{}

func NewTripEngine() *TripEngine {
	return &TripEngine{}
}

func (e *TripEngine) GenerateTripPlan(ctx context.Context, c TripConstraints, catalog response_models.Catalog) (*response_models.TripPlan, error) {
	if err := ValidateConstraints(c); err != nil {
		return nil, err
	}

	days := TripDurationDays(c.StartDate, c.EndDate)
	sel, diags := selectVenues(c, catalog, days)

	planDays, sortDiags := buildSchedule(c, sel, days)
	diags = append(diags, sortDiags...)

	costs, transport := aggregateCosts(c, sel, days)

	return assemblePlan(c, planDays, sel, transport, costs, diags), nil
}

// ValidateConstraints rejects malformed trip constraints before any
// scheduling begins. These are fatal; no partial plan is produced.
func ValidateConstraints(c TripConstraints) error {
	if c.EndDate.Before(c.StartDate) {
		return utils.ErrInvalidTripWindow
	}
	if c.Golfers < 1 {
		return utils.ErrInvalidPartySize
	}
	if c.BudgetMin > c.BudgetMax {
		return utils.ErrInvalidBudget
	}
	return nil
}

// TripDurationDays counts calendar days covered by the trip, rounding
// partial days up. A same-day trip still spans one day.
func TripDurationDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

type venueSelection struct {
	courses     []response_models.CatalogItem
	hotel       *response_models.CatalogItem
	restaurants []response_models.CatalogItem
	experiences []response_models.CatalogItem
}

// selectVenues applies the selection policy: up to three courses and three
// restaurants in catalog order, the first hotel, and up to two experiences
// only when the traveler asked for extra activities. Undersized pools are a
// degradation, not an error; each one surfaces a diagnostic.
func selectVenues(c TripConstraints, catalog response_models.Catalog, days int) (venueSelection, []string) {
	var sel venueSelection
	var diags []string

	sel.courses = firstN(catalog.GolfCourses, minInt(days, maxCoursesPerTrip))
	if len(sel.courses) == 0 {
		diags = append(diags, "no golf courses available; tee times omitted")
	}

	if len(catalog.Hotels) > 0 {
		sel.hotel = &catalog.Hotels[0]
	} else {
		diags = append(diags, "no hotels available; check-in and check-out omitted")
	}

	sel.restaurants = firstN(catalog.Restaurants, minInt(days, maxRestaurantsPerTrip))
	if len(sel.restaurants) == 0 {
		diags = append(diags, "no restaurants available; dinner reservations omitted")
	}

	if len(c.DesiredActivities) > 0 {
		sel.experiences = firstN(catalog.Experiences, maxExperiencesPerTrip)
		if len(sel.experiences) == 0 {
			diags = append(diags, "no experiences available for the requested activities")
		}
	}

	return sel, diags
}

// buildSchedule fills each day in order. On a one-day trip the check-in
// branch runs and the check-out branch does not: day 0 is the first day
// before it is the last, and the check-out rule only applies to trips
// spanning more than one day.
func buildSchedule(c TripConstraints, sel venueSelection, days int) ([]response_models.PlanDay, []string) {
	planDays := make([]response_models.PlanDay, 0, days)
	var diags []string
	nextExperience := 0

	for i := 0; i < days; i++ {
		day := response_models.PlanDay{
			Day:  i + 1,
			Date: c.StartDate.AddDate(0, 0, i).Format("2006-01-02"),
		}
		lastDay := i == days-1

		if i == 0 {
			if sel.hotel != nil {
				day.Activities = append(day.Activities, response_models.PlanActivity{
					Time:        checkInSlot,
					Description: fmt.Sprintf("Check in at %s", sel.hotel.Name),
					Category:    response_models.ActivityCategoryHotel,
					VenueID:     sel.hotel.ID,
					VenueName:   sel.hotel.Name,
				})
			}
			if len(sel.restaurants) > 0 {
				day.Activities = append(day.Activities, dinnerActivity(sel.restaurants[0]))
			}
		} else if lastDay {
			if sel.hotel != nil {
				day.Activities = append(day.Activities, response_models.PlanActivity{
					Time:        checkOutSlot,
					Description: fmt.Sprintf("Check out of %s", sel.hotel.Name),
					Category:    response_models.ActivityCategoryHotel,
					VenueID:     sel.hotel.ID,
					VenueName:   sel.hotel.Name,
				})
			}
		}

		hasGolf := false
		if i < len(sel.courses) && (!lastDay || days == 1) {
			course := sel.courses[i]
			day.Activities = append(day.Activities, response_models.PlanActivity{
				Time:        teeTimeSlot,
				Description: fmt.Sprintf("Tee time at %s", course.Name),
				Category:    response_models.ActivityCategoryGolf,
				VenueID:     course.ID,
				VenueName:   course.Name,
				Notes:       fmt.Sprintf("Round for %d", c.Golfers),
			})
			hasGolf = true
		}

		if hasGolf {
			day.Activities = append(day.Activities, response_models.PlanActivity{
				Time:        lunchSlot,
				Description: "Lunch at the clubhouse",
				Category:    response_models.ActivityCategoryRestaurant,
			})
		} else if nextExperience < len(sel.experiences) {
			exp := sel.experiences[nextExperience]
			nextExperience++
			day.Activities = append(day.Activities, response_models.PlanActivity{
				Time:        experienceSlot,
				Description: exp.Name,
				Category:    response_models.ActivityCategoryExperience,
				VenueID:     exp.ID,
				VenueName:   exp.Name,
			})
		}

		if i > 0 && i < len(sel.restaurants) {
			day.Activities = append(day.Activities, dinnerActivity(sel.restaurants[i]))
		}

		diags = append(diags, sortDayActivities(&day)...)
		planDays = append(planDays, day)
	}

	return planDays, diags
}

func dinnerActivity(r response_models.CatalogItem) response_models.PlanActivity {
	return response_models.PlanActivity{
		Time:        dinnerSlot,
		Description: fmt.Sprintf("Dinner at %s", r.Name),
		Category:    response_models.ActivityCategoryRestaurant,
		VenueID:     r.ID,
		VenueName:   r.Name,
	}
}

// sortDayActivities orders a day's activities by clock time ascending.
// The sort is stable, so identical slots keep their insertion order.
// An unparsable time sorts after every valid one and yields a diagnostic
// rather than a silently misplaced activity.
func sortDayActivities(day *response_models.PlanDay) []string {
	var diags []string

	keys := make([]int, len(day.Activities))
	for i, a := range day.Activities {
		minute, err := parseClockMinute(a.Time)
		if err != nil {
			diags = append(diags, fmt.Sprintf("day %d: unparsable activity time %q; ordered last", day.Day, a.Time))
			minute = math.MaxInt32
		}
		keys[i] = minute
	}

	type keyed struct {
		key      int
		activity response_models.PlanActivity
	}
	ordered := make([]keyed, len(day.Activities))
	for i, a := range day.Activities {
		ordered[i] = keyed{key: keys[i], activity: a}
	}
	sort.SliceStable(ordered, func(a, b int) bool { return ordered[a].key < ordered[b].key })
	for i := range ordered {
		day.Activities[i] = ordered[i].activity
	}

	return diags
}

// parseClockMinute turns a "3:04 PM" label into a minute of day. time.Parse
// pins the date component to the zero reference date, so only the clock
// time takes part in the comparison.
func parseClockMinute(s string) (int, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// aggregateCosts computes the five category subtotals in integer currency
// units. The total is their exact sum; there is no rounding step anywhere
// in this path.
func aggregateCosts(c TripConstraints, sel venueSelection, days int) (response_models.CostBreakdown, *response_models.Transportation) {
	var costs response_models.CostBreakdown
	golfers := int64(c.Golfers)

	for _, course := range sel.courses {
		costs.Golf += course.Price * golfers
	}

	if sel.hotel != nil {
		costs.Hotel = sel.hotel.Price * int64(days)
	}

	costs.Restaurants = int64(len(sel.restaurants)) * mealEstimatePerGolfer * golfers

	for _, exp := range sel.experiences {
		costs.Experiences += exp.Price * golfers
	}

	var transport *response_models.Transportation
	if c.NeedsVehicleRental {
		costs.Transportation = vehicleRatePerDay * int64(days)
		vehicleType := c.VehicleType
		if vehicleType == "" {
			vehicleType = "SUV"
		}
		airport := fmt.Sprintf("%s Airport", c.Destination)
		transport = &response_models.Transportation{
			Type:            vehicleType,
			PickupLocation:  airport,
			DropoffLocation: airport,
			CostPerDay:      vehicleRatePerDay,
			TotalCost:       costs.Transportation,
		}
	}

	return costs, transport
}

// assemblePlan merges the scheduled days, selected venues, transportation
// and cost into the returned plan. Pure; no I/O.
func assemblePlan(
	c TripConstraints,
	days []response_models.PlanDay,
	sel venueSelection,
	transport *response_models.Transportation,
	costs response_models.CostBreakdown,
	diags []string,
) *response_models.TripPlan {
	var hotels []response_models.CatalogItem
	if sel.hotel != nil {
		hotels = []response_models.CatalogItem{*sel.hotel}
	}

	return &response_models.TripPlan{
		Destination:    c.Destination,
		Days:           days,
		GolfCourses:    sel.courses,
		Hotels:         hotels,
		Restaurants:    sel.restaurants,
		Experiences:    sel.experiences,
		Transportation: transport,
		Costs:          costs,
		TotalCost:      costs.Golf + costs.Hotel + costs.Restaurants + costs.Experiences + costs.Transportation,
		Source:         response_models.PlanSourceFallback,
		Diagnostics:    diags,
	}
}

// RenderSummary renders a plan as a day-by-day text block with a trailing
// total line, for display or PDF export.
func RenderSummary(plan *response_models.TripPlan, destination string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d-Day Golf Trip to %s\n", len(plan.Days), destination)

	for _, day := range plan.Days {
		fmt.Fprintf(&b, "\nDay %d (%s)\n", day.Day, day.Date)
		for _, a := range day.Activities {
			fmt.Fprintf(&b, "  %s  %s", a.Time, a.Description)
			if a.Notes != "" {
				fmt.Fprintf(&b, " (%s)", a.Notes)
			}
			b.WriteByte('\n')
		}
	}

	if plan.Transportation != nil {
		fmt.Fprintf(&b, "\nVehicle rental (%s): %s per day, pickup at %s\n",
			plan.Transportation.Type,
			utils.FormatCurrency(plan.Transportation.CostPerDay),
			plan.Transportation.PickupLocation)
	}

	fmt.Fprintf(&b, "\nTotal estimated cost: %s\n", utils.FormatCurrency(plan.TotalCost))

	return b.String()
}

func firstN(items []response_models.CatalogItem, n int) []response_models.CatalogItem {
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
