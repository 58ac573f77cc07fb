package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"fairway/internal/models/response_models"
)

// GolfClient wraps the tee-time provider's course search API.
type GolfClient struct {
	cfg        Config
	httpClient *http.Client
}

func NewGolfClient(cfg Config) *GolfClient {
	return &GolfClient{cfg: cfg, httpClient: newHTTPClient(cfg)}
}

func (c *GolfClient) SearchCourses(ctx context.Context, destination string) ([]response_models.CatalogItem, error) {
	if !c.cfg.live() {
		return SampleGolfCourses(), nil
	}

	query := url.Values{}
	query.Set("location", destination)

	body, err := doGet(ctx, c.httpClient, c.cfg, "/v1/courses", query)
	if err != nil {
		return nil, fmt.Errorf("course search failed: %w", err)
	}
	return parseCoursePayload(body)
}

type coursePayload struct {
	Courses []struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		GreenFee   float64 `json:"green_fee"`
		Rating     float64 `json:"rating"`
		Holes      int     `json:"holes"`
		Par        int     `json:"par"`
		Difficulty string  `json:"difficulty"`
		Address    string  `json:"address"`
	} `json:"courses"`
}

// parseCoursePayload normalizes the provider shape into the canonical
// catalog item. Green fees arrive as floats; catalog prices are whole
// currency units.
func parseCoursePayload(data []byte) ([]response_models.CatalogItem, error) {
	var payload coursePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse course payload: %w", err)
	}

	items := make([]response_models.CatalogItem, 0, len(payload.Courses))
	for _, course := range payload.Courses {
		if course.ID == "" || course.Name == "" {
			continue
		}
		items = append(items, response_models.CatalogItem{
			ID:         course.ID,
			Name:       course.Name,
			Category:   response_models.VenueCategoryGolfCourse,
			Price:      int64(math.Round(course.GreenFee)),
			Rating:     course.Rating,
			Address:    course.Address,
			Holes:      course.Holes,
			Par:        course.Par,
			Difficulty: course.Difficulty,
		})
	}
	return items, nil
}
