package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"fairway/internal/models/response_models"
)

// ExperienceClient wraps the activities/experiences provider's search API.
type ExperienceClient struct {
	cfg        Config
	httpClient *http.Client
}

func NewExperienceClient(cfg Config) *ExperienceClient {
	return &ExperienceClient{cfg: cfg, httpClient: newHTTPClient(cfg)}
}

func (c *ExperienceClient) SearchExperiences(ctx context.Context, destination string, categories []string) ([]response_models.CatalogItem, error) {
	if !c.cfg.live() {
		return SampleExperiences(), nil
	}

	query := url.Values{}
	query.Set("location", destination)
	if len(categories) > 0 {
		query.Set("categories", strings.Join(categories, ","))
	}

	body, err := doGet(ctx, c.httpClient, c.cfg, "/v1/experiences", query)
	if err != nil {
		return nil, fmt.Errorf("experience search failed: %w", err)
	}
	return parseExperiencePayload(body)
}

type experiencePayload struct {
	Experiences []struct {
		ID            string  `json:"id"`
		Name          string  `json:"name"`
		PricePerGuest float64 `json:"price_per_guest"`
		Rating        float64 `json:"rating"`
		DurationHours int     `json:"duration_hours"`
		Description   string  `json:"description"`
	} `json:"experiences"`
}

func parseExperiencePayload(data []byte) ([]response_models.CatalogItem, error) {
	var payload experiencePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse experience payload: %w", err)
	}

	items := make([]response_models.CatalogItem, 0, len(payload.Experiences))
	for _, exp := range payload.Experiences {
		if exp.ID == "" || exp.Name == "" {
			continue
		}
		items = append(items, response_models.CatalogItem{
			ID:            exp.ID,
			Name:          exp.Name,
			Category:      response_models.VenueCategoryExperience,
			Price:         int64(math.Round(exp.PricePerGuest)),
			Rating:        exp.Rating,
			Description:   exp.Description,
			DurationHours: exp.DurationHours,
		})
	}
	return items, nil
}
