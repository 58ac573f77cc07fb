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

// RestaurantClient wraps the dining reservation provider's search API.
type RestaurantClient struct {
	cfg        Config
	httpClient *http.Client
}

func NewRestaurantClient(cfg Config) *RestaurantClient {
	return &RestaurantClient{cfg: cfg, httpClient: newHTTPClient(cfg)}
}

func (c *RestaurantClient) SearchRestaurants(ctx context.Context, destination string) ([]response_models.CatalogItem, error) {
	if !c.cfg.live() {
		return SampleRestaurants(), nil
	}

	query := url.Values{}
	query.Set("location", destination)

	body, err := doGet(ctx, c.httpClient, c.cfg, "/v1/restaurants", query)
	if err != nil {
		return nil, fmt.Errorf("restaurant search failed: %w", err)
	}
	return parseRestaurantPayload(body)
}

type restaurantPayload struct {
	Restaurants []struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		AveragePrice float64 `json:"average_price"`
		Rating       float64 `json:"rating"`
		Cuisine      string  `json:"cuisine"`
		Address      string  `json:"address"`
	} `json:"restaurants"`
}

func parseRestaurantPayload(data []byte) ([]response_models.CatalogItem, error) {
	var payload restaurantPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse restaurant payload: %w", err)
	}

	items := make([]response_models.CatalogItem, 0, len(payload.Restaurants))
	for _, r := range payload.Restaurants {
		if r.ID == "" || r.Name == "" {
			continue
		}
		items = append(items, response_models.CatalogItem{
			ID:          r.ID,
			Name:        r.Name,
			Category:    response_models.VenueCategoryRestaurant,
			Price:       int64(math.Round(r.AveragePrice)),
			Rating:      r.Rating,
			Address:     r.Address,
			CuisineType: r.Cuisine,
		})
	}
	return items, nil
}
