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

// HotelClient wraps the hotel search API.
type HotelClient struct {
	cfg        Config
	httpClient *http.Client
}

func NewHotelClient(cfg Config) *HotelClient {
	return &HotelClient{cfg: cfg, httpClient: newHTTPClient(cfg)}
}

func (c *HotelClient) SearchHotels(ctx context.Context, destination string) ([]response_models.CatalogItem, error) {
	if !c.cfg.live() {
		return SampleHotels(), nil
	}

	query := url.Values{}
	query.Set("city", destination)

	body, err := doGet(ctx, c.httpClient, c.cfg, "/v2/hotels/search", query)
	if err != nil {
		return nil, fmt.Errorf("hotel search failed: %w", err)
	}
	return parseHotelPayload(body)
}

type hotelPayload struct {
	Data []struct {
		HotelID       string  `json:"hotel_id"`
		Name          string  `json:"name"`
		PricePerNight float64 `json:"price_per_night"`
		Rating        float64 `json:"rating"`
		Location      string  `json:"location"`
	} `json:"data"`
}

func parseHotelPayload(data []byte) ([]response_models.CatalogItem, error) {
	var payload hotelPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse hotel payload: %w", err)
	}

	items := make([]response_models.CatalogItem, 0, len(payload.Data))
	for _, hotel := range payload.Data {
		if hotel.HotelID == "" || hotel.Name == "" {
			continue
		}
		items = append(items, response_models.CatalogItem{
			ID:       hotel.HotelID,
			Name:     hotel.Name,
			Category: response_models.VenueCategoryHotel,
			Price:    int64(math.Round(hotel.PricePerNight)),
			Rating:   hotel.Rating,
			Address:  hotel.Location,
		})
	}
	return items, nil
}
