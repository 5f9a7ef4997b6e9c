package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"bookit/models"
)

// ListExperiences fetches the catalog, server-filtered by the given filters.
// Omitted filters are not sent. The storefront performs no filtering of its
// own on the result.
func (c *Client) ListExperiences(ctx context.Context, filters models.ExperienceFilters) ([]models.Experience, error) {
	query := url.Values{}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}
	if filters.Location != "" {
		query.Set("location", filters.Location)
	}
	if filters.MinPrice != nil {
		query.Set("minPrice", strconv.FormatFloat(*filters.MinPrice, 'f', -1, 64))
	}
	if filters.MaxPrice != nil {
		query.Set("maxPrice", strconv.FormatFloat(*filters.MaxPrice, 'f', -1, 64))
	}

	var wire []wireExperience
	if err := c.do(ctx, http.MethodGet, "/experiences", query, nil, &wire); err != nil {
		return nil, err
	}

	experiences := make([]models.Experience, len(wire))
	for i, w := range wire {
		experiences[i] = w.normalize()
	}
	return experiences, nil
}

// GetExperience fetches one experience plus its date→slots availability mapping.
func (c *Client) GetExperience(ctx context.Context, id int64) (*models.ExperienceDetails, error) {
	var wire struct {
		Experience     wireExperience        `json:"experience"`
		AvailableSlots map[string][]wireSlot `json:"availableSlots"`
	}
	if err := c.do(ctx, http.MethodGet, "/experiences/"+strconv.FormatInt(id, 10), nil, nil, &wire); err != nil {
		return nil, err
	}

	slots := make(models.SlotsByDate, len(wire.AvailableSlots))
	for date, daySlots := range wire.AvailableSlots {
		normalized := make([]models.Slot, len(daySlots))
		for i, w := range daySlots {
			normalized[i] = w.normalize()
		}
		slots[date] = normalized
	}

	return &models.ExperienceDetails{
		Experience:     wire.Experience.normalize(),
		AvailableSlots: slots,
	}, nil
}
