package client

import (
	"fmt"
	"strconv"
	"strings"

	"bookit/models"
)

// flexNumber decodes a JSON number that may arrive quoted. The API is not
// guaranteed to send id, price, rating or counts as numbers, so the decode
// step coerces instead of trusting the wire shape.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*n = flexNumber(f)
	return nil
}

// wireExperience mirrors models.Experience with coercion-tolerant fields.
type wireExperience struct {
	ID           flexNumber `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	Price        flexNumber `json:"price"`
	Duration     string     `json:"duration"`
	Category     string     `json:"category"`
	ImageURL     string     `json:"image_url"`
	Rating       flexNumber `json:"rating"`
	ReviewsCount flexNumber `json:"reviews_count"`
	Highlights   []string   `json:"highlights"`
	Included     []string   `json:"included"`
	NotIncluded  []string   `json:"not_included"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

// normalize produces the validated domain object: numeric fields coerced,
// missing lists defaulted to empty.
func (w wireExperience) normalize() models.Experience {
	return models.Experience{
		ID:           int64(w.ID),
		Title:        w.Title,
		Description:  w.Description,
		Location:     w.Location,
		Price:        float64(w.Price),
		Duration:     w.Duration,
		Category:     w.Category,
		ImageURL:     w.ImageURL,
		Rating:       float64(w.Rating),
		ReviewsCount: int(w.ReviewsCount),
		Highlights:   orEmpty(w.Highlights),
		Included:     orEmpty(w.Included),
		NotIncluded:  orEmpty(w.NotIncluded),
		IsActive:     w.IsActive,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

type wireSlot struct {
	ID             flexNumber `json:"id"`
	Time           string     `json:"time"`
	StartTime      string     `json:"start_time"`
	EndTime        string     `json:"end_time"`
	AvailableSpots flexNumber `json:"available_spots"`
	MaxCapacity    flexNumber `json:"max_capacity"`
	IsAvailable    bool       `json:"is_available"`
}

func (w wireSlot) normalize() models.Slot {
	return models.Slot{
		ID:             int64(w.ID),
		Time:           w.Time,
		StartTime:      w.StartTime,
		EndTime:        w.EndTime,
		AvailableSpots: int(w.AvailableSpots),
		MaxCapacity:    int(w.MaxCapacity),
		IsAvailable:    w.IsAvailable,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
