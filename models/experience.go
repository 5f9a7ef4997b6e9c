package models

import "sort"

// Experience represents a bookable activity listed in the catalog.
// Fetched read-only from the booking API; never mutated client-side.
type Experience struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Price        float64  `json:"price"` // unit amount, INR
	Duration     string   `json:"duration"`
	Category     string   `json:"category"`
	ImageURL     string   `json:"image_url"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviews_count"`
	Highlights   []string `json:"highlights"`
	Included     []string `json:"included"`
	NotIncluded  []string `json:"not_included"`
	IsActive     bool     `json:"is_active"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// Slot represents a bookable time window on a date.
type Slot struct {
	ID             int64  `json:"id"`
	Time           string `json:"time"`       // display time, 24-hour "HH:MM"
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	AvailableSpots int    `json:"available_spots"`
	MaxCapacity    int    `json:"max_capacity"`
	IsAvailable    bool   `json:"is_available"`
}

// SelectableFor reports whether the slot can be booked for the given quantity.
func (s Slot) SelectableFor(quantity int) bool {
	return s.IsAvailable && s.AvailableSpots >= quantity
}

// MaxQuantity is the default upper bound on party size when the selected slot
// has more capacity than anyone books at once.
const MaxQuantity = 10

// ClampQuantity clamps a requested party size to [1, min(MaxQuantity,
// slot.available_spots)]. With no slot selected the upper bound is MaxQuantity.
func ClampQuantity(quantity int, slot *Slot) int {
	upper := MaxQuantity
	if slot != nil && slot.AvailableSpots < upper {
		upper = slot.AvailableSpots
	}
	if quantity > upper {
		quantity = upper
	}
	if quantity < 1 {
		quantity = 1
	}
	return quantity
}

// SlotsByDate maps a "YYYY-MM-DD" date string to that day's slots.
type SlotsByDate map[string][]Slot

// Dates returns the mapping's keys in chronological order.
func (m SlotsByDate) Dates() []string {
	dates := make([]string, 0, len(m))
	for d := range m {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// ExperienceDetails is the details endpoint payload: one experience plus its
// availability mapping.
type ExperienceDetails struct {
	Experience     Experience  `json:"experience"`
	AvailableSlots SlotsByDate `json:"availableSlots"`
}

// ExperienceFilters are the optional catalog query parameters. Nil price
// bounds are omitted from the request.
type ExperienceFilters struct {
	Search   string
	Category string
	Location string
	MinPrice *float64
	MaxPrice *float64
}
