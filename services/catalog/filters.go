package catalog

import (
	"net/url"
	"strconv"

	"bookit/models"
)

// ParseFilters reads the optional catalog filters from a request's query.
// Absent params stay unset; unparseable price bounds are dropped.
func ParseFilters(query url.Values) models.ExperienceFilters {
	filters := models.ExperienceFilters{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Location: query.Get("location"),
	}
	if raw := query.Get("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MinPrice = &v
		}
	}
	if raw := query.Get("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MaxPrice = &v
		}
	}
	return filters
}

// cacheKey is the canonical encoding of a filter set.
func cacheKey(f models.ExperienceFilters) string {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Location != "" {
		v.Set("location", f.Location)
	}
	if f.MinPrice != nil {
		v.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		v.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if len(v) == 0 {
		return "all"
	}
	return v.Encode()
}
