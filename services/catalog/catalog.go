// Package catalog serves the storefront's experience listings: URL query →
// filters, a read-through cache over the remote catalog endpoint, and the
// details fetch. Filtering itself always happens server-side; the storefront
// never filters a listing locally.
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"bookit/models"
	"bookit/utils"

	"go.uber.org/zap"
)

// ExperienceAPI is the slice of the remote API the catalog needs.
// *client.Client satisfies it.
type ExperienceAPI interface {
	ListExperiences(ctx context.Context, filters models.ExperienceFilters) ([]models.Experience, error)
	GetExperience(ctx context.Context, id int64) (*models.ExperienceDetails, error)
}

// Cache is a string cache with TTL. A miss is (_, false). *RedisCache
// satisfies it; a nil Cache on the service disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Service lists and fetches experiences.
type Service struct {
	API    ExperienceAPI
	Cache  Cache
	Logger *zap.Logger
}

func NewService(api ExperienceAPI, cache Cache, logger *zap.Logger) *Service {
	return &Service{API: api, Cache: cache, Logger: logger}
}

// List returns the server-filtered catalog, consulting the cache first. Cache
// failures are never user-facing: any miss or decode problem falls through to
// the API.
func (s *Service) List(ctx context.Context, filters models.ExperienceFilters) ([]models.Experience, error) {
	key := utils.CatalogCachePrefix + cacheKey(filters)

	if s.Cache != nil {
		if raw, ok := s.Cache.Get(ctx, key); ok {
			var experiences []models.Experience
			if err := json.Unmarshal([]byte(raw), &experiences); err == nil {
				return experiences, nil
			}
			s.Logger.Debug("discarding undecodable catalog cache entry", zap.String("key", key))
		}
	}

	experiences, err := s.API.ListExperiences(ctx, filters)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(experiences); err == nil {
			if err := s.Cache.Set(ctx, key, string(raw), utils.CatalogCacheTTL); err != nil {
				s.Logger.Debug("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return experiences, nil
}

// Get fetches one experience with its availability mapping. Details are never
// cached: availability counts must be as fresh as the click.
func (s *Service) Get(ctx context.Context, id int64) (*models.ExperienceDetails, error) {
	return s.API.GetExperience(ctx, id)
}
