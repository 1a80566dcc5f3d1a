// internal/service/content.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"admissions-backend/internal/common/database"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/models"
	"admissions-backend/internal/store"
)

// Cache keys for the content endpoints.
const (
	cacheKeySiteSettings = "content:site-settings"
	cacheKeyPrograms     = "content:programs"
	cacheKeyStats        = "content:stats"
	cacheKeyEvents       = "content:events"
	cacheKeyTestimonials = "content:testimonials"
)

// ContentService serves the marketing content with a read-through redis
// cache. The cache is optional and advisory: any cache failure falls
// back to the store silently.
type ContentService struct {
	store  store.Store
	cache  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewContentService(st store.Store, cache *database.RedisClient, ttl time.Duration, log logger.Logger) *ContentService {
	return &ContentService{
		store:  st,
		cache:  cache,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "content"}),
	}
}

// cached runs the read-through: on a cache hit, unmarshal into out; on
// a miss, load from the store via fetch and backfill the cache.
func (s *ContentService) cached(ctx context.Context, key string, out interface{}, fetch func() (interface{}, error)) error {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		if err == nil {
			if jsonErr := json.Unmarshal([]byte(raw), out); jsonErr == nil {
				return nil
			}
			// Corrupt entry, drop it and fall through to the store.
			_ = s.cache.Del(ctx, key)
		}
	}

	value, err := fetch()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err == nil {
		if s.cache != nil {
			if cacheErr := s.cache.Set(ctx, key, string(raw), s.ttl); cacheErr != nil {
				s.logger.Debug("content cache write failed", map[string]interface{}{
					"key":   key,
					"error": cacheErr.Error(),
				})
			}
		}
		return json.Unmarshal(raw, out)
	}
	return err
}

func (s *ContentService) SiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	settings := &models.SiteSettings{}
	err := s.cached(ctx, cacheKeySiteSettings, settings, func() (interface{}, error) {
		return s.store.SiteSettings(ctx)
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *ContentService) Programs(ctx context.Context) ([]models.Program, error) {
	out := []models.Program{}
	err := s.cached(ctx, cacheKeyPrograms, &out, func() (interface{}, error) {
		return s.store.Programs(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ContentService) Stats(ctx context.Context) ([]models.StatMetric, error) {
	out := []models.StatMetric{}
	err := s.cached(ctx, cacheKeyStats, &out, func() (interface{}, error) {
		return s.store.Stats(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ContentService) Events(ctx context.Context) ([]models.EventItem, error) {
	out := []models.EventItem{}
	err := s.cached(ctx, cacheKeyEvents, &out, func() (interface{}, error) {
		return s.store.Events(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ContentService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	out := []models.Testimonial{}
	err := s.cached(ctx, cacheKeyTestimonials, &out, func() (interface{}, error) {
		return s.store.Testimonials(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
