// internal/store/failover.go
package store

import (
	"context"

	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/common/metrics"
	"admissions-backend/internal/models"
)

// FailoverStore retries an operation on the fallback substrate when the
// primary reports a connectivity-class failure. Business errors
// (duplicate email, validation) pass through untouched: a rejected
// registration on the primary must not get a second chance on the
// fallback. Callers see one Store with the usual contract.
type FailoverStore struct {
	primary  Store
	fallback Store
	log      logger.Logger
}

// NewFailover composes primary and fallback. fallback may be nil, in
// which case primary errors surface directly.
func NewFailover(primary, fallback Store, log logger.Logger) *FailoverStore {
	return &FailoverStore{primary: primary, fallback: fallback, log: log}
}

// shouldFailover reports whether op's failure warrants the fallback.
func (s *FailoverStore) shouldFailover(op string, err error) bool {
	if err == nil || s.fallback == nil || !errors.IsStorageUnavailable(err) {
		return false
	}
	metrics.StoreFailovers.Inc()
	s.log.Warn("primary store unavailable, using fallback", map[string]interface{}{
		"operation": op,
		"error":     err.Error(),
	})
	return true
}

func (s *FailoverStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.primary.CreateUser(ctx, user)
	if s.shouldFailover("CreateUser", err) {
		return s.fallback.CreateUser(ctx, user)
	}
	return err
}

func (s *FailoverStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.primary.FindUserByEmail(ctx, email)
	if s.shouldFailover("FindUserByEmail", err) {
		return s.fallback.FindUserByEmail(ctx, email)
	}
	return user, err
}

func (s *FailoverStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.primary.FindUserByID(ctx, id)
	if s.shouldFailover("FindUserByID", err) {
		return s.fallback.FindUserByID(ctx, id)
	}
	return user, err
}

func (s *FailoverStore) FindApplicationByUser(ctx context.Context, userID string) (*models.Application, error) {
	app, err := s.primary.FindApplicationByUser(ctx, userID)
	if s.shouldFailover("FindApplicationByUser", err) {
		return s.fallback.FindApplicationByUser(ctx, userID)
	}
	return app, err
}

func (s *FailoverStore) SaveApplication(ctx context.Context, userID string, sections map[string]interface{}, status string) (*models.Application, error) {
	app, err := s.primary.SaveApplication(ctx, userID, sections, status)
	if s.shouldFailover("SaveApplication", err) {
		return s.fallback.SaveApplication(ctx, userID, sections, status)
	}
	return app, err
}

func (s *FailoverStore) CreateLead(ctx context.Context, lead *models.Lead) error {
	err := s.primary.CreateLead(ctx, lead)
	if s.shouldFailover("CreateLead", err) {
		return s.fallback.CreateLead(ctx, lead)
	}
	return err
}

func (s *FailoverStore) SiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.primary.SiteSettings(ctx)
	if s.shouldFailover("SiteSettings", err) {
		return s.fallback.SiteSettings(ctx)
	}
	return settings, err
}

func (s *FailoverStore) Programs(ctx context.Context) ([]models.Program, error) {
	programs, err := s.primary.Programs(ctx)
	if s.shouldFailover("Programs", err) {
		return s.fallback.Programs(ctx)
	}
	return programs, err
}

func (s *FailoverStore) Stats(ctx context.Context) ([]models.StatMetric, error) {
	stats, err := s.primary.Stats(ctx)
	if s.shouldFailover("Stats", err) {
		return s.fallback.Stats(ctx)
	}
	return stats, err
}

func (s *FailoverStore) Events(ctx context.Context) ([]models.EventItem, error) {
	events, err := s.primary.Events(ctx)
	if s.shouldFailover("Events", err) {
		return s.fallback.Events(ctx)
	}
	return events, err
}

func (s *FailoverStore) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.primary.Testimonials(ctx)
	if s.shouldFailover("Testimonials", err) {
		return s.fallback.Testimonials(ctx)
	}
	return testimonials, err
}

func (s *FailoverStore) Ping(ctx context.Context) error {
	err := s.primary.Ping(ctx)
	if s.shouldFailover("Ping", err) {
		return s.fallback.Ping(ctx)
	}
	return err
}
