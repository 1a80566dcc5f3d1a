// internal/service/lead.go
package service

import (
	"context"
	"strings"

	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/models"
	"admissions-backend/internal/store"
)

// LeadService records marketing enquiries. Leads are append-only and
// independent of the application lifecycle.
type LeadService struct {
	store  store.Store
	logger logger.Logger
}

func NewLeadService(st store.Store, log logger.Logger) *LeadService {
	return &LeadService{
		store:  st,
		logger: log.WithFields(map[string]interface{}{"component": "leads"}),
	}
}

func (s *LeadService) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	lead.FirstName = strings.TrimSpace(lead.FirstName)
	lead.LastName = strings.TrimSpace(lead.LastName)
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))

	switch {
	case lead.FirstName == "":
		return nil, errors.NewValidationFailedError("firstName is required")
	case lead.LastName == "":
		return nil, errors.NewValidationFailedError("lastName is required")
	case lead.Email == "" || !strings.Contains(lead.Email, "@"):
		return nil, errors.NewValidationFailedError("a valid email is required")
	}

	if err := s.store.CreateLead(ctx, lead); err != nil {
		return nil, err
	}
	s.logger.Info("lead captured", map[string]interface{}{"leadId": lead.ID})
	return lead, nil
}
