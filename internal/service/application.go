// internal/service/application.go

// Package service holds the business flows behind the REST surface:
// application save/resume, registration and login, content reads, lead
// capture.
package service

import (
	"context"
	"strings"

	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/common/metrics"
	"admissions-backend/internal/models"
	"admissions-backend/internal/notify"
	"admissions-backend/internal/store"
)

// Dispatcher is the notification boundary. Dispatch never errors; its
// outcome is carried entirely in the Result.
type Dispatcher interface {
	Dispatch(ctx context.Context, applicant *models.User, app *models.Application) *notify.Result
}

// ApplicationService coordinates application saves and resumes. A save
// with requested status "submitted" triggers one asynchronous
// confirmation dispatch; the trigger is the request field, not the
// previously stored state, so resubmitting renotifies.
type ApplicationService struct {
	store      store.Store
	dispatcher Dispatcher
	logger     logger.Logger
}

func NewApplicationService(st store.Store, dispatcher Dispatcher, log logger.Logger) *ApplicationService {
	return &ApplicationService{
		store:      st,
		dispatcher: dispatcher,
		logger:     log.WithFields(map[string]interface{}{"component": "application"}),
	}
}

// Save upserts the user's single application record. Sections are
// shallow-merged by the store; status moves only when one is supplied.
func (s *ApplicationService) Save(ctx context.Context, userID string, sections map[string]interface{}, status string) (*models.Application, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.NewValidationFailedError("userId is required")
	}

	normalized := models.NormalizeStatus(status)
	if status != "" && normalized == "" {
		return nil, errors.NewValidationFailedError("status must be draft, in_progress or submitted")
	}

	saveLabel := normalized
	if saveLabel == "" {
		saveLabel = models.StatusDraft
	}
	metrics.ApplicationSaves.WithLabelValues(saveLabel).Inc()

	app, err := s.store.SaveApplication(ctx, userID, sections, normalized)
	if err != nil {
		return nil, err
	}
	if app.CreatedAt.Equal(app.UpdatedAt) {
		metrics.ApplicationsCreated.Inc()
	}

	if normalized == models.StatusSubmitted && s.dispatcher != nil {
		// Fire and forget: the request context ends with the response,
		// so the dispatch runs on its own context and only logs its
		// outcome.
		snapshot := *app
		go func() {
			applicant, err := s.store.FindUserByID(context.Background(), snapshot.UserID)
			if err != nil {
				s.logger.Warn("applicant lookup for notification failed", map[string]interface{}{
					"userId": snapshot.UserID,
					"error":  err.Error(),
				})
			}
			result := s.dispatcher.Dispatch(context.Background(), applicant, &snapshot)
			s.logger.Info("submission notification finished", map[string]interface{}{
				"userId":         snapshot.UserID,
				"notificationId": result.NotificationID,
				"status":         result.Status,
			})
		}()
	}

	return app, nil
}

// Find returns the user's application, or nil when none exists.
func (s *ApplicationService) Find(ctx context.Context, userID string) (*models.Application, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.NewValidationFailedError("userId is required")
	}
	return s.store.FindApplicationByUser(ctx, userID)
}

// Resume returns the sections the intake form should repopulate with.
// With no application yet, it seeds the form from the registration
// profile; the seed is not persisted until the first save.
func (s *ApplicationService) Resume(ctx context.Context, userID string) (map[string]interface{}, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.NewValidationFailedError("userId is required")
	}

	app, err := s.store.FindApplicationByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if app != nil {
		if app.Sections == nil {
			return map[string]interface{}{}, nil
		}
		return app.Sections, nil
	}

	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewResourceNotFoundError("user", userID)
	}
	return map[string]interface{}{
		"fullName":      user.FullName,
		"studentEmail":  user.Email,
		"studentMobile": user.Mobile,
	}, nil
}
