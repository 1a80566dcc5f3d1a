// internal/store/failover_test.go
package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/models"
)

// stubStore implements Store with overridable function fields, matching
// the mock style used for the notification service interfaces.
type stubStore struct {
	createUserFunc      func(ctx context.Context, user *models.User) error
	findUserByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	saveApplicationFunc func(ctx context.Context, userID string, sections map[string]interface{}, status string) (*models.Application, error)
	findApplicationFunc func(ctx context.Context, userID string) (*models.Application, error)
	pingFunc            func(ctx context.Context) error

	calls []string
}

func (s *stubStore) CreateUser(ctx context.Context, user *models.User) error {
	s.calls = append(s.calls, "CreateUser")
	if s.createUserFunc != nil {
		return s.createUserFunc(ctx, user)
	}
	return nil
}

func (s *stubStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.calls = append(s.calls, "FindUserByEmail")
	if s.findUserByEmailFunc != nil {
		return s.findUserByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (s *stubStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	s.calls = append(s.calls, "FindUserByID")
	return nil, nil
}

func (s *stubStore) FindApplicationByUser(ctx context.Context, userID string) (*models.Application, error) {
	s.calls = append(s.calls, "FindApplicationByUser")
	if s.findApplicationFunc != nil {
		return s.findApplicationFunc(ctx, userID)
	}
	return nil, nil
}

func (s *stubStore) SaveApplication(ctx context.Context, userID string, sections map[string]interface{}, status string) (*models.Application, error) {
	s.calls = append(s.calls, "SaveApplication")
	if s.saveApplicationFunc != nil {
		return s.saveApplicationFunc(ctx, userID, sections, status)
	}
	return &models.Application{UserID: userID, Status: models.StatusDraft}, nil
}

func (s *stubStore) CreateLead(ctx context.Context, lead *models.Lead) error {
	s.calls = append(s.calls, "CreateLead")
	return nil
}

func (s *stubStore) SiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	s.calls = append(s.calls, "SiteSettings")
	return seedSiteSettings(), nil
}

func (s *stubStore) Programs(ctx context.Context) ([]models.Program, error) {
	s.calls = append(s.calls, "Programs")
	return nil, nil
}

func (s *stubStore) Stats(ctx context.Context) ([]models.StatMetric, error) {
	s.calls = append(s.calls, "Stats")
	return nil, nil
}

func (s *stubStore) Events(ctx context.Context) ([]models.EventItem, error) {
	s.calls = append(s.calls, "Events")
	return nil, nil
}

func (s *stubStore) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	s.calls = append(s.calls, "Testimonials")
	return nil, nil
}

func (s *stubStore) Ping(ctx context.Context) error {
	s.calls = append(s.calls, "Ping")
	if s.pingFunc != nil {
		return s.pingFunc(ctx)
	}
	return nil
}

func TestFailover_PrimarySuccessSkipsFallback(t *testing.T) {
	primary := &stubStore{}
	fallback := &stubStore{}
	s := NewFailover(primary, fallback, logger.NewNoOpLogger())

	app, err := s.SaveApplication(context.Background(), "user-1", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "user-1", app.UserID)
	assert.Empty(t, fallback.calls)
}

func TestFailover_StorageErrorUsesFallback(t *testing.T) {
	primary := &stubStore{
		saveApplicationFunc: func(ctx context.Context, userID string, sections map[string]interface{}, status string) (*models.Application, error) {
			return nil, errors.NewStorageUnavailableError("mongo", assert.AnError)
		},
	}
	fallback := &stubStore{
		saveApplicationFunc: func(ctx context.Context, userID string, sections map[string]interface{}, status string) (*models.Application, error) {
			return &models.Application{UserID: userID, ApplicationNumber: "SCE2501001"}, nil
		},
	}
	s := NewFailover(primary, fallback, logger.NewNoOpLogger())

	app, err := s.SaveApplication(context.Background(), "user-1", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "SCE2501001", app.ApplicationNumber)
	assert.Equal(t, []string{"SaveApplication"}, fallback.calls)
}

func TestFailover_BusinessErrorPassesThrough(t *testing.T) {
	primary := &stubStore{
		createUserFunc: func(ctx context.Context, user *models.User) error {
			return errors.NewDuplicateEmailError(user.Email)
		},
	}
	fallback := &stubStore{}
	s := NewFailover(primary, fallback, logger.NewNoOpLogger())

	err := s.CreateUser(context.Background(), &models.User{Email: "priya@example.com"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDuplicateEmail, errors.CodeOf(err))
	assert.Empty(t, fallback.calls, "business errors must not reach the fallback")
}

func TestFailover_NilFallbackSurfacesError(t *testing.T) {
	primary := &stubStore{
		pingFunc: func(ctx context.Context) error {
			return errors.NewStorageUnavailableError("mongo", assert.AnError)
		},
	}
	s := NewFailover(primary, nil, logger.NewNoOpLogger())

	err := s.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsStorageUnavailable(err))
}

func TestFailover_FallbackErrorSurfaces(t *testing.T) {
	storageErr := errors.NewStorageUnavailableError("mongo", assert.AnError)
	primary := &stubStore{
		findUserByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, storageErr
		},
	}
	fallback := &stubStore{
		findUserByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, errors.NewStorageUnavailableError("file", assert.AnError)
		},
	}
	s := NewFailover(primary, fallback, logger.NewNoOpLogger())

	user, err := s.FindUserByEmail(context.Background(), "priya@example.com")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.IsStorageUnavailable(err))
}
