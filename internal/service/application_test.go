// internal/service/application_test.go
package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/models"
	"admissions-backend/internal/notify"
	"admissions-backend/internal/store"
)

type mockDispatcher struct {
	mu         sync.Mutex
	applicants []*models.User
	apps       []*models.Application
	result     *notify.Result
}

func (m *mockDispatcher) Dispatch(ctx context.Context, applicant *models.User, app *models.Application) *notify.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applicants = append(m.applicants, applicant)
	m.apps = append(m.apps, app)
	if m.result != nil {
		return m.result
	}
	return &notify.Result{NotificationID: "n-1", Status: notify.StatusSent}
}

func (m *mockDispatcher) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.apps)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFile(filepath.Join(t.TempDir(), "db.json"), logger.NewNoOpLogger())
	require.NoError(t, err)
	return s
}

func TestApplicationService_Save_RequiresUserID(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), &mockDispatcher{}, logger.NewNoOpLogger())

	_, err := svc.Save(context.Background(), "  ", nil, "")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
}

func TestApplicationService_Save_RejectsUnknownStatus(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), &mockDispatcher{}, logger.NewNoOpLogger())

	_, err := svc.Save(context.Background(), "user-1", nil, "approved")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
}

func TestApplicationService_Save_AcceptsFrontendStatusAlias(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), &mockDispatcher{}, logger.NewNoOpLogger())

	app, err := svc.Save(context.Background(), "user-1", nil, "in_progress")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, app.Status)
}

func TestApplicationService_Save_DraftDoesNotDispatch(t *testing.T) {
	dispatcher := &mockDispatcher{}
	svc := NewApplicationService(newTestStore(t), dispatcher, logger.NewNoOpLogger())

	_, err := svc.Save(context.Background(), "user-1", map[string]interface{}{"fullName": "A"}, models.StatusDraft)
	require.NoError(t, err)

	// Give a stray goroutine a moment to show up if one was started.
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, dispatcher.count())
}

func TestApplicationService_Save_SubmitDispatchesOnce(t *testing.T) {
	st := newTestStore(t)
	dispatcher := &mockDispatcher{}
	svc := NewApplicationService(st, dispatcher, logger.NewNoOpLogger())

	require.NoError(t, st.CreateUser(context.Background(), &models.User{
		ID: "user-1", FullName: "Priya Raman", Email: "priya@example.com",
	}))

	app, err := svc.Save(context.Background(), "user-1", map[string]interface{}{"course": "CSE"}, models.StatusSubmitted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, app.Status)

	assert.Eventually(t, func() bool { return dispatcher.count() == 1 }, time.Second, 10*time.Millisecond)

	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	require.NotNil(t, dispatcher.applicants[0])
	assert.Equal(t, "priya@example.com", dispatcher.applicants[0].Email)
	assert.Equal(t, "CSE", dispatcher.apps[0].Sections["course"])
}

func TestApplicationService_Save_ResubmissionRenotifies(t *testing.T) {
	dispatcher := &mockDispatcher{}
	svc := NewApplicationService(newTestStore(t), dispatcher, logger.NewNoOpLogger())

	_, err := svc.Save(context.Background(), "user-1", nil, models.StatusSubmitted)
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), "user-1", nil, models.StatusSubmitted)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return dispatcher.count() == 2 }, time.Second, 10*time.Millisecond)
}

func TestApplicationService_Save_DispatchFailureDoesNotAffectSave(t *testing.T) {
	st := newTestStore(t)
	dispatcher := &mockDispatcher{result: &notify.Result{NotificationID: "n-1", Status: notify.StatusFailed}}
	svc := NewApplicationService(st, dispatcher, logger.NewNoOpLogger())

	app, err := svc.Save(context.Background(), "user-1", nil, models.StatusSubmitted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, app.Status)

	assert.Eventually(t, func() bool { return dispatcher.count() == 1 }, time.Second, 10*time.Millisecond)

	stored, err := st.FindApplicationByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.StatusSubmitted, stored.Status, "failed dispatch must not touch the record")
}

func TestApplicationService_Resume_ReturnsStoredSections(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, &mockDispatcher{}, logger.NewNoOpLogger())

	_, err := svc.Save(context.Background(), "user-1", map[string]interface{}{
		"fullName": "Priya Raman",
		"city":     "Tiruppur",
	}, "")
	require.NoError(t, err)

	sections, err := svc.Resume(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Priya Raman", sections["fullName"])
	assert.Equal(t, "Tiruppur", sections["city"])
}

func TestApplicationService_Resume_SeedsFromProfileWithoutPersisting(t *testing.T) {
	st := newTestStore(t)
	svc := NewApplicationService(st, &mockDispatcher{}, logger.NewNoOpLogger())

	require.NoError(t, st.CreateUser(context.Background(), &models.User{
		ID: "user-1", FullName: "Priya Raman", Email: "priya@example.com", Mobile: "+919876543210",
	}))

	sections, err := svc.Resume(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"fullName":      "Priya Raman",
		"studentEmail":  "priya@example.com",
		"studentMobile": "+919876543210",
	}, sections)

	app, err := st.FindApplicationByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, app, "resume seed must not create a record")
}

func TestApplicationService_Resume_UnknownUser(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), &mockDispatcher{}, logger.NewNoOpLogger())

	_, err := svc.Resume(context.Background(), "nobody")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeResourceNotFound, errors.CodeOf(err))
}

// Full intake walk: register, draft save, submit save.
func TestApplicationService_IntakeScenario(t *testing.T) {
	st := newTestStore(t)
	dispatcher := &mockDispatcher{}
	appSvc := NewApplicationService(st, dispatcher, logger.NewNoOpLogger())
	authSvc := NewAuthService(st, logger.NewNoOpLogger())
	ctx := context.Background()

	user, err := authSvc.Register(ctx, "Priya Raman", "priya@example.com", "secret123", "+919876543210")
	require.NoError(t, err)

	draft, err := appSvc.Save(ctx, user.ID, map[string]interface{}{"fullName": "Priya Raman"}, models.StatusDraft)
	require.NoError(t, err)
	assert.Equal(t, "SCE2501001", draft.ApplicationNumber)
	assert.Equal(t, models.StatusDraft, draft.Status)

	submitted, err := appSvc.Save(ctx, user.ID, map[string]interface{}{"course": "CSE"}, models.StatusSubmitted)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, submitted.ID, "same record across saves")
	assert.Equal(t, "SCE2501001", submitted.ApplicationNumber, "number assigned once")
	assert.Equal(t, models.StatusSubmitted, submitted.Status)
	assert.Equal(t, "Priya Raman", submitted.Sections["fullName"])
	assert.Equal(t, "CSE", submitted.Sections["course"])

	assert.Eventually(t, func() bool { return dispatcher.count() == 1 }, time.Second, 10*time.Millisecond)
}
