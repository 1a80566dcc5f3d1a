// internal/store/file_test.go
package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/models"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFile(filepath.Join(t.TempDir(), "db.json"), logger.NewNoOpLogger())
	require.NoError(t, err)
	return s
}

func TestFileStore_SaveApplication_Create(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	app, err := s.SaveApplication(ctx, "user-1", map[string]interface{}{
		"fullName": "Priya Raman",
		"program":  "CSE",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "SCE2501001", app.ApplicationNumber)
	assert.Equal(t, models.StatusDraft, app.Status)
	assert.Equal(t, "user-1", app.UserID)
	assert.Equal(t, "Priya Raman", app.Sections["fullName"])
	assert.NotEmpty(t, app.ID)
	assert.False(t, app.CreatedAt.IsZero())
}

func TestFileStore_SaveApplication_NumbersIncrease(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	first, err := s.SaveApplication(ctx, "user-1", nil, "")
	require.NoError(t, err)
	second, err := s.SaveApplication(ctx, "user-2", nil, "")
	require.NoError(t, err)

	assert.Equal(t, "SCE2501001", first.ApplicationNumber)
	assert.Equal(t, "SCE2501002", second.ApplicationNumber)
}

func TestFileStore_SaveApplication_MergeRetainsOmittedKeys(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	_, err := s.SaveApplication(ctx, "user-1", map[string]interface{}{
		"fullName": "Priya Raman",
		"city":     "Tiruppur",
	}, "")
	require.NoError(t, err)

	app, err := s.SaveApplication(ctx, "user-1", map[string]interface{}{
		"city":    "Coimbatore",
		"program": "MBA",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "Priya Raman", app.Sections["fullName"], "omitted key must survive")
	assert.Equal(t, "Coimbatore", app.Sections["city"], "incoming key must win")
	assert.Equal(t, "MBA", app.Sections["program"])
	assert.Equal(t, "SCE2501001", app.ApplicationNumber, "number is allocated once")
}

func TestFileStore_SaveApplication_StatusHandling(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{"empty status keeps draft", []string{"", ""}, models.StatusDraft},
		{"submit", []string{"", models.StatusSubmitted}, models.StatusSubmitted},
		{"resubmit stays submitted", []string{models.StatusSubmitted, models.StatusSubmitted}, models.StatusSubmitted},
		{"submitted back to draft is allowed", []string{models.StatusSubmitted, models.StatusDraft}, models.StatusDraft},
		{"empty status preserves submitted", []string{models.StatusSubmitted, ""}, models.StatusSubmitted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestFileStore(t)
			ctx := context.Background()

			var app *models.Application
			var err error
			for _, status := range tt.statuses {
				app, err = s.SaveApplication(ctx, "user-1", nil, status)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, app.Status)
		})
	}
}

func TestFileStore_SaveApplication_ConcurrentDistinctUsers(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	results := make([]*models.Application, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			app, err := s.SaveApplication(ctx, fmt.Sprintf("user-%d", i), nil, "")
			assert.NoError(t, err)
			results[i] = app
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, app := range results {
		require.NotNil(t, app)
		assert.False(t, seen[app.ApplicationNumber], "duplicate number %s", app.ApplicationNumber)
		seen[app.ApplicationNumber] = true
	}
}

func TestFileStore_FindApplicationByUser_Absent(t *testing.T) {
	s := newTestFileStore(t)

	app, err := s.FindApplicationByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, app)
}

func TestFileStore_CreateUser_DuplicateEmail(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	err := s.CreateUser(ctx, &models.User{FullName: "Priya Raman", Email: "priya@example.com"})
	require.NoError(t, err)

	err = s.CreateUser(ctx, &models.User{FullName: "Someone Else", Email: "PRIYA@example.com"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDuplicateEmail, errors.CodeOf(err))
}

func TestFileStore_FindUser(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	user := &models.User{FullName: "Priya Raman", Email: "priya@example.com"}
	require.NoError(t, s.CreateUser(ctx, user))
	require.NotEmpty(t, user.ID)

	byEmail, err := s.FindUserByEmail(ctx, "priya@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := s.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "priya@example.com", byID.Email)

	missing, err := s.FindUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFileStore_SeededContent(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	settings, err := s.SiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sasurie Institute of Technology", settings.Name)

	programs, err := s.Programs(ctx)
	require.NoError(t, err)
	assert.Len(t, programs, 2)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats, 4)

	events, err := s.Events(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	testimonials, err := s.Testimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 2)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	ctx := context.Background()

	s, err := NewFile(path, logger.NewNoOpLogger())
	require.NoError(t, err)
	_, err = s.SaveApplication(ctx, "user-1", map[string]interface{}{"fullName": "Priya Raman"}, models.StatusSubmitted)
	require.NoError(t, err)

	reopened, err := NewFile(path, logger.NewNoOpLogger())
	require.NoError(t, err)

	app, err := reopened.FindApplicationByUser(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, "SCE2501001", app.ApplicationNumber)
	assert.Equal(t, models.StatusSubmitted, app.Status)

	// Counter state survives too: the next user does not reuse a number.
	next, err := reopened.SaveApplication(ctx, "user-2", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "SCE2501002", next.ApplicationNumber)
}

func TestFileStore_CreateLead(t *testing.T) {
	s := newTestFileStore(t)

	lead := &models.Lead{FirstName: "Kavitha", LastName: "S", Email: "kavitha@example.com"}
	require.NoError(t, s.CreateLead(context.Background(), lead))
	assert.NotEmpty(t, lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestFileStore_Ping(t *testing.T) {
	s := newTestFileStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
