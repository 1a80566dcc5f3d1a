// internal/store/file.go
package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"admissions-backend/internal/appnumber"
	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/models"
)

const appSeqCounter = "applicationNumber"

// fileDocument is the entire datastore as one JSON document. Every write
// rewrites the whole file; the mutex in FileStore serializes access, so
// counter bumps and find-or-create races cannot interleave.
type fileDocument struct {
	Users        []models.User        `json:"users"`
	Applications []models.Application `json:"applications"`
	Leads        []models.Lead        `json:"leads"`
	Counters     map[string]int64     `json:"counters"`
	Content      fileContent          `json:"content"`
}

type fileContent struct {
	SiteSettings *models.SiteSettings `json:"siteSettings"`
	Programs     []models.Program     `json:"programs"`
	Stats        []models.StatMetric  `json:"stats"`
	Events       []models.EventItem   `json:"events"`
	Testimonials []models.Testimonial `json:"testimonials"`
}

// FileStore persists everything in a single JSON file. It is the
// fallback substrate: slow but dependency-free, so the intake flow keeps
// working when MongoDB is unreachable.
type FileStore struct {
	mu   sync.Mutex
	path string
	log  logger.Logger
}

// NewFile opens (or creates and seeds) the JSON datastore at path.
func NewFile(path string, log logger.Logger) (*FileStore, error) {
	s := &FileStore{path: path, log: log}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.NewStorageUnavailableError("file", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		doc := &fileDocument{
			Counters: map[string]int64{appSeqCounter: 0},
			Content: fileContent{
				SiteSettings: seedSiteSettings(),
				Programs:     seedPrograms(),
				Stats:        seedStats(),
				Events:       seedEvents(),
				Testimonials: seedTestimonials(),
			},
		}
		if err := s.persist(doc); err != nil {
			return nil, err
		}
		log.Info("file store initialized with seed content", map[string]interface{}{
			"path": path,
		})
	}

	// Fail fast on an unreadable or corrupt file rather than at first
	// request.
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() (*fileDocument, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.NewStorageUnavailableError("file", err)
	}
	doc := &fileDocument{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, errors.NewStorageUnavailableError("file", err)
	}
	if doc.Counters == nil {
		doc.Counters = map[string]int64{}
	}
	return doc, nil
}

// persist writes the document to a temp file and renames it into place,
// so a crash mid-write never leaves a truncated datastore behind.
func (s *FileStore) persist(doc *fileDocument) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.NewStorageUnavailableError("file", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.NewStorageUnavailableError("file", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.NewStorageUnavailableError("file", err)
	}
	return nil
}

func (s *FileStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	for i := range doc.Users {
		if strings.EqualFold(doc.Users[i].Email, user.Email) {
			return errors.NewDuplicateEmailError(user.Email)
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	doc.Users = append(doc.Users, *user)
	return s.persist(doc)
}

func (s *FileStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Users {
		if strings.EqualFold(doc.Users[i].Email, email) {
			u := doc.Users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *FileStore) FindUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			u := doc.Users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *FileStore) FindApplicationByUser(_ context.Context, userID string) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	if app := findApplication(doc, userID); app != nil {
		out := *app
		return &out, nil
	}
	return nil, nil
}

func (s *FileStore) SaveApplication(_ context.Context, userID string, sections map[string]interface{}, status string) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	app := findApplication(doc, userID)
	if app == nil {
		doc.Counters[appSeqCounter]++
		seq := doc.Counters[appSeqCounter]
		if status == "" {
			status = models.StatusDraft
		}
		doc.Applications = append(doc.Applications, models.Application{
			ID:                uuid.NewString(),
			UserID:            userID,
			ApplicationNumber: appnumber.Format(seq),
			Status:            status,
			Sections:          models.MergeSections(nil, sections),
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		app = &doc.Applications[len(doc.Applications)-1]
	} else {
		app.Sections = models.MergeSections(app.Sections, sections)
		if status != "" {
			app.Status = status
		}
		app.UpdatedAt = now
	}

	out := *app
	if err := s.persist(doc); err != nil {
		return nil, err
	}
	return &out, nil
}

func findApplication(doc *fileDocument, userID string) *models.Application {
	for i := range doc.Applications {
		if doc.Applications[i].UserID == userID {
			return &doc.Applications[i]
		}
	}
	return nil
}

func (s *FileStore) CreateLead(_ context.Context, lead *models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	doc.Leads = append(doc.Leads, *lead)
	return s.persist(doc)
}

func (s *FileStore) SiteSettings(_ context.Context) (*models.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	if doc.Content.SiteSettings == nil {
		return seedSiteSettings(), nil
	}
	out := *doc.Content.SiteSettings
	return &out, nil
}

func (s *FileStore) Programs(_ context.Context) ([]models.Program, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return append([]models.Program(nil), doc.Content.Programs...), nil
}

func (s *FileStore) Stats(_ context.Context) ([]models.StatMetric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return append([]models.StatMetric(nil), doc.Content.Stats...), nil
}

func (s *FileStore) Events(_ context.Context) ([]models.EventItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return append([]models.EventItem(nil), doc.Content.Events...), nil
}

func (s *FileStore) Testimonials(_ context.Context) ([]models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return append([]models.Testimonial(nil), doc.Content.Testimonials...), nil
}

func (s *FileStore) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.load()
	return err
}
