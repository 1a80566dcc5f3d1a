// internal/store/mongo.go
package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"admissions-backend/internal/appnumber"
	"admissions-backend/internal/common/database"
	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/models"
)

// Collection names, shared with the seed tooling.
const (
	colUsers        = "users"
	colApplications = "applications"
	colLeads        = "leads"
	colCounters     = "counters"
	colSiteSettings = "sitesettings"
	colPrograms     = "programs"
	colStats        = "stats"
	colEvents       = "events"
	colTestimonials = "testimonials"
)

// MongoStore is the primary substrate. Application numbers come from an
// atomic $inc on the counters collection, and unique indexes on
// users.email and applications.userId enforce the one-account,
// one-application rules even under concurrent requests.
type MongoStore struct {
	client *database.MongoClient
	log    logger.Logger
}

// NewMongoStore wires the store and ensures its indexes exist.
func NewMongoStore(ctx context.Context, client *database.MongoClient, log logger.Logger) (*MongoStore, error) {
	s := &MongoStore{client: client, log: log}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	if _, err := s.client.Collection(colUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return errors.NewStorageUnavailableError("mongo", err)
	}
	if _, err := s.client.Collection(colApplications).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: unique,
	}); err != nil {
		return errors.NewStorageUnavailableError("mongo", err)
	}
	return nil
}

// SeedContent inserts the default marketing content into any content
// collection that is still empty. Safe to call on every boot.
func (s *MongoStore) SeedContent(ctx context.Context) error {
	settings := s.client.Collection(colSiteSettings)
	n, err := settings.CountDocuments(ctx, bson.M{})
	if err != nil {
		return errors.NewStorageUnavailableError("mongo", err)
	}
	if n == 0 {
		if _, err := settings.InsertOne(ctx, seedSiteSettings()); err != nil {
			return errors.NewStorageUnavailableError("mongo", err)
		}
	}

	seedMany := func(col string, docs []interface{}) error {
		c := s.client.Collection(col)
		n, err := c.CountDocuments(ctx, bson.M{})
		if err != nil {
			return errors.NewStorageUnavailableError("mongo", err)
		}
		if n > 0 {
			return nil
		}
		if _, err := c.InsertMany(ctx, docs); err != nil {
			return errors.NewStorageUnavailableError("mongo", err)
		}
		return nil
	}

	programs := make([]interface{}, 0)
	for _, p := range seedPrograms() {
		programs = append(programs, p)
	}
	if err := seedMany(colPrograms, programs); err != nil {
		return err
	}
	stats := make([]interface{}, 0)
	for _, m := range seedStats() {
		stats = append(stats, m)
	}
	if err := seedMany(colStats, stats); err != nil {
		return err
	}
	events := make([]interface{}, 0)
	for _, e := range seedEvents() {
		events = append(events, e)
	}
	if err := seedMany(colEvents, events); err != nil {
		return err
	}
	testimonials := make([]interface{}, 0)
	for _, t := range seedTestimonials() {
		testimonials = append(testimonials, t)
	}
	return seedMany(colTestimonials, testimonials)
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if _, err := s.client.Collection(colUsers).InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.NewDuplicateEmailError(user.Email)
		}
		return errors.NewStorageUnavailableError("mongo", err)
	}
	return nil
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := s.client.Collection(colUsers).FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStorageUnavailableError("mongo", err)
	}
	return user, nil
}

func (s *MongoStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	err := s.client.Collection(colUsers).FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStorageUnavailableError("mongo", err)
	}
	return user, nil
}

func (s *MongoStore) FindApplicationByUser(ctx context.Context, userID string) (*models.Application, error) {
	app := &models.Application{}
	err := s.client.Collection(colApplications).FindOne(ctx, bson.M{"userId": userID}).Decode(app)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStorageUnavailableError("mongo", err)
	}
	return app, nil
}

// nextApplicationSeq atomically bumps and returns the allocation
// counter. $inc on a single counter document is the race-free
// replacement for deriving numbers from a collection count.
func (s *MongoStore) nextApplicationSeq(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.client.Collection(colCounters).FindOneAndUpdate(ctx,
		bson.M{"_id": appSeqCounter},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, errors.NewStorageUnavailableError("mongo", err)
	}
	return counter.Seq, nil
}

func (s *MongoStore) SaveApplication(ctx context.Context, userID string, sections map[string]interface{}, status string) (*models.Application, error) {
	existing, err := s.FindApplicationByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if existing == nil {
		seq, err := s.nextApplicationSeq(ctx)
		if err != nil {
			return nil, err
		}
		if status == "" {
			status = models.StatusDraft
		}
		app := &models.Application{
			ID:                uuid.NewString(),
			UserID:            userID,
			ApplicationNumber: appnumber.Format(seq),
			Status:            status,
			Sections:          models.MergeSections(nil, sections),
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if _, err := s.client.Collection(colApplications).InsertOne(ctx, app); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// Lost a create race on the userId index; merge into the
				// winner instead. The allocated number goes unused, which
				// only leaves a gap in the sequence.
				return s.updateApplication(ctx, userID, sections, status, now)
			}
			return nil, errors.NewStorageUnavailableError("mongo", err)
		}
		return app, nil
	}

	return s.updateApplication(ctx, userID, sections, status, now)
}

// updateApplication merges sections key by key through $set, so keys
// omitted from this save survive untouched even when two saves for the
// same user interleave.
func (s *MongoStore) updateApplication(ctx context.Context, userID string, sections map[string]interface{}, status string, now time.Time) (*models.Application, error) {
	set := bson.M{"updatedAt": now}
	for k, v := range sections {
		set["sections."+k] = v
	}
	if status != "" {
		set["status"] = status
	}

	app := &models.Application{}
	err := s.client.Collection(colApplications).FindOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(app)
	if err != nil {
		return nil, errors.NewStorageUnavailableError("mongo", err)
	}
	return app, nil
}

func (s *MongoStore) CreateLead(ctx context.Context, lead *models.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	if _, err := s.client.Collection(colLeads).InsertOne(ctx, lead); err != nil {
		return errors.NewStorageUnavailableError("mongo", err)
	}
	return nil
}

func (s *MongoStore) SiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	settings := &models.SiteSettings{}
	err := s.client.Collection(colSiteSettings).FindOne(ctx, bson.M{}).Decode(settings)
	if err == mongo.ErrNoDocuments {
		return seedSiteSettings(), nil
	}
	if err != nil {
		return nil, errors.NewStorageUnavailableError("mongo", err)
	}
	return settings, nil
}

func (s *MongoStore) Programs(ctx context.Context) ([]models.Program, error) {
	out := []models.Program{}
	if err := s.findAll(ctx, colPrograms, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Stats(ctx context.Context) ([]models.StatMetric, error) {
	out := []models.StatMetric{}
	if err := s.findAll(ctx, colStats, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Events(ctx context.Context) ([]models.EventItem, error) {
	out := []models.EventItem{}
	if err := s.findAll(ctx, colEvents, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	out := []models.Testimonial{}
	if err := s.findAll(ctx, colTestimonials, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) findAll(ctx context.Context, col string, out interface{}) error {
	cursor, err := s.client.Collection(col).Find(ctx, bson.M{})
	if err != nil {
		return errors.NewStorageUnavailableError("mongo", err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return errors.NewStorageUnavailableError("mongo", err)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx); err != nil {
		return errors.NewStorageUnavailableError("mongo", err)
	}
	return nil
}
