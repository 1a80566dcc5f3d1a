// internal/store/store.go

// Package store owns the persistence contract for applicants,
// applications, leads and site content. Two substrates implement the
// same interface: the MongoDB document store and the JSON-file fallback.
// The failover wrapper composes them so storage outages never reach the
// service layer.
package store

import (
	"context"

	"admissions-backend/internal/models"
)

// Store is the uniform persistence contract shared by every substrate.
// Lookups return (nil, nil) when the record is absent: a new applicant
// without an application is an expected state, not an error.
type Store interface {
	// Identity.
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)

	// Application record. SaveApplication is find-or-create keyed on
	// userID: the first save allocates the application number, later
	// saves shallow-merge sections (incoming keys win), update status
	// only when one is given, and refresh UpdatedAt. The full resulting
	// record is returned.
	FindApplicationByUser(ctx context.Context, userID string) (*models.Application, error)
	SaveApplication(ctx context.Context, userID string, sections map[string]interface{}, status string) (*models.Application, error)

	// Lead capture, append-only.
	CreateLead(ctx context.Context, lead *models.Lead) error

	// Marketing content, read-only.
	SiteSettings(ctx context.Context) (*models.SiteSettings, error)
	Programs(ctx context.Context) ([]models.Program, error)
	Stats(ctx context.Context) ([]models.StatMetric, error)
	Events(ctx context.Context) ([]models.EventItem, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)

	Ping(ctx context.Context) error
}
