// internal/models/lead.go
package models

import "time"

// Lead is an append-only marketing enquiry. It has no relationship to
// Application beyond sharing the storage substrate.
type Lead struct {
	ID            string    `json:"_id" bson:"_id"`
	FirstName     string    `json:"firstName" bson:"firstName"`
	LastName      string    `json:"lastName" bson:"lastName"`
	Email         string    `json:"email" bson:"email"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Message       string    `json:"message,omitempty" bson:"message,omitempty"`
	InterestAreas []string  `json:"interestAreas,omitempty" bson:"interestAreas,omitempty"`
	Source        string    `json:"source,omitempty" bson:"source,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
