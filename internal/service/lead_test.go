// internal/service/lead_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/models"
)

func TestLeadService_Create(t *testing.T) {
	svc := NewLeadService(newTestStore(t), logger.NewNoOpLogger())

	lead, err := svc.Create(context.Background(), &models.Lead{
		FirstName:     "Kavitha",
		LastName:      "S",
		Email:         " Kavitha@Example.com ",
		InterestAreas: []string{"CSE"},
		Source:        "landing-page",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "kavitha@example.com", lead.Email)
}

func TestLeadService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		lead models.Lead
	}{
		{"missing firstName", models.Lead{LastName: "S", Email: "k@example.com"}},
		{"missing lastName", models.Lead{FirstName: "Kavitha", Email: "k@example.com"}},
		{"missing email", models.Lead{FirstName: "Kavitha", LastName: "S"}},
		{"invalid email", models.Lead{FirstName: "Kavitha", LastName: "S", Email: "nope"}},
	}

	svc := NewLeadService(newTestStore(t), logger.NewNoOpLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := tt.lead
			_, err := svc.Create(context.Background(), &lead)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
		})
	}
}
