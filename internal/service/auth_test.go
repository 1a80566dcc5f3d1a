// internal/service/auth_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
)

func TestAuthService_Register(t *testing.T) {
	svc := NewAuthService(newTestStore(t), logger.NewNoOpLogger())

	user, err := svc.Register(context.Background(), "Priya Raman", "  Priya@Example.COM ", "secret123", "+919876543210")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "priya@example.com", user.Email, "email is trimmed and lowercased")
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.Len(t, user.PasswordHash, 64)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		email    string
		password string
		mobile   string
	}{
		{"missing fullName", "", "priya@example.com", "secret123", "+919876543210"},
		{"missing email", "Priya Raman", "", "secret123", "+919876543210"},
		{"invalid email", "Priya Raman", "not-an-email", "secret123", "+919876543210"},
		{"missing password", "Priya Raman", "priya@example.com", "", "+919876543210"},
		{"missing mobile", "Priya Raman", "priya@example.com", "secret123", ""},
	}

	svc := NewAuthService(newTestStore(t), logger.NewNoOpLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.fullName, tt.email, tt.password, tt.mobile)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newTestStore(t), logger.NewNoOpLogger())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Priya Raman", "priya@example.com", "secret123", "+919876543210")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Person", "PRIYA@example.com", "different", "+910000000000")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDuplicateEmail, errors.CodeOf(err))
}

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(newTestStore(t), logger.NewNoOpLogger())
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Priya Raman", "priya@example.com", "secret123", "+919876543210")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "Priya@Example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthService_Login_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	svc := NewAuthService(newTestStore(t), logger.NewNoOpLogger())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Priya Raman", "priya@example.com", "secret123", "+919876543210")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "priya@example.com", "wrong")
	require.Error(t, wrongPassword)

	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "secret123")
	require.Error(t, unknownEmail)

	assert.Equal(t, errors.ErrCodeAuthenticationFailed, errors.CodeOf(wrongPassword))
	assert.Equal(t, errors.CodeOf(wrongPassword), errors.CodeOf(unknownEmail))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error(),
		"unknown email and wrong password must look identical")
}
