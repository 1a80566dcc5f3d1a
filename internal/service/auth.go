// internal/service/auth.go
package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"admissions-backend/internal/common/errors"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/models"
	"admissions-backend/internal/store"
)

// AuthService handles applicant registration and login. Failed logins
// return the same error whether the email is unknown or the password is
// wrong.
type AuthService struct {
	store  store.Store
	logger logger.Logger
}

func NewAuthService(st store.Store, log logger.Logger) *AuthService {
	return &AuthService{
		store:  st,
		logger: log.WithFields(map[string]interface{}{"component": "auth"}),
	}
}

// HashPassword derives the stored credential from a plaintext password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates an applicant account. Email is trimmed and
// lowercased before the uniqueness check so case variants collide.
func (s *AuthService) Register(ctx context.Context, fullName, email, password, mobile string) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	mobile = strings.TrimSpace(mobile)

	switch {
	case fullName == "":
		return nil, errors.NewValidationFailedError("fullName is required")
	case email == "":
		return nil, errors.NewValidationFailedError("email is required")
	case !strings.Contains(email, "@"):
		return nil, errors.NewValidationFailedError("email is not valid")
	case password == "":
		return nil, errors.NewValidationFailedError("password is required")
	case mobile == "":
		return nil, errors.NewValidationFailedError("mobile is required")
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		Mobile:       mobile,
		PasswordHash: HashPassword(password),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", map[string]interface{}{"userId": user.ID})
	return user, nil
}

// Login authenticates by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.NewAuthenticationFailedError()
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewAuthenticationFailedError()
	}

	hash := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(user.PasswordHash)) != 1 {
		return nil, errors.NewAuthenticationFailedError()
	}

	s.logger.Info("user logged in", map[string]interface{}{"userId": user.ID})
	return user, nil
}
