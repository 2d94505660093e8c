package service

import (
	"context"
	"time"

	"github.com/spec-kit/hall-complaints/internal/auth"
	"github.com/spec-kit/hall-complaints/internal/config"
	"github.com/spec-kit/hall-complaints/internal/domain"
	"github.com/spec-kit/hall-complaints/internal/validation"
	apperrors "github.com/spec-kit/hall-complaints/pkg/util"
)

// invalidCredentialsMsg is deliberately identical for every failure mode so
// a caller cannot learn which field was wrong.
const invalidCredentialsMsg = "Invalid credentials."

// AuthService authenticates the single operator account and issues session
// tokens.
type AuthService struct {
	operator domain.Operator
	tokenMgr *auth.TokenManager
}

// NewAuthService hashes the configured operator password and builds the
// service.
func NewAuthService(cfg config.AuthConfig) (*AuthService, error) {
	hash, err := auth.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		operator: domain.Operator{Email: cfg.AdminEmail, PasswordHash: hash},
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL()),
	}, nil
}

// Authenticate checks the credential pair against the operator account and
// returns a signed session on success. Every mismatch is the same generic
// failure.
func (s *AuthService) Authenticate(_ context.Context, email, password string) (*domain.Session, error) {
	if fieldErr := validation.ValidateCredentials(email, password); fieldErr != nil {
		return nil, apperrors.NewUnauthorized(invalidCredentialsMsg)
	}
	if email != s.operator.Email {
		return nil, apperrors.NewUnauthorized(invalidCredentialsMsg)
	}
	if err := auth.ComparePassword(s.operator.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized(invalidCredentialsMsg)
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &domain.Session{
		Token:     token,
		Email:     email,
		IssuedAt:  time.Now(),
		ExpiresAt: expiresAt,
	}, nil
}

// EndSession is a no-op server-side; the session token is stateless and the
// boundary clears the cookie.
func (s *AuthService) EndSession(_ context.Context) error {
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
