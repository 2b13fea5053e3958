package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/product-catalog/internal/auth"
	"github.com/spec-kit/product-catalog/internal/config"
	"github.com/spec-kit/product-catalog/internal/domain"
	"github.com/spec-kit/product-catalog/internal/repository"
	apperrors "github.com/spec-kit/product-catalog/pkg/util"
)

const pgUniqueViolation = "23505"

// AuthService coordinates the signup flow.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// RegisterUser creates an account and issues a bearer token. The email is
// normalized before lookup and insert; the unique index on users.email is
// the final arbiter of a duplicate race, and a violation maps to the same
// duplicate response the fast-path lookup produces.
func (s *AuthService) RegisterUser(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewBadRequest("User already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, storeError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, "", time.Time{}, apperrors.NewBadRequest("User already exists")
		}
		return nil, "", time.Time{}, storeError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// storeError surfaces the upstream SQLSTATE when the store fails.
func storeError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperrors.NewUpstreamError("Something went wrong, try again", http.StatusInternalServerError, pgErr.Code, err)
	}
	return apperrors.NewInternalError(err)
}
