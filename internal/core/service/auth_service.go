package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/washline/laundry-system/internal/core/domain"
	"github.com/washline/laundry-system/internal/core/ports"
)

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	// TooMany reports whether the username has exceeded the failure budget.
	TooMany(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.AuthRepository
	throttle  LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, throttle LoginThrottle, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, throttle: throttle, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates a user with a bcrypt-hashed password. Uniqueness is
// checked with a lookup before the insert; the unique index on username
// closes the window between the two (a concurrent duplicate surfaces as
// ErrUserExists from the repository).
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Str("role", role).Msg("user registered")
	return created, nil
}

// Login authenticates a user by username, password and role together: a
// user registered under one role cannot log in presenting another. Wrong
// password, wrong role and unknown username are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, username, password, role string) (string, *domain.User, error) {
	if username == "" || password == "" || role == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Throttle check degrades open: a Redis outage must not lock everyone out.
	if blocked, err := s.throttle.TooMany(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, allowing attempt")
	} else if blocked {
		return "", nil, domain.ErrTooManyLoginAttempts
	}

	user, err := s.repo.FindByUsernameAndRole(ctx, username, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
