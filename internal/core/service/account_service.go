package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clockline/timetrack-api/internal/api/metrics"
	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

// LoginLimiter throttles repeated failed logins per email (Redis-backed).
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AccountService implements registration, login, and self-profile management.
type AccountService struct {
	users   ports.UserRepository
	tokens  *TokenManager
	limiter LoginLimiter
	logger  zerolog.Logger
}

func NewAccountService(users ports.UserRepository, tokens *TokenManager, limiter LoginLimiter, logger zerolog.Logger) *AccountService {
	return &AccountService{users: users, tokens: tokens, limiter: limiter, logger: logger}
}

// Register creates a plain-user account and returns a fresh token. Privileged
// roles are never granted through registration.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return token, created, nil
}

// Login verifies credentials and returns a token. Unknown emails and wrong
// passwords collapse to the same error so accounts cannot be enumerated.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	throttled, err := s.limiter.TooManyAttempts(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login limiter check failed, proceeding")
	} else if throttled {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter reset failed")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

func (s *AccountService) recordFailure(ctx context.Context, email string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter record failed")
	}
}

// Profile returns the actor's own record.
func (s *AccountService) Profile(ctx context.Context, actorID string) (*domain.User, error) {
	return s.users.FindByID(ctx, actorID)
}

// UpdateProfile applies a partial update to the actor's own record.
func (s *AccountService) UpdateProfile(ctx context.Context, actorID string, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		if err := s.ensureEmailFree(ctx, *in.Email); err != nil {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.PreferredWorkingHours != nil {
		user.PreferredWorkingHours = in.PreferredWorkingHours
	}
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

// UpdatePassword changes the actor's password after verifying the current one.
func (s *AccountService) UpdatePassword(ctx context.Context, actorID, currentPassword, newPassword string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return nil, domain.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

func (s *AccountService) ensureEmailFree(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}
