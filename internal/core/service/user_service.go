package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clockline/timetrack-api/internal/api/metrics"
	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/policy"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

// UserService implements roster management. Every operation runs the access
// policy against the actor before touching the target.
type UserService struct {
	users    ports.UserRepository
	times    ports.TimeEntryRepository
	renderer ports.UserReportRenderer
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, times ports.TimeEntryRepository, renderer ports.UserReportRenderer, logger zerolog.Logger) *UserService {
	return &UserService{users: users, times: times, renderer: renderer, logger: logger}
}

// List returns the users the actor outranks, paginated.
func (s *UserService) List(ctx context.Context, in ports.ListUsersInput) (*ports.ListUsersResult, error) {
	items, total, err := s.users.ListBelowRank(ctx, in.Actor.Role, in.Page, in.Limit)
	if err != nil {
		return nil, err
	}
	return &ports.ListUsersResult{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

// Export renders the visible roster to PDF.
func (s *UserService) Export(ctx context.Context, actor domain.Actor) (*ports.ExportFile, error) {
	items, _, err := s.users.ListBelowRank(ctx, actor.Role, 0, 0)
	if err != nil {
		return nil, err
	}

	file, err := s.renderer.RenderUserReport(items)
	if err != nil {
		return nil, err
	}

	metrics.ExportsGeneratedTotal.WithLabelValues("user").Inc()
	s.logger.Info().Str("actor_id", actor.ID).Int("users", len(items)).Msg("user roster exported")
	return file, nil
}

// Get returns a single user the actor may access.
func (s *UserService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.User, error) {
	if err := policy.AuthorizeUserAccess(ctx, s.users, actor, id, nil); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// Create adds a managed user with a role the actor outranks.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if err := policy.AuthorizeUserAccess(ctx, s.users, in.Actor, "", &in.Role); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, in.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:             in.FirstName,
		LastName:              in.LastName,
		Email:                 in.Email,
		PasswordHash:          string(hash),
		Role:                  in.Role,
		PreferredWorkingHours: in.PreferredWorkingHours,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("actor_id", in.Actor.ID).
		Str("user_id", created.ID).
		Str("role", created.Role.String()).
		Msg("user created")
	return created, nil
}

// Update applies a partial update to a user the actor outranks.
func (s *UserService) Update(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	if err := policy.AuthorizeUserAccess(ctx, s.users, in.Actor, in.TargetID, in.Role); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, in.TargetID)
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
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.PreferredWorkingHours != nil {
		user.PreferredWorkingHours = in.PreferredWorkingHours
	}
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

// UpdatePassword sets a new password for a user the actor outranks.
func (s *UserService) UpdatePassword(ctx context.Context, actor domain.Actor, targetID, newPassword string) (*domain.User, error) {
	if err := policy.AuthorizeUserAccess(ctx, s.users, actor, targetID, nil); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

// Delete removes a user the actor outranks, cascading to the user's time
// entries first so no orphaned entries survive.
func (s *UserService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := policy.AuthorizeUserAccess(ctx, s.users, actor, id, nil); err != nil {
		return err
	}

	removed, err := s.times.DeleteByOwner(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Str("actor_id", actor.ID).
		Str("user_id", id).
		Int64("entries_removed", removed).
		Msg("user deleted")
	return nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}
