package ports

import (
	"context"

	"github.com/clockline/timetrack-api/internal/core/domain"
)

// RegisterInput carries a self-service registration. The created account is
// always a plain user; privileged roles are granted through the user service.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UpdateProfileInput carries a partial self-profile update. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	FirstName             *string
	LastName              *string
	Email                 *string
	PreferredWorkingHours *float64
}

// AccountService defines the self-service operations of an authenticated
// actor: registration, login, and own-profile management.
type AccountService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, actorID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, actorID string, in UpdateProfileInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, actorID, currentPassword, newPassword string) (*domain.User, error)
}
