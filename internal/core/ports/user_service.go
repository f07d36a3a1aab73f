package ports

import (
	"context"

	"github.com/clockline/timetrack-api/internal/core/domain"
)

// ListUsersInput carries the parameters for the roster listing. Pagination is
// optional; Limit <= 0 returns everything.
type ListUsersInput struct {
	Actor domain.Actor
	Page  int
	Limit int
}

// ListUsersResult is returned by List.
type ListUsersResult struct {
	Items []*domain.User
	Total int64
	Page  int
	Limit int
}

// CreateUserInput carries an admin-side user creation.
type CreateUserInput struct {
	Actor                 domain.Actor
	FirstName             string
	LastName              string
	Email                 string
	Password              string
	Role                  domain.Role
	PreferredWorkingHours *float64
}

// UpdateUserInput carries a partial update of a managed user. Nil fields are
// left untouched; a non-nil Role is subject to the assignability rule.
type UpdateUserInput struct {
	Actor                 domain.Actor
	TargetID              string
	FirstName             *string
	LastName              *string
	Email                 *string
	Role                  *domain.Role
	PreferredWorkingHours *float64
}

// UserService defines roster management: every operation is gated by the
// access policy against the actor's rank.
type UserService interface {
	List(ctx context.Context, in ListUsersInput) (*ListUsersResult, error)
	Export(ctx context.Context, actor domain.Actor) (*ExportFile, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, in UpdateUserInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, actor domain.Actor, targetID, newPassword string) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
