package ports

import (
	"context"

	"github.com/clockline/timetrack-api/internal/core/domain"
)

// UserRepository defines persistence for managed users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListBelowRank returns users whose role is strictly outranked by rank,
	// ordered by email. A limit <= 0 disables pagination.
	ListBelowRank(ctx context.Context, rank domain.Role, page, limit int) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
