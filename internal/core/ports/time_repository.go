package ports

import (
	"context"

	"github.com/clockline/timetrack-api/internal/core/domain"
)

// TimeEntryFilter narrows a listing to a set of owners and an inclusive
// calendar-date range. Empty From/To leave that side of the range open.
type TimeEntryFilter struct {
	OwnerIDs []string
	From     string
	To       string
}

// TimeEntryRepository defines persistence for time entries.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	FindByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	FindByOwnerAndDate(ctx context.Context, ownerID, date string) ([]*domain.TimeEntry, error)
	// List returns entries matching the filter, ordered by date.
	List(ctx context.Context, filter TimeEntryFilter) ([]*domain.TimeEntry, error)
	Update(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id string) error
	// DeleteByOwner removes all entries owned by ownerID and reports how many
	// were removed. Used for the owner-cascade on user deletion.
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
