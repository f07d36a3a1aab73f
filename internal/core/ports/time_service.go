package ports

import (
	"context"

	"github.com/clockline/timetrack-api/internal/core/domain"
)

// TimeRangeInput carries the actor and an optional inclusive date range for
// listing and export operations.
type TimeRangeInput struct {
	Actor domain.Actor
	From  string
	To    string
}

// TimeEntryItem pairs an entry with its owner for list and report views.
type TimeEntryItem struct {
	Entry *domain.TimeEntry
	Owner *domain.User
}

// CreateTimeInput carries a time entry creation. UserID is a requested owner;
// the admission policy decides the effective one.
type CreateTimeInput struct {
	Actor  domain.Actor
	Date   string
	Length float64
	Note   string
	UserID string
}

// UpdateTimeInput carries a partial time entry update. Nil fields are left
// untouched. UserID, when set, requests an ownership reassignment.
type UpdateTimeInput struct {
	Actor   domain.Actor
	EntryID string
	Date    *string
	Length  *float64
	Note    *string
	UserID  string
}

// TimeService defines time entry operations. List and Export cover the
// actor's own entries plus those of every user the actor outranks; the Mine
// variants are restricted to the actor.
type TimeService interface {
	List(ctx context.Context, in TimeRangeInput) ([]TimeEntryItem, error)
	Export(ctx context.Context, in TimeRangeInput) (*ExportFile, error)
	ListMine(ctx context.Context, in TimeRangeInput) ([]TimeEntryItem, error)
	ExportMine(ctx context.Context, in TimeRangeInput) (*ExportFile, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.TimeEntry, error)
	Create(ctx context.Context, in CreateTimeInput) (*domain.TimeEntry, error)
	Update(ctx context.Context, in UpdateTimeInput) (*domain.TimeEntry, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
