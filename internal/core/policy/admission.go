package policy

import (
	"context"

	"github.com/clockline/timetrack-api/internal/core/domain"
)

// EntryLister reads all entries for one owner on one calendar day.
type EntryLister interface {
	FindByOwnerAndDate(ctx context.Context, ownerID, date string) ([]*domain.TimeEntry, error)
}

// ResolveOwner determines the effective owner of a time entry write. A plain
// user always owns its own entries, whatever userId the payload carries.
// Higher-ranked actors may assign entries to the requested user, defaulting
// to themselves when the payload names nobody.
func ResolveOwner(actor domain.Actor, requestedUserID string) string {
	if actor.Role == domain.RoleUser {
		return actor.ID
	}
	if requestedUserID != "" {
		return requestedUserID
	}
	return actor.ID
}

// CheckDailyQuota admits a new or updated entry length against the 24-hour
// cap for (ownerID, date). excludeID skips the entry being updated so it does
// not count against itself. The read is always fresh; two concurrent writes
// for the same owner and day can still jointly exceed the cap, which is an
// accepted gap absent a serialization mechanism in the store.
func CheckDailyQuota(ctx context.Context, times EntryLister, ownerID, date string, newLength float64, excludeID string) error {
	existing, err := times.FindByOwnerAndDate(ctx, ownerID, date)
	if err != nil {
		return err
	}

	var total float64
	for _, e := range existing {
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		total += e.Length
	}

	// Boundary is inclusive: a day summing to exactly the cap is allowed.
	if total+newLength > domain.MaxHoursPerDay {
		return domain.ErrQuotaExceeded
	}
	return nil
}
