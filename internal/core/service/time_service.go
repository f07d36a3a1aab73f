package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clockline/timetrack-api/internal/api/metrics"
	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/policy"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

// TimeService implements time entry management. Authorization runs before
// admission: the access policy first, then owner resolution and the daily
// quota, then the write.
type TimeService struct {
	times    ports.TimeEntryRepository
	users    ports.UserRepository
	renderer ports.TimeReportRenderer
	logger   zerolog.Logger
}

func NewTimeService(times ports.TimeEntryRepository, users ports.UserRepository, renderer ports.TimeReportRenderer, logger zerolog.Logger) *TimeService {
	return &TimeService{times: times, users: users, renderer: renderer, logger: logger}
}

// List returns the actor's entries plus those of every outranked user,
// optionally narrowed by date range.
func (s *TimeService) List(ctx context.Context, in ports.TimeRangeInput) ([]ports.TimeEntryItem, error) {
	owners, err := s.visibleOwners(ctx, in.Actor)
	if err != nil {
		return nil, err
	}
	return s.listFor(ctx, owners, in.From, in.To)
}

// Export renders the visible entries to PDF.
func (s *TimeService) Export(ctx context.Context, in ports.TimeRangeInput) (*ports.ExportFile, error) {
	items, err := s.List(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.render(items, in.Actor)
}

// ListMine returns only the actor's own entries.
func (s *TimeService) ListMine(ctx context.Context, in ports.TimeRangeInput) ([]ports.TimeEntryItem, error) {
	return s.listFor(ctx, map[string]*domain.User{in.Actor.ID: nil}, in.From, in.To)
}

// ExportMine renders the actor's own entries to PDF.
func (s *TimeService) ExportMine(ctx context.Context, in ports.TimeRangeInput) (*ports.ExportFile, error) {
	items, err := s.ListMine(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.render(items, in.Actor)
}

// Get returns a single entry the actor may access.
func (s *TimeService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.TimeEntry, error) {
	if err := policy.AuthorizeTimeAccess(ctx, s.users, s.times, actor, id, ""); err != nil {
		return nil, err
	}
	return s.times.FindByID(ctx, id)
}

// Create admits and persists a new entry.
func (s *TimeService) Create(ctx context.Context, in ports.CreateTimeInput) (*domain.TimeEntry, error) {
	// Owner resolution runs first: a plain user's payload owner is ignored,
	// not rejected, so the rank check applies to the effective owner.
	ownerID := policy.ResolveOwner(in.Actor, in.UserID)
	if err := policy.AuthorizeTimeAccess(ctx, s.users, s.times, in.Actor, "", ownerID); err != nil {
		return nil, err
	}

	if err := s.checkQuota(ctx, ownerID, in.Date, in.Length, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.TimeEntry{
		Date:      in.Date,
		Length:    in.Length,
		Note:      in.Note,
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.times.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	metrics.TimeEntriesWrittenTotal.WithLabelValues("create").Inc()
	s.logger.Info().
		Str("actor_id", in.Actor.ID).
		Str("owner_id", ownerID).
		Str("date", in.Date).
		Float64("length", in.Length).
		Msg("time entry created")
	return created, nil
}

// Update admits and persists a partial update. The entry being edited is
// excluded from its own quota sum.
func (s *TimeService) Update(ctx context.Context, in ports.UpdateTimeInput) (*domain.TimeEntry, error) {
	ownerID := policy.ResolveOwner(in.Actor, in.UserID)
	if err := policy.AuthorizeTimeAccess(ctx, s.users, s.times, in.Actor, in.EntryID, ownerID); err != nil {
		return nil, err
	}

	entry, err := s.times.FindByID(ctx, in.EntryID)
	if err != nil {
		return nil, err
	}

	if in.Date != nil {
		entry.Date = *in.Date
	}
	if in.Length != nil {
		entry.Length = *in.Length
	}
	if in.Note != nil {
		entry.Note = *in.Note
	}
	entry.UserID = ownerID

	if err := s.checkQuota(ctx, entry.UserID, entry.Date, entry.Length, entry.ID); err != nil {
		return nil, err
	}
	entry.UpdatedAt = time.Now().UTC()

	updated, err := s.times.Update(ctx, entry)
	if err != nil {
		return nil, err
	}

	metrics.TimeEntriesWrittenTotal.WithLabelValues("update").Inc()
	return updated, nil
}

// Delete removes an entry the actor may access.
func (s *TimeService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := policy.AuthorizeTimeAccess(ctx, s.users, s.times, actor, id, ""); err != nil {
		return err
	}
	if err := s.times.Delete(ctx, id); err != nil {
		return err
	}

	metrics.TimeEntriesWrittenTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("actor_id", actor.ID).Str("entry_id", id).Msg("time entry deleted")
	return nil
}

func (s *TimeService) checkQuota(ctx context.Context, ownerID, date string, length float64, excludeID string) error {
	err := policy.CheckDailyQuota(ctx, s.times, ownerID, date, length, excludeID)
	if err == domain.ErrQuotaExceeded {
		metrics.QuotaRejectionsTotal.Inc()
		s.logger.Info().Str("owner_id", ownerID).Str("date", date).Msg("daily quota rejection")
	}
	return err
}

// visibleOwners maps owner id to user for the actor itself and everyone the
// actor outranks.
func (s *TimeService) visibleOwners(ctx context.Context, actor domain.Actor) (map[string]*domain.User, error) {
	owners := map[string]*domain.User{actor.ID: nil}
	below, _, err := s.users.ListBelowRank(ctx, actor.Role, 0, 0)
	if err != nil {
		return nil, err
	}
	for _, u := range below {
		owners[u.ID] = u
	}
	return owners, nil
}

func (s *TimeService) listFor(ctx context.Context, owners map[string]*domain.User, from, to string) ([]ports.TimeEntryItem, error) {
	ids := make([]string, 0, len(owners))
	for id := range owners {
		ids = append(ids, id)
	}

	entries, err := s.times.List(ctx, ports.TimeEntryFilter{OwnerIDs: ids, From: from, To: to})
	if err != nil {
		return nil, err
	}

	items := make([]ports.TimeEntryItem, 0, len(entries))
	for _, e := range entries {
		owner, ok := owners[e.UserID]
		if !ok || owner == nil {
			if owner, err = s.users.FindByID(ctx, e.UserID); err != nil {
				return nil, err
			}
			owners[e.UserID] = owner
		}
		items = append(items, ports.TimeEntryItem{Entry: e, Owner: owner})
	}
	return items, nil
}

func (s *TimeService) render(items []ports.TimeEntryItem, actor domain.Actor) (*ports.ExportFile, error) {
	file, err := s.renderer.RenderTimeReport(items)
	if err != nil {
		return nil, err
	}

	metrics.ExportsGeneratedTotal.WithLabelValues("time").Inc()
	s.logger.Info().Str("actor_id", actor.ID).Int("entries", len(items)).Msg("time entries exported")
	return file, nil
}
