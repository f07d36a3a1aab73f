package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

// --- in-memory user repository ---

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(id string, role domain.Role, email string) *domain.User {
	u := &domain.User{ID: id, Role: role, Email: email, FirstName: id, LastName: "test"}
	r.users[id] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListBelowRank(_ context.Context, rank domain.Role, page, limit int) ([]*domain.User, int64, error) {
	var out []*domain.User
	for _, u := range r.users {
		if rank.Outranks(u.Role) {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	total := int64(len(out))

	if limit > 0 {
		if page < 1 {
			page = 1
		}
		start := (page - 1) * limit
		if start > len(out) {
			start = len(out)
		}
		end := start + limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// --- in-memory time entry repository ---

type stubTimeRepo struct {
	entries map[string]*domain.TimeEntry
	nextID  int
}

func newStubTimeRepo() *stubTimeRepo {
	return &stubTimeRepo{entries: make(map[string]*domain.TimeEntry)}
}

func cloneEntry(e *domain.TimeEntry) *domain.TimeEntry {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubTimeRepo) add(id, ownerID, date string, length float64) *domain.TimeEntry {
	e := &domain.TimeEntry{ID: id, UserID: ownerID, Date: date, Length: length}
	r.entries[id] = e
	return e
}

func (r *stubTimeRepo) Create(_ context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	r.nextID++
	created := cloneEntry(entry)
	created.ID = fmt.Sprintf("e%d", r.nextID)
	r.entries[created.ID] = cloneEntry(created)
	return created, nil
}

func (r *stubTimeRepo) FindByID(_ context.Context, id string) (*domain.TimeEntry, error) {
	if e, ok := r.entries[id]; ok {
		return cloneEntry(e), nil
	}
	return nil, domain.ErrTimeEntryNotFound
}

func (r *stubTimeRepo) FindByOwnerAndDate(_ context.Context, ownerID, date string) ([]*domain.TimeEntry, error) {
	var out []*domain.TimeEntry
	for _, e := range r.entries {
		if e.UserID == ownerID && e.Date == date {
			out = append(out, cloneEntry(e))
		}
	}
	return out, nil
}

func (r *stubTimeRepo) List(_ context.Context, filter ports.TimeEntryFilter) ([]*domain.TimeEntry, error) {
	allowed := make(map[string]struct{}, len(filter.OwnerIDs))
	for _, id := range filter.OwnerIDs {
		allowed[id] = struct{}{}
	}

	var out []*domain.TimeEntry
	for _, e := range r.entries {
		if len(allowed) > 0 {
			if _, ok := allowed[e.UserID]; !ok {
				continue
			}
		}
		if filter.From != "" && e.Date < filter.From {
			continue
		}
		if filter.To != "" && e.Date > filter.To {
			continue
		}
		out = append(out, cloneEntry(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *stubTimeRepo) Update(_ context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	if _, ok := r.entries[entry.ID]; !ok {
		return nil, domain.ErrTimeEntryNotFound
	}
	r.entries[entry.ID] = cloneEntry(entry)
	return cloneEntry(entry), nil
}

func (r *stubTimeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return domain.ErrTimeEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *stubTimeRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for id, e := range r.entries {
		if e.UserID == ownerID {
			delete(r.entries, id)
			n++
		}
	}
	return n, nil
}

// --- login limiter ---

type stubLimiter struct {
	throttled bool
	failures  int
	resets    int
}

func (l *stubLimiter) TooManyAttempts(_ context.Context, _ string) (bool, error) {
	return l.throttled, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

// --- report renderer ---

type stubRenderer struct {
	timeItems []ports.TimeEntryItem
	userItems []*domain.User
}

func (r *stubRenderer) RenderTimeReport(items []ports.TimeEntryItem) (*ports.ExportFile, error) {
	r.timeItems = items
	return &ports.ExportFile{Name: "time.pdf", Data: []byte("%PDF")}, nil
}

func (r *stubRenderer) RenderUserReport(users []*domain.User) (*ports.ExportFile, error) {
	r.userItems = users
	return &ports.ExportFile{Name: "users.pdf", Data: []byte("%PDF")}, nil
}
