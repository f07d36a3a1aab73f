// Package policy holds the pure access and admission decisions of the
// system. Every function takes its data-access collaborators as narrow
// interfaces and returns nil for Allow or a domain sentinel error for Deny,
// leaving HTTP translation to the caller. Route-level role allow-lists are a
// separate, coarser gate applied by the RBAC middleware before these run.
package policy

import (
	"context"

	"github.com/clockline/timetrack-api/internal/core/domain"
)

// UserFinder resolves a user by id. Satisfied by ports.UserRepository.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// TimeEntryFinder resolves a time entry by id.
type TimeEntryFinder interface {
	FindByID(ctx context.Context, id string) (*domain.TimeEntry, error)
}

// AuthorizeUserAccess gates an action on a managed user record.
//
// When targetID is set, the actor must strictly outrank the target's role
// unless the actor is the target. A target that cannot be found denies the
// action: the lookup failure propagates as domain.ErrUserNotFound rather
// than falling through to Allow.
//
// When newRole is set (create or role reassignment), the role must be
// assignable by the actor's role regardless of who the target is.
func AuthorizeUserAccess(ctx context.Context, users UserFinder, actor domain.Actor, targetID string, newRole *domain.Role) error {
	if targetID != "" && targetID != actor.ID {
		target, err := users.FindByID(ctx, targetID)
		if err != nil {
			return err
		}
		if !actor.Role.Outranks(target.Role) {
			return domain.ErrForbidden
		}
	}

	if newRole != nil && !newRole.AssignableBy(actor.Role) {
		return domain.ErrRoleNotAssignable
	}

	return nil
}

// AuthorizeTimeAccess gates an action on a time entry.
//
// When entryID is set, the actor must own the entry or strictly outrank its
// owner. When requestedUserID is set (ownership assignment in the payload),
// the same rank-or-self rule applies to the requested owner.
func AuthorizeTimeAccess(ctx context.Context, users UserFinder, times TimeEntryFinder, actor domain.Actor, entryID, requestedUserID string) error {
	if entryID != "" {
		entry, err := times.FindByID(ctx, entryID)
		if err != nil {
			return err
		}
		if entry.UserID != actor.ID {
			owner, err := users.FindByID(ctx, entry.UserID)
			if err != nil {
				return err
			}
			if !actor.Role.Outranks(owner.Role) {
				return domain.ErrForbidden
			}
		}
	}

	if requestedUserID != "" && requestedUserID != actor.ID {
		owner, err := users.FindByID(ctx, requestedUserID)
		if err != nil {
			return err
		}
		if !actor.Role.Outranks(owner.Role) {
			return domain.ErrForbidden
		}
	}

	return nil
}
