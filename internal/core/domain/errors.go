package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("a user with that email address already exists")
	ErrWrongPassword      = errors.New("wrong current password")
	ErrForbidden          = errors.New("access forbidden")
	ErrRoleNotAssignable  = errors.New("role not assignable")
	ErrTimeEntryNotFound  = errors.New("time entry not found")
	ErrQuotaExceeded      = errors.New("daily quota exceeded")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)
