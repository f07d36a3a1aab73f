package domain

import "time"

// User is a managed account. PasswordHash is never serialized; credential
// checks go through the account service only.
type User struct {
	ID                    string    `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Email                 string    `json:"email"`
	PasswordHash          string    `json:"-"`
	Role                  Role      `json:"role"`
	PreferredWorkingHours *float64  `json:"preferred_working_hours"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// Actor is the authenticated identity executing a request, resolved once by
// the auth middleware and immutable for the rest of the request.
type Actor struct {
	ID   string
	Role Role
}
