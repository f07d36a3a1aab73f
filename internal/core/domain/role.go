package domain

import (
	"encoding/json"
	"fmt"
)

// Role is an ordered privilege level. Lower value means higher privilege.
// The total order below is the single source of truth for every access
// decision; no code may compare roles by any other means.
type Role int

const (
	RoleSuperadmin Role = iota
	RoleAdmin
	RoleUserManager
	RoleUser
)

var roleNames = map[Role]string{
	RoleSuperadmin:  "superadmin",
	RoleAdmin:       "admin",
	RoleUserManager: "user_manager",
	RoleUser:        "user",
}

// ParseRole converts a wire-level role name into a Role.
func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Valid reports whether r is one of the defined levels.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// Outranks reports whether r is strictly more privileged than other.
func (r Role) Outranks(other Role) bool {
	return r < other
}

// AssignableBy reports whether actingRole may assign r to a managed user.
// Superadmin is never assignable, and the acting role must strictly outrank
// the assigned role.
func (r Role) AssignableBy(actingRole Role) bool {
	if r == RoleSuperadmin || !r.Valid() {
		return false
	}
	return actingRole.Outranks(r)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
