package domain

import (
	"strings"
	"time"
)

// Role is the access tier of an authenticated identity.
type Role string

const (
	RoleMarketer Role = "marketer"
	RoleAnalyst  Role = "analyst"
	RoleAdmin    Role = "admin"
)

// Roles lists the closed set of supported roles.
var Roles = []Role{RoleMarketer, RoleAnalyst, RoleAdmin}

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMarketer, RoleAnalyst, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a role tag into a Role. Tags are matched case-insensitively.
func ParseRole(tag string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(tag)))
	if !r.Valid() {
		return "", false
	}
	return r, true
}

// Identity is the profile of the user behind a session. ID and Role never
// change while the session lives.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Valid reports whether the identity carries the fields a session needs.
func (i Identity) Valid() bool {
	return i.ID != "" && i.Role.Valid()
}

// Initial returns the first letter of the display name, used by the header avatar.
func (i Identity) Initial() string {
	for _, r := range i.Name {
		return strings.ToUpper(string(r))
	}
	return ""
}

// Credentials is what a credential gateway hands back on a successful login
// or signup: the identity plus an opaque token.
type Credentials struct {
	Identity Identity
	Token    string
}

// Session is a point-in-time view of who is logged in.
type Session struct {
	Identity *Identity `json:"user"`
	Loading  bool      `json:"is_loading"`
}

// IsAuthenticated reports whether an identity is present.
func (s Session) IsAuthenticated() bool {
	return s.Identity != nil
}

// Account is a registered user as stored by the accounts gateway.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity returns the session-facing view of the account.
func (a Account) Identity() Identity {
	return Identity{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}
