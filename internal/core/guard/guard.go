// Package guard decides, for one navigation attempt, whether a protected page
// may render. Decisions depend only on the current session and the page's
// role requirement.
package guard

import "github.com/prismatech/marketing-dashboard/internal/core/domain"

// Decision is the outcome of evaluating a navigation.
type Decision int

const (
	// Pending: the session is still loading; show a loading indicator.
	Pending Decision = iota
	// Unauthenticated: nobody is logged in; redirect to login.
	Unauthenticated
	// Forbidden: the identity's role does not satisfy the requirement.
	Forbidden
	// Allowed: render the page.
	Allowed
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case Allowed:
		return "allowed"
	default:
		return "unknown"
	}
}

// Requirement is the role declaration attached to a protected page. The zero
// value admits any authenticated role.
type Requirement struct {
	restricted bool
	tags       []string
}

// AnyRole admits every authenticated identity.
func AnyRole() Requirement { return Requirement{} }

// Roles admits identities whose role is one of tags. An empty list or an
// unknown tag makes the requirement malformed, and malformed requirements
// deny everyone.
func Roles(tags ...string) Requirement {
	return Requirement{restricted: true, tags: append([]string(nil), tags...)}
}

// Restricted reports whether the requirement declares a role set.
func (r Requirement) Restricted() bool { return r.restricted }

// Tags returns the declared role tags.
func (r Requirement) Tags() []string { return append([]string(nil), r.tags...) }

// permits reports whether role satisfies r. Malformed input never permits.
func (r Requirement) permits(role domain.Role) bool {
	if !role.Valid() {
		return false
	}
	if !r.restricted {
		return true
	}
	if len(r.tags) == 0 {
		return false
	}

	match := false
	for _, tag := range r.tags {
		declared, ok := domain.ParseRole(tag)
		if !ok {
			return false
		}
		if declared == role {
			match = true
		}
	}
	return match
}

// Evaluate maps a session and a requirement to a Decision.
func Evaluate(s domain.Session, req Requirement) Decision {
	switch {
	case s.Loading:
		return Pending
	case s.Identity == nil:
		return Unauthenticated
	case !req.permits(s.Identity.Role):
		return Forbidden
	default:
		return Allowed
	}
}
