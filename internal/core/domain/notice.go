package domain

import "time"

// Severity controls how a notice is rendered by the toast surface.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notice is a fire-and-forget message for the user, addressed to one storage scope.
type Notice struct {
	Scope     string    `json:"-"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}
