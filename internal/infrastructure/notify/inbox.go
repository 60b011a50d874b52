// Package notify holds the sinks behind the toast surface.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
)

const (
	maxPending = 20
	inboxTTL   = 10 * time.Minute
)

// Inbox buffers notices per scope until the client drains them. Only the
// newest maxPending notices are kept; idle inboxes expire after inboxTTL.
type Inbox struct {
	mu    sync.Mutex
	items *cache.Cache
}

func NewInbox() *Inbox {
	return &Inbox{items: cache.New(inboxTTL, inboxTTL)}
}

// Deliver appends notice to its scope's inbox.
func (b *Inbox) Deliver(_ context.Context, notice domain.Notice) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var pending []domain.Notice
	if v, ok := b.items.Get(notice.Scope); ok {
		pending = v.([]domain.Notice)
	}
	pending = append(pending, notice)
	if len(pending) > maxPending {
		pending = pending[len(pending)-maxPending:]
	}
	b.items.SetDefault(notice.Scope, pending)
	return nil
}

// Drain returns and forgets every pending notice for scope, oldest first.
func (b *Inbox) Drain(scope string) []domain.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, ok := b.items.Get(scope)
	if !ok {
		return []domain.Notice{}
	}
	b.items.Delete(scope)
	return v.([]domain.Notice)
}

// LogSink writes every notice to the structured log.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(_ context.Context, n domain.Notice) error {
	ev := s.log.Info()
	if n.Severity == domain.SeverityDestructive {
		ev = s.log.Warn()
	}
	ev.Str("scope", n.Scope).Str("title", n.Title).Str("severity", string(n.Severity)).Msg(n.Message)
	return nil
}
