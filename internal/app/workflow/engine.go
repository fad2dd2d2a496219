// Package workflow implements the state transitions of the verification and
// review lifecycle as pure commands: each takes a snapshot plus input and
// returns a structurally new snapshot, never mutating its argument.
package workflow

import (
	"time"

	"github.com/trektrust/trektrust-backend/pkg/util"
)

// Engine carries the id source and clock the commands use. Both are
// injectable so tests run deterministic.
type Engine struct {
	newID func(prefix string) string
	now   func() time.Time
}

type Option func(*Engine)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDSource replaces the id generator.
func WithIDSource(newID func(prefix string) string) Option {
	return func(e *Engine) { e.newID = newID }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		newID: util.NewID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
