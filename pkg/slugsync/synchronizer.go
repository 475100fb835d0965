package slugsync

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/orgwizard/pkg/logger"
	"github.com/dmitrymomot/orgwizard/pkg/slug"
)

// Synchronizer derives the target field from source input until the target
// is edited directly.
type Synchronizer struct {
	target Field
	logger *slog.Logger
	year   int
	state  State
	mu     sync.Mutex
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithState restores a previously observed state.
// Unknown states are ignored.
func WithState(st State) Option {
	return func(s *Synchronizer) {
		if st == Active || st == Inactive {
			s.state = st
		}
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(s *Synchronizer) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Synchronizer writing into target with a fixed year suffix.
// A nil target yields a synchronizer that never writes.
func New(target Field, year int, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		target: target,
		year:   year,
		state:  Active,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleSourceInput handles an input event on a source field carrying raw.
// It reports whether the target was written.
func (s *Synchronizer) HandleSourceInput(raw string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Active || s.target == nil {
		return false
	}

	v, ok := slug.Derive(raw, s.year)
	if !ok {
		return false
	}

	s.target.SetValue(v)
	return true
}

// HandleTargetInput handles an input event on the target field.
// It reports whether this call deactivated synchronization.
func (s *Synchronizer) HandleTargetInput() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Active {
		return false
	}

	s.state = Inactive
	s.logger.Debug("slug synchronization disabled", slog.Int("year", s.year))
	return true
}

// State returns the current state.
func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Year returns the fixed year suffix.
func (s *Synchronizer) Year() int {
	return s.year
}
