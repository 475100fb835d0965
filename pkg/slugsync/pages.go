package slugsync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/orgwizard/pkg/cache"
	"github.com/dmitrymomot/orgwizard/pkg/logger"
	"github.com/dmitrymomot/orgwizard/pkg/slug"
)

// DefaultPageTTL is how long an idle wizard page keeps its state.
const DefaultPageTTL = 2 * time.Hour

// Page is the synchronization state of one rendered wizard page.
type Page struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Slug      string    `json:"slug,omitempty"`
	Year      int       `json:"year"`
	State     State     `json:"state"`
}

// Result describes the outcome of a dispatched input event.
type Result struct {
	Page    Page
	Slug    string
	Written bool
}

// Pages tracks wizard pages in a cache.
type Pages struct {
	cache  cache.Cache[Page]
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
	ttl    time.Duration
	locks  pageLocks
}

// PagesOption configures Pages.
type PagesOption func(*Pages)

// WithTTL sets the expiration of idle pages. Non-positive values are ignored.
// Default: 2 hours.
func WithTTL(d time.Duration) PagesOption {
	return func(p *Pages) {
		if d > 0 {
			p.ttl = d
		}
	}
}

// WithClock sets the time source used to fix the year suffix.
func WithClock(now func() time.Time) PagesOption {
	return func(p *Pages) {
		if now != nil {
			p.now = now
		}
	}
}

// WithIDGenerator sets the page ID generator.
// Default: uuid.NewString.
func WithIDGenerator(gen func() string) PagesOption {
	return func(p *Pages) {
		if gen != nil {
			p.newID = gen
		}
	}
}

// WithPagesLogger sets the logger for page lifecycle events.
func WithPagesLogger(l *slog.Logger) PagesOption {
	return func(p *Pages) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPages creates a page tracker backed by c.
//
// Example:
//
//	pages := slugsync.NewPages(cache.NewMemory[slugsync.Page](),
//	    slugsync.WithTTL(30*time.Minute),
//	)
func NewPages(c cache.Cache[Page], opts ...PagesOption) *Pages {
	p := &Pages{
		cache:  c,
		logger: logger.NewNope(),
		now:    time.Now,
		newID:  uuid.NewString,
		ttl:    DefaultPageTTL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Open starts a new page in Active state with the year suffix fixed to the
// current year.
func (p *Pages) Open(ctx context.Context) (Page, error) {
	now := p.now()
	page := Page{
		ID:        p.newID(),
		Year:      slug.YearSuffix(now),
		State:     Active,
		CreatedAt: now,
	}
	if err := p.Save(ctx, page); err != nil {
		return Page{}, err
	}
	p.logger.DebugContext(ctx, "wizard page opened",
		slog.String("page_id", page.ID),
		slog.Int("year", page.Year),
	)
	return page, nil
}

// Load returns the page with the given ID.
func (p *Pages) Load(ctx context.Context, id string) (Page, error) {
	if id == "" {
		return Page{}, ErrInvalidPage
	}
	page, err := p.cache.Get(ctx, id)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return Page{}, ErrPageNotFound
		}
		return Page{}, err
	}
	return page, nil
}

// Save stores the page, refreshing its expiration.
func (p *Pages) Save(ctx context.Context, page Page) error {
	if page.ID == "" {
		return ErrInvalidPage
	}
	return p.cache.Set(ctx, page.ID, page, p.ttl)
}

// Source dispatches a source field input event for the page.
func (p *Pages) Source(ctx context.Context, id, raw string) (Result, error) {
	return p.dispatch(ctx, id, func(s *Synchronizer) bool {
		return s.HandleSourceInput(raw)
	})
}

// Target dispatches an input event on the slug field for the page.
func (p *Pages) Target(ctx context.Context, id string) (Result, error) {
	var tookOver bool
	res, err := p.dispatch(ctx, id, func(s *Synchronizer) bool {
		tookOver = s.HandleTargetInput()
		return false
	})
	if err == nil && tookOver {
		p.logger.InfoContext(ctx, "slug taken over by organiser", slog.String("page_id", id))
	}
	return res, err
}

// dispatch rebuilds a Synchronizer from the stored page, applies fn and
// persists the resulting state as one atomic step, so a late source event
// can never overwrite a page that has already gone Inactive.
func (p *Pages) dispatch(ctx context.Context, id string, fn func(*Synchronizer) bool) (Result, error) {
	if id == "" {
		return Result{}, ErrInvalidPage
	}

	var written bool
	page, err := p.update(ctx, id, func(page Page) (Page, error) {
		field := NewTextField(page.Slug)
		s := New(field, page.Year, WithState(page.State), WithLogger(p.logger))

		written = fn(s)
		page.State = s.State()
		if written {
			page.Slug = field.Value()
		}
		return page, nil
	})
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return Result{}, ErrPageNotFound
		}
		return Result{}, err
	}

	return Result{Page: page, Slug: page.Slug, Written: written}, nil
}

// update runs fn as a read-modify-write on the stored page. Backends that
// implement cache.Updater do it atomically; others are serialised per page
// within this process.
func (p *Pages) update(ctx context.Context, id string, fn func(Page) (Page, error)) (Page, error) {
	if u, ok := p.cache.(cache.Updater[Page]); ok {
		return u.Update(ctx, id, p.ttl, fn)
	}

	unlock := p.locks.lock(id)
	defer unlock()

	page, err := p.cache.Get(ctx, id)
	if err != nil {
		return Page{}, err
	}
	page, err = fn(page)
	if err != nil {
		return Page{}, err
	}
	if err := p.cache.Set(ctx, id, page, p.ttl); err != nil {
		return Page{}, err
	}
	return page, nil
}

// pageLocks hands out one mutex per page ID and forgets it once unused.
type pageLocks struct {
	m  map[string]*pageLock
	mu sync.Mutex
}

type pageLock struct {
	mu   sync.Mutex
	refs int
}

func (l *pageLocks) lock(id string) func() {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*pageLock)
	}
	pl, ok := l.m[id]
	if !ok {
		pl = &pageLock{}
		l.m[id] = pl
	}
	pl.refs++
	l.mu.Unlock()

	pl.mu.Lock()
	return func() {
		pl.mu.Unlock()

		l.mu.Lock()
		pl.refs--
		if pl.refs == 0 {
			delete(l.m, id)
		}
		l.mu.Unlock()
	}
}
