// Package slugsync keeps an event slug derived from organiser input until the
// organiser takes over the slug field.
//
// A Synchronizer owns exactly one target field and a two-state machine:
//
//	Active --(direct edit of the target)--> Inactive
//
// While Active, every source input is run through slug.Derive and, unless the
// derivation is suppressed, written into the target. Inactive is terminal: the
// synchronizer never writes again.
//
// Basic usage:
//
//	field := &slugsync.TextField{}
//	s := slugsync.New(field, slug.YearSuffix(time.Now()))
//
//	s.HandleSourceInput("My Great Event") // field.Value() == "my-great-event-2026"
//	s.HandleTargetInput()                 // organiser edits the slug
//	s.HandleSourceInput("Renamed")        // ignored
//
// # Pages
//
// Web clients cannot hold a Synchronizer between requests, so Pages stores the
// state of every rendered wizard page in a cache.Cache. Opening a page fixes the
// year suffix and starts in Active. Reloading the browser opens a new page,
// which resets synchronization just like reloading a script would.
//
//	pages := slugsync.NewPages(cache.NewMemory[slugsync.Page]())
//	page, _ := pages.Open(ctx)
//	res, _ := pages.Source(ctx, page.ID, "My Great Event")
//	// res.Written == true, res.Slug == "my-great-event-2026"
package slugsync
