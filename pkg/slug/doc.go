// Package slug derives URL-safe event slugs from free text.
//
// The transformation mirrors what organisers see in the event wizard: every run
// of non-word characters (anything outside [A-Za-z0-9_]) collapses into a single
// hyphen, the result is lowercased, and the year suffix is appended unless the
// text already mentions that year.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/orgwizard/pkg/slug"
//
//	s, ok := slug.Derive("My Great Event", 2024)
//	// s == "my-great-event-2024", ok == true
//
//	s, ok = slug.Derive("PyCon 2024", 2024)
//	// s == "pycon-2024" (year already present)
//
// # Suppressed writes
//
// Derive reports ok == false when there is nothing meaningful to write yet:
//
//	slug.Derive("", 2024)    // "", false
//	slug.Derive("   ", 2024) // "--2024", false
//
// Punctuation-only input collapses to the same stub and is suppressed too,
// while any word character counts as content:
//
//	slug.Derive("!!!", 2024)  // "--2024", false
//	slug.Derive("!a", 2024)   // "-a-2024", true
//
// # Year suffix
//
// YearSuffix returns the calendar year of a point in time. Callers compute it once
// per page and reuse it for every keystroke:
//
//	year := slug.YearSuffix(time.Now())
package slug
