// Package htmx provides request detection and response headers for HTMX.
//
// The wizard relies on HTMX to forward input events to the server: every
// organiser name input posts on "input", and the server answers with a fresh
// slug field or 204 No Content when nothing should change.
//
// # Request Detection
//
//	if htmx.IsHTMX(r) {
//	    field := htmx.TriggerName(r) // name of the input that fired
//	}
//
// # Rendering
//
// RenderOption values configure response headers applied by Context.Render:
//
//	c.Render(http.StatusOK, views.SlugField(page, value),
//	    htmx.WithReswap(htmx.SwapOuterHTML),
//	    htmx.WithTrigger("slug-updated"),
//	)
//
// Out-of-band components are rendered after the main component for HTMX
// requests only.
//
// # Redirects
//
// Redirect answers HTMX requests with HX-Redirect and 200, and regular requests
// with a standard HTTP redirect.
package htmx
