// Package internal holds the HTTP core behind the orgwizard package: App,
// Router, Context, Handler and Middleware on top of chi.
//
// Import "github.com/dmitrymomot/orgwizard" instead; it re-exports this API.
//
// # Application Structure
//
//	app := internal.New(
//	    internal.WithHandlers(handlers.NewWizard(pages, locales)),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("redis", check)),
//	)
//	err := app.Run(":8080", internal.Logger(log))
//
// # Handler Pattern
//
// Handlers implement Handler and declare their routes:
//
//	func (h *Wizard) Routes(r internal.Router) {
//	    r.GET("/orga/event/new", h.show)
//	}
//
// Dependencies arrive through constructors, not through the context.
//
// # Context as context.Context
//
// Context embeds context.Context and delegates to the request context, so it
// can be passed to any blocking call directly.
//
// # Errors
//
// Handlers return errors. *HTTPError values carry a status code and a
// user-facing message; anything else becomes a 500. The App's ErrorHandler
// renders them unless the response was already written.
//
// # HTMX
//
// The ResponseWriter rewrites error statuses to 200 for HTMX requests so that
// error partials get swapped in. Other 2xx codes, such as 204, pass through.
package internal
