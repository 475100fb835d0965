// Package orgwizard serves the organiser step of the event creation wizard.
//
// While an organiser types the event name, the wizard derives a URL-safe
// slug with the current year appended. Once the organiser edits the slug
// directly, automatic updates stop for that page.
//
// The package re-exports the HTTP core (App, Router, Context, Handler and
// Middleware) so handlers only import this package:
//
//	app := orgwizard.New(
//	    orgwizard.WithLogger("wizard", logCfg, middlewares.RequestIDExtractor()),
//	    orgwizard.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    orgwizard.WithHandlers(handlers.NewWizard(pages, locales)),
//	    orgwizard.WithHealthChecks(
//	        orgwizard.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	    ),
//	)
//
//	if err := app.Run(cfg.Address, orgwizard.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// The slug rules live in pkg/slug and the per-page state machine in
// pkg/slugsync; both are free of HTTP concerns.
package orgwizard
