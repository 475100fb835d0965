// Package middlewares provides the HTTP middleware used by the organiser wizard.
//
// # Request ID
//
// RequestID assigns an ID to each request. It reuses an upstream header when
// present and generates a UUID otherwise.
//
//	app := orgwizard.New(
//	    orgwizard.WithLogger("wizard", logCfg, middlewares.RequestIDExtractor()),
//	    orgwizard.WithMiddleware(middlewares.RequestID()),
//	)
//
// RequestIDExtractor adds request_id to every log entry written with the
// request context.
//
// # Recover
//
// Recover converts panics into *PanicError so the app's ErrorHandler renders
// them like any other failure:
//
//	orgwizard.WithErrorHandler(func(c orgwizard.Context, err error) error {
//	    if middlewares.IsPanicError(err) {
//	        return c.Render(http.StatusInternalServerError, views.ErrorPage(500, "Something went wrong"))
//	    }
//	    ...
//	})
//
// Register RequestID before Recover so panic logs carry the request ID.
package middlewares
