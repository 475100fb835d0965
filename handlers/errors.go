package handlers

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/orgwizard"
	"github.com/dmitrymomot/orgwizard/middlewares"
	"github.com/dmitrymomot/orgwizard/pkg/htmx"
	"github.com/dmitrymomot/orgwizard/views"
)

// HandleError renders handler errors. JSON endpoints get a JSON body; HTML
// requests get the error page, and HTMX requests get it as a partial
// retargeted to the wizard's error area so the slug input is left alone.
func HandleError(c orgwizard.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Something went wrong. Please try again."
	if httpErr := orgwizard.AsHTTPError(err); httpErr != nil {
		code = httpErr.Code
		message = httpErr.Message
	}

	if code >= http.StatusInternalServerError {
		c.LogError("request failed", "error", err, "status", code, "panic", middlewares.IsPanicError(err))
	} else {
		c.LogDebug("request rejected", "error", err, "status", code)
	}

	reqID := middlewares.GetRequestID(c)

	if isJSON(c) {
		return c.JSON(code, map[string]string{"error": message, "request_id": reqID})
	}

	return c.Render(code, views.ErrorPage(code, message, reqID),
		htmx.WithRetarget("#"+views.ErrorsID),
		htmx.WithReswap(htmx.SwapInnerHTML),
	)
}

// HandleNotFound answers unmatched routes through HandleError.
func HandleNotFound(c orgwizard.Context) error {
	return HandleError(c, orgwizard.ErrNotFound("Page not found."))
}

// HandleMethodNotAllowed answers unsupported methods through HandleError.
func HandleMethodNotAllowed(c orgwizard.Context) error {
	return HandleError(c, orgwizard.NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed."))
}

func isJSON(c orgwizard.Context) bool {
	return strings.HasPrefix(c.Header("Content-Type"), "application/json") ||
		strings.Contains(c.Header("Accept"), "application/json")
}
