package internal

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/orgwizard/pkg/htmx"
)

// maxJSONBody caps request bodies read by BindJSON.
const maxJSONBody = 1 << 16

// Component is anything that renders HTML. templ.Component satisfies it.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the wrapped http.ResponseWriter.
	Response() http.ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the URL parameter value by name, or "".
	Param(name string) string

	// Query returns the query parameter value by name, or "".
	Query(name string) string

	// Form returns the form value by name, or "".
	// The body is parsed on first access.
	Form(name string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes v as JSON with the given status code.
	JSON(code int, v any) error

	// BindJSON decodes a JSON request body into v.
	// Malformed bodies yield a 400 *HTTPError.
	BindJSON(v any) error

	// String writes a plain text response.
	String(code int, s string) error

	// NoContent writes only the status code.
	NoContent(code int) error

	// Redirect redirects the client. HTMX requests get HX-Redirect instead.
	Redirect(code int, url string) error

	// Error builds an *HTTPError carrying the request ID when one is set.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// IsHTMX reports whether the request was made by htmx.
	IsHTMX() bool

	// Render renders a component with the given status code.
	// Render options set HTMX response headers and are ignored for
	// regular requests.
	Render(code int, component Component, opts ...htmx.RenderOption) error

	// RenderPartial renders partial for HTMX requests and fullPage otherwise.
	RenderPartial(code int, fullPage, partial Component, opts ...htmx.RenderOption) error

	// Written reports whether a response has already been written.
	Written() bool

	Logger() *slog.Logger
	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	Set(key, value any)

	// Get reads a value from the request context.
	Get(key any) any

	// ResponseWriter exposes the status-tracking writer.
	ResponseWriter() *ResponseWriter
}

type requestIDKey struct{}

// RequestIDKey is the context key the request ID middleware stores the ID
// under. Error reads it to tag HTTP errors.
var RequestIDKey = requestIDKey{}

type requestContext struct {
	request        *http.Request
	response       http.ResponseWriter
	responseWriter *ResponseWriter
	logger         *slog.Logger
}

// newContext wraps w unless it is already wrapped by an outer middleware.
func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w, htmx.IsHTMX(r))
	}
	return &requestContext{
		request:        r,
		response:       rw,
		responseWriter: rw,
		logger:         app.logger,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.response
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) Form(name string) string {
	return c.request.FormValue(name)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext) BindJSON(v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(c.response, c.request.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return c.Error(http.StatusBadRequest, "empty request body", WithError(err))
		}
		return c.Error(http.StatusBadRequest, "malformed JSON body", WithError(err))
	}
	return nil
}

func (c *requestContext) String(code int, s string) error {
	c.response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := io.WriteString(c.response, s)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	htmx.Redirect(c.response, c.request, url, code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	if id, ok := c.Get(RequestIDKey).(string); ok && id != "" {
		opts = append([]HTTPErrorOption{WithRequestID(id)}, opts...)
	}
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) IsHTMX() bool {
	return htmx.IsHTMX(c.request)
}

func (c *requestContext) Render(code int, component Component, opts ...htmx.RenderOption) error {
	c.response.Header().Set("Content-Type", "text/html; charset=utf-8")

	var cfg *htmx.Config
	if len(opts) > 0 && c.IsHTMX() {
		cfg = htmx.NewConfig(opts...)
		cfg.ApplyHeaders(c.response)
	}

	c.response.WriteHeader(code)

	if err := component.Render(c.request.Context(), c.response); err != nil {
		return err
	}

	if cfg != nil {
		for _, oob := range cfg.OOBComponents {
			if err := oob.Render(c.request.Context(), c.response); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *requestContext) RenderPartial(code int, fullPage, partial Component, opts ...htmx.RenderOption) error {
	if c.IsHTMX() {
		return c.Render(code, partial, opts...)
	}
	return c.Render(code, fullPage)
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.responseWriter
}
