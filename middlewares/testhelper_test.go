package middlewares_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/dmitrymomot/orgwizard/internal"
)

// routeFunc mounts a single GET / handler.
type routeFunc internal.HandlerFunc

func (f routeFunc) Routes(r internal.Router) {
	r.GET("/", internal.HandlerFunc(f))
}

// serve runs one GET / request through an app with the given middleware.
func serve(req *http.Request, h internal.HandlerFunc, opts ...internal.Option) *httptest.ResponseRecorder {
	opts = append(opts, internal.WithHandlers(routeFunc(h)))
	app := internal.New(opts...)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}
