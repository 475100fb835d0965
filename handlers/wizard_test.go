package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orgwizard"
	"github.com/dmitrymomot/orgwizard/handlers"
	"github.com/dmitrymomot/orgwizard/middlewares"
	"github.com/dmitrymomot/orgwizard/pkg/cache"
	"github.com/dmitrymomot/orgwizard/pkg/htmx"
	"github.com/dmitrymomot/orgwizard/pkg/slugsync"
	"github.com/dmitrymomot/orgwizard/views"
)

var pageIDPattern = regexp.MustCompile(`data-page="([0-9a-f-]{36})"`)

type wizardEnv struct {
	app   *orgwizard.App
	pages *slugsync.Pages
}

func newWizardEnv(t *testing.T) *wizardEnv {
	t.Helper()

	store := cache.NewMemory[slugsync.Page]()
	t.Cleanup(func() { _ = store.Close() })

	pages := slugsync.NewPages(store, slugsync.WithClock(func() time.Time {
		return time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	}))
	locales := []views.Locale{{Code: "en", Label: "English"}, {Code: "de", Label: "Deutsch"}}

	app := orgwizard.New(
		orgwizard.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
		orgwizard.WithHandlers(handlers.NewWizard(pages, locales), handlers.NewSlugAPI(nil)),
		orgwizard.WithErrorHandler(handlers.HandleError),
		orgwizard.WithNotFoundHandler(handlers.HandleNotFound),
		orgwizard.WithMethodNotAllowedHandler(handlers.HandleMethodNotAllowed),
	)
	return &wizardEnv{app: app, pages: pages}
}

// open renders the wizard and returns the page ID embedded in it.
func (e *wizardEnv) open(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	e.app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orga/event/new", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	m := pageIDPattern.FindStringSubmatch(rec.Body.String())
	require.Len(t, m, 2, "page id not found in markup")
	return m[1]
}

// source posts a name field the way htmx does.
func (e *wizardEnv) source(pageID, field, value string) *httptest.ResponseRecorder {
	form := url.Values{field: {value}}
	req := httptest.NewRequest(http.MethodPost, "/orga/event/new/"+pageID+"/source", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(htmx.HeaderHXRequest, "true")
	req.Header.Set(htmx.HeaderHXTriggerName, field)
	rec := httptest.NewRecorder()
	e.app.ServeHTTP(rec, req)
	return rec
}

func (e *wizardEnv) target(pageID string) *httptest.ResponseRecorder {
	form := url.Values{"slug": {"my-own"}}
	req := httptest.NewRequest(http.MethodPost, "/orga/event/new/"+pageID+"/target", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(htmx.HeaderHXRequest, "true")
	rec := httptest.NewRecorder()
	e.app.ServeHTTP(rec, req)
	return rec
}

func TestWizard_Show(t *testing.T) {
	t.Parallel()

	env := newWizardEnv(t)
	rec := httptest.NewRecorder()
	env.app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orga/event/new", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<fieldset id="organiser">`)
	assert.Contains(t, body, `name="name_0"`)
	assert.Contains(t, body, `name="name_1"`)
	assert.Contains(t, body, `id="id_slug"`)
	assert.Contains(t, body, `placeholder="my-event-2024"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestWizard_SourceUpdatesSlug(t *testing.T) {
	t.Parallel()

	env := newWizardEnv(t)
	id := env.open(t)

	rec := env.source(id, "name_0", "My Conf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="my-conf-2024"`)
	assert.Contains(t, rec.Body.String(), `id="id_slug"`)

	rec = env.source(id, "name_1", "Meine Konferenz 2024")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="meine-konferenz-2024"`)
}

func TestWizard_SuppressedInputLeavesSlug(t *testing.T) {
	t.Parallel()

	env := newWizardEnv(t)
	id := env.open(t)

	require.Equal(t, http.StatusOK, env.source(id, "name_0", "PyCon").Code)

	for _, raw := range []string{"", "!!!"} {
		rec := env.source(id, "name_0", raw)
		assert.Equal(t, http.StatusNoContent, rec.Code, raw)
		assert.Empty(t, rec.Body.String(), raw)
	}

	page, err := env.pages.Load(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, "pycon-2024", page.Slug)
}

func TestWizard_TargetStopsSync(t *testing.T) {
	t.Parallel()

	env := newWizardEnv(t)
	id := env.open(t)

	require.Equal(t, http.StatusOK, env.source(id, "name_0", "PyCon").Code)
	assert.Equal(t, http.StatusNoContent, env.target(id).Code)

	rec := env.source(id, "name_0", "PyCon Berlin")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// A second slug edit is harmless.
	assert.Equal(t, http.StatusNoContent, env.target(id).Code)

	page, err := env.pages.Load(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, slugsync.Inactive, page.State)
	assert.Equal(t, "pycon-2024", page.Slug)
}

func TestWizard_ReloadRestartsSync(t *testing.T) {
	t.Parallel()

	env := newWizardEnv(t)
	first := env.open(t)
	require.Equal(t, http.StatusNoContent, env.target(first).Code)

	second := env.open(t)
	require.NotEqual(t, first, second)

	rec := env.source(second, "name_0", "Fresh Start")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="fresh-start-2024"`)
}

func TestWizard_UnknownPage(t *testing.T) {
	t.Parallel()

	env := newWizardEnv(t)
	unknown := "00000000-0000-4000-8000-000000000000"

	t.Run("htmx source gets a retargeted error partial", func(t *testing.T) {
		t.Parallel()
		rec := env.source(unknown, "name_0", "x")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "#"+views.ErrorsID, rec.Header().Get(htmx.HeaderHXRetarget))
		assert.Contains(t, rec.Body.String(), "<h1>404</h1>")
	})

	t.Run("plain target request gets 404", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/orga/event/new/"+unknown+"/target", nil)
		rec := httptest.NewRecorder()
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "expired")
	})

	t.Run("malformed page ID does not route", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/orga/event/new/not-a-page/source", nil)
		rec := httptest.NewRecorder()
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWizard_MissingField(t *testing.T) {
	t.Parallel()

	env := newWizardEnv(t)
	id := env.open(t)

	t.Run("no name field is a no-op", func(t *testing.T) {
		rec := env.source(id, "unrelated", "value")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("without trigger header the first name field is used", func(t *testing.T) {
		form := url.Values{"name_1": {"Zweite Sprache"}}
		req := httptest.NewRequest(http.MethodPost, "/orga/event/new/"+id+"/source", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		env.app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="zweite-sprache-2024"`)
	})
}

func TestNewWizard_DefaultLocale(t *testing.T) {
	t.Parallel()

	store := cache.NewMemory[slugsync.Page]()
	defer store.Close()

	app := orgwizard.New(orgwizard.WithHandlers(handlers.NewWizard(slugsync.NewPages(store), nil)))
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orga/event/new", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="name_0"`)
	assert.NotContains(t, rec.Body.String(), `name="name_1"`)
}
