package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/orgwizard"
	"github.com/dmitrymomot/orgwizard/pkg/htmx"
	"github.com/dmitrymomot/orgwizard/pkg/slugsync"
	"github.com/dmitrymomot/orgwizard/views"
)

// uuidPattern is a regex pattern for matching UUID path parameters.
const uuidPattern = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

const wizardPath = "/orga/event/new"

// Wizard serves the organiser step of the event wizard.
type Wizard struct {
	pages   *slugsync.Pages
	locales []views.Locale
}

// NewWizard creates the wizard handler. At least one locale is required;
// an empty list falls back to English.
func NewWizard(pages *slugsync.Pages, locales []views.Locale) *Wizard {
	if len(locales) == 0 {
		locales = []views.Locale{{Code: "en", Label: "English"}}
	}
	return &Wizard{pages: pages, locales: locales}
}

// Routes implements orgwizard.Handler.
func (h *Wizard) Routes(r orgwizard.Router) {
	r.GET(wizardPath, h.show)
	r.POST(wizardPath+"/{page:"+uuidPattern+"}/source", h.source)
	r.POST(wizardPath+"/{page:"+uuidPattern+"}/target", h.target)
}

// show opens a fresh page. Reloading the step therefore starts in sync again.
func (h *Wizard) show(c orgwizard.Context) error {
	page, err := h.pages.Open(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.WizardPage(h.view(page)))
}

// source handles an input event on one of the organiser name fields.
func (h *Wizard) source(c orgwizard.Context) error {
	raw, ok := h.sourceValue(c)
	if !ok {
		c.LogDebug("source input without a name field")
		return c.NoContent(http.StatusNoContent)
	}

	res, err := h.pages.Source(c, c.Param("page"), raw)
	if err != nil {
		return pageError(c, err)
	}
	if !res.Written {
		return c.NoContent(http.StatusNoContent)
	}
	return c.Render(http.StatusOK, views.SlugField(h.view(res.Page)))
}

// target handles the first input event on the slug field.
func (h *Wizard) target(c orgwizard.Context) error {
	if _, err := h.pages.Target(c, c.Param("page")); err != nil {
		return pageError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// sourceValue returns the value of the field that fired the request. Without
// an HX-Trigger-Name header the first name field present in the form is used.
func (h *Wizard) sourceValue(c orgwizard.Context) (string, bool) {
	if err := c.Request().ParseForm(); err != nil {
		return "", false
	}
	form := c.Request().PostForm

	if name := htmx.TriggerName(c.Request()); h.isSource(name) {
		if vals, ok := form[name]; ok && len(vals) > 0 {
			return vals[0], true
		}
		return "", false
	}

	for i := range h.locales {
		if vals, ok := form[views.SourceName(i)]; ok && len(vals) > 0 {
			return vals[0], true
		}
	}
	return "", false
}

func (h *Wizard) isSource(name string) bool {
	for i := range h.locales {
		if name == views.SourceName(i) {
			return true
		}
	}
	return false
}

func (h *Wizard) view(page slugsync.Page) views.Wizard {
	base := wizardPath + "/" + page.ID
	return views.Wizard{
		PageID:    page.ID,
		SourceURL: base + "/source",
		TargetURL: base + "/target",
		Locales:   h.locales,
		Slug:      page.Slug,
		Year:      page.Year,
	}
}

// pageError maps page lookup failures to 404.
func pageError(c orgwizard.Context, err error) error {
	if errors.Is(err, slugsync.ErrPageNotFound) || errors.Is(err, slugsync.ErrInvalidPage) {
		return c.Error(http.StatusNotFound, "This page has expired. Reload it to start again.", orgwizard.WithError(err))
	}
	return err
}
