package handlers

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/orgwizard"
	"github.com/dmitrymomot/orgwizard/pkg/slug"
)

// maxYear keeps the suffix a four digit calendar year.
const maxYear = 9999

// SlugRequest is the body of POST /api/slug.
type SlugRequest struct {
	Text string `json:"text"`
	// Year defaults to the current year when zero.
	Year int `json:"year,omitempty"`
}

// SlugResponse reports the derived slug and whether the wizard would write it.
type SlugResponse struct {
	Slug  string `json:"slug"`
	Write bool   `json:"write"`
	Year  int    `json:"year"`
}

// SlugAPI previews slug derivation without any page state.
type SlugAPI struct {
	now func() time.Time
}

// NewSlugAPI creates the preview endpoint. A nil clock means time.Now.
func NewSlugAPI(now func() time.Time) *SlugAPI {
	if now == nil {
		now = time.Now
	}
	return &SlugAPI{now: now}
}

// Routes implements orgwizard.Handler.
func (h *SlugAPI) Routes(r orgwizard.Router) {
	r.POST("/api/slug", h.derive)
}

func (h *SlugAPI) derive(c orgwizard.Context) error {
	var req SlugRequest
	if err := c.BindJSON(&req); err != nil {
		return err
	}

	year := req.Year
	switch {
	case year == 0:
		year = slug.YearSuffix(h.now())
	case year < 0 || year > maxYear:
		return c.Error(http.StatusUnprocessableEntity, "year must be between 1 and 9999")
	}

	s, ok := slug.Derive(req.Text, year)
	return c.JSON(http.StatusOK, SlugResponse{Slug: s, Write: ok, Year: year})
}
