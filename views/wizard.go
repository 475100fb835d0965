package views

import "fmt"

//go:generate go tool templ generate

// ErrorsID is the element HTMX error partials are retargeted to.
const ErrorsID = "wizard-errors"

// Locale is one language the organiser can name the event in.
type Locale struct {
	Code  string
	Label string
}

// Wizard is the data behind the organiser step.
type Wizard struct {
	PageID    string
	SourceURL string
	TargetURL string
	Slug      string
	Locales   []Locale
	Year      int
}

// SourceName returns the form field name of the i-th source input.
func SourceName(i int) string {
	return fmt.Sprintf("name_%d", i)
}

func slugPlaceholder(year int) string {
	return fmt.Sprintf("my-event-%d", year)
}
