package slug

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Separator replaces every run of non-word characters.
const Separator = "-"

var nonWord = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Normalize replaces each maximal run of non-word characters with a single
// separator and lowercases the result.
func Normalize(raw string) string {
	return strings.ToLower(nonWord.ReplaceAllString(raw, Separator))
}

// Derive turns raw text into a slug carrying the year suffix.
// The boolean is false when the caller should leave the target untouched:
// the normalized text is empty, or it is the "--{year}" stub produced by
// whitespace-only input.
func Derive(raw string, year int) (string, bool) {
	s := Normalize(raw)
	if s == "" {
		return "", false
	}

	suffix := strconv.Itoa(year)
	if !strings.Contains(s, suffix) {
		s += Separator + suffix
	}

	if s == Separator+Separator+suffix {
		return s, false
	}

	return s, true
}

// YearSuffix returns the calendar year of t in its own location.
func YearSuffix(t time.Time) int {
	return t.Year()
}
