package slug_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orgwizard/pkg/slug"
)

const year = 2024

func TestDerive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "simple text",
			input:  "My Great Event",
			want:   "my-great-event-2024",
			wantOK: true,
		},
		{
			name:   "empty string",
			input:  "",
			want:   "",
			wantOK: false,
		},
		{
			name:   "whitespace only",
			input:  "   ",
			want:   "--2024",
			wantOK: false,
		},
		{
			name:   "punctuation only",
			input:  "!!!",
			want:   "--2024",
			wantOK: false,
		},
		{
			name:   "year already present",
			input:  "Event 2024",
			want:   "event-2024",
			wantOK: true,
		},
		{
			name:   "year embedded in word",
			input:  "PyCon2024",
			want:   "pycon2024",
			wantOK: true,
		},
		{
			name:   "other year gets suffix",
			input:  "Event 2023",
			want:   "event-2023-2024",
			wantOK: true,
		},
		{
			name:   "leading punctuation",
			input:  "!a",
			want:   "-a-2024",
			wantOK: true,
		},
		{
			name:   "trailing punctuation keeps hyphen before suffix",
			input:  "Event!",
			want:   "event--2024",
			wantOK: true,
		},
		{
			name:   "underscore is a word character",
			input:  "dev_days",
			want:   "dev_days-2024",
			wantOK: true,
		},
		{
			name:   "non-ascii letters are separators",
			input:  "Café Über",
			want:   "caf-ber-2024",
			wantOK: true,
		},
		{
			name:   "tabs and newlines",
			input:  "Line1\nLine2\tTabbed",
			want:   "line1-line2-tabbed-2024",
			wantOK: true,
		},
		{
			name:   "single character",
			input:  "x",
			want:   "x-2024",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := slug.Derive(tt.input, year)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDerive_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"My Great Event",
		"Event 2024",
		"PyCon DE & PyData Berlin",
		"dev_days",
	}

	for _, in := range inputs {
		first, ok := slug.Derive(in, year)
		require.True(t, ok, in)

		second, ok := slug.Derive(first, year)
		require.True(t, ok, first)
		assert.Equal(t, first, second, "re-deriving %q", first)
	}
}

func TestDerive_Alphabet(t *testing.T) {
	t.Parallel()

	allowed := regexp.MustCompile(`^[a-z0-9_-]*$`)
	inputs := []string{
		"Hello, World!",
		"ÄÖÜ äöü ß",
		"Emoji 😀 party",
		"MiXeD CaSe 123",
		"path/to/file.txt",
		"user@example.com",
		"日本語 conference",
	}

	for _, in := range inputs {
		got, _ := slug.Derive(in, year)
		assert.Regexp(t, allowed, got, in)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Hello World", "hello-world"},
		{"Too    Many     Spaces", "too-many-spaces"},
		{"Too---Many---Dashes", "too-many-dashes"},
		{"  Trim Me  ", "-trim-me-"},
		{"Price: $99.99", "price-99-99"},
		{"Hello 😀 World 🌍", "hello-world-"},
	}

	for _, tt := range tests {
		got := slug.Normalize(tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.NotContains(t, got, "--", tt.input)
	}
}

func TestNormalize_NoConsecutiveSeparators(t *testing.T) {
	t.Parallel()

	inputs := []string{"a  b", "a-_-b", "a!?b", "a - b", "---", " \t\n "}
	for _, in := range inputs {
		assert.False(t, strings.Contains(slug.Normalize(in), "--"), in)
	}
}

func TestYearSuffix(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 2026, slug.YearSuffix(ts))

	newYearsEve := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, 2025, slug.YearSuffix(newYearsEve))
}
