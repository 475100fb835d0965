package middlewares_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orgwizard/middlewares"
)

func TestPanicError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string value", "something went wrong", "panic: something went wrong"},
		{"non-string value", 42, "panic: 42"},
		{"nil value", nil, "panic: <nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, (&middlewares.PanicError{Value: tt.value}).Error())
		})
	}
}

func TestPanicErrorHelpers(t *testing.T) {
	t.Parallel()

	pe := &middlewares.PanicError{Value: "x"}
	wrapped := fmt.Errorf("handler: %w", pe)

	require.True(t, middlewares.IsPanicError(wrapped))
	require.False(t, middlewares.IsPanicError(errors.New("plain")))

	got, ok := middlewares.AsPanicError(wrapped)
	require.True(t, ok)
	require.Same(t, pe, got)

	_, ok = middlewares.AsPanicError(nil)
	require.False(t, ok)
}
