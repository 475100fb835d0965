package slugsync

import "fmt"

// State reports whether the target field is still derived from source input.
type State uint8

const (
	// Active derives the slug on every source input.
	Active State = iota
	// Inactive ignores source input. Terminal.
	Inactive
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Inactive:
		return "inactive"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	switch s {
	case Active, Inactive:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, uint8(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "active":
		*s = Active
	case "inactive":
		*s = Inactive
	default:
		return fmt.Errorf("%w: %q", ErrUnknownState, text)
	}
	return nil
}
