package slugsync

import "errors"

var (
	// ErrUnknownState is returned when decoding a state other than active or inactive.
	ErrUnknownState = errors.New("slugsync: unknown state")

	// ErrInvalidPage is returned when a page ID is empty.
	ErrInvalidPage = errors.New("slugsync: invalid page id")

	// ErrPageNotFound is returned when a page does not exist or has expired.
	ErrPageNotFound = errors.New("slugsync: page not found")
)
