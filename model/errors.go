package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a coordinate falls outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrNilGrid is returned when a step is asked to advance a nil grid
	ErrNilGrid = errors.New("nil grid")
	// ErrUnknownPattern is returned by PatternByName for unregistered names
	ErrUnknownPattern = errors.New("unknown pattern")
)

// IsOutOfBounds reports whether err was caused by an out-of-bounds access
func IsOutOfBounds(err error) bool {
	return errors.Is(err, ErrOutOfBounds)
}
