package theme

import "errors"

var (
	// ErrInvalidElement is returned when a theme value does not have the
	// kind declared for its property, or cannot be drawn.
	ErrInvalidElement = errors.New("theme: invalid element")

	// ErrInvalidTree is returned by NewTree for a malformed tree.
	ErrInvalidTree = errors.New("theme: invalid element tree")

	// ErrInvalidColour is returned for an unrecognised colour.
	ErrInvalidColour = errors.New("theme: invalid colour")

	// ErrInvalidLinetype is returned for an unrecognised line type or
	// line end.
	ErrInvalidLinetype = errors.New("theme: invalid linetype")

	// ErrInvalidUnit is returned for an unrecognised unit.
	ErrInvalidUnit = errors.New("theme: invalid unit")
)
