package scale

import "errors"

// ErrInvalidArgument is returned when an expansion argument is malformed:
// wrong length or not a number.
var ErrInvalidArgument = errors.New("scale: invalid argument")
