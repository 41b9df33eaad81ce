package element

import "errors"

// ErrUnknownName is returned when a configuration string names no known enum value.
var ErrUnknownName = errors.New("unknown name")
