package attribute

import "errors"

var (
	// ErrDivideByZero is returned when a ratio is taken against a zero value.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrUnknownStat is returned by Set.Stat for a path that names no stat.
	ErrUnknownStat = errors.New("unknown stat")
)
