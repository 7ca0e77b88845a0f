package geohash

import (
	"errors"
	"fmt"
)

// Error kinds reported by the package. Every returned error is a *ValidationError
// wrapping one of these, so callers can match with errors.Is.
var (
	ErrRange     = errors.New("geohash: value out of range")
	ErrAlphabet  = errors.New("geohash: invalid character")
	ErrDirection = errors.New("geohash: invalid direction")
	ErrEmpty     = errors.New("geohash: empty hash")
	ErrBoundary  = errors.New("geohash: no neighbour beyond pole")
)

// ValidationError describes rejected input.
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(kind error, format string, args ...any) error {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
