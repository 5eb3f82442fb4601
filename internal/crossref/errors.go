package crossref

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an axis is replaced with a nil
	// slice, or when a grid is ragged or holds a value of the wrong type.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrKeyNotFound is wrapped by every *KeyNotFoundError.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnsupported is returned by grid sources that cannot be read back.
	ErrUnsupported = errors.New("unsupported operation")
)

// Axis identifies the row or the column dimension of a table.
type Axis int

const (
	RowAxis Axis = iota
	ColumnAxis
)

func (a Axis) String() string {
	switch a {
	case RowAxis:
		return "row"
	case ColumnAxis:
		return "column"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// KeyNotFoundError reports a point access with a key that is not on the
// named axis. When both keys are missing, the row is reported.
type KeyNotFoundError struct {
	Axis Axis
	Key  any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s key %v: %s", e.Axis, e.Key, ErrKeyNotFound)
}

func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}

// MissingAxis returns the axis named by err if it is (or wraps) a
// *KeyNotFoundError.
func MissingAxis(err error) (Axis, bool) {
	var knf *KeyNotFoundError
	if errors.As(err, &knf) {
		return knf.Axis, true
	}
	return 0, false
}

func invalidArgumentf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, a...))
}
