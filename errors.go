package disjointset

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when a constructor or driver receives a
	// size or count it cannot work with (for example a negative n).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when an element index is outside [0, n).
	ErrIndexOutOfRange = errors.New("index out of range")
)

func invalidSize(n int) error {
	return errors.Wrapf(ErrInvalidArgument, "size must be non-negative, got %d", n)
}

func outOfRange(i, n int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d not in [0, %d)", i, n)
}
