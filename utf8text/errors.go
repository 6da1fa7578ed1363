package utf8text

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by ByteAt and SetByte for offsets
	// outside [0, ByteLen()).
	ErrIndexOutOfRange = errors.New("utf8text: index out of range")

	// ErrTooLarge is passed to panic when a concatenation would exceed the
	// maximum int length.
	ErrTooLarge = errors.New("utf8text: too large")
)

func indexError(i, n int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
}
