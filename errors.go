package rowgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeLength is returned when a sparse row is declared with a
	// negative length.
	ErrNegativeLength = errors.New("length must be non-negative")

	// ErrLengthOverflow is returned when a sparse row is declared with a
	// length beyond the 32-bit index range.
	ErrLengthOverflow = errors.New("length exceeds maximum sparse index range")

	// ErrBuilderFinished is returned when a builder is used after Finish.
	ErrBuilderFinished = errors.New("builder already finished")
)

// ErrIndexOutOfRange indicates an indexed access outside [0, length).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d with length %d", e.Index, e.Length)
}

// ErrInvalidSparseEntry indicates a sparse construction pair whose index lies
// outside the declared length. It is reported at construction time, never
// deferred to a later access.
type ErrInvalidSparseEntry struct {
	Index  int
	Length int
}

func (e *ErrInvalidSparseEntry) Error() string {
	return fmt.Sprintf("invalid sparse entry: index %d with length %d", e.Index, e.Length)
}
