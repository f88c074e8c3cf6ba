package rowgo

import (
	"iter"

	"github.com/hupe1980/rowgo/scalar"
	"github.com/hupe1980/rowgo/vector"
)

// Row is one fixed-length, zero-indexed record of scalar values.
//
// Two backings implement it: DenseRow stores every position, SparseRow stores
// only non-zero positions. Both are immutable after construction and satisfy
// the same contract, so consumers never branch on the backing; construct
// through ChooseRepresentation and stay on this interface.
type Row interface {
	// Len returns the logical number of positions.
	Len() int

	// At returns the value at index i. It fails with *ErrIndexOutOfRange
	// when i is not in [0, Len()).
	At(i int) (scalar.Value, error)

	// Values yields every position's value in index order. The sequence is
	// lazy, finite and restartable: ranging over it twice yields identical
	// values both times.
	Values() iter.Seq[scalar.Value]

	// NonZeros yields (index, value) for exactly the positions whose numeric
	// coercion is non-zero, in ascending index order. Callers may rely on the
	// ordering for merge-style algorithms across rows.
	NonZeros() iter.Seq2[int, scalar.Value]

	// ToVector materializes the row as its dense numeric companion: same
	// length, element i equal to the numeric coercion of position i.
	ToVector() vector.Vector

	// NewBuilder returns an empty builder producing rows of the same kind as
	// the receiver.
	NewBuilder() Builder
}

// Builder accumulates scalar values and finalizes them into a row. A builder
// is owned by a single goroutine until Finish; the finished row is then
// safely shareable.
type Builder interface {
	// Append adds the next value.
	Append(v scalar.Value)

	// Finish finalizes the accumulated values into an immutable row. The
	// builder must not be reused afterwards.
	Finish() (Row, error)
}

// Pair is one explicit (index, value) entry for sparse construction.
type Pair struct {
	Index int
	Value scalar.Value
}

// FromVector converts a dense numeric vector back into a row. Each element
// becomes a float scalar; order and length are preserved. This is the
// explicit inverse of Row.ToVector.
func FromVector(v vector.Vector) *DenseRow {
	values := make([]scalar.Value, len(v))
	for i, f := range v {
		values[i] = scalar.Float(f)
	}

	return &DenseRow{values: values}
}

func checkIndex(i, length int) error {
	if i < 0 || i >= length {
		return &ErrIndexOutOfRange{Index: i, Length: length}
	}

	return nil
}
