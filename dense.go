package rowgo

import (
	"iter"
	"slices"

	"github.com/hupe1980/rowgo/scalar"
	"github.com/hupe1980/rowgo/vector"
)

// DenseRow stores an explicit value for every position.
//
// Indexed access is O(1); the non-zero traversal is a filtered scan over the
// whole row. It is the right backing for short rows and for rows where most
// positions are non-zero.
type DenseRow struct {
	values []scalar.Value
}

var _ Row = (*DenseRow)(nil)

// NewDenseRow creates a dense row from values. The input is copied; the row
// never shares state with the caller's slice.
func NewDenseRow(values []scalar.Value) *DenseRow {
	return &DenseRow{values: slices.Clone(values)}
}

// Len implements Row.
func (r *DenseRow) Len() int {
	return len(r.values)
}

// At implements Row.
func (r *DenseRow) At(i int) (scalar.Value, error) {
	if err := checkIndex(i, len(r.values)); err != nil {
		return nil, err
	}

	return r.values[i], nil
}

// Values implements Row.
func (r *DenseRow) Values() iter.Seq[scalar.Value] {
	return func(yield func(scalar.Value) bool) {
		for _, v := range r.values {
			if !yield(v) {
				return
			}
		}
	}
}

// NonZeros implements Row. Complexity is O(Len()).
func (r *DenseRow) NonZeros() iter.Seq2[int, scalar.Value] {
	return func(yield func(int, scalar.Value) bool) {
		for i, v := range r.values {
			if !scalar.IsNonZero(v) {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// ToVector implements Row.
func (r *DenseRow) ToVector() vector.Vector {
	out := vector.New(len(r.values))
	for i, v := range r.values {
		out[i] = v.ToNumber()
	}

	return out
}

// NewBuilder implements Row.
func (r *DenseRow) NewBuilder() Builder {
	return &DenseBuilder{}
}
