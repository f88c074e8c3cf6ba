package rowgo

import (
	"github.com/hupe1980/rowgo/scalar"
)

// DenseBuilder accumulates values into a DenseRow.
//
// A builder belongs to one goroutine until Finish. Feeding a row's own values
// back through its builder, in iteration order, reproduces an equivalent row.
type DenseBuilder struct {
	values   []scalar.Value
	finished bool
}

var _ Builder = (*DenseBuilder)(nil)

// Append implements Builder.
func (b *DenseBuilder) Append(v scalar.Value) {
	b.values = append(b.values, v)
}

// Finish implements Builder.
func (b *DenseBuilder) Finish() (Row, error) {
	if b.finished {
		return nil, ErrBuilderFinished
	}
	b.finished = true

	return NewDenseRow(b.values), nil
}

// SparseBuilder accumulates values positionally into a SparseRow, filtering
// zero-coercing values the way NewSparseRowFromDense does.
type SparseBuilder struct {
	values   []scalar.Value
	finished bool
}

var _ Builder = (*SparseBuilder)(nil)

// Append implements Builder.
func (b *SparseBuilder) Append(v scalar.Value) {
	b.values = append(b.values, v)
}

// Finish implements Builder.
func (b *SparseBuilder) Finish() (Row, error) {
	if b.finished {
		return nil, ErrBuilderFinished
	}
	b.finished = true

	return NewSparseRowFromDense(b.values), nil
}
