package rowgo

import (
	"context"

	"github.com/hupe1980/rowgo/scalar"
)

// Default thresholds for the representation heuristic. Both are policy
// constants, applied exactly and only at construction; a row never changes
// backing after it is built. Override per call with WithMinSizeForSparse and
// WithMaxDensityForSparse.
const (
	// MinSizeForSparse is the smallest length at which a sparse backing is
	// considered. Below it, sparse bookkeeping overhead exceeds its savings.
	MinSizeForSparse = 1000

	// MaxDensityForSparse is the non-zero density at and above which a row
	// stays dense. At or above it, a sparse map costs more memory and time
	// than a flat array.
	MaxDensityForSparse = 0.5
)

// ChooseRepresentation builds a row from values, picking the backing by a
// density heuristic: sparse iff the input is at least MinSizeForSparse long
// and fewer than MaxDensityForSparse of its positions are non-zero, dense
// otherwise. An empty input is always dense.
//
// The sparse path goes through NewSparseRowFromDense, so the resulting row's
// empty value is scalar.Zero. Either way the input is copied, never shared.
func ChooseRepresentation(values []scalar.Value, optFns ...Option) Row {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	n := len(values)
	nnz := 0
	for _, v := range values {
		if scalar.IsNonZero(v) {
			nnz++
		}
	}

	sparse := n >= o.minSizeForSparse && float64(nnz) < float64(n)*o.maxDensityForSparse
	o.logger.LogSelect(context.Background(), n, nnz, sparse)

	if sparse {
		return NewSparseRowFromDense(values)
	}

	return NewDenseRow(values)
}
