// Package rowgo provides a dual-representation abstraction for one row of
// numeric-capable values.
//
// A Row is a fixed-length, zero-indexed record of scalar values. Two backings
// implement the same contract:
//
//   - DenseRow stores every position in a flat slice. O(1) indexed access,
//     non-zero traversal by filtered scan.
//   - SparseRow stores only non-zero positions as sorted (index, value)
//     entries with a declared length and an empty value for the rest.
//     Non-zero traversal walks the stored entries directly, O(nnz).
//
// # Quick Start
//
// Let the density heuristic pick the backing:
//
//	row := rowgo.ChooseRepresentation(values)
//	for i, v := range row.NonZeros() {
//	    fmt.Println(i, v.ToNumber())
//	}
//
// A row goes sparse iff it has at least MinSizeForSparse positions and fewer
// than MaxDensityForSparse of them are non-zero. Both thresholds are
// overridable per call:
//
//	row := rowgo.ChooseRepresentation(values,
//	    rowgo.WithMinSizeForSparse(100),
//	    rowgo.WithMaxDensityForSparse(0.25),
//	)
//
// Or choose a backing explicitly:
//
//	dense := rowgo.NewDenseRow(values)
//	sparse, err := rowgo.NewSparseRowFromPairs(pairs, 10_000, scalar.Zero)
//
// # Contract
//
// Whatever the backing, Values yields exactly Len() values in index order,
// NonZeros yields the non-zero positions in ascending index order, and
// out-of-range access fails with *ErrIndexOutOfRange. Consumers stay on the
// Row interface and never branch on the backing.
//
// Rows are immutable after construction and safe for concurrent readers
// without synchronization. Builders are single-owner until Finish.
//
// # Vectors
//
// ToVector materializes the dense numeric companion (vector.Vector);
// FromVector is the explicit inverse. Both conversions preserve order and
// per-position numeric coercion.
package rowgo
