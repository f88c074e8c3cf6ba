package rowgo

import (
	"iter"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/rowgo/scalar"
	"github.com/hupe1980/rowgo/vector"
)

// SparseRow stores only its interesting positions as sorted (index, value)
// entries plus a declared logical length and a single empty value returned
// for every absent position.
//
// Indices are strictly 32-bit, allowing for max 4 billion positions per row.
// A roaring bitmap over the stored indices answers membership before the
// entry lookup. The non-zero traversal walks the stored entries directly and
// never scans absent positions; that complexity gap is the entire point of
// this backing.
type SparseRow struct {
	indices []uint32 // ascending, unique
	values  []scalar.Value
	set     *roaring.Bitmap
	length  int
	empty   scalar.Value
}

var _ Row = (*SparseRow)(nil)

// NewSparseRowFromPairs creates a sparse row from explicit (index, value)
// pairs, a declared length and the value reported for absent positions.
//
// Duplicate indices follow a last-write-wins policy: the pair appearing
// latest in pairs is the one stored. Any pair whose index lies outside
// [0, length) fails construction with *ErrInvalidSparseEntry.
//
// empty is not required to coerce to zero, but NonZeros is defined by the
// stored entries only, so a non-zero empty never appears in a non-zero
// traversal.
func NewSparseRowFromPairs(pairs []Pair, length int, empty scalar.Value) (*SparseRow, error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}
	if uint64(length) > math.MaxUint32 {
		return nil, ErrLengthOverflow
	}

	entries := make(map[uint32]scalar.Value, len(pairs))
	for _, p := range pairs {
		if p.Index < 0 || p.Index >= length {
			return nil, &ErrInvalidSparseEntry{Index: p.Index, Length: length}
		}

		entries[uint32(p.Index)] = p.Value
	}

	indices := make([]uint32, 0, len(entries))
	for idx := range entries {
		indices = append(indices, idx)
	}
	slices.Sort(indices)

	values := make([]scalar.Value, len(indices))
	set := roaring.New()
	for k, idx := range indices {
		values[k] = entries[idx]
		set.Add(idx)
	}

	return &SparseRow{
		indices: indices,
		values:  values,
		set:     set,
		length:  length,
		empty:   empty,
	}, nil
}

// NewSparseRowFromDense creates a sparse row by filtering a dense sequence:
// positions whose numeric coercion is non-zero are stored, everything else
// maps to scalar.Zero. The declared length is len(values).
func NewSparseRowFromDense(values []scalar.Value) *SparseRow {
	var (
		indices []uint32
		stored  []scalar.Value
	)

	set := roaring.New()
	for i, v := range values {
		if !scalar.IsNonZero(v) {
			continue
		}

		indices = append(indices, uint32(i))
		stored = append(stored, v)
		set.Add(uint32(i))
	}

	return &SparseRow{
		indices: indices,
		values:  stored,
		set:     set,
		length:  len(values),
		empty:   scalar.Zero,
	}
}

// Len implements Row.
func (r *SparseRow) Len() int {
	return r.length
}

// Stored returns the number of explicitly stored entries.
func (r *SparseRow) Stored() int {
	return len(r.indices)
}

// EmptyValue returns the value reported for absent positions.
func (r *SparseRow) EmptyValue() scalar.Value {
	return r.empty
}

// At implements Row. Absent positions inside [0, Len()) return the row's
// empty value itself, not a recomputation; out-of-range indices fail exactly
// as on a dense row.
func (r *SparseRow) At(i int) (scalar.Value, error) {
	if err := checkIndex(i, r.length); err != nil {
		return nil, err
	}

	if !r.set.Contains(uint32(i)) {
		return r.empty, nil
	}

	pos, _ := slices.BinarySearch(r.indices, uint32(i))

	return r.values[pos], nil
}

// Values implements Row. The walk merges stored entries with the empty value
// in a single forward pass, so a full iteration is O(Len()) with no per-step
// search.
func (r *SparseRow) Values() iter.Seq[scalar.Value] {
	return func(yield func(scalar.Value) bool) {
		pos := 0
		for i := 0; i < r.length; i++ {
			v := r.empty
			if pos < len(r.indices) && r.indices[pos] == uint32(i) {
				v = r.values[pos]
				pos++
			}
			if !yield(v) {
				return
			}
		}
	}
}

// NonZeros implements Row. Complexity is O(Stored()), independent of Len().
func (r *SparseRow) NonZeros() iter.Seq2[int, scalar.Value] {
	return func(yield func(int, scalar.Value) bool) {
		for k, idx := range r.indices {
			// The pairs path may store zero-coercing values; they are not
			// non-zeros.
			if !scalar.IsNonZero(r.values[k]) {
				continue
			}
			if !yield(int(idx), r.values[k]) {
				return
			}
		}
	}
}

// ToVector implements Row. Materializing a dense vector is O(Len())
// unavoidably, since the target stores every position.
func (r *SparseRow) ToVector() vector.Vector {
	out := vector.New(r.length)

	if e := r.empty.ToNumber(); e != 0 {
		for i := range out {
			out[i] = e
		}
	}
	for k, idx := range r.indices {
		out[idx] = r.values[k].ToNumber()
	}

	return out
}

// NewBuilder implements Row.
func (r *SparseRow) NewBuilder() Builder {
	return &SparseBuilder{}
}
