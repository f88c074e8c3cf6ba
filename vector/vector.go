// Package vector provides the dense numeric companion of a row.
//
// A Vector is a plain []float64 with the handful of length-checked numeric
// operations merge-style consumers of rows need. Rows convert to a Vector via
// their ToVector method; the reverse conversion lives in the root package as
// FromVector. Both directions are explicit calls, never implicit coercions.
package vector

import (
	"errors"
	"math"
	"slices"

	"github.com/hupe1980/rowgo/internal/f64"
)

// ErrSizeMismatch indicates two vectors of different lengths were combined.
var ErrSizeMismatch = errors.New("vector sizes do not match")

// Vector is a dense numeric vector. Indexing and len work as on any slice.
type Vector []float64

// New returns a zero-filled vector of length n.
func New(n int) Vector {
	return make(Vector, n)
}

// Len returns the number of elements.
func (v Vector) Len() int {
	return len(v)
}

// Clone returns a deep copy of the vector.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// Norm calculates the magnitude (length) of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(f64.Dot(v, v))
}

// Dot calculates the dot product of two vectors.
func Dot(v1, v2 Vector) (float64, error) {
	if len(v1) != len(v2) {
		return 0, ErrSizeMismatch
	}

	return f64.Dot(v1, v2), nil
}

// SquaredL2 calculates the squared L2 distance between two vectors.
func SquaredL2(v1, v2 Vector) (float64, error) {
	if len(v1) != len(v2) {
		return 0, ErrSizeMismatch
	}

	return f64.SquaredL2(v1, v2), nil
}

// CosineSimilarity calculates the cosine similarity between two vectors.
func CosineSimilarity(v1, v2 Vector) (float64, error) {
	if len(v1) != len(v2) {
		return 0, ErrSizeMismatch
	}

	dotProduct := f64.Dot(v1, v2)
	magnitudeA := v1.Norm()
	magnitudeB := v2.Norm()

	// Avoid division by zero
	if magnitudeA == 0 || magnitudeB == 0 {
		return 0, nil
	}

	return dotProduct / (magnitudeA * magnitudeB), nil
}
