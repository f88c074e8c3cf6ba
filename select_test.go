package rowgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rowgo/scalar"
)

// denseInput builds a sequence of length n with nnz leading non-zero
// positions.
func denseInput(n, nnz int) []scalar.Value {
	values := make([]scalar.Value, n)
	for i := range values {
		if i < nnz {
			values[i] = scalar.Float(float64(i + 1))
		} else {
			values[i] = scalar.Zero
		}
	}

	return values
}

func TestChooseRepresentation(t *testing.T) {
	t.Run("Thresholds", func(t *testing.T) {
		tests := []struct {
			name       string
			length     int
			nonZeros   int
			wantSparse bool
		}{
			{name: "empty", length: 0, nonZeros: 0, wantSparse: false},
			{name: "below size threshold all zero", length: 999, nonZeros: 0, wantSparse: false},
			{name: "below size threshold dense", length: 999, nonZeros: 999, wantSparse: false},
			{name: "at size threshold at density threshold", length: 1000, nonZeros: 500, wantSparse: false},
			{name: "at size threshold below density threshold", length: 1000, nonZeros: 400, wantSparse: true},
			{name: "at size threshold just below density threshold", length: 1000, nonZeros: 499, wantSparse: true},
			{name: "large sparse", length: 100_000, nonZeros: 10, wantSparse: true},
			{name: "large dense", length: 100_000, nonZeros: 90_000, wantSparse: false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				row := ChooseRepresentation(denseInput(tt.length, tt.nonZeros))

				_, sparse := row.(*SparseRow)
				assert.Equal(t, tt.wantSparse, sparse)
				assert.Equal(t, tt.length, row.Len())
			})
		}
	})

	t.Run("Transparency", func(t *testing.T) {
		// Whatever backing the heuristic picks, iteration reproduces the
		// input value-for-value.
		for _, nnz := range []int{0, 400, 500, 1200} {
			in := denseInput(1200, nnz)
			row := ChooseRepresentation(in)

			i := 0
			for v := range row.Values() {
				require.Equal(t, in[i].ToNumber(), v.ToNumber(), "position %d", i)
				i++
			}
			assert.Equal(t, len(in), i)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		in := denseInput(10, 2)

		row := ChooseRepresentation(in,
			WithMinSizeForSparse(10),
			WithMaxDensityForSparse(0.3),
		)
		_, sparse := row.(*SparseRow)
		assert.True(t, sparse)

		row = ChooseRepresentation(in, WithMinSizeForSparse(11))
		_, sparse = row.(*SparseRow)
		assert.False(t, sparse)
	})

	t.Run("InputNotShared", func(t *testing.T) {
		in := denseInput(4, 4)
		row := ChooseRepresentation(in)

		in[0] = scalar.Float(-99)

		v, err := row.At(0)
		require.NoError(t, err)
		assert.Equal(t, float64(1), v.ToNumber())
	})
}
