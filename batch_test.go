package rowgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rowgo/scalar"
)

func TestBuildBatch(t *testing.T) {
	t.Run("OrderPreserved", func(t *testing.T) {
		inputs := [][]scalar.Value{
			{scalar.Int(1)},
			{scalar.Int(2), scalar.Int(3)},
			nil,
			denseInput(2000, 10),
		}

		rows, err := BuildBatch(context.Background(), inputs)
		require.NoError(t, err)
		require.Len(t, rows, len(inputs))

		for i, in := range inputs {
			assert.Equal(t, len(in), rows[i].Len(), "row %d", i)
		}

		// The heuristic applies per row.
		assert.IsType(t, &DenseRow{}, rows[0])
		assert.IsType(t, &SparseRow{}, rows[3])
	})

	t.Run("OptionsApply", func(t *testing.T) {
		rows, err := BuildBatch(context.Background(),
			[][]scalar.Value{denseInput(10, 1)},
			WithMinSizeForSparse(5),
			WithConcurrency(2),
		)
		require.NoError(t, err)
		assert.IsType(t, &SparseRow{}, rows[0])
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := BuildBatch(ctx, [][]scalar.Value{{scalar.Int(1)}})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Empty", func(t *testing.T) {
		rows, err := BuildBatch(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
