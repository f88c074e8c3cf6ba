package rowgo

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/rowgo/scalar"
)

// BuildBatch constructs one row per input concurrently, each going through
// the representation heuristic with the same options. The result preserves
// input order.
//
// Row construction itself cannot fail, so the only error is the context's:
// cancellation aborts outstanding work and returns ctx.Err().
func BuildBatch(ctx context.Context, inputs [][]scalar.Value, optFns ...Option) ([]Row, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	rows := make([]Row, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	// Limit concurrency to keep peak memory bounded on wide batches
	g.SetLimit(o.concurrency)

	for i, values := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rows[i] = ChooseRepresentation(values, optFns...)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		o.logger.LogBatchBuild(ctx, len(inputs), err)
		return nil, err
	}

	o.logger.LogBatchBuild(ctx, len(inputs), nil)

	return rows, nil
}
