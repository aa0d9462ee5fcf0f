package retrieve

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ProcessFunc produces the result for the item at index i.
type ProcessFunc func(ctx context.Context, i int) (string, error)

// Processor runs fn over n items and returns the results indexed by item
// position, regardless of the order in which items complete. Processing
// stops at the first error, which is returned with no partial results.
type Processor interface {
	Process(ctx context.Context, n int, fn ProcessFunc) ([]string, error)
}

// Ensure processors implement Processor at compile time.
var (
	_ Processor = Sequential{}
	_ Processor = Parallel{}
)

// Sequential processes items strictly in order: item i+1 is not started
// until item i has completed.
type Sequential struct{}

// Process implements Processor.
func (Sequential) Process(ctx context.Context, n int, fn ProcessFunc) ([]string, error) {
	results := make([]string, n)
	for i := 0; i < n; i++ {
		r, err := fn(ctx, i)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

// Parallel processes up to Limit items at a time and reassembles results in
// item order. The first error cancels the context passed to outstanding
// items and no further items are started.
type Parallel struct {
	Limit int
}

// Process implements Processor.
func (p Parallel) Process(ctx context.Context, n int, fn ProcessFunc) ([]string, error) {
	results := make([]string, n)

	g, gctx := errgroup.WithContext(ctx)
	if p.Limit > 0 {
		g.SetLimit(p.Limit)
	}
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, i)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// NewProcessor returns Sequential for a limit of 1 or less and a bounded
// Parallel processor otherwise.
func NewProcessor(limit int) Processor {
	if limit <= 1 {
		return Sequential{}
	}
	return Parallel{Limit: limit}
}
