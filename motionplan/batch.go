package motionplan

import (
	"context"

	"golang.org/x/sync/errgroup"

	"go.viam.com/carplan/spatialmath"
)

// Query is one start/goal pair of a batch.
type Query struct {
	Start spatialmath.Pose
	Goal  spatialmath.Pose
}

// Result is the outcome of one query of a batch. Exactly one of Plan and Err is set.
type Result struct {
	Plan *Plan
	Err  error
}

// PlanBatch plans the queries on up to NumThreads goroutines. results[i] belongs to queries[i]. Failing
// queries do not stop the batch; only a cancelled context does, in which case its error is returned.
func (mp *Planner) PlanBatch(ctx context.Context, queries []Query) ([]Result, error) {
	results := make([]Result, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	threads := mp.opts.NumThreads
	if threads <= 0 {
		threads = defaultNumThreads
	}
	g.SetLimit(threads)
	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		i, q := i, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			plan, err := mp.Plan(q.Start, q.Goal)
			results[i] = Result{Plan: plan, Err: err}
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
