package workers

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Pool runs tasks concurrently on at most limit goroutines.
type Pool struct {
	limit int
}

// NewPool returns a pool running at most limit tasks at a time.
// A limit of zero or less means no limit.
func NewPool(limit int) *Pool {
	return &Pool{limit: limit}
}

// Run starts every task and waits until all of them have returned.
//
// A failing task does not stop the others. The returned error combines the
// errors of all failed tasks in task order, or is nil when all succeeded.
// A panicking task is reported as an error.
func (p *Pool) Run(ctx context.Context, tasks ...Task) error {
	errs := make([]error, len(tasks))

	var g errgroup.Group
	if p != nil && p.limit > 0 {
		g.SetLimit(p.limit)
	}

	for i, task := range tasks {
		g.Go(func() error {
			errs[i] = runTask(ctx, task)
			return nil
		})
	}
	_ = g.Wait()

	return multierr.Combine(errs...)
}

func runTask(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	return task(ctx)
}
