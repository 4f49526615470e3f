package server

import (
	"context"
	"fmt"
	"sync"
)

// completion is a single-assignment outcome: settled once, read by any
// number of waiters.
type completion struct {
	once sync.Once
	done chan struct{}
	err  error
}

func newCompletion() *completion {
	return &completion{done: make(chan struct{})}
}

// settle records err as the outcome. Only the first call has an effect.
func (c *completion) settle(err error) {
	c.once.Do(func() {
		c.err = err
		close(c.done)
	})
}

// wait blocks until the outcome is settled or ctx is done. A settled
// outcome always wins over a finished ctx.
func (c *completion) wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	default:
	}

	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
	}
}
