package server

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompletion_SettleOnce(t *testing.T) {
	c := newCompletion()
	first := errors.New("first")

	c.settle(first)
	c.settle(errors.New("second"))
	c.settle(nil)

	assert.Equal(t, first, c.wait(context.Background()))
}

func TestCompletion_WaitersSeeSameOutcome(t *testing.T) {
	c := newCompletion()
	outcome := errors.New("outcome")

	const waiters = 8
	errs := make([]error, waiters)

	var wg sync.WaitGroup
	for i := range waiters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = c.wait(context.Background())
		}()
	}

	c.settle(outcome)
	wg.Wait()

	for _, err := range errs {
		assert.Equal(t, outcome, err)
	}
}

func TestCompletion_WaitCancelled(t *testing.T) {
	c := newCompletion()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	err := c.wait(ctx)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCompletion_SettledBeatsCancelledContext(t *testing.T) {
	c := newCompletion()
	c.settle(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, c.wait(ctx))
}
