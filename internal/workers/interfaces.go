// Package workers provides a small fan-out pool used to run the same
// operation over many independent targets at once.
//
// The pool never cancels sibling tasks when one of them fails: every task
// runs to completion and the combined outcome is reported once all of them
// have returned.
package workers

import "context"

// Task is a unit of work run by a [Pool].
//
// Example:
//
//	task := func(ctx context.Context) error {
//	    return listener.Unbind(ctx)
//	}
type Task func(ctx context.Context) error
