package server

import (
	"context"
)

// Executor runs submitted work one item at a time on a single goroutine,
// so commands from concurrent connections never interleave.
type Executor struct {
	requests chan func()
}

func NewExecutor() *Executor {
	return &Executor{requests: make(chan func())}
}

// Processes submitted work until ctx is cancelled
func (executor *Executor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case work := <-executor.requests:
			work()
		}
	}
}

// Hands work to the executor and waits for it to finish
func (executor *Executor) Do(ctx context.Context, work func()) error {
	done := make(chan struct{})
	wrapped := func() {
		defer close(done)
		work()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case executor.requests <- wrapped:
	}

	<-done
	return nil
}
