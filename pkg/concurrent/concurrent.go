package concurrent

import (
	"context"
	"sync"

	"github.com/zeusync/arena/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// Concurrent runs the action function for each element of the iterator in a separate goroutine.
// It waits for all goroutines to finish. If action returns an error, it returns the first error encountered
// and cancels the context passed to the remaining actions.
func Concurrent[T any](ctx context.Context, i *sequence.Iterator[T], action func(context.Context, T) error) error {
	errGroup, groupCtx := errgroup.WithContext(ctx)
	next, stop := i.Pull()
	defer stop()

	for {
		value, valid := next()
		if !valid {
			break
		}

		errGroup.Go(func() error {
			return action(groupCtx, value)
		})
	}

	return errGroup.Wait()
}

// ParallelMust runs the action function for each element of the iterator in a separate goroutine.
// It waits for all goroutines to finish.
func ParallelMust[T any](i *sequence.Iterator[T], action func(T)) {
	wg := sync.WaitGroup{}
	next, stop := i.Pull()
	defer stop()

	for {
		value, valid := next()
		if !valid {
			break
		}

		wg.Add(1)
		go func(value T) {
			defer wg.Done()
			action(value)
		}(value)
	}

	wg.Wait()
}
