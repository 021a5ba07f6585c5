package concurrency

import (
	"context"
	"sync"
)

// RunAll runs every task in its own goroutine and waits for all of them.
// Returns one error slot per task, index-aligned, so callers can tell which
// leg of a fan-out failed. A canceled context is reported by the tasks
// themselves (each receives ctx).
func RunAll(ctx context.Context, tasks ...func(context.Context) error) []error {
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task func(context.Context) error) {
			defer wg.Done()
			errs[i] = task(ctx)
		}(i, task)
	}
	wg.Wait()

	return errs
}

// Map applies fn to every item with at most maxWorkers goroutines.
// Results come back in input order. The first error aborts nothing: every
// item is still processed, and all errors are collected.
func Map[T any, R any](
	ctx context.Context,
	items []T,
	maxWorkers int,
	fn func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	if maxWorkers <= 0 {
		maxWorkers = 10
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	jobs := make(chan int, len(items))
	type indexed struct {
		index int
		val   R
		err   error
	}
	results := make(chan indexed, len(items))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					results <- indexed{index: i, err: ctx.Err()}
				default:
					val, err := fn(ctx, i, items[i])
					results <- indexed{index: i, val: val, err: err}
				}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]R, len(items))
	var errs []error
	for res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
		}
		out[res.index] = res.val
	}

	return out, errs
}
