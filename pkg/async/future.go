// Package async provides a future handle for operations that run on their own goroutine.
package async

import "context"

// Future holds the result of an operation running in background
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go starts fn in a goroutine and returns its future. fn gets a context detached from
// ctx cancellation, so an issued request runs to completion even if the caller stops waiting.
// Values stored in ctx are still visible to fn.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	runCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(f.done)
		f.val, f.err = fn(runCtx)
	}()
	return f
}

// Done returns a channel closed when the result is ready
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await waits for the result or for ctx to be done, whichever comes first.
// Giving up on the wait doesn't stop the operation.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result blocks until the operation completes
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.val, f.err
}

// Then chains fn to run on the result of f. An error of f skips fn and is passed through.
func Then[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	next := &Future[U]{done: make(chan struct{})}
	go func() {
		defer close(next.done)
		val, err := f.Result()
		if err != nil {
			next.err = err
			return
		}
		next.val, next.err = fn(val)
	}()
	return next
}
