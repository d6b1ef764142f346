package async

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Pool bounds the number of blocking tasks (file writes, image transcoding)
// that run at the same time.
type Pool struct {
	sem  *semaphore.Weighted
	size int64
}

// NewPool creates a pool that runs at most size tasks concurrently.
func NewPool(size int) (*Pool, error) {
	if size <= 0 {
		return nil, ErrInvalidPoolSize
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: int64(size),
	}, nil
}

// DefaultPool returns a pool sized to GOMAXPROCS.
func DefaultPool() *Pool {
	p, _ := NewPool(runtime.GOMAXPROCS(0))
	return p
}

// Size returns the maximum number of concurrently running tasks.
func (p *Pool) Size() int {
	return int(p.size)
}

// Submit schedules fn on the pool and returns a Future for its result.
//
// ctx only governs waiting for a free slot: if it is canceled before the task
// starts, the Future completes with ctx.Err() and fn never runs. Once fn is
// running it receives a context detached from cancellation and always runs to
// completion; there is no way to abort it midway.
func Submit[T any, U any](ctx context.Context, p *Pool, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			var zero U
			f.complete(zero, err)
			return
		}
		defer p.sem.Release(1)

		res, err := run(context.WithoutCancel(ctx), param, fn)
		f.complete(res, err)
	}()

	return f
}
