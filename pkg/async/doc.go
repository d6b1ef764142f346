// Package async provides small generic helpers for running blocking work off the
// caller's goroutine and waiting for its completion.
//
// The package is centred around the generic type Future that represents the eventual
// result of an asynchronous operation. Async starts the supplied function in its own
// goroutine; Submit does the same but first acquires a slot on a Pool, which bounds how
// many CPU-heavy or blocking tasks run at once. The caller then waits with Await, with
// AwaitWithTimeout, or polls with IsComplete. WaitAll collects the results of several
// futures.
//
// # Usage
//
//	pool, err := async.NewPool(4)
//	if err != nil {
//	    return err
//	}
//
//	future := async.Submit(ctx, pool, payload, func(_ context.Context, b []byte) (string, error) {
//	    return transcode(b)
//	})
//
//	// do other work …
//	path, err := future.Await()
//
// # Cancellation
//
// Cancellation is only observed before a task starts. Submit gives up waiting for a
// pool slot when ctx is done; once the task runs, it sees a context without
// cancellation and always runs to completion. AwaitWithTimeout stops waiting, not the
// task.
//
// # Error Handling
//
// Futures return the error produced by the user callback. A panic inside the callback
// is recovered and reported as ErrTaskPanicked, so a Future always completes.
package async
