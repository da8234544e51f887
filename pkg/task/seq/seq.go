package seq

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/karsk/taskseq/pkg/task"
)

var (
	// ErrNilTask is returned by Execute when the task function is nil.
	ErrNilTask = errors.New("taskseq: nil task function")

	// ErrNilDone is returned by Execute when the completion callback is nil.
	ErrNilDone = errors.New("taskseq: nil completion callback")
)

// Func is a unit of asynchronous work invoked once per parameter, strictly
// in list order. It must eventually call complete exactly once, from any
// goroutine. The runner does not enforce a timeout: a Func that never
// completes stalls the whole sequence.
type Func[P, R any] func(ctx context.Context, index int, param P, complete CompleteFunc[R])

// CompleteFunc reports the outcome of one task invocation. It is usable
// exactly once; a second call panics.
type CompleteFunc[R any] func(value R, err error)

// DoneFunc receives the accumulated results when the sequence finishes.
// It is invoked exactly once, never with a top-level error: per-task
// failures are wrapped into the accumulator instead.
type DoneFunc[R any] func(results task.Results[R])

// Execute drives each parameter through fn, one at a time, in order, never
// concurrently, and invokes done exactly once when the sequence finishes
// or, with stopOnError, right after the first failure. A failed step is
// recorded in the accumulator as task.Fail with a task.StepError carrying
// the failing index and the original cause.
//
// Execute validates its arguments before any task is scheduled and then
// returns immediately; the sequence runs on its own goroutine, so done
// never fires on the caller's stack, not even for an empty parameter list.
//
// If ctx ends between steps, no further task is scheduled and done fires
// with the entries produced so far. A task already in flight is never
// interrupted.
func Execute[P, R any](ctx context.Context, params []P, stopOnError bool,
	fn Func[P, R], done DoneFunc[R]) error {

	if fn == nil {
		return ErrNilTask
	}

	if done == nil {
		return ErrNilDone
	}

	if ctx == nil {
		ctx = context.Background()
	}

	go run(ctx, params, stopOnError, fn, done)

	return nil
}

// Run is the blocking form of Execute: it waits for the sequence to finish
// and returns the accumulator directly.
func Run[P, R any](ctx context.Context, params []P, stopOnError bool,
	fn Func[P, R]) (task.Results[R], error) {

	var results task.Results[R]

	finished := make(chan struct{})

	err := Execute(ctx, params, stopOnError, fn, func(rs task.Results[R]) {
		results = rs
		close(finished)
	})
	if err != nil {
		return nil, err
	}

	<-finished

	return results, nil
}

// Lift adapts a plain (value, error) function into a Func that completes
// synchronously.
func Lift[P, R any](fn func(ctx context.Context, param P) (R, error)) Func[P, R] {
	return func(ctx context.Context, _ int, param P, complete CompleteFunc[R]) {
		value, err := fn(ctx, param)
		complete(value, err)
	}
}

// run is the trampoline: one goroutine, one loop iteration per step, so
// stack depth stays flat no matter how long the parameter list is.
func run[P, R any](ctx context.Context, params []P, stopOnError bool,
	fn Func[P, R], done DoneFunc[R]) {

	acc := make(task.Results[R], 0, len(params))

	for i, p := range params {
		if ctx.Err() != nil {
			break
		}

		value, err := await(ctx, i, p, fn)
		if err != nil {
			acc = append(acc, task.Fail[R](task.WrapStep(i, err)))

			if stopOnError {
				break
			}

			continue
		}

		acc = append(acc, task.Success(value))
	}

	done(acc)
}

// await invokes fn for one parameter and blocks until its single-use
// completion handler fires. The handler may be called from any goroutine.
func await[P, R any](ctx context.Context, index int, param P,
	fn Func[P, R]) (R, error) {

	type outcome struct {
		value R
		err   error
	}

	ch := make(chan outcome, 1)

	var fired atomic.Bool

	fn(ctx, index, param, func(value R, err error) {
		if !fired.CompareAndSwap(false, true) {
			panic("taskseq: completion handler called twice")
		}

		ch <- outcome{value: value, err: err}
	})

	o := <-ch

	return o.value, o.err
}
