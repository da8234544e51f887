// Package seq runs a list of parameters through an asynchronous task
// function one at a time, strictly in order, never concurrently.
//
// Key operations:
// - Execute: drive the sequence asynchronously, delivering results via a
//   completion callback that fires exactly once
// - Run: blocking form of Execute, returning the accumulator directly
// - Lift: adapt a plain (value, error) function into a task Func
//
// Each processed parameter yields one accumulator entry: the successful
// value, or a failure wrapped with its index (task.StepError). With
// stopOnError the sequence halts right after the first failure and the
// accumulator ends at that entry. The runner never reports a top-level
// error through the callback.
//
// Steps are driven by a single goroutine looping over the list, so long
// sequences never grow the call stack and the caller is never re-entered
// synchronously.
package seq
