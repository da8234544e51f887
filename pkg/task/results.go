package task

import (
	"github.com/hashicorp/go-multierror"
)

// Results is the ordered accumulator of one sequence execution, one entry
// per processed item.
type Results[T any] []Result[T]

// Values returns the successful values in order, skipping failures.
func (rs Results[T]) Values() []T {
	values := make([]T, 0, len(rs))

	for _, r := range rs {
		if r.IsSuccess() {
			values = append(values, r.Result())
		}
	}

	return values
}

// Failed returns the number of failed entries.
func (rs Results[T]) Failed() int {
	count := 0

	for _, r := range rs {
		if r.IsFailure() {
			count++
		}
	}

	return count
}

// Err aggregates all failure entries into a single error, or nil when
// every entry succeeded.
func (rs Results[T]) Err() error {
	var merr *multierror.Error

	for _, r := range rs {
		if r.IsFailure() {
			merr = multierror.Append(merr, r.Err())
		}
	}

	return merr.ErrorOrNil()
}

// FirstErr returns the error of the first failed entry, or nil.
func (rs Results[T]) FirstErr() error {
	for _, r := range rs {
		if r.IsFailure() {
			return r.Err()
		}
	}

	return nil
}
