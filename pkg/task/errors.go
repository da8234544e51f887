package task

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// StepError marks the failure of a single item in a sequence. It carries
// the zero-based index of the item and the original cause, so callers can
// tell which of the N items failed and still inspect the cause with
// errors.Is / errors.As.
type StepError struct {
	Index int
	Err   error
}

// WrapStep wraps cause into a StepError for the given index. The cause is
// captured with its stack trace; its identity is preserved through Unwrap.
func WrapStep(index int, cause error) *StepError {
	return &StepError{
		Index: index,
		Err:   goerrors.Wrap(cause, 1),
	}
}

func (e *StepError) Error() string {
	return fmt.Sprintf("error on item %d: %v", e.Index, e.Err)
}

// Unwrap returns the wrapped cause.
func (e *StepError) Unwrap() error {
	return e.Err
}

// StepStack returns the callstack captured when the step failure was
// wrapped, or an empty string if err is not a wrapped step failure.
func StepStack(err error) string {
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		return ""
	}

	var traced *goerrors.Error
	if errors.As(stepErr.Err, &traced) {
		return traced.ErrorStack()
	}

	return ""
}
