package task

import (
	"errors"
	"testing"
)

func TestResults_Values(t *testing.T) {
	t.Parallel()

	rs := Results[int]{Success(1), Fail[int](errors.New("x")), Success(3)}

	values := rs.Values()
	if len(values) != 2 || values[0] != 1 || values[1] != 3 {
		t.Fatalf("expected [1 3], got: %v", values)
	}
	if rs.Failed() != 1 {
		t.Fatalf("expected 1 failure, got %d", rs.Failed())
	}
}

func TestResults_ErrAggregatesAllFailures(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	second := errors.New("second")
	rs := Results[int]{Fail[int](first), Success(2), Fail[int](second)}

	aggErr := rs.Err()
	if aggErr == nil {
		t.Fatalf("expected aggregate error")
	}
	if !errors.Is(aggErr, first) || !errors.Is(aggErr, second) {
		t.Fatalf("aggregate must keep every cause, got: %v", aggErr)
	}
	if parts := GetErrors(aggErr); len(parts) != 2 {
		t.Fatalf("expected 2 component errors, got %d: %v", len(parts), parts)
	}
}

func TestResults_ErrNilOnAllSuccess(t *testing.T) {
	t.Parallel()

	rs := Results[string]{Success("a"), Success("b")}
	if err := rs.Err(); err != nil {
		t.Fatalf("expected nil, got: %v", err)
	}
	if err := rs.FirstErr(); err != nil {
		t.Fatalf("expected nil FirstErr, got: %v", err)
	}
}

func TestResults_FirstErr(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	rs := Results[int]{Success(1), Fail[int](first), Fail[int](errors.New("second"))}
	if !errors.Is(rs.FirstErr(), first) {
		t.Fatalf("expected first failure, got: %v", rs.FirstErr())
	}
}
