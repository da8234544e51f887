package task

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

var _ WithError[int] = Result[int]{}

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success(42)
	if !r.IsSuccess() || r.IsFailure() || r.Result() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v, err=%v", r.IsSuccess(), r.Result(), r.Err())
	}
	if !r.HasResult() {
		t.Fatalf("success must carry a result")
	}
	if r.Id() == uuid.Nil {
		t.Fatalf("expected non-zero id")
	}
	if r.CreatedAt().IsZero() {
		t.Fatalf("expected creation time to be set")
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Fail[int](boom)
	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("expected failure, got: success=%v", r.IsSuccess())
	}
	if !errors.Is(r.Err(), boom) {
		t.Fatalf("expected cause to be kept, got: %v", r.Err())
	}
	if r.HasResult() {
		t.Fatalf("failure must not carry a result")
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var r Result[int]
	if !r.IsEmpty() {
		t.Fatalf("zero result must be empty")
	}
	if Success(1).IsEmpty() || Fail[int](errors.New("x")).IsEmpty() {
		t.Fatalf("constructed results must not be empty")
	}
}
