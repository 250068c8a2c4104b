package rop

import (
	"time"

	"github.com/google/uuid"
)

// State tells which of the three outcome tags an Outcome holds.
type State uint8

const (
	// Empty is the zero State. A finished run never reports it.
	Empty State = iota
	Succeeded
	Failed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return "empty"
	}
}

// Outcome is the result of running a whole chain: a value, an error raised by
// one of the stages, or a cancellation requested by an inspector.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	state     State
}

func Success[T any](r T) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    r,
		state:     Succeeded,
	}
}

// Fail keeps err as is. The pipeline never wraps a stage error.
func Fail[T any](err error) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		state:     Failed,
	}
}

// CancelOutcome carries no payload: cancelling is a decision, not an error.
func CancelOutcome[T any]() Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		state:     Cancelled,
	}
}

// Convert re-types a failed or cancelled outcome, keeping id, time, error and
// state. A successful outcome has a value that cannot be converted, so it
// becomes an empty one.
func Convert[In, Out any](from Outcome[In]) Outcome[Out] {
	if from.state == Succeeded {
		return Outcome[Out]{}
	}
	return Outcome[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		state:     from.state,
	}
}

// Result returns the value of a successful outcome, or the zero T.
func (o Outcome[T]) Result() T {
	return o.result
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) State() State {
	return o.state
}

func (o Outcome[T]) IsSuccess() bool {
	return o.state == Succeeded
}

func (o Outcome[T]) IsFailure() bool {
	return o.state == Failed
}

func (o Outcome[T]) IsCancel() bool {
	return o.state == Cancelled
}

func (o Outcome[T]) IsEmpty() bool {
	return o.state == Empty
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
