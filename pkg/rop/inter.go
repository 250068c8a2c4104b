package rop

import "time"

// ResultProvider exposes what a run produced and when the outcome was made.
// Result is the zero T unless the run succeeded.
type ResultProvider[T any] interface {
	Result() T
	CreatedAt() time.Time
}

// WithError adds the failure side: Err is the stage error, untouched, and
// nil for successful, cancelled and empty outcomes.
type WithError[T any] interface {
	ResultProvider[T]
	Err() error
	IsSuccess() bool
}

// WithCancel is the full read-only view of a finished run, the three tags
// plus the zero (empty) value a run never returns. State reports which one
// it is; callers that fold an outcome switch on it rather than on the
// predicates.
type WithCancel[T any] interface {
	WithError[T]
	IsCancel() bool
	IsEmpty() bool
	State() State
}

var _ WithCancel[struct{}] = Outcome[struct{}]{}
