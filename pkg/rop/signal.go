package rop

import "context"

// Signal is what an inspector decides after a stage succeeded.
type Signal uint8

const (
	// Continue is the zero Signal, so a callback with nothing to say continues.
	Continue Signal = iota
	Cancel
)

func (s Signal) String() string {
	if s == Cancel {
		return "cancel"
	}
	return "continue"
}

// Inspector looks at the output of the stage it is paired with and decides
// whether the chain goes on. It must not keep or modify the value: the same
// value becomes the next stage's input.
type Inspector[T any] func(ctx context.Context, out T) Signal

// Inspect calls i. A nil inspector has no opinion and continues.
func (i Inspector[T]) Inspect(ctx context.Context, out T) Signal {
	if i == nil {
		return Continue
	}
	return i(ctx, out)
}

// Observe turns a callback that returns nothing into an inspector that always
// continues.
func Observe[T any](fn func(ctx context.Context, out T)) Inspector[T] {
	return func(ctx context.Context, out T) Signal {
		if fn != nil {
			fn(ctx, out)
		}
		return Continue
	}
}

func Noop[T any]() Inspector[T] {
	return func(context.Context, T) Signal { return Continue }
}

// CancelIf cancels the run when cond holds for the output.
func CancelIf[T any](cond func(ctx context.Context, out T) bool) Inspector[T] {
	return func(ctx context.Context, out T) Signal {
		if cond(ctx, out) {
			return Cancel
		}
		return Continue
	}
}
