package solo

import (
	"context"
	"errors"

	"github.com/ib-77/stagechain/pkg/rop"
)

// Succeed ignores its input and always produces value.
func Succeed[In, Out any](value Out) rop.Stage[In, Out] {
	return rop.StageFunc[In, Out](func(context.Context, In) (Out, error) {
		return value, nil
	})
}

// Fail ignores its input and always fails with err.
func Fail[In, Out any](err error) rop.Stage[In, Out] {
	return rop.StageFunc[In, Out](func(context.Context, In) (Out, error) {
		var zero Out
		return zero, err
	})
}

// Try wraps a call returning (Out, error), like a repository call.
func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Stage[In, Out] {
	return rop.StageFunc[In, Out](onTryExecute)
}

// Map wraps a transformation that cannot fail.
func Map[In, Out any](onSuccess func(ctx context.Context, r In) Out) rop.Stage[In, Out] {
	return rop.StageFunc[In, Out](func(ctx context.Context, in In) (Out, error) {
		return onSuccess(ctx, in), nil
	})
}

// Validate passes the input through when validate accepts it and fails with
// errMsg otherwise.
func Validate[T any](validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Stage[T, T] {
	return rop.StageFunc[T, T](func(ctx context.Context, in T) (T, error) {
		if isValid, errMsg := validate(ctx, in); !isValid {
			var zero T
			return zero, errors.New(errMsg)
		}
		return in, nil
	})
}

// FailOnError passes the input through unless maybeErr returns an error.
func FailOnError[T any](maybeErr func(ctx context.Context, in T) error) rop.Stage[T, T] {
	return rop.StageFunc[T, T](func(ctx context.Context, in T) (T, error) {
		if err := maybeErr(ctx, in); err != nil {
			var zero T
			return zero, err
		}
		return in, nil
	})
}

// Tee runs a side effect and passes the input through.
func Tee[T any](sideEffect func(ctx context.Context, r T)) rop.Stage[T, T] {
	return rop.StageFunc[T, T](func(ctx context.Context, in T) (T, error) {
		sideEffect(ctx, in)
		return in, nil
	})
}

// Finally folds an outcome into one value; a handler is required per tag.
func Finally[In, Out any](ctx context.Context, input rop.WithCancel[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context) Out) Out {

	switch input.State() {
	case rop.Succeeded:
		return onSuccess(ctx, input.Result())
	case rop.Cancelled:
		return onCancel(ctx)
	default:
		return onError(ctx, input.Err())
	}
}
