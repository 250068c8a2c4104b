package rop

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrStageReused is returned by a stage wrapped with Once when it runs twice.
var ErrStageReused = errors.New("stage already consumed")

// Stage is one fallible transformation from In to Out. A stage is used once
// per execution: after Run it must not be run again.
type Stage[In, Out any] interface {
	Run(ctx context.Context, in In) (Out, error)
}

// StageFunc adapts a function to Stage.
type StageFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f StageFunc[In, Out]) Run(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// Named is implemented by stages that want their own label in logs and metrics.
type Named interface {
	Name() string
}

// NameOf returns the stage's Name, or "stage_<index>" when it has none.
func NameOf(stage any, index int) string {
	if n, ok := stage.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fmt.Sprintf("stage_%d", index)
}

type named[In, Out any] struct {
	Stage[In, Out]
	name string
}

func (n named[In, Out]) Name() string {
	return n.name
}

// WithName labels stage.
func WithName[In, Out any](name string, stage Stage[In, Out]) Stage[In, Out] {
	return named[In, Out]{Stage: stage, name: name}
}

type once[In, Out any] struct {
	stage Stage[In, Out]
	used  atomic.Bool
}

// Once makes single use of stage checkable: the first Run goes through, every
// later one fails with ErrStageReused without touching stage.
func Once[In, Out any](stage Stage[In, Out]) Stage[In, Out] {
	return &once[In, Out]{stage: stage}
}

func (o *once[In, Out]) Run(ctx context.Context, in In) (Out, error) {
	if !o.used.CompareAndSwap(false, true) {
		var zero Out
		return zero, ErrStageReused
	}
	return o.stage.Run(ctx, in)
}

func (o *once[In, Out]) Name() string {
	if n, ok := o.stage.(Named); ok {
		return n.Name()
	}
	return ""
}
