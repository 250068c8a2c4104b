package chain

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/stagechain/pkg/rop"
	"github.com/ib-77/stagechain/pkg/rop/core"
)

// ErrConsumed is the failure reported by a second Run on the same Chain.
var ErrConsumed = errors.New("chain already consumed")

const defaultPipelineName = "pipeline"

// runner is the execution side of a node.
type runner[S, E any] interface {
	run(ctx context.Context, input S) rop.Outcome[E]
	size() int
}

// single is a one-stage chain: the head of every chain.
type single[In, Out any] struct {
	step core.Step[In, Out]
}

func (n *single[In, Out]) run(ctx context.Context, input In) rop.Outcome[Out] {
	return core.Locomotive(ctx, n.step, input)
}

func (n *single[In, Out]) size() int {
	return 1
}

// link appends one stage to the chain built before it. rest runs first and
// its output feeds step. n counts the stages of rest plus this one.
type link[S, M, E any] struct {
	rest runner[S, M]
	step core.Step[M, E]
	n    int
}

func (n *link[S, M, E]) run(ctx context.Context, input S) rop.Outcome[E] {
	prev := n.rest.run(ctx, input)
	if !prev.IsSuccess() {
		return rop.Convert[M, E](prev)
	}
	return core.Locomotive(ctx, n.step, prev.Result())
}

func (n *link[S, M, E]) size() int {
	return n.n
}

// Chain is an opaque handle over a typed sequence of stages taking S and
// producing E. It can only be extended with AndThen or executed with Run.
type Chain[S, E any] struct {
	root  runner[S, E]
	spent atomic.Bool
}

// Pipeline starts a chain from one stage and the inspector of its output.
// A nil inspector always continues.
func Pipeline[In, Out any](stage rop.Stage[In, Out], inspect rop.Inspector[Out]) *Chain[In, Out] {
	if rop.IsNil(stage) {
		panic("chain: Pipeline called with a nil stage")
	}
	return &Chain[In, Out]{
		root: &single[In, Out]{
			step: core.Step[In, Out]{Index: 0, Stage: stage, Inspect: inspect},
		},
	}
}

// AndThen returns a new chain that runs c and then stage, whose input type
// must be c's end type. c itself is left untouched and stays runnable.
func AndThen[S, M, E any](c *Chain[S, M], stage rop.Stage[M, E], inspect rop.Inspector[E]) *Chain[S, E] {
	if c == nil {
		panic("chain: AndThen called on a nil chain")
	}
	if rop.IsNil(stage) {
		panic("chain: AndThen called with a nil stage")
	}
	idx := c.root.size()
	return &Chain[S, E]{
		root: &link[S, M, E]{
			rest: c.root,
			step: core.Step[M, E]{Index: idx, Stage: stage, Inspect: inspect},
			n:    idx + 1,
		},
	}
}

// Len returns the number of stages in the chain.
func (c *Chain[S, E]) Len() int {
	return c.root.size()
}

// Run executes the stages in the order they were added, feeding each output
// to the next stage. It stops at the first stage error (Failed, carrying that
// error unchanged) or the first Cancel from an inspector (Cancelled).
//
// Run consumes the chain: a second call fails with ErrConsumed and runs
// nothing. Chains derived with AndThen have their own handle and are not
// consumed along with it, but they share stage instances with it.
func (c *Chain[S, E]) Run(ctx context.Context, input S) rop.Outcome[E] {
	if !c.spent.CompareAndSwap(false, true) {
		return rop.Fail[E](ErrConsumed)
	}

	runID := core.GetRunID(ctx)
	if runID == uuid.Nil {
		runID = uuid.New()
		ctx = core.WithRunID(ctx, runID)
	}

	name := core.GetPipelineName(ctx, defaultPipelineName)
	ctx = core.WithPipelineName(ctx, name)

	logger := core.GetLogger(ctx, nil).With(
		zap.String("pipeline", name),
		zap.String("run_id", runID.String()))
	ctx = core.WithLogger(ctx, logger)

	logger.Debug("pipeline started", zap.Int("stages", c.Len()))
	start := time.Now()

	res := c.root.run(ctx, input)

	d := time.Since(start)
	core.GetRecorder(ctx, nil).RunDone(name, res.State(), d)
	logger.Debug("pipeline finished",
		zap.Stringer("outcome", res.State()),
		zap.Duration("duration", d),
		zap.Error(res.Err()))

	return res
}

// String describes the chain's shape without exposing its stages.
func (c *Chain[S, E]) String() string {
	return fmt.Sprintf("chain[%v -> %v, %d stages]", reflect.TypeOf((*S)(nil)).Elem(), reflect.TypeOf((*E)(nil)).Elem(), c.Len())
}
