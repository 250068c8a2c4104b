package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ib-77/stagechain/pkg/rop"
)

// Step is one node of a chain: a stage, the inspector paired with it and the
// stage's position.
type Step[In, Out any] struct {
	Index   int
	Stage   rop.Stage[In, Out]
	Inspect rop.Inspector[Out]
}

// Locomotive drives a single step: it runs the stage on input, then the
// inspector on the stage's output. A stage error gives a failed outcome with
// that very error, a Cancel gives a cancelled outcome and drops the output.
// Panics in either call are reported as a failed outcome with *rop.PanicError.
func Locomotive[In, Out any](ctx context.Context, step Step[In, Out], input In) (res rop.Outcome[Out]) {
	// Name() is user code and may panic too, so it is resolved under recover.
	name := rop.NameOf(nil, step.Index)
	logger := GetLogger(ctx, nil)
	recorder := GetRecorder(ctx, nil)
	pipeline := GetPipelineName(ctx, "")

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = rop.Fail[Out](&rop.PanicError{Stage: name, Value: p})
			logger.Warn("stage panicked",
				zap.String("stage", name),
				zap.Int("index", step.Index),
				zap.Any("panic", p))
		}
		d := time.Since(start)
		recorder.StageDone(pipeline, name, res.State(), d)
		logger.Debug("stage done",
			zap.String("stage", name),
			zap.Int("index", step.Index),
			zap.Stringer("outcome", res.State()),
			zap.Duration("duration", d),
			zap.Error(res.Err()))
	}()

	name = rop.NameOf(step.Stage, step.Index)

	out, err := step.Stage.Run(ctx, input)
	if err != nil {
		return rop.Fail[Out](err)
	}

	if step.Inspect.Inspect(ctx, out) == rop.Cancel {
		return rop.CancelOutcome[Out]()
	}

	return rop.Success(out)
}
