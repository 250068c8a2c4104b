package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/stagechain/pkg/rop"
)

type stageCall struct {
	pipeline, stage string
	state           rop.State
}

type fakeRecorder struct {
	mu     sync.Mutex
	stages []stageCall
	runs   []rop.State
}

func (r *fakeRecorder) StageDone(pipeline, stage string, state rop.State, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, stageCall{pipeline: pipeline, stage: stage, state: state})
}

func (r *fakeRecorder) RunDone(_ string, state rop.State, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, state)
}

func step[In, Out any](fn func(context.Context, In) (Out, error), inspect rop.Inspector[Out]) Step[In, Out] {
	return Step[In, Out]{Index: 0, Stage: rop.StageFunc[In, Out](fn), Inspect: inspect}
}

func TestLocomotive_Success(t *testing.T) {
	t.Parallel()

	inspected := 0
	res := Locomotive(context.Background(),
		step(func(_ context.Context, in int) (int, error) { return in + 1, nil },
			rop.Observe(func(_ context.Context, out int) { inspected = out })),
		41)

	require.True(t, res.IsSuccess())
	assert.Equal(t, 42, res.Result())
	assert.Equal(t, 42, inspected)
}

func TestLocomotive_FailureSkipsInspector(t *testing.T) {
	t.Parallel()

	stageErr := errors.New("boom")
	inspected := false
	res := Locomotive(context.Background(),
		step(func(context.Context, int) (int, error) { return 0, stageErr },
			rop.Observe(func(context.Context, int) { inspected = true })),
		1)

	require.True(t, res.IsFailure())
	assert.Same(t, stageErr, res.Err())
	assert.False(t, inspected)
}

func TestLocomotive_CancelDropsOutput(t *testing.T) {
	t.Parallel()

	res := Locomotive(context.Background(),
		step(func(context.Context, int) (string, error) { return "out", nil },
			func(context.Context, string) rop.Signal { return rop.Cancel }),
		1)

	require.True(t, res.IsCancel())
	assert.Equal(t, "", res.Result())
	assert.NoError(t, res.Err())
}

func TestLocomotive_RecoversPanics(t *testing.T) {
	t.Parallel()

	res := Locomotive(context.Background(),
		step(func(context.Context, int) (int, error) { panic("stage blew up") }, nil),
		1)
	require.True(t, res.IsFailure())
	var pe *rop.PanicError
	require.ErrorAs(t, res.Err(), &pe)
	assert.Equal(t, "stage_0", pe.Stage)
	assert.Equal(t, "stage blew up", pe.Value)

	res = Locomotive(context.Background(),
		step(func(_ context.Context, in int) (int, error) { return in, nil },
			func(context.Context, int) rop.Signal { panic("inspector blew up") }),
		1)
	require.True(t, res.IsFailure())
	require.ErrorAs(t, res.Err(), &pe)
	assert.Equal(t, "inspector blew up", pe.Value)
}

func TestLocomotive_RecordsAndLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	rec := &fakeRecorder{}

	ctx := WithLogger(context.Background(), zap.New(core))
	ctx = WithRecorder(ctx, rec)
	ctx = WithPipelineName(ctx, "orders")

	s := Step[int, int]{
		Index: 3,
		Stage: rop.WithName[int, int]("validate", rop.StageFunc[int, int](func(context.Context, int) (int, error) {
			return 0, errors.New("invalid")
		})),
	}
	res := Locomotive(ctx, s, 1)
	require.True(t, res.IsFailure())

	require.Len(t, rec.stages, 1)
	assert.Equal(t, stageCall{pipeline: "orders", stage: "validate", state: rop.Failed}, rec.stages[0])
	assert.Empty(t, rec.runs)

	entries := logs.FilterMessage("stage done").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "validate", fields["stage"])
	assert.EqualValues(t, 3, fields["index"])
	assert.Equal(t, "failed", fields["outcome"])
	assert.Equal(t, "invalid", fields["error"])
}

type panickyName struct{}

func (panickyName) Name() string { panic("name blew up") }

func (panickyName) Run(context.Context, int) (int, error) { return 1, nil }

func TestLocomotive_RecoversPanickingName(t *testing.T) {
	t.Parallel()

	rec := &fakeRecorder{}
	ctx := WithRecorder(context.Background(), rec)

	var res rop.Outcome[int]
	require.NotPanics(t, func() {
		res = Locomotive(ctx, Step[int, int]{Index: 2, Stage: panickyName{}}, 0)
	})
	require.True(t, res.IsFailure())
	var pe *rop.PanicError
	require.ErrorAs(t, res.Err(), &pe)
	assert.Equal(t, "stage_2", pe.Stage)
	assert.Equal(t, "name blew up", pe.Value)

	require.Len(t, rec.stages, 1)
	assert.Equal(t, "stage_2", rec.stages[0].stage)
	assert.Equal(t, rop.Failed, rec.stages[0].state)
}
