package core

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.NotNil(t, GetLogger(ctx, nil))
	assert.IsType(t, NopRecorder{}, GetRecorder(ctx, nil))
	assert.Equal(t, "fallback", GetPipelineName(ctx, "fallback"))
	assert.Equal(t, uuid.Nil, GetRunID(ctx))

	fallback := zap.NewExample()
	assert.Same(t, fallback, GetLogger(ctx, fallback))
}

func TestOptions_FromContext(t *testing.T) {
	t.Parallel()

	logger := zap.NewExample()
	rec := &fakeRecorder{}
	id := uuid.New()

	ctx := WithLogger(context.Background(), logger)
	ctx = WithRecorder(ctx, rec)
	ctx = WithPipelineName(ctx, "billing")
	ctx = WithRunID(ctx, id)

	assert.Same(t, logger, GetLogger(ctx, nil))
	assert.Same(t, rec, GetRecorder(ctx, nil))
	assert.Equal(t, "billing", GetPipelineName(ctx, "fallback"))
	assert.Equal(t, id, GetRunID(ctx))
}
