package core

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OptionKey string

const (
	LoggerOptionKey   OptionKey = "logger_options"
	RecorderOptionKey OptionKey = "recorder_options"
	NameOptionKey     OptionKey = "name_options"
	RunIDOptionKey    OptionKey = "run_id_options"
)

type LoggerOptions struct {
	Logger *zap.Logger
}

type RecorderOptions struct {
	Recorder Recorder
}

type NameOptions struct {
	Pipeline string
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func WithRecorder(ctx context.Context, recorder Recorder) context.Context {
	return context.WithValue(ctx, RecorderOptionKey, RecorderOptions{Recorder: recorder})
}

func WithPipelineName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, NameOptionKey, NameOptions{Pipeline: name})
}

// WithRunID pins the id of the next run instead of letting it generate one.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, RunIDOptionKey, id)
}

func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	if defaultLogger == nil {
		return zap.NewNop()
	}
	return defaultLogger
}

func GetRecorder(ctx context.Context, defaultRecorder Recorder) Recorder {
	options, ok := ctx.Value(RecorderOptionKey).(RecorderOptions)
	if ok && options.Recorder != nil {
		return options.Recorder
	}
	if defaultRecorder == nil {
		return NopRecorder{}
	}
	return defaultRecorder
}

func GetPipelineName(ctx context.Context, defaultName string) string {
	options, ok := ctx.Value(NameOptionKey).(NameOptions)
	if ok && options.Pipeline != "" {
		return options.Pipeline
	}
	return defaultName
}

// GetRunID returns the id of the run ctx belongs to, or uuid.Nil outside a run
// unless one was pinned with WithRunID.
func GetRunID(ctx context.Context) uuid.UUID {
	id, ok := ctx.Value(RunIDOptionKey).(uuid.UUID)
	if ok {
		return id
	}
	return uuid.Nil
}
