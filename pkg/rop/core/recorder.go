package core

import (
	"time"

	"github.com/ib-77/stagechain/pkg/rop"
)

// Recorder receives one call per executed stage and one per finished run.
type Recorder interface {
	StageDone(pipeline, stage string, state rop.State, d time.Duration)
	RunDone(pipeline string, state rop.State, d time.Duration)
}

type NopRecorder struct{}

func (NopRecorder) StageDone(string, string, rop.State, time.Duration) {}

func (NopRecorder) RunDone(string, rop.State, time.Duration) {}
