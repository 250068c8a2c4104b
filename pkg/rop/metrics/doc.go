// Package metrics provides Prometheus instrumentation for chain runs.
//
// A Collector counts runs and stage executions by outcome and observes their
// durations. Attach it to the context a chain runs with:
//
//	registry := prometheus.NewRegistry()
//	collector, err := metrics.New(metrics.Config{Registry: registry})
//	if err != nil {
//		return err
//	}
//	res := c.Run(core.WithRecorder(ctx, collector), input)
//
// Exported series (namespace "stagechain" by default):
//   - pipeline_runs_total{pipeline, outcome}
//   - pipeline_run_duration_seconds{pipeline}
//   - stage_executions_total{pipeline, stage, outcome}
//   - stage_duration_seconds{pipeline, stage}
package metrics
