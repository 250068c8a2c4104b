package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ib-77/stagechain/pkg/rop"
	"github.com/ib-77/stagechain/pkg/rop/core"
)

// Collector records chain runs in Prometheus. It implements core.Recorder.
type Collector struct {
	Runs          *prometheus.CounterVec
	RunDuration   *prometheus.HistogramVec
	Stages        *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
}

var _ core.Recorder = (*Collector)(nil)

// New creates the collectors and registers them with cfg.Registry.
func New(cfg Config) (*Collector, error) {
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "stagechain"
	}
	if cfg.Buckets == nil {
		cfg.Buckets = prometheus.DefBuckets
	}

	c := &Collector{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   cfg.Namespace,
				Subsystem:   "pipeline",
				Name:        "runs_total",
				Help:        "Total number of pipeline runs by outcome",
				ConstLabels: cfg.Labels,
			},
			[]string{"pipeline", "outcome"},
		),

		RunDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   cfg.Namespace,
				Subsystem:   "pipeline",
				Name:        "run_duration_seconds",
				Help:        "Time spent running a whole pipeline",
				ConstLabels: cfg.Labels,
				Buckets:     cfg.Buckets,
			},
			[]string{"pipeline"},
		),

		Stages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   cfg.Namespace,
				Subsystem:   "stage",
				Name:        "executions_total",
				Help:        "Total number of stage executions by outcome",
				ConstLabels: cfg.Labels,
			},
			[]string{"pipeline", "stage", "outcome"},
		),

		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   cfg.Namespace,
				Subsystem:   "stage",
				Name:        "duration_seconds",
				Help:        "Time spent in a stage and its inspector",
				ConstLabels: cfg.Labels,
				Buckets:     cfg.Buckets,
			},
			[]string{"pipeline", "stage"},
		),
	}

	// Registration is all or nothing: a failure takes back what was registered.
	collectors := []prometheus.Collector{c.Runs, c.RunDuration, c.Stages, c.StageDuration}
	for i, collector := range collectors {
		if err := cfg.Registry.Register(collector); err != nil {
			for _, registered := range collectors[:i] {
				cfg.Registry.Unregister(registered)
			}
			return nil, err
		}
	}

	return c, nil
}

func (c *Collector) StageDone(pipeline, stage string, state rop.State, d time.Duration) {
	c.Stages.WithLabelValues(pipeline, stage, state.String()).Inc()
	c.StageDuration.WithLabelValues(pipeline, stage).Observe(d.Seconds())
}

func (c *Collector) RunDone(pipeline string, state rop.State, d time.Duration) {
	c.Runs.WithLabelValues(pipeline, state.String()).Inc()
	c.RunDuration.WithLabelValues(pipeline).Observe(d.Seconds())
}
