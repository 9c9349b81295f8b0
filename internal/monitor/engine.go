package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/edgewatch/edgewatch/internal/anomaly"
	"github.com/edgewatch/edgewatch/internal/config"
	"github.com/edgewatch/edgewatch/internal/health"
	"github.com/edgewatch/edgewatch/internal/sampler"
	"github.com/edgewatch/edgewatch/internal/sensor"
	"github.com/edgewatch/edgewatch/internal/sink"
)

// Engine drives one monitor run: per tick it samples a reading, appends it
// to the log, checks it for anomalies and pauses; after the configured
// number of ticks it summarizes the log and flushes the report through
// every sink.
//
// An Engine is single-use — create a new one per run.
type Engine struct {
	cfg      config.MonitorConfig
	sampler  *sampler.Sampler
	detector *anomaly.Detector
	sinks    []sink.Sink

	// newTicker supplies the tick channel and its stop func. Tests swap it
	// for a caller-driven channel so runs do not depend on real time.
	newTicker func(time.Duration) (<-chan time.Time, func())

	runID string
	log   []sensor.Reading
}

// New creates an Engine. The sampler and detector are injected so callers
// control the random source and the bounds table; sinks receive the final
// report in the order given.
func New(cfg config.MonitorConfig, smp *sampler.Sampler, det *anomaly.Detector, sinks ...sink.Sink) *Engine {
	return &Engine{
		cfg:      cfg,
		sampler:  smp,
		detector: det,
		sinks:    sinks,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
		runID: uuid.NewString(),
	}
}

// RunID returns the identifier attached to every log line of this run.
func (e *Engine) RunID() string { return e.runID }

// Run executes the sampling loop and returns the finished report.
//
// With cfg.Readings > 0 the loop runs exactly that many ticks; cancellation
// mid-run abandons the run and returns ctx.Err() without writing anything.
// With cfg.Readings == 0 the loop runs until ctx is cancelled, then
// summarizes whatever was collected.
//
// A sink write failure surfaces as the returned error; there are no retries.
func (e *Engine) Run(ctx context.Context) (*sink.Report, error) {
	slog.Info("monitor: starting run",
		"run_id", e.runID,
		"readings", e.cfg.Readings,
		"tick_interval", e.cfg.TickInterval,
		"sensors", len(e.cfg.Sensors),
	)

	tick, stop := e.newTicker(e.cfg.TickInterval)
	defer stop()

	for i := 1; e.cfg.Readings == 0 || i <= e.cfg.Readings; i++ {
		reading := e.sampler.Generate()
		e.log = append(e.log, reading)

		anomalies, err := e.detector.Detect(reading)
		if err != nil {
			return nil, fmt.Errorf("monitor: tick %d: %w", i, err)
		}

		e.logTick(i, reading, anomalies)

		select {
		case <-ctx.Done():
			if e.cfg.Readings > 0 {
				return nil, ctx.Err()
			}
			// Continuous mode: a cancel is the normal way to end the run.
			return e.finish()
		case <-tick:
		}
	}

	return e.finish()
}

// logTick emits the per-tick console output: one line with every sensor
// value, plus a warning line when anomalies are present.
func (e *Engine) logTick(n int, reading sensor.Reading, anomalies anomaly.Set) {
	args := make([]any, 0, 2*len(e.cfg.Sensors)+4)
	args = append(args, "run_id", e.runID, "n", n)
	for _, name := range e.cfg.Names() {
		args = append(args, name, reading[name])
	}
	slog.Info("reading", args...)

	if len(anomalies) > 0 {
		slog.Warn("anomaly detected", "run_id", e.runID, "n", n, "anomalies", anomalies)
	}
}

// finish summarizes the log and flushes the report through every sink.
func (e *Engine) finish() (*sink.Report, error) {
	if len(e.log) == 0 {
		slog.Warn("monitor: no readings collected — skipping summary", "run_id", e.runID)
		return nil, nil
	}

	summary, err := health.Summarize(e.log, e.cfg.Names())
	if err != nil {
		return nil, fmt.Errorf("monitor: summarize: %w", err)
	}

	rep := &sink.Report{Readings: e.log, Summary: summary}
	for _, s := range e.sinks {
		if err := s.Write(rep); err != nil {
			return nil, fmt.Errorf("monitor: flush report: %w", err)
		}
	}

	slog.Info("monitor: run complete", "run_id", e.runID, "readings", len(e.log))
	return rep, nil
}
