package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edgewatch/edgewatch/internal/anomaly"
	"github.com/edgewatch/edgewatch/internal/config"
	"github.com/edgewatch/edgewatch/internal/health"
	"github.com/edgewatch/edgewatch/internal/monitor"
	"github.com/edgewatch/edgewatch/internal/sampler"
	"github.com/edgewatch/edgewatch/internal/sink"
)

func main() {
	configPath := flag.String("config", "", "path to config file (empty = built-in defaults)")
	seed := flag.Int64("seed", 0, "override the sampler seed (0 = use config, then time)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("edgewatch starting", "config", *configPath)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Monitor.Seed = *seed
	}

	slog.Info("config loaded",
		"readings", cfg.Monitor.Readings,
		"tick_interval", cfg.Monitor.TickInterval,
		"sensors", len(cfg.Monitor.Sensors),
		"output", cfg.Monitor.OutputPath,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	seedVal := cfg.Monitor.Seed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedVal)) //nolint:gosec // simulation, not crypto

	smp := sampler.New(cfg.Monitor.Sensors, rng)
	det := anomaly.New(cfg.Monitor.BoundsByName())

	sinks := []sink.Sink{&sink.JSONSink{Path: cfg.Monitor.OutputPath}}
	if cfg.Monitor.PromOutputPath != "" {
		sinks = append(sinks, &sink.PromSink{Path: cfg.Monitor.PromOutputPath})
	}

	// Watch the config file so bounds edits apply to a running monitor.
	if *configPath != "" {
		go func() {
			if err := config.WatchBounds(ctx, *configPath, det.SetBounds); err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}

	eng := monitor.New(cfg.Monitor, smp, det, sinks...)
	rep, err := eng.Run(ctx)
	if err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
	if rep == nil {
		// Cancelled before anything was collected — nothing to report.
		return
	}

	// Final health summary as a pretty-printed block for the console.
	if err := printSummary(os.Stdout, rep.Summary); err != nil {
		slog.Error("failed to print summary", "err", err)
	}

	slog.Info("report written", "path", cfg.Monitor.OutputPath, "readings", len(rep.Readings))
}

// printSummary renders the health summary as a 2-space-indented JSON block.
func printSummary(w io.Writer, s health.Summary) error {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
