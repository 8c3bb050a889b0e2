package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/coregx/strmatch"
	"github.com/coregx/strmatch/internal/config"
	"github.com/coregx/strmatch/internal/metrics"
	"github.com/coregx/strmatch/internal/printer"
	"github.com/coregx/strmatch/internal/telemetry"
)

const stdinName = "(standard input)"

// engineOptions holds the flags shared by search and compare.
type engineOptions struct {
	workers   int
	threshold int
	metrics   bool
	trace     bool
}

func addEngineFlags(cmd *cobra.Command, opts *engineOptions) {
	f := cmd.Flags()
	f.IntVarP(&opts.workers, "workers", "w", 1, "Goroutines per GSV stage step (0 or 1 runs sequentially)")
	f.IntVar(&opts.threshold, "parallel-threshold", 64*1024, "Minimum input size in bytes before GSV fans out")
	f.BoolVar(&opts.metrics, "metrics", false, "Write Prometheus metrics to stderr on exit")
	f.BoolVar(&opts.trace, "trace", false, "Write OpenTelemetry spans to stderr")
}

// app holds the state of one command invocation.
type app struct {
	cfg    *config.Config
	runID  string
	logger *slog.Logger
	out    *printer.Printer
	errOut io.Writer

	registry *prometheus.Registry
	metrics  *metrics.Collector
	shutdown telemetry.ShutdownFunc
}

// newApp loads the configuration file, applies flags that were set
// explicitly, and sets up logging, metrics and tracing.
func newApp(cmd *cobra.Command, g *globalOptions, e *engineOptions) (*app, error) {
	cfg := config.Default()
	if g.configPath != "" {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if flags.Changed("color") {
		cfg.Color = g.color
	}
	if flags.Changed("workers") {
		cfg.Workers = e.workers
	}
	if flags.Changed("parallel-threshold") {
		cfg.ParallelThreshold = e.threshold
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm, _ = flags.GetString("algorithm")
	}
	if flags.Changed("context") {
		cfg.Context, _ = flags.GetInt("context")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		runID:  uuid.NewString(),
		out:    printer.New(cmd.OutOrStdout(), cfg.Color),
		errOut: cmd.ErrOrStderr(),
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With("run_id", a.runID)

	if e.metrics {
		a.registry = prometheus.NewRegistry()
		a.metrics = metrics.New(a.registry)
	}
	if e.trace {
		shutdown, err := telemetry.Setup(a.errOut, version, a.runID)
		if err != nil {
			return nil, err
		}
		a.shutdown = shutdown
	}

	a.logger.Debug("configuration loaded",
		"config", g.configPath,
		"algorithm", cfg.Algorithm,
		"workers", cfg.Workers,
		"parallel_threshold", cfg.ParallelThreshold,
	)
	return a, nil
}

// close flushes spans and writes metrics.
func (a *app) close(ctx context.Context) error {
	var errs []error
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("telemetry: shutdown: %w", err))
		}
	}
	if a.registry != nil {
		if err := metrics.WriteText(a.errOut, a.registry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// matcher builds a matcher for alg with the engine settings from the
// configuration.
func (a *app) matcher(alg strmatch.Algorithm, pattern string) (strmatch.Matcher, error) {
	cfg := strmatch.DefaultConfig()
	cfg.Workers = a.cfg.Workers
	cfg.ParallelThreshold = a.cfg.ParallelThreshold
	cfg.Logger = a.logger
	if a.metrics != nil {
		cfg.Observer = a.metrics
	}
	return strmatch.NewWithConfig(alg, []byte(pattern), cfg)
}

// input is one named text to search.
type input struct {
	name string
	data []byte
}

// readInput reads path, or standard input for "-".
func readInput(cmd *cobra.Command, path string) (input, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return input{}, fmt.Errorf("read %s: %w", stdinName, err)
		}
		return input{name: stdinName, data: data}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return input{}, fmt.Errorf("read %s: %w", path, err)
	}
	return input{name: path, data: data}, nil
}

// find runs m over in inside a span and records the search.
func (a *app) find(ctx context.Context, alg strmatch.Algorithm, m strmatch.Matcher, in input) ([]int, time.Duration) {
	_, span := telemetry.Tracer().Start(ctx, "find", trace.WithAttributes(
		attribute.String("strmatch.algorithm", alg.String()),
		attribute.String("strmatch.input", in.name),
		attribute.Int("strmatch.bytes", len(in.data)),
	))
	defer span.End()

	start := time.Now()
	offsets := m.FindAll(in.data)
	elapsed := time.Since(start)

	span.SetAttributes(attribute.Int("strmatch.matches", len(offsets)))
	if a.metrics != nil {
		a.metrics.ObserveSearch(alg.String(), len(in.data), len(offsets), elapsed)
	}
	a.logger.Debug("input searched",
		"algorithm", alg.String(),
		"input", in.name,
		"bytes", len(in.data),
		"matches", len(offsets),
		"elapsed", elapsed,
	)
	return offsets, elapsed
}

func inputPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
