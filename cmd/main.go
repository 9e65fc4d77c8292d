package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	app "github.com/okian/gpa/internal/app"
	"github.com/okian/gpa/internal/config"
	"github.com/okian/gpa/pkg/logger"
	"github.com/okian/gpa/pkg/metrics"
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run(ctx, os.Stdout, os.Stderr)
}

// run prints the report to stdout. Every failure is reported on stderr and
// the process still exits 0.
func run(ctx context.Context, stdout, stderr io.Writer) {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger isn't available yet
		_, _ = io.WriteString(stderr, "failed to load config: "+err.Error()+"\n")
		cfg = config.New(ctx)
	}

	if err := logger.Init(logger.WithWriter(stderr), logger.WithFormat(cfg.LogFormat)); err != nil {
		_, _ = io.WriteString(stderr, "failed to initialize logging: "+err.Error()+"\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	loggerInstance := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to warn", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("warn")
	}

	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithMetrics(metrics.Default()),
	)
	if _, err := svc.Run(ctx, stdout); err != nil {
		loggerInstance.Error(ctx, "report failed", logger.Error(err))
		return
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			loggerInstance.Error(ctx, "metrics export failed", logger.String("path", cfg.MetricsTextfile), logger.Error(err))
			return
		}
		loggerInstance.Debug(ctx, "metrics exported", logger.String("path", cfg.MetricsTextfile))
	}
}
