package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/star/sez2ecef/internal/cli"
	"github.com/star/sez2ecef/internal/metrics"
)

// logConfig selects the stderr log handler.
type logConfig struct {
	Level  slog.Level
	Format string
}

func main() {
	logger := newLogger(os.Stderr, loadLogConfig())

	var collector *metrics.Collector
	metricsFile := loadMetricsFile(logger)
	if metricsFile != "" {
		c, err := metrics.NewCollector(nil)
		if err != nil {
			logger.Error("failed to register metrics", "error", err)
		} else {
			collector = c
		}
	}

	code := cli.Run(context.Background(), os.Args[1:], os.Stdout, cli.Options{
		Prog:    filepath.Base(os.Args[0]),
		Logger:  logger,
		Metrics: collector,
	})

	if collector != nil {
		if err := collector.WriteTextfile(metricsFile); err != nil {
			logger.Error("failed to write metrics file", "error", err)
		}
	}

	os.Exit(code)
}

func newLogger(w io.Writer, cfg logConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func loadLogConfig() logConfig {
	cfg := logConfig{
		Level:  slog.LevelWarn,
		Format: "json",
	}

	// The logger does not exist yet, so bad values are reported once it does.
	var invalid []string

	if v := os.Getenv("SEZ2ECEF_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err != nil {
			invalid = append(invalid, "SEZ2ECEF_LOG_LEVEL="+v)
		} else {
			cfg.Level = lvl
		}
	}

	if v := os.Getenv("SEZ2ECEF_LOG_FORMAT"); v != "" {
		switch f := strings.ToLower(v); f {
		case "json", "text":
			cfg.Format = f
		default:
			invalid = append(invalid, "SEZ2ECEF_LOG_FORMAT="+v)
		}
	}

	if len(invalid) > 0 {
		newLogger(os.Stderr, cfg).Warn("invalid log configuration, using defaults", "values", invalid)
	}
	return cfg
}

func loadMetricsFile(logger *slog.Logger) string {
	path := os.Getenv("SEZ2ECEF_METRICS_FILE")
	if path == "" {
		return ""
	}
	if dir := filepath.Dir(path); dir != "." {
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			logger.Warn("invalid SEZ2ECEF_METRICS_FILE directory, metrics disabled", "value", path)
			return ""
		}
	}
	logger.Debug("metrics config", "metrics_file", path)
	return path
}
