package main

import (
	"context"
	"fmt"
	"log"

	"github.com/amirhossein-jamali/logging-demo/internal/domain/port/core"
	"github.com/amirhossein-jamali/logging-demo/internal/domain/usecase/demo"
	"github.com/amirhossein-jamali/logging-demo/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/logging-demo/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/logging-demo/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if err := run(context.Background(), cfg, timeProvider.NewRealTimeProvider()); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

// run configures the sinks, walks through the demo and releases the sinks
func run(ctx context.Context, cfg *config.Config, tp core.TimeProvider) (err error) {
	appLogger, err := newLogger(cfg, tp)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := appLogger.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close sinks: %w", closeErr)
		}
	}()

	return demo.NewRunner(appLogger).Run(ctx)
}

// newLogger builds the process-wide logger from the configured sinks
func newLogger(cfg *config.Config, tp core.TimeProvider) (*logger.ZapLogger, error) {
	appLogger := logger.NewZapLogger(logger.WithTimeProvider(tp))

	level, err := core.ParseLogLevel(cfg.Sink.Level)
	if err != nil {
		return nil, err
	}
	if _, err := appLogger.AddSink(logger.SinkConfig{
		Path:       cfg.Sink.Path,
		Level:      level,
		Colorize:   cfg.Sink.Colorize,
		TimeLayout: cfg.Sink.TimeLayout,
	}); err != nil {
		return nil, fmt.Errorf("add file sink: %w", err)
	}

	if cfg.Console.Enabled {
		consoleLevel, err := core.ParseLogLevel(cfg.Console.Level)
		if err != nil {
			_ = appLogger.Close()
			return nil, err
		}
		if _, err := appLogger.AddSink(logger.SinkConfig{
			Path:     logger.SinkStderr,
			Level:    consoleLevel,
			Colorize: cfg.Console.Colorize,
		}); err != nil {
			_ = appLogger.Close()
			return nil, fmt.Errorf("add console sink: %w", err)
		}
	}

	return appLogger, nil
}
