package html2pdf

import (
	"context"
	"log/slog"
	"time"
)

// Ensure LoggingEngine implements Engine.
var _ Engine = (*LoggingEngine)(nil)

// LoggingEngine wraps an Engine with debug logging of browser launches and
// shutdowns.
type LoggingEngine struct {
	next   Engine
	logger *slog.Logger
}

// NewLoggingEngine creates a new LoggingEngine.
func NewLoggingEngine(next Engine, logger *slog.Logger) *LoggingEngine {
	return &LoggingEngine{next: next, logger: logger}
}

// Launch logs the launch configuration and delegates to the wrapped engine.
func (e *LoggingEngine) Launch(ctx context.Context, cfg LaunchConfig) (b Browser, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("browser launch",
			"bin", cfg.Bin,
			"headless", cfg.Headless,
			"no_sandbox", cfg.NoSandbox,
			"flags", cfg.Flags,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	b, err = e.next.Launch(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &loggingBrowser{Browser: b, logger: e.logger}, nil
}

// loggingBrowser logs Close.
type loggingBrowser struct {
	Browser
	logger *slog.Logger
}

func (b *loggingBrowser) Close() (err error) {
	defer func(begin time.Time) {
		b.logger.Debug("browser close", "duration", time.Since(begin), "err", err)
	}(time.Now())
	return b.Browser.Close()
}
