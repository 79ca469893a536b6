package modelstorage

import (
	"log/slog"

	"golang.org/x/time/rate"
)

type options struct {
	logger           *Logger
	diagnostics      bool
	diagnosticLimit  rate.Limit
	diagnosticBurst  int
	metricsCollector MetricsCollector
}

// Option configures a Storage at construction time.
type Option func(*options)

// WithLogger configures the logger that receives diagnostics and debug output.
// Pass nil to discard all log output.
//
// Example with JSON logging:
//
//	logger := modelstorage.NewJSONLogger(slog.LevelWarn)
//	s := modelstorage.New[string](modelstorage.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithDiagnostics enables or disables reporting of ignored operations, such
// as an insert that would leave a gap. Diagnostics are enabled by default.
func WithDiagnostics(enabled bool) Option {
	return func(o *options) {
		o.diagnostics = enabled
	}
}

// WithDiagnosticRate throttles diagnostics to limit events per second with
// the given burst. Dropped diagnostics are summarized in a single record
// once the limiter admits the next one. A burst below 1 is raised to 1.
//
// A UI that re-applies the same stale coordinate on every frame would
// otherwise flood the log.
func WithDiagnosticRate(limit rate.Limit, burst int) Option {
	return func(o *options) {
		o.diagnosticLimit = limit
		o.diagnosticBurst = burst
	}
}

// WithMetricsCollector configures a metrics collector for monitoring mutations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &modelstorage.BasicMetricsCollector{}
//	s := modelstorage.New[string](modelstorage.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserted: %d, Removed: %d\n", stats.Inserted, stats.Removed)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NewLogger(nil),
		diagnostics:      true,
		diagnosticLimit:  rate.Inf,
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
