package modelstorage

import "golang.org/x/time/rate"

// diagnostics reports ignored operations to the logger.
type diagnostics struct {
	logger  *Logger
	enabled bool
	limiter *rate.Limiter // nil if unlimited
	dropped int
}

func newDiagnostics(o options) *diagnostics {
	d := &diagnostics{
		logger:  o.logger,
		enabled: o.diagnostics,
	}
	if o.diagnosticLimit != rate.Inf {
		d.limiter = rate.NewLimiter(o.diagnosticLimit, max(o.diagnosticBurst, 1))
	}
	return d
}

func (d *diagnostics) report(op string, err error) {
	if !d.enabled {
		return
	}
	if d.limiter != nil && !d.limiter.Allow() {
		d.dropped++
		return
	}
	if d.dropped > 0 {
		d.logger.LogSuppressed(d.dropped)
		d.dropped = 0
	}
	d.logger.LogRejected(op, err)
}
