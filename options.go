package chartinfo

import "go.uber.org/zap"

// Option configures a Session.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	s := chartinfo.NewSession(
//	    chartinfo.WithExtendedLanes(),
//	    chartinfo.WithDefaultMultiplier(chartinfo.EnginePsych, 400),
//	)
type Option func(*sessionOptions)

// sessionOptions holds configuration shared by every Session derived from
// NewSession. It is never modified after NewSession returns.
type sessionOptions struct {
	logger      *zap.Logger
	lanes       int            // 4, or 8 for extended-key charts
	multipliers map[Engine]int // Per-engine overrides of the default multiplier
}

// defaultOptions returns the default configuration.
func defaultOptions() *sessionOptions {
	return &sessionOptions{
		logger:      zap.NewNop(),
		lanes:       4,
		multipliers: make(map[Engine]int),
	}
}

// multiplierFor returns the multiplier a freshly loaded chart starts with.
func (o *sessionOptions) multiplierFor(e Engine) int {
	if m, ok := o.multipliers[e]; ok {
		return m
	}
	return e.DefaultMultiplier()
}

// WithLogger sets the logger used for classification and processing
// events. By default nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(o *sessionOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithExtendedLanes counts eight player lanes instead of four.
//
// Psych charts then treat raw lanes 0-7 as the must-hit side and 8-15 as
// the other side; V-Slice directions and Codename ids 0-7 are counted.
func WithExtendedLanes() Option {
	return func(o *sessionOptions) {
		o.lanes = 8
	}
}

// WithDefaultMultiplier overrides the score multiplier a chart of the given
// engine starts with. Non-positive values are ignored.
//
// Example:
//
//	s := chartinfo.NewSession(chartinfo.WithDefaultMultiplier(chartinfo.EngineVSlice, 1000))
func WithDefaultMultiplier(e Engine, multiplier int) Option {
	return func(o *sessionOptions) {
		if multiplier > 0 {
			o.multipliers[e] = multiplier
		}
	}
}
