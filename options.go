package sigslot

import "log/slog"

type options struct {
	name   string
	logger *slog.Logger
}

// Option configures a Signal created with New.
type Option func(*options)

// WithName attaches a name to the signal for log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger routes the signal's debug logging to l. Without it, nothing is
// logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
