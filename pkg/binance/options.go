package binance

import "time"

// Option is a functional option for a single query.
type Option func(*Options)

// Options holds the optional parameters accepted by query endpoints.
type Options struct {
	Limit     int
	FromID    int64
	StartTime time.Time
	EndTime   time.Time
}

// WithLimit bounds the number of rows returned.
func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = limit
	}
}

// WithFromID starts the result set at the given trade identifier.
func WithFromID(id int64) Option {
	return func(o *Options) {
		o.FromID = id
	}
}

// WithTimeRange restricts the result set to the given window.
func WithTimeRange(start, end time.Time) Option {
	return func(o *Options) {
		o.StartTime = start
		o.EndTime = end
	}
}

// ApplyOptions folds the given options into an Options value.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
