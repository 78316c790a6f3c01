package search

import (
	"runtime"
	"time"
)

// Option configures a search.
type Option func(*options)

type options struct {
	path      bool
	deadline  time.Duration
	heuristic Heuristic
	workers   int
}

func defaultOptions() options {
	return options{
		path:      true,
		heuristic: Manhattan,
		workers:   runtime.GOMAXPROCS(0),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPath controls whether the route is reconstructed. Disabling it saves
// the predecessor table when only the cost matters.
func WithPath(enabled bool) Option {
	return func(o *options) { o.path = enabled }
}

// WithDeadline bounds each individual search. Zero disables the deadline.
func WithDeadline(d time.Duration) Option {
	return func(o *options) { o.deadline = d }
}

// WithHeuristic replaces [Manhattan]. The heuristic must never overestimate
// the remaining number of steps or results stop being optimal. A nil
// heuristic is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *options) {
		if h != nil {
			o.heuristic = h
		}
	}
}

// WithWorkers sets the number of concurrent searches run by [MultiSource].
// Values below one select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}
