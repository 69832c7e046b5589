package recovery

import (
	"fmt"

	"github.com/siftlabs/sift/providers/observability"
)

// Strategy is a named, independent attempt to salvage usable structured data
// from a raw response after primary parsing failed. Attempt reports the
// salvaged items; an empty result or an error means the strategy failed.
type Strategy struct {
	Name    string
	Attempt func(raw string) ([]any, error)
}

// Result reports the outcome of a chain run. AttemptedStrategies counts
// tries up to and including the winner, or all strategies when none won; in
// that case Data is empty and UsedStrategy is "".
type Result struct {
	Data                []any
	UsedStrategy        string
	AttemptedStrategies int
}

// Option configures an [Apply] call.
type Option func(*config)

type config struct {
	observer observability.Logger
}

// WithObserver wires a logger that receives one debug event per attempted
// strategy.
func WithObserver(logger observability.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.observer = logger
		}
	}
}

// Apply tries each strategy in order; the first returning a non-empty item
// set wins. A strategy that errors or panics counts as a failed attempt and
// never aborts the chain.
func Apply(raw string, strategies []Strategy, opts ...Option) Result {
	cfg := config{observer: observability.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	for i, strategy := range strategies {
		data, err := attempt(strategy, raw)
		if err == nil && len(data) > 0 {
			cfg.observer.Debug("recovery strategy succeeded",
				observability.String("strategy", strategy.Name),
				observability.Int("items", len(data)))
			return Result{Data: data, UsedStrategy: strategy.Name, AttemptedStrategies: i + 1}
		}
		cfg.observer.Debug("recovery strategy failed",
			observability.String("strategy", strategy.Name),
			observability.Error(err))
	}
	return Result{Data: []any{}, AttemptedStrategies: len(strategies)}
}

// attempt shields the chain from a panicking strategy.
func attempt(s Strategy, raw string) (data []any, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("strategy %s panicked: %v", s.Name, r)
		}
	}()
	if s.Attempt == nil {
		return nil, fmt.Errorf("strategy %s has no attempt function", s.Name)
	}
	return s.Attempt(raw)
}
