package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig holds every knob the constructors read.
type builderConfig struct {
	idFn IDFn
	rng  *rand.Rand // nil means no randomness
	err  error
}

// newBuilderConfig applies opts in order over the defaults (decimal IDs, no
// rng). Later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the index → vertex ID function. nil is recorded as
// ErrOptionViolation and reported by BuildGraph / Generate.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.err = fmt.Errorf("WithIDScheme(nil): %w", ErrOptionViolation)
			return
		}
		c.idFn = fn
	}
}

// WithRand provides an explicit generator for stochastic constructors.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.err = fmt.Errorf("WithRand(nil): %w", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithSeed creates a generator from seed; use it to lock random topologies.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix): "v0", "v1", ...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
