package maze

import "math/rand"

// DefaultSeed seeds the generator when neither WithRand nor WithSeed is given.
const DefaultSeed int64 = 1

// Option customizes maze construction.
type Option func(*config)

// config is the resolved construction configuration.
type config struct {
	rng      *rand.Rand
	strategy Strategy
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{strategy: StrategyRejection}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// WithRand draws every random choice from r. Panics on nil.
// The maze consumes r during New; do not share r across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed draws every random choice from a generator seeded with seed.
// Seed 0 maps to DefaultSeed, so equal seeds always give equal mazes.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = DefaultSeed
	}
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStrategy selects the construction strategy. New rejects undefined values.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}
