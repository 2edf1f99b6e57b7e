// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
)

// defaultSeed is used when no WithSeed or WithRand option is given, so an
// unconfigured call is still reproducible.
const defaultSeed int64 = 1

// Option customizes a generator before carving begins.
// Option constructors panic on meaningless input; generators never panic.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	loops   int
	markers maze.Markers
}

func defaultConfig() config {
	return config{
		rng:     rand.New(rand.NewSource(defaultSeed)),
		markers: maze.DefaultMarkers(),
	}
}

func resolve(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds a fresh RNG; the same seed yields the same maze.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLoops knocks out k extra walls after the perfect maze is carved, each
// one closing a loop. k larger than the number of standing inner walls is
// clamped. Panics on negative k.
func WithLoops(k int) Option {
	if k < 0 {
		panic("builder: WithLoops(negative)")
	}
	return func(c *config) {
		c.loops = k
	}
}

// WithMarkers draws the maze in a custom alphabet. Panics if m is invalid.
func WithMarkers(m maze.Markers) Option {
	if err := m.Validate(); err != nil {
		panic("builder: WithMarkers: " + err.Error())
	}
	return func(c *config) {
		c.markers = m
	}
}
