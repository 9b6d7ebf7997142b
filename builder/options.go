// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// options.go - configuration and functional options.
//
// Deterministic defaults:
//   - idFn     = nil (the Store assigns v1, v2, ...)
//   - rng      = nil (stochastic constructors fail with ErrNeedRandSource)
//   - weightFn = DefaultWeightFn
//   - canvas   = 800×600

package builder

import "math/rand"

const (
	defaultWidth  = 800.0
	defaultHeight = 600.0
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	width    float64
	height   float64
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithCanvas sets the area initial positions are spread over.
// Panics unless both sides are positive.
func WithCanvas(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic("builder: WithCanvas requires positive width and height")
	}

	return func(c *builderConfig) {
		c.width = width
		c.height = height
	}
}
