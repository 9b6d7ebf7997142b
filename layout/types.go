// SPDX-License-Identifier: MIT

package layout

import (
	"log/slog"
	"time"
)

// Default physics parameters.
const (
	DefaultWidth       = 800.0
	DefaultHeight      = 600.0
	DefaultRepulsion   = 100.0
	DefaultSpring      = 0.04
	DefaultDamping     = 0.9
	DefaultGravity     = 0.05
	DefaultNoise       = 0.3
	DefaultTick        = 16 * time.Millisecond
	DefaultTemperature = 1.0

	// coolingRate multiplies the temperature after every step.
	coolingRate = 0.95
	// noiseScale maps canvas coordinates into noise space.
	noiseScale = 0.03
	// noiseStep advances the noise time axis per step.
	noiseStep = 0.01
	// minDistance keeps coincident vertices from dividing by zero.
	minDistance = 0.1
)

// Options configures a Layout.
type Options struct {
	Width, Height float64
	Repulsion     float64
	Spring        float64
	Damping       float64
	Gravity       float64
	Noise         float64
	Tick          time.Duration
	Seed          int64
	Logger        *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the parameters Layout starts from.
func DefaultOptions() Options {
	return Options{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Repulsion: DefaultRepulsion,
		Spring:    DefaultSpring,
		Damping:   DefaultDamping,
		Gravity:   DefaultGravity,
		Noise:     DefaultNoise,
		Tick:      DefaultTick,
		Seed:      1,
	}
}

// WithCanvas sets the canvas size. Panics on non-positive dimensions.
func WithCanvas(width, height float64) Option {
	if width <= 0 || height <= 0 {
		panic("layout: WithCanvas requires positive width and height")
	}

	return func(o *Options) { o.Width, o.Height = width, height }
}

// WithRepulsion scales the vertex-vertex repulsion. Panics if negative.
func WithRepulsion(r float64) Option {
	if r < 0 {
		panic("layout: WithRepulsion requires r >= 0")
	}

	return func(o *Options) { o.Repulsion = r }
}

// WithSpring sets the edge spring constant. Panics if negative.
func WithSpring(k float64) Option {
	if k < 0 {
		panic("layout: WithSpring requires k >= 0")
	}

	return func(o *Options) { o.Spring = k }
}

// WithDamping sets the velocity damping factor in [0,1].
func WithDamping(d float64) Option {
	if d < 0 || d > 1 {
		panic("layout: WithDamping requires 0 <= d <= 1")
	}

	return func(o *Options) { o.Damping = d }
}

// WithGravity sets the pull toward the canvas centre. Panics if negative.
func WithGravity(g float64) Option {
	if g < 0 {
		panic("layout: WithGravity requires g >= 0")
	}

	return func(o *Options) { o.Gravity = g }
}

// WithNoise sets the amplitude of the idle drift; 0 disables it.
func WithNoise(n float64) Option {
	if n < 0 {
		panic("layout: WithNoise requires n >= 0")
	}

	return func(o *Options) { o.Noise = n }
}

// WithTick sets the Run interval. Panics on non-positive durations.
func WithTick(d time.Duration) Option {
	if d <= 0 {
		panic("layout: WithTick requires d > 0")
	}

	return func(o *Options) { o.Tick = d }
}

// WithSeed seeds the noise generator.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger sets the logger Run reports to.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
