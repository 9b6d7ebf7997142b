// SPDX-License-Identifier: MIT

package layout

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/metrics"
)

// Layout holds the annealing state between steps. Safe for concurrent use.
type Layout struct {
	mu          sync.Mutex
	opts        Options
	noise       opensimplex.Noise
	temperature float64
	t           float64
	iterations  int
}

// force is an accumulated 2D force.
type force struct {
	fx, fy float64
}

// New creates a Layout at full temperature.
func New(opts ...Option) *Layout {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return &Layout{
		opts:        o,
		noise:       opensimplex.New(o.Seed),
		temperature: DefaultTemperature,
	}
}

// Temperature returns the current force limit.
func (l *Layout) Temperature() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.temperature
}

// Iterations returns the number of steps taken so far.
func (l *Layout) Iterations() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.iterations
}

// Reheat restores the initial temperature.
func (l *Layout) Reheat() {
	l.mu.Lock()
	l.temperature = DefaultTemperature
	l.mu.Unlock()
}

// Step advances the layout once and writes positions and velocities back to
// s. It returns the average force magnitude before temperature limiting.
func (l *Layout) Step(s *graph.Store) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	vertices := s.Vertices()
	n := len(vertices)
	if n == 0 {
		return 0
	}
	edges := s.Edges()

	index := make(map[string]int, n)
	for i, v := range vertices {
		index[v.ID] = i
	}
	forces := make([]force, n)

	w, h := l.opts.Width, l.opts.Height
	k := math.Sqrt(w * h / float64(n))
	cx, cy := w/2, h/2

	// Gravity and pairwise repulsion.
	for i := range vertices {
		a := &vertices[i]
		dx, dy := cx-a.X, cy-a.Y
		d := math.Max(minDistance, math.Hypot(dx, dy))
		g := l.opts.Gravity * (d / math.Min(w, h))
		forces[i].fx += dx * g
		forces[i].fy += dy * g

		for j := i + 1; j < n; j++ {
			b := &vertices[j]
			dx, dy := a.X-b.X, a.Y-b.Y
			d := math.Hypot(dx, dy)
			if d < minDistance {
				// coincident: separate along a fixed axis
				dx, dy, d = minDistance, 0, minDistance
			}
			r := (k * k / d) * l.opts.Repulsion / 100
			dx, dy = dx/d, dy/d
			forces[i].fx += dx * r
			forces[i].fy += dy * r
			forces[j].fx -= dx * r
			forces[j].fy -= dy * r
		}
	}

	// Springs. Parallel edges add their weights.
	type pair struct{ a, b int }
	weights := make(map[pair]float64, len(edges))
	pairs := make([]pair, 0, len(edges))
	for _, e := range edges {
		a, okA := index[e.Source]
		b, okB := index[e.Target]
		if !okA || !okB || a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		p := pair{a, b}
		if _, seen := weights[p]; !seen {
			pairs = append(pairs, p)
		}
		weights[p] += e.Weight
	}
	for _, p := range pairs {
		a, b := &vertices[p.a], &vertices[p.b]
		dx, dy := b.X-a.X, b.Y-a.Y
		d := math.Max(minDistance, math.Hypot(dx, dy))
		f := d * d / k * l.opts.Spring * (1 + weights[p])
		dx, dy = dx/d, dy/d
		forces[p.a].fx += dx * f
		forces[p.a].fy += dy * f
		forces[p.b].fx -= dx * f
		forces[p.b].fy -= dy * f
	}

	// Integrate.
	padding := math.Min(k*0.5, math.Min(w, h)/10)
	energy := 0.0
	for i := range vertices {
		v := &vertices[i]
		if v.Pinned() {
			_ = s.SetVelocity(v.ID, 0, 0)
			_ = s.SetPosition(v.ID, *v.FX, *v.FY)
			continue
		}

		f := forces[i]
		if l.opts.Noise > 0 {
			f.fx += l.opts.Noise * l.noise.Eval3(v.X*noiseScale, v.Y*noiseScale, l.t)
			f.fy += l.opts.Noise * l.noise.Eval3(v.X*noiseScale+100, v.Y*noiseScale+100, l.t)
		}

		mag := math.Hypot(f.fx, f.fy)
		energy += mag
		if mag > 0 {
			scale := math.Min(mag, l.temperature) / mag
			f.fx *= scale
			f.fy *= scale
		}

		vx := (v.VX + f.fx) * l.opts.Damping
		vy := (v.VY + f.fy) * l.opts.Damping
		x := clamp(v.X+vx, padding, w-padding)
		y := clamp(v.Y+vy, padding, h-padding)

		// A vertex removed since Vertices() was read is simply skipped.
		_ = s.SetVelocity(v.ID, vx, vy)
		_ = s.SetPosition(v.ID, x, y)
	}

	l.temperature *= coolingRate
	l.t += noiseStep
	l.iterations++

	avg := energy / float64(n)
	metrics.LayoutEnergy.Set(avg)

	return avg
}

// Run steps the layout every Tick until ctx is cancelled, re-heating on
// structural mutations of s. It returns ctx.Err().
func (l *Layout) Run(ctx context.Context, s *graph.Store) error {
	unsubscribe := s.Subscribe(func(graph.Mutation) { l.Reheat() })
	defer unsubscribe()

	ticker := time.NewTicker(l.opts.Tick)
	defer ticker.Stop()

	l.opts.Logger.Debug("layout started", "tick", l.opts.Tick, "vertices", s.VertexCount())
	for {
		select {
		case <-ctx.Done():
			l.opts.Logger.Debug("layout stopped", "iterations", l.Iterations())
			return ctx.Err()
		case <-ticker.C:
			l.Step(s)
		}
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
