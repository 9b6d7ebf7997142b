// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on graph snapshots.
//
// Options:
//
//	– Source:           ID of the starting vertex (default: first vertex of the snapshot).
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrVertexNotFound  if the source vertex does not exist in the snapshot.
//	– ErrNegativeWeight  if a negative edge weight is detected in the snapshot.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
	"slices"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided snapshot.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           string  // The ID of the source vertex; empty means the first vertex
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds shortest distances from Source.
//
// Dist[v] is +Inf for unreachable v. Prev[v] is the predecessor on the
// shortest path, "" for the source and for unreachable vertices.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// Path reconstructs the vertex sequence Source→…→target.
// It returns nil when target is unreachable or unknown.
func (r Result) Path(target string) []string {
	d, ok := r.Dist[target]
	if !ok || math.IsInf(d, 1) {
		return nil
	}
	path := []string{target}
	for cur := target; cur != r.Source; {
		cur = r.Prev[cur]
		if cur == "" {
			return nil
		}
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}
