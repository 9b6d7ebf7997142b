package bellman_ford

import (
	"errors"
	"math"
	"slices"
)

var (
	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellman_ford: negative cycle reachable from source")

	// ErrVertexNotFound indicates the requested source is not in the snapshot.
	ErrVertexNotFound = errors.New("bellman_ford: source vertex not found in graph")
)

// Options configures BellmanFord.
type Options struct {
	// Source is the starting vertex; empty means the first vertex.
	Source string
}

// Option is a functional option for BellmanFord.
type Option func(*Options)

// WithSource sets the starting vertex ID.
func WithSource(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Result holds shortest distances from Source. Unreachable vertices have
// Dist +Inf and Prev "".
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// Path reconstructs Source→…→target, or nil when target is unreachable.
func (r Result) Path(target string) []string {
	d, ok := r.Dist[target]
	if !ok || math.IsInf(d, 1) {
		return nil
	}
	path := []string{target}
	for cur := target; cur != r.Source; {
		cur = r.Prev[cur]
		if cur == "" || len(path) > len(r.Dist) {
			return nil
		}
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}
