package playback

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/graphplay/bellman_ford"
	"github.com/katalvlaran/graphplay/bfs"
	"github.com/katalvlaran/graphplay/dfs"
	"github.com/katalvlaran/graphplay/dijkstra"
	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/prim_kruskal"
	"github.com/katalvlaran/graphplay/trace"
)

// Algorithm records one full run over snap into rec.
type Algorithm func(snap *graph.Snapshot, rec trace.Emitter) error

var (
	registryMu sync.RWMutex
	registry   = map[string]Algorithm{
		prim_kruskal.MethodKruskal: func(s *graph.Snapshot, r trace.Emitter) error {
			_, err := prim_kruskal.Kruskal(s, r)
			return err
		},
		prim_kruskal.MethodPrim: func(s *graph.Snapshot, r trace.Emitter) error {
			_, err := prim_kruskal.Prim(s, r)
			return err
		},
		"dijkstra": func(s *graph.Snapshot, r trace.Emitter) error {
			_, err := dijkstra.Dijkstra(s, r)
			return err
		},
		"bellman-ford": func(s *graph.Snapshot, r trace.Emitter) error {
			_, err := bellman_ford.BellmanFord(s, r)
			return err
		},
		bfs.Method: func(s *graph.Snapshot, r trace.Emitter) error {
			_, err := bfs.BFS(s, r)
			return err
		},
		dfs.Method: func(s *graph.Snapshot, r trace.Emitter) error {
			_, err := dfs.DFS(s, r, dfs.WithFullTraversal())
			return err
		},
	}
)

// Register adds or replaces a named algorithm.
func Register(name string, fn Algorithm) {
	if name == "" || fn == nil {
		panic("playback: Register requires a name and a function")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return fn, nil
}

// Algorithms lists registered names in sorted order.
func Algorithms() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}
