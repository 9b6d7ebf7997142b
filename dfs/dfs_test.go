package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphplay/dfs"
	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/trace"
)

// buildCycle returns the undirected cycle A–B–C–D–A with edges e1..e4.
func buildCycle(t *testing.T) *graph.Snapshot {
	t.Helper()
	snap, err := graph.NewSnapshot(
		[]graph.Vertex{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		[]graph.EdgeSpec{
			{Source: "A", Target: "B", Weight: 1},
			{Source: "B", Target: "C", Weight: 1},
			{Source: "C", Target: "D", Weight: 1},
			{Source: "D", Target: "A", Weight: 1},
		},
		false,
	)
	require.NoError(t, err)

	return snap
}

// buildPairs returns two components, A–B and C–D.
func buildPairs(t *testing.T) *graph.Snapshot {
	t.Helper()
	snap, err := graph.NewSnapshot(
		[]graph.Vertex{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		[]graph.EdgeSpec{
			{Source: "A", Target: "B", Weight: 1},
			{Source: "C", Target: "D", Weight: 1},
		},
		false,
	)
	require.NoError(t, err)

	return snap
}

func marks(rec *trace.Recorder) [][2]string {
	var out [][2]string
	for _, op := range rec.Steps() {
		if op.Kind == trace.KindMark {
			out = append(out, op.IDs())
		}
	}

	return out
}

func TestDFS_Errors(t *testing.T) {
	snap := buildCycle(t)

	res, err := dfs.DFS(snap, nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, trace.ErrNilRecorder)

	_, err = dfs.DFS(nil, trace.NewRecorder())
	assert.ErrorIs(t, err, graph.ErrNilSnapshot)

	_, err = dfs.DFS(snap, trace.NewRecorder(), dfs.WithSource("X"))
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex_SelfLoop(t *testing.T) {
	snap, err := graph.NewSnapshot(
		[]graph.Vertex{{ID: "X"}},
		[]graph.EdgeSpec{{Source: "X", Target: "X", Weight: 1}},
		true,
	)
	require.NoError(t, err)

	rec := trace.NewRecorder()
	res, err := dfs.DFS(snap, rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.True(t, res.Visited["X"])
	assert.Equal(t, 0, res.Depth["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
	assert.Equal(t, 1, rec.Len(), "only the discovery is narrated")
}

func TestDFS_CycleGoesDeepFirst(t *testing.T) {
	rec := trace.NewRecorder()
	res, err := dfs.DFS(buildCycle(t), rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"D", "C", "B", "A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "C": "B", "D": "C"}, res.Parent)
	assert.Equal(t, []string{"e1", "e2", "e3"}, res.Tree)

	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}}, marks(rec))
	assert.Equal(t, 15, rec.Len())

	ops := rec.Steps()
	last := ops[len(ops)-1]
	assert.Equal(t, trace.KindOutline, last.Kind)
	assert.Equal(t, [2]string{"A", "D"}, last.IDs(), "the back edge is examined after backtracking")
}

func TestDFS_Forest(t *testing.T) {
	res, err := dfs.DFS(buildPairs(t), trace.NewRecorder())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"])

	rec := trace.NewRecorder()
	res, err = dfs.DFS(buildPairs(t), rec, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "D", "C"}, res.Order)
	assert.Equal(t, []string{"e1", "e2"}, res.Tree)
	assert.Len(t, marks(rec), 2)

	res, err = dfs.DFS(buildPairs(t), trace.NewRecorder(), dfs.WithFullTraversal(), dfs.WithSource("C"))
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "B", "A"}, res.Order)
}

func TestDFS_MaxDepth(t *testing.T) {
	rec := trace.NewRecorder()
	res, err := dfs.DFS(buildCycle(t), rec, dfs.WithMaxDepth(1))
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "D", "A"}, res.Order)
	assert.Equal(t, [][2]string{{"A", "B"}, {"A", "D"}}, marks(rec))
	assert.False(t, res.Visited["C"])
}

func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(buildCycle(t), trace.NewRecorder(), dfs.WithFilterNeighbor(func(id string) bool {
		return id != "C"
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "D", "A"}, res.Order)
	assert.Equal(t, 2, res.SkippedNeighbors)
	assert.False(t, res.Visited["C"])
}

func TestDFS_HooksAndCancellation(t *testing.T) {
	var visited []string
	res, err := dfs.DFS(buildCycle(t), trace.NewRecorder(), dfs.WithOnVisit(func(id string) error {
		visited = append(visited, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, visited)
	assert.Len(t, res.Order, 4)

	boom := errors.New("boom")
	res, err = dfs.DFS(buildCycle(t), trace.NewRecorder(), dfs.WithOnExit(func(id string) error {
		if id == "C" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(buildCycle(t), trace.NewRecorder(), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
