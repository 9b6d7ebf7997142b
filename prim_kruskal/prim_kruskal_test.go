package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/prim_kruskal"
	"github.com/katalvlaran/graphplay/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare constructs the undirected cycle
//
//	A—B (1), B—C (2), C—D (3), A—D (10).
//
// Its MST is {A—B, B—C, C—D} with total weight 6; A—D is never chosen.
func buildSquare(t testing.TB) *graph.Snapshot {
	t.Helper()
	snap, err := graph.NewSnapshot(
		[]graph.Vertex{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		[]graph.EdgeSpec{
			{Source: "A", Target: "B", Weight: 1},
			{Source: "B", Target: "C", Weight: 2},
			{Source: "C", Target: "D", Weight: 3},
			{Source: "A", Target: "D", Weight: 10},
		},
		false,
	)
	require.NoError(t, err)

	return snap
}

// buildMediumGraph creates a connected snapshot with n vertices: a chain
// V0—V1—…—V(n-1) plus extra random edges, from a fixed seed.
func buildMediumGraph(t testing.TB, n, extra int) *graph.Snapshot {
	t.Helper()
	r := rand.New(rand.NewSource(42))
	vs := make([]graph.Vertex, n)
	for i := range vs {
		vs[i] = graph.Vertex{ID: fmt.Sprintf("V%d", i)}
	}
	es := make([]graph.EdgeSpec, 0, n-1+extra)
	for i := 1; i < n; i++ {
		es = append(es, graph.EdgeSpec{Source: vs[i-1].ID, Target: vs[i].ID, Weight: float64(1 + r.Intn(10))})
	}
	for len(es) < n-1+extra {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		es = append(es, graph.EdgeSpec{Source: vs[u].ID, Target: vs[v].ID, Weight: float64(1 + r.Intn(100))})
	}
	snap, err := graph.NewSnapshot(vs, es, false)
	require.NoError(t, err)

	return snap
}

func kinds(ops []trace.Op) []trace.Kind {
	out := make([]trace.Kind, len(ops))
	for i, op := range ops {
		out[i] = op.Kind
	}

	return out
}

func TestKruskal_Square(t *testing.T) {
	rec := trace.NewRecorder()
	res, err := prim_kruskal.Kruskal(buildSquare(t), rec)
	require.NoError(t, err)

	assert.True(t, res.Spanning)
	assert.Equal(t, 6.0, res.Total)
	assert.Len(t, res.Edges, 3)

	ops := rec.Steps()
	assert.Equal(t, []trace.Kind{
		trace.KindOutline, trace.KindMark,
		trace.KindOutline, trace.KindMark,
		trace.KindOutline, trace.KindMark,
		trace.KindOutline,
	}, kinds(ops))
	for _, op := range ops {
		if op.Kind == trace.KindMark {
			assert.NotEqual(t, "e4", op.Edge.ID, "A—D must never be marked")
		}
	}
	assert.Equal(t, [2]string{"A", "D"}, ops[6].IDs())
}

func TestKruskal_MarkFollowsOutline(t *testing.T) {
	rec := trace.NewRecorder()
	_, err := prim_kruskal.Kruskal(buildMediumGraph(t, 40, 120), rec)
	require.NoError(t, err)

	ops := rec.Steps()
	outlines, marks := 0, 0
	for i, op := range ops {
		switch op.Kind {
		case trace.KindOutline:
			outlines++
		case trace.KindMark:
			marks++
			require.Positive(t, i)
			assert.Equal(t, trace.KindOutline, ops[i-1].Kind)
			assert.Equal(t, ops[i-1].IDs(), op.IDs())
		}
	}
	assert.Equal(t, 160-1, outlines, "every edge is outlined exactly once")
	assert.Equal(t, 39, marks)
}

func TestKruskal_ReplayMarksEqualsTree(t *testing.T) {
	rec := trace.NewRecorder()
	res, err := prim_kruskal.Kruskal(buildSquare(t), rec)
	require.NoError(t, err)

	h := trace.Replay(rec.Steps())
	ids := make([]string, 0, len(res.Edges))
	for _, e := range res.Edges {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, ids, h.MarkedEdges())
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, h.Marked())
}

func TestKruskal_TiesKeepSnapshotOrder(t *testing.T) {
	snap, err := graph.NewSnapshot(
		[]graph.Vertex{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		[]graph.EdgeSpec{
			{ID: "x", Source: "A", Target: "B", Weight: 1},
			{ID: "y", Source: "B", Target: "C", Weight: 1},
			{ID: "z", Source: "A", Target: "C", Weight: 1},
		},
		false,
	)
	require.NoError(t, err)

	rec := trace.NewRecorder()
	res, err := prim_kruskal.Kruskal(snap, rec)
	require.NoError(t, err)
	assert.Equal(t, "x", res.Edges[0].ID)
	assert.Equal(t, "y", res.Edges[1].ID)
}

func TestMST_DisconnectedYieldsForest(t *testing.T) {
	snap, err := graph.NewSnapshot(
		[]graph.Vertex{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		[]graph.EdgeSpec{
			{Source: "A", Target: "B", Weight: 1},
			{Source: "C", Target: "D", Weight: 2},
		},
		false,
	)
	require.NoError(t, err)

	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		t.Run(method, func(t *testing.T) {
			rec := trace.NewRecorder()
			res, err := prim_kruskal.Compute(snap, rec, prim_kruskal.WithMethod(method))
			require.NoError(t, err)
			assert.False(t, res.Spanning)
			assert.Len(t, res.Edges, 2)
			assert.Equal(t, 3.0, res.Total)
		})
	}
}

func TestMST_TrivialGraphs(t *testing.T) {
	empty, err := graph.NewSnapshot(nil, nil, false)
	require.NoError(t, err)
	single, err := graph.NewSnapshot([]graph.Vertex{{ID: "A"}}, nil, false)
	require.NoError(t, err)

	for _, snap := range []*graph.Snapshot{empty, single} {
		for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
			rec := trace.NewRecorder()
			res, err := prim_kruskal.Compute(snap, rec, prim_kruskal.WithMethod(method))
			require.NoError(t, err)
			assert.True(t, res.Spanning)
			assert.Empty(t, res.Edges)
			assert.True(t, rec.Clean(), "no edges means no ops")
		}
	}
}

func TestMST_Validation(t *testing.T) {
	square := buildSquare(t)

	_, err := prim_kruskal.Kruskal(nil, trace.NewRecorder())
	assert.ErrorIs(t, err, graph.ErrNilSnapshot)

	_, err = prim_kruskal.Kruskal(square, nil)
	assert.ErrorIs(t, err, trace.ErrNilRecorder)

	_, err = prim_kruskal.Prim(square, nil)
	assert.ErrorIs(t, err, trace.ErrNilRecorder)

	directed, err := graph.NewSnapshot(
		[]graph.Vertex{{ID: "A"}, {ID: "B"}},
		[]graph.EdgeSpec{{Source: "A", Target: "B", Weight: 1}},
		true,
	)
	require.NoError(t, err)
	_, err = prim_kruskal.Kruskal(directed, trace.NewRecorder())
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	a := &graph.Vertex{ID: "A"}
	foreign := &graph.Vertex{ID: "B"}
	broken := &graph.Snapshot{
		Vertices: []*graph.Vertex{a},
		Edges:    []*graph.Edge{{ID: "e1", Source: a, Target: foreign, Weight: 1}},
	}
	rec := trace.NewRecorder()
	_, err = prim_kruskal.Kruskal(broken, rec)
	assert.ErrorIs(t, err, graph.ErrMalformedEdge)
	assert.True(t, rec.Clean())

	_, err = prim_kruskal.Prim(square, trace.NewRecorder(), prim_kruskal.WithRoot("Z"))
	assert.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)

	_, err = prim_kruskal.Compute(square, trace.NewRecorder(), prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestPrim_Square(t *testing.T) {
	rec := trace.NewRecorder()
	res, err := prim_kruskal.Prim(buildSquare(t), rec)
	require.NoError(t, err)

	assert.True(t, res.Spanning)
	assert.Equal(t, 6.0, res.Total)
	ids := []string{res.Edges[0].ID, res.Edges[1].ID, res.Edges[2].ID}
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids)

	// The stale A—D candidate is still popped and outlined last.
	ops := rec.Steps()
	last := ops[len(ops)-1]
	assert.Equal(t, trace.KindOutline, last.Kind)
	assert.Equal(t, [2]string{"A", "D"}, last.IDs())
}

func TestPrim_FromRoot(t *testing.T) {
	rec := trace.NewRecorder()
	res, err := prim_kruskal.Prim(buildSquare(t), rec, prim_kruskal.WithRoot("D"))
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Total)
	first := rec.Steps()[0]
	assert.Equal(t, "D", first.IDs()[0])
}

// TestPrimMatchesKruskal checks both algorithms agree on total weight.
func TestPrimMatchesKruskal(t *testing.T) {
	for _, size := range []int{2, 10, 50} {
		snap := buildMediumGraph(t, size, size*2)
		k, err := prim_kruskal.Kruskal(snap, trace.NewRecorder())
		require.NoError(t, err)
		p, err := prim_kruskal.Prim(snap, trace.NewRecorder())
		require.NoError(t, err)
		assert.InDelta(t, k.Total, p.Total, 1e-9, "size %d", size)
		assert.Len(t, p.Edges, size-1)
	}
}
