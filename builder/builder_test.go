package builder_test

import (
	"testing"

	"github.com/katalvlaran/graphplay/builder"
	"github.com/katalvlaran/graphplay/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologies_Counts(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int
	}{
		{"cycle", builder.Cycle(5), 5, 5},
		{"path", builder.Path(4), 4, 3},
		{"star", builder.Star(5), 5, 4},
		{"wheel", builder.Wheel(5), 5, 8},
		{"complete", builder.Complete(4), 4, 6},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"single", builder.Complete(1), 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := builder.BuildStore(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, s.VertexCount())
			assert.Equal(t, tc.edges, s.EdgeCount())
		})
	}
}

func TestTopologies_TooSmall(t *testing.T) {
	for _, con := range []builder.Constructor{
		builder.Cycle(2), builder.Path(1), builder.Star(1), builder.Wheel(3),
		builder.Complete(0), builder.Grid(0, 3), builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildStore(nil, []builder.BuilderOption{builder.WithSeed(1)}, con)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
}

func TestCycle_SymbolIDsAndOrder(t *testing.T) {
	s, err := builder.BuildStore(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(3))
	require.NoError(t, err)

	var pairs [][2]string
	for _, e := range s.Edges() {
		pairs = append(pairs, [2]string{e.Source, e.Target})
		assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
	}
	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}}, pairs)
}

func TestStar_CenterID(t *testing.T) {
	s, err := builder.BuildStore(nil, []builder.BuilderOption{builder.WithSymbNumb("n")}, builder.Star(3))
	require.NoError(t, err)
	v, ok := s.Vertex("Center")
	require.True(t, ok)
	assert.Equal(t, 400.0, v.X)
	assert.Equal(t, 300.0, v.Y)
	for _, e := range s.Edges() {
		assert.Equal(t, "Center", e.Source)
	}
}

func TestGrid_Positions(t *testing.T) {
	s, err := builder.BuildStore(nil, []builder.BuilderOption{builder.WithCanvas(400, 300)}, builder.Grid(2, 3))
	require.NoError(t, err)
	vs := s.Vertices()
	assert.Equal(t, 100.0, vs[0].X)
	assert.Equal(t, 100.0, vs[0].Y)
	assert.Equal(t, 300.0, vs[5].X)
	assert.Equal(t, 200.0, vs[5].Y)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildStore(nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildStore(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeights(1, 9)}
	a, err := builder.BuildStore(nil, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeights(1, 9)}
	b, err := builder.BuildStore(nil, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, a.Vertices(), b.Vertices())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
	}

	full, err := builder.BuildStore(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, full.EdgeCount())

	directed, err := builder.BuildStore([]graph.StoreOption{graph.WithDirected()},
		[]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, directed.EdgeCount())
}

func TestBuild_Errors(t *testing.T) {
	assert.ErrorIs(t, builder.Build(nil, nil, builder.Cycle(3)), builder.ErrConstructFailed)
	assert.ErrorIs(t, builder.Build(graph.NewStore(), nil, nil), builder.ErrConstructFailed)

	// Two cycles with the same ID scheme collide on the second.
	s := graph.NewStore()
	err := builder.Build(s, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(3), builder.Cycle(3))
	assert.ErrorIs(t, err, graph.ErrDuplicateVertex)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithCanvas(0, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(3, 1) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
}

func TestParse(t *testing.T) {
	cases := map[string][2]int{
		"cycle:6":      {6, 6},
		"Path:3":       {3, 2},
		"grid:2x2":     {4, 4},
		"complete:3":   {3, 3},
		" wheel:5 ":    {5, 8},
		"random:4:1.0": {4, 6},
		"star:4":       {4, 3},
	}
	for spec, want := range cases {
		con, err := builder.Parse(spec)
		require.NoError(t, err, spec)
		s, err := builder.BuildStore(nil, []builder.BuilderOption{builder.WithSeed(3)}, con)
		require.NoError(t, err, spec)
		assert.Equal(t, want[0], s.VertexCount(), spec)
		assert.Equal(t, want[1], s.EdgeCount(), spec)
	}

	for _, bad := range []string{"", "hexagon:3", "cycle:x", "grid:3", "random:4"} {
		_, err := builder.Parse(bad)
		assert.ErrorIs(t, err, builder.ErrUnknownTopology, bad)
	}
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "n7", builder.SymbolNumberIDFn("n")(7))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
}
