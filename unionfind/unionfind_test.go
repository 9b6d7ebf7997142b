package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphplay/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_SingletonsAreOwnRoots(t *testing.T) {
	d := unionfind.New[string]()
	na := d.Add("a")
	nb := d.Add("b")

	assert.Equal(t, 2, d.Len())
	ra, err := d.Find("a")
	require.NoError(t, err)
	rb, err := d.Find("b")
	require.NoError(t, err)
	assert.Same(t, na, ra)
	assert.Same(t, nb, rb)

	// parent should point to self initially
	assert.Same(t, na, na.Parent())
	assert.Same(t, nb, nb.Parent())
	assert.Equal(t, 1, na.Size())
	assert.Equal(t, 1, nb.Size())
}

func TestAdd_ExistingKeyIsNoop(t *testing.T) {
	d := unionfind.New[string]()
	na := d.Add("a")
	d.Add("b")
	require.NoError(t, d.Union("a", "b"))

	again := d.Add("a")
	assert.Same(t, na, again)
	assert.Equal(t, 2, d.Len())
	ok, err := d.Connected("a", "b")
	require.NoError(t, err)
	assert.True(t, ok, "re-adding must not split an existing set")
}

func TestUnion_BySize(t *testing.T) {
	d := unionfind.New[string]()
	na := d.Add("a")
	nb := d.Add("b")
	nc := d.Add("c")

	// equal sizes: b attaches to a
	require.NoError(t, d.Union("a", "b"))
	rootAB, err := d.Find("a")
	require.NoError(t, err)
	assert.Same(t, na, rootAB)
	assert.Equal(t, 2, rootAB.Size())
	assert.Same(t, rootAB, nb.Parent())

	// c(1) attaches under ab(2) even though c is the first argument
	require.NoError(t, d.Union("c", "a"))
	rootABC, err := d.Find("c")
	require.NoError(t, err)
	assert.Same(t, na, rootABC)
	assert.Equal(t, 3, rootABC.Size())
	assert.Same(t, rootABC, nc.Parent())
}

func TestUnion_Idempotent(t *testing.T) {
	d := unionfind.New[string]()
	d.Add("a")
	d.Add("b")

	require.NoError(t, d.Union("a", "b"))
	r1, _ := d.Find("a")
	size := r1.Size()

	require.NoError(t, d.Union("a", "b"))
	r2, _ := d.Find("b")
	assert.Same(t, r1, r2)
	assert.Equal(t, size, r2.Size())
}

func TestFind_Unknown(t *testing.T) {
	d := unionfind.New[string]()
	d.Add("a")

	_, err := d.Find("missing")
	assert.ErrorIs(t, err, unionfind.ErrNotFound)
	assert.ErrorContains(t, err, "missing")

	assert.ErrorIs(t, d.Union("a", "missing"), unionfind.ErrNotFound)
	assert.ErrorIs(t, d.Union("missing", "a"), unionfind.ErrNotFound)
	assert.Equal(t, 1, d.Len(), "lookups must not create implicit singletons")
}

func TestComponents_Deterministic(t *testing.T) {
	d := unionfind.New[int]()
	for i := 0; i < 6; i++ {
		d.Add(i)
	}
	require.NoError(t, d.Union(4, 1))
	require.NoError(t, d.Union(2, 5))
	require.NoError(t, d.Union(5, 0))

	assert.Equal(t, [][]int{{0, 2, 5}, {1, 4}, {3}}, d.Components())
}

// TestProperty_MatchesReachability checks, for random union sequences, that
// Find(a)==Find(b) exactly when a and b are connected in the union graph,
// and that root sizes equal component sizes.
func TestProperty_MatchesReachability(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const n = 40

	for round := 0; round < 25; round++ {
		d := unionfind.New[int]()
		adj := make(map[int][]int, n)
		for i := 0; i < n; i++ {
			d.Add(i)
		}
		for k := 0; k < r.Intn(n); k++ {
			a, b := r.Intn(n), r.Intn(n)
			require.NoError(t, d.Union(a, b))
			adj[a] = append(adj[a], b)
			adj[b] = append(adj[b], a)
		}

		comp := reachability(n, adj)
		for a := 0; a < n; a++ {
			ra, err := d.Find(a)
			require.NoError(t, err)
			assert.True(t, ra.IsRoot())
			assert.Same(t, ra, ra.Parent())

			members := 0
			for b := 0; b < n; b++ {
				rb, _ := d.Find(b)
				assert.Equal(t, comp[a] == comp[b], ra == rb, "round %d pair %d,%d", round, a, b)
				if comp[a] == comp[b] {
					members++
				}
			}
			assert.Equal(t, members, ra.Size())
		}
	}
}

// reachability labels every vertex with a component number using BFS.
func reachability(n int, adj map[int][]int) []int {
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	label := 0
	for s := 0; s < n; s++ {
		if comp[s] != -1 {
			continue
		}
		queue := []int{s}
		comp[s] = label
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if comp[v] == -1 {
					comp[v] = label
					queue = append(queue, v)
				}
			}
		}
		label++
	}

	return comp
}
