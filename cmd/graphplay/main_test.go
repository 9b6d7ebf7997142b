package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/graphplay/config"
	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/playback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

const squareYAML = `directed: false
vertices:
  - {id: A, x: 100, y: 100}
  - {id: B, x: 200, y: 100}
  - {id: C, x: 200, y: 200}
  - {id: D, x: 100, y: 200}
edges:
  - {source: A, target: B, weight: 1}
  - {source: B, target: C, weight: 2}
  - {source: C, target: D, weight: 3}
  - {source: A, target: D, weight: 10}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestGenerate_WritesDecodableYAML(t *testing.T) {
	out, _, err := execute(t, "generate", "path:3", "--ids", "symbol", "--weights", "4:4")
	require.NoError(t, err)

	s, err := graph.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.False(t, s.Directed())
	require.Equal(t, 3, s.VertexCount())
	edges := s.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "A", edges[0].Source)
	assert.Equal(t, "B", edges[0].Target)
	for _, e := range edges {
		assert.Equal(t, 4.0, e.Weight)
	}
}

func TestGenerate_DirectedToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.yaml")
	_, _, err := execute(t, "generate", "cycle:4", "--directed", "-o", path)
	require.NoError(t, err)

	s, err := graph.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, s.Directed())
	assert.Equal(t, 4, s.EdgeCount())
}

func TestGenerate_SeedIsDeterministic(t *testing.T) {
	a, _, err := execute(t, "generate", "random:8:0.5", "--seed", "3")
	require.NoError(t, err)
	b, _, err := execute(t, "generate", "random:8:0.5", "--seed", "3")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"generate", "hexagon:6"},
		{"generate", "path:3", "--weights", "9"},
		{"generate", "path:3", "--weights", "5:2"},
		{"generate", "path:3", "--ids", "roman"},
		{"generate", "path:1"},
		{"generate"},
	} {
		_, _, err := execute(t, args...)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestRun_PlaysToEnd(t *testing.T) {
	out, stderr, err := execute(t, "run", "--generator", "path:3", "--interval", "1ms", "--no-color")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5, out)
	assert.Contains(t, lines[0], "outline")
	assert.Contains(t, lines[1], "mark")
	assert.True(t, strings.HasPrefix(lines[4], "kruskal finished after 4 ops: 2 marked edges"), lines[4])
	assert.Contains(t, stderr, "graph loaded")
}

func TestRun_Steps(t *testing.T) {
	out, _, err := execute(t, "run", "-g", writeFile(t, "square.yaml", squareYAML),
		"--steps", "3", "--no-color", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4, out)
	assert.Contains(t, lines[2], "outline B-C")
	assert.Contains(t, lines[3], "after 3 ops: 1 marked edges [e1]")
}

func TestRun_FileWithPrim(t *testing.T) {
	out, _, err := execute(t, "run", "-g", writeFile(t, "square.yaml", squareYAML),
		"-a", "prim", "-i", "1ms", "--no-color", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "3 marked edges")
}

func TestRun_Traversals(t *testing.T) {
	out, _, err := execute(t, "run", "--generator", "path:3", "-a", "bfs", "-i", "1ms", "--no-color", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "bfs finished after 9 ops: 2 marked edges")

	out, _, err = execute(t, "run", "--generator", "path:3", "-a", "dfs", "-i", "1ms", "--no-color", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "dfs finished after 9 ops: 2 marked edges")
}

func TestRun_ConfigFile(t *testing.T) {
	graphPath := writeFile(t, "square.yaml", squareYAML)
	cfgPath := writeFile(t, "graphplay.yaml", `
playback:
  interval_ms: 1
  algorithm: dijkstra
log:
  level: error
graph:
  file: `+graphPath+`
`)

	out, _, err := execute(t, "run", "-c", cfgPath, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "dijkstra finished after")
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	_, _, err := execute(t, "run", "--generator", "path:3", "-a", "astar", "--log-level", "error")
	assert.ErrorIs(t, err, playback.ErrUnknownAlgorithm)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgPath := writeFile(t, "bad.yaml", "log:\n  format: xml\n")
	_, _, err := execute(t, "run", "-c", cfgPath)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestAlgorithms(t *testing.T) {
	out, _, err := execute(t, "algorithms")
	require.NoError(t, err)
	for _, name := range playback.Algorithms() {
		assert.Contains(t, out, name)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "graphplay dev (unknown)\n", out)
}
