package render_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/playback"
	"github.com/katalvlaran/graphplay/render"
	"github.com/katalvlaran/graphplay/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markFrame() playback.Frame {
	a, b := graph.Vertex{ID: "A"}, graph.Vertex{ID: "B"}
	return playback.Frame{
		Op:        trace.Mark(a, b, graph.EdgeSpec{ID: "e1", Source: "A", Target: "B", Weight: 1}),
		Direction: playback.Forward,
		View:      trace.View{Marked: []string{"A", "B"}, MarkedEdges: []string{"e1"}},
		State:     playback.Playing,
		Progress:  playback.Progress{RunID: "r", Algorithm: "kruskal", Version: 3, Played: 2, Remaining: 5},
	}
}

func TestNewMessage_Mark(t *testing.T) {
	m := render.NewMessage(markFrame())

	assert.Equal(t, render.MessageFrame, m.Type)
	assert.Equal(t, "mark", m.Kind)
	assert.Equal(t, "forward", m.Direction)
	assert.Equal(t, "playing", m.State)
	assert.Equal(t, []string{"A", "B"}, m.Pair)
	assert.Equal(t, "e1", m.Edge)
	assert.Equal(t, 2, m.Progress.Played)
}

func TestNewMessage_ClearHasNoPair(t *testing.T) {
	m := render.NewMessage(playback.Frame{Op: trace.Clear(), Direction: playback.Discard})

	assert.Equal(t, "clear", m.Kind)
	assert.Equal(t, "discard", m.Direction)
	assert.Nil(t, m.Pair)
	assert.Empty(t, m.Edge)
}

func TestTerminal_RendersPlainLine(t *testing.T) {
	var buf bytes.Buffer
	term := render.NewTerminal(&buf, render.WithoutColor())

	require.NoError(t, term.Render(context.Background(), markFrame()))

	line := buf.String()
	assert.Contains(t, line, "[  2/7  ]")
	assert.Contains(t, line, "forward")
	assert.Contains(t, line, "mark    A-B e1")
	assert.Contains(t, line, "marked: A,B  edges: e1")
	assert.NotContains(t, line, "\x1b[", "escapes must be disabled")
}

func TestTerminal_Outline(t *testing.T) {
	var buf bytes.Buffer
	term := render.NewTerminal(&buf, render.WithoutColor())
	f := playback.Frame{
		Op:        trace.Outline(graph.Vertex{ID: "C"}, graph.Vertex{ID: "D"}),
		Direction: playback.Backward,
	}

	require.NoError(t, term.Render(context.Background(), f))
	assert.Contains(t, buf.String(), "backward")
	assert.Contains(t, buf.String(), "outline C-D")
}

func TestTerminal_Summary(t *testing.T) {
	var buf bytes.Buffer
	term := render.NewTerminal(&buf, render.WithoutColor())

	require.NoError(t, term.Summary(
		playback.Progress{Algorithm: "kruskal", Played: 7},
		trace.View{MarkedEdges: []string{"e1", "e2", "e3"}},
	))
	assert.Equal(t, "kruskal finished after 7 ops: 3 marked edges [e1,e2,e3]\n", buf.String())
}

func TestMulti_ForwardsAndJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	var calls []string
	m := render.Multi{
		playback.RendererFunc(func(context.Context, playback.Frame) error {
			calls = append(calls, "first")
			return boom
		}),
		nil,
		playback.RendererFunc(func(context.Context, playback.Frame) error {
			calls = append(calls, "second")
			return nil
		}),
	}

	err := m.Render(context.Background(), markFrame())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "second"}, calls, "a failing renderer must not stop the rest")
}
