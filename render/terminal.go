package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/katalvlaran/graphplay/playback"
	"github.com/katalvlaran/graphplay/trace"
)

// Terminal writes one line per frame:
//
//	[  3/7  ] forward  mark    A-B e1  marked: A,B  edges: e1
type Terminal struct {
	mu  sync.Mutex
	out io.Writer

	outline *color.Color
	mark    *color.Color
	clear   *color.Color
	dim     *color.Color
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithoutColor disables ANSI escapes regardless of the output device.
func WithoutColor() TerminalOption {
	return func(t *Terminal) {
		for _, c := range []*color.Color{t.outline, t.mark, t.clear, t.dim} {
			c.DisableColor()
		}
	}
}

// NewTerminal returns a Terminal writing to out.
func NewTerminal(out io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		out:     out,
		outline: color.New(color.FgYellow),
		mark:    color.New(color.FgGreen, color.Bold),
		clear:   color.New(color.FgRed),
		dim:     color.New(color.Faint),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Render implements playback.Renderer.
func (t *Terminal) Render(_ context.Context, f playback.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := f.Progress
	total := p.Played + p.Remaining
	if _, err := t.dim.Fprintf(t.out, "[%3d/%-3d] %-8s ", p.Played, total, f.Direction); err != nil {
		return err
	}

	var err error
	switch f.Op.Kind {
	case trace.KindOutline:
		ids := f.Op.IDs()
		_, err = t.outline.Fprintf(t.out, "%-7s %s-%s", f.Op.Kind, ids[0], ids[1])
	case trace.KindMark:
		ids := f.Op.IDs()
		_, err = t.mark.Fprintf(t.out, "%-7s %s-%s %s", f.Op.Kind, ids[0], ids[1], f.Op.Edge.ID)
	default:
		_, err = t.clear.Fprintf(t.out, "%-7s", f.Op.Kind)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(t.out, "  marked: %s  edges: %s\n",
		strings.Join(f.View.Marked, ","), strings.Join(f.View.MarkedEdges, ","))

	return err
}

// Summary prints the final highlight state after a run.
func (t *Terminal) Summary(p playback.Progress, v trace.View) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := t.mark.Fprintf(t.out, "%s finished after %d ops: %d marked edges [%s]\n",
		p.Algorithm, p.Played, len(v.MarkedEdges), strings.Join(v.MarkedEdges, ","))

	return err
}
