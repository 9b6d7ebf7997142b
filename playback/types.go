package playback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/trace"
)

var (
	// ErrClosed is returned by commands offered after Close.
	ErrClosed = errors.New("playback: controller closed")

	// ErrUnknownAlgorithm indicates an algorithm name with no registered implementation.
	ErrUnknownAlgorithm = errors.New("playback: unknown algorithm")

	// ErrUnknownCommand indicates a command name ParseCommand cannot map.
	ErrUnknownCommand = errors.New("playback: unknown command")
)

// State is the controller's playback state.
type State int

const (
	// Idle: nothing is playing and the trace is either clean or exhausted.
	Idle State = iota
	// Playing: a play command is consuming steps.
	Playing
	// Paused: playback stopped with ops left on both sides.
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Command is a playback command kind. The queue holds at most one pending
// instance of each.
type Command int

const (
	CmdPlay Command = iota + 1
	CmdPause
	CmdStepForward
	CmdStepBack
	CmdReset
	CmdClear
	CmdRecord
)

var commandNames = map[Command]string{
	CmdPlay:        "play",
	CmdPause:       "pause",
	CmdStepForward: "step-forward",
	CmdStepBack:    "step-back",
	CmdReset:       "reset",
	CmdClear:       "clear",
	CmdRecord:      "record",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}

	return "unknown"
}

// ParseCommand maps a command name (as produced by String) back to a Command.
func ParseCommand(name string) (Command, error) {
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Direction tells a renderer how a frame's op was applied.
type Direction int

const (
	// Forward: the op was consumed from steps and applied.
	Forward Direction = iota
	// Backward: the op was rewound and its inverse applied.
	Backward
	// Discard: the trace was thrown away (reset, clear or invalidation).
	Discard
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "discard"
	}
}

// Progress summarizes the current Recorder.
type Progress struct {
	RunID     string `json:"run_id"`
	Algorithm string `json:"algorithm"`
	Version   uint64 `json:"version"`
	Played    int    `json:"played"`
	Remaining int    `json:"remaining"`
}

// Clean reports whether no run is recorded.
func (p Progress) Clean() bool { return p.Played == 0 && p.Remaining == 0 }

// Frame is one rendering notification, emitted after every applied op.
type Frame struct {
	Op        trace.Op
	Direction Direction
	View      trace.View
	State     State
	Progress  Progress
}

// Renderer receives frames. Render is called from the controller's drain
// goroutine (or a mutation callback) without any controller lock held.
type Renderer interface {
	Render(ctx context.Context, f Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, f Frame) error

// Render calls fn(ctx, f).
func (fn RendererFunc) Render(ctx context.Context, f Frame) error { return fn(ctx, f) }

// Source is the live graph the controller snapshots and clears.
// *graph.Store satisfies it.
type Source interface {
	Snapshot() *graph.Snapshot
	Clear()
	Subscribe(fn func(graph.Mutation)) (unsubscribe func())
	Version() uint64
}

// Clock abstracts the suspension timer between played ops.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// DefaultInterval is the pause between played ops.
const DefaultInterval = 500 * time.Millisecond

// DefaultAlgorithm is the algorithm run by Play unless configured otherwise.
const DefaultAlgorithm = "kruskal"

// Options configures a Controller.
type Options struct {
	Interval  time.Duration
	Algorithm string
	Clock     Clock
	Renderer  Renderer
	Logger    *slog.Logger
	Context   context.Context
}

// Option mutates Options.
type Option func(*Options)

// WithInterval sets the suspension between played ops. Panics if d <= 0.
func WithInterval(d time.Duration) Option {
	if d <= 0 {
		panic("playback: interval must be positive")
	}

	return func(o *Options) { o.Interval = d }
}

// WithAlgorithm selects the algorithm by registry name. Unknown names are
// reported by New.
func WithAlgorithm(name string) Option {
	return func(o *Options) { o.Algorithm = name }
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(o *Options) { o.Clock = c }
}

// WithRenderer sets the frame consumer.
func WithRenderer(r Renderer) Option {
	return func(o *Options) { o.Renderer = r }
}

// WithLogger sets the logger; default slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithContext sets the parent context. Cancelling it stops playback the
// same way Close does, without releasing the subscription.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Context = ctx }
}

// DefaultOptions returns Options with the wall clock, a no-op renderer and
// the default logger.
func DefaultOptions() Options {
	return Options{
		Interval:  DefaultInterval,
		Algorithm: DefaultAlgorithm,
		Clock:     realClock{},
		Renderer:  RendererFunc(func(context.Context, Frame) error { return nil }),
		Logger:    slog.Default(),
		Context:   context.Background(),
	}
}
