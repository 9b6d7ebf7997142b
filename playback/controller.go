package playback

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/graphplay/ctxlog"
	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/metrics"
	"github.com/katalvlaran/graphplay/trace"
)

// errInvalidated reports a run whose snapshot went stale before it was installed.
var errInvalidated = errors.New("playback: graph changed during run")

// Controller is the playback state machine. All methods are safe for
// concurrent use.
type Controller struct {
	source   Source
	clock    Clock
	renderer Renderer
	log      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	unsub  func()

	mu         sync.Mutex
	interval   time.Duration
	algorithm  string
	state      State
	rec        *trace.Recorder
	hl         *trace.Highlight
	q          queue
	running    bool
	idle       chan struct{} // closed while no drain goroutine runs
	playCancel context.CancelFunc
	epoch      uint64 // bumped on every invalidation
	pauses     uint64 // bumped on every pause request
	err        error
	closed     bool
}

// New builds a Controller over source and subscribes to its mutations.
//
// Errors: ErrUnknownAlgorithm when WithAlgorithm names nothing registered.
func New(source Source, opts ...Option) (*Controller, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, err := Lookup(cfg.Algorithm); err != nil {
		return nil, err
	}

	idle := make(chan struct{})
	close(idle)
	c := &Controller{
		source:    source,
		clock:     cfg.Clock,
		renderer:  cfg.Renderer,
		log:       cfg.Logger.With("component", "playback"),
		interval:  cfg.Interval,
		algorithm: cfg.Algorithm,
		rec:       trace.NewRecorder(),
		hl:        trace.NewHighlight(),
		idle:      idle,
	}
	c.ctx, c.cancel = context.WithCancel(ctxlog.WithLogger(cfg.Context, c.log))
	c.unsub = source.Subscribe(c.onMutation)

	return c, nil
}

// Play starts or resumes playback. Issued while Playing it toggles to
// Paused instead of queueing.
func (c *Controller) Play() error { return c.Do(CmdPlay) }

// Pause stops an in-flight play at its next suspension point.
func (c *Controller) Pause() error { return c.Do(CmdPause) }

// StepForward applies exactly one op.
func (c *Controller) StepForward() error { return c.Do(CmdStepForward) }

// StepBack rewinds exactly one op.
func (c *Controller) StepBack() error { return c.Do(CmdStepBack) }

// Reset discards the trace and its highlight.
func (c *Controller) Reset() error { return c.Do(CmdReset) }

// Clear resets and then empties the source graph.
func (c *Controller) Clear() error { return c.Do(CmdClear) }

// Record runs the algorithm into a clean Recorder without applying any op,
// so that steps can follow. No-op when a trace is already recorded.
func (c *Controller) Record() error { return c.Do(CmdRecord) }

// Do offers cmd to the queue. Commands execute asynchronously; use Wait to
// block until the queue drains. Duplicates of a pending kind are ignored.
func (c *Controller) Do(cmd Command) error {
	if _, ok := commandNames[cmd]; !ok {
		return ErrUnknownCommand
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	metrics.CommandsOffered.WithLabelValues(cmd.String()).Inc()

	switch cmd {
	case CmdPlay:
		if c.state == Playing {
			c.stopPlayLocked()

			return nil
		}
	case CmdPause:
		c.stopPlayLocked()
		if c.q.drop(CmdPlay) {
			metrics.CommandsCoalesced.WithLabelValues(CmdPlay.String()).Inc()
		}
	}

	if !c.q.offer(cmd) {
		metrics.CommandsCoalesced.WithLabelValues(cmd.String()).Inc()
		c.log.Debug("command coalesced", "command", cmd)

		return nil
	}
	metrics.PendingCommands.Set(float64(len(c.q.pending)))
	if !c.running {
		c.running = true
		c.idle = make(chan struct{})
		go c.drain()
	}

	return nil
}

// stopPlayLocked flips Playing to Paused and wakes the play loop. A play
// that is still recording observes the request before it starts consuming.
func (c *Controller) stopPlayLocked() {
	c.pauses++
	if c.state == Playing {
		c.state = Paused
	}
	if c.playCancel != nil {
		c.playCancel()
	}
}

// drain executes queued commands one at a time until the queue is empty.
func (c *Controller) drain() {
	for {
		c.mu.Lock()
		cmd, ok := c.q.next()
		metrics.PendingCommands.Set(float64(len(c.q.pending)))
		if !ok || c.closed {
			c.q.reset()
			c.running = false
			close(c.idle)
			c.mu.Unlock()

			return
		}
		c.mu.Unlock()

		metrics.CommandsExecuted.WithLabelValues(cmd.String()).Inc()
		c.execute(cmd)
	}
}

func (c *Controller) execute(cmd Command) {
	switch cmd {
	case CmdPlay:
		c.play()
	case CmdPause:
		c.mu.Lock()
		c.settleLocked()
		c.mu.Unlock()
	case CmdStepForward:
		c.stepForward()
	case CmdStepBack:
		c.stepBack()
	case CmdReset:
		c.reset()
	case CmdClear:
		c.reset()
		c.source.Clear()
	case CmdRecord:
		c.mu.Lock()
		clean := c.rec.Clean()
		c.mu.Unlock()
		if clean {
			_ = c.record()
		}
	}
}

// play runs the algorithm if needed, then consumes steps with a suspension
// between consecutive ops.
func (c *Controller) play() {
	c.mu.Lock()
	clean := c.rec.Clean()
	pauses := c.pauses
	c.mu.Unlock()
	if clean {
		if err := c.record(); err != nil {
			return
		}
	}

	c.mu.Lock()
	if c.rec.Remaining() == 0 || c.pauses != pauses {
		c.settleLocked()
		c.mu.Unlock()

		return
	}
	ctx, cancel := context.WithCancel(c.ctx)
	defer cancel()
	c.state = Playing
	c.playCancel = cancel
	epoch := c.epoch
	c.mu.Unlock()

	for {
		c.mu.Lock()
		if c.state != Playing || c.epoch != epoch {
			c.mu.Unlock()

			return
		}
		if ctx.Err() != nil {
			c.state = Idle
			c.settleLocked()
			c.mu.Unlock()

			return
		}
		f, ok := c.advanceLocked()
		if !ok || c.rec.Remaining() == 0 {
			c.state = Idle
			c.playCancel = nil
			f.State = Idle
		}
		wait := c.interval
		c.mu.Unlock()

		if ok {
			c.render(f)
		}
		if !ok || f.Progress.Remaining == 0 {
			return
		}

		select {
		case <-c.clock.After(wait):
		case <-ctx.Done():
		}
	}
}

// record snapshots the source and runs the current algorithm into a fresh
// Recorder, installing it if the graph did not change meanwhile.
func (c *Controller) record() error {
	snap := c.source.Snapshot()
	c.mu.Lock()
	name := c.algorithm
	c.mu.Unlock()

	alg, err := Lookup(name)
	if err != nil {
		return c.fail(name, err)
	}
	rec := trace.NewRecorder(trace.WithAlgorithm(name), trace.WithVersion(snap.Version))
	start := time.Now()
	err = alg(snap, rec)
	metrics.AlgorithmDuration.WithLabelValues(name).Observe(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		return c.fail(name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.source.Version() != snap.Version {
		metrics.AlgorithmRuns.WithLabelValues(name, "stale").Inc()
		c.log.Info("discarding stale trace", "algorithm", name, "version", snap.Version)

		return errInvalidated
	}
	metrics.AlgorithmRuns.WithLabelValues(name, "ok").Inc()
	c.rec = rec
	c.err = nil
	c.hl.Reset()
	c.log.Info("trace recorded", "algorithm", name, "run", rec.ID(), "ops", rec.Len(),
		"vertices", snap.Len(), "edges", len(snap.Edges))

	return nil
}

func (c *Controller) fail(name string, err error) error {
	metrics.AlgorithmRuns.WithLabelValues(name, "error").Inc()
	c.log.Warn("algorithm failed", "algorithm", name, "error", err)
	c.mu.Lock()
	c.err = err
	c.settleLocked()
	c.mu.Unlock()

	return err
}

func (c *Controller) stepForward() {
	c.mu.Lock()
	f, ok := c.advanceLocked()
	c.settleLocked()
	f.State = c.state
	c.mu.Unlock()
	if ok {
		c.render(f)
	}
}

func (c *Controller) stepBack() {
	c.mu.Lock()
	op, ok := c.rec.Rewind()
	if !ok {
		c.mu.Unlock()

		return
	}
	c.hl.Rebuild(c.rec.History())
	c.settleLocked()
	f := c.frameLocked(op, Backward)
	c.mu.Unlock()

	metrics.OpsApplied.WithLabelValues(op.Kind.String(), Backward.String()).Inc()
	c.render(f)
}

func (c *Controller) reset() {
	c.mu.Lock()
	f, ok := c.discardLocked()
	c.mu.Unlock()
	if ok {
		c.render(f)
	}
}

// onMutation invalidates the trace on structural graph changes.
func (c *Controller) onMutation(m graph.Mutation) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return
	}
	c.epoch++
	if c.playCancel != nil {
		c.playCancel()
	}
	f, ok := c.discardLocked()
	c.mu.Unlock()
	if !ok {
		return
	}

	metrics.TraceInvalidations.Inc()
	c.log.Info("trace invalidated", "mutation", m.Kind, "version", m.Version)
	c.render(f)
}

// advanceLocked consumes one step and applies it.
func (c *Controller) advanceLocked() (Frame, bool) {
	op, ok := c.rec.Advance()
	if !ok {
		return Frame{}, false
	}
	c.hl.Apply(op)
	metrics.OpsApplied.WithLabelValues(op.Kind.String(), Forward.String()).Inc()

	return c.frameLocked(op, Forward), true
}

// discardLocked applies a Clear and installs a clean Recorder. No-op when
// the Recorder is already clean.
func (c *Controller) discardLocked() (Frame, bool) {
	if c.rec.Clean() {
		return Frame{}, false
	}
	op := trace.Clear()
	c.hl.Apply(op)
	c.rec = trace.NewRecorder()
	c.state = Idle
	metrics.OpsApplied.WithLabelValues(op.Kind.String(), Discard.String()).Inc()

	return c.frameLocked(op, Discard), true
}

// settleLocked derives Idle/Paused for a controller that is not playing.
func (c *Controller) settleLocked() {
	if c.state == Playing {
		return
	}
	if c.rec.Played() > 0 && c.rec.Remaining() > 0 {
		c.state = Paused
	} else {
		c.state = Idle
	}
}

func (c *Controller) frameLocked(op trace.Op, dir Direction) Frame {
	return Frame{
		Op:        op,
		Direction: dir,
		View:      c.hl.View(),
		State:     c.state,
		Progress:  c.progressLocked(),
	}
}

func (c *Controller) progressLocked() Progress {
	return Progress{
		RunID:     c.rec.ID(),
		Algorithm: c.rec.Algorithm(),
		Version:   c.rec.Version(),
		Played:    c.rec.Played(),
		Remaining: c.rec.Remaining(),
	}
}

func (c *Controller) render(f Frame) {
	if err := c.renderer.Render(c.ctx, f); err != nil {
		c.log.Debug("render failed", "error", err)
	}
}

// Wait blocks until no command is queued or executing, or ctx ends.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	idle := c.idle
	c.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels in-flight playback, drops pending commands, releases the
// source subscription and waits for the drain goroutine to exit.
// Subsequent commands fail with ErrClosed. Close is idempotent.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return nil
	}
	c.closed = true
	c.q.reset()
	c.stopPlayLocked()
	c.cancel()
	idle := c.idle
	c.mu.Unlock()

	c.unsub()
	<-idle

	return nil
}

// SetInterval changes the suspension between played ops; it applies from
// the next suspension on. Panics if d <= 0.
func (c *Controller) SetInterval(d time.Duration) {
	if d <= 0 {
		panic("playback: interval must be positive")
	}
	c.mu.Lock()
	c.interval = d
	c.mu.Unlock()
}

// SetAlgorithm selects the algorithm for the next clean run. The current
// trace is kept.
func (c *Controller) SetAlgorithm(name string) error {
	if _, err := Lookup(name); err != nil {
		return err
	}
	c.mu.Lock()
	c.algorithm = name
	c.mu.Unlock()

	return nil
}

// Algorithm returns the algorithm selected for the next clean run.
func (c *Controller) Algorithm() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.algorithm
}

// Interval returns the current suspension between played ops.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.interval
}

// State returns the current playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// IsPlaying reports State() == Playing.
func (c *Controller) IsPlaying() bool { return c.State() == Playing }

// IsOutlined reports whether vertex id is in the live outline.
func (c *Controller) IsOutlined(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hl.IsOutlined(id)
}

// IsMarked reports whether vertex id is in the persistent set.
func (c *Controller) IsMarked(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hl.IsMarked(id)
}

// View returns a copy of the highlight sets.
func (c *Controller) View() trace.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hl.View()
}

// Progress summarizes the current Recorder.
func (c *Controller) Progress() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.progressLocked()
}

// Ops returns copies of the played history and the unplayed steps.
func (c *Controller) Ops() (history, steps []trace.Op) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.rec.History(), c.rec.Steps()
}

// Pending returns the queued commands in execution order, excluding the one
// currently executing.
func (c *Controller) Pending() []Command {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.q.snapshot()
}

// Running returns the command the drain goroutine is executing, or 0 when
// the controller is idle.
func (c *Controller) Running() Command {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.q.current
}

// Err returns the error of the last failed algorithm run, cleared by the
// next successful one.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.err
}
