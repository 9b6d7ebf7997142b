package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphplay/ctxlog"
	"github.com/katalvlaran/graphplay/playback"
	"github.com/katalvlaran/graphplay/render"
)

type runFlags struct {
	algorithm string
	interval  time.Duration
	steps     int
	noColor   bool
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play an algorithm in the terminal",
		Long: `run records one algorithm over the configured graph and prints every
outline and mark as it is played back.

Use --steps to record the trace and advance a fixed number of ops instead
of playing to the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlayback(cmd, g, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "algorithm to play (overrides playback.algorithm)")
	fl.DurationVarP(&f.interval, "interval", "i", 0, "pause between ops (overrides playback.interval_ms)")
	fl.IntVarP(&f.steps, "steps", "n", 0, "step forward this many ops instead of playing")
	fl.BoolVar(&f.noColor, "no-color", false, "disable ANSI colors")

	return cmd
}

func runPlayback(cmd *cobra.Command, g *globalFlags, f *runFlags) error {
	_, cfg, err := g.loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	algorithm := cfg.Playback.Algorithm
	if f.algorithm != "" {
		algorithm = f.algorithm
	}
	interval := cfg.Playback.Interval()
	if f.interval > 0 {
		interval = f.interval
	}

	store, err := loadGraph(cfg.Graph, g.seed)
	if err != nil {
		return err
	}
	log.Info("graph loaded", "vertices", store.VertexCount(), "edges", store.EdgeCount(), "directed", store.Directed())

	var topts []render.TerminalOption
	if f.noColor {
		topts = append(topts, render.WithoutColor())
	}
	term := render.NewTerminal(cmd.OutOrStdout(), topts...)

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, log)

	ctrl, err := playback.New(store,
		playback.WithAlgorithm(algorithm),
		playback.WithInterval(interval),
		playback.WithRenderer(term),
		playback.WithLogger(log),
		playback.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if f.steps > 0 {
		if err := ctrl.Record(); err != nil {
			return err
		}
		if err := ctrl.Wait(ctx); err != nil {
			return fmt.Errorf("interrupted: %w", err)
		}
		if err := ctrl.Err(); err != nil {
			return err
		}
		// one at a time: the queue coalesces repeated steps
		for i := 0; i < f.steps; i++ {
			if err := ctrl.StepForward(); err != nil {
				return err
			}
			if err := ctrl.Wait(ctx); err != nil {
				return fmt.Errorf("interrupted: %w", err)
			}
		}
	} else {
		if err := ctrl.Play(); err != nil {
			return err
		}
		if err := ctrl.Wait(ctx); err != nil {
			return fmt.Errorf("interrupted: %w", err)
		}
	}
	if err := ctrl.Err(); err != nil {
		return err
	}

	return term.Summary(ctrl.Progress(), ctrl.View())
}

// contextOrBackground guards commands executed without ExecuteContext.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}
