package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphplay/config"
	"github.com/katalvlaran/graphplay/ctxlog"
	"github.com/katalvlaran/graphplay/layout"
	"github.com/katalvlaran/graphplay/playback"
	"github.com/katalvlaran/graphplay/render"
	"github.com/katalvlaran/graphplay/server"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the controller over HTTP and websocket",
		Long: `serve exposes the playback commands and the graph as a JSON API, streams
frames to websocket viewers at /ws and runs the force layout in the
background. Edits to the config file change the interval and algorithm of
the running controller.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			log, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = ctxlog.WithLogger(ctx, log)

			store, err := loadGraph(cfg.Graph, g.seed)
			if err != nil {
				return err
			}

			var ctrl *playback.Controller
			hub := render.NewHub(
				render.WithHubLogger(log),
				render.WithGreeting(func() (render.Message, bool) {
					if ctrl == nil {
						return render.Message{}, false
					}
					st := server.StateOf(ctrl)
					return render.Message{Type: "state", State: st.State, View: st.View, Progress: st.Progress}, true
				}),
				render.WithCommandHandler(func(name string) error {
					c, err := playback.ParseCommand(name)
					if err != nil {
						return err
					}
					return ctrl.Do(c)
				}),
			)
			defer hub.Close()

			ctrl, err = playback.New(store,
				playback.WithAlgorithm(cfg.Playback.Algorithm),
				playback.WithInterval(cfg.Playback.Interval()),
				playback.WithRenderer(hub),
				playback.WithLogger(log),
				playback.WithContext(ctx),
			)
			if err != nil {
				return err
			}
			defer ctrl.Close()

			loader.OnChange(func(c *config.Config) { applyLive(log, ctrl, c) })
			stopWatch, err := loader.Watch()
			if err != nil {
				return err
			}
			defer stopWatch()

			if cfg.Layout.Enabled {
				lay := layout.New(layoutOptions(log, cfg.Layout)...)
				go func() {
					if err := lay.Run(ctx, store); err != nil && !errors.Is(err, ctx.Err()) {
						log.Error("layout stopped", "error", err)
					}
				}()
			}

			srv := server.New(ctrl, store,
				server.WithWebsocket(hub),
				server.WithMetrics(cfg.Server.Metrics),
				server.WithLogger(log),
			)
			if err := srv.ListenAndServe(ctx, cfg.Server.Addr); err != nil {
				return fmt.Errorf("serve %s: %w", cfg.Server.Addr, err)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

// applyLive pushes reloadable playback settings into a running controller.
func applyLive(log *slog.Logger, ctrl *playback.Controller, c *config.Config) {
	if d := c.Playback.Interval(); d > 0 && d != ctrl.Interval() {
		ctrl.SetInterval(d)
		log.Info("playback interval changed", "interval", d)
	}
	if c.Playback.Algorithm != ctrl.Algorithm() {
		if err := ctrl.SetAlgorithm(c.Playback.Algorithm); err != nil {
			log.Warn("algorithm not changed", "error", err)
			return
		}
		log.Info("playback algorithm changed", "algorithm", c.Playback.Algorithm)
	}
}

func layoutOptions(log *slog.Logger, c config.LayoutConf) []layout.Option {
	opts := []layout.Option{
		layout.WithCanvas(c.Width, c.Height),
		layout.WithRepulsion(c.Repulsion),
		layout.WithSpring(c.Spring),
		layout.WithDamping(c.Damping),
		layout.WithGravity(c.Gravity),
		layout.WithNoise(c.Noise),
		layout.WithSeed(c.Seed),
		layout.WithLogger(log),
	}
	if t := c.Tick(); t > 0 {
		opts = append(opts, layout.WithTick(t))
	}

	return opts
}
