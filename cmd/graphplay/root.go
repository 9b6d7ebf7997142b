package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphplay/builder"
	"github.com/katalvlaran/graphplay/config"
	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/playback"
)

// Build information, set with -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	graphFile  string
	generator  string
	seed       int64
	directed   bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "graphplay",
		Short: "Step through graph algorithms one decision at a time",
		Long: `graphplay records what a graph algorithm looks at and decides, then plays
the recording back with play, pause, step and rewind.

Examples:
  # Play Kruskal on a 4x4 grid in the terminal
  graphplay run --generator grid:4x4

  # Serve the controller over HTTP and websocket
  graphplay serve --config graphplay.yaml

  # Write a random graph file
  graphplay generate random:12:0.3 --seed 7 > demo.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&g.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	pf.StringVarP(&g.graphFile, "graph", "g", "", "YAML graph file (overrides graph.file)")
	pf.StringVar(&g.generator, "generator", "", "graph generator such as cycle:6 or grid:3x3 (overrides graph.generator)")
	pf.Int64Var(&g.seed, "seed", 1, "seed for generated weights")
	pf.BoolVar(&g.directed, "directed", false, "generate a directed graph")

	root.AddCommand(
		newRunCmd(g),
		newServeCmd(g),
		newGenerateCmd(g),
		newAlgorithmsCmd(),
		newVersionCmd(),
	)

	return root
}

// loadConfig reads the config file and applies command line overrides.
func (g *globalFlags) loadConfig(cmd *cobra.Command) (*config.Loader, *config.Config, error) {
	loader, err := config.NewLoader(g.configPath, nil)
	if err != nil {
		return nil, nil, err
	}
	cfg := *loader.Config()
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.graphFile != "" {
		cfg.Graph.File = g.graphFile
	}
	if g.generator != "" {
		cfg.Graph.File = ""
		cfg.Graph.Generator = g.generator
	}
	if cmd.Flags().Changed("directed") {
		cfg.Graph.Directed = g.directed
	}
	if err := config.Validate(&cfg); err != nil {
		return nil, nil, err
	}

	return loader, &cfg, nil
}

// newLogger builds the slog handler named by cfg, writing to w.
func newLogger(w io.Writer, cfg config.LogConf) (*slog.Logger, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

// loadGraph opens cfg.File, or builds cfg.Generator with spreadsheet-style
// IDs and integer weights in [1,9].
func loadGraph(cfg config.GraphConf, seed int64) (*graph.Store, error) {
	var sopts []graph.StoreOption
	if cfg.Directed {
		sopts = append(sopts, graph.WithDirected())
	}
	if cfg.File != "" {
		return graph.LoadFile(cfg.File, sopts...)
	}

	cons, err := builder.Parse(cfg.Generator)
	if err != nil {
		return nil, err
	}
	bopts := []builder.BuilderOption{
		builder.WithExcelColumnIDs(),
		builder.WithSeed(seed),
		builder.WithIntWeights(1, 9),
	}

	return builder.BuildStore(sopts, bopts, cons)
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the algorithms that can be played",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := color.New(color.FgCyan, color.Bold)
			for _, a := range playback.Algorithms() {
				if _, err := name.Fprintln(cmd.OutOrStdout(), a); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "graphplay %s (%s)\n", Version, GitCommit)
		},
	}
}
