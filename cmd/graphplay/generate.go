package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphplay/builder"
	"github.com/katalvlaran/graphplay/graph"
)

type generateFlags struct {
	out     string
	ids     string
	weights string
}

func newGenerateCmd(g *globalFlags) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate SPEC",
		Short: "Write a generated graph as YAML",
		Long: `generate builds a graph from SPEC and writes it as a graph file.

SPEC is one of cycle:N, path:N, star:N, wheel:N, complete:N, grid:RxC or
random:N:P.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cons, err := builder.Parse(args[0])
			if err != nil {
				return err
			}
			bopts, err := f.builderOptions(g.seed)
			if err != nil {
				return err
			}
			var sopts []graph.StoreOption
			if g.directed {
				sopts = append(sopts, graph.WithDirected())
			}
			store, err := builder.BuildStore(sopts, bopts, cons)
			if err != nil {
				return err
			}

			if f.out == "" || f.out == "-" {
				return store.Encode(cmd.OutOrStdout())
			}
			file, err := os.Create(f.out)
			if err != nil {
				return err
			}
			if err := store.Encode(file); err != nil {
				_ = file.Close()
				return err
			}

			return file.Close()
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.out, "out", "o", "", "output file (default stdout)")
	fl.StringVar(&f.ids, "ids", "excel", "vertex ID scheme: excel, symbol (up to 26 vertices) or store")
	fl.StringVar(&f.weights, "weights", "1:9", "integer weight range MIN:MAX")

	return cmd
}

func (f *generateFlags) builderOptions(seed int64) ([]builder.BuilderOption, error) {
	opts := []builder.BuilderOption{builder.WithSeed(seed)}

	switch f.ids {
	case "symbol":
		opts = append(opts, builder.WithSymbolIDs())
	case "excel":
		opts = append(opts, builder.WithExcelColumnIDs())
	case "store":
	default:
		return nil, fmt.Errorf("unknown --ids %q", f.ids)
	}

	lo, hi, ok := strings.Cut(f.weights, ":")
	if !ok {
		return nil, fmt.Errorf("--weights %q: want MIN:MAX", f.weights)
	}
	minW, err := strconv.Atoi(lo)
	if err != nil {
		return nil, fmt.Errorf("--weights %q: %w", f.weights, err)
	}
	maxW, err := strconv.Atoi(hi)
	if err != nil {
		return nil, fmt.Errorf("--weights %q: %w", f.weights, err)
	}
	if minW < 0 || maxW < minW {
		return nil, fmt.Errorf("--weights %q: need 0 <= MIN <= MAX", f.weights)
	}

	return append(opts, builder.WithIntWeights(minW, maxW)), nil
}
