package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpiprof/gpart"
)

var (
	mapOldFile   string
	mapStrategy  string
	mapGraphFile string
	mapRegular   bool
	mapSeed      int64
	mapOutFile   string
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Derive a new process-to-partition mapping from an existing node assignment",
	RunE:  runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().StringVar(&mapOldFile, "old-mapping", "", "file with one physical node id per process (required)")
	mapCmd.Flags().StringVar(&mapStrategy, "strategy", "linear", "placement strategy: linear, rr, graph")
	mapCmd.Flags().StringVar(&mapGraphFile, "graph", "", "communication graph file, required by --strategy=graph")
	mapCmd.Flags().BoolVar(&mapRegular, "regular", false, "treat the graph as regular (--strategy=graph only)")
	mapCmd.Flags().Int64Var(&mapSeed, "seed", 0, "random seed (--strategy=graph only)")
	mapCmd.Flags().StringVar(&mapOutFile, "out", "", "output mapping file (default: stdout)")
	_ = mapCmd.MarkFlagRequired("old-mapping")
}

func runMap(cmd *cobra.Command, args []string) error {
	oldMapp, err := readLines(mapOldFile)
	if err != nil {
		return err
	}

	strategy, err := resolveStrategy(len(oldMapp))
	if err != nil {
		return err
	}

	newMapp, pweights, err := gpart.Apply(oldMapp, strategy)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}

	logger.Info("mapped", "strategy", mapStrategy, "processes", len(oldMapp), "partitions", len(pweights))
	return writeLines(mapOutFile, newMapp)
}

func resolveStrategy(commsize int) (gpart.Strategy, error) {
	switch mapStrategy {
	case "linear":
		return gpart.LinearStrategy{}, nil
	case "rr":
		return gpart.RoundRobinStrategy{}, nil
	case "graph":
		if mapGraphFile == "" {
			return nil, fmt.Errorf("gpart: --strategy=graph requires --graph")
		}
		g, err := gpart.Load(mapGraphFile)
		if err != nil {
			return nil, err
		}
		if g.NumVertices() != commsize {
			return nil, fmt.Errorf("gpart: communication graph has %d vertices, want %d", g.NumVertices(), commsize)
		}
		return gpart.GraphStrategy{
			Graph:   g,
			Regular: mapRegular,
			Opts:    []gpart.Option{gpart.WithSeed(mapSeed)},
		}, nil
	default:
		return nil, fmt.Errorf("gpart: unknown strategy %q (want linear, rr, or graph)", mapStrategy)
	}
}
