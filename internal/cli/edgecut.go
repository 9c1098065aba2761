package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpiprof/gpart"
)

var (
	cutGraphFile     string
	cutPartitionFile string
)

var edgecutCmd = &cobra.Command{
	Use:   "edgecut",
	Short: "Compute the edge cut of a partition against a graph",
	RunE:  runEdgecut,
}

func init() {
	rootCmd.AddCommand(edgecutCmd)

	edgecutCmd.Flags().StringVar(&cutGraphFile, "graph", "", "input graph file (required)")
	edgecutCmd.Flags().StringVar(&cutPartitionFile, "partition", "", "partition file, one index per vertex (required)")
	_ = edgecutCmd.MarkFlagRequired("graph")
	_ = edgecutCmd.MarkFlagRequired("partition")
}

func runEdgecut(cmd *cobra.Command, args []string) error {
	g, err := gpart.Load(cutGraphFile)
	if err != nil {
		return err
	}

	part, err := readLines(cutPartitionFile)
	if err != nil {
		return err
	}
	if len(part) != g.NumVertices() {
		return fmt.Errorf("gpart: partition has %d entries, graph has %d vertices", len(part), g.NumVertices())
	}

	cut := gpart.ComputeEdgeCut(g, part)
	fmt.Fprintln(cmdOut(), cut)
	return nil
}
