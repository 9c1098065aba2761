package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpiprof/gpart"
)

var (
	genKind      string
	genNVertices int
	genOutFile   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic communication graph",
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genKind, "kind", "bruck", "topology to generate: bruck, recdoubling")
	generateCmd.Flags().IntVar(&genNVertices, "nvertices", 0, "number of vertices (required)")
	generateCmd.Flags().StringVar(&genOutFile, "out", "", "output graph file (default: stdout)")
	_ = generateCmd.MarkFlagRequired("nvertices")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var g *gpart.Graph
	var err error

	switch genKind {
	case "bruck":
		g, err = gpart.GenerateBruck(genNVertices)
	case "recdoubling":
		g, err = gpart.GenerateRecDoubling(genNVertices)
	default:
		return fmt.Errorf("unknown topology %q (want bruck or recdoubling)", genKind)
	}
	if err != nil {
		return err
	}

	logger.Debug("graph generated", "kind", genKind, "vertices", g.NumVertices(), "edges", g.NumEdges())

	if genOutFile == "" {
		return gpart.Write(cmdOut(), g)
	}
	return gpart.Save(genOutFile, g)
}
