// Package cli implements the gpart command-line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpiprof/gpart/internal/config"
	"github.com/mpiprof/gpart/internal/logging"
)

var (
	cfgFile string
	logLvl  string
	cfg     *config.Config
	logger  logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gpart",
	Short: "Multilevel graph partitioning for process-to-node mapping",
	Long: `gpart partitions a weighted communication graph into balanced parts
while minimizing the cut between them, and maps MPI-style processes onto
physical nodes using the result.

It implements Heavy Edge Matching coarsening, Levelized Nested Dissection
initial bisection, and Fiduccia-Mattheyses refinement, in the style of
multilevel partitioners such as METIS and Chaco.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLvl != "" {
			cfg.Log.Level = logLvl
		}
		logger = logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML/JSON/TOML)")
	rootCmd.PersistentFlags().StringVar(&logLvl, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}
