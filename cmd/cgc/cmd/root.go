package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hmaarrfk/nifty/cgc"
)

var (
	verbose bool
	logger  cgc.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "cgc",
	Short: "Cut, Glue & Cut multicut optimizer",
	Long: `cgc runs the CGC multicut optimizer over an edge-weighted undirected
graph read from an edge-list file, producing a node-to-component labeling
that approximately minimizes the sum of cut-edge weights.`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		level := cgc.LevelInfo
		if verbose {
			level = cgc.LevelDebug
		}
		logger = cgc.NewStdLogger(level, os.Stdout)
		return nil
	},
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	binName := BinName()
	rootCmd.Example = `  # Run CGC over an edge-list graph, print the final energy and write the
  # resulting partition to labels.txt
  ` + binName + ` run -i graph.edges

  # Use a config file to select the heuristic local-search solver
  ` + binName + ` run -c cgc.yaml`
}

// GetLogger returns the root command's configured logger.
func GetLogger() cgc.Logger {
	return logger
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
