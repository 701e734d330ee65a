// Package cli implements the scclust command-line tool's cobra commands.
package cli

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var logger hclog.Logger

var rootCmd = &cobra.Command{
	Use:   "scclust",
	Short: "Size-constrained clustering over a CSV of points",
	Long: `scclust reads a CSV of numeric points and produces a size-constrained
clustering: every cluster contains at least size-constraint points.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := hclog.Info
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = hclog.Debug
		}
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "scclust",
			Level: level,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "emit debug-level progress logs")
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(graphCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
