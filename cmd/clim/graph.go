package main

import (
	"github.com/hu-zza/Clim/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <menu-file>",
	Short: "Export the menu graph visualization",
	Long:  `Builds the menu file and outputs a Mermaid diagram (graph TD) of its nodes, leaves and forwards.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		return cli.Graph(cmd.OutOrStdout(), args[0], logger)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
