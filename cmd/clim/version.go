package main

import (
	"fmt"
	"strings"

	clim "github.com/hu-zza/Clim"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of clim",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "clim version %s\n", strings.TrimSpace(clim.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
