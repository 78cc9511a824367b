package main

import (
	"errors"

	"github.com/hu-zza/Clim/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <menu-file>",
	Short: "Check that a menu file builds",
	Long:  `Builds the menu file and reports unreachable positions and nodes without options.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		strict, _ := cmd.Flags().GetBool("strict")

		report, err := cli.Validate(cmd.OutOrStdout(), args[0], logger)
		if err != nil {
			return err
		}
		if strict && !report.OK() {
			return errors.New("validation failed in strict mode")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Treat warnings as errors")
}
