package main

import (
	"context"
	"os"

	"github.com/hu-zza/Clim/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <menu-file>",
	Short: "Navigate a menu interactively",
	Long:  `Prints the menu of the file and reads choices from stdin until 'exit', 'quit' or EOF.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		noColor, _ := cmd.Flags().GetBool("no-color")
		headless, _ := cmd.Flags().GetBool("headless")
		footer, _ := cmd.Flags().GetBool("footer")

		tty := cli.IsTerminal(os.Stdin) && cli.IsTerminal(os.Stdout)
		if !cmd.Flags().Changed("headless") {
			headless = !tty
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.RunSession(ctx, cli.RunOptions{
			Path:     args[0],
			Logger:   logger,
			In:       os.Stdin,
			Out:      os.Stdout,
			ErrOut:   os.Stderr,
			Color:    tty && !noColor,
			Banner:   tty,
			Headless: headless,
			Footer:   footer,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("headless", false, "Suppress prompt and farewell (default when stdin is not a terminal)")
	runCmd.Flags().Bool("footer", false, "Print the short license notice under every menu")
}
