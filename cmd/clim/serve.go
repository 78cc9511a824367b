package main

import (
	"context"

	"github.com/hu-zza/Clim/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve <menu-file>",
	Short: "Start the HTTP server",
	Long:  `Serves the menu over HTTP. Every session navigates its own copy; metrics are exposed on /metrics.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("addr")
		maxSessions, _ := cmd.Flags().GetInt("max-sessions")
		idle, _ := cmd.Flags().GetDuration("idle-timeout")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.Serve(ctx, cli.ServeOptions{
			Path:        args[0],
			Addr:        addr,
			Logger:      logger,
			MaxSessions: maxSessions,
			IdleTimeout: idle,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().Int("max-sessions", 0, "Maximum number of live sessions (0 means unlimited)")
	serveCmd.Flags().Duration("idle-timeout", 0, "Expire sessions idle for longer (0 keeps them)")
}
