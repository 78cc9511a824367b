package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	clim "github.com/hu-zza/Clim"
	"github.com/hu-zza/Clim/internal/logging"
	"github.com/hu-zza/Clim/internal/presentation/tui"
	"github.com/hu-zza/Clim/pkg/adapters/file"
	"github.com/hu-zza/Clim/pkg/domain"
	"github.com/hu-zza/Clim/pkg/observability"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// RunOptions configures an interactive session.
type RunOptions struct {
	Path     string
	Logger   *slog.Logger
	In       io.Reader
	Out      io.Writer
	ErrOut   io.Writer
	Color    bool
	Banner   bool
	Headless bool
	Footer   bool
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// RunSession loads the menu file and drives it from opts.In until an exit
// token, EOF or cancellation. Cancellation is not an error.
func RunSession(ctx context.Context, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	cfg, err := file.Load(opts.Path, file.WithLogger(logger))
	if err != nil {
		return err
	}

	profile := termenv.Ascii
	if opts.Color {
		profile = termenv.ANSI256
	}
	if opts.Banner && !opts.Headless {
		tui.PrintBanner(opts.Out, profile)
	}

	back := cfg.Back
	if back == "" {
		back = domain.DefaultBackToken
	}
	menu, err := cfg.NewMenu(
		clim.WithLogger(logger),
		clim.WithOutput(opts.Out),
		clim.WithErrorOutput(opts.ErrOut),
		clim.WithColorProfile(profile),
		clim.WithFooter(opts.Footer),
		clim.WithBackToken(back),
		clim.WithLicenseRenderer(tui.NewRenderer(opts.Color)),
		clim.WithLifecycleHooks(observability.LogHooks(logger)),
	)
	if err != nil {
		return err
	}

	runner := clim.NewRunner(opts.In)
	runner.Headless = opts.Headless

	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx, menu)
	}()

	// A blocked terminal read cannot be interrupted; the process exits instead.
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(opts.Out)
		logger.Info("session interrupted")
		return nil
	}
	return err
}
