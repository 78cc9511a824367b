package clim

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// DefaultExitTokens end a Runner loop.
var DefaultExitTokens = []string{"exit", "quit"}

// Runner drives a Menu from a line-oriented reader.
type Runner struct {
	Input io.Reader
	// Headless suppresses the prompt and the farewell line, e.g. for piped input.
	Headless bool
	// ExitTokens end the loop. Matching is case-insensitive.
	ExitTokens []string
}

// NewRunner creates a Runner reading from in.
func NewRunner(in io.Reader) *Runner {
	return &Runner{
		Input:      in,
		ExitTokens: DefaultExitTokens,
	}
}

// Run prints the menu and feeds it input lines until an exit token, EOF or
// context cancellation. The menu is reprinted after every move.
func (r *Runner) Run(ctx context.Context, menu *Menu) error {
	if r.Input == nil {
		return errors.New("input reader must be set (use os.Stdin)")
	}
	if menu == nil {
		return errors.New("menu must not be nil")
	}
	reader := bufio.NewReader(r.Input)

	if err := menu.ListOptions(); err != nil {
		return fmt.Errorf("render error: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !r.Headless {
			menu.prompt()
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("input error: %w", readErr)
		}
		eof := readErr != nil
		if eof && line == "" {
			break
		}

		clean, err := SanitizeInput(strings.TrimRight(line, "\r\n"))
		if err != nil {
			menu.reportf(line, err)
			if eof {
				break
			}
			continue
		}
		if r.isExit(clean) {
			break
		}

		out := menu.ChooseOption(ctx, clean)
		if out.Changed() {
			if err := menu.ListOptions(); err != nil {
				return fmt.Errorf("render error: %w", err)
			}
		}
		if eof {
			break
		}
	}

	if !r.Headless {
		menu.goodbye()
	}
	return nil
}

func (r *Runner) isExit(input string) bool {
	token := strings.ToLower(strings.TrimSpace(input))
	return token != "" && slices.ContainsFunc(r.ExitTokens, func(t string) bool {
		return strings.ToLower(t) == token
	})
}
