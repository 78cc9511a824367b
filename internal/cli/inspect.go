package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hu-zza/Clim/internal/presentation/graph"
	"github.com/hu-zza/Clim/internal/validator"
	"github.com/hu-zza/Clim/pkg/adapters/file"
)

// Validate loads the menu file at path and writes the reachability report to w.
// Findings are warnings; only load errors fail.
func Validate(w io.Writer, path string, logger *slog.Logger) (validator.Report, error) {
	cfg, err := file.Load(path, file.WithLogger(logger))
	if err != nil {
		return validator.Report{}, err
	}
	report := validator.Check(cfg.Structure)
	if report.OK() {
		fmt.Fprintf(w, "%s: valid (%d positions)\n", path, len(cfg.Structure.Positions()))
		return report, nil
	}
	fmt.Fprintf(w, "%s: valid with warnings, %s\n", path, report)
	return report, nil
}

// Graph loads the menu file at path and writes its Mermaid diagram to w.
func Graph(w io.Writer, path string, logger *slog.Logger) error {
	cfg, err := file.Load(path, file.WithLogger(logger))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, graph.GenerateMermaid(cfg.Structure, nil))
	return err
}
