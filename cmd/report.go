package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// ReportExport writes the report file and prints its content, matching what
// landed on disk.
func (r *Runner) ReportExport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	if path == "" {
		path = r.config.Report.Path
	}

	report, err := r.engine.ExportReport(path)
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	r.writePlain("Report saved to %s\n", path)

	if cmd.Bool("quiet") {
		return nil
	}

	r.writePlainln("Report content:")
	return r.writeJSON(report, true)
}
