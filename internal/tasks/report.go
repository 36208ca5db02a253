package tasks

import (
	"fmt"
	"os"

	"github.com/nmakharadze/roster/internal/models"
	"github.com/nmakharadze/roster/internal/shared"
)

// DefaultReportPath is the report destination when none is configured.
const DefaultReportPath = "report.json"

// Report is the point-in-time export summarizing the stored records.
type Report struct {
	TotalUsers int           `json:"total_users"`
	Users      []models.User `json:"users"`
}

// JSON renders the report pretty-printed with non-ASCII text preserved,
// the same bytes ExportReport writes to disk.
func (r *Report) JSON() ([]byte, error) {
	return shared.MarshalJSON(r, true)
}

// ExportReport computes the report from the store and writes it to path,
// overwriting any previous content. An empty path falls back to
// [DefaultReportPath]. The returned report is the written content, so
// callers can display it without re-reading the file.
func (e *UserEngine) ExportReport(path string) (*Report, error) {
	e.logInvocation("export_report")

	if e.store == nil {
		return nil, shared.ErrStoreUnavailable
	}

	if path == "" {
		path = DefaultReportPath
	}

	users, err := e.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users for report: %w", err)
	}

	// Users marshals as [] rather than null when the store is empty.
	if users == nil {
		users = []models.User{}
	}

	report := &Report{TotalUsers: len(users), Users: users}

	data, err := report.JSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	e.logger.Info("report written", "path", path, "total_users", report.TotalUsers)
	return report, nil
}
