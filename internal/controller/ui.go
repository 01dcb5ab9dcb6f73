// Package controller provides output adapters for displaying scan
// reports.
package controller

import (
	m "github.com/skua-bio/fastascan/internal/model"
)

// UI defines the interface for presenting scan reports.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayReport shows the complete outcome of one scan.
	DisplayReport(report m.ScanReport) error
}
