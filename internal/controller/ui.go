// Package controller provides output adapters for displaying scan results.
package controller

import (
	m "github.com/mouse-blink/solscan/internal/model"
)

// UI defines how scan outcomes are shown to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayReport(report m.Report) error
	DisplayImportReport(report m.ImportReport) error
	DisplaySpecValidation(result m.SpecValidation) error
	DisplayRules(rules []m.Rule) error
}
