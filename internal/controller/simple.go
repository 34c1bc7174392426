package controller

import (
	m "github.com/mouse-blink/solscan/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI writes plain text to the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the antipattern report.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	writeReport(s.cmd.OutOrStdout(), report, plainStyler{}, func(e string) string { return e })
	return nil
}

// DisplayImportReport prints the import verification status.
func (s *SimpleUI) DisplayImportReport(report m.ImportReport) error {
	writeImportReport(s.cmd.OutOrStdout(), report, plainStyler{})
	return nil
}

// DisplaySpecValidation prints the validation result of one document.
func (s *SimpleUI) DisplaySpecValidation(result m.SpecValidation) error {
	writeSpecValidation(s.cmd.OutOrStdout(), result, plainStyler{})
	return nil
}

// DisplayRules prints the rule catalog as a table.
func (s *SimpleUI) DisplayRules(rules []m.Rule) error {
	writeRules(s.cmd.OutOrStdout(), rules)
	return nil
}
