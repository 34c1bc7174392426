package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	m "github.com/mouse-blink/solscan/internal/model"
	"github.com/olekukonko/tablewriter"
)

const (
	ruleWidth    = 60
	sectionWidth = 40
	importFiles  = 3
)

// styler decorates report fragments. The plain styler returns text unchanged.
type styler interface {
	title(s string) string
	heading(s string) string
	severity(sev m.Severity) string
	location(s string) string
	excerpt(s string) string
	verdict(v m.Verdict, s string) string
	good(s string) string
	bad(s string) string
}

type plainStyler struct{}

func (plainStyler) title(s string) string { return s }
func (plainStyler) heading(s string) string { return s }
func (plainStyler) severity(sev m.Severity) string { return sev.String() }
func (plainStyler) location(s string) string { return s }
func (plainStyler) excerpt(s string) string { return s }
func (plainStyler) verdict(_ m.Verdict, s string) string { return s }
func (plainStyler) good(s string) string { return s }
func (plainStyler) bad(s string) string { return s }

func banner(w io.Writer, st styler, text string) {
	line := strings.Repeat("=", ruleWidth)
	_, _ = fmt.Fprintf(w, "\n%s\n%s\n%s\n", line, st.title(text), line)
}

func checkLabel(kind m.CheckKind) string {
	switch kind {
	case m.CheckCoverage:
		return "Coverage Issues:"
	case m.CheckDecisionRecords:
		return "ADR Issues:"
	default:
		return "Issues:"
	}
}

func writeReport(w io.Writer, report m.Report, st styler, fitExcerpt func(string) string) {
	banner(w, st, "SOLARIA Antipattern Scan Results")

	for _, rr := range report.Fired() {
		_, _ = fmt.Fprintf(w, "\n%s\n", st.heading(fmt.Sprintf("%s (%s)", rr.Rule.ID, rr.Rule.Name)))
		_, _ = fmt.Fprintf(w, "Risk: %s\n", st.severity(rr.Rule.Severity))
		_, _ = fmt.Fprintln(w, strings.Repeat("-", sectionWidth))

		if count := len(rr.Findings); count > 0 {
			_, _ = fmt.Fprintf(w, "Found %d potential instances in %d files:\n", count, len(rr.FilesAffected))

			for i, f := range rr.Findings {
				if i >= report.DisplayLimit {
					break
				}

				_, _ = fmt.Fprintf(w, "  - %s\n", st.location(fmt.Sprintf("%s:%d", f.File, f.Line)))
				_, _ = fmt.Fprintf(w, "    %s\n", st.excerpt(fitExcerpt(f.Excerpt)))
			}

			if count > report.DisplayLimit {
				_, _ = fmt.Fprintf(w, "  ... and %d more\n", count-report.DisplayLimit)
			}
		}

		if rr.Special != nil && rr.Special.Detected {
			_, _ = fmt.Fprintln(w, checkLabel(rr.Rule.Check))

			for _, issue := range rr.Special.Issues {
				_, _ = fmt.Fprintf(w, "  - %s\n", issue)
			}
		}
	}

	banner(w, st, "SUMMARY")
	writeSummaryTable(w, report)

	switch report.Verdict {
	case m.VerdictCritical:
		_, _ = fmt.Fprintf(w, "\n%s\n", st.verdict(report.Verdict,
			fmt.Sprintf("⚠️  CRITICAL: Address %s immediately!", joinIDs(report.CriticalRuleIDs))))
		_, _ = fmt.Fprintln(w, "   These antipatterns significantly impact code quality.")
	case m.VerdictWarning:
		_, _ = fmt.Fprintf(w, "\n%s\n", st.verdict(report.Verdict,
			"⚠️  WARNING: Review detected antipatterns before proceeding."))
	default:
		_, _ = fmt.Fprintf(w, "\n%s\n", st.verdict(report.Verdict,
			"✓ No antipatterns detected. Code follows SOLARIA methodology."))
	}
}

func writeSummaryTable(w io.Writer, report m.Report) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Total potential antipattern instances:", fmt.Sprintf("%d", report.TotalIssues)})
	table.Append([]string{"Critical antipatterns detected:", fmt.Sprintf("%d", report.CriticalRuleCount)})
	table.Append([]string{"Files scanned:", fmt.Sprintf("%d", report.Result.FilesScanned)})

	if n := len(report.Result.Unreadable); n > 0 {
		table.Append([]string{"Unreadable files skipped:", fmt.Sprintf("%d", n)})
	}

	table.Render()
	_, _ = fmt.Fprint(w, buf.String())
}

// joinIDs renders "A", "A or B", "A, B, or C".
func joinIDs(ids []string) string {
	switch len(ids) {
	case 0:
		return "critical antipatterns"
	case 1:
		return ids[0]
	case 2:
		return ids[0] + " or " + ids[1]
	default:
		return strings.Join(ids[:len(ids)-1], ", ") + ", or " + ids[len(ids)-1]
	}
}

func writeImportReport(w io.Writer, report m.ImportReport, st styler) {
	banner(w, st, "SOLARIA API Verification Status")

	_, _ = fmt.Fprintf(w, "\nTotal external imports: %d\n", report.Total())
	_, _ = fmt.Fprintf(w, "Verified: %d\n", len(report.Verified))
	_, _ = fmt.Fprintf(w, "Unverified: %d\n", len(report.Unverified))

	if len(report.Verified) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", st.good(fmt.Sprintf("✓ VERIFIED (%d):", len(report.Verified))))

		for _, imp := range report.Verified {
			_, _ = fmt.Fprintf(w, "  - %s\n", imp.Name)
		}
	}

	if len(report.Unverified) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", st.bad(fmt.Sprintf("✗ UNVERIFIED (%d) - Need PAT-006:", len(report.Unverified))))

		for _, imp := range report.Unverified {
			shown := imp.Files
			if len(shown) > importFiles {
				shown = shown[:importFiles]
			}

			names := make([]string, 0, len(shown))
			for _, f := range shown {
				names = append(names, string(f))
			}

			_, _ = fmt.Fprintf(w, "  - %s\n", imp.Name)
			_, _ = fmt.Fprintf(w, "    Used in: %s\n", st.location(strings.Join(names, ", ")))

			if len(imp.Files) > importFiles {
				_, _ = fmt.Fprintf(w, "    ... and %d more files\n", len(imp.Files)-importFiles)
			}
		}
	}

	banner(w, st, "SUMMARY")

	if len(report.Unverified) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", st.bad(fmt.Sprintf("⚠️  %d imports need API verification!", len(report.Unverified))))
		_, _ = fmt.Fprintln(w, "\nTo verify an import:")
		_, _ = fmt.Fprintln(w, "1. Read the library's official documentation (20 min)")
		_, _ = fmt.Fprintln(w, "2. Create: docs/api-verification/[library-name].md")
		_, _ = fmt.Fprintln(w, "3. Document all methods you plan to use")

		return
	}

	_, _ = fmt.Fprintf(w, "\n%s\n", st.good("✓ All imports have verification documents!"))
}

func writeSpecValidation(w io.Writer, result m.SpecValidation, st styler) {
	banner(w, st, "SOLARIA Specification Validation")
	_, _ = fmt.Fprintf(w, "File: %s\n", result.File)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	if len(result.Errors) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", st.bad(fmt.Sprintf("❌ ERRORS (%d):", len(result.Errors))))

		for _, e := range result.Errors {
			_, _ = fmt.Fprintf(w, "  - %s\n", e)
		}
	}

	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", st.heading(fmt.Sprintf("⚠️  WARNINGS (%d):", len(result.Warnings))))

		for _, warning := range result.Warnings {
			_, _ = fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	line := strings.Repeat("=", ruleWidth)
	_, _ = fmt.Fprintf(w, "\n%s\n", line)

	switch {
	case !result.Valid():
		_, _ = fmt.Fprintln(w, st.bad("STATUS: ✗ INVALID"))
		_, _ = fmt.Fprintln(w, "The specification is missing required sections.")
		_, _ = fmt.Fprintln(w, "Please address the errors before proceeding to implementation.")
	case len(result.Warnings) > 0:
		_, _ = fmt.Fprintln(w, st.good("STATUS: ✓ VALID (with warnings)"))
		_, _ = fmt.Fprintln(w, "The specification has all required sections but may need review.")
	default:
		_, _ = fmt.Fprintln(w, st.good("STATUS: ✓ VALID"))
		_, _ = fmt.Fprintln(w, "The specification is complete and ready for implementation.")
	}

	_, _ = fmt.Fprintln(w, line)
}

func writeRules(w io.Writer, rules []m.Rule) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"ID", "Name", "Severity", "Detection"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, r := range rules {
		detection := fmt.Sprintf("%d patterns", len(r.Patterns))
		if r.IsSpecial() {
			detection = "check: " + string(r.Check)
		}

		table.Append([]string{r.ID, r.Name, r.Severity.String(), detection})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Rules %d", len(rules)), "", "", ""})
	table.Render()

	_, _ = fmt.Fprintf(w, "\n%s", buf.String())
}
