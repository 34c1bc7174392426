package controller

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	m "github.com/mouse-blink/solscan/internal/model"
	"github.com/spf13/cobra"
)

func newBufferedSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertContainsAll(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func criticalReport() m.Report {
	debt := m.RuleResult{
		Rule:          m.Rule{ID: "ANTI-003", Name: "Accumulated Technical Debt", Severity: m.SeverityCritical},
		FilesAffected: map[m.Path]struct{}{"a.py": {}, "b.py": {}},
	}

	for i := 1; i <= 7; i++ {
		file := m.Path("a.py")
		if i > 4 {
			file = "b.py"
		}

		debt.Findings = append(debt.Findings, m.Finding{
			RuleID:  "ANTI-003",
			File:    file,
			Line:    i * 10,
			Excerpt: fmt.Sprintf("# TODO item %d", i),
		})
	}

	return m.Report{
		Result: m.ScanResult{
			Rules: []m.RuleResult{
				{Rule: m.Rule{ID: "ANTI-001", Name: "Copy-Paste Without Comprehension", Severity: m.SeverityHigh}},
				{
					Rule:    m.Rule{ID: "ANTI-002", Name: "Tests as Afterthought", Severity: m.SeverityCritical, Check: m.CheckCoverage},
					Special: &m.SpecialResult{Detected: true, Issues: []string{"No test directory found", "No coverage report found"}},
				},
				debt,
			},
			FilesScanned: 12,
			Unreadable:   []m.Path{"locked.py"},
		},
		TotalIssues:       7,
		CriticalRuleCount: 2,
		CriticalRuleIDs:   []string{"ANTI-002", "ANTI-003"},
		Verdict:           m.VerdictCritical,
		DisplayLimit:      5,
	}
}

func TestSimpleUI_DisplayReport_Critical(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	if err := ui.DisplayReport(criticalReport()); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	output := buf.String()

	assertContainsAll(t, output,
		"SOLARIA Antipattern Scan Results",
		"ANTI-002 (Tests as Afterthought)",
		"Coverage Issues:",
		"  - No test directory found",
		"  - No coverage report found",
		"ANTI-003 (Accumulated Technical Debt)",
		"Risk: CRITICAL",
		"Found 7 potential instances in 2 files:",
		"  - a.py:10",
		"    # TODO item 1",
		"  - b.py:50",
		"  ... and 2 more",
		"SUMMARY",
		"Total potential antipattern instances:",
		"Critical antipatterns detected:",
		"Files scanned:",
		"12",
		"Unreadable files skipped:",
		"⚠️  CRITICAL: Address ANTI-002 or ANTI-003 immediately!",
		"These antipatterns significantly impact code quality.",
	)

	if strings.Contains(output, "ANTI-001") {
		t.Fatalf("rule without findings must not be listed\noutput:\n%s", output)
	}

	if strings.Contains(output, "b.py:60") {
		t.Fatalf("findings past the display limit must be summarized\noutput:\n%s", output)
	}

	if strings.Index(output, "ANTI-002") > strings.Index(output, "ANTI-003 (") {
		t.Fatalf("rules must follow catalog order\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayReport_Verdicts(t *testing.T) {
	tests := []struct {
		name    string
		report  m.Report
		want    string
		notWant string
	}{
		{
			name:    "clean",
			report:  m.Report{Verdict: m.VerdictClean, DisplayLimit: 5},
			want:    "✓ No antipatterns detected. Code follows SOLARIA methodology.",
			notWant: "Unreadable files skipped:",
		},
		{
			name:   "warning",
			report: m.Report{Verdict: m.VerdictWarning, DisplayLimit: 5},
			want:   "⚠️  WARNING: Review detected antipatterns before proceeding.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newBufferedSimpleUI()

			if err := ui.DisplayReport(tt.report); err != nil {
				t.Fatalf("DisplayReport() error = %v", err)
			}

			assertContainsAll(t, buf.String(), tt.want)

			if tt.notWant != "" && strings.Contains(buf.String(), tt.notWant) {
				t.Fatalf("output unexpectedly contains %q", tt.notWant)
			}
		})
	}
}

func TestSimpleUI_DisplayImportReport(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	report := m.ImportReport{
		Verified: []m.ImportUsage{{Name: "requests", Files: []m.Path{"main.py"}}},
		Unverified: []m.ImportUsage{{
			Name:  "lodash",
			Files: []m.Path{"a.js", "b.js", "c.js", "d.js", "e.js"},
		}},
	}

	if err := ui.DisplayImportReport(report); err != nil {
		t.Fatalf("DisplayImportReport() error = %v", err)
	}

	output := buf.String()

	assertContainsAll(t, output,
		"SOLARIA API Verification Status",
		"Total external imports: 2",
		"Verified: 1",
		"Unverified: 1",
		"✓ VERIFIED (1):",
		"  - requests",
		"✗ UNVERIFIED (1) - Need PAT-006:",
		"    Used in: a.js, b.js, c.js",
		"    ... and 2 more files",
		"⚠️  1 imports need API verification!",
		"2. Create: docs/api-verification/[library-name].md",
	)

	if strings.Contains(output, "d.js") {
		t.Fatalf("only the first files must be listed\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayImportReport_AllVerified(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	if err := ui.DisplayImportReport(m.ImportReport{}); err != nil {
		t.Fatalf("DisplayImportReport() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "Total external imports: 0", "✓ All imports have verification documents!")
}

func TestSimpleUI_DisplaySpecValidation(t *testing.T) {
	tests := []struct {
		name   string
		result m.SpecValidation
		wants  []string
	}{
		{
			name: "invalid",
			result: m.SpecValidation{
				File:     "spec.md",
				Errors:   []string{"Missing required section: Overview section"},
				Warnings: []string{"Test Plan section appears empty"},
			},
			wants: []string{
				"File: spec.md",
				"❌ ERRORS (1):",
				"  - Missing required section: Overview section",
				"⚠️  WARNINGS (1):",
				"STATUS: ✗ INVALID",
			},
		},
		{
			name:   "valid with warnings",
			result: m.SpecValidation{File: "spec.md", Warnings: []string{"w"}},
			wants:  []string{"STATUS: ✓ VALID (with warnings)"},
		},
		{
			name:   "valid",
			result: m.SpecValidation{File: "spec.md"},
			wants:  []string{"STATUS: ✓ VALID", "ready for implementation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newBufferedSimpleUI()

			if err := ui.DisplaySpecValidation(tt.result); err != nil {
				t.Fatalf("DisplaySpecValidation() error = %v", err)
			}

			assertContainsAll(t, buf.String(), tt.wants...)
		})
	}
}

func TestSimpleUI_DisplayRules(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	rules := []m.Rule{
		{ID: "ANTI-001", Name: "Copy-Paste Without Comprehension", Severity: m.SeverityHigh, Patterns: []string{"a", "b"}},
		{ID: "ANTI-002", Name: "Tests as Afterthought", Severity: m.SeverityCritical, Check: m.CheckCoverage},
	}

	if err := ui.DisplayRules(rules); err != nil {
		t.Fatalf("DisplayRules() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"ANTI-001",
		"Copy-Paste Without Comprehension",
		"2 patterns",
		"check: coverage_analysis",
		"CRITICAL",
		"TOTAL RULES 2",
	)
}

func TestJoinIDs(t *testing.T) {
	tests := []struct {
		ids  []string
		want string
	}{
		{nil, "critical antipatterns"},
		{[]string{"A"}, "A"},
		{[]string{"A", "B"}, "A or B"},
		{[]string{"A", "B", "C"}, "A, B, or C"},
	}

	for _, tt := range tests {
		if got := joinIDs(tt.ids); got != tt.want {
			t.Errorf("joinIDs(%v) = %q, want %q", tt.ids, got, tt.want)
		}
	}
}
