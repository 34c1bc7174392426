package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/solscan/internal/model"
)

func newTestTUI(width, height int) (*TUI, *bytes.Buffer, *[]tea.Model) {
	var buf bytes.Buffer

	var paged []tea.Model

	tui := NewTUI(&buf)
	tui.width = width
	tui.height = height
	tui.runPager = func(model tea.Model) error {
		paged = append(paged, model)
		return nil
	}

	return tui, &buf, &paged
}

func TestNewTUI_NonTerminalOutput(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{})

	if tui.width != 0 || tui.height != 0 {
		t.Fatalf("NewTUI(buffer) size = %dx%d, want 0x0", tui.width, tui.height)
	}

	if tui.runPager == nil {
		t.Fatal("NewTUI() left runPager unset")
	}
}

func TestTUI_DisplayReport_ShortOutputIsNotPaged(t *testing.T) {
	tui, buf, paged := newTestTUI(120, 500)

	if err := tui.DisplayReport(criticalReport()); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	if len(*paged) != 0 {
		t.Fatalf("pager started %d times, want 0", len(*paged))
	}

	assertContainsAll(t, buf.String(),
		"SOLARIA Antipattern Scan Results",
		"ANTI-003 (Accumulated Technical Debt)",
		"a.py:10",
		"CRITICAL: Address ANTI-002 or ANTI-003 immediately!",
	)
}

func TestTUI_DisplayReport_TallOutputIsPagedThenPrinted(t *testing.T) {
	tui, buf, paged := newTestTUI(80, 10)

	if err := tui.DisplayReport(criticalReport()); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	if len(*paged) != 1 {
		t.Fatalf("pager started %d times, want 1", len(*paged))
	}

	pager, ok := (*paged)[0].(pagerModel)
	if !ok {
		t.Fatalf("pager model is %T, want pagerModel", (*paged)[0])
	}

	if pager.title != "Antipattern scan" {
		t.Errorf("pager title = %q", pager.title)
	}

	if pager.content != buf.String() {
		t.Error("printed report differs from paged report")
	}
}

func TestTUI_PagerError(t *testing.T) {
	tui, buf, _ := newTestTUI(80, 2)

	pagerErr := errors.New("no terminal")
	tui.runPager = func(tea.Model) error { return pagerErr }

	err := tui.DisplayRules([]m.Rule{{ID: "ANTI-001", Name: "Copy", Severity: m.SeverityHigh, Patterns: []string{"x"}}})
	if !errors.Is(err, pagerErr) {
		t.Fatalf("DisplayRules() error = %v, want %v", err, pagerErr)
	}

	if buf.Len() != 0 {
		t.Fatalf("nothing should be printed when the pager fails, got:\n%s", buf.String())
	}
}

func TestTUI_FitExcerpt(t *testing.T) {
	tui, _, _ := newTestTUI(14, 0)

	if got := tui.fitExcerpt("short"); got != "short" {
		t.Errorf("fitExcerpt(short) = %q", got)
	}

	got := tui.fitExcerpt("# TODO rewrite this whole thing")
	if got != "# TODO re…" {
		t.Errorf("fitExcerpt(long) = %q, want %q", got, "# TODO re…")
	}

	wide := tui.fitExcerpt("# 中文中文中文中文")
	if !strings.HasSuffix(wide, "…") {
		t.Errorf("fitExcerpt(wide) = %q, want truncated", wide)
	}

	unknown, _, _ := newTestTUI(0, 0)
	if got := unknown.fitExcerpt("# TODO rewrite this whole thing"); got != "# TODO rewrite this whole thing" {
		t.Errorf("fitExcerpt without width = %q", got)
	}
}

func TestTUI_DisplayImportReportAndSpec(t *testing.T) {
	tui, buf, _ := newTestTUI(100, 0)

	if err := tui.DisplayImportReport(m.ImportReport{Unverified: []m.ImportUsage{{Name: "lodash", Files: []m.Path{"a.js"}}}}); err != nil {
		t.Fatalf("DisplayImportReport() error = %v", err)
	}

	if err := tui.DisplaySpecValidation(m.SpecValidation{File: "spec.md"}); err != nil {
		t.Fatalf("DisplaySpecValidation() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "lodash", "Used in:", "a.js", "File: spec.md", "STATUS:")
}
