package controller

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	m "github.com/mouse-blink/solscan/internal/model"
	"golang.org/x/term"
)

// excerptIndent is the prefix width in front of every excerpt line.
const excerptIndent = 4

// TUI renders styled output for interactive terminals. Reports taller than
// the terminal are shown in a pager first and then printed in full.
type TUI struct {
	output io.Writer
	width  int
	height int
	// runPager is replaced in tests to avoid starting a terminal program.
	runPager func(model tea.Model) error
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}

	if f, ok := output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			t.width = width
			t.height = height
		}
	}

	t.runPager = func(model tea.Model) error {
		_, err := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen()).Run()
		return err
	}

	return t
}

// DisplayReport shows the antipattern report.
func (t *TUI) DisplayReport(report m.Report) error {
	var buf bytes.Buffer

	writeReport(&buf, report, newTUIStyler(), t.fitExcerpt)

	return t.show("Antipattern scan", buf.String())
}

// DisplayImportReport shows the import verification status.
func (t *TUI) DisplayImportReport(report m.ImportReport) error {
	var buf bytes.Buffer

	writeImportReport(&buf, report, newTUIStyler())

	return t.show("API verification", buf.String())
}

// DisplaySpecValidation shows the validation result of one document.
func (t *TUI) DisplaySpecValidation(result m.SpecValidation) error {
	var buf bytes.Buffer

	writeSpecValidation(&buf, result, newTUIStyler())

	return t.show(string(result.File), buf.String())
}

// DisplayRules shows the rule catalog.
func (t *TUI) DisplayRules(rules []m.Rule) error {
	var buf bytes.Buffer

	writeRules(&buf, rules)

	return t.show("Rules", buf.String())
}

func (t *TUI) show(title, content string) error {
	if t.needsPagination(content) {
		if err := t.runPager(newPagerModel(title, content, t.width, t.height)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(t.output, content)

	return err
}

func (t *TUI) needsPagination(content string) bool {
	if t.height <= 0 {
		return false
	}

	return strings.Count(content, "\n") > t.height
}

func (t *TUI) fitExcerpt(s string) string {
	if t.width <= excerptIndent {
		return s
	}

	return runewidth.Truncate(s, t.width-excerptIndent, "…")
}

type tuiStyler struct {
	titleStyle    lipgloss.Style
	headingStyle  lipgloss.Style
	locationStyle lipgloss.Style
	excerptStyle  lipgloss.Style
	goodStyle     lipgloss.Style
	badStyle      lipgloss.Style
	warnStyle     lipgloss.Style
}

func newTUIStyler() tuiStyler {
	return tuiStyler{
		titleStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		headingStyle:  lipgloss.NewStyle().Bold(true),
		locationStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		excerptStyle:  lipgloss.NewStyle().Faint(true),
		goodStyle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		badStyle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		warnStyle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	}
}

func (s tuiStyler) title(text string) string { return s.titleStyle.Render(text) }
func (s tuiStyler) heading(text string) string { return s.headingStyle.Render(text) }
func (s tuiStyler) location(text string) string { return s.locationStyle.Render(text) }
func (s tuiStyler) excerpt(text string) string { return s.excerptStyle.Render(text) }
func (s tuiStyler) good(text string) string { return s.goodStyle.Render(text) }
func (s tuiStyler) bad(text string) string { return s.badStyle.Render(text) }

func (s tuiStyler) severity(sev m.Severity) string {
	switch sev {
	case m.SeverityCritical:
		return s.badStyle.Render(sev.String())
	case m.SeverityHigh:
		return s.warnStyle.Render(sev.String())
	default:
		return sev.String()
	}
}

func (s tuiStyler) verdict(v m.Verdict, text string) string {
	switch v {
	case m.VerdictCritical:
		return s.badStyle.Render(text)
	case m.VerdictWarning:
		return s.warnStyle.Render(text)
	default:
		return s.goodStyle.Render(text)
	}
}
