package domain

import (
	"testing"

	m "github.com/mouse-blink/solscan/internal/model"
	"github.com/stretchr/testify/assert"
)

func ruleResult(id string, sev m.Severity, findings int, special *m.SpecialResult) m.RuleResult {
	rr := m.RuleResult{
		Rule:          m.Rule{ID: id, Severity: sev},
		FilesAffected: map[m.Path]struct{}{},
		Special:       special,
	}

	for i := 0; i < findings; i++ {
		rr.Findings = append(rr.Findings, m.Finding{RuleID: id, File: "f.py", Line: i + 1})
		rr.FilesAffected["f.py"] = struct{}{}
	}

	return rr
}

func TestBuildReport(t *testing.T) {
	tests := []struct {
		name         string
		rules        []m.RuleResult
		wantTotal    int
		wantCritical []string
		wantVerdict  m.Verdict
		wantExit     int
	}{
		{
			name: "clean",
			rules: []m.RuleResult{
				ruleResult("A", m.SeverityCritical, 0, nil),
				ruleResult("B", m.SeverityHigh, 0, &m.SpecialResult{Count: 3}),
			},
			wantVerdict: m.VerdictClean,
		},
		{
			name: "high findings only warn",
			rules: []m.RuleResult{
				ruleResult("A", m.SeverityCritical, 0, nil),
				ruleResult("B", m.SeverityHigh, 12, nil),
			},
			wantTotal:   12,
			wantVerdict: m.VerdictWarning,
		},
		{
			name: "medium special check only warns",
			rules: []m.RuleResult{
				ruleResult("D", m.SeverityMedium, 0, &m.SpecialResult{Detected: true, Issues: []string{IssueNoDecisionDir}}),
			},
			wantVerdict: m.VerdictWarning,
		},
		{
			name: "critical findings and critical special check",
			rules: []m.RuleResult{
				ruleResult("A", m.SeverityHigh, 1, nil),
				ruleResult("B", m.SeverityCritical, 0, &m.SpecialResult{Detected: true}),
				ruleResult("C", m.SeverityCritical, 2, nil),
				ruleResult("D", m.SeverityCritical, 0, nil),
			},
			wantTotal:    3,
			wantCritical: []string{"B", "C"},
			wantVerdict:  m.VerdictCritical,
			wantExit:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildReport(m.ScanResult{Rules: tt.rules}, 0)

			assert.Equal(t, tt.wantTotal, report.TotalIssues)
			assert.Equal(t, len(tt.wantCritical), report.CriticalRuleCount)
			assert.Equal(t, tt.wantCritical, report.CriticalRuleIDs)
			assert.Equal(t, tt.wantVerdict, report.Verdict)
			assert.Equal(t, tt.wantExit, report.ExitCode())
			assert.Equal(t, DefaultDisplayLimit, report.DisplayLimit)
		})
	}
}

func TestBuildReport_DisplayLimit(t *testing.T) {
	report := BuildReport(m.ScanResult{}, 2)
	assert.Equal(t, 2, report.DisplayLimit)
}
