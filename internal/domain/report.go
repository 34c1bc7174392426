package domain

import (
	m "github.com/mouse-blink/solscan/internal/model"
)

// DefaultDisplayLimit is how many findings per rule a report shows.
const DefaultDisplayLimit = 5

// BuildReport derives the summary and verdict from a completed scan.
func BuildReport(result m.ScanResult, displayLimit int) m.Report {
	if displayLimit <= 0 {
		displayLimit = DefaultDisplayLimit
	}

	report := m.Report{
		Result:       result,
		DisplayLimit: displayLimit,
	}

	anyFired := false

	for _, rr := range result.Rules {
		if !rr.Fired() {
			continue
		}

		anyFired = true
		report.TotalIssues += len(rr.Findings)

		if rr.Rule.Severity == m.SeverityCritical {
			report.CriticalRuleCount++
			report.CriticalRuleIDs = append(report.CriticalRuleIDs, rr.Rule.ID)
		}
	}

	switch {
	case report.CriticalRuleCount > 0:
		report.Verdict = m.VerdictCritical
	case anyFired:
		report.Verdict = m.VerdictWarning
	default:
		report.Verdict = m.VerdictClean
	}

	return report
}
