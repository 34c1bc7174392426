// Package rules holds the static rule tables the scanners are configured with.
package rules

import (
	m "github.com/mouse-blink/solscan/internal/model"
)

// CodeExtensions are the file extensions scanned for antipattern markers.
var CodeExtensions = []string{
	".js", ".ts", ".jsx", ".tsx", ".py", ".rs", ".go", ".java", ".cpp", ".c", ".rb",
}

// ExcludedDirs are directory names never descended into.
var ExcludedDirs = []string{"node_modules", "vendor", ".git", "dist", "build"}

// TestDirs are conventional test directory names looked up in the root.
var TestDirs = []string{"tests", "test", "__tests__", "spec"}

// CoverageFiles are conventional coverage report locations relative to the root.
var CoverageFiles = []string{
	"coverage/coverage-summary.json",
	".coverage",
	"coverage.xml",
	"lcov.info",
}

// DecisionDirs are candidate architecture decision record directories, in
// lookup order.
var DecisionDirs = []string{
	"docs/ADR",
	"docs/adr",
	"ADR",
	"adr",
	"doc/architecture/decisions",
}

// DecisionRecordGlob selects decision documents inside a decision directory.
const DecisionRecordGlob = "*.md"

// Antipatterns returns the antipattern catalog in report order.
func Antipatterns() []m.Rule {
	return []m.Rule{
		{
			ID:       "ANTI-001",
			Name:     "Copy-Paste Without Comprehension",
			Severity: m.SeverityHigh,
			Patterns: []string{
				`// ?copied from`,
				`# ?copied from`,
				`// ?source:`,
				`# ?source:`,
				`stackoverflow\.com`,
				`from chatgpt`,
				`from copilot`,
			},
		},
		{
			ID:       "ANTI-002",
			Name:     "Tests as Afterthought",
			Severity: m.SeverityCritical,
			Check:    m.CheckCoverage,
		},
		{
			ID:       "ANTI-003",
			Name:     "Accumulated Technical Debt",
			Severity: m.SeverityCritical,
			Patterns: []string{
				`\bTODO\b`,
				`\bFIXME\b`,
				`\bHACK\b`,
				`\bXXX\b`,
				`\bKLUDGE\b`,
				`temporary fix`,
				`quick fix`,
				`will fix later`,
			},
		},
		{
			ID:       "ANTI-004",
			Name:     "Speculation-Driven API Design",
			Severity: m.SeverityCritical,
			Patterns: []string{
				`should have`,
				`probably has`,
				`might be`,
				`I think it`,
				`assuming`,
				`// ?untested`,
				`# ?untested`,
			},
		},
		{
			ID:       "ANTI-005",
			Name:     "Hidden Technical Debt",
			Severity: m.SeverityHigh,
			Patterns: []string{
				`workaround`,
				`work around`,
				`dirty hack`,
				`not ideal`,
				`should be refactored`,
				`tech debt`,
				`technical debt`,
			},
		},
		{
			ID:       "ANTI-006",
			Name:     "Undocumented Decisions",
			Severity: m.SeverityMedium,
			Check:    m.CheckDecisionRecords,
		},
	}
}
