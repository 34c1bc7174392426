package model

import (
	"fmt"
	"strings"
)

// Severity ranks how much a rule matters. The zero value is invalid.
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ParseSeverity converts a name such as "high" into a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "LOW":
		return SeverityLow, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "HIGH":
		return SeverityHigh, nil
	case "CRITICAL":
		return SeverityCritical, nil
	}

	return 0, fmt.Errorf("unknown severity %q", name)
}

// CheckKind names a structural check run against the project root.
type CheckKind string

const (
	// CheckCoverage looks for test directories and coverage reports.
	CheckCoverage CheckKind = "coverage_analysis"
	// CheckDecisionRecords looks for an architecture decision record directory.
	CheckDecisionRecords CheckKind = "adr_check"
)

// Rule is a single catalog entry. Exactly one of Patterns or Check is set.
type Rule struct {
	ID       string
	Name     string
	Severity Severity
	Patterns []string
	Check    CheckKind
}

// IsSpecial reports whether the rule is evaluated against project structure.
func (r Rule) IsSpecial() bool {
	return r.Check != ""
}

// Validate checks the one-of invariant between Patterns and Check.
func (r Rule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("rule has empty id")
	}

	if r.Severity < SeverityLow || r.Severity > SeverityCritical {
		return fmt.Errorf("rule %s: invalid severity %d", r.ID, int(r.Severity))
	}

	hasPatterns := len(r.Patterns) > 0
	if hasPatterns == r.IsSpecial() {
		return fmt.Errorf("rule %s: exactly one of patterns or check must be set", r.ID)
	}

	return nil
}
