package model

// Finding is one match of one rule at one location. Line is 0 for
// project-scoped findings produced by special checks.
type Finding struct {
	RuleID  string
	File    Path // relative to the scan root, slash separated
	Line    int
	Excerpt string
	Pattern string
	Issue   string
}

// SpecialResult is the outcome of one structural check.
type SpecialResult struct {
	Detected bool
	Issues   []string
	// Count carries a check-specific number, e.g. decision records found.
	Count int
}

// RuleResult holds everything collected for a single rule.
type RuleResult struct {
	Rule          Rule
	Findings      []Finding
	FilesAffected map[Path]struct{}
	Special       *SpecialResult
}

// Fired reports whether the rule produced anything worth reporting.
func (r RuleResult) Fired() bool {
	return len(r.Findings) > 0 || (r.Special != nil && r.Special.Detected)
}

// ScanResult is the per-rule outcome of a scan, in catalog order.
type ScanResult struct {
	Root         Path
	Rules        []RuleResult
	FilesScanned int
	Unreadable   []Path
}

// Verdict is the overall outcome message class.
type Verdict int

const (
	VerdictClean Verdict = iota
	VerdictWarning
	VerdictCritical
)

func (v Verdict) String() string {
	switch v {
	case VerdictCritical:
		return "critical"
	case VerdictWarning:
		return "warning"
	default:
		return "clean"
	}
}

// Report is the read-only view built once from a completed ScanResult.
type Report struct {
	Result            ScanResult
	TotalIssues       int
	CriticalRuleCount int
	CriticalRuleIDs   []string
	Verdict           Verdict
	DisplayLimit      int
}

// Fired returns the rule results that should appear in the report.
func (r Report) Fired() []RuleResult {
	fired := make([]RuleResult, 0, len(r.Result.Rules))

	for _, rr := range r.Result.Rules {
		if rr.Fired() {
			fired = append(fired, rr)
		}
	}

	return fired
}

// ExitCode is 1 when any critical rule fired and 0 otherwise.
func (r Report) ExitCode() int {
	if r.CriticalRuleCount > 0 {
		return 1
	}

	return 0
}
