package domain

import (
	"fmt"

	"github.com/mouse-blink/solscan/internal/adapter"
	"github.com/mouse-blink/solscan/internal/domain/rules"
	m "github.com/mouse-blink/solscan/internal/model"
)

// Issue texts reported by the structural checks.
const (
	IssueNoTestDir        = "No test directory found"
	IssueNoCoverageReport = "No coverage report found"
	IssueNoDecisionDir    = "No ADR directory found"
	IssueEmptyDecisionDir = "ADR directory exists but is empty"
)

// SpecialCheckRunner evaluates rules that inspect project structure instead
// of file content. Checks only probe existence and list directories.
type SpecialCheckRunner interface {
	Run(root m.Path, kind m.CheckKind) (m.SpecialResult, error)
}

// StructureLayout names the conventional locations the checks probe.
type StructureLayout struct {
	TestDirs      []string
	CoverageFiles []string
	DecisionDirs  []string
}

// DefaultStructureLayout returns the built-in conventional locations.
func DefaultStructureLayout() StructureLayout {
	return StructureLayout{
		TestDirs:      rules.TestDirs,
		CoverageFiles: rules.CoverageFiles,
		DecisionDirs:  rules.DecisionDirs,
	}
}

type specialCheckRunner struct {
	fsAdapter adapter.SourceFSAdapter
	layout    StructureLayout
}

// NewSpecialCheckRunner constructs a runner probing the given layout.
func NewSpecialCheckRunner(fsAdapter adapter.SourceFSAdapter, layout StructureLayout) SpecialCheckRunner {
	return &specialCheckRunner{fsAdapter: fsAdapter, layout: layout}
}

func (r *specialCheckRunner) Run(root m.Path, kind m.CheckKind) (m.SpecialResult, error) {
	switch kind {
	case m.CheckCoverage:
		return r.checkCoverage(root), nil
	case m.CheckDecisionRecords:
		return r.checkDecisionRecords(root), nil
	default:
		return m.SpecialResult{}, fmt.Errorf("unknown special check %q", kind)
	}
}

// checkCoverage flags a missing test directory and a missing coverage
// report independently; both share one detection flag.
func (r *specialCheckRunner) checkCoverage(root m.Path) m.SpecialResult {
	var result m.SpecialResult

	if !r.anyExists(root, r.layout.TestDirs) {
		result.Detected = true
		result.Issues = append(result.Issues, IssueNoTestDir)
	}

	if !r.anyExists(root, r.layout.CoverageFiles) {
		result.Detected = true
		result.Issues = append(result.Issues, IssueNoCoverageReport)
	}

	return result
}

// checkDecisionRecords uses the first candidate directory that exists. The
// missing and empty outcomes are mutually exclusive.
func (r *specialCheckRunner) checkDecisionRecords(root m.Path) m.SpecialResult {
	var dir m.Path

	for _, candidate := range r.layout.DecisionDirs {
		p := r.fsAdapter.JoinPath(string(root), candidate)
		if r.fsAdapter.Exists(p) {
			dir = p
			break
		}
	}

	if dir == "" {
		return m.SpecialResult{Detected: true, Issues: []string{IssueNoDecisionDir}}
	}

	docs, err := r.fsAdapter.Glob(dir, rules.DecisionRecordGlob)
	if err != nil {
		docs = nil
	}

	if len(docs) == 0 {
		return m.SpecialResult{Detected: true, Issues: []string{IssueEmptyDecisionDir}}
	}

	return m.SpecialResult{Count: len(docs)}
}

func (r *specialCheckRunner) anyExists(root m.Path, names []string) bool {
	for _, name := range names {
		if r.fsAdapter.Exists(r.fsAdapter.JoinPath(string(root), name)) {
			return true
		}
	}

	return false
}
