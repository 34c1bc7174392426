package domain

import (
	"sync"

	m "github.com/mouse-blink/solscan/internal/model"
)

// Aggregator accumulates per-file hits and special-check outcomes into one
// RuleResult per catalog rule. It is safe for concurrent use; results keep
// insertion order, so callers wanting a reproducible report add files in
// walk order.
type Aggregator struct {
	mu      sync.Mutex
	root    m.Path
	results []m.RuleResult
	index   map[string]int
	scanned int
	bad     []m.Path
}

// NewAggregator prepares an empty result for every rule in the catalog.
func NewAggregator(root m.Path, catalog *Catalog) *Aggregator {
	defs := catalog.Rules()

	a := &Aggregator{
		root:    root,
		results: make([]m.RuleResult, len(defs)),
		index:   make(map[string]int, len(defs)),
	}

	for i, def := range defs {
		a.results[i] = m.RuleResult{
			Rule:          def,
			Findings:      []m.Finding{},
			FilesAffected: map[m.Path]struct{}{},
		}
		a.index[def.ID] = i
	}

	return a
}

// AddFile merges the hits of one file. rel is the path reported in findings.
func (a *Aggregator) AddFile(rel m.Path, scan m.FileScan) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.scanned++

	if scan.Unreadable {
		a.bad = append(a.bad, rel)
		return
	}

	// Iterate in catalog order so map iteration order never leaks into results.
	for i := range a.results {
		hits := scan.Hits[a.results[i].Rule.ID]
		if len(hits) == 0 {
			continue
		}

		rr := &a.results[i]
		for _, hit := range hits {
			rr.Findings = append(rr.Findings, m.Finding{
				RuleID:  rr.Rule.ID,
				File:    rel,
				Line:    hit.Line,
				Excerpt: hit.Excerpt,
				Pattern: hit.Pattern,
			})
		}

		rr.FilesAffected[rel] = struct{}{}
	}
}

// AddSpecial records the outcome of a structural check. Unknown ids are ignored.
func (a *Aggregator) AddSpecial(ruleID string, res m.SpecialResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	i, ok := a.index[ruleID]
	if !ok {
		return
	}

	special := res
	special.Issues = append([]string(nil), res.Issues...)
	a.results[i].Special = &special
}

// Result returns a snapshot of everything accumulated so far.
func (a *Aggregator) Result() m.ScanResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := m.ScanResult{
		Root:         a.root,
		Rules:        make([]m.RuleResult, len(a.results)),
		FilesScanned: a.scanned,
		Unreadable:   append([]m.Path(nil), a.bad...),
	}

	for i, rr := range a.results {
		files := make(map[m.Path]struct{}, len(rr.FilesAffected))
		for f := range rr.FilesAffected {
			files[f] = struct{}{}
		}

		out.Rules[i] = m.RuleResult{
			Rule:          rr.Rule,
			Findings:      append([]m.Finding{}, rr.Findings...),
			FilesAffected: files,
			Special:       rr.Special,
		}
	}

	return out
}
