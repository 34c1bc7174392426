package domain

import (
	"runtime"
	"time"

	"github.com/mouse-blink/solscan/internal/adapter"
	"github.com/mouse-blink/solscan/internal/domain/rules"
)

// Options is the resolved, immutable configuration of one run.
type Options struct {
	Extensions    []string
	ExcludeDirs   []string
	Disable       []string
	DisplayLimit  int
	ExcerptLength int
	Parallel      int
	Timeout       time.Duration
	Layout        StructureLayout
}

// DefaultOptions returns the built-in configuration.
func DefaultOptions() Options {
	return Options{
		Extensions:    clone(rules.CodeExtensions),
		ExcludeDirs:   clone(rules.ExcludedDirs),
		DisplayLimit:  DefaultDisplayLimit,
		ExcerptLength: DefaultExcerptLength,
		Parallel:      runtime.NumCPU(),
		Layout:        DefaultStructureLayout(),
	}
}

// Merge applies non-zero values from a configuration file. Lists replace the
// defaults except exclude_dirs and disable, which extend them.
func (o Options) Merge(cfg adapter.Config) Options {
	out := o
	out.ExcludeDirs = clone(o.ExcludeDirs)
	out.Disable = clone(o.Disable)

	if len(cfg.Extensions) > 0 {
		out.Extensions = clone(cfg.Extensions)
	}

	out.ExcludeDirs = appendUnique(out.ExcludeDirs, cfg.ExcludeDirs...)
	out.Disable = appendUnique(out.Disable, cfg.Disable...)

	if cfg.DisplayLimit > 0 {
		out.DisplayLimit = cfg.DisplayLimit
	}

	if cfg.ExcerptLength > 0 {
		out.ExcerptLength = cfg.ExcerptLength
	}

	if cfg.Parallel > 0 {
		out.Parallel = cfg.Parallel
	}

	if len(cfg.TestDirs) > 0 {
		out.Layout.TestDirs = clone(cfg.TestDirs)
	}

	if len(cfg.CoverageFiles) > 0 {
		out.Layout.CoverageFiles = clone(cfg.CoverageFiles)
	}

	if len(cfg.DecisionDirs) > 0 {
		out.Layout.DecisionDirs = clone(cfg.DecisionDirs)
	}

	return out
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}

	return append([]string(nil), s...)
}

func appendUnique(dst []string, items ...string) []string {
	seen := make(map[string]struct{}, len(dst))
	for _, d := range dst {
		seen[d] = struct{}{}
	}

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		dst = append(dst, item)
	}

	return dst
}
