package domain

import (
	"strings"

	"github.com/mouse-blink/solscan/internal/adapter"
	m "github.com/mouse-blink/solscan/internal/model"
	"go.uber.org/zap"
)

// DefaultExcerptLength caps excerpts kept for the report.
const DefaultExcerptLength = 80

// LineScanner applies the pattern rules of a catalog to single files.
type LineScanner interface {
	ScanFile(path m.Path) m.FileScan
}

type lineScanner struct {
	fsAdapter  adapter.SourceFSAdapter
	catalog    *Catalog
	excerptLen int
	log        *zap.SugaredLogger
}

// NewLineScanner constructs a LineScanner. An excerptLen of zero or less
// selects DefaultExcerptLength.
func NewLineScanner(fsAdapter adapter.SourceFSAdapter, catalog *Catalog, excerptLen int, log *zap.SugaredLogger) LineScanner {
	if excerptLen <= 0 {
		excerptLen = DefaultExcerptLength
	}

	return &lineScanner{
		fsAdapter:  fsAdapter,
		catalog:    catalog,
		excerptLen: excerptLen,
		log:        log,
	}
}

// ScanFile never fails: unreadable files come back marked Unreadable with no hits.
func (s *lineScanner) ScanFile(path m.Path) m.FileScan {
	text, err := s.fsAdapter.ReadText(path)
	if err != nil {
		s.log.Debugw("skipping unreadable file", "path", path, "error", err)

		return m.FileScan{Path: path, Unreadable: true, Err: err}
	}

	return m.FileScan{Path: path, Hits: s.scanText(text)}
}

func (s *lineScanner) scanText(text string) map[string][]m.LineHit {
	hits := make(map[string][]m.LineHit)
	rules := s.catalog.patternRules()

	for i, line := range splitLines(text) {
		for _, cr := range rules {
			for j, re := range cr.patterns {
				if !re.MatchString(line) {
					continue
				}

				hits[cr.rule.ID] = append(hits[cr.rule.ID], m.LineHit{
					Line:    i + 1,
					Excerpt: excerpt(line, s.excerptLen),
					Pattern: cr.rule.Patterns[j],
				})

				// first match wins for this rule on this line
				break
			}
		}
	}

	return hits
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func excerpt(line string, limit int) string {
	trimmed := strings.TrimSpace(line)

	runes := []rune(trimmed)
	if len(runes) <= limit {
		return trimmed
	}

	return string(runes[:limit])
}
