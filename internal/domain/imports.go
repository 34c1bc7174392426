package domain

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/mouse-blink/solscan/internal/adapter"
	"github.com/mouse-blink/solscan/internal/domain/rules"
	m "github.com/mouse-blink/solscan/internal/model"
	"go.uber.org/zap"
)

// ImportVerifier finds external imports and checks each one has a
// verification document.
type ImportVerifier interface {
	Verify(ctx context.Context, root m.Path, excludeDirs []string) (m.ImportReport, error)
}

type importLanguage struct {
	def      rules.ImportLanguage
	patterns []*regexp.Regexp
}

type importVerifier struct {
	fsAdapter adapter.SourceFSAdapter
	languages []importLanguage
	byExt     map[string]int
	log       *zap.SugaredLogger
}

// NewImportVerifier compiles the language tables.
func NewImportVerifier(fsAdapter adapter.SourceFSAdapter, languages []rules.ImportLanguage, log *zap.SugaredLogger) (ImportVerifier, error) {
	v := &importVerifier{
		fsAdapter: fsAdapter,
		byExt:     make(map[string]int),
		log:       log,
	}

	for _, lang := range languages {
		compiled := importLanguage{def: lang}

		for _, p := range lang.Patterns {
			if lang.Multiline {
				p = "(?m)" + p
			}

			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("%s: compiling pattern %q: %w", lang.Name, p, err)
			}

			compiled.patterns = append(compiled.patterns, re)
		}

		for _, ext := range lang.Extensions {
			v.byExt[ext] = len(v.languages)
		}

		v.languages = append(v.languages, compiled)
	}

	return v, nil
}

func (v *importVerifier) Verify(ctx context.Context, root m.Path, excludeDirs []string) (m.ImportReport, error) {
	usage := make(map[string]map[m.Path]struct{})

	filter := adapter.WalkFilter{
		Extensions:  v.extensions(),
		ExcludeDirs: excludeDirs,
	}

	err := v.fsAdapter.Walk(root, filter, func(path m.Path) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		lang, ok := v.byExt[filepath.Ext(string(path))]
		if !ok {
			return nil
		}

		text, err := v.fsAdapter.ReadText(path)
		if err != nil {
			v.log.Debugw("skipping unreadable file", "path", path, "error", err)
			return nil
		}

		rel, err := v.fsAdapter.RelPath(root, path)
		if err != nil {
			return err
		}

		for _, name := range v.languages[lang].extract(text) {
			if usage[name] == nil {
				usage[name] = make(map[m.Path]struct{})
			}

			usage[name][rel] = struct{}{}
		}

		return nil
	})
	if err != nil {
		return m.ImportReport{}, err
	}

	verified := v.verifiedNames(root)

	report := m.ImportReport{Root: root}

	names := make([]string, 0, len(usage))
	for name := range usage {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		entry := m.ImportUsage{Name: name, Files: sortedPaths(usage[name])}

		_, exact := verified[name]
		_, normalized := verified[normalizeLibraryName(name)]

		if exact || normalized {
			report.Verified = append(report.Verified, entry)
		} else {
			report.Unverified = append(report.Unverified, entry)
		}
	}

	return report, nil
}

func (v *importVerifier) extensions() []string {
	exts := make([]string, 0, len(v.byExt))
	for ext := range v.byExt {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	return exts
}

// verifiedNames collects normalized document stems from every verification
// directory that exists.
func (v *importVerifier) verifiedNames(root m.Path) map[string]struct{} {
	names := make(map[string]struct{})

	for _, dir := range rules.VerificationDirs {
		p := v.fsAdapter.JoinPath(string(root), dir)
		if !v.fsAdapter.Exists(p) {
			continue
		}

		docs, err := v.fsAdapter.Glob(p, "*.md")
		if err != nil {
			v.log.Debugw("cannot list verification directory", "path", p, "error", err)
			continue
		}

		for _, doc := range docs {
			stem := strings.TrimSuffix(filepath.Base(string(doc)), ".md")
			names[normalizeLibraryName(stem)] = struct{}{}
		}
	}

	return names
}

func (l importLanguage) extract(text string) []string {
	seen := make(map[string]struct{})

	var out []string

	for _, re := range l.patterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			name := match[1]
			if l.def.BaseSegment {
				name, _, _ = strings.Cut(name, "/")
			}

			if l.skip(name) {
				continue
			}

			if _, dup := seen[name]; dup {
				continue
			}

			seen[name] = struct{}{}
			out = append(out, name)
		}
	}

	return out
}

func (l importLanguage) skip(name string) bool {
	if name == "" {
		return true
	}

	if _, builtin := l.def.Builtins[name]; builtin {
		return true
	}

	for _, prefix := range l.def.SkipPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}

	return false
}

func normalizeLibraryName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "_")

	return strings.ReplaceAll(name, " ", "_")
}

func sortedPaths(set map[m.Path]struct{}) []m.Path {
	out := make([]m.Path, 0, len(set))
	for p := range set {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
