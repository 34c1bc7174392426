// Package adapter contains filesystem and configuration adapters for the solscan CLI.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	m "github.com/mouse-blink/solscan/internal/model"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// scanning logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps the scanners decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk visits every regular file under root accepted by filter, in
	// lexical path order. Unreadable directories are skipped.
	Walk(root m.Path, filter WalkFilter, fn FilepathWalkFunc) error

	// ReadText loads a file and decodes it permissively: malformed UTF-8 is
	// replaced with U+FFFD and UTF-16 files with a byte order mark are
	// transcoded.
	ReadText(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether anything exists at path.
	Exists(path m.Path) bool

	// Glob returns the entries directly inside dir whose base name matches
	// pattern, sorted.
	Glob(dir m.Path, pattern string) ([]m.Path, error)

	// RelPath returns the slash-separated path of target relative to base.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc receives each accepted file path. Returning an error stops
// the walk and the error is returned from Walk.
type FilepathWalkFunc func(path m.Path) error

// WalkFilter restricts which files Walk reports.
type WalkFilter struct {
	// Extensions is the allow-list of file extensions, including the dot.
	Extensions []string
	// ExcludeDirs lists directory names that are never descended into.
	ExcludeDirs []string
}

func (f WalkFilter) allows(name string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}

	for _, allowed := range f.Extensions {
		if ext == allowed {
			return true
		}
	}

	return false
}

func (f WalkFilter) excludes(dirName string) bool {
	for _, skip := range f.ExcludeDirs {
		if dirName == skip {
			return true
		}
	}

	return false
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over accepted files under root. filepath.WalkDir visits
// entries in lexical order, which keeps reports reproducible.
func (a *LocalSourceFSAdapter) Walk(root m.Path, filter WalkFilter, fn FilepathWalkFunc) error {
	rootStr := string(root)

	if _, err := os.Stat(rootStr); err != nil {
		return fmt.Errorf("root path error: %w", err)
	}

	return filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootStr {
				return err
			}

			// One bad directory must not end the whole walk.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			if path != rootStr && filter.excludes(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() || !filter.allows(d.Name()) {
			return nil
		}

		return fn(m.Path(path))
	})
}

// ReadText loads and decodes file contents from disk.
func (a *LocalSourceFSAdapter) ReadText(path m.Path) (string, error) {
	// #nosec G304 - path comes from walking the user-selected root
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether path exists. Errors other than "not exist" count as
// existing, matching a plain existence probe.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))

	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// Glob lists entries of dir whose names match pattern.
func (a *LocalSourceFSAdapter) Glob(dir m.Path, pattern string) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	var matches []m.Path

	for _, entry := range entries {
		ok, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, err
		}

		if ok {
			matches = append(matches, m.Path(filepath.Join(string(dir), entry.Name())))
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })

	return matches, nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(filepath.ToSlash(rel)), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
