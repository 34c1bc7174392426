package domain

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mouse-blink/solscan/internal/adapter"
	adaptermocks "github.com/mouse-blink/solscan/internal/adapter/mocks"
	"github.com/mouse-blink/solscan/internal/domain/rules"
	"github.com/mouse-blink/solscan/internal/logging"
	m "github.com/mouse-blink/solscan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAntipatternScanner(t *testing.T, fsAdapter adapter.SourceFSAdapter, excerptLen int) LineScanner {
	t.Helper()

	catalog, err := NewCatalog(rules.Antipatterns())
	require.NoError(t, err)

	return NewLineScanner(fsAdapter, catalog, excerptLen, logging.Nop())
}

func TestLineScanner_ScanFile(t *testing.T) {
	t.Run("reports line numbers from one", func(t *testing.T) {
		path := writeSource(t, t.TempDir(), "main.py", "x = 1\n# TODO: fix\ny = 2\n")
		scanner := newAntipatternScanner(t, adapter.NewLocalSourceFSAdapter(), 0)

		scan := scanner.ScanFile(path)

		assert.False(t, scan.Unreadable)
		assert.Equal(t, []m.LineHit{{Line: 2, Excerpt: "# TODO: fix", Pattern: `\bTODO\b`}}, scan.Hits["ANTI-003"])
		assert.Len(t, scan.Hits, 1)
	})

	t.Run("first matching pattern wins per rule and line", func(t *testing.T) {
		path := writeSource(t, t.TempDir(), "main.go", "// TODO FIXME HACK\n")
		scanner := newAntipatternScanner(t, adapter.NewLocalSourceFSAdapter(), 0)

		scan := scanner.ScanFile(path)

		require.Len(t, scan.Hits["ANTI-003"], 1)
		assert.Equal(t, `\bTODO\b`, scan.Hits["ANTI-003"][0].Pattern)
	})

	t.Run("one line can hit several rules", func(t *testing.T) {
		path := writeSource(t, t.TempDir(), "main.js", "// TODO: workaround, should have been fixed\n")
		scanner := newAntipatternScanner(t, adapter.NewLocalSourceFSAdapter(), 0)

		scan := scanner.ScanFile(path)

		assert.Len(t, scan.Hits["ANTI-003"], 1)
		assert.Len(t, scan.Hits["ANTI-004"], 1)
		assert.Len(t, scan.Hits["ANTI-005"], 1)
		assert.NotContains(t, scan.Hits, "ANTI-001")
	})

	t.Run("matching is case-insensitive and unanchored", func(t *testing.T) {
		path := writeSource(t, t.TempDir(), "app.rb", "value = compute() # see StackOverflow.com/q/1\n")
		scanner := newAntipatternScanner(t, adapter.NewLocalSourceFSAdapter(), 0)

		scan := scanner.ScanFile(path)

		require.Len(t, scan.Hits["ANTI-001"], 1)
		assert.Equal(t, `stackoverflow\.com`, scan.Hits["ANTI-001"][0].Pattern)
	})

	t.Run("word boundaries are respected", func(t *testing.T) {
		path := writeSource(t, t.TempDir(), "main.py", "todos = []\nxxxl = 1\n")
		scanner := newAntipatternScanner(t, adapter.NewLocalSourceFSAdapter(), 0)

		scan := scanner.ScanFile(path)

		assert.Empty(t, scan.Hits)
	})

	t.Run("windows line endings", func(t *testing.T) {
		path := writeSource(t, t.TempDir(), "main.c", "int x;\r\n/* HACK */\r\n")
		scanner := newAntipatternScanner(t, adapter.NewLocalSourceFSAdapter(), 0)

		scan := scanner.ScanFile(path)

		assert.Equal(t, []m.LineHit{{Line: 2, Excerpt: "/* HACK */", Pattern: `\bHACK\b`}}, scan.Hits["ANTI-003"])
	})

	t.Run("excerpt is trimmed and truncated", func(t *testing.T) {
		long := "    # TODO " + strings.Repeat("é", 100) + "   \n"
		path := writeSource(t, t.TempDir(), "main.py", long)
		scanner := newAntipatternScanner(t, adapter.NewLocalSourceFSAdapter(), 20)

		scan := scanner.ScanFile(path)

		require.Len(t, scan.Hits["ANTI-003"], 1)
		got := scan.Hits["ANTI-003"][0].Excerpt
		assert.Equal(t, 20, len([]rune(got)))
		assert.Equal(t, "# TODO "+strings.Repeat("é", 13), got)
	})

	t.Run("empty file has no hits", func(t *testing.T) {
		path := writeSource(t, t.TempDir(), "empty.ts", "")
		scanner := newAntipatternScanner(t, adapter.NewLocalSourceFSAdapter(), 0)

		scan := scanner.ScanFile(path)

		assert.False(t, scan.Unreadable)
		assert.Empty(t, scan.Hits)
	})

	t.Run("unreadable file is marked and yields no hits", func(t *testing.T) {
		mockFS := adaptermocks.NewMockSourceFSAdapter(t)
		mockFS.EXPECT().ReadText(m.Path("locked.py")).Return("", os.ErrPermission)

		scanner := newAntipatternScanner(t, mockFS, 0)

		scan := scanner.ScanFile("locked.py")

		assert.True(t, scan.Unreadable)
		assert.True(t, errors.Is(scan.Err, os.ErrPermission))
		assert.Empty(t, scan.Hits)
	})
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\r\n\r\nb"))
}

func writeSource(t *testing.T, dir, rel, content string) m.Path {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error: %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	return m.Path(path)
}

func mkdir(t *testing.T, dir, rel string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(rel)), 0o755); err != nil {
		t.Fatalf("MkdirAll() error: %v", err)
	}
}
