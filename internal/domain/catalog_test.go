package domain

import (
	"testing"

	"github.com/mouse-blink/solscan/internal/domain/rules"
	m "github.com/mouse-blink/solscan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_BuiltinAntipatterns(t *testing.T) {
	catalog, err := NewCatalog(rules.Antipatterns())
	require.NoError(t, err)

	ids := make([]string, 0)
	for _, r := range catalog.Rules() {
		ids = append(ids, r.ID)
	}

	assert.Equal(t, []string{"ANTI-001", "ANTI-002", "ANTI-003", "ANTI-004", "ANTI-005", "ANTI-006"}, ids)
	assert.Len(t, catalog.patternRules(), 4)
	assert.Len(t, catalog.specialRules(), 2)

	rule, ok := catalog.Lookup("ANTI-003")
	require.True(t, ok)
	assert.Equal(t, m.SeverityCritical, rule.Severity)

	_, ok = catalog.Lookup("ANTI-999")
	assert.False(t, ok)
}

func TestNewCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		defs []m.Rule
	}{
		{
			name: "duplicate id",
			defs: []m.Rule{
				{ID: "A", Severity: m.SeverityLow, Patterns: []string{"x"}},
				{ID: "A", Severity: m.SeverityLow, Patterns: []string{"y"}},
			},
		},
		{
			name: "invalid pattern",
			defs: []m.Rule{{ID: "A", Severity: m.SeverityLow, Patterns: []string{"(unclosed"}}},
		},
		{
			name: "patterns and check",
			defs: []m.Rule{{ID: "A", Severity: m.SeverityLow, Patterns: []string{"x"}, Check: m.CheckCoverage}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.defs)
			assert.Error(t, err)
		})
	}
}

func TestCatalog_PatternsAreCaseInsensitive(t *testing.T) {
	catalog, err := NewCatalog([]m.Rule{{ID: "A", Severity: m.SeverityLow, Patterns: []string{`\bTODO\b`}}})
	require.NoError(t, err)

	re := catalog.patternRules()[0].patterns[0]
	assert.True(t, re.MatchString("// todo: later"))
	assert.True(t, re.MatchString("x = 1 # ToDo"))
	assert.False(t, re.MatchString("todos = []"))
}

func TestCatalog_Without(t *testing.T) {
	catalog, err := NewCatalog(rules.Antipatterns())
	require.NoError(t, err)

	t.Run("no ids returns the same catalog", func(t *testing.T) {
		out, err := catalog.Without()
		require.NoError(t, err)
		assert.Same(t, catalog, out)
	})

	t.Run("removes rules and normalizes ids", func(t *testing.T) {
		out, err := catalog.Without(" anti-006", "ANTI-001")
		require.NoError(t, err)

		var ids []string
		for _, r := range out.Rules() {
			ids = append(ids, r.ID)
		}

		assert.Equal(t, []string{"ANTI-002", "ANTI-003", "ANTI-004", "ANTI-005"}, ids)
		_, ok := out.Lookup("ANTI-006")
		assert.False(t, ok)
		assert.Len(t, catalog.Rules(), 6, "source catalog must not change")
	})

	t.Run("unknown id suggests a close match", func(t *testing.T) {
		_, err := catalog.Without("ANTI06")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ANTI06")
		assert.Contains(t, err.Error(), "did you mean ANTI-006")
	})

	t.Run("unknown id without a close match lists rules", func(t *testing.T) {
		_, err := catalog.Without("zzz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "known rules: ANTI-001")
	})
}
