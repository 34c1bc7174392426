package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_Ordering(t *testing.T) {
	assert.Less(t, SeverityLow, SeverityMedium)
	assert.Less(t, SeverityMedium, SeverityHigh)
	assert.Less(t, SeverityHigh, SeverityCritical)
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityLow, "LOW"},
		{SeverityMedium, "MEDIUM"},
		{SeverityHigh, "HIGH"},
		{SeverityCritical, "CRITICAL"},
		{Severity(0), "Severity(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sev.String())
		})
	}
}

func TestParseSeverity(t *testing.T) {
	sev, err := ParseSeverity(" critical ")
	require.NoError(t, err)
	assert.Equal(t, SeverityCritical, sev)

	_, err = ParseSeverity("urgent")
	assert.Error(t, err)
}

func TestRule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		wantErr bool
	}{
		{
			name: "pattern rule",
			rule: Rule{ID: "R1", Severity: SeverityLow, Patterns: []string{"x"}},
		},
		{
			name: "special rule",
			rule: Rule{ID: "R2", Severity: SeverityMedium, Check: CheckCoverage},
		},
		{
			name:    "both set",
			rule:    Rule{ID: "R3", Severity: SeverityLow, Patterns: []string{"x"}, Check: CheckCoverage},
			wantErr: true,
		},
		{
			name:    "neither set",
			rule:    Rule{ID: "R4", Severity: SeverityLow},
			wantErr: true,
		},
		{
			name:    "missing id",
			rule:    Rule{Severity: SeverityLow, Patterns: []string{"x"}},
			wantErr: true,
		},
		{
			name:    "invalid severity",
			rule:    Rule{ID: "R5", Patterns: []string{"x"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
