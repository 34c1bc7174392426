package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/mouse-blink/solscan/internal/adapter"
	"github.com/mouse-blink/solscan/internal/domain/rules"
	m "github.com/mouse-blink/solscan/internal/model"
)

// SpecValidator checks specification documents for required structure.
type SpecValidator interface {
	Validate(path m.Path) m.SpecValidation
}

type specValidator struct {
	fsAdapter    adapter.SourceFSAdapter
	todo         *regexp.Regexp
	placeholders []*regexp.Regexp
	checkbox     *regexp.Regexp
}

// NewSpecValidator compiles the document rule tables.
func NewSpecValidator(fsAdapter adapter.SourceFSAdapter) SpecValidator {
	v := &specValidator{
		fsAdapter: fsAdapter,
		todo:      regexp.MustCompile(rules.TODOPattern),
		checkbox:  regexp.MustCompile(rules.Checkbox),
	}

	for _, p := range rules.PlaceholderPatterns {
		v.placeholders = append(v.placeholders, regexp.MustCompile(p))
	}

	return v
}

// Validate never returns an error; a missing or unreadable file is reported
// as a validation error of that document.
func (v *specValidator) Validate(path m.Path) m.SpecValidation {
	result := m.SpecValidation{File: path}

	if _, err := v.fsAdapter.FileInfo(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Errors = append(result.Errors, fmt.Sprintf("File not found: %s", path))
		} else {
			result.Errors = append(result.Errors, fmt.Sprintf("Error reading file: %v", err))
		}

		return result
	}

	content, err := v.fsAdapter.ReadText(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Error reading file: %v", err))
		return result
	}

	for _, s := range rules.RequiredSections {
		if !strings.Contains(content, s.Heading) {
			result.Errors = append(result.Errors, "Missing required section: "+s.Label)
		}
	}

	for _, s := range rules.RecommendedSections {
		if !strings.Contains(content, s.Heading) {
			result.Warnings = append(result.Warnings, "Missing recommended section: "+s.Label)
		}
	}

	if todos := v.todo.FindAllString(content, -1); len(todos) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Found %d TODO placeholders - spec may be incomplete", len(todos)))
	}

	for _, re := range v.placeholders {
		if match := re.FindString(content); match != "" {
			result.Warnings = append(result.Warnings, "Found unfilled placeholder: "+match)
		}
	}

	if ac, ok := sectionBody(content, "## Acceptance Criteria"); ok && !v.checkbox.MatchString(ac) {
		result.Errors = append(result.Errors, "Acceptance Criteria section has no checkboxes")
	}

	if deps, ok := sectionBody(content, "## Dependencies"); ok {
		if !strings.Contains(content, rules.ExternalDepsReference) && strings.Contains(deps, "External") {
			result.Warnings = append(result.Warnings,
				"External dependencies found but no "+rules.ExternalDepsReference+" reference")
		}
	}

	if plan, ok := sectionBody(content, "## Test Plan"); ok {
		if !strings.Contains(plan, "|") && !strings.Contains(plan, "- [ ]") {
			result.Warnings = append(result.Warnings, "Test Plan section appears empty")
		}
	}

	return result
}

// sectionBody returns the text from heading up to the next "##" or the end
// of the document.
func sectionBody(content, heading string) (string, bool) {
	start := strings.Index(content, heading)
	if start < 0 {
		return "", false
	}

	rest := content[start+len(heading):]
	if end := strings.Index(rest, "##"); end >= 0 {
		rest = rest[:end]
	}

	return heading + rest, true
}
