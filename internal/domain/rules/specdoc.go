package rules

// Section is a markdown heading a specification document is checked for.
type Section struct {
	Heading string
	Label   string
}

// RequiredSections must all be present for a document to be valid.
var RequiredSections = []Section{
	{"## Overview", "Overview section"},
	{"## Acceptance Criteria", "Acceptance Criteria section"},
	{"## Technical Design", "Technical Design section"},
	{"## Dependencies", "Dependencies section"},
	{"## Test Plan", "Test Plan section"},
}

// RecommendedSections produce warnings when missing.
var RecommendedSections = []Section{
	{"## API Contract", "API Contract section"},
	{"## Security Considerations", "Security Considerations section"},
	{"## Rollout Plan", "Rollout Plan section"},
}

// TODOPattern counts TODO placeholders, case-insensitively.
const TODOPattern = `(?i)\[TODO[:\]s]`

// PlaceholderPatterns are template leftovers; the first match of each is reported.
var PlaceholderPatterns = []string{
	`\[TODO\]`,
	`\[TODO:.*?\]`,
	`\[Name\]`,
	`\[Description\]`,
	`\[purpose\]`,
}

// Checkbox matches a ticked or unticked markdown task item.
const Checkbox = `- \[[ x]\]`

// ExternalDepsReference must appear when the dependencies section mentions
// external dependencies.
const ExternalDepsReference = "PAT-006"
