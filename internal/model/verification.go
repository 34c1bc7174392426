package model

// ImportUsage is one external import and the files that use it.
type ImportUsage struct {
	Name  string
	Files []Path // sorted
}

// ImportReport is the outcome of an import verification scan.
type ImportReport struct {
	Root       Path
	Verified   []ImportUsage
	Unverified []ImportUsage
}

// Total is the number of distinct external imports.
func (r ImportReport) Total() int {
	return len(r.Verified) + len(r.Unverified)
}

// ExitCode is 1 when any import lacks a verification document.
func (r ImportReport) ExitCode() int {
	if len(r.Unverified) > 0 {
		return 1
	}

	return 0
}

// SpecValidation is the outcome of validating one specification document.
type SpecValidation struct {
	File     Path
	Errors   []string
	Warnings []string
}

// Valid reports whether the document has no errors.
func (v SpecValidation) Valid() bool {
	return len(v.Errors) == 0
}
