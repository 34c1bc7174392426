// Package model defines the data structures shared by the scanners.
package model

// Path represents a file system path.
type Path string

// FileScan is the outcome of scanning a single file. Unreadable separates
// "could not read" from "read fine, nothing matched".
type FileScan struct {
	Path       Path
	Unreadable bool
	Err        error
	// Hits maps rule id to hits in line order.
	Hits map[string][]LineHit
}

// LineHit is one pattern match inside a file.
type LineHit struct {
	Line    int
	Excerpt string
	Pattern string
}
