// Package model defines the data structures for FASTA scanning.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Candidate represents a file picked up by the directory walk before
// parsing. Only names ending in a FASTA extension become candidates.
type Candidate struct {
	Origin  Path
	Symlink bool
}

// Name returns the candidate's file name with its directory stripped.
func (c Candidate) Name() string {
	return filepath.Base(string(c.Origin))
}
