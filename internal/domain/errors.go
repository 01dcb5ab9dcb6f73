package domain

import "errors"

// Sentinel errors returned by the scan workflow.
var (
	// ErrNoCandidates means the walk finished without a single FASTA
	// file to report on.
	ErrNoCandidates = errors.New("no fasta files found")

	// ErrNoHeader means a candidate contains no header lines and
	// therefore no sequences.
	ErrNoHeader = errors.New("no fasta header lines")
)
