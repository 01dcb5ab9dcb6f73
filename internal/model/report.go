package model

// FileReport holds the summary of a single parsed FASTA file.
type FileReport struct {
	Origin    Path
	Sequences int // header line count
	Length    int // residue count after gap and whitespace stripping
	Symlink   bool
	Molecule  Molecule
}

// Name returns the reported file's name with its directory stripped.
func (r FileReport) Name() string {
	return Candidate{Origin: r.Origin}.Name()
}

// ExampleTitle captures the first header line seen during a scan.
type ExampleTitle struct {
	Origin Path
	Header string
}

// Name returns the example file's name with its directory stripped.
func (e ExampleTitle) Name() string {
	return Candidate{Origin: e.Origin}.Name()
}

// Totals aggregates sequence counts and residue lengths over every
// file that made it into the report.
type Totals struct {
	Sequences int
	Length    int
}

// ScanReport is the complete outcome of scanning one directory tree.
// Discarded lists candidates that yielded no sequences and is not
// part of Totals.
type ScanReport struct {
	Root      Path
	Files     []FileReport
	Discarded []Path
	Example   *ExampleTitle
	Totals    Totals
}
