package model

// Molecule represents the residue alphabet inferred for a file.
type Molecule string

const (
	// MoleculeNucleotide covers DNA and RNA: every residue is one of
	// A, C, G, T, U or N in either case.
	MoleculeNucleotide Molecule = "Nucleotide"
	// MoleculeAminoAcid covers files with at least one residue outside
	// the nucleotide alphabet.
	MoleculeAminoAcid Molecule = "AminoAcid"
)

// SequenceStats holds the raw content extracted from one FASTA file.
type SequenceStats struct {
	Headers     int    // lines starting with ">"
	Residues    string // non-header lines joined, gaps and whitespace stripped
	FirstHeader string // first header line, verbatim
}
