package domain

import m "github.com/skua-bio/fastascan/internal/model"

// Classify reports the molecule type for the combined residue content of
// one file. The nucleotide alphabet is the four DNA bases plus uracil and
// the N wildcard, in either case. A single character outside it makes the
// whole file amino acid. Empty content stays nucleotide.
func Classify(residues string) m.Molecule {
	for _, r := range residues {
		switch r {
		case 'a', 'c', 'g', 't', 'u', 'n', 'A', 'C', 'G', 'T', 'U', 'N':
		default:
			return m.MoleculeAminoAcid
		}
	}

	return m.MoleculeNucleotide
}
