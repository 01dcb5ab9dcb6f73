// Package domain implements FASTA scanning: candidate collection,
// sequence extraction, molecule classification and aggregation.
package domain

import (
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/skua-bio/fastascan/internal/adapter"
	m "github.com/skua-bio/fastascan/internal/model"
)

// DefaultExtensions are the file name suffixes collected as FASTA
// candidates. Matching is exact, so .FA or .Fasta never qualify.
var DefaultExtensions = []string{".fa", ".fasta"}

// ScanArgs carries everything one scan needs besides the filesystem.
type ScanArgs struct {
	// Root is the directory to walk. Empty means the current directory.
	Root m.Path
	// Extensions overrides DefaultExtensions when non-empty.
	Extensions []string
	// Exclude holds regexes matched against root-relative paths.
	Exclude []string
	// Ignore optionally filters candidates through a .gitignore.
	Ignore adapter.IgnoreMatcher
}

// Workflow defines the scanning operations exposed to the CLI.
type Workflow interface {
	Scan(args ScanArgs) (m.ScanReport, error)
}

type workflow struct {
	fs adapter.ScanFS
}

// NewWorkflow creates a Workflow backed by the provided filesystem.
func NewWorkflow(fsAdapter adapter.ScanFS) Workflow {
	return &workflow{fs: fsAdapter}
}

// Scan walks the tree under args.Root and parses every candidate in walk
// order, one file at a time. Candidates that cannot be read or contain
// no header line are listed as discarded and contribute nothing to the
// totals. The first file that parses provides the example title. A root
// without any candidate at all yields ErrNoCandidates.
func (w *workflow) Scan(args ScanArgs) (m.ScanReport, error) {
	root := args.Root
	if root == "" {
		root = "."
	}

	if _, err := w.fs.FileInfo(root); err != nil {
		return m.ScanReport{}, fmt.Errorf("%w: %v", ErrNoCandidates, err)
	}

	filter, err := newPathFilter(args.Exclude)
	if err != nil {
		return m.ScanReport{}, err
	}

	candidates, err := w.collectCandidates(root, args, filter)
	if err != nil {
		return m.ScanReport{}, err
	}

	if len(candidates) == 0 {
		return m.ScanReport{}, fmt.Errorf("%w in %s", ErrNoCandidates, root)
	}

	report := m.ScanReport{Root: root}

	for _, candidate := range candidates {
		stats, err := w.processCandidate(candidate)
		if err != nil {
			report.Discarded = append(report.Discarded, candidate.Origin)

			continue
		}

		fileReport := m.FileReport{
			Origin:    candidate.Origin,
			Sequences: stats.Headers,
			Length:    utf8.RuneCountInString(stats.Residues),
			Symlink:   candidate.Symlink,
			Molecule:  Classify(stats.Residues),
		}

		if report.Example == nil {
			report.Example = &m.ExampleTitle{
				Origin: candidate.Origin,
				Header: stats.FirstHeader,
			}
		}

		report.Files = append(report.Files, fileReport)
		report.Totals.Sequences += fileReport.Sequences
		report.Totals.Length += fileReport.Length
	}

	return report, nil
}

// collectCandidates walks the tree and picks up files with a FASTA
// extension. Unreadable entries are skipped so one bad subdirectory does
// not abort the scan.
func (w *workflow) collectCandidates(root m.Path, args ScanArgs, filter *pathFilter) ([]m.Candidate, error) {
	extensions := args.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	var candidates []m.Candidate

	err := w.fs.Walk(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // Intentionally skip unreadable entries
		}

		relPath := w.relativeTo(root, path)

		if entry.IsDir() {
			if path == string(root) {
				return nil
			}

			if filter.excludes(relPath) || (args.Ignore != nil && args.Ignore.Match(relPath, true)) {
				return fs.SkipDir
			}

			return nil
		}

		if !hasFastaExtension(entry.Name(), extensions) {
			return nil
		}

		if filter.excludes(relPath) {
			return nil
		}

		if args.Ignore != nil && args.Ignore.Match(relPath, false) {
			return nil
		}

		candidates = append(candidates, m.Candidate{
			Origin:  m.Path(path),
			Symlink: entry.Type()&fs.ModeSymlink != 0,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

// processCandidate reads one candidate and extracts its statistics. The
// returned error marks the candidate as discarded, never aborts the scan.
func (w *workflow) processCandidate(candidate m.Candidate) (m.SequenceStats, error) {
	content, err := w.fs.ReadFile(candidate.Origin)
	if err != nil {
		return m.SequenceStats{}, fmt.Errorf("read %s: %w", candidate.Origin, err)
	}

	return Extract(content)
}

func (w *workflow) relativeTo(root m.Path, path string) string {
	rel, err := w.fs.RelPath(root, m.Path(path))
	if err != nil {
		return path
	}

	return string(rel)
}

func hasFastaExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}
