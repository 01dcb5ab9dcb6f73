package domain

import (
	"bufio"
	"bytes"
	"strings"
	"unicode"

	m "github.com/skua-bio/fastascan/internal/model"
)

const headerPrefix = ">"

// gapRune marks an alignment gap inside residue lines.
const gapRune = '-'

// maxLineBytes bounds a single FASTA line. Some assemblies store a whole
// chromosome on one line, so the default bufio limit is far too small.
const maxLineBytes = 64 * 1024 * 1024

// Extract parses FASTA content into sequence statistics. Lines whose
// first character is '>' are headers; every other line contributes its
// characters, minus alignment gaps and whitespace, to the combined
// residue string. The first header line is kept verbatim. Content
// without a single header yields ErrNoHeader.
func Extract(content []byte) (m.SequenceStats, error) {
	var stats m.SequenceStats

	var residues strings.Builder

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, headerPrefix) {
			if stats.Headers == 0 {
				stats.FirstHeader = line
			}

			stats.Headers++

			continue
		}

		for _, r := range line {
			if r == gapRune || unicode.IsSpace(r) {
				continue
			}

			residues.WriteRune(r)
		}
	}

	if err := scanner.Err(); err != nil {
		return m.SequenceStats{}, err
	}

	if stats.Headers == 0 {
		return m.SequenceStats{}, ErrNoHeader
	}

	stats.Residues = residues.String()

	return stats, nil
}
