package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/skua-bio/fastascan/internal/model"
)

const legend = `FILE NAME    fasta file, shown without its directory
NUM SEQ      number of header lines, one per sequence
SEQ LEN      residues across all sequences, gaps and whitespace excluded
SYMLINK      Yes when the path is a symbolic link
TYPE         Nucleotide or AminoAcid, from the combined residue content
`

const discardedNote = `The files below match a fasta extension but contain no header line.
They may be empty, not fasta at all, or hold unreadable binary content.
They are excluded from the results above.
`

// SimpleUI implements UI using the cobra command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the per-file table with the overall totals row,
// the example title, the column legend and, when any candidate was
// discarded, the discarded file listing.
func (s *SimpleUI) DisplayReport(report m.ScanReport) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File Name", "Num Seq", "Seq Len", "Symlink", "Type"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, file := range report.Files {
		table.Append([]string{
			file.Name(),
			strconv.Itoa(file.Sequences),
			strconv.Itoa(file.Length),
			yesNo(file.Symlink),
			string(file.Molecule),
		})
	}

	table.SetFooter([]string{
		"Overall Results",
		strconv.Itoa(report.Totals.Sequences),
		strconv.Itoa(report.Totals.Length),
		"",
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if report.Example != nil {
		s.printf("\nExample title:\n%s: %s\n", report.Example.Name(), report.Example.Header)
	}

	s.printf("\n%s", legend)

	if len(report.Discarded) > 0 {
		s.printf("\n%s", discardedNote)
		s.printf("\n%s", renderDiscarded(report.Discarded))
	}

	return nil
}

func renderDiscarded(discarded []m.Path) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Discarded Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})

	for _, path := range discarded {
		table.Append([]string{string(path)})
	}

	table.Render()

	return tableBuffer.String()
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}

	return "No"
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
