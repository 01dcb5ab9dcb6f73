package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/skua-bio/fastascan/internal/model"
)

func displayToBuffer(t *testing.T, report m.ScanReport) string {
	t.Helper()

	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := NewSimpleUI(cmd).DisplayReport(report); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	return buf.String()
}

func sampleReport() m.ScanReport {
	return m.ScanReport{
		Root: "testdata",
		Files: []m.FileReport{
			{Origin: "testdata/chr1.fa", Sequences: 2, Length: 8, Symlink: false, Molecule: m.MoleculeNucleotide},
			{Origin: "testdata/prot.fasta", Sequences: 1, Length: 5, Symlink: true, Molecule: m.MoleculeAminoAcid},
		},
		Example: &m.ExampleTitle{Origin: "testdata/chr1.fa", Header: ">s1 fragment"},
		Totals:  m.Totals{Sequences: 3, Length: 13},
	}
}

func TestSimpleUI_DisplayReport_PrintsTable(t *testing.T) {
	output := displayToBuffer(t, sampleReport())

	for _, want := range []string{
		"FILE NAME",
		"NUM SEQ",
		"SEQ LEN",
		"SYMLINK",
		"TYPE",
		"chr1.fa",
		"prot.fasta",
		"Nucleotide",
		"AminoAcid",
		"Yes",
		"No",
		"OVERALL RESULTS",
		"13",
		"Example title:",
		"chr1.fa: >s1 fragment",
		"residues across all sequences",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if strings.Contains(output, "DISCARDED FILES") {
		t.Fatalf("unexpected discarded section\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayReport_StripsDirectories(t *testing.T) {
	output := displayToBuffer(t, sampleReport())

	if strings.Contains(output, "testdata/chr1.fa") {
		t.Fatalf("table rows must show bare file names\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayReport_DiscardedSection(t *testing.T) {
	report := sampleReport()
	report.Discarded = []m.Path{"testdata/empty.fa", "testdata/trace.fa"}

	output := displayToBuffer(t, report)

	for _, want := range []string{
		"DISCARDED FILES",
		"testdata/empty.fa",
		"testdata/trace.fa",
		"no header line",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayReport_NoExample(t *testing.T) {
	report := m.ScanReport{
		Root:      "testdata",
		Discarded: []m.Path{"testdata/empty.fa"},
	}

	output := displayToBuffer(t, report)

	if strings.Contains(output, "Example title:") {
		t.Fatalf("unexpected example block\noutput:\n%s", output)
	}

	if !strings.Contains(output, "DISCARDED FILES") {
		t.Fatalf("output missing discarded section\noutput:\n%s", output)
	}
}
