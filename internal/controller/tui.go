package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/skua-bio/fastascan/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayReport opens the interactive browser over the report rows and
// blocks until the user quits it.
func (t *TUI) DisplayReport(report m.ScanReport) error {
	model := newBrowseModel(report)

	// Seed the dimensions so the first frame renders at the right size
	// before a WindowSizeMsg arrives.
	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			model.width = width
			model.height = height
			model.fileList.SetWidth(width)
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browse ui: %w", err)
	}

	return nil
}
