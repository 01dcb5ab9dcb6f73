package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/skua-bio/fastascan/internal/model"
)

// Simple delegate for browse list items.
type browseDelegate struct {
	offset int
}

func (d browseDelegate) Height() int  { return 1 }
func (d browseDelegate) Spacing() int { return 0 }
func (d browseDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d browseDelegate) Render(w io.Writer, mdl list.Model, index int, item list.Item) {
	row, ok := item.(fileRow)
	if !ok {
		return
	}

	isSelected := index == mdl.Index()

	// Numbers (6+10), molecule (10), spacing (6).
	nameWidth := mdl.Width() - 32

	var numberStyle, moleculeStyle, nameStyle lipgloss.Style

	var displayName string

	name := row.name
	if row.symlink {
		name += "@"
	}

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		numberStyle = selected
		moleculeStyle = selected
		nameStyle = selected

		displayName = marqueeText(name, nameWidth, d.offset)
	} else {
		numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
		moleculeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		if row.molecule == string(m.MoleculeNucleotide) {
			moleculeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
		}

		displayName = truncate(name, nameWidth)
	}

	line := fmt.Sprintf("%s %s  %s  %s",
		numberStyle.Width(6).Align(lipgloss.Right).Render(fmt.Sprintf("%d", row.seqs)),
		numberStyle.Width(10).Align(lipgloss.Right).Render(fmt.Sprintf("%d", row.length)),
		moleculeStyle.Width(10).Render(row.molecule),
		nameStyle.Render(displayName),
	)
	_, _ = fmt.Fprint(w, line)
}

// marqueeText scrolls text that does not fit into width, pausing briefly
// before the first step.
func marqueeText(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const gap = "   "

	const pause = 5

	if offset < pause {
		return truncate(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := (offset - pause) % n

	window := make([]rune, 0, width)
	for i := range width {
		window = append(window, runes[(start+i)%n])
	}

	return string(window)
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	used := 0

	kept := make([]rune, 0, len(text))
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if used+w > maxWidth {
			break
		}

		kept = append(kept, r)
		used += w
	}

	return string(kept) + ellipsis
}

// browseModel is the interactive view over one finished scan.
type browseModel struct {
	width        int
	height       int
	fileList     list.Model
	delegate     browseDelegate
	totals       m.Totals
	fileCount    int
	discarded    int
	example      string
	animOffset   int
	lastSelected int
}

func newBrowseModel(report m.ScanReport) browseModel {
	delegate := browseDelegate{}
	fileList := list.New([]list.Item{}, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	items := make([]list.Item, 0, len(report.Files))
	for _, file := range report.Files {
		items = append(items, fileRow{
			name:     file.Name(),
			origin:   string(file.Origin),
			seqs:     file.Sequences,
			length:   file.Length,
			symlink:  file.Symlink,
			molecule: string(file.Molecule),
		})
	}

	fileList.SetItems(items)

	example := ""
	if report.Example != nil {
		example = fmt.Sprintf("%s: %s", report.Example.Name(), report.Example.Header)
	}

	return browseModel{
		fileList:     fileList,
		delegate:     delegate,
		totals:       report.Totals,
		fileCount:    len(report.Files),
		discarded:    len(report.Discarded),
		example:      example,
		lastSelected: 0,
	}
}

func (mdl browseModel) Init() tea.Cmd {
	return browseTick()
}

func browseTick() tea.Cmd {
	return tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (mdl browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mdl.width = msg.Width
		mdl.height = msg.Height
		mdl.fileList.SetWidth(mdl.width)

	case tickMsg:
		if mdl.fileList.FilterState() != list.Filtering {
			mdl.animOffset++
			mdl.delegate.offset = mdl.animOffset
			mdl.fileList.SetDelegate(mdl.delegate)
		}

		return mdl, browseTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return mdl, tea.Quit
		default:
			var newList list.Model

			newList, cmd = mdl.fileList.Update(msg)
			mdl.fileList = newList

			// Restart the marquee when the selection moves.
			if mdl.fileList.Index() != mdl.lastSelected {
				mdl.lastSelected = mdl.fileList.Index()
				mdl.animOffset = 0
				mdl.delegate.offset = 0
				mdl.fileList.SetDelegate(mdl.delegate)
			}

			return mdl, cmd
		}
	}

	return mdl, cmd
}

func (mdl browseModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("🧬 fastascan")

	summaryLine := fmt.Sprintf(
		"Files: %s   Sequences: %s   Residues: %s   Discarded: %s",
		accentStyle.Render(fmt.Sprintf("%d", mdl.fileCount)),
		accentStyle.Render(fmt.Sprintf("%d", mdl.totals.Sequences)),
		accentStyle.Render(fmt.Sprintf("%d", mdl.totals.Length)),
		accentStyle.Render(fmt.Sprintf("%d", mdl.discarded)),
	)

	if mdl.example != "" {
		summaryLine += "\n" + truncate(mdl.example, mdl.width-4)
	}

	summary := summaryStyle.Render(summaryLine)

	table := mdl.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(mdl.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (mdl browseModel) renderTable() string {
	// Title, summary, footer, border and padding eat into the height.
	listHeight := mdl.height - 10
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := mdl.width - 6

	mdl.fileList.SetHeight(listHeight)
	mdl.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s %10s  %-10s %s", "Seqs", "Residues", "Type", "File"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			mdl.fileList.View(),
		),
	)
}
