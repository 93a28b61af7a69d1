// Package ui runs the interactive table viewer.
package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/gridcol/internal/grid"
	"github.com/oakwood-commons/gridcol/internal/ui/table"
)

// reservedLines are taken by the title, footer and help line.
const reservedLines = 4

// ViewerOptions configures the viewer.
type ViewerOptions struct {
	Title     string
	Footer    string
	EmptyText string
	NoColor   bool
	Indent    string
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Viewer is a Bubble Tea model showing one plan.
type Viewer struct {
	table    *table.Model
	opts     ViewerOptions
	width    int
	height   int
	quitting bool
}

// NewViewer builds a viewer for plan.
func NewViewer(plan grid.Plan, opts ViewerOptions) *Viewer {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	t := table.NewModel(plan, indent)
	t.SetNoColor(opts.NoColor)
	return &Viewer{table: t, opts: opts}
}

// Table exposes the underlying table model.
func (v *Viewer) Table() *table.Model { return v.table }

// Init implements tea.Model.
func (v *Viewer) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		h := msg.Height - reservedLines
		if h < 1 {
			h = 1
		}
		v.table.SetSize(msg.Width, h)
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			v.quitting = true
			return v, tea.Quit
		}
	}
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// Content renders the viewer body without the tea.View wrapper.
func (v *Viewer) Content() string {
	if v.quitting {
		return ""
	}
	parts := make([]string, 0, 4)
	if v.opts.Title != "" {
		title := v.opts.Title
		if !v.opts.NoColor {
			title = titleStyle.Render(title)
		}
		parts = append(parts, title)
	}
	parts = append(parts, v.table.View())
	if len(v.table.Plan().Rows) == 0 && v.opts.EmptyText != "" {
		parts = append(parts, v.opts.EmptyText)
	}
	if v.opts.Footer != "" {
		parts = append(parts, v.opts.Footer)
	}
	help := "↑/↓ move • q quit"
	if !v.opts.NoColor {
		help = helpStyle.Render(help)
	}
	parts = append(parts, help)
	return strings.Join(parts, "\n")
}

// View implements tea.Model.
func (v *Viewer) View() tea.View {
	view := tea.NewView(v.Content())
	view.AltScreen = true
	return view
}

// Run starts the viewer and blocks until the user quits.
func Run(plan grid.Plan, opts ViewerOptions, progOpts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewViewer(plan, opts), progOpts...).Run()
	return err
}
