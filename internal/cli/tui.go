package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/framekit/pkg/export"
	"github.com/matzehuels/framekit/pkg/geom"
	"github.com/matzehuels/framekit/pkg/view"
)

// Preview styles
var (
	previewCanvasStyle = lipgloss.NewStyle().Foreground(colorWhite)
	previewDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// minPreviewWidth keeps the preview from collapsing to nothing.
const minPreviewWidth = 1

// =============================================================================
// PreviewModel - Interactive width adjustment
// =============================================================================

// PreviewModel is the bubbletea model for the preview command. Every width
// change measures the scene and applies it again, so each keypress runs
// one sizing pass (served from the engine cache when the width repeats)
// and one applying pass.
type PreviewModel struct {
	Name      string
	Root      *view.Container
	Width     float64
	Follow    bool // track the terminal width
	ShowTable bool

	Size   geom.Size
	Frames []view.Snapshot

	termWidth int
}

// NewPreviewModel creates a preview laid out at width.
func NewPreviewModel(name string, root *view.Container, width float64) PreviewModel {
	m := PreviewModel{Name: name, Root: root, Width: max(width, minPreviewWidth)}
	return m.relayout()
}

func (m PreviewModel) relayout() PreviewModel {
	m.Size = m.Root.SizeThatFits(geom.Sz(m.Width, 0))
	m.Root.SetFrame(geom.R(0, 0, m.Width, m.Size.H))
	m.Frames = view.Snapshots(m.Root)
	return m
}

func (m PreviewModel) resize(width float64) PreviewModel {
	width = max(width, minPreviewWidth)
	if width == m.Width {
		return m
	}
	m.Width = width
	return m.relayout()
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.Follow = false
			return m.resize(m.Width - 1), nil
		case "right", "l":
			m.Follow = false
			return m.resize(m.Width + 1), nil
		case "shift+left", "H":
			m.Follow = false
			return m.resize(m.Width - 10), nil
		case "shift+right", "L":
			m.Follow = false
			return m.resize(m.Width + 10), nil
		case "f":
			m.Follow = !m.Follow
			if m.Follow && m.termWidth > 0 {
				return m.resize(float64(m.termWidth)), nil
			}
		case "t":
			m.ShowTable = !m.ShowTable
		}
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		if m.Follow {
			return m.resize(float64(msg.Width)), nil
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Preview " + m.Name))
	b.WriteString("\n")
	status := fmt.Sprintf("width %s  size %s", formatNum(m.Width), formatSize(m.Size))
	if m.Follow {
		status += "  following terminal"
	}
	b.WriteString(previewDimStyle.Render(status))
	b.WriteString("\n\n")

	b.WriteString(previewCanvasStyle.Render(export.ToText(m.Frames)))
	b.WriteString("\n")

	if m.ShowTable {
		b.WriteString(frameTable(m.Frames).Render())
		b.WriteString("\n")
	}

	b.WriteString(previewDimStyle.Render("←/→ ±1  shift ±10  f follow terminal  t table  q quit"))
	return b.String()
}
