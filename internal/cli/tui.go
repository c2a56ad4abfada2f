package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// seqListModel is the bubbletea model for interactive sequence selection.
type seqListModel struct {
	seqIDs   []string
	cursor   int
	selected string
	height   int
	offset   int
}

func newSeqListModel(seqIDs []string) seqListModel {
	return seqListModel{
		seqIDs: seqIDs,
		height: 15,
	}
}

func (m seqListModel) Init() tea.Cmd {
	return nil
}

func (m seqListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.seqIDs)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = m.seqIDs[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m seqListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Sequence"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.seqIDs) {
		end = len(m.seqIDs)
	}

	for i := m.offset; i < end; i++ {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(m.seqIDs[i]) + "\n")
	}

	if len(m.seqIDs) > m.height {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("…more below"))
	}

	return b.String()
}
