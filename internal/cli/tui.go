package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/planforge/pkg/integrations/gemini"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// ModelChoice describes one selectable text-generation model.
type ModelChoice struct {
	Name string
	Note string
}

// modelChoices are the models offered by the interactive picker. The
// pipeline accepts any valid model name; this list is only a convenience.
var modelChoices = []ModelChoice{
	{Name: "gemini-2.5-flash", Note: "fast, good default for layouts"},
	{Name: "gemini-2.5-flash-lite", Note: "cheapest, simpler plans"},
	{Name: "gemini-2.5-pro", Note: "slowest, best spatial reasoning"},
}

// ModelListModel is the bubbletea model for interactive model selection.
type ModelListModel struct {
	Choices  []ModelChoice
	Cursor   int
	Selected *ModelChoice
}

// NewModelListModel creates a model list with the cursor on the default.
func NewModelListModel(choices []ModelChoice) ModelListModel {
	m := ModelListModel{Choices: choices}
	for i, choice := range choices {
		if choice.Name == gemini.DefaultModel {
			m.Cursor = i
		}
	}
	return m
}

func (m ModelListModel) Init() tea.Cmd {
	return nil
}

func (m ModelListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Choices)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Choices[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ModelListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Model"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, choice := range m.Choices {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		marker := " "
		if choice.Name == gemini.DefaultModel {
			marker = StyleSuccess.Render("*")
		}

		line := fmt.Sprintf("%s%s %-25s  %s", cursor, marker, choice.Name, listDimStyle.Render(choice.Note))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s default\n", StyleSuccess.Render("*")))

	return b.String()
}
