package prompt

import (
	"strings"

	"github.com/Guerrilla-Interactive/t3-cua-tools/app"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type inputModel struct {
	message   string
	input     textinput.Model
	value     string
	status    string
	cancelled bool
}

func newInputModel(message, placeholder string) inputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()
	return inputModel{message: message, input: ti}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.status = "A value is required."
				return m, nil
			}
			m.value = value
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.status = ""
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.value != "" || m.cancelled {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		app.SubtitleStyle.Render(m.message),
		m.input.View(),
	)
	view := app.PanelStyle.Render(body) + "\n"
	if m.status != "" {
		view += app.ErrorStyle.Render(m.status) + "\n"
	}
	return view + app.HelpStyle.Render("Enter to confirm, Esc to cancel.") + "\n"
}

type choiceModel struct {
	message   string
	options   []string
	index     int
	chosen    bool
	cancelled bool
}

func newChoiceModel(message string, options []string) choiceModel {
	return choiceModel{message: message, options: options}
}

func (m choiceModel) Init() tea.Cmd { return nil }

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.index > 0 {
			m.index--
		}
	case "down", "j":
		if m.index < len(m.options)-1 {
			m.index++
		}
	case "enter":
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m choiceModel) View() string {
	if m.chosen || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(app.SubtitleStyle.Render(m.message) + "\n")
	for i, option := range m.options {
		if i == m.index {
			b.WriteString(app.HighlightStyle.Render("> "+option) + "\n")
		} else {
			b.WriteString(app.ChoiceStyle.Render("  "+option) + "\n")
		}
	}
	b.WriteString(app.HelpStyle.Render("Use ↑/↓/j/k to navigate, Enter to select, Esc to cancel.") + "\n")
	return b.String()
}
