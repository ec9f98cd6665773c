package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if len(m.Requests) > 0 && m.selected < len(m.Requests)-1 {
			m.selected++
		}
	case "i", "enter":
		m.editing = true
		m.Input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.Input.Blur()
		return m, nil
	case "enter":
		if prompt := strings.TrimSpace(m.Input.Value()); prompt != "" {
			m.appendPrompt(prompt)
		}
		m.Input.SetValue("")
		m.editing = false
		m.Input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// appendPrompt mirrors the log shape a real run produces when it starts.
func (m *Model) appendPrompt(prompt string) {
	m.Log = append(m.Log,
		LogEntry{Kind: EntryUserPrompt, Content: ""},
		LogEntry{Kind: EntryUserPrompt, Content: "> " + prompt},
		LogEntry{Kind: EntryUserPrompt, Content: ""},
		LogEntry{Kind: EntryPlanning, Content: "Planning..."},
	)
}
