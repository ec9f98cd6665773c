package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	statusErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cozyreq"))
	b.WriteString("\n\n")

	b.WriteString(paneStyle.Render(m.viewRequests()))
	b.WriteString("\n")
	if sel, ok := m.Selected(); ok {
		b.WriteString(paneStyle.Render(viewDetails(sel)))
		b.WriteString("\n")
	}
	b.WriteString(paneStyle.Render(m.viewLog()))
	b.WriteString("\n")

	if m.editing {
		b.WriteString(promptStyle.Render(m.Input.View()))
	} else {
		b.WriteString(dimStyle.Render("i: prompt  j/k: navigate  q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewRequests() string {
	if len(m.Requests) == 0 {
		return dimStyle.Render("no requests yet")
	}
	var lines []string
	for i, r := range m.Requests {
		status := dimStyle.Render("pending")
		if r.StatusCode != 0 {
			s := fmt.Sprintf("%d", r.StatusCode)
			if r.StatusCode < 400 {
				status = statusOKStyle.Render(s)
			} else {
				status = statusErrStyle.Render(s)
			}
		}
		line := fmt.Sprintf("#%d %-6s %s  %s", r.Number, r.Method, r.URL, status)
		if i == m.selected {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func viewDetails(r Request) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("%s %s", r.Method, r.URL))
	for _, h := range r.Headers {
		lines = append(lines, dimStyle.Render(h[0]+": "+h[1]))
	}
	if r.Body != "" {
		lines = append(lines, "", r.Body)
	}
	if r.StatusCode != 0 {
		lines = append(lines, "",
			fmt.Sprintf("status %d in %dms", r.StatusCode, r.DurationMs),
			r.ResponseBody)
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewLog() string {
	if len(m.Log) == 0 {
		return dimStyle.Render("execution log is empty")
	}
	var lines []string
	for _, e := range m.Log {
		if e.Content == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", dimStyle.Render("["+e.Kind.String()+"]"), e.Content))
	}
	return strings.Join(lines, "\n")
}
