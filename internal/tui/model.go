package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Request is a single HTTP request in the execution flow.
type Request struct {
	Number       int
	Method       string
	URL          string
	Headers      [][2]string
	Body         string
	StatusCode   int
	ResponseBody string
	DurationMs   int64
}

// EntryKind classifies execution log entries.
type EntryKind int

const (
	EntryUserPrompt EntryKind = iota
	EntryPlanning
	EntryDiscovery
	EntryExecutionStart
	EntryRequestExec
	EntryRequestResult
)

func (k EntryKind) String() string {
	switch k {
	case EntryUserPrompt:
		return "user_prompt"
	case EntryPlanning:
		return "planning"
	case EntryDiscovery:
		return "discovery"
	case EntryExecutionStart:
		return "execution_start"
	case EntryRequestExec:
		return "request_exec"
	case EntryRequestResult:
		return "request_result"
	}
	return "unknown"
}

// LogEntry is one line of the execution log.
type LogEntry struct {
	Kind    EntryKind
	Content string
}

// Model is the TUI application state.
type Model struct {
	Requests []Request
	Log      []LogEntry
	Input    textinput.Model

	selected int
	editing  bool
	quitting bool
	width    int
	height   int
}

// New returns an empty model with a focused-on-demand prompt input.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Describe what to do..."
	ti.CharLimit = 256
	return Model{Input: ti}
}

// Selected returns the currently highlighted request, if any.
func (m Model) Selected() (Request, bool) {
	if m.selected < 0 || m.selected >= len(m.Requests) {
		return Request{}, false
	}
	return m.Requests[m.selected], true
}

// Editing reports whether the prompt input has focus.
func (m Model) Editing() bool {
	return m.editing
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
