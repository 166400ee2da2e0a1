// Package palette implements the command palette widget: a text input over
// a ranked result list, refreshed on every keystroke. It consumes the
// command core exclusively through its public operations — Search while
// typing, Execute on confirm, History for the empty-query hint — and holds
// no command state of its own.
package palette

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wellingtongranja/fantasy-forgewright-sub001/internal/commands"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// resultMsg carries the outcome of an executed command back into Update.
type resultMsg struct {
	input  string
	result any
	err    error
}

// Model is the bubbletea model of the palette.
type Model struct {
	registry commands.Registry
	executor commands.Executor

	input    textinput.Model
	results  []commands.Command
	selected int
	pageSize int

	status   string
	errText  string
	quitting bool
}

// New creates a palette over the given registry and executor. pageSize
// bounds how many results are shown at once; the core already caps Search
// at commands.MaxSearchResults.
func New(registry commands.Registry, executor commands.Executor, pageSize int) Model {
	if pageSize <= 0 || pageSize > commands.MaxSearchResults {
		pageSize = commands.MaxSearchResults
	}

	input := textinput.New()
	input.Placeholder = "Type a command…"
	input.Prompt = "> "
	input.Focus()

	m := Model{
		registry: registry,
		executor: executor,
		input:    input,
		pageSize: pageSize,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up", "ctrl+p":
			m.moveSelection(-1)
			return m, nil

		case "down", "ctrl+n":
			m.moveSelection(1)
			return m, nil

		case "tab":
			// Complete the selected command name into the input.
			if cmd := m.selectedCommand(); cmd != nil {
				m.input.SetValue(cmd.Name + " ")
				m.input.CursorEnd()
				m.refresh()
			}
			return m, nil

		case "enter":
			input := m.confirmedInput()
			if input == "" {
				return m, nil
			}
			return m, m.executeCmd(input)
		}

	case resultMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.status = ""
		} else {
			m.errText = ""
			m.status = formatResult(msg.result)
		}
		m.input.SetValue("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Forgewright Command Palette"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(descStyle.Render("No matching commands"))
		b.WriteString("\n")
	}
	for i, cmd := range m.visibleResults() {
		line := fmt.Sprintf("%s — %s", cmd.Name, cmd.DisplayDescription())
		if len(cmd.Aliases) > 0 {
			line += descStyle.Render("  " + strings.Join(cmd.Aliases, " "))
		}
		if i == m.selected {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	} else if recent := m.executor.History(); len(recent) > 0 && m.input.Value() == "" {
		b.WriteString(descStyle.Render("Recent: " + strings.Join(firstN(recent, 3), ", ")))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select · tab complete · enter run · esc quit"))
	return b.String()
}

// refresh re-ranks the results for the current input and clamps selection.
func (m *Model) refresh() {
	m.results = m.registry.Search(m.input.Value())
	if m.selected >= len(m.results) {
		m.selected = 0
	}
}

// moveSelection moves the highlight with wrap-around.
func (m *Model) moveSelection(delta int) {
	visible := len(m.visibleResults())
	if visible == 0 {
		return
	}
	m.selected = (m.selected + delta + visible) % visible
}

// visibleResults limits the ranked results to one page.
func (m *Model) visibleResults() []commands.Command {
	if len(m.results) > m.pageSize {
		return m.results[:m.pageSize]
	}
	return m.results
}

// selectedCommand returns the highlighted command, or nil.
func (m *Model) selectedCommand() *commands.Command {
	visible := m.visibleResults()
	if m.selected < 0 || m.selected >= len(visible) {
		return nil
	}
	return &visible[m.selected]
}

// confirmedInput decides what Execute receives on enter: the full typed
// text when it already resolves to the selected command (so typed arguments
// survive), otherwise the selected command's name.
func (m *Model) confirmedInput() string {
	typed := strings.TrimSpace(m.input.Value())
	selected := m.selectedCommand()
	if selected == nil {
		return typed
	}
	if typed != "" {
		parsed := m.registry.Parse(typed)
		if cmd, ok := m.registry.Get(parsed.Name); ok && cmd.Name == selected.Name {
			return typed
		}
	}
	return selected.Name
}

// executeCmd runs the input through the dispatcher off the update loop.
func (m Model) executeCmd(input string) tea.Cmd {
	executor := m.executor
	return func() tea.Msg {
		result, err := executor.Execute(context.Background(), input)
		return resultMsg{input: input, result: result, err: err}
	}
}

// formatResult renders a handler result for the status line.
func formatResult(result any) string {
	switch v := result.(type) {
	case nil:
		return "Done"
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func firstN(entries []string, n int) []string {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
