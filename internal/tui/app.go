package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todotui/internal/config"
	"todotui/internal/store"
)

// storeChangedMsg is delivered into the event loop when the store reports
// a mutation. The model re-reads its task snapshot only in response to
// this message, never inline, so every render reflects a fully applied
// mutation.
type storeChangedMsg struct{}

// Model represents the main application state
type Model struct {
	store   store.Store
	tasks   []store.Task
	changes chan struct{}

	selected int
	width    int
	height   int

	inputMode bool
	input     textinput.Model

	confirmClear bool

	err error

	// Styles derived from config colors
	selectedStyle lipgloss.Style
	doneStyle     lipgloss.Style
	errorStyle    lipgloss.Style
}

// Styles
var (
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// New creates a new application model
func New(st store.Store, cfg *config.Config) (Model, error) {
	// Load initial tasks
	tasks, err := st.List()
	if err != nil {
		return Model{}, fmt.Errorf("loading tasks: %w", err)
	}

	// Setup the new-task input
	ti := textinput.New()
	ti.Placeholder = "New task..."
	ti.Width = 40
	ti.CharLimit = 200
	ti.Prompt = "> "

	m := Model{
		store:   st,
		tasks:   tasks,
		changes: make(chan struct{}, 1),
		input:   ti,
		selectedStyle: lipgloss.NewStyle().
			Background(lipgloss.Color(cfg.UI.AccentColor)).
			Foreground(lipgloss.Color("230")),
		doneStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.UI.DoneColor)).
			Strikethrough(true),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.UI.ErrorColor)),
	}

	// The store notifies synchronously on every mutation; coalesce into a
	// buffered channel that waitForChange drains from the event loop.
	changes := m.changes
	st.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	return m, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.waitForChange
}

// waitForChange blocks until the store reports a mutation
func (m Model) waitForChange() tea.Msg {
	<-m.changes
	return storeChangedMsg{}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		// Refresh the task snapshot from the store
		tasks, err := m.store.List()
		if err != nil {
			m.err = err
			return m, m.waitForChange
		}
		m.tasks = tasks
		m.selected = m.ensureValidSelection()
		return m, m.waitForChange

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 8 {
			m.input.Width = m.width - 8
		}
		return m, nil

	case tea.KeyMsg:
		// Clear-all confirmation mode handling
		if m.confirmClear {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.Clear(); err != nil {
					m.err = err
				}
				m.confirmClear = false
				return m, nil
			default:
				// Any other key cancels
				m.confirmClear = false
				return m, nil
			}
		}

		// Input mode handling
		if m.inputMode {
			switch msg.String() {
			case "esc":
				m.inputMode = false
				m.input.Reset()
				return m, nil
			case "enter":
				title := m.input.Value()
				if _, err := m.store.Add(title); err != nil {
					// An empty title is a rejected input, not a
					// failure: just close the input
					if !errors.Is(err, store.ErrEmptyTitle) {
						m.err = err
					}
				}
				m.inputMode = false
				m.input.Reset()
				return m, nil
			}

			// Pass other keys to the input
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		// Normal mode handling
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}

		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}

		case "a":
			// Enter add mode
			m.inputMode = true
			m.err = nil
			m.input.Reset()
			m.input.Focus()
			return m, textinput.Blink

		case " ", "x":
			// Toggle the selected task
			if len(m.tasks) > 0 && m.selected < len(m.tasks) {
				if err := m.store.Toggle(m.tasks[m.selected].ID); err != nil {
					m.err = err
				}
			}
			return m, nil

		case "d":
			// Delete the selected task
			if len(m.tasks) > 0 && m.selected < len(m.tasks) {
				if err := m.store.Remove(m.tasks[m.selected].ID); err != nil {
					m.err = err
				}
			}
			return m, nil

		case "C":
			// Clear all tasks - enter confirmation mode
			if len(m.tasks) > 0 {
				m.confirmClear = true
			}
			return m, nil

		case "esc":
			m.err = nil
			return m, nil
		}
	}

	return m, nil
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	if len(m.tasks) == 0 {
		return 0
	}
	if m.selected >= len(m.tasks) {
		return len(m.tasks) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// doneCount returns how many tasks are completed
func (m Model) doneCount() int {
	n := 0
	for _, t := range m.tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.width < 10 || m.height < 5 {
		return "Window too small"
	}

	// The clear-all confirmation replaces the whole screen
	if m.confirmClear {
		return m.renderClearConfirmation()
	}

	listView := m.renderList(m.width-2, m.height-3)

	content := borderStyle.
		Width(m.width - 2).
		Height(m.height - 3).
		Render(listView)

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderHelp())
}

// renderList renders the task list
func (m Model) renderList(width, height int) string {
	var lines []string

	if m.inputMode {
		lines = append(lines, m.input.View())
		lines = append(lines, "")
		height -= 2
	}

	// Header
	header := fmt.Sprintf("Tasks (%d)", len(m.tasks))
	if len(m.tasks) > 0 {
		header = fmt.Sprintf("Tasks (%d/%d done)", m.doneCount(), len(m.tasks))
	}
	lines = append(lines, header)
	lines = append(lines, strings.Repeat("─", max(0, width-2)))

	if len(m.tasks) == 0 {
		lines = append(lines, "")
		lines = append(lines, "No tasks. Press a to add one.")
	}

	// Calculate visible range
	visibleHeight := height - 2 // account for header
	startIdx := 0
	if m.selected >= visibleHeight {
		startIdx = m.selected - visibleHeight + 1
	}

	// Task list
	for i := startIdx; i < len(m.tasks) && i < startIdx+visibleHeight; i++ {
		t := m.tasks[i]

		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		line := fmt.Sprintf(" %s %s", box, t.Title)

		if i == m.selected {
			line = m.selectedStyle.Render(line)
		} else if t.Done {
			line = m.doneStyle.Render(line)
		}

		lines = append(lines, line)
	}

	// Status line for surfaced errors
	if m.err != nil {
		lines = append(lines, "")
		lines = append(lines, m.errorStyle.Render("Error: "+m.err.Error()))
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	if m.confirmClear {
		return helpStyle.Render(" y: clear all tasks • any other key: cancel")
	}

	if m.inputMode {
		return helpStyle.Render(" Type title • Enter: add • Esc: cancel")
	}

	help := " j/k: navigate • a: add • space/x: toggle • d: delete"
	if len(m.tasks) > 0 {
		help += " • C: clear all"
	}
	help += " • q: quit"

	return helpStyle.Render(help)
}

// renderClearConfirmation renders the clear-all confirmation prompt
func (m Model) renderClearConfirmation() string {
	width := 50
	height := 7

	prompt := fmt.Sprintf("Clear all %d tasks? (y/n)", len(m.tasks))

	content := lipgloss.NewStyle().
		Width(width - 4).
		Height(height - 4).
		Align(lipgloss.Center, lipgloss.Center).
		Render(prompt)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(width).
		Height(height).
		Render(content)

	// Center on screen
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
