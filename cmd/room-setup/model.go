package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringName step = iota
	stepEnteringDescription
	stepEnteringCapacity
	stepCreating
	stepComplete
)

type roomCreatedMsg struct{ room *createdRoom }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

type model struct {
	client       *roomClient
	step         step
	draft        roomDraft
	currentInput string
	message      string
	created      *createdRoom
	quitting     bool
}

func initialModel(client *roomClient) model {
	return model{
		client: client,
		step:   stepEnteringName,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func createRoom(client *roomClient, draft roomDraft) tea.Cmd {
	return func() tea.Msg {
		room, err := client.createRoom(draft)
		if err != nil {
			return errMsg{err}
		}
		return roomCreatedMsg{room: room}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyBackspace:
			if len(m.currentInput) > 0 {
				runes := []rune(m.currentInput)
				m.currentInput = string(runes[:len(runes)-1])
			}

		case tea.KeyRunes:
			if m.step <= stepEnteringCapacity {
				m.currentInput += string(msg.Runes)
			}

		case tea.KeySpace:
			if m.step <= stepEnteringCapacity {
				m.currentInput += " "
			}

		case tea.KeyEnter:
			switch m.step {
			case stepEnteringName:
				m.draft.Name = m.currentInput
				m.currentInput = m.draft.Description
				m.step = stepEnteringDescription

			case stepEnteringDescription:
				m.draft.Description = m.currentInput
				m.currentInput = m.draft.Capacity
				m.step = stepEnteringCapacity

			case stepEnteringCapacity:
				m.draft.Capacity = m.currentInput
				m.currentInput = ""
				m.step = stepCreating
				m.message = "Creating room..."
				return m, createRoom(m.client, m.draft)

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case roomCreatedMsg:
		m.created = msg.room
		m.step = stepComplete
		m.message = successStyle.Render(fmt.Sprintf("✓ Created room %s (%s)", msg.room.Name, msg.room.ID))

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepEnteringName
		var fields fieldErrors
		if errors.As(msg.err, &fields) {
			m.step = firstInvalidStep(fields)
		}
		m.currentInput = m.inputFor(m.step)
	}

	return m, nil
}

// firstInvalidStep sends the user back to the earliest field the server rejected.
func firstInvalidStep(fields fieldErrors) step {
	switch {
	case len(fields["name"]) > 0:
		return stepEnteringName
	case len(fields["description"]) > 0:
		return stepEnteringDescription
	case len(fields["capacity"]) > 0:
		return stepEnteringCapacity
	}
	return stepEnteringName
}

func (m model) inputFor(s step) string {
	switch s {
	case stepEnteringName:
		return m.draft.Name
	case stepEnteringDescription:
		return m.draft.Description
	case stepEnteringCapacity:
		return m.draft.Capacity
	}
	return ""
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Room Setup Tool\n\n"))

	prompt := func(label string) {
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render(label + "\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter, Esc to quit\n")
	}

	switch m.step {
	case stepEnteringName:
		prompt("Room name:")
	case stepEnteringDescription:
		prompt("Description (optional):")
	case stepEnteringCapacity:
		prompt("Capacity:")
	case stepCreating:
		s.WriteString(m.message + "\n")
	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}
