package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/astiages123/auditpath/internal/ui/theme"
)

// MultiChoice is the four-option answer selector. Grading happens
// outside the component; Reveal colors the options once the verdict is
// known.
type MultiChoice struct {
	Options      []string
	Selected     int
	Revealed     bool
	CorrectIndex int
	ChosenIndex  int
}

// NewMultiChoice creates a selector over the given options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: -1,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation. Selection by number keys and
// submission are owned by the parent screen.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// Value returns the currently selected option text.
func (m MultiChoice) Value() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected]
}

// Reveal marks the component as graded so View can color the options.
func (m *MultiChoice) Reveal(correctIndex, chosenIndex int) {
	m.Revealed = true
	m.CorrectIndex = correctIndex
	m.ChosenIndex = chosenIndex
}

// View renders the options with A-D labels.
func (m MultiChoice) View() string {
	labels := []string{"A", "B", "C", "D"}

	var s string
	for i, opt := range m.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Revealed && i == m.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case m.Revealed && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
