package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/astiages123/auditpath/internal/session"
	"github.com/astiages123/auditpath/internal/ui/theme"
)

// categoryLabel maps the stored usage category to the display tag.
func categoryLabel(category string) string {
	switch category {
	case "archive":
		return "ARCHIVE REVIEW"
	case "exam":
		return "EXAM DRILL"
	default:
		return "PRACTICE"
	}
}

// renderQuestion renders the active question with its answer options.
func (s *PracticeScreen) renderQuestion(width int, st session.State) string {
	q := s.question

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + q.ConceptTitle)

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  Q %d/%d  %s %d",
			categoryLabel(q.UsageCategory),
			st.Cursor+1,
			len(st.Queue),
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			st.Correct,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width - 8).
		PaddingLeft(4).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	options := lipgloss.NewStyle().PaddingLeft(4).Render(s.mc.View())
	b.WriteString(options)

	return b.String()
}

// renderFeedback renders the graded answer with explanation.
func (s *PracticeScreen) renderFeedback(width int, st session.State) string {
	o := s.outcome

	var b strings.Builder

	verdict := theme.Correct.Render("  Correct!")
	if !o.Correct {
		verdict = theme.Incorrect.Render("  Incorrect")
	} else if o.Fast {
		verdict = theme.Correct.Render("  Correct, within time!")
	}
	b.WriteString(verdict)
	b.WriteString("\n\n")

	if s.question != nil {
		options := lipgloss.NewStyle().PaddingLeft(4).Render(s.mc.View())
		b.WriteString(options)
		b.WriteString("\n")
	}

	if o.Explanation != "" {
		expl := lipgloss.NewStyle().
			Width(width - 8).
			PaddingLeft(4).
			Foreground(theme.TextDim).
			Render(o.Explanation)
		b.WriteString(expl)
		b.WriteString("\n\n")
	}

	var notes []string
	if o.Archived {
		notes = append(notes, "This question is archived. It will return in spaced reviews.")
	}
	if !o.Correct {
		notes = append(notes, "A follow-up question was added to this batch.")
	}
	notes = append(notes, fmt.Sprintf("Chunk mastery: %d/100", o.MasteryScore))

	for _, n := range notes {
		b.WriteString(theme.Hint.PaddingLeft(4).Render(n))
		b.WriteString("\n")
	}

	return b.String()
}

// renderIntermission renders the between-batch pause.
func renderIntermission(width int, st session.State) string {
	accuracy := 0
	if st.Answered > 0 {
		accuracy = st.Correct * 100 / st.Answered
	}

	body := fmt.Sprintf(
		"Batch complete\n\nAnswered: %d\nCorrect:  %d (%d%%)\nWithin time: %d\n\nPress any key for the next batch",
		st.Answered, st.Correct, accuracy, st.Fast,
	)

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\n" + body)
}

// renderQuitConfirm renders the leave-session dialog.
func renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\nLeave this session?\n\nYour place is saved; starting again today resumes here.\n\n[Y] Leave    [N] Keep going")
}

// renderWaiting renders a centered waiting message.
func renderWaiting(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n" + msg)
}

// renderError renders a failure with a way back.
func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\nSomething went wrong\n\n" + msg + "\n\nPress any key to go back")
}
