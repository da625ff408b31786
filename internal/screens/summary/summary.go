package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/astiages123/auditpath/internal/router"
	"github.com/astiages123/auditpath/internal/screen"
	"github.com/astiages123/auditpath/internal/ui/components"
	"github.com/astiages123/auditpath/internal/ui/layout"
	"github.com/astiages123/auditpath/internal/ui/theme"
)

// Input carries the finished session's totals into the summary screen.
type Input struct {
	SessionNumber int
	Resumed       bool
	Answered      int
	Correct       int
	Fast          int
}

// SummaryScreen shows the end-of-session recap.
type SummaryScreen struct {
	in Input
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for the given totals.
func New(in Input) *SummaryScreen {
	return &SummaryScreen{in: in}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// Accuracy returns the percentage of answered questions that were
// correct.
func (s *SummaryScreen) Accuracy() int {
	if s.in.Answered == 0 {
		return 0
	}
	return s.in.Correct * 100 / s.in.Answered
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	title := fmt.Sprintf("Session %d complete", s.in.SessionNumber)
	if s.in.Resumed {
		title += " (resumed)"
	}
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n\n")

	if s.in.Answered == 0 {
		b.WriteString(theme.Subtitle.Width(width).Render("Nothing due for review today."))
		return b.String()
	}

	accuracy := s.Accuracy()
	stats := []string{
		fmt.Sprintf("Answered      %d", s.in.Answered),
		fmt.Sprintf("Correct       %d", s.in.Correct),
		fmt.Sprintf("Within time   %d", s.in.Fast),
	}
	for _, line := range stats {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	barWidth := min(width-20, 40)
	if barWidth < 10 {
		barWidth = 10
	}
	bar := components.NewProgressBar("Accuracy", float64(accuracy)/100, true, barWidth)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(bar.View()))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(encouragement(accuracy)))

	return b.String()
}

func encouragement(accuracy int) string {
	switch {
	case accuracy >= 90:
		return "Exam-ready pace. Keep the streaks going."
	case accuracy >= 70:
		return "Solid session. The follow-ups will close the gaps."
	default:
		return "Rough patch. Tomorrow's queue will revisit what slipped."
	}
}
