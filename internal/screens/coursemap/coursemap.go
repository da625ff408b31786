package coursemap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/astiages123/auditpath/internal/screen"
	"github.com/astiages123/auditpath/internal/store"
	"github.com/astiages123/auditpath/internal/ui/components"
	"github.com/astiages123/auditpath/internal/ui/layout"
	"github.com/astiages123/auditpath/internal/ui/theme"
)

// CourseMapScreen lists every chunk of the course in reading order with
// mastery progress and generation state.
type CourseMapScreen struct {
	st       *store.Store
	userID   uuid.UUID
	courseID uuid.UUID

	rows   []store.MasteryOverviewRow
	loaded bool
	errMsg string
	offset int
}

var _ screen.Screen = (*CourseMapScreen)(nil)
var _ screen.KeyHintProvider = (*CourseMapScreen)(nil)

// rowsLoadedMsg delivers the overview query result.
type rowsLoadedMsg struct {
	rows []store.MasteryOverviewRow
	err  error
}

// New creates a course map screen.
func New(st *store.Store, userID, courseID uuid.UUID) *CourseMapScreen {
	return &CourseMapScreen{st: st, userID: userID, courseID: courseID}
}

func (c *CourseMapScreen) Init() tea.Cmd {
	return func() tea.Msg {
		rows, err := c.st.MasteryOverview(context.Background(), c.userID, c.courseID)
		return rowsLoadedMsg{rows: rows, err: err}
	}
}

func (c *CourseMapScreen) Title() string {
	return "Course Map"
}

func (c *CourseMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CourseMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case rowsLoadedMsg:
		if msg.err != nil {
			c.errMsg = msg.err.Error()
		} else {
			c.rows = msg.rows
		}
		c.loaded = true
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if c.offset > 0 {
				c.offset--
			}
		case "down", "j":
			if c.offset < len(c.rows)-1 {
				c.offset++
			}
		}
	}
	return c, nil
}

func (c *CourseMapScreen) View(width, height int) string {
	if c.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + c.errMsg)
	}
	if !c.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nLoading course...")
	}
	if len(c.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo chunks imported yet. Run: auditpath import <files>")
	}

	var b strings.Builder
	b.WriteString("\n")

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	end := c.offset + visible
	if end > len(c.rows) {
		end = len(c.rows)
	}

	barWidth := min(width/3, 30)
	for _, row := range c.rows[c.offset:end] {
		title := row.Title
		maxTitle := width - barWidth - 24
		if maxTitle > 4 && len(title) > maxTitle {
			title = title[:maxTitle-3] + "..."
		}

		bar := components.NewProgressBar("", float64(row.MasteryScore)/100, true, barWidth)

		line := fmt.Sprintf("  %2d. %-*s %s  %s",
			row.Position+1,
			max(width-barWidth-24, 4), title,
			bar.View(),
			statusGlyph(row),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(c.rows) > visible {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d-%d of %d", c.offset+1, end, len(c.rows))))
	}

	return b.String()
}

// statusGlyph summarizes generation state for one chunk.
func statusGlyph(row store.MasteryOverviewRow) string {
	switch row.Status {
	case "completed":
		return lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("%d questions", row.QuestionCount))
	case "processing":
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("generating...")
	case "failed":
		return lipgloss.NewStyle().Foreground(theme.Error).Render("generation failed")
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("not generated")
	}
}
