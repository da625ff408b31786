package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/astiages123/auditpath/internal/router"
	"github.com/astiages123/auditpath/internal/screen"
	"github.com/astiages123/auditpath/internal/screens/coursemap"
	"github.com/astiages123/auditpath/internal/screens/practice"
	"github.com/astiages123/auditpath/internal/session"
	"github.com/astiages123/auditpath/internal/store"
	"github.com/astiages123/auditpath/internal/ui/components"
	"github.com/astiages123/auditpath/internal/ui/theme"
)

// Deps wires the home screen to the store and the session factory. A
// nil NewRunner disables the practice entry (no content or no engine).
type Deps struct {
	Store      *store.Store
	NewRunner  func() *session.Runner
	UserID     uuid.UUID
	CourseID   uuid.UUID
	TargetSize int
}

// HomeScreen is the entry screen: course stats and the main menu.
type HomeScreen struct {
	menu components.Menu

	chunkCount    int
	questionCount int
	archivedCount int
	pendingCount  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Reads the overview synchronously; the
// queries are cheap against the local database.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{}

	ctx := context.Background()
	if rows, err := deps.Store.MasteryOverview(ctx, deps.UserID, deps.CourseID); err == nil {
		h.chunkCount = len(rows)
		for _, row := range rows {
			h.questionCount += row.QuestionCount
		}
	}
	if counts, err := deps.Store.CountStatuses(ctx, deps.UserID, deps.CourseID); err == nil {
		h.archivedCount = counts["archived"]
		h.pendingCount = counts["pending_followup"]
	}

	items := []components.MenuItem{
		{
			Label:    "START SESSION",
			Disabled: deps.NewRunner == nil || h.questionCount == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: practice.New(practice.Deps{
							Runner:     deps.NewRunner(),
							Questions:  deps.Store.Questions(),
							Chunks:     deps.Store.Chunks(),
							Masteries:  deps.Store.Masteries(),
							UserID:     deps.UserID,
							CourseID:   deps.CourseID,
							TargetSize: deps.TargetSize,
						}),
					}
				}
			},
		},
		{
			Label: "COURSE MAP",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: coursemap.New(deps.Store, deps.UserID, deps.CourseID),
					}
				}
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("AuditPath"))
	sections = append(sections, theme.Subtitle.Width(width).Render("Terminal study companion for certification prep"))

	stats := fmt.Sprintf("%d chunks   %d questions   %d archived   %d follow-ups due",
		h.chunkCount, h.questionCount, h.archivedCount, h.pendingCount)
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))

	if h.questionCount == 0 {
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(
			"Import course content first: auditpath import <files>, then: auditpath generate"))
	}

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	return "\n" + strings.Join(sections, "\n\n")
}
