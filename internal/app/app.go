package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/astiages123/auditpath/internal/llm"
	"github.com/astiages123/auditpath/internal/queue"
	"github.com/astiages123/auditpath/internal/quizgen"
	"github.com/astiages123/auditpath/internal/router"
	"github.com/astiages123/auditpath/internal/screen"
	"github.com/astiages123/auditpath/internal/screens/home"
	"github.com/astiages123/auditpath/internal/session"
	"github.com/astiages123/auditpath/internal/store"
	"github.com/astiages123/auditpath/internal/ui/layout"
)

// Options carries everything the TUI needs. Provider may be nil; the
// app then runs without mid-session follow-up generation.
type Options struct {
	Store      *store.Store
	Provider   llm.Provider
	Log        *zap.Logger
	UserID     uuid.UUID
	CourseID   uuid.UUID
	TargetSize int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel builds the screen stack with the home screen at the
// bottom.
func newAppModel(opts Options) AppModel {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	var pipeline *quizgen.Pipeline
	if opts.Provider != nil {
		pipeline = quizgen.New(opts.Provider, opts.Store.Questions(), opts.Store.Chunks(), quizgen.DefaultConfig(), log)
	}

	builder := queue.NewBuilder(opts.Store.Questions(), opts.Store.Masteries(), opts.Store.Chunks(), log)

	newRunner := func() *session.Runner {
		return session.NewRunner(opts.UserID, opts.CourseID, session.Deps{
			Sessions:  opts.Store.Sessions(),
			Statuses:  opts.Store.Statuses(),
			Masteries: opts.Store.Masteries(),
			Events:    opts.Store.Events(),
			Questions: opts.Store.Questions(),
			Chunks:    opts.Store.Chunks(),
			Caches:    opts.Store.Caches(),
			Builder:   builder,
			Pipeline:  pipeline,
			Log:       log,
		})
	}

	homeScreen := home.New(home.Deps{
		Store:      opts.Store,
		NewRunner:  newRunner,
		UserID:     opts.UserID,
		CourseID:   opts.CourseID,
		TargetSize: opts.TargetSize,
	})

	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that own Esc (the practice flow) consume it in
			// their own Update; only plain navigation pops here.
			if m.router.Depth() > 1 && !activeOwnsEsc(m.router.Active()) {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// escOwner is implemented by screens that handle Esc themselves.
type escOwner interface {
	OwnsEsc() bool
}

func activeOwnsEsc(s interface{}) bool {
	if o, ok := s.(escOwner); ok {
		return o.OwnsEsc()
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, 0, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
