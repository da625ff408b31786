package practice

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/astiages123/auditpath/internal/router"
	"github.com/astiages123/auditpath/internal/screen"
	"github.com/astiages123/auditpath/internal/screens/summary"
	"github.com/astiages123/auditpath/internal/session"
	"github.com/astiages123/auditpath/internal/store"
	"github.com/astiages123/auditpath/internal/ui/components"
	"github.com/astiages123/auditpath/internal/ui/layout"
)

// DefaultQueueSize is the review queue target for a TUI session: two
// batches with room for scaffolding injections.
const DefaultQueueSize = 2 * session.BatchSize

// Deps bundles what the practice screen needs beyond the runner: the
// repos used to pick the frontier chunk before the queue is built.
type Deps struct {
	Runner     *session.Runner
	Questions  store.QuestionRepo
	Chunks     store.ChunkRepo
	Masteries  store.MasteryRepo
	UserID     uuid.UUID
	CourseID   uuid.UUID
	TargetSize int
}

// PracticeScreen runs one review session. All session semantics live in
// the runner; the screen translates key presses into runner calls and
// renders whatever the state says.
type PracticeScreen struct {
	deps Deps

	question      *store.QuestionRecord
	mc            components.MultiChoice
	sp            spinner.Model
	outcome       *session.AnswerOutcome
	questionStart time.Time
	submitting    bool
	showingQuit   bool
	errMsg        string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen. Call once per session run.
func New(deps Deps) *PracticeScreen {
	if deps.TargetSize <= 0 {
		deps.TargetSize = DefaultQueueSize
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &PracticeScreen{deps: deps, sp: sp}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(s.initSession(), s.sp.Tick)
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// OwnsEsc keeps the root model from popping this screen on Esc.
// Leaving mid-session goes through the confirm dialog instead.
func (s *PracticeScreen) OwnsEsc() bool {
	return true
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave (resume later)"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.outcome != nil || s.deps.Runner.State().Phase == session.PhaseIntermission {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *PracticeScreen) View(width, height int) string {
	st := s.deps.Runner.State()

	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case st.Phase == session.PhaseError:
		return renderError(width, st.ErrMsg)
	case s.showingQuit:
		return renderQuitConfirm(width)
	case st.Phase == session.PhaseIntermission:
		return renderIntermission(width, st)
	case s.outcome != nil:
		return s.renderFeedback(width, st)
	case s.submitting:
		return renderWaiting(width, s.sp.View()+" Checking your answer...")
	case s.question != nil:
		return s.renderQuestion(width, st)
	}
	return renderWaiting(width, s.sp.View()+" Preparing your session...")
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case initDoneMsg:
		return s.handleInitDone(msg)
	case questionReadyMsg:
		return s.handleQuestionReady(msg)
	case answerGradedMsg:
		return s.handleAnswerGraded(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	case spinner.TickMsg:
		if s.busy() {
			var cmd tea.Cmd
			s.sp, cmd = s.sp.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

// busy reports whether a waiting view is showing, which keeps the
// spinner ticking.
func (s *PracticeScreen) busy() bool {
	return s.submitting || (s.question == nil && s.errMsg == "" &&
		s.deps.Runner.State().Phase != session.PhaseIntermission &&
		s.deps.Runner.State().Phase != session.PhaseError)
}

// initSession builds or resumes the review queue off the UI loop.
func (s *PracticeScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		frontier := s.pickFrontier(ctx)
		if err := s.deps.Runner.Initialize(ctx, s.deps.TargetSize, frontier); err != nil {
			return initDoneMsg{Err: err}
		}
		return initDoneMsg{}
	}
}

// pickFrontier returns the first chunk in reading order that is not yet
// fully mastered and has generated questions. uuid.Nil means the queue
// builder falls back to weakest-chunk order.
func (s *PracticeScreen) pickFrontier(ctx context.Context) uuid.UUID {
	infos, err := s.deps.Chunks.ListByCourse(ctx, s.deps.CourseID)
	if err != nil {
		return uuid.Nil
	}
	for _, info := range infos {
		m, err := s.deps.Masteries.Get(ctx, s.deps.UserID, info.ID)
		if err != nil {
			continue
		}
		if m != nil && m.MasteryScore >= 100 {
			continue
		}
		n, err := s.deps.Questions.CountByChunk(ctx, info.ID)
		if err != nil || n == 0 {
			continue
		}
		return info.ID
	}
	return uuid.Nil
}

func (s *PracticeScreen) handleInitDone(msg initDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	st := s.deps.Runner.State()
	if st.Phase == session.PhaseFinished {
		// Nothing to review: empty queue counts as a finished session.
		return s, s.finish()
	}

	s.deps.Runner.Begin()
	return s, s.loadQuestion()
}

func (s *PracticeScreen) loadQuestion() tea.Cmd {
	return func() tea.Msg {
		q, err := s.deps.Runner.CurrentQuestion(context.Background())
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (s *PracticeScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.Question == nil {
		if s.deps.Runner.State().Phase == session.PhaseFinished {
			return s, s.finish()
		}
		s.errMsg = "question unavailable"
		return s, nil
	}

	s.question = msg.Question
	s.mc = components.NewMultiChoice(msg.Question.Options)
	s.outcome = nil
	s.submitting = false
	s.questionStart = time.Now()
	return s, nil
}

func (s *PracticeScreen) handleAnswerGraded(msg answerGradedMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.Outcome == nil {
		s.errMsg = "answer could not be graded"
		return s, nil
	}

	s.outcome = msg.Outcome
	s.mc.Reveal(indexOf(s.question.Options, msg.Outcome.Answer), s.mc.Selected)
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back to the home screen.
	if s.errMsg != "" || s.deps.Runner.State().Phase == session.PhaseError {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuit {
		switch key {
		case "y", "Y":
			// The resume snapshot stays; the next start picks it up.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuit = false
		}
		return s, nil
	}

	if s.submitting {
		return s, nil
	}

	// Feedback showing: any key advances.
	if s.outcome != nil {
		return s.advance()
	}

	// Intermission: any key resumes the next batch.
	if s.deps.Runner.State().Phase == session.PhaseIntermission {
		s.deps.Runner.ResumeBatch()
		return s, s.loadQuestion()
	}

	if s.question == nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuit = true
		return s, nil
	case "enter":
		return s.submit()
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.question.Options) {
			s.mc.Selected = idx
			return s.submit()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	return s, cmd
}

// submit grades the current answer off the UI loop. A wrong answer may
// block on follow-up generation, so this never runs inline.
func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	answer := s.mc.Value()
	if answer == "" {
		return s, nil
	}
	elapsed := time.Since(s.questionStart)

	s.submitting = true
	grade := func() tea.Msg {
		outcome, err := s.deps.Runner.SubmitAnswer(context.Background(), answer, elapsed)
		return answerGradedMsg{Outcome: outcome, Err: err}
	}
	return s, tea.Batch(grade, s.sp.Tick)
}

// advance moves past the answered question and routes on the resulting
// phase.
func (s *PracticeScreen) advance() (screen.Screen, tea.Cmd) {
	s.outcome = nil
	s.question = nil
	s.deps.Runner.Next(context.Background())

	st := s.deps.Runner.State()
	switch st.Phase {
	case session.PhaseFinished:
		return s, s.finish()
	case session.PhaseIntermission:
		return s, nil
	default:
		return s, s.loadQuestion()
	}
}

// finish swaps this screen for the session summary.
func (s *PracticeScreen) finish() tea.Cmd {
	st := s.deps.Runner.State()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(summary.Input{
				SessionNumber: st.SessionNumber,
				Resumed:       st.Resumed,
				Answered:      st.Answered,
				Correct:       st.Correct,
				Fast:          st.Fast,
			}),
		}
	}
}

func indexOf(options []string, answer string) int {
	for i, opt := range options {
		if opt == answer {
			return i
		}
	}
	return -1
}
