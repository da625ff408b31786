package practice

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/astiages123/auditpath/internal/course"
	"github.com/astiages123/auditpath/internal/queue"
	"github.com/astiages123/auditpath/internal/router"
	"github.com/astiages123/auditpath/internal/screens/summary"
	"github.com/astiages123/auditpath/internal/session"
	"github.com/astiages123/auditpath/internal/store"
)

// memStore backs every repo the practice screen and its runner touch.
type memStore struct {
	counter   store.CounterResult
	statuses  map[uuid.UUID]*store.StatusRecord
	masteries map[uuid.UUID]*store.MasteryRecord
	questions map[uuid.UUID]*store.QuestionRecord
	chunkRows map[uuid.UUID]*store.ChunkRecord
	chunkList []store.ChunkInfo
	training  []store.QuestionRef
	solved    map[uuid.UUID]int
	poolSize  map[uuid.UUID]int
	cache     *store.CachedSession
}

func newMemStore() *memStore {
	return &memStore{
		counter:   store.CounterResult{CurrentSession: 1, IsNewSession: true},
		statuses:  make(map[uuid.UUID]*store.StatusRecord),
		masteries: make(map[uuid.UUID]*store.MasteryRecord),
		questions: make(map[uuid.UUID]*store.QuestionRecord),
		chunkRows: make(map[uuid.UUID]*store.ChunkRecord),
		solved:    make(map[uuid.UUID]int),
		poolSize:  make(map[uuid.UUID]int),
	}
}

func (m *memStore) GetOrIncrement(context.Context, uuid.UUID, uuid.UUID, string) (store.CounterResult, error) {
	return m.counter, nil
}

func (m *memStore) Get(_ context.Context, _ uuid.UUID, questionID uuid.UUID) (*store.StatusRecord, error) {
	return m.statuses[questionID], nil
}

func (m *memStore) Upsert(_ context.Context, rec store.StatusRecord) error {
	m.statuses[rec.QuestionID] = &rec
	return nil
}

type memMasteries struct{ m *memStore }

func (w memMasteries) Get(_ context.Context, _, chunkID uuid.UUID) (*store.MasteryRecord, error) {
	return w.m.masteries[chunkID], nil
}
func (w memMasteries) Upsert(_ context.Context, rec store.MasteryRecord) error {
	w.m.masteries[rec.ChunkID] = &rec
	return nil
}
func (w memMasteries) LowestMasteryChunks(context.Context, uuid.UUID, uuid.UUID, int) ([]uuid.UUID, error) {
	return nil, nil
}

type memEvents struct{ m *memStore }

func (w memEvents) RecordAnswer(context.Context, store.AnswerEventData) error       { return nil }
func (w memEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error { return nil }
func (w memEvents) CountUniqueSolved(_ context.Context, _, chunkID uuid.UUID) (int, error) {
	return w.m.solved[chunkID], nil
}

type memQuestions struct{ m *memStore }

func (w memQuestions) Get(_ context.Context, id uuid.UUID) (*store.QuestionRecord, error) {
	return w.m.questions[id], nil
}
func (w memQuestions) Create(_ context.Context, rec store.QuestionRecord) (uuid.UUID, error) {
	rec.ID = uuid.New()
	stored := rec
	w.m.questions[rec.ID] = &stored
	return rec.ID, nil
}
func (w memQuestions) CountByChunk(_ context.Context, chunkID uuid.UUID) (int, error) {
	return w.m.poolSize[chunkID], nil
}
func (w memQuestions) FetchCached(context.Context, uuid.UUID, string, string) (*store.QuestionRecord, error) {
	return nil, nil
}
func (w memQuestions) FetchNewFollowups(context.Context, uuid.UUID, uuid.UUID, int) ([]store.QuestionRef, error) {
	return nil, nil
}
func (w memQuestions) FetchFailedConcepts(context.Context, uuid.UUID, uuid.UUID, int) ([]store.FailedConcept, error) {
	return nil, nil
}
func (w memQuestions) FetchUnseenByConcept(context.Context, uuid.UUID, uuid.UUID, string, uuid.UUID, int) ([]store.QuestionRef, error) {
	return nil, nil
}
func (w memQuestions) FetchDue(context.Context, uuid.UUID, uuid.UUID, string, int, int) ([]store.QuestionRef, error) {
	return nil, nil
}
func (w memQuestions) FetchStaleArchive(context.Context, uuid.UUID, uuid.UUID, time.Time, int) ([]store.QuestionRef, error) {
	return nil, nil
}
func (w memQuestions) FetchWaterfallTraining(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, int) ([]store.QuestionRef, error) {
	return w.m.training, nil
}
func (w memQuestions) FetchArchiveBackfill(context.Context, uuid.UUID, uuid.UUID, int) ([]store.QuestionRef, error) {
	return nil, nil
}

type memChunks struct{ m *memStore }

func (w memChunks) GetWithContent(_ context.Context, id uuid.UUID) (*store.ChunkRecord, error) {
	return w.m.chunkRows[id], nil
}
func (w memChunks) ListByCourse(context.Context, uuid.UUID) ([]store.ChunkInfo, error) {
	return w.m.chunkList, nil
}
func (w memChunks) Create(_ context.Context, rec store.ChunkRecord) (uuid.UUID, error) {
	rec.ID = uuid.New()
	w.m.chunkRows[rec.ID] = &rec
	return rec.ID, nil
}
func (w memChunks) UpdateStatus(context.Context, uuid.UUID, string) error { return nil }
func (w memChunks) UpdateConceptMapAndQuotas(context.Context, uuid.UUID, []course.ConceptMapItem, float64, course.Quota) error {
	return nil
}

type memCaches struct{ m *memStore }

func (w memCaches) Load(_ context.Context, _, _ uuid.UUID, now time.Time) (*store.CachedSession, error) {
	if w.m.cache == nil || now.After(w.m.cache.ExpiresAt) {
		return nil, nil
	}
	return w.m.cache, nil
}
func (w memCaches) Save(_ context.Context, snap store.CachedSession) error {
	w.m.cache = &snap
	return nil
}
func (w memCaches) Discard(context.Context, uuid.UUID, uuid.UUID) error {
	w.m.cache = nil
	return nil
}

// seedQuestions fills one chunk with n questions and returns the chunk
// id. All questions share the same answer so tests can submit blind.
func (m *memStore) seedQuestions(n int) uuid.UUID {
	chunkID := uuid.New()
	courseID := uuid.New()
	m.chunkRows[chunkID] = &store.ChunkRecord{
		ID:           chunkID,
		CourseID:     courseID,
		Title:        "Ic Kontrol Sistemi",
		Content:      "Ic kontrol, makul guvence saglamak uzere tasarlanan surectir.",
		WordCount:    8,
		DensityScore: 0.2,
	}
	m.chunkList = append(m.chunkList, store.ChunkInfo{ID: chunkID, Title: "Ic Kontrol Sistemi", Position: len(m.chunkList)})
	m.poolSize[chunkID] = n
	for i := 0; i < n; i++ {
		id := uuid.New()
		m.questions[id] = &store.QuestionRecord{
			ID:            id,
			ChunkID:       chunkID,
			CourseID:      courseID,
			UsageCategory: "practice",
			BloomLevel:    "knowledge",
			ConceptTitle:  "Ic Kontrol",
			Text:          "Ic kontrolun amaci nedir?",
			Options:       []string{"Makul guvence", "Mutlak guvence", "Denetim plani", "Risk listesi"},
			Answer:        "Makul guvence",
			Explanation:   "Metindeki tanim.",
		}
		m.training = append(m.training, store.QuestionRef{QuestionID: id, ChunkID: chunkID, CourseID: courseID})
	}
	return chunkID
}

func testScreen(m *memStore, targetSize int) *PracticeScreen {
	questions := memQuestions{m}
	masteries := memMasteries{m}
	chunks := memChunks{m}
	runner := session.NewRunner(uuid.New(), uuid.New(), session.Deps{
		Sessions:  m,
		Statuses:  m,
		Masteries: masteries,
		Events:    memEvents{m},
		Questions: questions,
		Chunks:    chunks,
		Caches:    memCaches{m},
		Builder:   queue.NewBuilder(questions, masteries, chunks, nil),
	})
	return New(Deps{
		Runner:     runner,
		Questions:  questions,
		Chunks:     chunks,
		Masteries:  masteries,
		UserID:     uuid.New(),
		CourseID:   uuid.New(),
		TargetSize: targetSize,
	})
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// startPlaying drives the screen through init and the first question
// load, the way the Bubble Tea runtime would deliver the messages.
func startPlaying(t *testing.T, s *PracticeScreen) {
	t.Helper()

	msg := s.initSession()()
	done, ok := msg.(initDoneMsg)
	if !ok {
		t.Fatalf("init returned %T, want initDoneMsg", msg)
	}
	_, cmd := s.Update(done)
	if cmd == nil {
		t.Fatal("expected a load command after init")
	}
	s.Update(cmd())
	if s.question == nil {
		t.Fatal("no question loaded after init")
	}
}

func TestPracticeScreen_Title(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(4)
	s := testScreen(m, 4)
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want Practice", s.Title())
	}
}

func TestPracticeScreen_InitLoadsFirstQuestion(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(4)
	s := testScreen(m, 4)

	startPlaying(t, s)

	if s.deps.Runner.State().Phase != session.PhasePlaying {
		t.Errorf("phase = %v, want playing", s.deps.Runner.State().Phase)
	}
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty question view")
	}
}

func TestPracticeScreen_NumberKeySubmits(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(4)
	s := testScreen(m, 4)
	startPlaying(t, s)

	_, cmd := s.Update(keyPress('1'))
	if !s.submitting {
		t.Fatal("expected submitting state after number key")
	}
	if cmd == nil {
		t.Fatal("expected a grading command")
	}
	if s.mc.Selected != 0 {
		t.Errorf("selected = %d, want 0", s.mc.Selected)
	}
}

func TestPracticeScreen_GradedAnswerShowsFeedback(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(4)
	s := testScreen(m, 4)
	startPlaying(t, s)

	out, err := s.deps.Runner.SubmitAnswer(context.Background(), "Makul guvence", 3*time.Second)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	s.Update(answerGradedMsg{Outcome: out})

	if s.outcome == nil {
		t.Fatal("no outcome recorded")
	}
	if !s.mc.Revealed {
		t.Error("options not revealed after grading")
	}
	if s.mc.CorrectIndex != 0 {
		t.Errorf("correct index = %d, want 0", s.mc.CorrectIndex)
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty feedback view")
	}
}

func TestPracticeScreen_FeedbackKeyAdvances(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(4)
	s := testScreen(m, 4)
	startPlaying(t, s)

	out, _ := s.deps.Runner.SubmitAnswer(context.Background(), "Makul guvence", 3*time.Second)
	s.Update(answerGradedMsg{Outcome: out})

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a load command after feedback dismiss")
	}
	s.Update(cmd())

	if s.question == nil {
		t.Fatal("no next question loaded")
	}
	if s.outcome != nil {
		t.Error("outcome not cleared on advance")
	}
}

func TestPracticeScreen_QuitConfirm(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(4)
	s := testScreen(m, 4)
	startPlaying(t, s)

	s.Update(specialKey(tea.KeyEscape))
	if !s.showingQuit {
		t.Fatal("expected quit confirmation after esc")
	}

	s.Update(keyPress('n'))
	if s.showingQuit {
		t.Error("quit confirmation not dismissed by n")
	}
}

func TestPracticeScreen_QuitKeepsResumeSnapshot(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(4)
	s := testScreen(m, 4)
	startPlaying(t, s)

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a pop command after quit confirm")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after quit confirm")
	}
	if m.cache == nil {
		t.Error("resume snapshot dropped on quit")
	}
}

func TestPracticeScreen_LastAnswerFinishesWithSummary(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(1)
	s := testScreen(m, 1)
	startPlaying(t, s)

	out, _ := s.deps.Runner.SubmitAnswer(context.Background(), "Makul guvence", 3*time.Second)
	s.Update(answerGradedMsg{Outcome: out})

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after the last answer")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want ReplaceScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("replacement screen = %T, want summary", msg.Screen)
	}
	if m.cache != nil {
		t.Error("resume snapshot kept after finish")
	}
}

func TestPracticeScreen_ErrorKeyPopsScreen(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(4)
	s := testScreen(m, 4)
	s.errMsg = "queue build failed"

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a pop command in error state")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg in error state")
	}
}

func TestPracticeScreen_PickFrontierSkipsMastered(t *testing.T) {
	m := newMemStore()
	mastered := m.seedQuestions(4)
	weak := m.seedQuestions(4)
	s := testScreen(m, 4)

	userID := s.deps.UserID
	m.masteries[mastered] = &store.MasteryRecord{UserID: userID, ChunkID: mastered, MasteryScore: 100}

	got := s.pickFrontier(context.Background())
	if got != weak {
		t.Errorf("frontier = %s, want the unmastered chunk %s", got, weak)
	}
}

func TestPracticeScreen_KeyHints(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(4)
	s := testScreen(m, 4)
	startPlaying(t, s)

	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	s.showingQuit = true
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("quit hints = %d, want 2", len(hints))
	}
}
