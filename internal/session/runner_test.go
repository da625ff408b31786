package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/internal/course"
	"github.com/astiages123/auditpath/internal/llm"
	"github.com/astiages123/auditpath/internal/queue"
	"github.com/astiages123/auditpath/internal/quizgen"
	"github.com/astiages123/auditpath/internal/store"
)

// memStore is an in-memory implementation of every repo the Runner
// touches, shared across the per-interface dependencies in tests.
type memStore struct {
	counter    store.CounterResult
	statuses   map[uuid.UUID]*store.StatusRecord
	masteries  map[uuid.UUID]*store.MasteryRecord
	questions  map[uuid.UUID]*store.QuestionRecord
	chunkRows  map[uuid.UUID]*store.ChunkRecord
	training   []store.QuestionRef
	weakChunks []uuid.UUID
	events     []store.AnswerEventData
	solved     map[uuid.UUID]int
	poolSize   map[uuid.UUID]int
	cache      *store.CachedSession
	discards   int
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
	return w.m.weakChunks, nil
}

type memEvents struct{ m *memStore }

func (w memEvents) RecordAnswer(_ context.Context, data store.AnswerEventData) error {
	w.m.events = append(w.m.events, data)
	return nil
}
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
	return nil, nil
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
	w.m.discards++
	return nil
}

func testRunner(m *memStore, pipeline *quizgen.Pipeline) *Runner {
	questions := memQuestions{m}
	masteries := memMasteries{m}
	chunks := memChunks{m}
	deps := Deps{
		Sessions:  m,
		Statuses:  m,
		Masteries: masteries,
		Events:    memEvents{m},
		Questions: questions,
		Chunks:    chunks,
		Caches:    memCaches{m},
		Builder:   queue.NewBuilder(questions, masteries, chunks, nil),
		Pipeline:  pipeline,
	}
	return NewRunner(uuid.New(), uuid.New(), deps)
}

// seedQuestions fills one chunk with n active questions and returns the
// chunk id.
func (m *memStore) seedQuestions(n int) uuid.UUID {
	chunkID := uuid.New()
	courseID := uuid.New()
	m.chunkRows[chunkID] = &store.ChunkRecord{
		ID:           chunkID,
		CourseID:     courseID,
		Content:      "Ic kontrol, makul guvence saglamak uzere tasarlanan surectir.",
		WordCount:    8,
		DensityScore: 0.2,
	}
	m.weakChunks = []uuid.UUID{chunkID}
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

func TestRunnerInitializeBuildsQueue(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(6)
	r := testRunner(m, nil)

	if err := r.Initialize(context.Background(), 6, uuid.Nil); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	s := r.State()
	if s.Phase != PhaseReady {
		t.Fatalf("phase = %v, want ready", s.Phase)
	}
	if len(s.Queue) == 0 {
		t.Fatal("queue is empty")
	}
	if s.Resumed {
		t.Error("fresh session marked resumed")
	}
	if m.cache == nil {
		t.Error("no resume snapshot saved after initialize")
	}
}

func TestRunnerResumesMatchingSnapshot(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(6)
	m.counter = store.CounterResult{CurrentSession: 4}
	m.cache = &store.CachedSession{
		SessionID:     "cached-session",
		SessionNumber: 4,
		ReviewIndex:   2,
		Queue: []store.CachedQueueItem{
			{QuestionID: uuid.NewString(), ChunkID: uuid.NewString(), CourseID: uuid.NewString(), Status: "active"},
			{QuestionID: uuid.NewString(), ChunkID: uuid.NewString(), CourseID: uuid.NewString(), Status: "active"},
			{QuestionID: uuid.NewString(), ChunkID: uuid.NewString(), CourseID: uuid.NewString(), Status: "active"},
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	r := testRunner(m, nil)

	if err := r.Initialize(context.Background(), 6, uuid.Nil); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	s := r.State()
	if !s.Resumed {
		t.Fatal("matching snapshot not resumed")
	}
	if s.SessionID != "cached-session" {
		t.Errorf("session id = %q, want cached one", s.SessionID)
	}
	if s.Cursor != 2 {
		t.Errorf("cursor = %d, want restored 2", s.Cursor)
	}
	if len(s.Queue) != 3 {
		t.Errorf("queue = %d items, want cached 3", len(s.Queue))
	}
}

func TestRunnerDiscardsStaleSnapshot(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(6)
	m.counter = store.CounterResult{CurrentSession: 5, IsNewSession: true}
	m.cache = &store.CachedSession{
		SessionID:     "old-session",
		SessionNumber: 4, // from yesterday
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	r := testRunner(m, nil)

	if err := r.Initialize(context.Background(), 6, uuid.Nil); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	s := r.State()
	if s.Resumed {
		t.Error("stale snapshot was resumed")
	}
	if m.discards == 0 {
		t.Error("stale snapshot not discarded")
	}
	if s.SessionID == "old-session" {
		t.Error("stale session id carried over")
	}
}

func TestRunnerSubmitAnswerPersists(t *testing.T) {
	m := newMemStore()
	chunkID := m.seedQuestions(4)
	r := testRunner(m, nil)

	if err := r.Initialize(context.Background(), 4, uuid.Nil); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	r.Begin()

	out, err := r.SubmitAnswer(context.Background(), "Makul guvence", 3*time.Second)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Correct || !out.Fast {
		t.Errorf("outcome = %+v, want correct and fast", out)
	}

	s := r.State()
	if s.Answered != 1 || s.Correct != 1 || s.Fast != 1 {
		t.Errorf("totals = %d/%d/%d, want 1/1/1", s.Answered, s.Correct, s.Fast)
	}

	item, _ := s.Current()
	status := m.statuses[item.QuestionID]
	if status == nil {
		t.Fatal("no status row persisted")
	}
	if status.Status != "active" || status.SuccessStreak != 1 {
		t.Errorf("status = %s streak = %d, want active/1", status.Status, status.SuccessStreak)
	}

	if len(m.events) != 1 {
		t.Fatalf("answer events = %d, want 1", len(m.events))
	}
	if m.events[0].StatusAfter != "active" {
		t.Errorf("event status after = %q", m.events[0].StatusAfter)
	}

	if m.masteries[chunkID] == nil {
		t.Fatal("no mastery row persisted")
	}
}

func TestRunnerWrongAnswerInjectsScaffolding(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(4)

	followup := `{"question_text":"Makul guvence ne demektir?","options":["Kesin olmayan guvence","Tam guvence","Sifir risk","Yasal zorunluluk"],"answer":"Kesin olmayan guvence","explanation":"Tanim geregi."}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: []byte(followup)})
	pipeline := quizgen.New(mock, memQuestions{m}, memChunks{m}, quizgen.DefaultConfig(), nil)
	r := testRunner(m, pipeline)

	if err := r.Initialize(context.Background(), 4, uuid.Nil); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	r.Begin()
	before := len(r.State().Queue)

	out, err := r.SubmitAnswer(context.Background(), "Denetim plani", 3*time.Second)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Correct {
		t.Fatal("wrong answer graded correct")
	}
	if out.Status != "pending_followup" {
		t.Errorf("status = %q, want pending_followup", out.Status)
	}

	s := r.State()
	if len(s.Queue) != before+1 {
		t.Fatalf("queue = %d items, want injection to %d", len(s.Queue), before+1)
	}
	injected := s.Queue[s.Cursor+1]
	if injected.Reason != "scaffolding" {
		t.Errorf("injected reason = %q", injected.Reason)
	}

	generated := m.questions[injected.QuestionID]
	if generated == nil {
		t.Fatal("injected question not persisted")
	}
	if generated.ParentQuestionID == nil {
		t.Error("injected question has no parent link")
	}
}

func TestRunnerFinishDiscardsCache(t *testing.T) {
	m := newMemStore()
	m.seedQuestions(2)
	r := testRunner(m, nil)

	if err := r.Initialize(context.Background(), 2, uuid.Nil); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	r.Begin()

	r.Next(context.Background())
	if m.cache == nil {
		t.Fatal("cache dropped before session end")
	}
	r.Next(context.Background())

	if r.State().Phase != PhaseFinished {
		t.Fatalf("phase = %v, want finished", r.State().Phase)
	}
	if m.cache != nil {
		t.Error("cache kept after finish")
	}
}
