package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/internal/course"
	"github.com/astiages123/auditpath/internal/llm"
	"github.com/astiages123/auditpath/internal/store"
)

type fakeQuestionStore struct {
	cached  map[string]*store.QuestionRecord // chunk|category|concept
	byID    map[uuid.UUID]*store.QuestionRecord
	created []store.QuestionRecord
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{
		cached: make(map[string]*store.QuestionRecord),
		byID:   make(map[uuid.UUID]*store.QuestionRecord),
	}
}

func cacheKey(chunkID uuid.UUID, category, concept string) string {
	return fmt.Sprintf("%s|%s|%s", chunkID, category, concept)
}

func (f *fakeQuestionStore) FetchCached(_ context.Context, chunkID uuid.UUID, category, concept string) (*store.QuestionRecord, error) {
	return f.cached[cacheKey(chunkID, category, concept)], nil
}

func (f *fakeQuestionStore) Get(_ context.Context, id uuid.UUID) (*store.QuestionRecord, error) {
	return f.byID[id], nil
}

func (f *fakeQuestionStore) Create(_ context.Context, rec store.QuestionRecord) (uuid.UUID, error) {
	rec.ID = uuid.New()
	f.created = append(f.created, rec)
	stored := rec
	f.byID[rec.ID] = &stored
	f.cached[cacheKey(rec.ChunkID, rec.UsageCategory, rec.ConceptTitle)] = &stored
	return rec.ID, nil
}

func (f *fakeQuestionStore) CountByChunk(context.Context, uuid.UUID) (int, error) { return 0, nil }

func (f *fakeQuestionStore) FetchNewFollowups(context.Context, uuid.UUID, uuid.UUID, int) ([]store.QuestionRef, error) {
	return nil, nil
}
func (f *fakeQuestionStore) FetchFailedConcepts(context.Context, uuid.UUID, uuid.UUID, int) ([]store.FailedConcept, error) {
	return nil, nil
}
func (f *fakeQuestionStore) FetchUnseenByConcept(context.Context, uuid.UUID, uuid.UUID, string, uuid.UUID, int) ([]store.QuestionRef, error) {
	return nil, nil
}
func (f *fakeQuestionStore) FetchDue(context.Context, uuid.UUID, uuid.UUID, string, int, int) ([]store.QuestionRef, error) {
	return nil, nil
}
func (f *fakeQuestionStore) FetchStaleArchive(context.Context, uuid.UUID, uuid.UUID, time.Time, int) ([]store.QuestionRef, error) {
	return nil, nil
}
func (f *fakeQuestionStore) FetchWaterfallTraining(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, int) ([]store.QuestionRef, error) {
	return nil, nil
}
func (f *fakeQuestionStore) FetchArchiveBackfill(context.Context, uuid.UUID, uuid.UUID, int) ([]store.QuestionRef, error) {
	return nil, nil
}

type fakeChunkStore struct {
	chunks map[uuid.UUID]*store.ChunkRecord
}

func newFakeChunkStore(chunks ...*store.ChunkRecord) *fakeChunkStore {
	f := &fakeChunkStore{chunks: make(map[uuid.UUID]*store.ChunkRecord)}
	for _, c := range chunks {
		f.chunks[c.ID] = c
	}
	return f
}

func (f *fakeChunkStore) GetWithContent(_ context.Context, id uuid.UUID) (*store.ChunkRecord, error) {
	if c, ok := f.chunks[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeChunkStore) ListByCourse(context.Context, uuid.UUID) ([]store.ChunkInfo, error) {
	return nil, nil
}

func (f *fakeChunkStore) Create(_ context.Context, rec store.ChunkRecord) (uuid.UUID, error) {
	rec.ID = uuid.New()
	f.chunks[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeChunkStore) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	if c, ok := f.chunks[id]; ok {
		c.Status = status
	}
	return nil
}

func (f *fakeChunkStore) UpdateConceptMapAndQuotas(_ context.Context, id uuid.UUID, concepts []course.ConceptMapItem, difficulty float64, quota course.Quota) error {
	if c, ok := f.chunks[id]; ok {
		c.ConceptMap = concepts
		c.DifficultyIndex = difficulty
		c.Quota = quota
	}
	return nil
}

func draftJSON(text string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"question_text":%q,"options":["Dogru","Yanlis A","Yanlis B","Yanlis C"],"answer":"Dogru","explanation":"Metindeki tanima gore."}`,
		text))
}

func approveJSON() json.RawMessage {
	return json.RawMessage(`{"score":85,"verdict":"approve","feedback":""}`)
}

func rejectJSON(feedback string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"score":40,"verdict":"reject","feedback":%q}`, feedback))
}

func mappedChunk(concepts ...string) *store.ChunkRecord {
	items := make([]course.ConceptMapItem, len(concepts))
	for i, title := range concepts {
		items[i] = course.ConceptMapItem{
			Title: title,
			Focus: "tanim ve kapsam",
			Level: course.LevelKnowledge,
		}
	}
	return &store.ChunkRecord{
		ID:         uuid.New(),
		CourseID:   uuid.New(),
		Title:      "Denetim Kanitlari",
		Content:    "Denetim kaniti, denetcinin gorusune dayanak olusturan bilgidir.",
		ConceptMap: items,
		Quota:      course.ComputeQuota(len(items)),
		Status:     StatusPending,
	}
}

func TestGenerateChunkIdempotentCaching(t *testing.T) {
	chunk := mappedChunk("Denetim Kaniti", "Yeterlilik")
	questions := newFakeQuestionStore()
	for _, c := range chunk.ConceptMap {
		id := uuid.New()
		questions.cached[cacheKey(chunk.ID, "practice", c.Title)] = &store.QuestionRecord{ID: id}
	}
	chunks := newFakeChunkStore(chunk)
	mock := llm.NewMockProvider()

	p := New(mock, questions, chunks, DefaultConfig(), nil)
	sum, err := p.GenerateChunk(context.Background(), chunk.ID, []UsageCategory{CategoryPractice}, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0 for fully cached chunk", mock.CallCount())
	}
	if sum.Cached != 2 || sum.Saved != 0 {
		t.Errorf("cached = %d saved = %d, want 2 cached 0 saved", sum.Cached, sum.Saved)
	}
	if chunks.chunks[chunk.ID].Status != StatusCompleted {
		t.Errorf("chunk status = %q, want completed", chunks.chunks[chunk.ID].Status)
	}
}

func TestGenerateChunkMapsConceptsOnce(t *testing.T) {
	chunk := mappedChunk()
	chunk.ConceptMap = nil
	chunk.Quota = course.Quota{}
	chunks := newFakeChunkStore(chunk)
	questions := newFakeQuestionStore()

	mapJSON := json.RawMessage(`{"concepts":[
		{"title":"Denetim Kaniti","focus":"tanim","level":"knowledge","image_ref":""},
		{"title":"Yeterlilik","focus":"miktar olcutu","level":"application","image_ref":""},
		{"title":"Uygunluk","focus":"kalite olcutu","level":"analysis","image_ref":""}]}`)

	responses := []llm.MockResponse{{Content: mapJSON}}
	for i := 0; i < 3; i++ {
		responses = append(responses,
			llm.MockResponse{Content: draftJSON(fmt.Sprintf("Soru %d", i))},
			llm.MockResponse{Content: approveJSON()},
		)
	}
	mock := llm.NewMockProvider(responses...)

	p := New(mock, questions, chunks, DefaultConfig(), nil)
	sum, err := p.GenerateChunk(context.Background(), chunk.ID, []UsageCategory{CategoryPractice}, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	got := chunks.chunks[chunk.ID]
	if len(got.ConceptMap) != 3 {
		t.Fatalf("persisted concepts = %d, want 3", len(got.ConceptMap))
	}
	if got.Quota.Practice != 5 {
		t.Errorf("practice quota = %d, want floor 5", got.Quota.Practice)
	}
	if got.Quota.Archive != 2 || got.Quota.Exam != 1 {
		t.Errorf("quota = %+v, want archive 2 exam 1", got.Quota)
	}
	// (1 + 2 + 3) / 3
	if got.DifficultyIndex != 2.0 {
		t.Errorf("difficulty index = %v, want 2.0", got.DifficultyIndex)
	}
	if sum.Saved != 3 {
		t.Errorf("saved = %d, want 3", sum.Saved)
	}
}

func TestGenerateChunkSkipsRejectedConcept(t *testing.T) {
	chunk := mappedChunk("Kotu Kavram", "Iyi Kavram")
	chunks := newFakeChunkStore(chunk)
	questions := newFakeQuestionStore()

	// First concept: draft + reject, then two revisions each rejected.
	// Second concept: draft + approve.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: draftJSON("ilk deneme")},
		llm.MockResponse{Content: rejectJSON("cevap yanlis")},
		llm.MockResponse{Content: draftJSON("ikinci deneme")},
		llm.MockResponse{Content: rejectJSON("hala yanlis")},
		llm.MockResponse{Content: draftJSON("ucuncu deneme")},
		llm.MockResponse{Content: rejectJSON("gecersiz")},
		llm.MockResponse{Content: draftJSON("saglam soru")},
		llm.MockResponse{Content: approveJSON()},
	)

	p := New(mock, questions, chunks, DefaultConfig(), nil)
	sum, err := p.GenerateChunk(context.Background(), chunk.ID, []UsageCategory{CategoryPractice}, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if sum.Saved != 1 {
		t.Errorf("saved = %d, want 1 surviving concept", sum.Saved)
	}
	if len(sum.Failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(sum.Failures))
	}
	if sum.Failures[0].Concept != "Kotu Kavram" {
		t.Errorf("failed concept = %q", sum.Failures[0].Concept)
	}
	// Partial failure still completes the chunk.
	if chunks.chunks[chunk.ID].Status != StatusCompleted {
		t.Errorf("chunk status = %q, want completed", chunks.chunks[chunk.ID].Status)
	}
}

func TestGenerateChunkAllFailedMarksFailed(t *testing.T) {
	chunk := mappedChunk("Tek Kavram")
	chunks := newFakeChunkStore(chunk)
	questions := newFakeQuestionStore()

	// Provider queue empties immediately: every call errors.
	mock := llm.NewMockProvider()

	p := New(mock, questions, chunks, DefaultConfig(), nil)
	sum, err := p.GenerateChunk(context.Background(), chunk.ID, []UsageCategory{CategoryPractice}, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if sum.Saved != 0 || len(sum.Failures) == 0 {
		t.Errorf("saved = %d failures = %d", sum.Saved, len(sum.Failures))
	}
	if chunks.chunks[chunk.ID].Status != StatusFailed {
		t.Errorf("chunk status = %q, want failed", chunks.chunks[chunk.ID].Status)
	}
}

func TestGenerateChunkReportsIncrementalProgress(t *testing.T) {
	chunk := mappedChunk("A", "B")
	chunks := newFakeChunkStore(chunk)
	questions := newFakeQuestionStore()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: draftJSON("soru a")},
		llm.MockResponse{Content: approveJSON()},
		llm.MockResponse{Content: draftJSON("soru b")},
		llm.MockResponse{Content: approveJSON()},
	)

	var reports []Progress
	p := New(mock, questions, chunks, DefaultConfig(), nil)
	_, err := p.GenerateChunk(context.Background(), chunk.ID, []UsageCategory{CategoryPractice}, func(pr Progress) {
		reports = append(reports, pr)
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(reports) != 2 {
		t.Fatalf("progress reports = %d, want one per save", len(reports))
	}
	if reports[0].Saved != 1 || reports[1].Saved != 2 {
		t.Errorf("saved counts = %d, %d; want 1, 2", reports[0].Saved, reports[1].Saved)
	}
	// Each save is persisted before its report.
	if len(questions.created) != 2 {
		t.Errorf("persisted = %d, want 2", len(questions.created))
	}
}

func TestGenerateFollowupLinksParent(t *testing.T) {
	questions := newFakeQuestionStore()
	parentID := uuid.New()
	questions.byID[parentID] = &store.QuestionRecord{
		ID:            parentID,
		ChunkID:       uuid.New(),
		CourseID:      uuid.New(),
		UsageCategory: "practice",
		BloomLevel:    "application",
		ConceptTitle:  "Ornekleme Riski",
		Text:          "Ornekleme riski nedir?",
		Options:       []string{"A", "B", "C", "D"},
		Answer:        "A",
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: draftJSON("takip sorusu")})

	p := New(mock, questions, newFakeChunkStore(), DefaultConfig(), nil)
	id, err := p.GenerateFollowup(context.Background(), FollowupInput{
		QuestionID: parentID,
		UserAnswer: "B",
	})
	if err != nil {
		t.Fatalf("followup: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected a question id")
	}

	created := questions.created[0]
	if created.ParentQuestionID == nil || *created.ParentQuestionID != parentID {
		t.Errorf("parent link = %v, want %s", created.ParentQuestionID, parentID)
	}
	if created.ConceptTitle != "Ornekleme Riski" {
		t.Errorf("concept = %q, want inherited from parent", created.ConceptTitle)
	}
	if created.UsageCategory != "practice" {
		t.Errorf("category = %q, want practice", created.UsageCategory)
	}
}

func TestGenerateArchiveRefreshBypassesCache(t *testing.T) {
	chunk := mappedChunk("Baglilik Testi")
	questions := newFakeQuestionStore()
	questions.cached[cacheKey(chunk.ID, "archive", "Baglilik Testi")] = &store.QuestionRecord{ID: uuid.New()}
	chunks := newFakeChunkStore(chunk)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: draftJSON("taze soru")},
		llm.MockResponse{Content: approveJSON()},
	)

	p := New(mock, questions, chunks, DefaultConfig(), nil)
	id, err := p.GenerateArchiveRefresh(context.Background(), chunk.ID, "Baglilik Testi")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected a question id")
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider calls = %d, want 2 despite cached question", mock.CallCount())
	}
	if questions.created[0].UsageCategory != "archive" {
		t.Errorf("category = %q, want archive", questions.created[0].UsageCategory)
	}
}

func TestRecoverResetsCrashedChunk(t *testing.T) {
	chunk := mappedChunk("Kavram")
	chunk.Status = StatusProcessing
	chunks := newFakeChunkStore(chunk)

	p := New(llm.NewMockProvider(), newFakeQuestionStore(), chunks, DefaultConfig(), nil)
	if err := p.Recover(context.Background(), chunk.ID); err != nil {
		t.Fatalf("recover: %v", err)
	}
	if chunks.chunks[chunk.ID].Status != StatusPending {
		t.Errorf("status = %q, want pending", chunks.chunks[chunk.ID].Status)
	}

	// Completed chunks are left alone.
	chunks.chunks[chunk.ID].Status = StatusCompleted
	if err := p.Recover(context.Background(), chunk.ID); err != nil {
		t.Fatalf("recover: %v", err)
	}
	if chunks.chunks[chunk.ID].Status != StatusCompleted {
		t.Errorf("status = %q, want completed untouched", chunks.chunks[chunk.ID].Status)
	}
}
