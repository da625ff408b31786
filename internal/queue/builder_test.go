package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/internal/course"
	"github.com/astiages123/auditpath/internal/store"
)

// fakeQuestions serves canned pools per waterfall source.
type fakeQuestions struct {
	followups      []store.QuestionRef
	failedConcepts []store.FailedConcept
	byConcept      map[string][]store.QuestionRef
	duePending     []store.QuestionRef
	dueArchived    []store.QuestionRef
	stale          []store.QuestionRef
	training       map[uuid.UUID][]store.QuestionRef
	backfill       []store.QuestionRef
}

func (f *fakeQuestions) FetchNewFollowups(_ context.Context, _, _ uuid.UUID, limit int) ([]store.QuestionRef, error) {
	return capRefs(f.followups, limit), nil
}

func (f *fakeQuestions) FetchFailedConcepts(_ context.Context, _, _ uuid.UUID, limit int) ([]store.FailedConcept, error) {
	if len(f.failedConcepts) > limit {
		return f.failedConcepts[:limit], nil
	}
	return f.failedConcepts, nil
}

func (f *fakeQuestions) FetchUnseenByConcept(_ context.Context, _, _ uuid.UUID, concept string, _ uuid.UUID, limit int) ([]store.QuestionRef, error) {
	return capRefs(f.byConcept[concept], limit), nil
}

func (f *fakeQuestions) FetchDue(_ context.Context, _, _ uuid.UUID, status string, _, limit int) ([]store.QuestionRef, error) {
	if status == "archived" {
		return capRefs(f.dueArchived, limit), nil
	}
	return capRefs(f.duePending, limit), nil
}

func (f *fakeQuestions) FetchStaleArchive(_ context.Context, _, _ uuid.UUID, _ time.Time, limit int) ([]store.QuestionRef, error) {
	return capRefs(f.stale, limit), nil
}

func (f *fakeQuestions) FetchWaterfallTraining(_ context.Context, _, _, chunkID uuid.UUID, limit int) ([]store.QuestionRef, error) {
	return capRefs(f.training[chunkID], limit), nil
}

func (f *fakeQuestions) FetchArchiveBackfill(_ context.Context, _, _ uuid.UUID, limit int) ([]store.QuestionRef, error) {
	return capRefs(f.backfill, limit), nil
}

func (f *fakeQuestions) FetchCached(context.Context, uuid.UUID, string, string) (*store.QuestionRecord, error) {
	return nil, nil
}

func (f *fakeQuestions) Get(context.Context, uuid.UUID) (*store.QuestionRecord, error) {
	return nil, nil
}

func (f *fakeQuestions) Create(context.Context, store.QuestionRecord) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (f *fakeQuestions) CountByChunk(context.Context, uuid.UUID) (int, error) {
	return 0, nil
}

type fakeMasteries struct {
	weakChunks []uuid.UUID
}

func (f *fakeMasteries) Get(context.Context, uuid.UUID, uuid.UUID) (*store.MasteryRecord, error) {
	return nil, nil
}
func (f *fakeMasteries) Upsert(context.Context, store.MasteryRecord) error { return nil }
func (f *fakeMasteries) LowestMasteryChunks(context.Context, uuid.UUID, uuid.UUID, int) ([]uuid.UUID, error) {
	return f.weakChunks, nil
}

type fakeChunks struct {
	infos []store.ChunkInfo
}

func (f *fakeChunks) GetWithContent(context.Context, uuid.UUID) (*store.ChunkRecord, error) {
	return nil, nil
}
func (f *fakeChunks) ListByCourse(context.Context, uuid.UUID) ([]store.ChunkInfo, error) {
	return f.infos, nil
}
func (f *fakeChunks) Create(context.Context, store.ChunkRecord) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (f *fakeChunks) UpdateStatus(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeChunks) UpdateConceptMapAndQuotas(context.Context, uuid.UUID, []course.ConceptMapItem, float64, course.Quota) error {
	return nil
}

func capRefs(refs []store.QuestionRef, limit int) []store.QuestionRef {
	if len(refs) > limit {
		return refs[:limit]
	}
	return refs
}

func makeRefs(n int) []store.QuestionRef {
	refs := make([]store.QuestionRef, n)
	for i := range refs {
		refs[i] = store.QuestionRef{
			QuestionID: uuid.New(),
			ChunkID:    uuid.New(),
			CourseID:   uuid.New(),
		}
	}
	return refs
}

func newTestBuilder(q *fakeQuestions, m *fakeMasteries, c *fakeChunks) *Builder {
	if m == nil {
		m = &fakeMasteries{}
	}
	if c == nil {
		c = &fakeChunks{}
	}
	return NewBuilder(q, m, c, nil)
}

func build(t *testing.T, b *Builder, in BuildInput) []Item {
	t.Helper()
	items, err := b.Build(context.Background(), in)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return items
}

func TestBuildRespectsTargetSize(t *testing.T) {
	q := &fakeQuestions{
		followups:  makeRefs(5),
		duePending: makeRefs(10),
		backfill:   makeRefs(50),
	}
	b := newTestBuilder(q, nil, nil)

	items := build(t, b, BuildInput{TargetSize: 8, SessionNumber: 3})
	if len(items) > 8 {
		t.Errorf("queue size = %d, want <= 8", len(items))
	}
}

func TestBuildNoDuplicates(t *testing.T) {
	shared := makeRefs(4)
	q := &fakeQuestions{
		followups:   shared,
		duePending:  shared, // same ids offered twice
		dueArchived: shared,
		backfill:    shared,
	}
	b := newTestBuilder(q, nil, nil)

	items := build(t, b, BuildInput{TargetSize: 20, SessionNumber: 1})
	seen := make(map[uuid.UUID]bool)
	for _, it := range items {
		if seen[it.QuestionID] {
			t.Fatalf("duplicate question %s in queue", it.QuestionID)
		}
		seen[it.QuestionID] = true
	}
	if len(items) != 4 {
		t.Errorf("queue size = %d, want 4 unique items", len(items))
	}
}

func TestBuildTierPrecedence(t *testing.T) {
	q := &fakeQuestions{
		followups:  makeRefs(5),
		duePending: makeRefs(10),
		backfill:   makeRefs(20),
	}
	b := newTestBuilder(q, nil, nil)

	// Target 3: only tier 0 contributes; nothing lower appears.
	items := build(t, b, BuildInput{TargetSize: 3, SessionNumber: 1})
	if len(items) != 3 {
		t.Fatalf("queue size = %d, want 3", len(items))
	}
	for _, it := range items {
		if it.Tier != TierRemedial {
			t.Errorf("tier %d item leaked into a queue tier 0 could fill", it.Tier)
		}
	}
}

func TestBuildWaterfallOrdering(t *testing.T) {
	q := &fakeQuestions{
		followups:   makeRefs(2),
		duePending:  makeRefs(2),
		dueArchived: makeRefs(1),
		backfill:    makeRefs(10),
	}
	b := newTestBuilder(q, nil, nil)

	items := build(t, b, BuildInput{TargetSize: 10, SessionNumber: 1})
	for i := 1; i < len(items); i++ {
		if items[i].Tier < items[i-1].Tier {
			t.Fatalf("tier order violated at %d: %d after %d", i, items[i].Tier, items[i-1].Tier)
		}
	}
}

func TestBuildRemedialCap(t *testing.T) {
	q := &fakeQuestions{
		followups:  makeRefs(20),
		duePending: makeRefs(20),
	}
	b := newTestBuilder(q, nil, nil)

	items := build(t, b, BuildInput{TargetSize: 30, SessionNumber: 1})
	remedial := 0
	for _, it := range items {
		if it.Tier == TierRemedial {
			remedial++
		}
	}
	if remedial != remedialCap {
		t.Errorf("remedial items = %d, want capped at %d", remedial, remedialCap)
	}
}

func TestBuildPrerequisiteInjection(t *testing.T) {
	failedChunk := uuid.New()
	q := &fakeQuestions{
		failedConcepts: []store.FailedConcept{{Title: "Amortisman", ChunkID: failedChunk}},
		byConcept: map[string][]store.QuestionRef{
			"Amortisman": makeRefs(3),
		},
	}
	b := newTestBuilder(q, nil, nil)

	items := build(t, b, BuildInput{TargetSize: 10, SessionNumber: 1})
	if len(items) != 3 {
		t.Fatalf("queue size = %d, want 3 prerequisite items", len(items))
	}
	for _, it := range items {
		if it.Reason != "prerequisite" {
			t.Errorf("reason = %q, want prerequisite", it.Reason)
		}
	}
}

func TestBuildStaleArchiveFallback(t *testing.T) {
	q := &fakeQuestions{
		dueArchived: makeRefs(2),
		stale:       makeRefs(10),
	}
	b := newTestBuilder(q, nil, nil)

	items := build(t, b, BuildInput{TargetSize: 20, SessionNumber: 1})
	aging := 0
	staleCount := 0
	for _, it := range items {
		if it.Tier == TierAging {
			aging++
			if it.Reason == "stale-chunk" {
				staleCount++
			}
		}
	}
	if aging != agingCap {
		t.Errorf("aging items = %d, want %d", aging, agingCap)
	}
	if staleCount != agingCap-2 {
		t.Errorf("stale fallback items = %d, want %d", staleCount, agingCap-2)
	}
}

func TestBuildTrainingPrefersFrontier(t *testing.T) {
	frontier := uuid.New()
	weak := uuid.New()
	q := &fakeQuestions{
		training: map[uuid.UUID][]store.QuestionRef{
			frontier: makeRefs(3),
			weak:     makeRefs(3),
		},
	}
	m := &fakeMasteries{weakChunks: []uuid.UUID{weak}}
	b := newTestBuilder(q, m, nil)

	items := build(t, b, BuildInput{TargetSize: 10, SessionNumber: 1, FrontierChunkID: frontier})
	if len(items) == 0 {
		t.Fatal("expected training items")
	}
	if items[0].Reason != "frontier" {
		t.Errorf("first training item reason = %q, want frontier", items[0].Reason)
	}
	// Round-robin: second item comes from the weak chunk.
	if items[1].Reason != "low-mastery" {
		t.Errorf("second training item reason = %q, want low-mastery", items[1].Reason)
	}
}

func TestBuildTrainingBudgetShare(t *testing.T) {
	chunk := uuid.New()
	q := &fakeQuestions{
		training: map[uuid.UUID][]store.QuestionRef{chunk: makeRefs(50)},
		backfill: makeRefs(50),
	}
	m := &fakeMasteries{weakChunks: []uuid.UUID{chunk}}
	b := newTestBuilder(q, m, nil)

	items := build(t, b, BuildInput{TargetSize: 20, SessionNumber: 1})
	training := 0
	for _, it := range items {
		if it.Tier == TierTraining {
			training++
		}
	}
	if training != 14 { // ceil(20 × 0.7)
		t.Errorf("training items = %d, want 14", training)
	}
	if len(items) != 20 {
		t.Errorf("queue size = %d, want 20 after backfill", len(items))
	}
}

func TestBuildZeroTarget(t *testing.T) {
	b := newTestBuilder(&fakeQuestions{followups: makeRefs(3)}, nil, nil)
	items := build(t, b, BuildInput{TargetSize: 0, SessionNumber: 1})
	if len(items) != 0 {
		t.Errorf("queue size = %d, want 0", len(items))
	}
}
