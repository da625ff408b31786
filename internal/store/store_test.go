package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionCounterSameDay(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	userID := uuid.New()
	courseID := uuid.New()

	first, err := repo.GetOrIncrement(ctx, userID, courseID, "2026-08-31")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if !first.IsNewSession {
		t.Error("first call should start a new session")
	}
	if first.CurrentSession != 1 {
		t.Errorf("first session = %d, want 1", first.CurrentSession)
	}

	second, err := repo.GetOrIncrement(ctx, userID, courseID, "2026-08-31")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if second.IsNewSession {
		t.Error("same-day call should not start a new session")
	}
	if second.CurrentSession != first.CurrentSession {
		t.Errorf("same-day session = %d, want %d", second.CurrentSession, first.CurrentSession)
	}
}

func TestSessionCounterNextDay(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	userID := uuid.New()
	courseID := uuid.New()

	if _, err := repo.GetOrIncrement(ctx, userID, courseID, "2026-08-30"); err != nil {
		t.Fatalf("day one: %v", err)
	}

	next, err := repo.GetOrIncrement(ctx, userID, courseID, "2026-08-31")
	if err != nil {
		t.Fatalf("day two: %v", err)
	}
	if !next.IsNewSession {
		t.Error("next-day call should start a new session")
	}
	if next.CurrentSession != 2 {
		t.Errorf("next-day session = %d, want 2", next.CurrentSession)
	}
}

func TestSessionCounterIsolatedPerCourse(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	userID := uuid.New()

	a, err := repo.GetOrIncrement(ctx, userID, uuid.New(), "2026-08-31")
	if err != nil {
		t.Fatalf("course a: %v", err)
	}
	b, err := repo.GetOrIncrement(ctx, userID, uuid.New(), "2026-08-31")
	if err != nil {
		t.Fatalf("course b: %v", err)
	}
	if !a.IsNewSession || !b.IsNewSession {
		t.Error("each course gets its own counter")
	}
}

func TestStatusUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Statuses()

	rec := StatusRecord{
		UserID:     uuid.New(),
		QuestionID: uuid.New(),
		CourseID:   uuid.New(),
		Status:     "active",
	}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rec.Status = "pending_followup"
	rec.SuccessStreak = 0
	rec.FailStreak = 1
	rec.NextReviewSession = 4
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, rec.UserID, rec.QuestionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected status row")
	}
	if got.Status != "pending_followup" {
		t.Errorf("status = %q, want pending_followup", got.Status)
	}
	if got.NextReviewSession != 4 {
		t.Errorf("next review = %d, want 4", got.NextReviewSession)
	}
}

func TestStatusGetMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Statuses().Get(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unseen question")
	}
}

func TestQuestionCachedFetch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Questions()

	chunkID := uuid.New()
	courseID := uuid.New()

	id, err := repo.Create(ctx, QuestionRecord{
		ChunkID:       chunkID,
		CourseID:      courseID,
		UsageCategory: "practice",
		BloomLevel:    "knowledge",
		ConceptTitle:  "Standart maliyet",
		Text:          "Standart maliyet hangi amaçla kullanılır?",
		Options:       []string{"A", "B", "C", "D"},
		Answer:        "A",
		Explanation:   "Planlama ve kontrol.",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cached, err := repo.FetchCached(ctx, chunkID, "practice", "Standart maliyet")
	if err != nil {
		t.Fatalf("fetch cached: %v", err)
	}
	if cached == nil {
		t.Fatal("expected cached question")
	}
	if cached.ID != id {
		t.Errorf("cached id = %s, want %s", cached.ID, id)
	}

	miss, err := repo.FetchCached(ctx, chunkID, "exam", "Standart maliyet")
	if err != nil {
		t.Fatalf("fetch miss: %v", err)
	}
	if miss != nil {
		t.Error("expected nil for uncovered category")
	}
}

func TestSessionCacheExpiry(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Caches()

	userID := uuid.New()
	courseID := uuid.New()

	snap := CachedSession{
		UserID:        userID,
		CourseID:      courseID,
		SessionID:     uuid.NewString(),
		SessionNumber: 3,
		ReviewIndex:   5,
		Queue:         []CachedQueueItem{{QuestionID: uuid.NewString(), Status: "active"}},
		ExpiresAt:     time.Now().Add(24 * time.Hour),
	}
	if err := repo.Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, userID, courseID, time.Now())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.ReviewIndex != 5 {
		t.Fatalf("expected snapshot with index 5, got %+v", got)
	}

	// Past expiry the snapshot is discarded on read.
	got, err = repo.Load(ctx, userID, courseID, time.Now().Add(25*time.Hour))
	if err != nil {
		t.Fatalf("load expired: %v", err)
	}
	if got != nil {
		t.Error("expected expired snapshot to be dropped")
	}
}
