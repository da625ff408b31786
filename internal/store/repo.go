package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/internal/course"
)

// The repository interfaces below are the engine's only view of the
// database. Each call returns explicit result types rather than ent
// entities so the scheduling and generation layers never depend on row
// shapes (or on generated code).

// QuestionRef identifies one question candidate for the review queue.
type QuestionRef struct {
	QuestionID uuid.UUID
	ChunkID    uuid.UUID
	CourseID   uuid.UUID
}

// FailedConcept names a concept the user has failed questions on and
// the chunk those failures happened in.
type FailedConcept struct {
	Title   string
	ChunkID uuid.UUID
}

// QuestionRecord is the full question row at the engine boundary.
type QuestionRecord struct {
	ID               uuid.UUID
	ChunkID          uuid.UUID
	CourseID         uuid.UUID
	UsageCategory    string // practice, archive, exam
	BloomLevel       string // knowledge, application, analysis
	ConceptTitle     string
	ParentQuestionID *uuid.UUID
	Text             string
	Options          []string
	Answer           string
	Explanation      string
}

// StatusRecord is the per-(user, question) shelf row.
type StatusRecord struct {
	UserID            uuid.UUID
	QuestionID        uuid.UUID
	CourseID          uuid.UUID
	Status            string // active, pending_followup, archived
	SuccessStreak     int
	FailStreak        int
	NextReviewSession int
}

// MasteryRecord is the per-(user, chunk) mastery row.
type MasteryRecord struct {
	UserID              uuid.UUID
	ChunkID             uuid.UUID
	CourseID            uuid.UUID
	MasteryScore        int
	LastReviewedSession int
	LastFullReviewAt    *time.Time
}

// ChunkRecord is the chunk row with content, used by the generation
// pipeline and the import command.
type ChunkRecord struct {
	ID              uuid.UUID
	CourseID        uuid.UUID
	Title           string
	Content         string
	Position        int
	WordCount       int
	DensityScore    float64
	ConceptMap      []course.ConceptMapItem
	DifficultyIndex float64
	Quota           course.Quota
	Status          string // pending, processing, completed, failed
}

// ChunkInfo is the lightweight chunk listing used by the queue builder.
type ChunkInfo struct {
	ID       uuid.UUID
	Title    string
	Position int
}

// CounterResult reports the outcome of the daily session-counter call.
type CounterResult struct {
	CurrentSession int
	IsNewSession   bool
}

// AnswerEventData captures one answer submission for the event log.
type AnswerEventData struct {
	UserID        uuid.UUID
	QuestionID    uuid.UUID
	ChunkID       *uuid.UUID // nil when the chunk reference was malformed
	SessionNumber int
	Correct       bool
	Fast          bool
	TimeMs        int
	StatusAfter   string
}

// LLMRequestEventData captures one generation-service call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// CachedSession is the resume snapshot for an interrupted session.
type CachedSession struct {
	UserID        uuid.UUID
	CourseID      uuid.UUID
	SessionID     string
	SessionNumber int
	ReviewIndex   int
	Queue         []CachedQueueItem
	ExpiresAt     time.Time
}

// CachedQueueItem is one serialized review item inside a CachedSession.
type CachedQueueItem struct {
	QuestionID string `json:"question_id"`
	ChunkID    string `json:"chunk_id"`
	CourseID   string `json:"course_id"`
	Tier       int    `json:"tier"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

// QuestionRepo provides the question pools the queue builder draws from
// and the write path for newly generated questions.
type QuestionRepo interface {
	// FetchNewFollowups returns remedial follow-up questions (non-null
	// parent) whose shelf status for the user is not archived, including
	// questions the user has never seen.
	FetchNewFollowups(ctx context.Context, userID, courseID uuid.UUID, limit int) ([]QuestionRef, error)

	// FetchFailedConcepts returns concepts of questions the user has
	// failed at least once, most-failed first, with the chunk the
	// failure happened in.
	FetchFailedConcepts(ctx context.Context, userID, courseID uuid.UUID, limit int) ([]FailedConcept, error)

	// FetchUnseenByConcept returns questions covering the concept from
	// chunks other than excludeChunk that the user has no status row for.
	FetchUnseenByConcept(ctx context.Context, userID, courseID uuid.UUID, conceptTitle string, excludeChunk uuid.UUID, limit int) ([]QuestionRef, error)

	// FetchDue returns questions whose shelf status matches status and
	// whose next review session is at or before maxSession, oldest
	// status update first.
	FetchDue(ctx context.Context, userID, courseID uuid.UUID, status string, maxSession, limit int) ([]QuestionRef, error)

	// FetchStaleArchive returns archived questions belonging to chunks
	// whose last full review is older than cutoff, randomly sampled.
	FetchStaleArchive(ctx context.Context, userID, courseID uuid.UUID, cutoff time.Time, limit int) ([]QuestionRef, error)

	// FetchWaterfallTraining returns active or never-seen practice
	// questions within one chunk.
	FetchWaterfallTraining(ctx context.Context, userID, courseID, chunkID uuid.UUID, limit int) ([]QuestionRef, error)

	// FetchArchiveBackfill returns archived questions ordered by the
	// owning chunk's mastery score ascending.
	FetchArchiveBackfill(ctx context.Context, userID, courseID uuid.UUID, limit int) ([]QuestionRef, error)

	// FetchCached returns an existing question for a chunk+category+
	// concept triple, or nil when none exists.
	FetchCached(ctx context.Context, chunkID uuid.UUID, usageCategory, conceptTitle string) (*QuestionRecord, error)

	// Get returns the full question row.
	Get(ctx context.Context, id uuid.UUID) (*QuestionRecord, error)

	// Create inserts a new immutable question and returns its id.
	Create(ctx context.Context, rec QuestionRecord) (uuid.UUID, error)

	// CountByChunk returns the number of questions in a chunk.
	CountByChunk(ctx context.Context, chunkID uuid.UUID) (int, error)
}

// StatusRepo manages the per-(user, question) shelf rows.
type StatusRepo interface {
	// Get returns the status row, or nil when the user has never
	// answered the question.
	Get(ctx context.Context, userID, questionID uuid.UUID) (*StatusRecord, error)

	// Upsert writes the status row, inserting on first answer.
	Upsert(ctx context.Context, rec StatusRecord) error
}

// MasteryRepo manages the per-(user, chunk) mastery rows.
type MasteryRepo interface {
	Get(ctx context.Context, userID, chunkID uuid.UUID) (*MasteryRecord, error)
	Upsert(ctx context.Context, rec MasteryRecord) error

	// LowestMasteryChunks returns chunk ids for the course ordered by
	// mastery score ascending.
	LowestMasteryChunks(ctx context.Context, userID, courseID uuid.UUID, limit int) ([]uuid.UUID, error)
}

// SessionRepo provides the daily session counter.
type SessionRepo interface {
	// GetOrIncrement returns the current session number, incrementing it
	// when today differs from the stored calendar day. Atomic under
	// concurrent calls for the same user and course.
	GetOrIncrement(ctx context.Context, userID, courseID uuid.UUID, today string) (CounterResult, error)
}

// ChunkRepo manages chunk rows for the generation pipeline.
type ChunkRepo interface {
	GetWithContent(ctx context.Context, id uuid.UUID) (*ChunkRecord, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]ChunkInfo, error)
	Create(ctx context.Context, rec ChunkRecord) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateConceptMapAndQuotas(ctx context.Context, id uuid.UUID, concepts []course.ConceptMapItem, difficultyIndex float64, quota course.Quota) error
}

// EventRepo provides append access to the event log.
type EventRepo interface {
	RecordAnswer(ctx context.Context, data AnswerEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// CountUniqueSolved returns how many distinct questions of the chunk
	// the user has answered correctly at least once.
	CountUniqueSolved(ctx context.Context, userID, chunkID uuid.UUID) (int, error)
}

// CacheRepo manages session resume snapshots.
type CacheRepo interface {
	// Load returns the snapshot for user+course, or nil when absent or
	// expired. Expired entries are discarded on read.
	Load(ctx context.Context, userID, courseID uuid.UUID, now time.Time) (*CachedSession, error)
	Save(ctx context.Context, snap CachedSession) error
	Discard(ctx context.Context, userID, courseID uuid.UUID) error
}
