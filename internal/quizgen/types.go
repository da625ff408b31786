package quizgen

import (
	"github.com/google/uuid"

	"github.com/astiages123/auditpath/internal/course"
)

// UsageCategory selects which question pool a generated question feeds.
type UsageCategory string

const (
	CategoryPractice UsageCategory = "practice"
	CategoryArchive  UsageCategory = "archive"
	CategoryExam     UsageCategory = "exam"
)

// AllCategories is the default generation order: the practice pool is
// filled first because every other pool is sized from it.
var AllCategories = []UsageCategory{CategoryPractice, CategoryArchive, CategoryExam}

// draftOutput is the raw LLM draft before the quality gate.
type draftOutput struct {
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	Answer       string   `json:"answer"`
	Explanation  string   `json:"explanation"`
}

// verdictOutput is the raw LLM validation verdict.
type verdictOutput struct {
	Score    int    `json:"score"`
	Verdict  string `json:"verdict"` // "approve" or "reject"
	Feedback string `json:"feedback"`
}

// conceptMapOutput is the raw LLM concept-mapping response.
type conceptMapOutput struct {
	Concepts []conceptOutput `json:"concepts"`
}

type conceptOutput struct {
	Title    string `json:"title"`
	Focus    string `json:"focus"`
	Level    string `json:"level"`
	ImageRef string `json:"image_ref"`
}

// Progress is reported to the caller after every persisted question.
type Progress struct {
	ChunkID   uuid.UUID
	Category  UsageCategory
	Concept   string
	Saved     int // questions persisted so far in this run
	Target    int // total quota across requested categories
	FromCache bool
}

// ProgressFunc receives incremental pipeline progress. May be nil.
type ProgressFunc func(Progress)

// ConceptFailure records one concept that could not produce an
// approved question. Failures are collected, never propagated.
type ConceptFailure struct {
	Concept  string
	Category UsageCategory
	Reason   string
}

// Summary is the final report of one chunk generation run.
type Summary struct {
	ChunkID   uuid.UUID
	Saved     int
	Cached    int
	Failures  []ConceptFailure
	Quota     course.Quota
	ChunkDone bool // chunk reached completed status
}

// FollowupInput carries the wrong-answer context a remedial question is
// generated from.
type FollowupInput struct {
	UserID     uuid.UUID
	QuestionID uuid.UUID
	UserAnswer string
}
