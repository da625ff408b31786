package queue

import (
	"github.com/google/uuid"

	"github.com/astiages123/auditpath/internal/shelf"
)

// Tier is the waterfall priority an item entered the queue under.
// Lower values drain first.
type Tier int

const (
	// TierRemedial covers follow-up questions and prerequisite
	// scaffolding for recent failures.
	TierRemedial Tier = iota
	// TierPending covers failed items whose review session has come due.
	TierPending
	// TierAging covers archived items due for a re-touch.
	TierAging
	// TierTraining covers active and never-seen questions.
	TierTraining
	// TierBackfill tops the queue up from the archive.
	TierBackfill
)

// Item is one scheduled question reference. Transient: the queue is
// rebuilt every session and never persisted beyond the resume cache.
type Item struct {
	QuestionID uuid.UUID
	ChunkID    uuid.UUID
	CourseID   uuid.UUID
	Tier       Tier
	Status     shelf.Status
	Reason     string
}
