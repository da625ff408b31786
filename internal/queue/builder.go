// Package queue assembles the per-session review queue: a bounded,
// priority-ordered list of question references blended from several
// pools under a waterfall: fix mistakes first, then review what is due,
// then learn new material, then lightly re-touch mastered material.
package queue

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/astiages123/auditpath/internal/shelf"
	"github.com/astiages123/auditpath/internal/store"
)

// Per-tier caps. Each tier only fills the slots the tiers above left
// empty, so these are ceilings, not guarantees.
const (
	remedialCap = 5
	prereqCap   = 5
	pendingCap  = 10
	agingCap    = 5

	// trainingShare bounds how much of the queue new material may take.
	trainingShare = 0.7

	// staleChunkAge is the fallback window for archive aging: chunks not
	// fully reviewed for this long contribute archived items even when
	// nothing is session-due.
	staleChunkAge = 7 * 24 * time.Hour

	// lowMasteryChunks is how many weak chunks the training tier walks.
	lowMasteryChunks = 8
)

// Builder assembles review queues from the question pools.
type Builder struct {
	questions store.QuestionRepo
	masteries store.MasteryRepo
	chunks    store.ChunkRepo
	log       *zap.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewBuilder creates a queue builder.
func NewBuilder(questions store.QuestionRepo, masteries store.MasteryRepo, chunks store.ChunkRepo, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		questions: questions,
		masteries: masteries,
		chunks:    chunks,
		log:       log,
		now:       time.Now,
	}
}

// BuildInput identifies the session a queue is built for.
type BuildInput struct {
	UserID        uuid.UUID
	CourseID      uuid.UUID
	SessionNumber int
	TargetSize    int
	// FrontierChunkID is the learner's current position; uuid.Nil when
	// unknown. The training tier prefers it before weak chunks.
	FrontierChunkID uuid.UUID
}

// Build assembles one session's queue. The result never exceeds
// TargetSize and never repeats a question id. Fetch errors inside a
// tier skip that tier rather than failing the queue; only an empty
// input is an error condition handled by returning an empty queue.
func (b *Builder) Build(ctx context.Context, in BuildInput) ([]Item, error) {
	if in.TargetSize <= 0 {
		return nil, nil
	}

	acc := &accumulator{
		target: in.TargetSize,
		seen:   make(map[uuid.UUID]struct{}),
	}

	b.fillRemedial(ctx, in, acc)
	b.fillPending(ctx, in, acc)
	b.fillAging(ctx, in, acc)
	b.fillTraining(ctx, in, acc)
	b.fillBackfill(ctx, in, acc)

	b.log.Debug("review queue built",
		zap.Int("session", in.SessionNumber),
		zap.Int("target", in.TargetSize),
		zap.Int("size", len(acc.items)),
	)
	return acc.items, nil
}

// fillRemedial is tier 0: unarchived follow-up questions, then unseen
// questions covering recently failed concepts from other chunks.
func (b *Builder) fillRemedial(ctx context.Context, in BuildInput, acc *accumulator) {
	if acc.full() {
		return
	}

	followups, err := b.questions.FetchNewFollowups(ctx, in.UserID, in.CourseID, remedialCap)
	if err != nil {
		b.log.Warn("fetch followups failed", zap.Error(err))
	} else {
		acc.add(followups, remedialCap, TierRemedial, shelf.StatusActive, "remedial-followup")
	}

	if acc.full() {
		return
	}

	failed, err := b.questions.FetchFailedConcepts(ctx, in.UserID, in.CourseID, prereqCap)
	if err != nil {
		b.log.Warn("fetch failed concepts failed", zap.Error(err))
		return
	}

	taken := 0
	for _, fc := range failed {
		if taken >= prereqCap || acc.full() {
			return
		}
		refs, err := b.questions.FetchUnseenByConcept(ctx, in.UserID, in.CourseID, fc.Title, fc.ChunkID, prereqCap-taken)
		if err != nil {
			b.log.Warn("fetch prerequisite questions failed",
				zap.String("concept", fc.Title), zap.Error(err))
			continue
		}
		taken += acc.add(refs, prereqCap-taken, TierRemedial, shelf.StatusActive, "prerequisite")
	}
}

// fillPending is tier 1: failed items whose review session has come
// due, oldest status update first.
func (b *Builder) fillPending(ctx context.Context, in BuildInput, acc *accumulator) {
	if acc.full() {
		return
	}

	due, err := b.questions.FetchDue(ctx, in.UserID, in.CourseID, string(shelf.StatusPendingFollowup), in.SessionNumber, pendingCap)
	if err != nil {
		b.log.Warn("fetch pending reviews failed", zap.Error(err))
		return
	}
	acc.add(due, pendingCap, TierPending, shelf.StatusPendingFollowup, "due-review")
}

// fillAging is tier 1.5: session-due archived items, padded with a
// random sample from chunks that have not seen a full review lately.
func (b *Builder) fillAging(ctx context.Context, in BuildInput, acc *accumulator) {
	if acc.full() {
		return
	}

	taken := 0
	due, err := b.questions.FetchDue(ctx, in.UserID, in.CourseID, string(shelf.StatusArchived), in.SessionNumber, agingCap)
	if err != nil {
		b.log.Warn("fetch due archive failed", zap.Error(err))
	} else {
		taken = acc.add(due, agingCap, TierAging, shelf.StatusArchived, "aging-archive")
	}

	if taken >= agingCap || acc.full() {
		return
	}

	cutoff := b.now().Add(-staleChunkAge)
	stale, err := b.questions.FetchStaleArchive(ctx, in.UserID, in.CourseID, cutoff, agingCap-taken)
	if err != nil {
		b.log.Warn("fetch stale archive failed", zap.Error(err))
		return
	}
	acc.add(stale, agingCap-taken, TierAging, shelf.StatusArchived, "stale-chunk")
}

// fillTraining is tier 2: active and never-seen questions, walking the
// frontier chunk first and then the weakest chunks breadth-first.
func (b *Builder) fillTraining(ctx context.Context, in BuildInput, acc *accumulator) {
	if acc.full() {
		return
	}

	budget := int(math.Ceil(float64(in.TargetSize) * trainingShare))
	if remaining := acc.target - len(acc.items); budget > remaining {
		budget = remaining
	}
	if budget <= 0 {
		return
	}

	order := b.trainingChunkOrder(ctx, in)
	if len(order) == 0 {
		return
	}

	// Fetch candidates per chunk, then interleave round-robin so thin
	// chunks don't starve the rest of the course.
	pools := make([][]store.QuestionRef, 0, len(order))
	for _, chunkID := range order {
		refs, err := b.questions.FetchWaterfallTraining(ctx, in.UserID, in.CourseID, chunkID, budget)
		if err != nil {
			b.log.Warn("fetch training questions failed",
				zap.String("chunk", chunkID.String()), zap.Error(err))
			continue
		}
		if len(refs) > 0 {
			pools = append(pools, refs)
		}
	}

	taken := 0
	for round := 0; taken < budget && !acc.full(); round++ {
		progressed := false
		for i, pool := range pools {
			if round >= len(pool) {
				continue
			}
			progressed = true
			reason := "low-mastery"
			if i == 0 && in.FrontierChunkID != uuid.Nil {
				reason = "frontier"
			}
			taken += acc.add([]store.QuestionRef{pool[round]}, budget-taken, TierTraining, shelf.StatusActive, reason)
			if taken >= budget || acc.full() {
				return
			}
		}
		if !progressed {
			return
		}
	}
}

// trainingChunkOrder returns the chunk walk order: the frontier chunk,
// then lowest-mastery chunks, then course order for anything untouched.
func (b *Builder) trainingChunkOrder(ctx context.Context, in BuildInput) []uuid.UUID {
	var order []uuid.UUID
	seen := make(map[uuid.UUID]struct{})

	push := func(id uuid.UUID) {
		if id == uuid.Nil {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		order = append(order, id)
	}

	push(in.FrontierChunkID)

	weak, err := b.masteries.LowestMasteryChunks(ctx, in.UserID, in.CourseID, lowMasteryChunks)
	if err != nil {
		b.log.Warn("fetch weak chunks failed", zap.Error(err))
	}
	for _, id := range weak {
		push(id)
	}

	// Untouched chunks have no mastery row yet; course order covers them.
	infos, err := b.chunks.ListByCourse(ctx, in.CourseID)
	if err != nil {
		b.log.Warn("list course chunks failed", zap.Error(err))
	}
	for _, info := range infos {
		push(info.ID)
	}

	return order
}

// fillBackfill is tier 3: remaining slots from the archive, weakest
// chunks first.
func (b *Builder) fillBackfill(ctx context.Context, in BuildInput, acc *accumulator) {
	if acc.full() {
		return
	}

	remaining := acc.target - len(acc.items)
	refs, err := b.questions.FetchArchiveBackfill(ctx, in.UserID, in.CourseID, remaining)
	if err != nil {
		b.log.Warn("fetch archive backfill failed", zap.Error(err))
		return
	}
	acc.add(refs, remaining, TierBackfill, shelf.StatusArchived, "backfill")
}

// accumulator enforces the queue bound and question-id dedup across
// tiers.
type accumulator struct {
	target int
	items  []Item
	seen   map[uuid.UUID]struct{}
}

func (a *accumulator) full() bool {
	return len(a.items) >= a.target
}

// add appends up to limit deduplicated refs and returns how many landed.
func (a *accumulator) add(refs []store.QuestionRef, limit int, tier Tier, status shelf.Status, reason string) int {
	added := 0
	for _, ref := range refs {
		if added >= limit || a.full() {
			break
		}
		if _, dup := a.seen[ref.QuestionID]; dup {
			continue
		}
		a.seen[ref.QuestionID] = struct{}{}
		a.items = append(a.items, Item{
			QuestionID: ref.QuestionID,
			ChunkID:    ref.ChunkID,
			CourseID:   ref.CourseID,
			Tier:       tier,
			Status:     status,
			Reason:     reason,
		})
		added++
	}
	return added
}
