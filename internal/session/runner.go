package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/astiages123/auditpath/internal/course"
	"github.com/astiages123/auditpath/internal/mastery"
	"github.com/astiages123/auditpath/internal/queue"
	"github.com/astiages123/auditpath/internal/quizgen"
	"github.com/astiages123/auditpath/internal/shelf"
	"github.com/astiages123/auditpath/internal/store"
)

// cacheTTL is how long an interrupted session stays resumable.
const cacheTTL = 24 * time.Hour

// Deps bundles everything the Runner talks to. Pipeline may be nil,
// which disables mid-session scaffolding generation.
type Deps struct {
	Sessions  store.SessionRepo
	Statuses  store.StatusRepo
	Masteries store.MasteryRepo
	Events    store.EventRepo
	Questions store.QuestionRepo
	Chunks    store.ChunkRepo
	Caches    store.CacheRepo
	Builder   *queue.Builder
	Pipeline  *quizgen.Pipeline
	Log       *zap.Logger
}

// Runner owns the side effects around the pure reducer: it loads the
// session, persists answers, keeps the resume cache current, and feeds
// resulting actions back into the state.
type Runner struct {
	userID   uuid.UUID
	courseID uuid.UUID
	deps     Deps
	log      *zap.Logger
	now      func() time.Time

	state  State
	chunks map[uuid.UUID]*store.ChunkRecord
}

// NewRunner creates a Runner in the idle phase.
func NewRunner(userID, courseID uuid.UUID, deps Deps) *Runner {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		userID:   userID,
		courseID: courseID,
		deps:     deps,
		log:      log,
		now:      time.Now,
		chunks:   make(map[uuid.UUID]*store.ChunkRecord),
	}
}

// State returns the current session snapshot.
func (r *Runner) State() State {
	return r.state
}

func (r *Runner) dispatch(a Action) {
	r.state = Reduce(r.state, a)
}

// AnswerOutcome reports the persisted result of one submission.
type AnswerOutcome struct {
	Correct      bool
	Fast         bool
	Status       shelf.Status
	Archived     bool
	MasteryScore int
	Explanation  string
	Answer       string
}

// Initialize loads the daily counter, restores a cached session when
// its session number still matches, and otherwise builds a fresh
// review queue. Failures land the machine in the error phase; calling
// Initialize again is the retry path.
func (r *Runner) Initialize(ctx context.Context, targetSize int, frontierChunk uuid.UUID) error {
	r.dispatch(Initialize{})

	today := r.now().UTC().Format("2006-01-02")
	counter, err := r.deps.Sessions.GetOrIncrement(ctx, r.userID, r.courseID, today)
	if err != nil {
		r.dispatch(Fail{Message: "session counter: " + err.Error()})
		return err
	}

	if snap, err := r.deps.Caches.Load(ctx, r.userID, r.courseID, r.now()); err != nil {
		r.log.Warn("load session cache failed", zap.Error(err))
	} else if snap != nil {
		if snap.SessionNumber == counter.CurrentSession {
			r.dispatch(Initialized{
				SessionID:     snap.SessionID,
				SessionNumber: counter.CurrentSession,
				NewSession:    counter.IsNewSession,
				Resumed:       true,
				Queue:         restoreQueue(snap.Queue, r.log),
				Cursor:        snap.ReviewIndex,
			})
			return nil
		}
		// A snapshot from an earlier session is stale, not resumable.
		if err := r.deps.Caches.Discard(ctx, r.userID, r.courseID); err != nil {
			r.log.Warn("discard stale session cache failed", zap.Error(err))
		}
	}

	items, err := r.deps.Builder.Build(ctx, queue.BuildInput{
		UserID:          r.userID,
		CourseID:        r.courseID,
		SessionNumber:   counter.CurrentSession,
		TargetSize:      targetSize,
		FrontierChunkID: frontierChunk,
	})
	if err != nil {
		r.dispatch(Fail{Message: "build queue: " + err.Error()})
		return err
	}

	r.dispatch(Initialized{
		SessionID:     uuid.NewString(),
		SessionNumber: counter.CurrentSession,
		NewSession:    counter.IsNewSession,
		Queue:         items,
	})
	r.saveCache(ctx)
	return nil
}

// Begin starts playing from the ready phase.
func (r *Runner) Begin() {
	r.dispatch(BeginPlay{})
}

// CurrentQuestion loads the full question under the cursor.
func (r *Runner) CurrentQuestion(ctx context.Context) (*store.QuestionRecord, error) {
	item, ok := r.state.Current()
	if !ok {
		return nil, nil
	}
	return r.deps.Questions.Get(ctx, item.QuestionID)
}

// SubmitAnswer grades one answer, applies the optimistic totals, and
// then persists: shelf transition, mastery rescore, answer event, and
// the resume snapshot. Persistence failures degrade to warnings so one
// broken write never takes down the sibling writes or the session.
func (r *Runner) SubmitAnswer(ctx context.Context, answer string, elapsed time.Duration) (*AnswerOutcome, error) {
	item, ok := r.state.Current()
	if !ok {
		return nil, nil
	}

	q, err := r.deps.Questions.Get(ctx, item.QuestionID)
	if err != nil {
		r.dispatch(Fail{Message: "load question: " + err.Error()})
		return nil, err
	}
	if q == nil {
		r.dispatch(Fail{Message: "question " + item.QuestionID.String() + " missing"})
		return nil, nil
	}

	correct := strings.TrimSpace(answer) == q.Answer
	fast := shelf.IsFast(elapsed, r.solveBudget(ctx, q))

	// Optimistic: totals move before any write resolves.
	r.dispatch(AnswerSubmitted{Correct: correct, Fast: fast})

	prior, err := r.deps.Statuses.Get(ctx, r.userID, item.QuestionID)
	if err != nil {
		r.log.Warn("load question status failed", zap.Error(err))
	}

	in := shelf.TransitionInput{
		Correct:       correct,
		Fast:          fast,
		SessionNumber: r.state.SessionNumber,
	}
	if prior != nil {
		in.Status = shelf.Status(prior.Status)
		in.SuccessStreak = prior.SuccessStreak
		in.FailStreak = prior.FailStreak
	}
	res := shelf.Transition(in)

	if err := r.deps.Statuses.Upsert(ctx, store.StatusRecord{
		UserID:            r.userID,
		QuestionID:        item.QuestionID,
		CourseID:          q.CourseID,
		Status:            string(res.Status),
		SuccessStreak:     res.SuccessStreak,
		FailStreak:        res.FailStreak,
		NextReviewSession: res.NextReviewSession,
	}); err != nil {
		r.log.Warn("persist question status failed", zap.Error(err))
	}

	chunkID := q.ChunkID
	if err := r.deps.Events.RecordAnswer(ctx, store.AnswerEventData{
		UserID:        r.userID,
		QuestionID:    item.QuestionID,
		ChunkID:       &chunkID,
		SessionNumber: r.state.SessionNumber,
		Correct:       correct,
		Fast:          fast,
		TimeMs:        int(elapsed.Milliseconds()),
		StatusAfter:   string(res.Status),
	}); err != nil {
		r.log.Warn("record answer event failed", zap.Error(err))
	}

	score := r.rescoreMastery(ctx, q, correct, prior != nil)

	outcome := &AnswerOutcome{
		Correct:      correct,
		Fast:         fast,
		Status:       res.Status,
		Archived:     res.Archived,
		MasteryScore: score,
		Explanation:  q.Explanation,
		Answer:       q.Answer,
	}

	if !correct {
		r.injectScaffolding(ctx, q, answer)
	}

	r.saveCache(ctx)
	return outcome, nil
}

// Next advances past the current question. The resume cache follows the
// cursor; a finished session clears it.
func (r *Runner) Next(ctx context.Context) {
	r.dispatch(NextQuestion{})
	if r.state.Phase == PhaseFinished {
		if err := r.deps.Caches.Discard(ctx, r.userID, r.courseID); err != nil {
			r.log.Warn("discard session cache failed", zap.Error(err))
		}
		return
	}
	r.saveCache(ctx)
}

// ResumeBatch leaves an intermission.
func (r *Runner) ResumeBatch() {
	r.dispatch(ResumePlay{})
}

// Abandon drops the resume snapshot, e.g. when the user quits for good.
func (r *Runner) Abandon(ctx context.Context) {
	if err := r.deps.Caches.Discard(ctx, r.userID, r.courseID); err != nil {
		r.log.Warn("discard session cache failed", zap.Error(err))
	}
}

// solveBudget derives the fast/slow threshold for a question from its
// text length, the owning chunk's density, and the Bloom level.
func (r *Runner) solveBudget(ctx context.Context, q *store.QuestionRecord) time.Duration {
	density := 0.0
	if chunk := r.chunkFor(ctx, q.ChunkID); chunk != nil {
		density = chunk.DensityScore
	}
	words := len(strings.Fields(q.Text))
	return shelf.MaxSolveTime(words, density, course.Level(q.BloomLevel), q.UsageCategory == string(quizgen.CategoryExam))
}

// rescoreMastery recomputes the chunk mastery row after an answer.
// Returns the new score, or the previous one when a read fails.
func (r *Runner) rescoreMastery(ctx context.Context, q *store.QuestionRecord, correct, repeated bool) int {
	prev, err := r.deps.Masteries.Get(ctx, r.userID, q.ChunkID)
	if err != nil {
		r.log.Warn("load chunk mastery failed", zap.Error(err))
		return 0
	}

	prevScore := 0
	var lastFull *time.Time
	if prev != nil {
		prevScore = prev.MasteryScore
		lastFull = prev.LastFullReviewAt
	}

	unique, err := r.deps.Events.CountUniqueSolved(ctx, r.userID, q.ChunkID)
	if err != nil {
		r.log.Warn("count solved questions failed", zap.Error(err))
		return prevScore
	}
	total, err := r.deps.Questions.CountByChunk(ctx, q.ChunkID)
	if err != nil {
		r.log.Warn("count chunk questions failed", zap.Error(err))
		return prevScore
	}

	score := mastery.Score(mastery.ScoreInput{
		UniqueSolved:    unique,
		TotalQuestions:  total,
		Correct:         correct,
		PreviousScore:   prevScore,
		RepeatedAttempt: repeated,
	})

	coverage := mastery.CoverageRatio(unique, total)
	if mastery.ShouldMarkFullReview(coverage, lastFull, r.now()) {
		now := r.now()
		lastFull = &now
	}

	if err := r.deps.Masteries.Upsert(ctx, store.MasteryRecord{
		UserID:              r.userID,
		ChunkID:             q.ChunkID,
		CourseID:            q.CourseID,
		MasteryScore:        score,
		LastReviewedSession: r.state.SessionNumber,
		LastFullReviewAt:    lastFull,
	}); err != nil {
		r.log.Warn("persist chunk mastery failed", zap.Error(err))
	}
	return score
}

// injectScaffolding generates one remedial question from the wrong
// answer and splices it in right after the cursor. Best-effort: a
// generation failure leaves the session untouched.
func (r *Runner) injectScaffolding(ctx context.Context, q *store.QuestionRecord, userAnswer string) {
	if r.deps.Pipeline == nil {
		return
	}

	id, err := r.deps.Pipeline.GenerateFollowup(ctx, quizgen.FollowupInput{
		UserID:     r.userID,
		QuestionID: q.ID,
		UserAnswer: userAnswer,
	})
	if err != nil {
		r.log.Warn("scaffolding generation failed",
			zap.String("question", q.ID.String()), zap.Error(err))
		return
	}

	r.dispatch(InjectScaffolding{Item: queue.Item{
		QuestionID: id,
		ChunkID:    q.ChunkID,
		CourseID:   q.CourseID,
		Tier:       queue.TierRemedial,
		Status:     shelf.StatusActive,
		Reason:     "scaffolding",
	}})
}

func (r *Runner) chunkFor(ctx context.Context, id uuid.UUID) *store.ChunkRecord {
	if chunk, ok := r.chunks[id]; ok {
		return chunk
	}
	chunk, err := r.deps.Chunks.GetWithContent(ctx, id)
	if err != nil {
		r.log.Warn("load chunk failed", zap.Error(err))
		return nil
	}
	r.chunks[id] = chunk
	return chunk
}

// saveCache writes the resume snapshot for the current state.
func (r *Runner) saveCache(ctx context.Context) {
	if r.state.Phase == PhaseFinished || r.state.Phase == PhaseError {
		return
	}
	snap := store.CachedSession{
		UserID:        r.userID,
		CourseID:      r.courseID,
		SessionID:     r.state.SessionID,
		SessionNumber: r.state.SessionNumber,
		ReviewIndex:   r.state.Cursor,
		Queue:         snapshotQueue(r.state.Queue),
		ExpiresAt:     r.now().Add(cacheTTL),
	}
	if err := r.deps.Caches.Save(ctx, snap); err != nil {
		r.log.Warn("save session cache failed", zap.Error(err))
	}
}

func snapshotQueue(items []queue.Item) []store.CachedQueueItem {
	out := make([]store.CachedQueueItem, len(items))
	for i, it := range items {
		out[i] = store.CachedQueueItem{
			QuestionID: it.QuestionID.String(),
			ChunkID:    it.ChunkID.String(),
			CourseID:   it.CourseID.String(),
			Tier:       int(it.Tier),
			Status:     string(it.Status),
			Reason:     it.Reason,
		}
	}
	return out
}

// restoreQueue parses a cached snapshot back into queue items. Entries
// with malformed ids are dropped rather than failing the resume.
func restoreQueue(items []store.CachedQueueItem, log *zap.Logger) []queue.Item {
	out := make([]queue.Item, 0, len(items))
	for _, it := range items {
		qid, err := uuid.Parse(it.QuestionID)
		if err != nil {
			log.Warn("cached item has malformed question id", zap.String("id", it.QuestionID))
			continue
		}
		cid, err := uuid.Parse(it.ChunkID)
		if err != nil {
			log.Warn("cached item has malformed chunk id", zap.String("id", it.ChunkID))
			continue
		}
		crsID, err := uuid.Parse(it.CourseID)
		if err != nil {
			log.Warn("cached item has malformed course id", zap.String("id", it.CourseID))
			continue
		}
		out = append(out, queue.Item{
			QuestionID: qid,
			ChunkID:    cid,
			CourseID:   crsID,
			Tier:       queue.Tier(it.Tier),
			Status:     shelf.Status(it.Status),
			Reason:     it.Reason,
		})
	}
	return out
}
