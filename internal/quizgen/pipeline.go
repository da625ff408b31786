// Package quizgen turns course chunks into quiz questions through a
// draft, validate, revise loop with a quality gate in front of every
// write. Failures stay inside the pipeline: a concept that cannot
// produce an approved question is skipped and reported in the summary.
package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/astiages123/auditpath/internal/course"
	"github.com/astiages123/auditpath/internal/llm"
	"github.com/astiages123/auditpath/internal/store"
)

// Chunk generation statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Pipeline orchestrates chunk-level question generation. Transient
// provider errors are retried inside the provider middleware; the
// pipeline only decides what to generate and what to keep.
type Pipeline struct {
	provider  llm.Provider
	questions store.QuestionRepo
	chunks    store.ChunkRepo
	cfg       Config
	log       *zap.Logger
}

// New creates a Pipeline. A nil logger disables logging.
func New(provider llm.Provider, questions store.QuestionRepo, chunks store.ChunkRepo, cfg Config, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		provider:  provider,
		questions: questions,
		chunks:    chunks,
		cfg:       cfg,
		log:       log,
	}
}

// GenerateChunk runs the full pipeline for one chunk: concept mapping
// (cached on the chunk), quota derivation, then one gated question per
// concept and requested category. Approved questions are persisted as
// soon as they pass the gate, so an interrupted run keeps everything
// saved up to that point and can resume from the cache.
func (p *Pipeline) GenerateChunk(ctx context.Context, chunkID uuid.UUID, categories []UsageCategory, onProgress ProgressFunc) (*Summary, error) {
	chunk, err := p.chunks.GetWithContent(ctx, chunkID)
	if err != nil {
		return nil, fmt.Errorf("load chunk: %w", err)
	}
	if chunk == nil {
		return nil, fmt.Errorf("chunk %s not found", chunkID)
	}
	if len(categories) == 0 {
		categories = AllCategories
	}

	if err := p.chunks.UpdateStatus(ctx, chunkID, StatusProcessing); err != nil {
		p.log.Warn("mark chunk processing failed", zap.Error(err))
	}

	summary := &Summary{ChunkID: chunkID}

	concepts, quota, err := p.ensureConceptMap(ctx, chunk)
	if err != nil {
		// Without a concept map nothing can be generated.
		if serr := p.chunks.UpdateStatus(ctx, chunkID, StatusFailed); serr != nil {
			p.log.Warn("mark chunk failed", zap.Error(serr))
		}
		summary.Failures = append(summary.Failures, ConceptFailure{Reason: err.Error()})
		return summary, nil
	}
	summary.Quota = quota

	target := 0
	for _, cat := range categories {
		target += min(quota.ForCategory(string(cat)), len(concepts))
	}

	for _, cat := range categories {
		// Each concept yields at most one question per category, so the
		// effective target is bounded by the concept count.
		count := min(quota.ForCategory(string(cat)), len(concepts))
		for _, concept := range concepts[:count] {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}

			_, fromCache, err := p.generateOne(ctx, chunk, concept, cat)
			if err != nil {
				p.log.Warn("concept generation failed",
					zap.String("chunk", chunkID.String()),
					zap.String("concept", concept.Title),
					zap.String("category", string(cat)),
					zap.Error(err))
				summary.Failures = append(summary.Failures, ConceptFailure{
					Concept:  concept.Title,
					Category: cat,
					Reason:   err.Error(),
				})
				continue
			}

			if fromCache {
				summary.Cached++
			} else {
				summary.Saved++
			}
			if onProgress != nil {
				onProgress(Progress{
					ChunkID:   chunkID,
					Category:  cat,
					Concept:   concept.Title,
					Saved:     summary.Saved,
					Target:    target,
					FromCache: fromCache,
				})
			}
		}
	}

	status := StatusCompleted
	if summary.Saved+summary.Cached == 0 && len(summary.Failures) > 0 {
		status = StatusFailed
	}
	if err := p.chunks.UpdateStatus(ctx, chunkID, status); err != nil {
		p.log.Warn("update chunk status failed", zap.Error(err))
	}
	summary.ChunkDone = status == StatusCompleted

	return summary, nil
}

// ensureConceptMap returns the chunk's concept map and quota, running
// the mapping call once and caching the result on the chunk. The
// "already mapped" check is a read, not a lock: concurrent first runs
// may duplicate the mapping call, and the overwrite is harmless.
func (p *Pipeline) ensureConceptMap(ctx context.Context, chunk *store.ChunkRecord) ([]course.ConceptMapItem, course.Quota, error) {
	if len(chunk.ConceptMap) > 0 {
		quota := chunk.Quota
		if quota.Practice == 0 {
			quota = course.ComputeQuota(len(chunk.ConceptMap))
		}
		return chunk.ConceptMap, quota, nil
	}

	resp, err := p.provider.Generate(llm.WithPurpose(ctx, llm.PurposeConceptMap), llm.Request{
		System:    mappingSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildMappingMessage(chunk)}},
		Schema:    conceptMapSchema,
		MaxTokens: p.cfg.MappingMaxTokens,
	})
	if err != nil {
		return nil, course.Quota{}, fmt.Errorf("concept mapping: %w", err)
	}

	var raw conceptMapOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, course.Quota{}, fmt.Errorf("parse concept map: %w", err)
	}
	if len(raw.Concepts) == 0 {
		return nil, course.Quota{}, fmt.Errorf("concept mapping returned no concepts")
	}

	concepts := make([]course.ConceptMapItem, 0, len(raw.Concepts))
	for _, c := range raw.Concepts {
		if c.Title == "" {
			continue
		}
		concepts = append(concepts, course.ConceptMapItem{
			Title:    c.Title,
			Focus:    c.Focus,
			Level:    course.Level(c.Level),
			ImageRef: c.ImageRef,
		})
	}
	if len(concepts) == 0 {
		return nil, course.Quota{}, fmt.Errorf("concept mapping returned only empty titles")
	}

	quota := course.ComputeQuota(len(concepts))
	difficulty := course.DifficultyIndex(concepts)
	if err := p.chunks.UpdateConceptMapAndQuotas(ctx, chunk.ID, concepts, difficulty, quota); err != nil {
		return nil, course.Quota{}, fmt.Errorf("persist concept map: %w", err)
	}

	chunk.ConceptMap = concepts
	chunk.DifficultyIndex = difficulty
	chunk.Quota = quota
	return concepts, quota, nil
}

// generateOne produces one approved question for a concept+category,
// preferring the cached question when one already exists.
func (p *Pipeline) generateOne(ctx context.Context, chunk *store.ChunkRecord, concept course.ConceptMapItem, category UsageCategory) (uuid.UUID, bool, error) {
	cached, err := p.questions.FetchCached(ctx, chunk.ID, string(category), concept.Title)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("cache lookup: %w", err)
	}
	if cached != nil {
		return cached.ID, true, nil
	}

	draft, err := p.generateGated(ctx, chunk, concept, category)
	if err != nil {
		return uuid.Nil, false, err
	}

	id, err := p.questions.Create(ctx, store.QuestionRecord{
		ChunkID:       chunk.ID,
		CourseID:      chunk.CourseID,
		UsageCategory: string(category),
		BloomLevel:    string(concept.Level),
		ConceptTitle:  concept.Title,
		Text:          draft.QuestionText,
		Options:       draft.Options,
		Answer:        draft.Answer,
		Explanation:   draft.Explanation,
	})
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("persist question: %w", err)
	}
	return id, false, nil
}

// generateGated runs the draft → validate → revise loop for one
// concept. Revisions are serialized: each redraft consumes the prior
// verdict's feedback.
func (p *Pipeline) generateGated(ctx context.Context, chunk *store.ChunkRecord, concept course.ConceptMapItem, category UsageCategory) (*draftOutput, error) {
	draft, err := p.draft(ctx, llm.PurposeDraft, buildDraftMessage(chunk, concept, category))
	if err != nil {
		return nil, fmt.Errorf("draft: %w", err)
	}

	var lastFeedback string
	for revision := 0; ; revision++ {
		feedback := structuralProblem(draft)
		if feedback == "" {
			verdict, err := p.validate(ctx, chunk, concept, draft)
			if err != nil {
				return nil, fmt.Errorf("validate: %w", err)
			}
			if verdict.Verdict == "approve" && verdict.Score >= p.cfg.ApproveScore {
				return draft, nil
			}
			feedback = verdict.Feedback
			if feedback == "" {
				feedback = fmt.Sprintf("rejected with score %d", verdict.Score)
			}
		}
		lastFeedback = feedback

		if revision >= p.cfg.MaxRevisions {
			break
		}

		draft, err = p.draft(ctx, llm.PurposeRevise, buildReviseMessage(chunk, concept, category, *draft, feedback))
		if err != nil {
			return nil, fmt.Errorf("revise: %w", err)
		}
	}

	return nil, fmt.Errorf("rejected after %d revisions: %s", p.cfg.MaxRevisions, lastFeedback)
}

func (p *Pipeline) draft(ctx context.Context, purpose, userMsg string) (*draftOutput, error) {
	resp, err := p.provider.Generate(llm.WithPurpose(ctx, purpose), llm.Request{
		System:      draftSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      questionSchema,
		MaxTokens:   p.cfg.DraftMaxTokens,
		Temperature: p.cfg.DraftTemperature,
	})
	if err != nil {
		return nil, err
	}
	var draft draftOutput
	if err := json.Unmarshal(resp.Content, &draft); err != nil {
		return nil, fmt.Errorf("parse draft: %w", err)
	}
	return &draft, nil
}

func (p *Pipeline) validate(ctx context.Context, chunk *store.ChunkRecord, concept course.ConceptMapItem, draft *draftOutput) (*verdictOutput, error) {
	resp, err := p.provider.Generate(llm.WithPurpose(ctx, llm.PurposeValidate), llm.Request{
		System:    validateSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildValidateMessage(chunk, concept, *draft)}},
		Schema:    verdictSchema,
		MaxTokens: p.cfg.VerdictMaxTokens,
	})
	if err != nil {
		return nil, err
	}
	var verdict verdictOutput
	if err := json.Unmarshal(resp.Content, &verdict); err != nil {
		return nil, fmt.Errorf("parse verdict: %w", err)
	}
	return &verdict, nil
}

// structuralProblem checks draft shape before spending a validation
// call. Returns revision feedback, or "" when the draft is well formed.
func structuralProblem(d *draftOutput) string {
	if d.QuestionText == "" {
		return "question_text is empty"
	}
	if len(d.Options) != 4 {
		return fmt.Sprintf("expected exactly 4 options, got %d", len(d.Options))
	}
	match := false
	for _, opt := range d.Options {
		if opt == d.Answer {
			match = true
			break
		}
	}
	if !match {
		return "answer must match one of the options verbatim"
	}
	if d.Explanation == "" {
		return "explanation is empty"
	}
	return ""
}

// GenerateFollowup produces exactly one remedial question from a
// wrong-answer context, linked to the original via the parent id. The
// review gate is skipped here: the learner is waiting mid-session, and
// a structural check is the only affordable filter.
func (p *Pipeline) GenerateFollowup(ctx context.Context, in FollowupInput) (uuid.UUID, error) {
	original, err := p.questions.Get(ctx, in.QuestionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load question: %w", err)
	}
	if original == nil {
		return uuid.Nil, fmt.Errorf("question %s not found", in.QuestionID)
	}

	resp, err := p.provider.Generate(llm.WithPurpose(ctx, llm.PurposeFollowup), llm.Request{
		System:      followupSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildFollowupMessage(original, in.UserAnswer)}},
		Schema:      questionSchema,
		MaxTokens:   p.cfg.DraftMaxTokens,
		Temperature: p.cfg.DraftTemperature,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("followup draft: %w", err)
	}

	var draft draftOutput
	if err := json.Unmarshal(resp.Content, &draft); err != nil {
		return uuid.Nil, fmt.Errorf("parse followup: %w", err)
	}
	if problem := structuralProblem(&draft); problem != "" {
		return uuid.Nil, fmt.Errorf("followup draft malformed: %s", problem)
	}

	parentID := original.ID
	id, err := p.questions.Create(ctx, store.QuestionRecord{
		ChunkID:          original.ChunkID,
		CourseID:         original.CourseID,
		UsageCategory:    string(CategoryPractice),
		BloomLevel:       original.BloomLevel,
		ConceptTitle:     original.ConceptTitle,
		ParentQuestionID: &parentID,
		Text:             draft.QuestionText,
		Options:          draft.Options,
		Answer:           draft.Answer,
		Explanation:      draft.Explanation,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("persist followup: %w", err)
	}
	return id, nil
}

// GenerateArchiveRefresh produces one fresh archive question for a
// mastered concept so a returning archived item cannot be answered from
// memory. The cache is deliberately bypassed; freshness is the point.
func (p *Pipeline) GenerateArchiveRefresh(ctx context.Context, chunkID uuid.UUID, conceptTitle string) (uuid.UUID, error) {
	chunk, err := p.chunks.GetWithContent(ctx, chunkID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load chunk: %w", err)
	}
	if chunk == nil {
		return uuid.Nil, fmt.Errorf("chunk %s not found", chunkID)
	}

	var concept *course.ConceptMapItem
	for i := range chunk.ConceptMap {
		if chunk.ConceptMap[i].Title == conceptTitle {
			concept = &chunk.ConceptMap[i]
			break
		}
	}
	if concept == nil {
		return uuid.Nil, fmt.Errorf("concept %q not in chunk map", conceptTitle)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeArchiveRefresh)
	draft, err := p.generateGated(ctx, chunk, *concept, CategoryArchive)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := p.questions.Create(ctx, store.QuestionRecord{
		ChunkID:       chunk.ID,
		CourseID:      chunk.CourseID,
		UsageCategory: string(CategoryArchive),
		BloomLevel:    string(concept.Level),
		ConceptTitle:  concept.Title,
		Text:          draft.QuestionText,
		Options:       draft.Options,
		Answer:        draft.Answer,
		Explanation:   draft.Explanation,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("persist refresh question: %w", err)
	}
	return id, nil
}

// Recover resets a chunk stuck in processing (a crashed run) back to
// pending so generation can resume. No-op for other statuses.
func (p *Pipeline) Recover(ctx context.Context, chunkID uuid.UUID) error {
	chunk, err := p.chunks.GetWithContent(ctx, chunkID)
	if err != nil {
		return fmt.Errorf("load chunk: %w", err)
	}
	if chunk == nil || chunk.Status != StatusProcessing {
		return nil
	}
	return p.chunks.UpdateStatus(ctx, chunkID, StatusPending)
}
