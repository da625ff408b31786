package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/ent"
	"github.com/astiages123/auditpath/ent/question"
	"github.com/astiages123/auditpath/ent/schema"
)

type questionRepo struct {
	client *ent.Client
	db     *sql.DB
}

// The pool queries join questions against the per-user status table.
// ent has no schema edges between them (statuses reference questions by
// value, not relation), so the joins are raw SQL against the tables ent
// migrates.

func (r *questionRepo) FetchNewFollowups(ctx context.Context, userID, courseID uuid.UUID, limit int) ([]QuestionRef, error) {
	const q = `
		SELECT q.id, q.chunk_id, q.course_id
		FROM questions q
		LEFT JOIN user_question_statuses s
			ON s.question_id = q.id AND s.user_id = ?
		WHERE q.course_id = ?
			AND q.parent_question_id IS NOT NULL
			AND (s.status IS NULL OR s.status <> 'archived')
		ORDER BY q.created_at DESC
		LIMIT ?`
	return r.queryRefs(ctx, q, userID.String(), courseID.String(), limit)
}

func (r *questionRepo) FetchFailedConcepts(ctx context.Context, userID, courseID uuid.UUID, limit int) ([]FailedConcept, error) {
	const q = `
		SELECT q.concept_title, q.chunk_id
		FROM user_question_statuses s
		JOIN questions q ON q.id = s.question_id
		WHERE s.user_id = ? AND s.course_id = ? AND s.fail_streak >= 1
		GROUP BY q.concept_title, q.chunk_id
		ORDER BY SUM(s.fail_streak) DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, userID.String(), courseID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("query failed concepts: %w", err)
	}
	defer rows.Close()

	var concepts []FailedConcept
	for rows.Next() {
		var title, chunk string
		if err := rows.Scan(&title, &chunk); err != nil {
			return nil, fmt.Errorf("scan failed concept: %w", err)
		}
		id, err := uuid.Parse(chunk)
		if err != nil {
			continue
		}
		concepts = append(concepts, FailedConcept{Title: title, ChunkID: id})
	}
	return concepts, rows.Err()
}

func (r *questionRepo) FetchUnseenByConcept(ctx context.Context, userID, courseID uuid.UUID, conceptTitle string, excludeChunk uuid.UUID, limit int) ([]QuestionRef, error) {
	const q = `
		SELECT q.id, q.chunk_id, q.course_id
		FROM questions q
		LEFT JOIN user_question_statuses s
			ON s.question_id = q.id AND s.user_id = ?
		WHERE q.course_id = ?
			AND q.concept_title = ?
			AND q.chunk_id <> ?
			AND s.id IS NULL
		ORDER BY q.created_at ASC
		LIMIT ?`
	return r.queryRefs(ctx, q, userID.String(), courseID.String(), conceptTitle, excludeChunk.String(), limit)
}

func (r *questionRepo) FetchDue(ctx context.Context, userID, courseID uuid.UUID, status string, maxSession, limit int) ([]QuestionRef, error) {
	const q = `
		SELECT q.id, q.chunk_id, q.course_id
		FROM user_question_statuses s
		JOIN questions q ON q.id = s.question_id
		WHERE s.user_id = ? AND s.course_id = ?
			AND s.status = ?
			AND s.next_review_session > 0 AND s.next_review_session <= ?
		ORDER BY s.updated_at ASC
		LIMIT ?`
	return r.queryRefs(ctx, q, userID.String(), courseID.String(), status, maxSession, limit)
}

func (r *questionRepo) FetchStaleArchive(ctx context.Context, userID, courseID uuid.UUID, cutoff time.Time, limit int) ([]QuestionRef, error) {
	const q = `
		SELECT q.id, q.chunk_id, q.course_id
		FROM user_question_statuses s
		JOIN questions q ON q.id = s.question_id
		JOIN chunk_masteries m
			ON m.chunk_id = q.chunk_id AND m.user_id = s.user_id
		WHERE s.user_id = ? AND s.course_id = ?
			AND s.status = 'archived'
			AND m.last_full_review_at IS NOT NULL
			AND m.last_full_review_at < ?
		ORDER BY RANDOM()
		LIMIT ?`
	return r.queryRefs(ctx, q, userID.String(), courseID.String(), cutoff, limit)
}

func (r *questionRepo) FetchWaterfallTraining(ctx context.Context, userID, courseID, chunkID uuid.UUID, limit int) ([]QuestionRef, error) {
	const q = `
		SELECT q.id, q.chunk_id, q.course_id
		FROM questions q
		LEFT JOIN user_question_statuses s
			ON s.question_id = q.id AND s.user_id = ?
		WHERE q.course_id = ? AND q.chunk_id = ?
			AND q.usage_category = 'practice'
			AND (s.id IS NULL OR s.status = 'active')
		ORDER BY (s.id IS NULL) DESC, q.created_at ASC
		LIMIT ?`
	return r.queryRefs(ctx, q, userID.String(), courseID.String(), chunkID.String(), limit)
}

func (r *questionRepo) FetchArchiveBackfill(ctx context.Context, userID, courseID uuid.UUID, limit int) ([]QuestionRef, error) {
	const q = `
		SELECT q.id, q.chunk_id, q.course_id
		FROM user_question_statuses s
		JOIN questions q ON q.id = s.question_id
		LEFT JOIN chunk_masteries m
			ON m.chunk_id = q.chunk_id AND m.user_id = s.user_id
		WHERE s.user_id = ? AND s.course_id = ? AND s.status = 'archived'
		ORDER BY COALESCE(m.mastery_score, 0) ASC, RANDOM()
		LIMIT ?`
	return r.queryRefs(ctx, q, userID.String(), courseID.String(), limit)
}

func (r *questionRepo) queryRefs(ctx context.Context, query string, args ...any) ([]QuestionRef, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query question refs: %w", err)
	}
	defer rows.Close()

	var refs []QuestionRef
	for rows.Next() {
		var qid, cid, crs string
		if err := rows.Scan(&qid, &cid, &crs); err != nil {
			return nil, fmt.Errorf("scan question ref: %w", err)
		}
		ref, err := parseRef(qid, cid, crs)
		if err != nil {
			// Defensive: skip rows with malformed identifiers rather
			// than failing the whole fetch.
			continue
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func parseRef(qid, cid, crs string) (QuestionRef, error) {
	q, err := uuid.Parse(qid)
	if err != nil {
		return QuestionRef{}, err
	}
	c, err := uuid.Parse(cid)
	if err != nil {
		return QuestionRef{}, err
	}
	co, err := uuid.Parse(crs)
	if err != nil {
		return QuestionRef{}, err
	}
	return QuestionRef{QuestionID: q, ChunkID: c, CourseID: co}, nil
}

func (r *questionRepo) FetchCached(ctx context.Context, chunkID uuid.UUID, usageCategory, conceptTitle string) (*QuestionRecord, error) {
	row, err := r.client.Question.Query().
		Where(
			question.ChunkID(chunkID),
			question.UsageCategory(usageCategory),
			question.ConceptTitle(conceptTitle),
			question.ParentQuestionIDIsNil(),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query cached question: %w", err)
	}
	return questionToRecord(row), nil
}

func (r *questionRepo) Get(ctx context.Context, id uuid.UUID) (*QuestionRecord, error) {
	row, err := r.client.Question.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	return questionToRecord(row), nil
}

func (r *questionRepo) Create(ctx context.Context, rec QuestionRecord) (uuid.UUID, error) {
	builder := r.client.Question.Create().
		SetChunkID(rec.ChunkID).
		SetCourseID(rec.CourseID).
		SetUsageCategory(rec.UsageCategory).
		SetBloomLevel(rec.BloomLevel).
		SetConceptTitle(rec.ConceptTitle).
		SetPayload(schema.QuestionPayload{
			Text:        rec.Text,
			Options:     rec.Options,
			Answer:      rec.Answer,
			Explanation: rec.Explanation,
		})

	if rec.ParentQuestionID != nil {
		builder = builder.SetParentQuestionID(*rec.ParentQuestionID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create question: %w", err)
	}
	return row.ID, nil
}

func (r *questionRepo) CountByChunk(ctx context.Context, chunkID uuid.UUID) (int, error) {
	n, err := r.client.Question.Query().
		Where(question.ChunkID(chunkID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count chunk questions: %w", err)
	}
	return n, nil
}

func questionToRecord(row *ent.Question) *QuestionRecord {
	return &QuestionRecord{
		ID:               row.ID,
		ChunkID:          row.ChunkID,
		CourseID:         row.CourseID,
		UsageCategory:    row.UsageCategory,
		BloomLevel:       row.BloomLevel,
		ConceptTitle:     row.ConceptTitle,
		ParentQuestionID: row.ParentQuestionID,
		Text:             row.Payload.Text,
		Options:          row.Payload.Options,
		Answer:           row.Payload.Answer,
		Explanation:      row.Payload.Explanation,
	}
}
