package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/ent"
	"github.com/astiages123/auditpath/ent/answerevent"
	"github.com/astiages123/auditpath/ent/chunk"
	"github.com/astiages123/auditpath/ent/chunkmastery"
	"github.com/astiages123/auditpath/ent/llmrequestevent"
	"github.com/astiages123/auditpath/ent/sessioncache"
	"github.com/astiages123/auditpath/ent/sessioncounter"
	"github.com/astiages123/auditpath/ent/userquestionstatus"
)

// Read-side queries for the CLI. These live on Store rather than on the
// repo interfaces because only the commands use them; the engine never
// reads aggregates.

// LLMEventRecord is one generation-service call as shown by the CLI.
type LLMEventRecord struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageRow aggregates calls and tokens for one purpose label.
type LLMUsageRow struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// MasteryOverviewRow joins a chunk with the user's mastery of it.
type MasteryOverviewRow struct {
	ChunkID             uuid.UUID
	Title               string
	Position            int
	Status              string
	MasteryScore        int
	LastReviewedSession int
	QuestionCount       int
}

// AnswerTotals summarizes the user's answer history for a course.
type AnswerTotals struct {
	Answered int
	Correct  int
	Fast     int
}

// ListLLMRequests returns the most recent generation-service calls,
// newest first.
func (s *Store) ListLLMRequests(ctx context.Context, limit int) ([]LLMEventRecord, error) {
	rows, err := s.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list llm events: %w", err)
	}

	out := make([]LLMEventRecord, len(rows))
	for i, row := range rows {
		out[i] = LLMEventRecord{
			Sequence:     row.Sequence,
			Timestamp:    row.Timestamp,
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
		}
	}
	return out, nil
}

// LLMUsageByPurpose aggregates token usage per purpose label. The event
// table is small for a single-user database, so the rollup happens in Go.
func (s *Store) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageRow, error) {
	rows, err := s.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldPurpose)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageRow)
	latency := make(map[string]int64)
	var order []string
	for _, row := range rows {
		agg, ok := byPurpose[row.Purpose]
		if !ok {
			agg = &LLMUsageRow{Purpose: row.Purpose}
			byPurpose[row.Purpose] = agg
			order = append(order, row.Purpose)
		}
		agg.Calls++
		agg.InputTokens += row.InputTokens
		agg.OutputTokens += row.OutputTokens
		latency[row.Purpose] += row.LatencyMs
	}

	out := make([]LLMUsageRow, 0, len(order))
	for _, p := range order {
		agg := byPurpose[p]
		if agg.Calls > 0 {
			agg.AvgLatencyMs = latency[p] / int64(agg.Calls)
		}
		out = append(out, *agg)
	}
	return out, nil
}

// MasteryOverview returns every chunk of the course in reading order
// with the user's mastery score and the generated question count.
func (s *Store) MasteryOverview(ctx context.Context, userID, courseID uuid.UUID) ([]MasteryOverviewRow, error) {
	chunks, err := s.client.Chunk.Query().
		Where(chunk.CourseID(courseID)).
		Order(ent.Asc(chunk.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}

	masteries, err := s.client.ChunkMastery.Query().
		Where(
			chunkmastery.UserID(userID),
			chunkmastery.CourseID(courseID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query masteries: %w", err)
	}
	byChunk := make(map[uuid.UUID]*ent.ChunkMastery, len(masteries))
	for _, m := range masteries {
		byChunk[m.ChunkID] = m
	}

	out := make([]MasteryOverviewRow, 0, len(chunks))
	for _, c := range chunks {
		row := MasteryOverviewRow{
			ChunkID:  c.ID,
			Title:    c.Title,
			Position: c.Position,
			Status:   c.GenerationStatus,
		}
		if m, ok := byChunk[c.ID]; ok {
			row.MasteryScore = m.MasteryScore
			row.LastReviewedSession = m.LastReviewedSession
		}
		n, err := s.Questions().CountByChunk(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		row.QuestionCount = n
		out = append(out, row)
	}
	return out, nil
}

// CountStatuses returns how many of the user's questions sit on each
// shelf for the course.
func (s *Store) CountStatuses(ctx context.Context, userID, courseID uuid.UUID) (map[string]int, error) {
	rows, err := s.client.UserQuestionStatus.Query().
		Where(
			userquestionstatus.UserID(userID),
			userquestionstatus.CourseID(courseID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query statuses: %w", err)
	}

	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Status]++
	}
	return counts, nil
}

// AnswerHistory returns the user's lifetime answer totals for a course.
func (s *Store) AnswerHistory(ctx context.Context, userID, courseID uuid.UUID) (AnswerTotals, error) {
	// Answer events carry chunk ids, not course ids; resolve via the
	// course's chunk set.
	chunkIDs, err := s.client.Chunk.Query().
		Where(chunk.CourseID(courseID)).
		IDs(ctx)
	if err != nil {
		return AnswerTotals{}, fmt.Errorf("query course chunks: %w", err)
	}
	if len(chunkIDs) == 0 {
		return AnswerTotals{}, nil
	}

	rows, err := s.client.AnswerEvent.Query().
		Where(
			answerevent.UserID(userID),
			answerevent.ChunkIDIn(chunkIDs...),
		).
		All(ctx)
	if err != nil {
		return AnswerTotals{}, fmt.Errorf("query answer events: %w", err)
	}

	var t AnswerTotals
	for _, row := range rows {
		t.Answered++
		if row.Correct {
			t.Correct++
		}
		if row.Fast {
			t.Fast++
		}
	}
	return t, nil
}

// ResetUserData deletes every row that tracks the user's progress:
// shelf statuses, mastery scores, session counters, resume caches, and
// answer events. Chunks and generated questions are kept.
func (s *Store) ResetUserData(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.client.UserQuestionStatus.Delete().
		Where(userquestionstatus.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete question statuses: %w", err)
	}
	if _, err := s.client.ChunkMastery.Delete().
		Where(chunkmastery.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete chunk masteries: %w", err)
	}
	if _, err := s.client.SessionCounter.Delete().
		Where(sessioncounter.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete session counters: %w", err)
	}
	if _, err := s.client.SessionCache.Delete().
		Where(sessioncache.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete session caches: %w", err)
	}
	if _, err := s.client.AnswerEvent.Delete().
		Where(answerevent.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete answer events: %w", err)
	}
	return nil
}
