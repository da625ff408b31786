package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/ent"
	"github.com/astiages123/auditpath/ent/answerevent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) RecordAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetSessionNumber(data.SessionNumber).
		SetCorrect(data.Correct).
		SetFast(data.Fast).
		SetTimeMs(data.TimeMs).
		SetStatusAfter(data.StatusAfter)

	if data.ChunkID != nil {
		builder = builder.SetChunkID(*data.ChunkID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) CountUniqueSolved(ctx context.Context, userID, chunkID uuid.UUID) (int, error) {
	ids, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.UserID(userID),
			answerevent.ChunkID(chunkID),
			answerevent.Correct(true),
		).
		Select(answerevent.FieldQuestionID).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unique solved: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, row := range ids {
		seen[row.QuestionID] = struct{}{}
	}
	return len(seen), nil
}
