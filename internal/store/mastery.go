package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/ent"
	"github.com/astiages123/auditpath/ent/chunkmastery"
)

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, userID, chunkID uuid.UUID) (*MasteryRecord, error) {
	row, err := r.client.ChunkMastery.Query().
		Where(
			chunkmastery.UserID(userID),
			chunkmastery.ChunkID(chunkID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chunk mastery: %w", err)
	}
	return &MasteryRecord{
		UserID:              row.UserID,
		ChunkID:             row.ChunkID,
		CourseID:            row.CourseID,
		MasteryScore:        row.MasteryScore,
		LastReviewedSession: row.LastReviewedSession,
		LastFullReviewAt:    row.LastFullReviewAt,
	}, nil
}

func (r *masteryRepo) Upsert(ctx context.Context, rec MasteryRecord) error {
	builder := r.client.ChunkMastery.Create().
		SetUserID(rec.UserID).
		SetChunkID(rec.ChunkID).
		SetCourseID(rec.CourseID).
		SetMasteryScore(rec.MasteryScore).
		SetLastReviewedSession(rec.LastReviewedSession)

	if rec.LastFullReviewAt != nil {
		builder = builder.SetLastFullReviewAt(*rec.LastFullReviewAt)
	}

	err := builder.
		OnConflictColumns(
			chunkmastery.FieldUserID,
			chunkmastery.FieldChunkID,
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert chunk mastery: %w", err)
	}
	return nil
}

func (r *masteryRepo) LowestMasteryChunks(ctx context.Context, userID, courseID uuid.UUID, limit int) ([]uuid.UUID, error) {
	rows, err := r.client.ChunkMastery.Query().
		Where(
			chunkmastery.UserID(userID),
			chunkmastery.CourseID(courseID),
		).
		Order(ent.Asc(chunkmastery.FieldMasteryScore)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lowest mastery chunks: %w", err)
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ChunkID
	}
	return ids, nil
}
