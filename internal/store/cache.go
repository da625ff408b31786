package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/ent"
	"github.com/astiages123/auditpath/ent/schema"
	"github.com/astiages123/auditpath/ent/sessioncache"
)

type cacheRepo struct {
	client *ent.Client
}

func (r *cacheRepo) Load(ctx context.Context, userID, courseID uuid.UUID, now time.Time) (*CachedSession, error) {
	row, err := r.client.SessionCache.Query().
		Where(
			sessioncache.UserID(userID),
			sessioncache.CourseID(courseID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session cache: %w", err)
	}

	if now.After(row.ExpiresAt) {
		// Stale snapshot; drop it so the next session starts clean.
		_ = r.client.SessionCache.DeleteOne(row).Exec(ctx)
		return nil, nil
	}

	queue := make([]CachedQueueItem, len(row.Queue))
	for i, it := range row.Queue {
		queue[i] = CachedQueueItem{
			QuestionID: it.QuestionID,
			ChunkID:    it.ChunkID,
			CourseID:   it.CourseID,
			Tier:       it.Tier,
			Status:     it.Status,
			Reason:     it.Reason,
		}
	}

	return &CachedSession{
		UserID:        row.UserID,
		CourseID:      row.CourseID,
		SessionID:     row.SessionID,
		SessionNumber: row.SessionNumber,
		ReviewIndex:   row.ReviewIndex,
		Queue:         queue,
		ExpiresAt:     row.ExpiresAt,
	}, nil
}

func (r *cacheRepo) Save(ctx context.Context, snap CachedSession) error {
	queue := make([]schema.CachedItem, len(snap.Queue))
	for i, it := range snap.Queue {
		queue[i] = schema.CachedItem{
			QuestionID: it.QuestionID,
			ChunkID:    it.ChunkID,
			CourseID:   it.CourseID,
			Tier:       it.Tier,
			Status:     it.Status,
			Reason:     it.Reason,
		}
	}

	err := r.client.SessionCache.Create().
		SetUserID(snap.UserID).
		SetCourseID(snap.CourseID).
		SetSessionID(snap.SessionID).
		SetSessionNumber(snap.SessionNumber).
		SetReviewIndex(snap.ReviewIndex).
		SetQueue(queue).
		SetExpiresAt(snap.ExpiresAt).
		OnConflictColumns(
			sessioncache.FieldUserID,
			sessioncache.FieldCourseID,
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save session cache: %w", err)
	}
	return nil
}

func (r *cacheRepo) Discard(ctx context.Context, userID, courseID uuid.UUID) error {
	_, err := r.client.SessionCache.Delete().
		Where(
			sessioncache.UserID(userID),
			sessioncache.CourseID(courseID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("discard session cache: %w", err)
	}
	return nil
}
