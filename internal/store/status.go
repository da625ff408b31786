package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/ent"
	"github.com/astiages123/auditpath/ent/userquestionstatus"
)

type statusRepo struct {
	client *ent.Client
}

func (r *statusRepo) Get(ctx context.Context, userID, questionID uuid.UUID) (*StatusRecord, error) {
	row, err := r.client.UserQuestionStatus.Query().
		Where(
			userquestionstatus.UserID(userID),
			userquestionstatus.QuestionID(questionID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get question status: %w", err)
	}
	return &StatusRecord{
		UserID:            row.UserID,
		QuestionID:        row.QuestionID,
		CourseID:          row.CourseID,
		Status:            row.Status,
		SuccessStreak:     row.SuccessStreak,
		FailStreak:        row.FailStreak,
		NextReviewSession: row.NextReviewSession,
	}, nil
}

func (r *statusRepo) Upsert(ctx context.Context, rec StatusRecord) error {
	err := r.client.UserQuestionStatus.Create().
		SetUserID(rec.UserID).
		SetQuestionID(rec.QuestionID).
		SetCourseID(rec.CourseID).
		SetStatus(rec.Status).
		SetSuccessStreak(rec.SuccessStreak).
		SetFailStreak(rec.FailStreak).
		SetNextReviewSession(rec.NextReviewSession).
		SetUpdatedAt(time.Now()).
		OnConflictColumns(
			userquestionstatus.FieldUserID,
			userquestionstatus.FieldQuestionID,
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert question status: %w", err)
	}
	return nil
}
