package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/astiages123/auditpath/ent"
	"github.com/astiages123/auditpath/ent/chunk"
	"github.com/astiages123/auditpath/ent/schema"
	"github.com/astiages123/auditpath/internal/course"
)

type chunkRepo struct {
	client *ent.Client
}

func (r *chunkRepo) GetWithContent(ctx context.Context, id uuid.UUID) (*ChunkRecord, error) {
	row, err := r.client.Chunk.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chunk: %w", err)
	}
	return chunkToRecord(row), nil
}

func (r *chunkRepo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]ChunkInfo, error) {
	rows, err := r.client.Chunk.Query().
		Where(chunk.CourseID(courseID)).
		Order(ent.Asc(chunk.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chunks: %w", err)
	}

	infos := make([]ChunkInfo, len(rows))
	for i, row := range rows {
		infos[i] = ChunkInfo{ID: row.ID, Title: row.Title, Position: row.Position}
	}
	return infos, nil
}

func (r *chunkRepo) Create(ctx context.Context, rec ChunkRecord) (uuid.UUID, error) {
	row, err := r.client.Chunk.Create().
		SetCourseID(rec.CourseID).
		SetTitle(rec.Title).
		SetContent(rec.Content).
		SetPosition(rec.Position).
		SetWordCount(rec.WordCount).
		SetDensityScore(rec.DensityScore).
		Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create chunk: %w", err)
	}
	return row.ID, nil
}

func (r *chunkRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	err := r.client.Chunk.UpdateOneID(id).
		SetGenerationStatus(status).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update chunk status: %w", err)
	}
	return nil
}

func (r *chunkRepo) UpdateConceptMapAndQuotas(ctx context.Context, id uuid.UUID, concepts []course.ConceptMapItem, difficultyIndex float64, quota course.Quota) error {
	entries := make([]schema.ConceptEntry, len(concepts))
	for i, c := range concepts {
		entries[i] = schema.ConceptEntry{
			Title:    c.Title,
			Focus:    c.Focus,
			Level:    string(c.Level),
			ImageRef: c.ImageRef,
		}
	}

	err := r.client.Chunk.UpdateOneID(id).
		SetConceptMap(entries).
		SetDifficultyIndex(difficultyIndex).
		SetPracticeQuota(quota.Practice).
		SetArchiveQuota(quota.Archive).
		SetExamQuota(quota.Exam).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update concept map: %w", err)
	}
	return nil
}

func chunkToRecord(row *ent.Chunk) *ChunkRecord {
	concepts := make([]course.ConceptMapItem, len(row.ConceptMap))
	for i, e := range row.ConceptMap {
		concepts[i] = course.ConceptMapItem{
			Title:    e.Title,
			Focus:    e.Focus,
			Level:    course.Level(e.Level),
			ImageRef: e.ImageRef,
		}
	}
	return &ChunkRecord{
		ID:              row.ID,
		CourseID:        row.CourseID,
		Title:           row.Title,
		Content:         row.Content,
		Position:        row.Position,
		WordCount:       row.WordCount,
		DensityScore:    row.DensityScore,
		ConceptMap:      concepts,
		DifficultyIndex: row.DifficultyIndex,
		Quota: course.Quota{
			Practice: row.PracticeQuota,
			Archive:  row.ArchiveQuota,
			Exam:     row.ExamQuota,
		},
		Status: row.GenerationStatus,
	}
}
