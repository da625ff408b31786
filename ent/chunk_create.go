// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/astiages123/auditpath/ent/chunk"
	"github.com/astiages123/auditpath/ent/schema"
	"github.com/google/uuid"
)

// ChunkCreate is the builder for creating a Chunk entity.
type ChunkCreate struct {
	config
	mutation *ChunkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCourseID sets the "course_id" field.
func (_c *ChunkCreate) SetCourseID(v uuid.UUID) *ChunkCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ChunkCreate) SetTitle(v string) *ChunkCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ChunkCreate) SetContent(v string) *ChunkCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ChunkCreate) SetPosition(v int) *ChunkCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *ChunkCreate) SetNillablePosition(v *int) *ChunkCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *ChunkCreate) SetWordCount(v int) *ChunkCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableWordCount(v *int) *ChunkCreate {
	if v != nil {
		_c.SetWordCount(*v)
	}
	return _c
}

// SetDensityScore sets the "density_score" field.
func (_c *ChunkCreate) SetDensityScore(v float64) *ChunkCreate {
	_c.mutation.SetDensityScore(v)
	return _c
}

// SetNillableDensityScore sets the "density_score" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableDensityScore(v *float64) *ChunkCreate {
	if v != nil {
		_c.SetDensityScore(*v)
	}
	return _c
}

// SetConceptMap sets the "concept_map" field.
func (_c *ChunkCreate) SetConceptMap(v []schema.ConceptEntry) *ChunkCreate {
	_c.mutation.SetConceptMap(v)
	return _c
}

// SetDifficultyIndex sets the "difficulty_index" field.
func (_c *ChunkCreate) SetDifficultyIndex(v float64) *ChunkCreate {
	_c.mutation.SetDifficultyIndex(v)
	return _c
}

// SetNillableDifficultyIndex sets the "difficulty_index" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableDifficultyIndex(v *float64) *ChunkCreate {
	if v != nil {
		_c.SetDifficultyIndex(*v)
	}
	return _c
}

// SetPracticeQuota sets the "practice_quota" field.
func (_c *ChunkCreate) SetPracticeQuota(v int) *ChunkCreate {
	_c.mutation.SetPracticeQuota(v)
	return _c
}

// SetNillablePracticeQuota sets the "practice_quota" field if the given value is not nil.
func (_c *ChunkCreate) SetNillablePracticeQuota(v *int) *ChunkCreate {
	if v != nil {
		_c.SetPracticeQuota(*v)
	}
	return _c
}

// SetArchiveQuota sets the "archive_quota" field.
func (_c *ChunkCreate) SetArchiveQuota(v int) *ChunkCreate {
	_c.mutation.SetArchiveQuota(v)
	return _c
}

// SetNillableArchiveQuota sets the "archive_quota" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableArchiveQuota(v *int) *ChunkCreate {
	if v != nil {
		_c.SetArchiveQuota(*v)
	}
	return _c
}

// SetExamQuota sets the "exam_quota" field.
func (_c *ChunkCreate) SetExamQuota(v int) *ChunkCreate {
	_c.mutation.SetExamQuota(v)
	return _c
}

// SetNillableExamQuota sets the "exam_quota" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableExamQuota(v *int) *ChunkCreate {
	if v != nil {
		_c.SetExamQuota(*v)
	}
	return _c
}

// SetGenerationStatus sets the "generation_status" field.
func (_c *ChunkCreate) SetGenerationStatus(v string) *ChunkCreate {
	_c.mutation.SetGenerationStatus(v)
	return _c
}

// SetNillableGenerationStatus sets the "generation_status" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableGenerationStatus(v *string) *ChunkCreate {
	if v != nil {
		_c.SetGenerationStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChunkCreate) SetID(v uuid.UUID) *ChunkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableID(v *uuid.UUID) *ChunkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ChunkMutation object of the builder.
func (_c *ChunkCreate) Mutation() *ChunkMutation {
	return _c.mutation
}

// Save creates the Chunk in the database.
func (_c *ChunkCreate) Save(ctx context.Context) (*Chunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChunkCreate) SaveX(ctx context.Context) *Chunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChunkCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := chunk.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		v := chunk.DefaultWordCount
		_c.mutation.SetWordCount(v)
	}
	if _, ok := _c.mutation.DensityScore(); !ok {
		v := chunk.DefaultDensityScore
		_c.mutation.SetDensityScore(v)
	}
	if _, ok := _c.mutation.DifficultyIndex(); !ok {
		v := chunk.DefaultDifficultyIndex
		_c.mutation.SetDifficultyIndex(v)
	}
	if _, ok := _c.mutation.PracticeQuota(); !ok {
		v := chunk.DefaultPracticeQuota
		_c.mutation.SetPracticeQuota(v)
	}
	if _, ok := _c.mutation.ArchiveQuota(); !ok {
		v := chunk.DefaultArchiveQuota
		_c.mutation.SetArchiveQuota(v)
	}
	if _, ok := _c.mutation.ExamQuota(); !ok {
		v := chunk.DefaultExamQuota
		_c.mutation.SetExamQuota(v)
	}
	if _, ok := _c.mutation.GenerationStatus(); !ok {
		v := chunk.DefaultGenerationStatus
		_c.mutation.SetGenerationStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := chunk.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChunkCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Chunk.course_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Chunk.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := chunk.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Chunk.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Chunk.content"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Chunk.position"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "Chunk.word_count"`)}
	}
	if _, ok := _c.mutation.DensityScore(); !ok {
		return &ValidationError{Name: "density_score", err: errors.New(`ent: missing required field "Chunk.density_score"`)}
	}
	if _, ok := _c.mutation.DifficultyIndex(); !ok {
		return &ValidationError{Name: "difficulty_index", err: errors.New(`ent: missing required field "Chunk.difficulty_index"`)}
	}
	if _, ok := _c.mutation.PracticeQuota(); !ok {
		return &ValidationError{Name: "practice_quota", err: errors.New(`ent: missing required field "Chunk.practice_quota"`)}
	}
	if _, ok := _c.mutation.ArchiveQuota(); !ok {
		return &ValidationError{Name: "archive_quota", err: errors.New(`ent: missing required field "Chunk.archive_quota"`)}
	}
	if _, ok := _c.mutation.ExamQuota(); !ok {
		return &ValidationError{Name: "exam_quota", err: errors.New(`ent: missing required field "Chunk.exam_quota"`)}
	}
	if _, ok := _c.mutation.GenerationStatus(); !ok {
		return &ValidationError{Name: "generation_status", err: errors.New(`ent: missing required field "Chunk.generation_status"`)}
	}
	return nil
}

func (_c *ChunkCreate) sqlSave(ctx context.Context) (*Chunk, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChunkCreate) createSpec() (*Chunk, *sqlgraph.CreateSpec) {
	var (
		_node = &Chunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chunk.Table, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(chunk.FieldCourseID, field.TypeUUID, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(chunk.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(chunk.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(chunk.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(chunk.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.DensityScore(); ok {
		_spec.SetField(chunk.FieldDensityScore, field.TypeFloat64, value)
		_node.DensityScore = value
	}
	if value, ok := _c.mutation.ConceptMap(); ok {
		_spec.SetField(chunk.FieldConceptMap, field.TypeJSON, value)
		_node.ConceptMap = value
	}
	if value, ok := _c.mutation.DifficultyIndex(); ok {
		_spec.SetField(chunk.FieldDifficultyIndex, field.TypeFloat64, value)
		_node.DifficultyIndex = value
	}
	if value, ok := _c.mutation.PracticeQuota(); ok {
		_spec.SetField(chunk.FieldPracticeQuota, field.TypeInt, value)
		_node.PracticeQuota = value
	}
	if value, ok := _c.mutation.ArchiveQuota(); ok {
		_spec.SetField(chunk.FieldArchiveQuota, field.TypeInt, value)
		_node.ArchiveQuota = value
	}
	if value, ok := _c.mutation.ExamQuota(); ok {
		_spec.SetField(chunk.FieldExamQuota, field.TypeInt, value)
		_node.ExamQuota = value
	}
	if value, ok := _c.mutation.GenerationStatus(); ok {
		_spec.SetField(chunk.FieldGenerationStatus, field.TypeString, value)
		_node.GenerationStatus = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Chunk.Create().
//		SetCourseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChunkUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChunkCreate) OnConflict(opts ...sql.ConflictOption) *ChunkUpsertOne {
	_c.conflict = opts
	return &ChunkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Chunk.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChunkCreate) OnConflictColumns(columns ...string) *ChunkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChunkUpsertOne{
		create: _c,
	}
}

type (
	// ChunkUpsertOne is the builder for "upsert"-ing
	//  one Chunk node.
	ChunkUpsertOne struct {
		create *ChunkCreate
	}

	// ChunkUpsert is the "OnConflict" setter.
	ChunkUpsert struct {
		*sql.UpdateSet
	}
)

// SetCourseID sets the "course_id" field.
func (u *ChunkUpsert) SetCourseID(v uuid.UUID) *ChunkUpsert {
	u.Set(chunk.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateCourseID() *ChunkUpsert {
	u.SetExcluded(chunk.FieldCourseID)
	return u
}

// SetTitle sets the "title" field.
func (u *ChunkUpsert) SetTitle(v string) *ChunkUpsert {
	u.Set(chunk.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateTitle() *ChunkUpsert {
	u.SetExcluded(chunk.FieldTitle)
	return u
}

// SetContent sets the "content" field.
func (u *ChunkUpsert) SetContent(v string) *ChunkUpsert {
	u.Set(chunk.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateContent() *ChunkUpsert {
	u.SetExcluded(chunk.FieldContent)
	return u
}

// SetPosition sets the "position" field.
func (u *ChunkUpsert) SetPosition(v int) *ChunkUpsert {
	u.Set(chunk.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ChunkUpsert) UpdatePosition() *ChunkUpsert {
	u.SetExcluded(chunk.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *ChunkUpsert) AddPosition(v int) *ChunkUpsert {
	u.Add(chunk.FieldPosition, v)
	return u
}

// SetWordCount sets the "word_count" field.
func (u *ChunkUpsert) SetWordCount(v int) *ChunkUpsert {
	u.Set(chunk.FieldWordCount, v)
	return u
}

// UpdateWordCount sets the "word_count" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateWordCount() *ChunkUpsert {
	u.SetExcluded(chunk.FieldWordCount)
	return u
}

// AddWordCount adds v to the "word_count" field.
func (u *ChunkUpsert) AddWordCount(v int) *ChunkUpsert {
	u.Add(chunk.FieldWordCount, v)
	return u
}

// SetDensityScore sets the "density_score" field.
func (u *ChunkUpsert) SetDensityScore(v float64) *ChunkUpsert {
	u.Set(chunk.FieldDensityScore, v)
	return u
}

// UpdateDensityScore sets the "density_score" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateDensityScore() *ChunkUpsert {
	u.SetExcluded(chunk.FieldDensityScore)
	return u
}

// AddDensityScore adds v to the "density_score" field.
func (u *ChunkUpsert) AddDensityScore(v float64) *ChunkUpsert {
	u.Add(chunk.FieldDensityScore, v)
	return u
}

// SetConceptMap sets the "concept_map" field.
func (u *ChunkUpsert) SetConceptMap(v []schema.ConceptEntry) *ChunkUpsert {
	u.Set(chunk.FieldConceptMap, v)
	return u
}

// UpdateConceptMap sets the "concept_map" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateConceptMap() *ChunkUpsert {
	u.SetExcluded(chunk.FieldConceptMap)
	return u
}

// ClearConceptMap clears the value of the "concept_map" field.
func (u *ChunkUpsert) ClearConceptMap() *ChunkUpsert {
	u.SetNull(chunk.FieldConceptMap)
	return u
}

// SetDifficultyIndex sets the "difficulty_index" field.
func (u *ChunkUpsert) SetDifficultyIndex(v float64) *ChunkUpsert {
	u.Set(chunk.FieldDifficultyIndex, v)
	return u
}

// UpdateDifficultyIndex sets the "difficulty_index" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateDifficultyIndex() *ChunkUpsert {
	u.SetExcluded(chunk.FieldDifficultyIndex)
	return u
}

// AddDifficultyIndex adds v to the "difficulty_index" field.
func (u *ChunkUpsert) AddDifficultyIndex(v float64) *ChunkUpsert {
	u.Add(chunk.FieldDifficultyIndex, v)
	return u
}

// SetPracticeQuota sets the "practice_quota" field.
func (u *ChunkUpsert) SetPracticeQuota(v int) *ChunkUpsert {
	u.Set(chunk.FieldPracticeQuota, v)
	return u
}

// UpdatePracticeQuota sets the "practice_quota" field to the value that was provided on create.
func (u *ChunkUpsert) UpdatePracticeQuota() *ChunkUpsert {
	u.SetExcluded(chunk.FieldPracticeQuota)
	return u
}

// AddPracticeQuota adds v to the "practice_quota" field.
func (u *ChunkUpsert) AddPracticeQuota(v int) *ChunkUpsert {
	u.Add(chunk.FieldPracticeQuota, v)
	return u
}

// SetArchiveQuota sets the "archive_quota" field.
func (u *ChunkUpsert) SetArchiveQuota(v int) *ChunkUpsert {
	u.Set(chunk.FieldArchiveQuota, v)
	return u
}

// UpdateArchiveQuota sets the "archive_quota" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateArchiveQuota() *ChunkUpsert {
	u.SetExcluded(chunk.FieldArchiveQuota)
	return u
}

// AddArchiveQuota adds v to the "archive_quota" field.
func (u *ChunkUpsert) AddArchiveQuota(v int) *ChunkUpsert {
	u.Add(chunk.FieldArchiveQuota, v)
	return u
}

// SetExamQuota sets the "exam_quota" field.
func (u *ChunkUpsert) SetExamQuota(v int) *ChunkUpsert {
	u.Set(chunk.FieldExamQuota, v)
	return u
}

// UpdateExamQuota sets the "exam_quota" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateExamQuota() *ChunkUpsert {
	u.SetExcluded(chunk.FieldExamQuota)
	return u
}

// AddExamQuota adds v to the "exam_quota" field.
func (u *ChunkUpsert) AddExamQuota(v int) *ChunkUpsert {
	u.Add(chunk.FieldExamQuota, v)
	return u
}

// SetGenerationStatus sets the "generation_status" field.
func (u *ChunkUpsert) SetGenerationStatus(v string) *ChunkUpsert {
	u.Set(chunk.FieldGenerationStatus, v)
	return u
}

// UpdateGenerationStatus sets the "generation_status" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateGenerationStatus() *ChunkUpsert {
	u.SetExcluded(chunk.FieldGenerationStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Chunk.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chunk.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChunkUpsertOne) UpdateNewValues() *ChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chunk.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Chunk.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChunkUpsertOne) Ignore() *ChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChunkUpsertOne) DoNothing() *ChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChunkCreate.OnConflict
// documentation for more info.
func (u *ChunkUpsertOne) Update(set func(*ChunkUpsert)) *ChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChunkUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *ChunkUpsertOne) SetCourseID(v uuid.UUID) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateCourseID() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateCourseID()
	})
}

// SetTitle sets the "title" field.
func (u *ChunkUpsertOne) SetTitle(v string) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateTitle() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *ChunkUpsertOne) SetContent(v string) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateContent() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateContent()
	})
}

// SetPosition sets the "position" field.
func (u *ChunkUpsertOne) SetPosition(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *ChunkUpsertOne) AddPosition(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdatePosition() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdatePosition()
	})
}

// SetWordCount sets the "word_count" field.
func (u *ChunkUpsertOne) SetWordCount(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetWordCount(v)
	})
}

// AddWordCount adds v to the "word_count" field.
func (u *ChunkUpsertOne) AddWordCount(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.AddWordCount(v)
	})
}

// UpdateWordCount sets the "word_count" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateWordCount() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateWordCount()
	})
}

// SetDensityScore sets the "density_score" field.
func (u *ChunkUpsertOne) SetDensityScore(v float64) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetDensityScore(v)
	})
}

// AddDensityScore adds v to the "density_score" field.
func (u *ChunkUpsertOne) AddDensityScore(v float64) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.AddDensityScore(v)
	})
}

// UpdateDensityScore sets the "density_score" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateDensityScore() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateDensityScore()
	})
}

// SetConceptMap sets the "concept_map" field.
func (u *ChunkUpsertOne) SetConceptMap(v []schema.ConceptEntry) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetConceptMap(v)
	})
}

// UpdateConceptMap sets the "concept_map" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateConceptMap() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateConceptMap()
	})
}

// ClearConceptMap clears the value of the "concept_map" field.
func (u *ChunkUpsertOne) ClearConceptMap() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.ClearConceptMap()
	})
}

// SetDifficultyIndex sets the "difficulty_index" field.
func (u *ChunkUpsertOne) SetDifficultyIndex(v float64) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetDifficultyIndex(v)
	})
}

// AddDifficultyIndex adds v to the "difficulty_index" field.
func (u *ChunkUpsertOne) AddDifficultyIndex(v float64) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.AddDifficultyIndex(v)
	})
}

// UpdateDifficultyIndex sets the "difficulty_index" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateDifficultyIndex() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateDifficultyIndex()
	})
}

// SetPracticeQuota sets the "practice_quota" field.
func (u *ChunkUpsertOne) SetPracticeQuota(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetPracticeQuota(v)
	})
}

// AddPracticeQuota adds v to the "practice_quota" field.
func (u *ChunkUpsertOne) AddPracticeQuota(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.AddPracticeQuota(v)
	})
}

// UpdatePracticeQuota sets the "practice_quota" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdatePracticeQuota() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdatePracticeQuota()
	})
}

// SetArchiveQuota sets the "archive_quota" field.
func (u *ChunkUpsertOne) SetArchiveQuota(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetArchiveQuota(v)
	})
}

// AddArchiveQuota adds v to the "archive_quota" field.
func (u *ChunkUpsertOne) AddArchiveQuota(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.AddArchiveQuota(v)
	})
}

// UpdateArchiveQuota sets the "archive_quota" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateArchiveQuota() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateArchiveQuota()
	})
}

// SetExamQuota sets the "exam_quota" field.
func (u *ChunkUpsertOne) SetExamQuota(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetExamQuota(v)
	})
}

// AddExamQuota adds v to the "exam_quota" field.
func (u *ChunkUpsertOne) AddExamQuota(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.AddExamQuota(v)
	})
}

// UpdateExamQuota sets the "exam_quota" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateExamQuota() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateExamQuota()
	})
}

// SetGenerationStatus sets the "generation_status" field.
func (u *ChunkUpsertOne) SetGenerationStatus(v string) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetGenerationStatus(v)
	})
}

// UpdateGenerationStatus sets the "generation_status" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateGenerationStatus() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateGenerationStatus()
	})
}

// Exec executes the query.
func (u *ChunkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChunkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChunkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChunkUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChunkUpsertOne.ID is not supported by MySQL driver. Use ChunkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChunkUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChunkCreateBulk is the builder for creating many Chunk entities in bulk.
type ChunkCreateBulk struct {
	config
	err      error
	builders []*ChunkCreate
	conflict []sql.ConflictOption
}

// Save creates the Chunk entities in the database.
func (_c *ChunkCreateBulk) Save(ctx context.Context) ([]*Chunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Chunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChunkMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChunkCreateBulk) SaveX(ctx context.Context) []*Chunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Chunk.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChunkUpsert) {
//			SetCourseID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChunkCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChunkUpsertBulk {
	_c.conflict = opts
	return &ChunkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Chunk.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChunkCreateBulk) OnConflictColumns(columns ...string) *ChunkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChunkUpsertBulk{
		create: _c,
	}
}

// ChunkUpsertBulk is the builder for "upsert"-ing
// a bulk of Chunk nodes.
type ChunkUpsertBulk struct {
	create *ChunkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Chunk.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chunk.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChunkUpsertBulk) UpdateNewValues() *ChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chunk.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Chunk.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChunkUpsertBulk) Ignore() *ChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChunkUpsertBulk) DoNothing() *ChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChunkCreateBulk.OnConflict
// documentation for more info.
func (u *ChunkUpsertBulk) Update(set func(*ChunkUpsert)) *ChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChunkUpsert{UpdateSet: update})
	}))
	return u
}

// SetCourseID sets the "course_id" field.
func (u *ChunkUpsertBulk) SetCourseID(v uuid.UUID) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateCourseID() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateCourseID()
	})
}

// SetTitle sets the "title" field.
func (u *ChunkUpsertBulk) SetTitle(v string) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateTitle() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *ChunkUpsertBulk) SetContent(v string) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateContent() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateContent()
	})
}

// SetPosition sets the "position" field.
func (u *ChunkUpsertBulk) SetPosition(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *ChunkUpsertBulk) AddPosition(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdatePosition() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdatePosition()
	})
}

// SetWordCount sets the "word_count" field.
func (u *ChunkUpsertBulk) SetWordCount(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetWordCount(v)
	})
}

// AddWordCount adds v to the "word_count" field.
func (u *ChunkUpsertBulk) AddWordCount(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.AddWordCount(v)
	})
}

// UpdateWordCount sets the "word_count" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateWordCount() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateWordCount()
	})
}

// SetDensityScore sets the "density_score" field.
func (u *ChunkUpsertBulk) SetDensityScore(v float64) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetDensityScore(v)
	})
}

// AddDensityScore adds v to the "density_score" field.
func (u *ChunkUpsertBulk) AddDensityScore(v float64) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.AddDensityScore(v)
	})
}

// UpdateDensityScore sets the "density_score" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateDensityScore() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateDensityScore()
	})
}

// SetConceptMap sets the "concept_map" field.
func (u *ChunkUpsertBulk) SetConceptMap(v []schema.ConceptEntry) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetConceptMap(v)
	})
}

// UpdateConceptMap sets the "concept_map" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateConceptMap() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateConceptMap()
	})
}

// ClearConceptMap clears the value of the "concept_map" field.
func (u *ChunkUpsertBulk) ClearConceptMap() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.ClearConceptMap()
	})
}

// SetDifficultyIndex sets the "difficulty_index" field.
func (u *ChunkUpsertBulk) SetDifficultyIndex(v float64) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetDifficultyIndex(v)
	})
}

// AddDifficultyIndex adds v to the "difficulty_index" field.
func (u *ChunkUpsertBulk) AddDifficultyIndex(v float64) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.AddDifficultyIndex(v)
	})
}

// UpdateDifficultyIndex sets the "difficulty_index" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateDifficultyIndex() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateDifficultyIndex()
	})
}

// SetPracticeQuota sets the "practice_quota" field.
func (u *ChunkUpsertBulk) SetPracticeQuota(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetPracticeQuota(v)
	})
}

// AddPracticeQuota adds v to the "practice_quota" field.
func (u *ChunkUpsertBulk) AddPracticeQuota(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.AddPracticeQuota(v)
	})
}

// UpdatePracticeQuota sets the "practice_quota" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdatePracticeQuota() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdatePracticeQuota()
	})
}

// SetArchiveQuota sets the "archive_quota" field.
func (u *ChunkUpsertBulk) SetArchiveQuota(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetArchiveQuota(v)
	})
}

// AddArchiveQuota adds v to the "archive_quota" field.
func (u *ChunkUpsertBulk) AddArchiveQuota(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.AddArchiveQuota(v)
	})
}

// UpdateArchiveQuota sets the "archive_quota" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateArchiveQuota() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateArchiveQuota()
	})
}

// SetExamQuota sets the "exam_quota" field.
func (u *ChunkUpsertBulk) SetExamQuota(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetExamQuota(v)
	})
}

// AddExamQuota adds v to the "exam_quota" field.
func (u *ChunkUpsertBulk) AddExamQuota(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.AddExamQuota(v)
	})
}

// UpdateExamQuota sets the "exam_quota" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateExamQuota() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateExamQuota()
	})
}

// SetGenerationStatus sets the "generation_status" field.
func (u *ChunkUpsertBulk) SetGenerationStatus(v string) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetGenerationStatus(v)
	})
}

// UpdateGenerationStatus sets the "generation_status" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateGenerationStatus() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateGenerationStatus()
	})
}

// Exec executes the query.
func (u *ChunkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChunkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChunkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChunkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
