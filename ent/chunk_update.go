// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/astiages123/auditpath/ent/chunk"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/astiages123/auditpath/ent/schema"
	"github.com/google/uuid"
)

// ChunkUpdate is the builder for updating Chunk entities.
type ChunkUpdate struct {
	config
	hooks    []Hook
	mutation *ChunkMutation
}

// Where appends a list predicates to the ChunkUpdate builder.
func (_u *ChunkUpdate) Where(ps ...predicate.Chunk) *ChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ChunkUpdate) SetCourseID(v uuid.UUID) *ChunkUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableCourseID(v *uuid.UUID) *ChunkUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChunkUpdate) SetTitle(v string) *ChunkUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableTitle(v *string) *ChunkUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChunkUpdate) SetContent(v string) *ChunkUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableContent(v *string) *ChunkUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ChunkUpdate) SetPosition(v int) *ChunkUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillablePosition(v *int) *ChunkUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ChunkUpdate) AddPosition(v int) *ChunkUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ChunkUpdate) SetWordCount(v int) *ChunkUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableWordCount(v *int) *ChunkUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ChunkUpdate) AddWordCount(v int) *ChunkUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetDensityScore sets the "density_score" field.
func (_u *ChunkUpdate) SetDensityScore(v float64) *ChunkUpdate {
	_u.mutation.ResetDensityScore()
	_u.mutation.SetDensityScore(v)
	return _u
}

// SetNillableDensityScore sets the "density_score" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableDensityScore(v *float64) *ChunkUpdate {
	if v != nil {
		_u.SetDensityScore(*v)
	}
	return _u
}

// AddDensityScore adds value to the "density_score" field.
func (_u *ChunkUpdate) AddDensityScore(v float64) *ChunkUpdate {
	_u.mutation.AddDensityScore(v)
	return _u
}

// SetConceptMap sets the "concept_map" field.
func (_u *ChunkUpdate) SetConceptMap(v []schema.ConceptEntry) *ChunkUpdate {
	_u.mutation.SetConceptMap(v)
	return _u
}

// AppendConceptMap appends value to the "concept_map" field.
func (_u *ChunkUpdate) AppendConceptMap(v []schema.ConceptEntry) *ChunkUpdate {
	_u.mutation.AppendConceptMap(v)
	return _u
}

// ClearConceptMap clears the value of the "concept_map" field.
func (_u *ChunkUpdate) ClearConceptMap() *ChunkUpdate {
	_u.mutation.ClearConceptMap()
	return _u
}

// SetDifficultyIndex sets the "difficulty_index" field.
func (_u *ChunkUpdate) SetDifficultyIndex(v float64) *ChunkUpdate {
	_u.mutation.ResetDifficultyIndex()
	_u.mutation.SetDifficultyIndex(v)
	return _u
}

// SetNillableDifficultyIndex sets the "difficulty_index" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableDifficultyIndex(v *float64) *ChunkUpdate {
	if v != nil {
		_u.SetDifficultyIndex(*v)
	}
	return _u
}

// AddDifficultyIndex adds value to the "difficulty_index" field.
func (_u *ChunkUpdate) AddDifficultyIndex(v float64) *ChunkUpdate {
	_u.mutation.AddDifficultyIndex(v)
	return _u
}

// SetPracticeQuota sets the "practice_quota" field.
func (_u *ChunkUpdate) SetPracticeQuota(v int) *ChunkUpdate {
	_u.mutation.ResetPracticeQuota()
	_u.mutation.SetPracticeQuota(v)
	return _u
}

// SetNillablePracticeQuota sets the "practice_quota" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillablePracticeQuota(v *int) *ChunkUpdate {
	if v != nil {
		_u.SetPracticeQuota(*v)
	}
	return _u
}

// AddPracticeQuota adds value to the "practice_quota" field.
func (_u *ChunkUpdate) AddPracticeQuota(v int) *ChunkUpdate {
	_u.mutation.AddPracticeQuota(v)
	return _u
}

// SetArchiveQuota sets the "archive_quota" field.
func (_u *ChunkUpdate) SetArchiveQuota(v int) *ChunkUpdate {
	_u.mutation.ResetArchiveQuota()
	_u.mutation.SetArchiveQuota(v)
	return _u
}

// SetNillableArchiveQuota sets the "archive_quota" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableArchiveQuota(v *int) *ChunkUpdate {
	if v != nil {
		_u.SetArchiveQuota(*v)
	}
	return _u
}

// AddArchiveQuota adds value to the "archive_quota" field.
func (_u *ChunkUpdate) AddArchiveQuota(v int) *ChunkUpdate {
	_u.mutation.AddArchiveQuota(v)
	return _u
}

// SetExamQuota sets the "exam_quota" field.
func (_u *ChunkUpdate) SetExamQuota(v int) *ChunkUpdate {
	_u.mutation.ResetExamQuota()
	_u.mutation.SetExamQuota(v)
	return _u
}

// SetNillableExamQuota sets the "exam_quota" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableExamQuota(v *int) *ChunkUpdate {
	if v != nil {
		_u.SetExamQuota(*v)
	}
	return _u
}

// AddExamQuota adds value to the "exam_quota" field.
func (_u *ChunkUpdate) AddExamQuota(v int) *ChunkUpdate {
	_u.mutation.AddExamQuota(v)
	return _u
}

// SetGenerationStatus sets the "generation_status" field.
func (_u *ChunkUpdate) SetGenerationStatus(v string) *ChunkUpdate {
	_u.mutation.SetGenerationStatus(v)
	return _u
}

// SetNillableGenerationStatus sets the "generation_status" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableGenerationStatus(v *string) *ChunkUpdate {
	if v != nil {
		_u.SetGenerationStatus(*v)
	}
	return _u
}

// Mutation returns the ChunkMutation object of the builder.
func (_u *ChunkUpdate) Mutation() *ChunkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := chunk.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Chunk.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunk.Table, chunk.Columns, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(chunk.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chunk.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(chunk.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(chunk.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(chunk.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(chunk.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DensityScore(); ok {
		_spec.SetField(chunk.FieldDensityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDensityScore(); ok {
		_spec.AddField(chunk.FieldDensityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConceptMap(); ok {
		_spec.SetField(chunk.FieldConceptMap, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptMap(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chunk.FieldConceptMap, value)
		})
	}
	if _u.mutation.ConceptMapCleared() {
		_spec.ClearField(chunk.FieldConceptMap, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyIndex(); ok {
		_spec.SetField(chunk.FieldDifficultyIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficultyIndex(); ok {
		_spec.AddField(chunk.FieldDifficultyIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PracticeQuota(); ok {
		_spec.SetField(chunk.FieldPracticeQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeQuota(); ok {
		_spec.AddField(chunk.FieldPracticeQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ArchiveQuota(); ok {
		_spec.SetField(chunk.FieldArchiveQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArchiveQuota(); ok {
		_spec.AddField(chunk.FieldArchiveQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamQuota(); ok {
		_spec.SetField(chunk.FieldExamQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamQuota(); ok {
		_spec.AddField(chunk.FieldExamQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GenerationStatus(); ok {
		_spec.SetField(chunk.FieldGenerationStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChunkUpdateOne is the builder for updating a single Chunk entity.
type ChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChunkMutation
}

// SetCourseID sets the "course_id" field.
func (_u *ChunkUpdateOne) SetCourseID(v uuid.UUID) *ChunkUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableCourseID(v *uuid.UUID) *ChunkUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChunkUpdateOne) SetTitle(v string) *ChunkUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableTitle(v *string) *ChunkUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChunkUpdateOne) SetContent(v string) *ChunkUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableContent(v *string) *ChunkUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ChunkUpdateOne) SetPosition(v int) *ChunkUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillablePosition(v *int) *ChunkUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ChunkUpdateOne) AddPosition(v int) *ChunkUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ChunkUpdateOne) SetWordCount(v int) *ChunkUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableWordCount(v *int) *ChunkUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ChunkUpdateOne) AddWordCount(v int) *ChunkUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetDensityScore sets the "density_score" field.
func (_u *ChunkUpdateOne) SetDensityScore(v float64) *ChunkUpdateOne {
	_u.mutation.ResetDensityScore()
	_u.mutation.SetDensityScore(v)
	return _u
}

// SetNillableDensityScore sets the "density_score" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableDensityScore(v *float64) *ChunkUpdateOne {
	if v != nil {
		_u.SetDensityScore(*v)
	}
	return _u
}

// AddDensityScore adds value to the "density_score" field.
func (_u *ChunkUpdateOne) AddDensityScore(v float64) *ChunkUpdateOne {
	_u.mutation.AddDensityScore(v)
	return _u
}

// SetConceptMap sets the "concept_map" field.
func (_u *ChunkUpdateOne) SetConceptMap(v []schema.ConceptEntry) *ChunkUpdateOne {
	_u.mutation.SetConceptMap(v)
	return _u
}

// AppendConceptMap appends value to the "concept_map" field.
func (_u *ChunkUpdateOne) AppendConceptMap(v []schema.ConceptEntry) *ChunkUpdateOne {
	_u.mutation.AppendConceptMap(v)
	return _u
}

// ClearConceptMap clears the value of the "concept_map" field.
func (_u *ChunkUpdateOne) ClearConceptMap() *ChunkUpdateOne {
	_u.mutation.ClearConceptMap()
	return _u
}

// SetDifficultyIndex sets the "difficulty_index" field.
func (_u *ChunkUpdateOne) SetDifficultyIndex(v float64) *ChunkUpdateOne {
	_u.mutation.ResetDifficultyIndex()
	_u.mutation.SetDifficultyIndex(v)
	return _u
}

// SetNillableDifficultyIndex sets the "difficulty_index" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableDifficultyIndex(v *float64) *ChunkUpdateOne {
	if v != nil {
		_u.SetDifficultyIndex(*v)
	}
	return _u
}

// AddDifficultyIndex adds value to the "difficulty_index" field.
func (_u *ChunkUpdateOne) AddDifficultyIndex(v float64) *ChunkUpdateOne {
	_u.mutation.AddDifficultyIndex(v)
	return _u
}

// SetPracticeQuota sets the "practice_quota" field.
func (_u *ChunkUpdateOne) SetPracticeQuota(v int) *ChunkUpdateOne {
	_u.mutation.ResetPracticeQuota()
	_u.mutation.SetPracticeQuota(v)
	return _u
}

// SetNillablePracticeQuota sets the "practice_quota" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillablePracticeQuota(v *int) *ChunkUpdateOne {
	if v != nil {
		_u.SetPracticeQuota(*v)
	}
	return _u
}

// AddPracticeQuota adds value to the "practice_quota" field.
func (_u *ChunkUpdateOne) AddPracticeQuota(v int) *ChunkUpdateOne {
	_u.mutation.AddPracticeQuota(v)
	return _u
}

// SetArchiveQuota sets the "archive_quota" field.
func (_u *ChunkUpdateOne) SetArchiveQuota(v int) *ChunkUpdateOne {
	_u.mutation.ResetArchiveQuota()
	_u.mutation.SetArchiveQuota(v)
	return _u
}

// SetNillableArchiveQuota sets the "archive_quota" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableArchiveQuota(v *int) *ChunkUpdateOne {
	if v != nil {
		_u.SetArchiveQuota(*v)
	}
	return _u
}

// AddArchiveQuota adds value to the "archive_quota" field.
func (_u *ChunkUpdateOne) AddArchiveQuota(v int) *ChunkUpdateOne {
	_u.mutation.AddArchiveQuota(v)
	return _u
}

// SetExamQuota sets the "exam_quota" field.
func (_u *ChunkUpdateOne) SetExamQuota(v int) *ChunkUpdateOne {
	_u.mutation.ResetExamQuota()
	_u.mutation.SetExamQuota(v)
	return _u
}

// SetNillableExamQuota sets the "exam_quota" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableExamQuota(v *int) *ChunkUpdateOne {
	if v != nil {
		_u.SetExamQuota(*v)
	}
	return _u
}

// AddExamQuota adds value to the "exam_quota" field.
func (_u *ChunkUpdateOne) AddExamQuota(v int) *ChunkUpdateOne {
	_u.mutation.AddExamQuota(v)
	return _u
}

// SetGenerationStatus sets the "generation_status" field.
func (_u *ChunkUpdateOne) SetGenerationStatus(v string) *ChunkUpdateOne {
	_u.mutation.SetGenerationStatus(v)
	return _u
}

// SetNillableGenerationStatus sets the "generation_status" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableGenerationStatus(v *string) *ChunkUpdateOne {
	if v != nil {
		_u.SetGenerationStatus(*v)
	}
	return _u
}

// Mutation returns the ChunkMutation object of the builder.
func (_u *ChunkUpdateOne) Mutation() *ChunkMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChunkUpdate builder.
func (_u *ChunkUpdateOne) Where(ps ...predicate.Chunk) *ChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChunkUpdateOne) Select(field string, fields ...string) *ChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chunk entity.
func (_u *ChunkUpdateOne) Save(ctx context.Context) (*Chunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkUpdateOne) SaveX(ctx context.Context) *Chunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := chunk.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Chunk.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ChunkUpdateOne) sqlSave(ctx context.Context) (_node *Chunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunk.Table, chunk.Columns, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chunk.FieldID)
		for _, f := range fields {
			if !chunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chunk.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(chunk.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chunk.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(chunk.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(chunk.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(chunk.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(chunk.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DensityScore(); ok {
		_spec.SetField(chunk.FieldDensityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDensityScore(); ok {
		_spec.AddField(chunk.FieldDensityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConceptMap(); ok {
		_spec.SetField(chunk.FieldConceptMap, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptMap(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chunk.FieldConceptMap, value)
		})
	}
	if _u.mutation.ConceptMapCleared() {
		_spec.ClearField(chunk.FieldConceptMap, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyIndex(); ok {
		_spec.SetField(chunk.FieldDifficultyIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficultyIndex(); ok {
		_spec.AddField(chunk.FieldDifficultyIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PracticeQuota(); ok {
		_spec.SetField(chunk.FieldPracticeQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeQuota(); ok {
		_spec.AddField(chunk.FieldPracticeQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ArchiveQuota(); ok {
		_spec.SetField(chunk.FieldArchiveQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArchiveQuota(); ok {
		_spec.AddField(chunk.FieldArchiveQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamQuota(); ok {
		_spec.SetField(chunk.FieldExamQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamQuota(); ok {
		_spec.AddField(chunk.FieldExamQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GenerationStatus(); ok {
		_spec.SetField(chunk.FieldGenerationStatus, field.TypeString, value)
	}
	_node = &Chunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
