// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/astiages123/auditpath/ent/chunkmastery"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/google/uuid"
)

// ChunkMasteryUpdate is the builder for updating ChunkMastery entities.
type ChunkMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *ChunkMasteryMutation
}

// Where appends a list predicates to the ChunkMasteryUpdate builder.
func (_u *ChunkMasteryUpdate) Where(ps ...predicate.ChunkMastery) *ChunkMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChunkMasteryUpdate) SetUserID(v uuid.UUID) *ChunkMasteryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChunkMasteryUpdate) SetNillableUserID(v *uuid.UUID) *ChunkMasteryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetChunkID sets the "chunk_id" field.
func (_u *ChunkMasteryUpdate) SetChunkID(v uuid.UUID) *ChunkMasteryUpdate {
	_u.mutation.SetChunkID(v)
	return _u
}

// SetNillableChunkID sets the "chunk_id" field if the given value is not nil.
func (_u *ChunkMasteryUpdate) SetNillableChunkID(v *uuid.UUID) *ChunkMasteryUpdate {
	if v != nil {
		_u.SetChunkID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ChunkMasteryUpdate) SetCourseID(v uuid.UUID) *ChunkMasteryUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ChunkMasteryUpdate) SetNillableCourseID(v *uuid.UUID) *ChunkMasteryUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *ChunkMasteryUpdate) SetMasteryScore(v int) *ChunkMasteryUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *ChunkMasteryUpdate) SetNillableMasteryScore(v *int) *ChunkMasteryUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *ChunkMasteryUpdate) AddMasteryScore(v int) *ChunkMasteryUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetLastReviewedSession sets the "last_reviewed_session" field.
func (_u *ChunkMasteryUpdate) SetLastReviewedSession(v int) *ChunkMasteryUpdate {
	_u.mutation.ResetLastReviewedSession()
	_u.mutation.SetLastReviewedSession(v)
	return _u
}

// SetNillableLastReviewedSession sets the "last_reviewed_session" field if the given value is not nil.
func (_u *ChunkMasteryUpdate) SetNillableLastReviewedSession(v *int) *ChunkMasteryUpdate {
	if v != nil {
		_u.SetLastReviewedSession(*v)
	}
	return _u
}

// AddLastReviewedSession adds value to the "last_reviewed_session" field.
func (_u *ChunkMasteryUpdate) AddLastReviewedSession(v int) *ChunkMasteryUpdate {
	_u.mutation.AddLastReviewedSession(v)
	return _u
}

// SetLastFullReviewAt sets the "last_full_review_at" field.
func (_u *ChunkMasteryUpdate) SetLastFullReviewAt(v time.Time) *ChunkMasteryUpdate {
	_u.mutation.SetLastFullReviewAt(v)
	return _u
}

// SetNillableLastFullReviewAt sets the "last_full_review_at" field if the given value is not nil.
func (_u *ChunkMasteryUpdate) SetNillableLastFullReviewAt(v *time.Time) *ChunkMasteryUpdate {
	if v != nil {
		_u.SetLastFullReviewAt(*v)
	}
	return _u
}

// ClearLastFullReviewAt clears the value of the "last_full_review_at" field.
func (_u *ChunkMasteryUpdate) ClearLastFullReviewAt() *ChunkMasteryUpdate {
	_u.mutation.ClearLastFullReviewAt()
	return _u
}

// Mutation returns the ChunkMasteryMutation object of the builder.
func (_u *ChunkMasteryUpdate) Mutation() *ChunkMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChunkMasteryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChunkMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChunkMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chunkmastery.Table, chunkmastery.Columns, sqlgraph.NewFieldSpec(chunkmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chunkmastery.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ChunkID(); ok {
		_spec.SetField(chunkmastery.FieldChunkID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(chunkmastery.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(chunkmastery.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(chunkmastery.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedSession(); ok {
		_spec.SetField(chunkmastery.FieldLastReviewedSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastReviewedSession(); ok {
		_spec.AddField(chunkmastery.FieldLastReviewedSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastFullReviewAt(); ok {
		_spec.SetField(chunkmastery.FieldLastFullReviewAt, field.TypeTime, value)
	}
	if _u.mutation.LastFullReviewAtCleared() {
		_spec.ClearField(chunkmastery.FieldLastFullReviewAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunkmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChunkMasteryUpdateOne is the builder for updating a single ChunkMastery entity.
type ChunkMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChunkMasteryMutation
}

// SetUserID sets the "user_id" field.
func (_u *ChunkMasteryUpdateOne) SetUserID(v uuid.UUID) *ChunkMasteryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChunkMasteryUpdateOne) SetNillableUserID(v *uuid.UUID) *ChunkMasteryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetChunkID sets the "chunk_id" field.
func (_u *ChunkMasteryUpdateOne) SetChunkID(v uuid.UUID) *ChunkMasteryUpdateOne {
	_u.mutation.SetChunkID(v)
	return _u
}

// SetNillableChunkID sets the "chunk_id" field if the given value is not nil.
func (_u *ChunkMasteryUpdateOne) SetNillableChunkID(v *uuid.UUID) *ChunkMasteryUpdateOne {
	if v != nil {
		_u.SetChunkID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ChunkMasteryUpdateOne) SetCourseID(v uuid.UUID) *ChunkMasteryUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ChunkMasteryUpdateOne) SetNillableCourseID(v *uuid.UUID) *ChunkMasteryUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *ChunkMasteryUpdateOne) SetMasteryScore(v int) *ChunkMasteryUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *ChunkMasteryUpdateOne) SetNillableMasteryScore(v *int) *ChunkMasteryUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *ChunkMasteryUpdateOne) AddMasteryScore(v int) *ChunkMasteryUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetLastReviewedSession sets the "last_reviewed_session" field.
func (_u *ChunkMasteryUpdateOne) SetLastReviewedSession(v int) *ChunkMasteryUpdateOne {
	_u.mutation.ResetLastReviewedSession()
	_u.mutation.SetLastReviewedSession(v)
	return _u
}

// SetNillableLastReviewedSession sets the "last_reviewed_session" field if the given value is not nil.
func (_u *ChunkMasteryUpdateOne) SetNillableLastReviewedSession(v *int) *ChunkMasteryUpdateOne {
	if v != nil {
		_u.SetLastReviewedSession(*v)
	}
	return _u
}

// AddLastReviewedSession adds value to the "last_reviewed_session" field.
func (_u *ChunkMasteryUpdateOne) AddLastReviewedSession(v int) *ChunkMasteryUpdateOne {
	_u.mutation.AddLastReviewedSession(v)
	return _u
}

// SetLastFullReviewAt sets the "last_full_review_at" field.
func (_u *ChunkMasteryUpdateOne) SetLastFullReviewAt(v time.Time) *ChunkMasteryUpdateOne {
	_u.mutation.SetLastFullReviewAt(v)
	return _u
}

// SetNillableLastFullReviewAt sets the "last_full_review_at" field if the given value is not nil.
func (_u *ChunkMasteryUpdateOne) SetNillableLastFullReviewAt(v *time.Time) *ChunkMasteryUpdateOne {
	if v != nil {
		_u.SetLastFullReviewAt(*v)
	}
	return _u
}

// ClearLastFullReviewAt clears the value of the "last_full_review_at" field.
func (_u *ChunkMasteryUpdateOne) ClearLastFullReviewAt() *ChunkMasteryUpdateOne {
	_u.mutation.ClearLastFullReviewAt()
	return _u
}

// Mutation returns the ChunkMasteryMutation object of the builder.
func (_u *ChunkMasteryUpdateOne) Mutation() *ChunkMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChunkMasteryUpdate builder.
func (_u *ChunkMasteryUpdateOne) Where(ps ...predicate.ChunkMastery) *ChunkMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChunkMasteryUpdateOne) Select(field string, fields ...string) *ChunkMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChunkMastery entity.
func (_u *ChunkMasteryUpdateOne) Save(ctx context.Context) (*ChunkMastery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkMasteryUpdateOne) SaveX(ctx context.Context) *ChunkMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChunkMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChunkMasteryUpdateOne) sqlSave(ctx context.Context) (_node *ChunkMastery, err error) {
	_spec := sqlgraph.NewUpdateSpec(chunkmastery.Table, chunkmastery.Columns, sqlgraph.NewFieldSpec(chunkmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChunkMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chunkmastery.FieldID)
		for _, f := range fields {
			if !chunkmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chunkmastery.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chunkmastery.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ChunkID(); ok {
		_spec.SetField(chunkmastery.FieldChunkID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(chunkmastery.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(chunkmastery.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(chunkmastery.FieldMasteryScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedSession(); ok {
		_spec.SetField(chunkmastery.FieldLastReviewedSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastReviewedSession(); ok {
		_spec.AddField(chunkmastery.FieldLastReviewedSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastFullReviewAt(); ok {
		_spec.SetField(chunkmastery.FieldLastFullReviewAt, field.TypeTime, value)
	}
	if _u.mutation.LastFullReviewAtCleared() {
		_spec.ClearField(chunkmastery.FieldLastFullReviewAt, field.TypeTime)
	}
	_node = &ChunkMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunkmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
