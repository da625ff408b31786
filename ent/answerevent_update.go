// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/astiages123/auditpath/ent/answerevent"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/google/uuid"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnswerEventUpdate) SetUserID(v uuid.UUID) *AnswerEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableUserID(v *uuid.UUID) *AnswerEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v uuid.UUID) *AnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *uuid.UUID) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetChunkID sets the "chunk_id" field.
func (_u *AnswerEventUpdate) SetChunkID(v uuid.UUID) *AnswerEventUpdate {
	_u.mutation.SetChunkID(v)
	return _u
}

// SetNillableChunkID sets the "chunk_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableChunkID(v *uuid.UUID) *AnswerEventUpdate {
	if v != nil {
		_u.SetChunkID(*v)
	}
	return _u
}

// ClearChunkID clears the value of the "chunk_id" field.
func (_u *AnswerEventUpdate) ClearChunkID() *AnswerEventUpdate {
	_u.mutation.ClearChunkID()
	return _u
}

// SetSessionNumber sets the "session_number" field.
func (_u *AnswerEventUpdate) SetSessionNumber(v int) *AnswerEventUpdate {
	_u.mutation.ResetSessionNumber()
	_u.mutation.SetSessionNumber(v)
	return _u
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionNumber(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionNumber(*v)
	}
	return _u
}

// AddSessionNumber adds value to the "session_number" field.
func (_u *AnswerEventUpdate) AddSessionNumber(v int) *AnswerEventUpdate {
	_u.mutation.AddSessionNumber(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFast sets the "fast" field.
func (_u *AnswerEventUpdate) SetFast(v bool) *AnswerEventUpdate {
	_u.mutation.SetFast(v)
	return _u
}

// SetNillableFast sets the "fast" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableFast(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetFast(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetStatusAfter sets the "status_after" field.
func (_u *AnswerEventUpdate) SetStatusAfter(v string) *AnswerEventUpdate {
	_u.mutation.SetStatusAfter(v)
	return _u
}

// SetNillableStatusAfter sets the "status_after" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStatusAfter(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetStatusAfter(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ChunkID(); ok {
		_spec.SetField(answerevent.FieldChunkID, field.TypeUUID, value)
	}
	if _u.mutation.ChunkIDCleared() {
		_spec.ClearField(answerevent.FieldChunkID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SessionNumber(); ok {
		_spec.SetField(answerevent.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionNumber(); ok {
		_spec.AddField(answerevent.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Fast(); ok {
		_spec.SetField(answerevent.FieldFast, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StatusAfter(); ok {
		_spec.SetField(answerevent.FieldStatusAfter, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AnswerEventUpdateOne) SetUserID(v uuid.UUID) *AnswerEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableUserID(v *uuid.UUID) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v uuid.UUID) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *uuid.UUID) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetChunkID sets the "chunk_id" field.
func (_u *AnswerEventUpdateOne) SetChunkID(v uuid.UUID) *AnswerEventUpdateOne {
	_u.mutation.SetChunkID(v)
	return _u
}

// SetNillableChunkID sets the "chunk_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableChunkID(v *uuid.UUID) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetChunkID(*v)
	}
	return _u
}

// ClearChunkID clears the value of the "chunk_id" field.
func (_u *AnswerEventUpdateOne) ClearChunkID() *AnswerEventUpdateOne {
	_u.mutation.ClearChunkID()
	return _u
}

// SetSessionNumber sets the "session_number" field.
func (_u *AnswerEventUpdateOne) SetSessionNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetSessionNumber()
	_u.mutation.SetSessionNumber(v)
	return _u
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionNumber(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionNumber(*v)
	}
	return _u
}

// AddSessionNumber adds value to the "session_number" field.
func (_u *AnswerEventUpdateOne) AddSessionNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.AddSessionNumber(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFast sets the "fast" field.
func (_u *AnswerEventUpdateOne) SetFast(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetFast(v)
	return _u
}

// SetNillableFast sets the "fast" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableFast(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetFast(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetStatusAfter sets the "status_after" field.
func (_u *AnswerEventUpdateOne) SetStatusAfter(v string) *AnswerEventUpdateOne {
	_u.mutation.SetStatusAfter(v)
	return _u
}

// SetNillableStatusAfter sets the "status_after" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStatusAfter(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStatusAfter(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ChunkID(); ok {
		_spec.SetField(answerevent.FieldChunkID, field.TypeUUID, value)
	}
	if _u.mutation.ChunkIDCleared() {
		_spec.ClearField(answerevent.FieldChunkID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SessionNumber(); ok {
		_spec.SetField(answerevent.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionNumber(); ok {
		_spec.AddField(answerevent.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Fast(); ok {
		_spec.SetField(answerevent.FieldFast, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StatusAfter(); ok {
		_spec.SetField(answerevent.FieldStatusAfter, field.TypeString, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
