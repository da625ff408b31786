// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/astiages123/auditpath/ent/sessioncounter"
	"github.com/google/uuid"
)

// SessionCounterUpdate is the builder for updating SessionCounter entities.
type SessionCounterUpdate struct {
	config
	hooks    []Hook
	mutation *SessionCounterMutation
}

// Where appends a list predicates to the SessionCounterUpdate builder.
func (_u *SessionCounterUpdate) Where(ps ...predicate.SessionCounter) *SessionCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionCounterUpdate) SetUserID(v uuid.UUID) *SessionCounterUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionCounterUpdate) SetNillableUserID(v *uuid.UUID) *SessionCounterUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *SessionCounterUpdate) SetCourseID(v uuid.UUID) *SessionCounterUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SessionCounterUpdate) SetNillableCourseID(v *uuid.UUID) *SessionCounterUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCurrentSession sets the "current_session" field.
func (_u *SessionCounterUpdate) SetCurrentSession(v int) *SessionCounterUpdate {
	_u.mutation.ResetCurrentSession()
	_u.mutation.SetCurrentSession(v)
	return _u
}

// SetNillableCurrentSession sets the "current_session" field if the given value is not nil.
func (_u *SessionCounterUpdate) SetNillableCurrentSession(v *int) *SessionCounterUpdate {
	if v != nil {
		_u.SetCurrentSession(*v)
	}
	return _u
}

// AddCurrentSession adds value to the "current_session" field.
func (_u *SessionCounterUpdate) AddCurrentSession(v int) *SessionCounterUpdate {
	_u.mutation.AddCurrentSession(v)
	return _u
}

// SetLastSessionDate sets the "last_session_date" field.
func (_u *SessionCounterUpdate) SetLastSessionDate(v string) *SessionCounterUpdate {
	_u.mutation.SetLastSessionDate(v)
	return _u
}

// SetNillableLastSessionDate sets the "last_session_date" field if the given value is not nil.
func (_u *SessionCounterUpdate) SetNillableLastSessionDate(v *string) *SessionCounterUpdate {
	if v != nil {
		_u.SetLastSessionDate(*v)
	}
	return _u
}

// Mutation returns the SessionCounterMutation object of the builder.
func (_u *SessionCounterUpdate) Mutation() *SessionCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionCounterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessioncounter.Table, sessioncounter.Columns, sqlgraph.NewFieldSpec(sessioncounter.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessioncounter.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(sessioncounter.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CurrentSession(); ok {
		_spec.SetField(sessioncounter.FieldCurrentSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentSession(); ok {
		_spec.AddField(sessioncounter.FieldCurrentSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSessionDate(); ok {
		_spec.SetField(sessioncounter.FieldLastSessionDate, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessioncounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionCounterUpdateOne is the builder for updating a single SessionCounter entity.
type SessionCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionCounterMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionCounterUpdateOne) SetUserID(v uuid.UUID) *SessionCounterUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionCounterUpdateOne) SetNillableUserID(v *uuid.UUID) *SessionCounterUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *SessionCounterUpdateOne) SetCourseID(v uuid.UUID) *SessionCounterUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SessionCounterUpdateOne) SetNillableCourseID(v *uuid.UUID) *SessionCounterUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCurrentSession sets the "current_session" field.
func (_u *SessionCounterUpdateOne) SetCurrentSession(v int) *SessionCounterUpdateOne {
	_u.mutation.ResetCurrentSession()
	_u.mutation.SetCurrentSession(v)
	return _u
}

// SetNillableCurrentSession sets the "current_session" field if the given value is not nil.
func (_u *SessionCounterUpdateOne) SetNillableCurrentSession(v *int) *SessionCounterUpdateOne {
	if v != nil {
		_u.SetCurrentSession(*v)
	}
	return _u
}

// AddCurrentSession adds value to the "current_session" field.
func (_u *SessionCounterUpdateOne) AddCurrentSession(v int) *SessionCounterUpdateOne {
	_u.mutation.AddCurrentSession(v)
	return _u
}

// SetLastSessionDate sets the "last_session_date" field.
func (_u *SessionCounterUpdateOne) SetLastSessionDate(v string) *SessionCounterUpdateOne {
	_u.mutation.SetLastSessionDate(v)
	return _u
}

// SetNillableLastSessionDate sets the "last_session_date" field if the given value is not nil.
func (_u *SessionCounterUpdateOne) SetNillableLastSessionDate(v *string) *SessionCounterUpdateOne {
	if v != nil {
		_u.SetLastSessionDate(*v)
	}
	return _u
}

// Mutation returns the SessionCounterMutation object of the builder.
func (_u *SessionCounterUpdateOne) Mutation() *SessionCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionCounterUpdate builder.
func (_u *SessionCounterUpdateOne) Where(ps ...predicate.SessionCounter) *SessionCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionCounterUpdateOne) Select(field string, fields ...string) *SessionCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionCounter entity.
func (_u *SessionCounterUpdateOne) Save(ctx context.Context) (*SessionCounter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionCounterUpdateOne) SaveX(ctx context.Context) *SessionCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionCounterUpdateOne) sqlSave(ctx context.Context) (_node *SessionCounter, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessioncounter.Table, sessioncounter.Columns, sqlgraph.NewFieldSpec(sessioncounter.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessioncounter.FieldID)
		for _, f := range fields {
			if !sessioncounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessioncounter.FieldID {
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
		_spec.SetField(sessioncounter.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(sessioncounter.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CurrentSession(); ok {
		_spec.SetField(sessioncounter.FieldCurrentSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentSession(); ok {
		_spec.AddField(sessioncounter.FieldCurrentSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSessionDate(); ok {
		_spec.SetField(sessioncounter.FieldLastSessionDate, field.TypeString, value)
	}
	_node = &SessionCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessioncounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
