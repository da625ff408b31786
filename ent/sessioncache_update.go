// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/astiages123/auditpath/ent/schema"
	"github.com/astiages123/auditpath/ent/sessioncache"
	"github.com/google/uuid"
)

// SessionCacheUpdate is the builder for updating SessionCache entities.
type SessionCacheUpdate struct {
	config
	hooks    []Hook
	mutation *SessionCacheMutation
}

// Where appends a list predicates to the SessionCacheUpdate builder.
func (_u *SessionCacheUpdate) Where(ps ...predicate.SessionCache) *SessionCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionCacheUpdate) SetUserID(v uuid.UUID) *SessionCacheUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionCacheUpdate) SetNillableUserID(v *uuid.UUID) *SessionCacheUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *SessionCacheUpdate) SetCourseID(v uuid.UUID) *SessionCacheUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SessionCacheUpdate) SetNillableCourseID(v *uuid.UUID) *SessionCacheUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionCacheUpdate) SetSessionID(v string) *SessionCacheUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionCacheUpdate) SetNillableSessionID(v *string) *SessionCacheUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSessionNumber sets the "session_number" field.
func (_u *SessionCacheUpdate) SetSessionNumber(v int) *SessionCacheUpdate {
	_u.mutation.ResetSessionNumber()
	_u.mutation.SetSessionNumber(v)
	return _u
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (_u *SessionCacheUpdate) SetNillableSessionNumber(v *int) *SessionCacheUpdate {
	if v != nil {
		_u.SetSessionNumber(*v)
	}
	return _u
}

// AddSessionNumber adds value to the "session_number" field.
func (_u *SessionCacheUpdate) AddSessionNumber(v int) *SessionCacheUpdate {
	_u.mutation.AddSessionNumber(v)
	return _u
}

// SetReviewIndex sets the "review_index" field.
func (_u *SessionCacheUpdate) SetReviewIndex(v int) *SessionCacheUpdate {
	_u.mutation.ResetReviewIndex()
	_u.mutation.SetReviewIndex(v)
	return _u
}

// SetNillableReviewIndex sets the "review_index" field if the given value is not nil.
func (_u *SessionCacheUpdate) SetNillableReviewIndex(v *int) *SessionCacheUpdate {
	if v != nil {
		_u.SetReviewIndex(*v)
	}
	return _u
}

// AddReviewIndex adds value to the "review_index" field.
func (_u *SessionCacheUpdate) AddReviewIndex(v int) *SessionCacheUpdate {
	_u.mutation.AddReviewIndex(v)
	return _u
}

// SetQueue sets the "queue" field.
func (_u *SessionCacheUpdate) SetQueue(v []schema.CachedItem) *SessionCacheUpdate {
	_u.mutation.SetQueue(v)
	return _u
}

// AppendQueue appends value to the "queue" field.
func (_u *SessionCacheUpdate) AppendQueue(v []schema.CachedItem) *SessionCacheUpdate {
	_u.mutation.AppendQueue(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SessionCacheUpdate) SetExpiresAt(v time.Time) *SessionCacheUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SessionCacheUpdate) SetNillableExpiresAt(v *time.Time) *SessionCacheUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the SessionCacheMutation object of the builder.
func (_u *SessionCacheUpdate) Mutation() *SessionCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessioncache.Table, sessioncache.Columns, sqlgraph.NewFieldSpec(sessioncache.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessioncache.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(sessioncache.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessioncache.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionNumber(); ok {
		_spec.SetField(sessioncache.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionNumber(); ok {
		_spec.AddField(sessioncache.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewIndex(); ok {
		_spec.SetField(sessioncache.FieldReviewIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewIndex(); ok {
		_spec.AddField(sessioncache.FieldReviewIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(sessioncache.FieldQueue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQueue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessioncache.FieldQueue, value)
		})
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(sessioncache.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessioncache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionCacheUpdateOne is the builder for updating a single SessionCache entity.
type SessionCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionCacheMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionCacheUpdateOne) SetUserID(v uuid.UUID) *SessionCacheUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionCacheUpdateOne) SetNillableUserID(v *uuid.UUID) *SessionCacheUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *SessionCacheUpdateOne) SetCourseID(v uuid.UUID) *SessionCacheUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SessionCacheUpdateOne) SetNillableCourseID(v *uuid.UUID) *SessionCacheUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionCacheUpdateOne) SetSessionID(v string) *SessionCacheUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionCacheUpdateOne) SetNillableSessionID(v *string) *SessionCacheUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSessionNumber sets the "session_number" field.
func (_u *SessionCacheUpdateOne) SetSessionNumber(v int) *SessionCacheUpdateOne {
	_u.mutation.ResetSessionNumber()
	_u.mutation.SetSessionNumber(v)
	return _u
}

// SetNillableSessionNumber sets the "session_number" field if the given value is not nil.
func (_u *SessionCacheUpdateOne) SetNillableSessionNumber(v *int) *SessionCacheUpdateOne {
	if v != nil {
		_u.SetSessionNumber(*v)
	}
	return _u
}

// AddSessionNumber adds value to the "session_number" field.
func (_u *SessionCacheUpdateOne) AddSessionNumber(v int) *SessionCacheUpdateOne {
	_u.mutation.AddSessionNumber(v)
	return _u
}

// SetReviewIndex sets the "review_index" field.
func (_u *SessionCacheUpdateOne) SetReviewIndex(v int) *SessionCacheUpdateOne {
	_u.mutation.ResetReviewIndex()
	_u.mutation.SetReviewIndex(v)
	return _u
}

// SetNillableReviewIndex sets the "review_index" field if the given value is not nil.
func (_u *SessionCacheUpdateOne) SetNillableReviewIndex(v *int) *SessionCacheUpdateOne {
	if v != nil {
		_u.SetReviewIndex(*v)
	}
	return _u
}

// AddReviewIndex adds value to the "review_index" field.
func (_u *SessionCacheUpdateOne) AddReviewIndex(v int) *SessionCacheUpdateOne {
	_u.mutation.AddReviewIndex(v)
	return _u
}

// SetQueue sets the "queue" field.
func (_u *SessionCacheUpdateOne) SetQueue(v []schema.CachedItem) *SessionCacheUpdateOne {
	_u.mutation.SetQueue(v)
	return _u
}

// AppendQueue appends value to the "queue" field.
func (_u *SessionCacheUpdateOne) AppendQueue(v []schema.CachedItem) *SessionCacheUpdateOne {
	_u.mutation.AppendQueue(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SessionCacheUpdateOne) SetExpiresAt(v time.Time) *SessionCacheUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SessionCacheUpdateOne) SetNillableExpiresAt(v *time.Time) *SessionCacheUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the SessionCacheMutation object of the builder.
func (_u *SessionCacheUpdateOne) Mutation() *SessionCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionCacheUpdate builder.
func (_u *SessionCacheUpdateOne) Where(ps ...predicate.SessionCache) *SessionCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionCacheUpdateOne) Select(field string, fields ...string) *SessionCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionCache entity.
func (_u *SessionCacheUpdateOne) Save(ctx context.Context) (*SessionCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionCacheUpdateOne) SaveX(ctx context.Context) *SessionCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionCacheUpdateOne) sqlSave(ctx context.Context) (_node *SessionCache, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessioncache.Table, sessioncache.Columns, sqlgraph.NewFieldSpec(sessioncache.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessioncache.FieldID)
		for _, f := range fields {
			if !sessioncache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessioncache.FieldID {
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
		_spec.SetField(sessioncache.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(sessioncache.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessioncache.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionNumber(); ok {
		_spec.SetField(sessioncache.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionNumber(); ok {
		_spec.AddField(sessioncache.FieldSessionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewIndex(); ok {
		_spec.SetField(sessioncache.FieldReviewIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewIndex(); ok {
		_spec.AddField(sessioncache.FieldReviewIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(sessioncache.FieldQueue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQueue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessioncache.FieldQueue, value)
		})
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(sessioncache.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &SessionCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessioncache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
