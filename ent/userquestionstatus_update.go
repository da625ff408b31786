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
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/astiages123/auditpath/ent/userquestionstatus"
	"github.com/google/uuid"
)

// UserQuestionStatusUpdate is the builder for updating UserQuestionStatus entities.
type UserQuestionStatusUpdate struct {
	config
	hooks    []Hook
	mutation *UserQuestionStatusMutation
}

// Where appends a list predicates to the UserQuestionStatusUpdate builder.
func (_u *UserQuestionStatusUpdate) Where(ps ...predicate.UserQuestionStatus) *UserQuestionStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserQuestionStatusUpdate) SetUserID(v uuid.UUID) *UserQuestionStatusUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserQuestionStatusUpdate) SetNillableUserID(v *uuid.UUID) *UserQuestionStatusUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *UserQuestionStatusUpdate) SetQuestionID(v uuid.UUID) *UserQuestionStatusUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *UserQuestionStatusUpdate) SetNillableQuestionID(v *uuid.UUID) *UserQuestionStatusUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *UserQuestionStatusUpdate) SetCourseID(v uuid.UUID) *UserQuestionStatusUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *UserQuestionStatusUpdate) SetNillableCourseID(v *uuid.UUID) *UserQuestionStatusUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserQuestionStatusUpdate) SetStatus(v string) *UserQuestionStatusUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserQuestionStatusUpdate) SetNillableStatus(v *string) *UserQuestionStatusUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSuccessStreak sets the "success_streak" field.
func (_u *UserQuestionStatusUpdate) SetSuccessStreak(v int) *UserQuestionStatusUpdate {
	_u.mutation.ResetSuccessStreak()
	_u.mutation.SetSuccessStreak(v)
	return _u
}

// SetNillableSuccessStreak sets the "success_streak" field if the given value is not nil.
func (_u *UserQuestionStatusUpdate) SetNillableSuccessStreak(v *int) *UserQuestionStatusUpdate {
	if v != nil {
		_u.SetSuccessStreak(*v)
	}
	return _u
}

// AddSuccessStreak adds value to the "success_streak" field.
func (_u *UserQuestionStatusUpdate) AddSuccessStreak(v int) *UserQuestionStatusUpdate {
	_u.mutation.AddSuccessStreak(v)
	return _u
}

// SetFailStreak sets the "fail_streak" field.
func (_u *UserQuestionStatusUpdate) SetFailStreak(v int) *UserQuestionStatusUpdate {
	_u.mutation.ResetFailStreak()
	_u.mutation.SetFailStreak(v)
	return _u
}

// SetNillableFailStreak sets the "fail_streak" field if the given value is not nil.
func (_u *UserQuestionStatusUpdate) SetNillableFailStreak(v *int) *UserQuestionStatusUpdate {
	if v != nil {
		_u.SetFailStreak(*v)
	}
	return _u
}

// AddFailStreak adds value to the "fail_streak" field.
func (_u *UserQuestionStatusUpdate) AddFailStreak(v int) *UserQuestionStatusUpdate {
	_u.mutation.AddFailStreak(v)
	return _u
}

// SetNextReviewSession sets the "next_review_session" field.
func (_u *UserQuestionStatusUpdate) SetNextReviewSession(v int) *UserQuestionStatusUpdate {
	_u.mutation.ResetNextReviewSession()
	_u.mutation.SetNextReviewSession(v)
	return _u
}

// SetNillableNextReviewSession sets the "next_review_session" field if the given value is not nil.
func (_u *UserQuestionStatusUpdate) SetNillableNextReviewSession(v *int) *UserQuestionStatusUpdate {
	if v != nil {
		_u.SetNextReviewSession(*v)
	}
	return _u
}

// AddNextReviewSession adds value to the "next_review_session" field.
func (_u *UserQuestionStatusUpdate) AddNextReviewSession(v int) *UserQuestionStatusUpdate {
	_u.mutation.AddNextReviewSession(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserQuestionStatusUpdate) SetUpdatedAt(v time.Time) *UserQuestionStatusUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserQuestionStatusMutation object of the builder.
func (_u *UserQuestionStatusUpdate) Mutation() *UserQuestionStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserQuestionStatusUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserQuestionStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserQuestionStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserQuestionStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserQuestionStatusUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userquestionstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserQuestionStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userquestionstatus.Table, userquestionstatus.Columns, sqlgraph.NewFieldSpec(userquestionstatus.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userquestionstatus.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(userquestionstatus.FieldQuestionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(userquestionstatus.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(userquestionstatus.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuccessStreak(); ok {
		_spec.SetField(userquestionstatus.FieldSuccessStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessStreak(); ok {
		_spec.AddField(userquestionstatus.FieldSuccessStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailStreak(); ok {
		_spec.SetField(userquestionstatus.FieldFailStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailStreak(); ok {
		_spec.AddField(userquestionstatus.FieldFailStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewSession(); ok {
		_spec.SetField(userquestionstatus.FieldNextReviewSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextReviewSession(); ok {
		_spec.AddField(userquestionstatus.FieldNextReviewSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userquestionstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userquestionstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserQuestionStatusUpdateOne is the builder for updating a single UserQuestionStatus entity.
type UserQuestionStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserQuestionStatusMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserQuestionStatusUpdateOne) SetUserID(v uuid.UUID) *UserQuestionStatusUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserQuestionStatusUpdateOne) SetNillableUserID(v *uuid.UUID) *UserQuestionStatusUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *UserQuestionStatusUpdateOne) SetQuestionID(v uuid.UUID) *UserQuestionStatusUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *UserQuestionStatusUpdateOne) SetNillableQuestionID(v *uuid.UUID) *UserQuestionStatusUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *UserQuestionStatusUpdateOne) SetCourseID(v uuid.UUID) *UserQuestionStatusUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *UserQuestionStatusUpdateOne) SetNillableCourseID(v *uuid.UUID) *UserQuestionStatusUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserQuestionStatusUpdateOne) SetStatus(v string) *UserQuestionStatusUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserQuestionStatusUpdateOne) SetNillableStatus(v *string) *UserQuestionStatusUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSuccessStreak sets the "success_streak" field.
func (_u *UserQuestionStatusUpdateOne) SetSuccessStreak(v int) *UserQuestionStatusUpdateOne {
	_u.mutation.ResetSuccessStreak()
	_u.mutation.SetSuccessStreak(v)
	return _u
}

// SetNillableSuccessStreak sets the "success_streak" field if the given value is not nil.
func (_u *UserQuestionStatusUpdateOne) SetNillableSuccessStreak(v *int) *UserQuestionStatusUpdateOne {
	if v != nil {
		_u.SetSuccessStreak(*v)
	}
	return _u
}

// AddSuccessStreak adds value to the "success_streak" field.
func (_u *UserQuestionStatusUpdateOne) AddSuccessStreak(v int) *UserQuestionStatusUpdateOne {
	_u.mutation.AddSuccessStreak(v)
	return _u
}

// SetFailStreak sets the "fail_streak" field.
func (_u *UserQuestionStatusUpdateOne) SetFailStreak(v int) *UserQuestionStatusUpdateOne {
	_u.mutation.ResetFailStreak()
	_u.mutation.SetFailStreak(v)
	return _u
}

// SetNillableFailStreak sets the "fail_streak" field if the given value is not nil.
func (_u *UserQuestionStatusUpdateOne) SetNillableFailStreak(v *int) *UserQuestionStatusUpdateOne {
	if v != nil {
		_u.SetFailStreak(*v)
	}
	return _u
}

// AddFailStreak adds value to the "fail_streak" field.
func (_u *UserQuestionStatusUpdateOne) AddFailStreak(v int) *UserQuestionStatusUpdateOne {
	_u.mutation.AddFailStreak(v)
	return _u
}

// SetNextReviewSession sets the "next_review_session" field.
func (_u *UserQuestionStatusUpdateOne) SetNextReviewSession(v int) *UserQuestionStatusUpdateOne {
	_u.mutation.ResetNextReviewSession()
	_u.mutation.SetNextReviewSession(v)
	return _u
}

// SetNillableNextReviewSession sets the "next_review_session" field if the given value is not nil.
func (_u *UserQuestionStatusUpdateOne) SetNillableNextReviewSession(v *int) *UserQuestionStatusUpdateOne {
	if v != nil {
		_u.SetNextReviewSession(*v)
	}
	return _u
}

// AddNextReviewSession adds value to the "next_review_session" field.
func (_u *UserQuestionStatusUpdateOne) AddNextReviewSession(v int) *UserQuestionStatusUpdateOne {
	_u.mutation.AddNextReviewSession(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserQuestionStatusUpdateOne) SetUpdatedAt(v time.Time) *UserQuestionStatusUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserQuestionStatusMutation object of the builder.
func (_u *UserQuestionStatusUpdateOne) Mutation() *UserQuestionStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserQuestionStatusUpdate builder.
func (_u *UserQuestionStatusUpdateOne) Where(ps ...predicate.UserQuestionStatus) *UserQuestionStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserQuestionStatusUpdateOne) Select(field string, fields ...string) *UserQuestionStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserQuestionStatus entity.
func (_u *UserQuestionStatusUpdateOne) Save(ctx context.Context) (*UserQuestionStatus, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserQuestionStatusUpdateOne) SaveX(ctx context.Context) *UserQuestionStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserQuestionStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserQuestionStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserQuestionStatusUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userquestionstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserQuestionStatusUpdateOne) sqlSave(ctx context.Context) (_node *UserQuestionStatus, err error) {
	_spec := sqlgraph.NewUpdateSpec(userquestionstatus.Table, userquestionstatus.Columns, sqlgraph.NewFieldSpec(userquestionstatus.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserQuestionStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userquestionstatus.FieldID)
		for _, f := range fields {
			if !userquestionstatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userquestionstatus.FieldID {
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
		_spec.SetField(userquestionstatus.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(userquestionstatus.FieldQuestionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(userquestionstatus.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(userquestionstatus.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuccessStreak(); ok {
		_spec.SetField(userquestionstatus.FieldSuccessStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessStreak(); ok {
		_spec.AddField(userquestionstatus.FieldSuccessStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailStreak(); ok {
		_spec.SetField(userquestionstatus.FieldFailStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailStreak(); ok {
		_spec.AddField(userquestionstatus.FieldFailStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewSession(); ok {
		_spec.SetField(userquestionstatus.FieldNextReviewSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextReviewSession(); ok {
		_spec.AddField(userquestionstatus.FieldNextReviewSession, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userquestionstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserQuestionStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userquestionstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
