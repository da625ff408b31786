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
	"github.com/astiages123/auditpath/ent/userquestionstatus"
	"github.com/google/uuid"
)

// UserQuestionStatusCreate is the builder for creating a UserQuestionStatus entity.
type UserQuestionStatusCreate struct {
	config
	mutation *UserQuestionStatusMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserQuestionStatusCreate) SetUserID(v uuid.UUID) *UserQuestionStatusCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *UserQuestionStatusCreate) SetQuestionID(v uuid.UUID) *UserQuestionStatusCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *UserQuestionStatusCreate) SetCourseID(v uuid.UUID) *UserQuestionStatusCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UserQuestionStatusCreate) SetStatus(v string) *UserQuestionStatusCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UserQuestionStatusCreate) SetNillableStatus(v *string) *UserQuestionStatusCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSuccessStreak sets the "success_streak" field.
func (_c *UserQuestionStatusCreate) SetSuccessStreak(v int) *UserQuestionStatusCreate {
	_c.mutation.SetSuccessStreak(v)
	return _c
}

// SetNillableSuccessStreak sets the "success_streak" field if the given value is not nil.
func (_c *UserQuestionStatusCreate) SetNillableSuccessStreak(v *int) *UserQuestionStatusCreate {
	if v != nil {
		_c.SetSuccessStreak(*v)
	}
	return _c
}

// SetFailStreak sets the "fail_streak" field.
func (_c *UserQuestionStatusCreate) SetFailStreak(v int) *UserQuestionStatusCreate {
	_c.mutation.SetFailStreak(v)
	return _c
}

// SetNillableFailStreak sets the "fail_streak" field if the given value is not nil.
func (_c *UserQuestionStatusCreate) SetNillableFailStreak(v *int) *UserQuestionStatusCreate {
	if v != nil {
		_c.SetFailStreak(*v)
	}
	return _c
}

// SetNextReviewSession sets the "next_review_session" field.
func (_c *UserQuestionStatusCreate) SetNextReviewSession(v int) *UserQuestionStatusCreate {
	_c.mutation.SetNextReviewSession(v)
	return _c
}

// SetNillableNextReviewSession sets the "next_review_session" field if the given value is not nil.
func (_c *UserQuestionStatusCreate) SetNillableNextReviewSession(v *int) *UserQuestionStatusCreate {
	if v != nil {
		_c.SetNextReviewSession(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserQuestionStatusCreate) SetUpdatedAt(v time.Time) *UserQuestionStatusCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserQuestionStatusCreate) SetNillableUpdatedAt(v *time.Time) *UserQuestionStatusCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the UserQuestionStatusMutation object of the builder.
func (_c *UserQuestionStatusCreate) Mutation() *UserQuestionStatusMutation {
	return _c.mutation
}

// Save creates the UserQuestionStatus in the database.
func (_c *UserQuestionStatusCreate) Save(ctx context.Context) (*UserQuestionStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserQuestionStatusCreate) SaveX(ctx context.Context) *UserQuestionStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserQuestionStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserQuestionStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserQuestionStatusCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := userquestionstatus.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SuccessStreak(); !ok {
		v := userquestionstatus.DefaultSuccessStreak
		_c.mutation.SetSuccessStreak(v)
	}
	if _, ok := _c.mutation.FailStreak(); !ok {
		v := userquestionstatus.DefaultFailStreak
		_c.mutation.SetFailStreak(v)
	}
	if _, ok := _c.mutation.NextReviewSession(); !ok {
		v := userquestionstatus.DefaultNextReviewSession
		_c.mutation.SetNextReviewSession(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userquestionstatus.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserQuestionStatusCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserQuestionStatus.user_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "UserQuestionStatus.question_id"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "UserQuestionStatus.course_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UserQuestionStatus.status"`)}
	}
	if _, ok := _c.mutation.SuccessStreak(); !ok {
		return &ValidationError{Name: "success_streak", err: errors.New(`ent: missing required field "UserQuestionStatus.success_streak"`)}
	}
	if _, ok := _c.mutation.FailStreak(); !ok {
		return &ValidationError{Name: "fail_streak", err: errors.New(`ent: missing required field "UserQuestionStatus.fail_streak"`)}
	}
	if _, ok := _c.mutation.NextReviewSession(); !ok {
		return &ValidationError{Name: "next_review_session", err: errors.New(`ent: missing required field "UserQuestionStatus.next_review_session"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserQuestionStatus.updated_at"`)}
	}
	return nil
}

func (_c *UserQuestionStatusCreate) sqlSave(ctx context.Context) (*UserQuestionStatus, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserQuestionStatusCreate) createSpec() (*UserQuestionStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &UserQuestionStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userquestionstatus.Table, sqlgraph.NewFieldSpec(userquestionstatus.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userquestionstatus.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(userquestionstatus.FieldQuestionID, field.TypeUUID, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(userquestionstatus.FieldCourseID, field.TypeUUID, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(userquestionstatus.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SuccessStreak(); ok {
		_spec.SetField(userquestionstatus.FieldSuccessStreak, field.TypeInt, value)
		_node.SuccessStreak = value
	}
	if value, ok := _c.mutation.FailStreak(); ok {
		_spec.SetField(userquestionstatus.FieldFailStreak, field.TypeInt, value)
		_node.FailStreak = value
	}
	if value, ok := _c.mutation.NextReviewSession(); ok {
		_spec.SetField(userquestionstatus.FieldNextReviewSession, field.TypeInt, value)
		_node.NextReviewSession = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userquestionstatus.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserQuestionStatus.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserQuestionStatusUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserQuestionStatusCreate) OnConflict(opts ...sql.ConflictOption) *UserQuestionStatusUpsertOne {
	_c.conflict = opts
	return &UserQuestionStatusUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserQuestionStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserQuestionStatusCreate) OnConflictColumns(columns ...string) *UserQuestionStatusUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserQuestionStatusUpsertOne{
		create: _c,
	}
}

type (
	// UserQuestionStatusUpsertOne is the builder for "upsert"-ing
	//  one UserQuestionStatus node.
	UserQuestionStatusUpsertOne struct {
		create *UserQuestionStatusCreate
	}

	// UserQuestionStatusUpsert is the "OnConflict" setter.
	UserQuestionStatusUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UserQuestionStatusUpsert) SetUserID(v uuid.UUID) *UserQuestionStatusUpsert {
	u.Set(userquestionstatus.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserQuestionStatusUpsert) UpdateUserID() *UserQuestionStatusUpsert {
	u.SetExcluded(userquestionstatus.FieldUserID)
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *UserQuestionStatusUpsert) SetQuestionID(v uuid.UUID) *UserQuestionStatusUpsert {
	u.Set(userquestionstatus.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *UserQuestionStatusUpsert) UpdateQuestionID() *UserQuestionStatusUpsert {
	u.SetExcluded(userquestionstatus.FieldQuestionID)
	return u
}

// SetCourseID sets the "course_id" field.
func (u *UserQuestionStatusUpsert) SetCourseID(v uuid.UUID) *UserQuestionStatusUpsert {
	u.Set(userquestionstatus.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *UserQuestionStatusUpsert) UpdateCourseID() *UserQuestionStatusUpsert {
	u.SetExcluded(userquestionstatus.FieldCourseID)
	return u
}

// SetStatus sets the "status" field.
func (u *UserQuestionStatusUpsert) SetStatus(v string) *UserQuestionStatusUpsert {
	u.Set(userquestionstatus.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UserQuestionStatusUpsert) UpdateStatus() *UserQuestionStatusUpsert {
	u.SetExcluded(userquestionstatus.FieldStatus)
	return u
}

// SetSuccessStreak sets the "success_streak" field.
func (u *UserQuestionStatusUpsert) SetSuccessStreak(v int) *UserQuestionStatusUpsert {
	u.Set(userquestionstatus.FieldSuccessStreak, v)
	return u
}

// UpdateSuccessStreak sets the "success_streak" field to the value that was provided on create.
func (u *UserQuestionStatusUpsert) UpdateSuccessStreak() *UserQuestionStatusUpsert {
	u.SetExcluded(userquestionstatus.FieldSuccessStreak)
	return u
}

// AddSuccessStreak adds v to the "success_streak" field.
func (u *UserQuestionStatusUpsert) AddSuccessStreak(v int) *UserQuestionStatusUpsert {
	u.Add(userquestionstatus.FieldSuccessStreak, v)
	return u
}

// SetFailStreak sets the "fail_streak" field.
func (u *UserQuestionStatusUpsert) SetFailStreak(v int) *UserQuestionStatusUpsert {
	u.Set(userquestionstatus.FieldFailStreak, v)
	return u
}

// UpdateFailStreak sets the "fail_streak" field to the value that was provided on create.
func (u *UserQuestionStatusUpsert) UpdateFailStreak() *UserQuestionStatusUpsert {
	u.SetExcluded(userquestionstatus.FieldFailStreak)
	return u
}

// AddFailStreak adds v to the "fail_streak" field.
func (u *UserQuestionStatusUpsert) AddFailStreak(v int) *UserQuestionStatusUpsert {
	u.Add(userquestionstatus.FieldFailStreak, v)
	return u
}

// SetNextReviewSession sets the "next_review_session" field.
func (u *UserQuestionStatusUpsert) SetNextReviewSession(v int) *UserQuestionStatusUpsert {
	u.Set(userquestionstatus.FieldNextReviewSession, v)
	return u
}

// UpdateNextReviewSession sets the "next_review_session" field to the value that was provided on create.
func (u *UserQuestionStatusUpsert) UpdateNextReviewSession() *UserQuestionStatusUpsert {
	u.SetExcluded(userquestionstatus.FieldNextReviewSession)
	return u
}

// AddNextReviewSession adds v to the "next_review_session" field.
func (u *UserQuestionStatusUpsert) AddNextReviewSession(v int) *UserQuestionStatusUpsert {
	u.Add(userquestionstatus.FieldNextReviewSession, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserQuestionStatusUpsert) SetUpdatedAt(v time.Time) *UserQuestionStatusUpsert {
	u.Set(userquestionstatus.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserQuestionStatusUpsert) UpdateUpdatedAt() *UserQuestionStatusUpsert {
	u.SetExcluded(userquestionstatus.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UserQuestionStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserQuestionStatusUpsertOne) UpdateNewValues() *UserQuestionStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserQuestionStatus.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserQuestionStatusUpsertOne) Ignore() *UserQuestionStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserQuestionStatusUpsertOne) DoNothing() *UserQuestionStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserQuestionStatusCreate.OnConflict
// documentation for more info.
func (u *UserQuestionStatusUpsertOne) Update(set func(*UserQuestionStatusUpsert)) *UserQuestionStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserQuestionStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserQuestionStatusUpsertOne) SetUserID(v uuid.UUID) *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertOne) UpdateUserID() *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *UserQuestionStatusUpsertOne) SetQuestionID(v uuid.UUID) *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertOne) UpdateQuestionID() *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateQuestionID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *UserQuestionStatusUpsertOne) SetCourseID(v uuid.UUID) *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertOne) UpdateCourseID() *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateCourseID()
	})
}

// SetStatus sets the "status" field.
func (u *UserQuestionStatusUpsertOne) SetStatus(v string) *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertOne) UpdateStatus() *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateStatus()
	})
}

// SetSuccessStreak sets the "success_streak" field.
func (u *UserQuestionStatusUpsertOne) SetSuccessStreak(v int) *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetSuccessStreak(v)
	})
}

// AddSuccessStreak adds v to the "success_streak" field.
func (u *UserQuestionStatusUpsertOne) AddSuccessStreak(v int) *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.AddSuccessStreak(v)
	})
}

// UpdateSuccessStreak sets the "success_streak" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertOne) UpdateSuccessStreak() *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateSuccessStreak()
	})
}

// SetFailStreak sets the "fail_streak" field.
func (u *UserQuestionStatusUpsertOne) SetFailStreak(v int) *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetFailStreak(v)
	})
}

// AddFailStreak adds v to the "fail_streak" field.
func (u *UserQuestionStatusUpsertOne) AddFailStreak(v int) *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.AddFailStreak(v)
	})
}

// UpdateFailStreak sets the "fail_streak" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertOne) UpdateFailStreak() *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateFailStreak()
	})
}

// SetNextReviewSession sets the "next_review_session" field.
func (u *UserQuestionStatusUpsertOne) SetNextReviewSession(v int) *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetNextReviewSession(v)
	})
}

// AddNextReviewSession adds v to the "next_review_session" field.
func (u *UserQuestionStatusUpsertOne) AddNextReviewSession(v int) *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.AddNextReviewSession(v)
	})
}

// UpdateNextReviewSession sets the "next_review_session" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertOne) UpdateNextReviewSession() *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateNextReviewSession()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserQuestionStatusUpsertOne) SetUpdatedAt(v time.Time) *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertOne) UpdateUpdatedAt() *UserQuestionStatusUpsertOne {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserQuestionStatusUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserQuestionStatusCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserQuestionStatusUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserQuestionStatusUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserQuestionStatusUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserQuestionStatusCreateBulk is the builder for creating many UserQuestionStatus entities in bulk.
type UserQuestionStatusCreateBulk struct {
	config
	err      error
	builders []*UserQuestionStatusCreate
	conflict []sql.ConflictOption
}

// Save creates the UserQuestionStatus entities in the database.
func (_c *UserQuestionStatusCreateBulk) Save(ctx context.Context) ([]*UserQuestionStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserQuestionStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserQuestionStatusMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *UserQuestionStatusCreateBulk) SaveX(ctx context.Context) []*UserQuestionStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserQuestionStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserQuestionStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserQuestionStatus.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserQuestionStatusUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserQuestionStatusCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserQuestionStatusUpsertBulk {
	_c.conflict = opts
	return &UserQuestionStatusUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserQuestionStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserQuestionStatusCreateBulk) OnConflictColumns(columns ...string) *UserQuestionStatusUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserQuestionStatusUpsertBulk{
		create: _c,
	}
}

// UserQuestionStatusUpsertBulk is the builder for "upsert"-ing
// a bulk of UserQuestionStatus nodes.
type UserQuestionStatusUpsertBulk struct {
	create *UserQuestionStatusCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserQuestionStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserQuestionStatusUpsertBulk) UpdateNewValues() *UserQuestionStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserQuestionStatus.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserQuestionStatusUpsertBulk) Ignore() *UserQuestionStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserQuestionStatusUpsertBulk) DoNothing() *UserQuestionStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserQuestionStatusCreateBulk.OnConflict
// documentation for more info.
func (u *UserQuestionStatusUpsertBulk) Update(set func(*UserQuestionStatusUpsert)) *UserQuestionStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserQuestionStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserQuestionStatusUpsertBulk) SetUserID(v uuid.UUID) *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertBulk) UpdateUserID() *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *UserQuestionStatusUpsertBulk) SetQuestionID(v uuid.UUID) *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertBulk) UpdateQuestionID() *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateQuestionID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *UserQuestionStatusUpsertBulk) SetCourseID(v uuid.UUID) *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertBulk) UpdateCourseID() *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateCourseID()
	})
}

// SetStatus sets the "status" field.
func (u *UserQuestionStatusUpsertBulk) SetStatus(v string) *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertBulk) UpdateStatus() *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateStatus()
	})
}

// SetSuccessStreak sets the "success_streak" field.
func (u *UserQuestionStatusUpsertBulk) SetSuccessStreak(v int) *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetSuccessStreak(v)
	})
}

// AddSuccessStreak adds v to the "success_streak" field.
func (u *UserQuestionStatusUpsertBulk) AddSuccessStreak(v int) *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.AddSuccessStreak(v)
	})
}

// UpdateSuccessStreak sets the "success_streak" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertBulk) UpdateSuccessStreak() *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateSuccessStreak()
	})
}

// SetFailStreak sets the "fail_streak" field.
func (u *UserQuestionStatusUpsertBulk) SetFailStreak(v int) *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetFailStreak(v)
	})
}

// AddFailStreak adds v to the "fail_streak" field.
func (u *UserQuestionStatusUpsertBulk) AddFailStreak(v int) *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.AddFailStreak(v)
	})
}

// UpdateFailStreak sets the "fail_streak" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertBulk) UpdateFailStreak() *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateFailStreak()
	})
}

// SetNextReviewSession sets the "next_review_session" field.
func (u *UserQuestionStatusUpsertBulk) SetNextReviewSession(v int) *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetNextReviewSession(v)
	})
}

// AddNextReviewSession adds v to the "next_review_session" field.
func (u *UserQuestionStatusUpsertBulk) AddNextReviewSession(v int) *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.AddNextReviewSession(v)
	})
}

// UpdateNextReviewSession sets the "next_review_session" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertBulk) UpdateNextReviewSession() *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateNextReviewSession()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserQuestionStatusUpsertBulk) SetUpdatedAt(v time.Time) *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserQuestionStatusUpsertBulk) UpdateUpdatedAt() *UserQuestionStatusUpsertBulk {
	return u.Update(func(s *UserQuestionStatusUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserQuestionStatusUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserQuestionStatusCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserQuestionStatusCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserQuestionStatusUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
