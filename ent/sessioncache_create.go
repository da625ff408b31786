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
	"github.com/astiages123/auditpath/ent/schema"
	"github.com/astiages123/auditpath/ent/sessioncache"
	"github.com/google/uuid"
)

// SessionCacheCreate is the builder for creating a SessionCache entity.
type SessionCacheCreate struct {
	config
	mutation *SessionCacheMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *SessionCacheCreate) SetUserID(v uuid.UUID) *SessionCacheCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *SessionCacheCreate) SetCourseID(v uuid.UUID) *SessionCacheCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionCacheCreate) SetSessionID(v string) *SessionCacheCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSessionNumber sets the "session_number" field.
func (_c *SessionCacheCreate) SetSessionNumber(v int) *SessionCacheCreate {
	_c.mutation.SetSessionNumber(v)
	return _c
}

// SetReviewIndex sets the "review_index" field.
func (_c *SessionCacheCreate) SetReviewIndex(v int) *SessionCacheCreate {
	_c.mutation.SetReviewIndex(v)
	return _c
}

// SetNillableReviewIndex sets the "review_index" field if the given value is not nil.
func (_c *SessionCacheCreate) SetNillableReviewIndex(v *int) *SessionCacheCreate {
	if v != nil {
		_c.SetReviewIndex(*v)
	}
	return _c
}

// SetQueue sets the "queue" field.
func (_c *SessionCacheCreate) SetQueue(v []schema.CachedItem) *SessionCacheCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *SessionCacheCreate) SetExpiresAt(v time.Time) *SessionCacheCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// Mutation returns the SessionCacheMutation object of the builder.
func (_c *SessionCacheCreate) Mutation() *SessionCacheMutation {
	return _c.mutation
}

// Save creates the SessionCache in the database.
func (_c *SessionCacheCreate) Save(ctx context.Context) (*SessionCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCacheCreate) SaveX(ctx context.Context) *SessionCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCacheCreate) defaults() {
	if _, ok := _c.mutation.ReviewIndex(); !ok {
		v := sessioncache.DefaultReviewIndex
		_c.mutation.SetReviewIndex(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCacheCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionCache.user_id"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "SessionCache.course_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionCache.session_id"`)}
	}
	if _, ok := _c.mutation.SessionNumber(); !ok {
		return &ValidationError{Name: "session_number", err: errors.New(`ent: missing required field "SessionCache.session_number"`)}
	}
	if _, ok := _c.mutation.ReviewIndex(); !ok {
		return &ValidationError{Name: "review_index", err: errors.New(`ent: missing required field "SessionCache.review_index"`)}
	}
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "SessionCache.queue"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "SessionCache.expires_at"`)}
	}
	return nil
}

func (_c *SessionCacheCreate) sqlSave(ctx context.Context) (*SessionCache, error) {
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

func (_c *SessionCacheCreate) createSpec() (*SessionCache, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessioncache.Table, sqlgraph.NewFieldSpec(sessioncache.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessioncache.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(sessioncache.FieldCourseID, field.TypeUUID, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessioncache.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SessionNumber(); ok {
		_spec.SetField(sessioncache.FieldSessionNumber, field.TypeInt, value)
		_node.SessionNumber = value
	}
	if value, ok := _c.mutation.ReviewIndex(); ok {
		_spec.SetField(sessioncache.FieldReviewIndex, field.TypeInt, value)
		_node.ReviewIndex = value
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(sessioncache.FieldQueue, field.TypeJSON, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(sessioncache.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionCache.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionCacheUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCacheCreate) OnConflict(opts ...sql.ConflictOption) *SessionCacheUpsertOne {
	_c.conflict = opts
	return &SessionCacheUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCacheCreate) OnConflictColumns(columns ...string) *SessionCacheUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionCacheUpsertOne{
		create: _c,
	}
}

type (
	// SessionCacheUpsertOne is the builder for "upsert"-ing
	//  one SessionCache node.
	SessionCacheUpsertOne struct {
		create *SessionCacheCreate
	}

	// SessionCacheUpsert is the "OnConflict" setter.
	SessionCacheUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *SessionCacheUpsert) SetUserID(v uuid.UUID) *SessionCacheUpsert {
	u.Set(sessioncache.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionCacheUpsert) UpdateUserID() *SessionCacheUpsert {
	u.SetExcluded(sessioncache.FieldUserID)
	return u
}

// SetCourseID sets the "course_id" field.
func (u *SessionCacheUpsert) SetCourseID(v uuid.UUID) *SessionCacheUpsert {
	u.Set(sessioncache.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *SessionCacheUpsert) UpdateCourseID() *SessionCacheUpsert {
	u.SetExcluded(sessioncache.FieldCourseID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionCacheUpsert) SetSessionID(v string) *SessionCacheUpsert {
	u.Set(sessioncache.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionCacheUpsert) UpdateSessionID() *SessionCacheUpsert {
	u.SetExcluded(sessioncache.FieldSessionID)
	return u
}

// SetSessionNumber sets the "session_number" field.
func (u *SessionCacheUpsert) SetSessionNumber(v int) *SessionCacheUpsert {
	u.Set(sessioncache.FieldSessionNumber, v)
	return u
}

// UpdateSessionNumber sets the "session_number" field to the value that was provided on create.
func (u *SessionCacheUpsert) UpdateSessionNumber() *SessionCacheUpsert {
	u.SetExcluded(sessioncache.FieldSessionNumber)
	return u
}

// AddSessionNumber adds v to the "session_number" field.
func (u *SessionCacheUpsert) AddSessionNumber(v int) *SessionCacheUpsert {
	u.Add(sessioncache.FieldSessionNumber, v)
	return u
}

// SetReviewIndex sets the "review_index" field.
func (u *SessionCacheUpsert) SetReviewIndex(v int) *SessionCacheUpsert {
	u.Set(sessioncache.FieldReviewIndex, v)
	return u
}

// UpdateReviewIndex sets the "review_index" field to the value that was provided on create.
func (u *SessionCacheUpsert) UpdateReviewIndex() *SessionCacheUpsert {
	u.SetExcluded(sessioncache.FieldReviewIndex)
	return u
}

// AddReviewIndex adds v to the "review_index" field.
func (u *SessionCacheUpsert) AddReviewIndex(v int) *SessionCacheUpsert {
	u.Add(sessioncache.FieldReviewIndex, v)
	return u
}

// SetQueue sets the "queue" field.
func (u *SessionCacheUpsert) SetQueue(v []schema.CachedItem) *SessionCacheUpsert {
	u.Set(sessioncache.FieldQueue, v)
	return u
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *SessionCacheUpsert) UpdateQueue() *SessionCacheUpsert {
	u.SetExcluded(sessioncache.FieldQueue)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *SessionCacheUpsert) SetExpiresAt(v time.Time) *SessionCacheUpsert {
	u.Set(sessioncache.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SessionCacheUpsert) UpdateExpiresAt() *SessionCacheUpsert {
	u.SetExcluded(sessioncache.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SessionCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionCacheUpsertOne) UpdateNewValues() *SessionCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionCache.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionCacheUpsertOne) Ignore() *SessionCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionCacheUpsertOne) DoNothing() *SessionCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCacheCreate.OnConflict
// documentation for more info.
func (u *SessionCacheUpsertOne) Update(set func(*SessionCacheUpsert)) *SessionCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionCacheUpsertOne) SetUserID(v uuid.UUID) *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionCacheUpsertOne) UpdateUserID() *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateUserID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *SessionCacheUpsertOne) SetCourseID(v uuid.UUID) *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *SessionCacheUpsertOne) UpdateCourseID() *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateCourseID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *SessionCacheUpsertOne) SetSessionID(v string) *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionCacheUpsertOne) UpdateSessionID() *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateSessionID()
	})
}

// SetSessionNumber sets the "session_number" field.
func (u *SessionCacheUpsertOne) SetSessionNumber(v int) *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetSessionNumber(v)
	})
}

// AddSessionNumber adds v to the "session_number" field.
func (u *SessionCacheUpsertOne) AddSessionNumber(v int) *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.AddSessionNumber(v)
	})
}

// UpdateSessionNumber sets the "session_number" field to the value that was provided on create.
func (u *SessionCacheUpsertOne) UpdateSessionNumber() *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateSessionNumber()
	})
}

// SetReviewIndex sets the "review_index" field.
func (u *SessionCacheUpsertOne) SetReviewIndex(v int) *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetReviewIndex(v)
	})
}

// AddReviewIndex adds v to the "review_index" field.
func (u *SessionCacheUpsertOne) AddReviewIndex(v int) *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.AddReviewIndex(v)
	})
}

// UpdateReviewIndex sets the "review_index" field to the value that was provided on create.
func (u *SessionCacheUpsertOne) UpdateReviewIndex() *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateReviewIndex()
	})
}

// SetQueue sets the "queue" field.
func (u *SessionCacheUpsertOne) SetQueue(v []schema.CachedItem) *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *SessionCacheUpsertOne) UpdateQueue() *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateQueue()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *SessionCacheUpsertOne) SetExpiresAt(v time.Time) *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SessionCacheUpsertOne) UpdateExpiresAt() *SessionCacheUpsertOne {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *SessionCacheUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCacheCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionCacheUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionCacheUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionCacheUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCacheCreateBulk is the builder for creating many SessionCache entities in bulk.
type SessionCacheCreateBulk struct {
	config
	err      error
	builders []*SessionCacheCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionCache entities in the database.
func (_c *SessionCacheCreateBulk) Save(ctx context.Context) ([]*SessionCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionCacheMutation)
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
func (_c *SessionCacheCreateBulk) SaveX(ctx context.Context) []*SessionCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionCache.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionCacheUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCacheCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionCacheUpsertBulk {
	_c.conflict = opts
	return &SessionCacheUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCacheCreateBulk) OnConflictColumns(columns ...string) *SessionCacheUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionCacheUpsertBulk{
		create: _c,
	}
}

// SessionCacheUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionCache nodes.
type SessionCacheUpsertBulk struct {
	create *SessionCacheCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionCacheUpsertBulk) UpdateNewValues() *SessionCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionCache.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionCacheUpsertBulk) Ignore() *SessionCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionCacheUpsertBulk) DoNothing() *SessionCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCacheCreateBulk.OnConflict
// documentation for more info.
func (u *SessionCacheUpsertBulk) Update(set func(*SessionCacheUpsert)) *SessionCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionCacheUpsertBulk) SetUserID(v uuid.UUID) *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionCacheUpsertBulk) UpdateUserID() *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateUserID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *SessionCacheUpsertBulk) SetCourseID(v uuid.UUID) *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *SessionCacheUpsertBulk) UpdateCourseID() *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateCourseID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *SessionCacheUpsertBulk) SetSessionID(v string) *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionCacheUpsertBulk) UpdateSessionID() *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateSessionID()
	})
}

// SetSessionNumber sets the "session_number" field.
func (u *SessionCacheUpsertBulk) SetSessionNumber(v int) *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetSessionNumber(v)
	})
}

// AddSessionNumber adds v to the "session_number" field.
func (u *SessionCacheUpsertBulk) AddSessionNumber(v int) *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.AddSessionNumber(v)
	})
}

// UpdateSessionNumber sets the "session_number" field to the value that was provided on create.
func (u *SessionCacheUpsertBulk) UpdateSessionNumber() *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateSessionNumber()
	})
}

// SetReviewIndex sets the "review_index" field.
func (u *SessionCacheUpsertBulk) SetReviewIndex(v int) *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetReviewIndex(v)
	})
}

// AddReviewIndex adds v to the "review_index" field.
func (u *SessionCacheUpsertBulk) AddReviewIndex(v int) *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.AddReviewIndex(v)
	})
}

// UpdateReviewIndex sets the "review_index" field to the value that was provided on create.
func (u *SessionCacheUpsertBulk) UpdateReviewIndex() *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateReviewIndex()
	})
}

// SetQueue sets the "queue" field.
func (u *SessionCacheUpsertBulk) SetQueue(v []schema.CachedItem) *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *SessionCacheUpsertBulk) UpdateQueue() *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateQueue()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *SessionCacheUpsertBulk) SetExpiresAt(v time.Time) *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SessionCacheUpsertBulk) UpdateExpiresAt() *SessionCacheUpsertBulk {
	return u.Update(func(s *SessionCacheUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *SessionCacheUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionCacheCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCacheCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionCacheUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
