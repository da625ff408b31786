// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/astiages123/auditpath/ent/sessioncounter"
	"github.com/google/uuid"
)

// SessionCounterCreate is the builder for creating a SessionCounter entity.
type SessionCounterCreate struct {
	config
	mutation *SessionCounterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *SessionCounterCreate) SetUserID(v uuid.UUID) *SessionCounterCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *SessionCounterCreate) SetCourseID(v uuid.UUID) *SessionCounterCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetCurrentSession sets the "current_session" field.
func (_c *SessionCounterCreate) SetCurrentSession(v int) *SessionCounterCreate {
	_c.mutation.SetCurrentSession(v)
	return _c
}

// SetNillableCurrentSession sets the "current_session" field if the given value is not nil.
func (_c *SessionCounterCreate) SetNillableCurrentSession(v *int) *SessionCounterCreate {
	if v != nil {
		_c.SetCurrentSession(*v)
	}
	return _c
}

// SetLastSessionDate sets the "last_session_date" field.
func (_c *SessionCounterCreate) SetLastSessionDate(v string) *SessionCounterCreate {
	_c.mutation.SetLastSessionDate(v)
	return _c
}

// Mutation returns the SessionCounterMutation object of the builder.
func (_c *SessionCounterCreate) Mutation() *SessionCounterMutation {
	return _c.mutation
}

// Save creates the SessionCounter in the database.
func (_c *SessionCounterCreate) Save(ctx context.Context) (*SessionCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCounterCreate) SaveX(ctx context.Context) *SessionCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCounterCreate) defaults() {
	if _, ok := _c.mutation.CurrentSession(); !ok {
		v := sessioncounter.DefaultCurrentSession
		_c.mutation.SetCurrentSession(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCounterCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionCounter.user_id"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "SessionCounter.course_id"`)}
	}
	if _, ok := _c.mutation.CurrentSession(); !ok {
		return &ValidationError{Name: "current_session", err: errors.New(`ent: missing required field "SessionCounter.current_session"`)}
	}
	if _, ok := _c.mutation.LastSessionDate(); !ok {
		return &ValidationError{Name: "last_session_date", err: errors.New(`ent: missing required field "SessionCounter.last_session_date"`)}
	}
	return nil
}

func (_c *SessionCounterCreate) sqlSave(ctx context.Context) (*SessionCounter, error) {
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

func (_c *SessionCounterCreate) createSpec() (*SessionCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessioncounter.Table, sqlgraph.NewFieldSpec(sessioncounter.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessioncounter.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(sessioncounter.FieldCourseID, field.TypeUUID, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.CurrentSession(); ok {
		_spec.SetField(sessioncounter.FieldCurrentSession, field.TypeInt, value)
		_node.CurrentSession = value
	}
	if value, ok := _c.mutation.LastSessionDate(); ok {
		_spec.SetField(sessioncounter.FieldLastSessionDate, field.TypeString, value)
		_node.LastSessionDate = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionCounter.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionCounterUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCounterCreate) OnConflict(opts ...sql.ConflictOption) *SessionCounterUpsertOne {
	_c.conflict = opts
	return &SessionCounterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCounterCreate) OnConflictColumns(columns ...string) *SessionCounterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionCounterUpsertOne{
		create: _c,
	}
}

type (
	// SessionCounterUpsertOne is the builder for "upsert"-ing
	//  one SessionCounter node.
	SessionCounterUpsertOne struct {
		create *SessionCounterCreate
	}

	// SessionCounterUpsert is the "OnConflict" setter.
	SessionCounterUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *SessionCounterUpsert) SetUserID(v uuid.UUID) *SessionCounterUpsert {
	u.Set(sessioncounter.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionCounterUpsert) UpdateUserID() *SessionCounterUpsert {
	u.SetExcluded(sessioncounter.FieldUserID)
	return u
}

// SetCourseID sets the "course_id" field.
func (u *SessionCounterUpsert) SetCourseID(v uuid.UUID) *SessionCounterUpsert {
	u.Set(sessioncounter.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *SessionCounterUpsert) UpdateCourseID() *SessionCounterUpsert {
	u.SetExcluded(sessioncounter.FieldCourseID)
	return u
}

// SetCurrentSession sets the "current_session" field.
func (u *SessionCounterUpsert) SetCurrentSession(v int) *SessionCounterUpsert {
	u.Set(sessioncounter.FieldCurrentSession, v)
	return u
}

// UpdateCurrentSession sets the "current_session" field to the value that was provided on create.
func (u *SessionCounterUpsert) UpdateCurrentSession() *SessionCounterUpsert {
	u.SetExcluded(sessioncounter.FieldCurrentSession)
	return u
}

// AddCurrentSession adds v to the "current_session" field.
func (u *SessionCounterUpsert) AddCurrentSession(v int) *SessionCounterUpsert {
	u.Add(sessioncounter.FieldCurrentSession, v)
	return u
}

// SetLastSessionDate sets the "last_session_date" field.
func (u *SessionCounterUpsert) SetLastSessionDate(v string) *SessionCounterUpsert {
	u.Set(sessioncounter.FieldLastSessionDate, v)
	return u
}

// UpdateLastSessionDate sets the "last_session_date" field to the value that was provided on create.
func (u *SessionCounterUpsert) UpdateLastSessionDate() *SessionCounterUpsert {
	u.SetExcluded(sessioncounter.FieldLastSessionDate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SessionCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionCounterUpsertOne) UpdateNewValues() *SessionCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionCounter.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionCounterUpsertOne) Ignore() *SessionCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionCounterUpsertOne) DoNothing() *SessionCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCounterCreate.OnConflict
// documentation for more info.
func (u *SessionCounterUpsertOne) Update(set func(*SessionCounterUpsert)) *SessionCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionCounterUpsertOne) SetUserID(v uuid.UUID) *SessionCounterUpsertOne {
	return u.Update(func(s *SessionCounterUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionCounterUpsertOne) UpdateUserID() *SessionCounterUpsertOne {
	return u.Update(func(s *SessionCounterUpsert) {
		s.UpdateUserID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *SessionCounterUpsertOne) SetCourseID(v uuid.UUID) *SessionCounterUpsertOne {
	return u.Update(func(s *SessionCounterUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *SessionCounterUpsertOne) UpdateCourseID() *SessionCounterUpsertOne {
	return u.Update(func(s *SessionCounterUpsert) {
		s.UpdateCourseID()
	})
}

// SetCurrentSession sets the "current_session" field.
func (u *SessionCounterUpsertOne) SetCurrentSession(v int) *SessionCounterUpsertOne {
	return u.Update(func(s *SessionCounterUpsert) {
		s.SetCurrentSession(v)
	})
}

// AddCurrentSession adds v to the "current_session" field.
func (u *SessionCounterUpsertOne) AddCurrentSession(v int) *SessionCounterUpsertOne {
	return u.Update(func(s *SessionCounterUpsert) {
		s.AddCurrentSession(v)
	})
}

// UpdateCurrentSession sets the "current_session" field to the value that was provided on create.
func (u *SessionCounterUpsertOne) UpdateCurrentSession() *SessionCounterUpsertOne {
	return u.Update(func(s *SessionCounterUpsert) {
		s.UpdateCurrentSession()
	})
}

// SetLastSessionDate sets the "last_session_date" field.
func (u *SessionCounterUpsertOne) SetLastSessionDate(v string) *SessionCounterUpsertOne {
	return u.Update(func(s *SessionCounterUpsert) {
		s.SetLastSessionDate(v)
	})
}

// UpdateLastSessionDate sets the "last_session_date" field to the value that was provided on create.
func (u *SessionCounterUpsertOne) UpdateLastSessionDate() *SessionCounterUpsertOne {
	return u.Update(func(s *SessionCounterUpsert) {
		s.UpdateLastSessionDate()
	})
}

// Exec executes the query.
func (u *SessionCounterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCounterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionCounterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionCounterUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionCounterUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCounterCreateBulk is the builder for creating many SessionCounter entities in bulk.
type SessionCounterCreateBulk struct {
	config
	err      error
	builders []*SessionCounterCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionCounter entities in the database.
func (_c *SessionCounterCreateBulk) Save(ctx context.Context) ([]*SessionCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionCounterMutation)
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
func (_c *SessionCounterCreateBulk) SaveX(ctx context.Context) []*SessionCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionCounter.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionCounterUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCounterCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionCounterUpsertBulk {
	_c.conflict = opts
	return &SessionCounterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCounterCreateBulk) OnConflictColumns(columns ...string) *SessionCounterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionCounterUpsertBulk{
		create: _c,
	}
}

// SessionCounterUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionCounter nodes.
type SessionCounterUpsertBulk struct {
	create *SessionCounterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionCounterUpsertBulk) UpdateNewValues() *SessionCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionCounter.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionCounterUpsertBulk) Ignore() *SessionCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionCounterUpsertBulk) DoNothing() *SessionCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCounterCreateBulk.OnConflict
// documentation for more info.
func (u *SessionCounterUpsertBulk) Update(set func(*SessionCounterUpsert)) *SessionCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionCounterUpsertBulk) SetUserID(v uuid.UUID) *SessionCounterUpsertBulk {
	return u.Update(func(s *SessionCounterUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionCounterUpsertBulk) UpdateUserID() *SessionCounterUpsertBulk {
	return u.Update(func(s *SessionCounterUpsert) {
		s.UpdateUserID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *SessionCounterUpsertBulk) SetCourseID(v uuid.UUID) *SessionCounterUpsertBulk {
	return u.Update(func(s *SessionCounterUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *SessionCounterUpsertBulk) UpdateCourseID() *SessionCounterUpsertBulk {
	return u.Update(func(s *SessionCounterUpsert) {
		s.UpdateCourseID()
	})
}

// SetCurrentSession sets the "current_session" field.
func (u *SessionCounterUpsertBulk) SetCurrentSession(v int) *SessionCounterUpsertBulk {
	return u.Update(func(s *SessionCounterUpsert) {
		s.SetCurrentSession(v)
	})
}

// AddCurrentSession adds v to the "current_session" field.
func (u *SessionCounterUpsertBulk) AddCurrentSession(v int) *SessionCounterUpsertBulk {
	return u.Update(func(s *SessionCounterUpsert) {
		s.AddCurrentSession(v)
	})
}

// UpdateCurrentSession sets the "current_session" field to the value that was provided on create.
func (u *SessionCounterUpsertBulk) UpdateCurrentSession() *SessionCounterUpsertBulk {
	return u.Update(func(s *SessionCounterUpsert) {
		s.UpdateCurrentSession()
	})
}

// SetLastSessionDate sets the "last_session_date" field.
func (u *SessionCounterUpsertBulk) SetLastSessionDate(v string) *SessionCounterUpsertBulk {
	return u.Update(func(s *SessionCounterUpsert) {
		s.SetLastSessionDate(v)
	})
}

// UpdateLastSessionDate sets the "last_session_date" field to the value that was provided on create.
func (u *SessionCounterUpsertBulk) UpdateLastSessionDate() *SessionCounterUpsertBulk {
	return u.Update(func(s *SessionCounterUpsert) {
		s.UpdateLastSessionDate()
	})
}

// Exec executes the query.
func (u *SessionCounterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionCounterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCounterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionCounterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
