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
	"github.com/google/uuid"
)

// ChunkMasteryCreate is the builder for creating a ChunkMastery entity.
type ChunkMasteryCreate struct {
	config
	mutation *ChunkMasteryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ChunkMasteryCreate) SetUserID(v uuid.UUID) *ChunkMasteryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetChunkID sets the "chunk_id" field.
func (_c *ChunkMasteryCreate) SetChunkID(v uuid.UUID) *ChunkMasteryCreate {
	_c.mutation.SetChunkID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *ChunkMasteryCreate) SetCourseID(v uuid.UUID) *ChunkMasteryCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *ChunkMasteryCreate) SetMasteryScore(v int) *ChunkMasteryCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_c *ChunkMasteryCreate) SetNillableMasteryScore(v *int) *ChunkMasteryCreate {
	if v != nil {
		_c.SetMasteryScore(*v)
	}
	return _c
}

// SetLastReviewedSession sets the "last_reviewed_session" field.
func (_c *ChunkMasteryCreate) SetLastReviewedSession(v int) *ChunkMasteryCreate {
	_c.mutation.SetLastReviewedSession(v)
	return _c
}

// SetNillableLastReviewedSession sets the "last_reviewed_session" field if the given value is not nil.
func (_c *ChunkMasteryCreate) SetNillableLastReviewedSession(v *int) *ChunkMasteryCreate {
	if v != nil {
		_c.SetLastReviewedSession(*v)
	}
	return _c
}

// SetLastFullReviewAt sets the "last_full_review_at" field.
func (_c *ChunkMasteryCreate) SetLastFullReviewAt(v time.Time) *ChunkMasteryCreate {
	_c.mutation.SetLastFullReviewAt(v)
	return _c
}

// SetNillableLastFullReviewAt sets the "last_full_review_at" field if the given value is not nil.
func (_c *ChunkMasteryCreate) SetNillableLastFullReviewAt(v *time.Time) *ChunkMasteryCreate {
	if v != nil {
		_c.SetLastFullReviewAt(*v)
	}
	return _c
}

// Mutation returns the ChunkMasteryMutation object of the builder.
func (_c *ChunkMasteryCreate) Mutation() *ChunkMasteryMutation {
	return _c.mutation
}

// Save creates the ChunkMastery in the database.
func (_c *ChunkMasteryCreate) Save(ctx context.Context) (*ChunkMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChunkMasteryCreate) SaveX(ctx context.Context) *ChunkMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChunkMasteryCreate) defaults() {
	if _, ok := _c.mutation.MasteryScore(); !ok {
		v := chunkmastery.DefaultMasteryScore
		_c.mutation.SetMasteryScore(v)
	}
	if _, ok := _c.mutation.LastReviewedSession(); !ok {
		v := chunkmastery.DefaultLastReviewedSession
		_c.mutation.SetLastReviewedSession(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChunkMasteryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChunkMastery.user_id"`)}
	}
	if _, ok := _c.mutation.ChunkID(); !ok {
		return &ValidationError{Name: "chunk_id", err: errors.New(`ent: missing required field "ChunkMastery.chunk_id"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "ChunkMastery.course_id"`)}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "ChunkMastery.mastery_score"`)}
	}
	if _, ok := _c.mutation.LastReviewedSession(); !ok {
		return &ValidationError{Name: "last_reviewed_session", err: errors.New(`ent: missing required field "ChunkMastery.last_reviewed_session"`)}
	}
	return nil
}

func (_c *ChunkMasteryCreate) sqlSave(ctx context.Context) (*ChunkMastery, error) {
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

func (_c *ChunkMasteryCreate) createSpec() (*ChunkMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &ChunkMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chunkmastery.Table, sqlgraph.NewFieldSpec(chunkmastery.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(chunkmastery.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ChunkID(); ok {
		_spec.SetField(chunkmastery.FieldChunkID, field.TypeUUID, value)
		_node.ChunkID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(chunkmastery.FieldCourseID, field.TypeUUID, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(chunkmastery.FieldMasteryScore, field.TypeInt, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.LastReviewedSession(); ok {
		_spec.SetField(chunkmastery.FieldLastReviewedSession, field.TypeInt, value)
		_node.LastReviewedSession = value
	}
	if value, ok := _c.mutation.LastFullReviewAt(); ok {
		_spec.SetField(chunkmastery.FieldLastFullReviewAt, field.TypeTime, value)
		_node.LastFullReviewAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChunkMastery.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChunkMasteryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChunkMasteryCreate) OnConflict(opts ...sql.ConflictOption) *ChunkMasteryUpsertOne {
	_c.conflict = opts
	return &ChunkMasteryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChunkMastery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChunkMasteryCreate) OnConflictColumns(columns ...string) *ChunkMasteryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChunkMasteryUpsertOne{
		create: _c,
	}
}

type (
	// ChunkMasteryUpsertOne is the builder for "upsert"-ing
	//  one ChunkMastery node.
	ChunkMasteryUpsertOne struct {
		create *ChunkMasteryCreate
	}

	// ChunkMasteryUpsert is the "OnConflict" setter.
	ChunkMasteryUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ChunkMasteryUpsert) SetUserID(v uuid.UUID) *ChunkMasteryUpsert {
	u.Set(chunkmastery.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChunkMasteryUpsert) UpdateUserID() *ChunkMasteryUpsert {
	u.SetExcluded(chunkmastery.FieldUserID)
	return u
}

// SetChunkID sets the "chunk_id" field.
func (u *ChunkMasteryUpsert) SetChunkID(v uuid.UUID) *ChunkMasteryUpsert {
	u.Set(chunkmastery.FieldChunkID, v)
	return u
}

// UpdateChunkID sets the "chunk_id" field to the value that was provided on create.
func (u *ChunkMasteryUpsert) UpdateChunkID() *ChunkMasteryUpsert {
	u.SetExcluded(chunkmastery.FieldChunkID)
	return u
}

// SetCourseID sets the "course_id" field.
func (u *ChunkMasteryUpsert) SetCourseID(v uuid.UUID) *ChunkMasteryUpsert {
	u.Set(chunkmastery.FieldCourseID, v)
	return u
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ChunkMasteryUpsert) UpdateCourseID() *ChunkMasteryUpsert {
	u.SetExcluded(chunkmastery.FieldCourseID)
	return u
}

// SetMasteryScore sets the "mastery_score" field.
func (u *ChunkMasteryUpsert) SetMasteryScore(v int) *ChunkMasteryUpsert {
	u.Set(chunkmastery.FieldMasteryScore, v)
	return u
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *ChunkMasteryUpsert) UpdateMasteryScore() *ChunkMasteryUpsert {
	u.SetExcluded(chunkmastery.FieldMasteryScore)
	return u
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *ChunkMasteryUpsert) AddMasteryScore(v int) *ChunkMasteryUpsert {
	u.Add(chunkmastery.FieldMasteryScore, v)
	return u
}

// SetLastReviewedSession sets the "last_reviewed_session" field.
func (u *ChunkMasteryUpsert) SetLastReviewedSession(v int) *ChunkMasteryUpsert {
	u.Set(chunkmastery.FieldLastReviewedSession, v)
	return u
}

// UpdateLastReviewedSession sets the "last_reviewed_session" field to the value that was provided on create.
func (u *ChunkMasteryUpsert) UpdateLastReviewedSession() *ChunkMasteryUpsert {
	u.SetExcluded(chunkmastery.FieldLastReviewedSession)
	return u
}

// AddLastReviewedSession adds v to the "last_reviewed_session" field.
func (u *ChunkMasteryUpsert) AddLastReviewedSession(v int) *ChunkMasteryUpsert {
	u.Add(chunkmastery.FieldLastReviewedSession, v)
	return u
}

// SetLastFullReviewAt sets the "last_full_review_at" field.
func (u *ChunkMasteryUpsert) SetLastFullReviewAt(v time.Time) *ChunkMasteryUpsert {
	u.Set(chunkmastery.FieldLastFullReviewAt, v)
	return u
}

// UpdateLastFullReviewAt sets the "last_full_review_at" field to the value that was provided on create.
func (u *ChunkMasteryUpsert) UpdateLastFullReviewAt() *ChunkMasteryUpsert {
	u.SetExcluded(chunkmastery.FieldLastFullReviewAt)
	return u
}

// ClearLastFullReviewAt clears the value of the "last_full_review_at" field.
func (u *ChunkMasteryUpsert) ClearLastFullReviewAt() *ChunkMasteryUpsert {
	u.SetNull(chunkmastery.FieldLastFullReviewAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ChunkMastery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ChunkMasteryUpsertOne) UpdateNewValues() *ChunkMasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChunkMastery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChunkMasteryUpsertOne) Ignore() *ChunkMasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChunkMasteryUpsertOne) DoNothing() *ChunkMasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChunkMasteryCreate.OnConflict
// documentation for more info.
func (u *ChunkMasteryUpsertOne) Update(set func(*ChunkMasteryUpsert)) *ChunkMasteryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChunkMasteryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ChunkMasteryUpsertOne) SetUserID(v uuid.UUID) *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChunkMasteryUpsertOne) UpdateUserID() *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateUserID()
	})
}

// SetChunkID sets the "chunk_id" field.
func (u *ChunkMasteryUpsertOne) SetChunkID(v uuid.UUID) *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetChunkID(v)
	})
}

// UpdateChunkID sets the "chunk_id" field to the value that was provided on create.
func (u *ChunkMasteryUpsertOne) UpdateChunkID() *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateChunkID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *ChunkMasteryUpsertOne) SetCourseID(v uuid.UUID) *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ChunkMasteryUpsertOne) UpdateCourseID() *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateCourseID()
	})
}

// SetMasteryScore sets the "mastery_score" field.
func (u *ChunkMasteryUpsertOne) SetMasteryScore(v int) *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetMasteryScore(v)
	})
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *ChunkMasteryUpsertOne) AddMasteryScore(v int) *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.AddMasteryScore(v)
	})
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *ChunkMasteryUpsertOne) UpdateMasteryScore() *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateMasteryScore()
	})
}

// SetLastReviewedSession sets the "last_reviewed_session" field.
func (u *ChunkMasteryUpsertOne) SetLastReviewedSession(v int) *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetLastReviewedSession(v)
	})
}

// AddLastReviewedSession adds v to the "last_reviewed_session" field.
func (u *ChunkMasteryUpsertOne) AddLastReviewedSession(v int) *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.AddLastReviewedSession(v)
	})
}

// UpdateLastReviewedSession sets the "last_reviewed_session" field to the value that was provided on create.
func (u *ChunkMasteryUpsertOne) UpdateLastReviewedSession() *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateLastReviewedSession()
	})
}

// SetLastFullReviewAt sets the "last_full_review_at" field.
func (u *ChunkMasteryUpsertOne) SetLastFullReviewAt(v time.Time) *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetLastFullReviewAt(v)
	})
}

// UpdateLastFullReviewAt sets the "last_full_review_at" field to the value that was provided on create.
func (u *ChunkMasteryUpsertOne) UpdateLastFullReviewAt() *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateLastFullReviewAt()
	})
}

// ClearLastFullReviewAt clears the value of the "last_full_review_at" field.
func (u *ChunkMasteryUpsertOne) ClearLastFullReviewAt() *ChunkMasteryUpsertOne {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.ClearLastFullReviewAt()
	})
}

// Exec executes the query.
func (u *ChunkMasteryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChunkMasteryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChunkMasteryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChunkMasteryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChunkMasteryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChunkMasteryCreateBulk is the builder for creating many ChunkMastery entities in bulk.
type ChunkMasteryCreateBulk struct {
	config
	err      error
	builders []*ChunkMasteryCreate
	conflict []sql.ConflictOption
}

// Save creates the ChunkMastery entities in the database.
func (_c *ChunkMasteryCreateBulk) Save(ctx context.Context) ([]*ChunkMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChunkMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChunkMasteryMutation)
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
func (_c *ChunkMasteryCreateBulk) SaveX(ctx context.Context) []*ChunkMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChunkMastery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChunkMasteryUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChunkMasteryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChunkMasteryUpsertBulk {
	_c.conflict = opts
	return &ChunkMasteryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChunkMastery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChunkMasteryCreateBulk) OnConflictColumns(columns ...string) *ChunkMasteryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChunkMasteryUpsertBulk{
		create: _c,
	}
}

// ChunkMasteryUpsertBulk is the builder for "upsert"-ing
// a bulk of ChunkMastery nodes.
type ChunkMasteryUpsertBulk struct {
	create *ChunkMasteryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChunkMastery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ChunkMasteryUpsertBulk) UpdateNewValues() *ChunkMasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChunkMastery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChunkMasteryUpsertBulk) Ignore() *ChunkMasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChunkMasteryUpsertBulk) DoNothing() *ChunkMasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChunkMasteryCreateBulk.OnConflict
// documentation for more info.
func (u *ChunkMasteryUpsertBulk) Update(set func(*ChunkMasteryUpsert)) *ChunkMasteryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChunkMasteryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ChunkMasteryUpsertBulk) SetUserID(v uuid.UUID) *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChunkMasteryUpsertBulk) UpdateUserID() *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateUserID()
	})
}

// SetChunkID sets the "chunk_id" field.
func (u *ChunkMasteryUpsertBulk) SetChunkID(v uuid.UUID) *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetChunkID(v)
	})
}

// UpdateChunkID sets the "chunk_id" field to the value that was provided on create.
func (u *ChunkMasteryUpsertBulk) UpdateChunkID() *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateChunkID()
	})
}

// SetCourseID sets the "course_id" field.
func (u *ChunkMasteryUpsertBulk) SetCourseID(v uuid.UUID) *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetCourseID(v)
	})
}

// UpdateCourseID sets the "course_id" field to the value that was provided on create.
func (u *ChunkMasteryUpsertBulk) UpdateCourseID() *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateCourseID()
	})
}

// SetMasteryScore sets the "mastery_score" field.
func (u *ChunkMasteryUpsertBulk) SetMasteryScore(v int) *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetMasteryScore(v)
	})
}

// AddMasteryScore adds v to the "mastery_score" field.
func (u *ChunkMasteryUpsertBulk) AddMasteryScore(v int) *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.AddMasteryScore(v)
	})
}

// UpdateMasteryScore sets the "mastery_score" field to the value that was provided on create.
func (u *ChunkMasteryUpsertBulk) UpdateMasteryScore() *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateMasteryScore()
	})
}

// SetLastReviewedSession sets the "last_reviewed_session" field.
func (u *ChunkMasteryUpsertBulk) SetLastReviewedSession(v int) *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetLastReviewedSession(v)
	})
}

// AddLastReviewedSession adds v to the "last_reviewed_session" field.
func (u *ChunkMasteryUpsertBulk) AddLastReviewedSession(v int) *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.AddLastReviewedSession(v)
	})
}

// UpdateLastReviewedSession sets the "last_reviewed_session" field to the value that was provided on create.
func (u *ChunkMasteryUpsertBulk) UpdateLastReviewedSession() *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateLastReviewedSession()
	})
}

// SetLastFullReviewAt sets the "last_full_review_at" field.
func (u *ChunkMasteryUpsertBulk) SetLastFullReviewAt(v time.Time) *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.SetLastFullReviewAt(v)
	})
}

// UpdateLastFullReviewAt sets the "last_full_review_at" field to the value that was provided on create.
func (u *ChunkMasteryUpsertBulk) UpdateLastFullReviewAt() *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.UpdateLastFullReviewAt()
	})
}

// ClearLastFullReviewAt clears the value of the "last_full_review_at" field.
func (u *ChunkMasteryUpsertBulk) ClearLastFullReviewAt() *ChunkMasteryUpsertBulk {
	return u.Update(func(s *ChunkMasteryUpsert) {
		s.ClearLastFullReviewAt()
	})
}

// Exec executes the query.
func (u *ChunkMasteryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChunkMasteryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChunkMasteryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChunkMasteryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
