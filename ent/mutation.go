// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/answerevent"
	"github.com/astiages123/auditpath/ent/chunk"
	"github.com/astiages123/auditpath/ent/chunkmastery"
	"github.com/astiages123/auditpath/ent/llmrequestevent"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/astiages123/auditpath/ent/question"
	"github.com/astiages123/auditpath/ent/schema"
	"github.com/astiages123/auditpath/ent/sessioncache"
	"github.com/astiages123/auditpath/ent/sessioncounter"
	"github.com/astiages123/auditpath/ent/userquestionstatus"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerEvent        = "AnswerEvent"
	TypeChunk              = "Chunk"
	TypeChunkMastery       = "ChunkMastery"
	TypeLLMRequestEvent    = "LLMRequestEvent"
	TypeQuestion           = "Question"
	TypeSessionCache       = "SessionCache"
	TypeSessionCounter     = "SessionCounter"
	TypeUserQuestionStatus = "UserQuestionStatus"
)

// AnswerEventMutation represents an operation that mutates the AnswerEvent nodes in the graph.
type AnswerEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	user_id           *uuid.UUID
	question_id       *uuid.UUID
	chunk_id          *uuid.UUID
	session_number    *int
	addsession_number *int
	correct           *bool
	fast              *bool
	time_ms           *int
	addtime_ms        *int
	status_after      *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*AnswerEvent, error)
	predicates        []predicate.AnswerEvent
}

var _ ent.Mutation = (*AnswerEventMutation)(nil)

// answereventOption allows management of the mutation configuration using functional options.
type answereventOption func(*AnswerEventMutation)

// newAnswerEventMutation creates new mutation for the AnswerEvent entity.
func newAnswerEventMutation(c config, op Op, opts ...answereventOption) *AnswerEventMutation {
	m := &AnswerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerEventID sets the ID field of the mutation.
func withAnswerEventID(id int) answereventOption {
	return func(m *AnswerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerEvent
		)
		m.oldValue = func(ctx context.Context) (*AnswerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerEvent sets the old AnswerEvent of the mutation.
func withAnswerEvent(node *AnswerEvent) answereventOption {
	return func(m *AnswerEventMutation) {
		m.oldValue = func(context.Context) (*AnswerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AnswerEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AnswerEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AnswerEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AnswerEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AnswerEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AnswerEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AnswerEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AnswerEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *AnswerEventMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnswerEventMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnswerEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AnswerEventMutation) SetQuestionID(u uuid.UUID) {
	m.question_id = &u
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AnswerEventMutation) QuestionID() (r uuid.UUID, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldQuestionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AnswerEventMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetChunkID sets the "chunk_id" field.
func (m *AnswerEventMutation) SetChunkID(u uuid.UUID) {
	m.chunk_id = &u
}

// ChunkID returns the value of the "chunk_id" field in the mutation.
func (m *AnswerEventMutation) ChunkID() (r uuid.UUID, exists bool) {
	v := m.chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkID returns the old "chunk_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldChunkID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkID: %w", err)
	}
	return oldValue.ChunkID, nil
}

// ClearChunkID clears the value of the "chunk_id" field.
func (m *AnswerEventMutation) ClearChunkID() {
	m.chunk_id = nil
	m.clearedFields[answerevent.FieldChunkID] = struct{}{}
}

// ChunkIDCleared returns if the "chunk_id" field was cleared in this mutation.
func (m *AnswerEventMutation) ChunkIDCleared() bool {
	_, ok := m.clearedFields[answerevent.FieldChunkID]
	return ok
}

// ResetChunkID resets all changes to the "chunk_id" field.
func (m *AnswerEventMutation) ResetChunkID() {
	m.chunk_id = nil
	delete(m.clearedFields, answerevent.FieldChunkID)
}

// SetSessionNumber sets the "session_number" field.
func (m *AnswerEventMutation) SetSessionNumber(i int) {
	m.session_number = &i
	m.addsession_number = nil
}

// SessionNumber returns the value of the "session_number" field in the mutation.
func (m *AnswerEventMutation) SessionNumber() (r int, exists bool) {
	v := m.session_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionNumber returns the old "session_number" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSessionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionNumber: %w", err)
	}
	return oldValue.SessionNumber, nil
}

// AddSessionNumber adds i to the "session_number" field.
func (m *AnswerEventMutation) AddSessionNumber(i int) {
	if m.addsession_number != nil {
		*m.addsession_number += i
	} else {
		m.addsession_number = &i
	}
}

// AddedSessionNumber returns the value that was added to the "session_number" field in this mutation.
func (m *AnswerEventMutation) AddedSessionNumber() (r int, exists bool) {
	v := m.addsession_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionNumber resets all changes to the "session_number" field.
func (m *AnswerEventMutation) ResetSessionNumber() {
	m.session_number = nil
	m.addsession_number = nil
}

// SetCorrect sets the "correct" field.
func (m *AnswerEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AnswerEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AnswerEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetFast sets the "fast" field.
func (m *AnswerEventMutation) SetFast(b bool) {
	m.fast = &b
}

// Fast returns the value of the "fast" field in the mutation.
func (m *AnswerEventMutation) Fast() (r bool, exists bool) {
	v := m.fast
	if v == nil {
		return
	}
	return *v, true
}

// OldFast returns the old "fast" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldFast(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFast is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFast requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFast: %w", err)
	}
	return oldValue.Fast, nil
}

// ResetFast resets all changes to the "fast" field.
func (m *AnswerEventMutation) ResetFast() {
	m.fast = nil
}

// SetTimeMs sets the "time_ms" field.
func (m *AnswerEventMutation) SetTimeMs(i int) {
	m.time_ms = &i
	m.addtime_ms = nil
}

// TimeMs returns the value of the "time_ms" field in the mutation.
func (m *AnswerEventMutation) TimeMs() (r int, exists bool) {
	v := m.time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeMs returns the old "time_ms" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeMs: %w", err)
	}
	return oldValue.TimeMs, nil
}

// AddTimeMs adds i to the "time_ms" field.
func (m *AnswerEventMutation) AddTimeMs(i int) {
	if m.addtime_ms != nil {
		*m.addtime_ms += i
	} else {
		m.addtime_ms = &i
	}
}

// AddedTimeMs returns the value that was added to the "time_ms" field in this mutation.
func (m *AnswerEventMutation) AddedTimeMs() (r int, exists bool) {
	v := m.addtime_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeMs resets all changes to the "time_ms" field.
func (m *AnswerEventMutation) ResetTimeMs() {
	m.time_ms = nil
	m.addtime_ms = nil
}

// SetStatusAfter sets the "status_after" field.
func (m *AnswerEventMutation) SetStatusAfter(s string) {
	m.status_after = &s
}

// StatusAfter returns the value of the "status_after" field in the mutation.
func (m *AnswerEventMutation) StatusAfter() (r string, exists bool) {
	v := m.status_after
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusAfter returns the old "status_after" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldStatusAfter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusAfter: %w", err)
	}
	return oldValue.StatusAfter, nil
}

// ResetStatusAfter resets all changes to the "status_after" field.
func (m *AnswerEventMutation) ResetStatusAfter() {
	m.status_after = nil
}

// Where appends a list predicates to the AnswerEventMutation builder.
func (m *AnswerEventMutation) Where(ps ...predicate.AnswerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerEvent).
func (m *AnswerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, answerevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, answerevent.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, answerevent.FieldQuestionID)
	}
	if m.chunk_id != nil {
		fields = append(fields, answerevent.FieldChunkID)
	}
	if m.session_number != nil {
		fields = append(fields, answerevent.FieldSessionNumber)
	}
	if m.correct != nil {
		fields = append(fields, answerevent.FieldCorrect)
	}
	if m.fast != nil {
		fields = append(fields, answerevent.FieldFast)
	}
	if m.time_ms != nil {
		fields = append(fields, answerevent.FieldTimeMs)
	}
	if m.status_after != nil {
		fields = append(fields, answerevent.FieldStatusAfter)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.Sequence()
	case answerevent.FieldTimestamp:
		return m.Timestamp()
	case answerevent.FieldUserID:
		return m.UserID()
	case answerevent.FieldQuestionID:
		return m.QuestionID()
	case answerevent.FieldChunkID:
		return m.ChunkID()
	case answerevent.FieldSessionNumber:
		return m.SessionNumber()
	case answerevent.FieldCorrect:
		return m.Correct()
	case answerevent.FieldFast:
		return m.Fast()
	case answerevent.FieldTimeMs:
		return m.TimeMs()
	case answerevent.FieldStatusAfter:
		return m.StatusAfter()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerevent.FieldSequence:
		return m.OldSequence(ctx)
	case answerevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case answerevent.FieldUserID:
		return m.OldUserID(ctx)
	case answerevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case answerevent.FieldChunkID:
		return m.OldChunkID(ctx)
	case answerevent.FieldSessionNumber:
		return m.OldSessionNumber(ctx)
	case answerevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case answerevent.FieldFast:
		return m.OldFast(ctx)
	case answerevent.FieldTimeMs:
		return m.OldTimeMs(ctx)
	case answerevent.FieldStatusAfter:
		return m.OldStatusAfter(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case answerevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case answerevent.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case answerevent.FieldQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case answerevent.FieldChunkID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkID(v)
		return nil
	case answerevent.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionNumber(v)
		return nil
	case answerevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case answerevent.FieldFast:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFast(v)
		return nil
	case answerevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeMs(v)
		return nil
	case answerevent.FieldStatusAfter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusAfter(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.addsession_number != nil {
		fields = append(fields, answerevent.FieldSessionNumber)
	}
	if m.addtime_ms != nil {
		fields = append(fields, answerevent.FieldTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.AddedSequence()
	case answerevent.FieldSessionNumber:
		return m.AddedSessionNumber()
	case answerevent.FieldTimeMs:
		return m.AddedTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case answerevent.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionNumber(v)
		return nil
	case answerevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answerevent.FieldChunkID) {
		fields = append(fields, answerevent.FieldChunkID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerEventMutation) ClearField(name string) error {
	switch name {
	case answerevent.FieldChunkID:
		m.ClearChunkID()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerEventMutation) ResetField(name string) error {
	switch name {
	case answerevent.FieldSequence:
		m.ResetSequence()
		return nil
	case answerevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case answerevent.FieldUserID:
		m.ResetUserID()
		return nil
	case answerevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case answerevent.FieldChunkID:
		m.ResetChunkID()
		return nil
	case answerevent.FieldSessionNumber:
		m.ResetSessionNumber()
		return nil
	case answerevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case answerevent.FieldFast:
		m.ResetFast()
		return nil
	case answerevent.FieldTimeMs:
		m.ResetTimeMs()
		return nil
	case answerevent.FieldStatusAfter:
		m.ResetStatusAfter()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent edge %s", name)
}

// ChunkMutation represents an operation that mutates the Chunk nodes in the graph.
type ChunkMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	course_id           *uuid.UUID
	title               *string
	content             *string
	position            *int
	addposition         *int
	word_count          *int
	addword_count       *int
	density_score       *float64
	adddensity_score    *float64
	concept_map         *[]schema.ConceptEntry
	appendconcept_map   []schema.ConceptEntry
	difficulty_index    *float64
	adddifficulty_index *float64
	practice_quota      *int
	addpractice_quota   *int
	archive_quota       *int
	addarchive_quota    *int
	exam_quota          *int
	addexam_quota       *int
	generation_status   *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Chunk, error)
	predicates          []predicate.Chunk
}

var _ ent.Mutation = (*ChunkMutation)(nil)

// chunkOption allows management of the mutation configuration using functional options.
type chunkOption func(*ChunkMutation)

// newChunkMutation creates new mutation for the Chunk entity.
func newChunkMutation(c config, op Op, opts ...chunkOption) *ChunkMutation {
	m := &ChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChunkID sets the ID field of the mutation.
func withChunkID(id uuid.UUID) chunkOption {
	return func(m *ChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *Chunk
		)
		m.oldValue = func(ctx context.Context) (*Chunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChunk sets the old Chunk of the mutation.
func withChunk(node *Chunk) chunkOption {
	return func(m *ChunkMutation) {
		m.oldValue = func(context.Context) (*Chunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Chunk entities.
func (m *ChunkMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChunkMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChunkMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourseID sets the "course_id" field.
func (m *ChunkMutation) SetCourseID(u uuid.UUID) {
	m.course_id = &u
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *ChunkMutation) CourseID() (r uuid.UUID, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldCourseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *ChunkMutation) ResetCourseID() {
	m.course_id = nil
}

// SetTitle sets the "title" field.
func (m *ChunkMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChunkMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ChunkMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *ChunkMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChunkMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChunkMutation) ResetContent() {
	m.content = nil
}

// SetPosition sets the "position" field.
func (m *ChunkMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ChunkMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ChunkMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ChunkMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ChunkMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetWordCount sets the "word_count" field.
func (m *ChunkMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *ChunkMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *ChunkMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *ChunkMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *ChunkMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetDensityScore sets the "density_score" field.
func (m *ChunkMutation) SetDensityScore(f float64) {
	m.density_score = &f
	m.adddensity_score = nil
}

// DensityScore returns the value of the "density_score" field in the mutation.
func (m *ChunkMutation) DensityScore() (r float64, exists bool) {
	v := m.density_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDensityScore returns the old "density_score" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldDensityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDensityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDensityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDensityScore: %w", err)
	}
	return oldValue.DensityScore, nil
}

// AddDensityScore adds f to the "density_score" field.
func (m *ChunkMutation) AddDensityScore(f float64) {
	if m.adddensity_score != nil {
		*m.adddensity_score += f
	} else {
		m.adddensity_score = &f
	}
}

// AddedDensityScore returns the value that was added to the "density_score" field in this mutation.
func (m *ChunkMutation) AddedDensityScore() (r float64, exists bool) {
	v := m.adddensity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetDensityScore resets all changes to the "density_score" field.
func (m *ChunkMutation) ResetDensityScore() {
	m.density_score = nil
	m.adddensity_score = nil
}

// SetConceptMap sets the "concept_map" field.
func (m *ChunkMutation) SetConceptMap(se []schema.ConceptEntry) {
	m.concept_map = &se
	m.appendconcept_map = nil
}

// ConceptMap returns the value of the "concept_map" field in the mutation.
func (m *ChunkMutation) ConceptMap() (r []schema.ConceptEntry, exists bool) {
	v := m.concept_map
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptMap returns the old "concept_map" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldConceptMap(ctx context.Context) (v []schema.ConceptEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptMap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptMap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptMap: %w", err)
	}
	return oldValue.ConceptMap, nil
}

// AppendConceptMap adds se to the "concept_map" field.
func (m *ChunkMutation) AppendConceptMap(se []schema.ConceptEntry) {
	m.appendconcept_map = append(m.appendconcept_map, se...)
}

// AppendedConceptMap returns the list of values that were appended to the "concept_map" field in this mutation.
func (m *ChunkMutation) AppendedConceptMap() ([]schema.ConceptEntry, bool) {
	if len(m.appendconcept_map) == 0 {
		return nil, false
	}
	return m.appendconcept_map, true
}

// ClearConceptMap clears the value of the "concept_map" field.
func (m *ChunkMutation) ClearConceptMap() {
	m.concept_map = nil
	m.appendconcept_map = nil
	m.clearedFields[chunk.FieldConceptMap] = struct{}{}
}

// ConceptMapCleared returns if the "concept_map" field was cleared in this mutation.
func (m *ChunkMutation) ConceptMapCleared() bool {
	_, ok := m.clearedFields[chunk.FieldConceptMap]
	return ok
}

// ResetConceptMap resets all changes to the "concept_map" field.
func (m *ChunkMutation) ResetConceptMap() {
	m.concept_map = nil
	m.appendconcept_map = nil
	delete(m.clearedFields, chunk.FieldConceptMap)
}

// SetDifficultyIndex sets the "difficulty_index" field.
func (m *ChunkMutation) SetDifficultyIndex(f float64) {
	m.difficulty_index = &f
	m.adddifficulty_index = nil
}

// DifficultyIndex returns the value of the "difficulty_index" field in the mutation.
func (m *ChunkMutation) DifficultyIndex() (r float64, exists bool) {
	v := m.difficulty_index
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyIndex returns the old "difficulty_index" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldDifficultyIndex(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyIndex: %w", err)
	}
	return oldValue.DifficultyIndex, nil
}

// AddDifficultyIndex adds f to the "difficulty_index" field.
func (m *ChunkMutation) AddDifficultyIndex(f float64) {
	if m.adddifficulty_index != nil {
		*m.adddifficulty_index += f
	} else {
		m.adddifficulty_index = &f
	}
}

// AddedDifficultyIndex returns the value that was added to the "difficulty_index" field in this mutation.
func (m *ChunkMutation) AddedDifficultyIndex() (r float64, exists bool) {
	v := m.adddifficulty_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyIndex resets all changes to the "difficulty_index" field.
func (m *ChunkMutation) ResetDifficultyIndex() {
	m.difficulty_index = nil
	m.adddifficulty_index = nil
}

// SetPracticeQuota sets the "practice_quota" field.
func (m *ChunkMutation) SetPracticeQuota(i int) {
	m.practice_quota = &i
	m.addpractice_quota = nil
}

// PracticeQuota returns the value of the "practice_quota" field in the mutation.
func (m *ChunkMutation) PracticeQuota() (r int, exists bool) {
	v := m.practice_quota
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeQuota returns the old "practice_quota" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldPracticeQuota(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeQuota is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeQuota requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeQuota: %w", err)
	}
	return oldValue.PracticeQuota, nil
}

// AddPracticeQuota adds i to the "practice_quota" field.
func (m *ChunkMutation) AddPracticeQuota(i int) {
	if m.addpractice_quota != nil {
		*m.addpractice_quota += i
	} else {
		m.addpractice_quota = &i
	}
}

// AddedPracticeQuota returns the value that was added to the "practice_quota" field in this mutation.
func (m *ChunkMutation) AddedPracticeQuota() (r int, exists bool) {
	v := m.addpractice_quota
	if v == nil {
		return
	}
	return *v, true
}

// ResetPracticeQuota resets all changes to the "practice_quota" field.
func (m *ChunkMutation) ResetPracticeQuota() {
	m.practice_quota = nil
	m.addpractice_quota = nil
}

// SetArchiveQuota sets the "archive_quota" field.
func (m *ChunkMutation) SetArchiveQuota(i int) {
	m.archive_quota = &i
	m.addarchive_quota = nil
}

// ArchiveQuota returns the value of the "archive_quota" field in the mutation.
func (m *ChunkMutation) ArchiveQuota() (r int, exists bool) {
	v := m.archive_quota
	if v == nil {
		return
	}
	return *v, true
}

// OldArchiveQuota returns the old "archive_quota" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldArchiveQuota(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchiveQuota is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchiveQuota requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchiveQuota: %w", err)
	}
	return oldValue.ArchiveQuota, nil
}

// AddArchiveQuota adds i to the "archive_quota" field.
func (m *ChunkMutation) AddArchiveQuota(i int) {
	if m.addarchive_quota != nil {
		*m.addarchive_quota += i
	} else {
		m.addarchive_quota = &i
	}
}

// AddedArchiveQuota returns the value that was added to the "archive_quota" field in this mutation.
func (m *ChunkMutation) AddedArchiveQuota() (r int, exists bool) {
	v := m.addarchive_quota
	if v == nil {
		return
	}
	return *v, true
}

// ResetArchiveQuota resets all changes to the "archive_quota" field.
func (m *ChunkMutation) ResetArchiveQuota() {
	m.archive_quota = nil
	m.addarchive_quota = nil
}

// SetExamQuota sets the "exam_quota" field.
func (m *ChunkMutation) SetExamQuota(i int) {
	m.exam_quota = &i
	m.addexam_quota = nil
}

// ExamQuota returns the value of the "exam_quota" field in the mutation.
func (m *ChunkMutation) ExamQuota() (r int, exists bool) {
	v := m.exam_quota
	if v == nil {
		return
	}
	return *v, true
}

// OldExamQuota returns the old "exam_quota" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldExamQuota(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamQuota is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamQuota requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamQuota: %w", err)
	}
	return oldValue.ExamQuota, nil
}

// AddExamQuota adds i to the "exam_quota" field.
func (m *ChunkMutation) AddExamQuota(i int) {
	if m.addexam_quota != nil {
		*m.addexam_quota += i
	} else {
		m.addexam_quota = &i
	}
}

// AddedExamQuota returns the value that was added to the "exam_quota" field in this mutation.
func (m *ChunkMutation) AddedExamQuota() (r int, exists bool) {
	v := m.addexam_quota
	if v == nil {
		return
	}
	return *v, true
}

// ResetExamQuota resets all changes to the "exam_quota" field.
func (m *ChunkMutation) ResetExamQuota() {
	m.exam_quota = nil
	m.addexam_quota = nil
}

// SetGenerationStatus sets the "generation_status" field.
func (m *ChunkMutation) SetGenerationStatus(s string) {
	m.generation_status = &s
}

// GenerationStatus returns the value of the "generation_status" field in the mutation.
func (m *ChunkMutation) GenerationStatus() (r string, exists bool) {
	v := m.generation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationStatus returns the old "generation_status" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldGenerationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationStatus: %w", err)
	}
	return oldValue.GenerationStatus, nil
}

// ResetGenerationStatus resets all changes to the "generation_status" field.
func (m *ChunkMutation) ResetGenerationStatus() {
	m.generation_status = nil
}

// Where appends a list predicates to the ChunkMutation builder.
func (m *ChunkMutation) Where(ps ...predicate.Chunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chunk).
func (m *ChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChunkMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.course_id != nil {
		fields = append(fields, chunk.FieldCourseID)
	}
	if m.title != nil {
		fields = append(fields, chunk.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, chunk.FieldContent)
	}
	if m.position != nil {
		fields = append(fields, chunk.FieldPosition)
	}
	if m.word_count != nil {
		fields = append(fields, chunk.FieldWordCount)
	}
	if m.density_score != nil {
		fields = append(fields, chunk.FieldDensityScore)
	}
	if m.concept_map != nil {
		fields = append(fields, chunk.FieldConceptMap)
	}
	if m.difficulty_index != nil {
		fields = append(fields, chunk.FieldDifficultyIndex)
	}
	if m.practice_quota != nil {
		fields = append(fields, chunk.FieldPracticeQuota)
	}
	if m.archive_quota != nil {
		fields = append(fields, chunk.FieldArchiveQuota)
	}
	if m.exam_quota != nil {
		fields = append(fields, chunk.FieldExamQuota)
	}
	if m.generation_status != nil {
		fields = append(fields, chunk.FieldGenerationStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chunk.FieldCourseID:
		return m.CourseID()
	case chunk.FieldTitle:
		return m.Title()
	case chunk.FieldContent:
		return m.Content()
	case chunk.FieldPosition:
		return m.Position()
	case chunk.FieldWordCount:
		return m.WordCount()
	case chunk.FieldDensityScore:
		return m.DensityScore()
	case chunk.FieldConceptMap:
		return m.ConceptMap()
	case chunk.FieldDifficultyIndex:
		return m.DifficultyIndex()
	case chunk.FieldPracticeQuota:
		return m.PracticeQuota()
	case chunk.FieldArchiveQuota:
		return m.ArchiveQuota()
	case chunk.FieldExamQuota:
		return m.ExamQuota()
	case chunk.FieldGenerationStatus:
		return m.GenerationStatus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chunk.FieldCourseID:
		return m.OldCourseID(ctx)
	case chunk.FieldTitle:
		return m.OldTitle(ctx)
	case chunk.FieldContent:
		return m.OldContent(ctx)
	case chunk.FieldPosition:
		return m.OldPosition(ctx)
	case chunk.FieldWordCount:
		return m.OldWordCount(ctx)
	case chunk.FieldDensityScore:
		return m.OldDensityScore(ctx)
	case chunk.FieldConceptMap:
		return m.OldConceptMap(ctx)
	case chunk.FieldDifficultyIndex:
		return m.OldDifficultyIndex(ctx)
	case chunk.FieldPracticeQuota:
		return m.OldPracticeQuota(ctx)
	case chunk.FieldArchiveQuota:
		return m.OldArchiveQuota(ctx)
	case chunk.FieldExamQuota:
		return m.OldExamQuota(ctx)
	case chunk.FieldGenerationStatus:
		return m.OldGenerationStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Chunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chunk.FieldCourseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case chunk.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chunk.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chunk.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case chunk.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case chunk.FieldDensityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDensityScore(v)
		return nil
	case chunk.FieldConceptMap:
		v, ok := value.([]schema.ConceptEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptMap(v)
		return nil
	case chunk.FieldDifficultyIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyIndex(v)
		return nil
	case chunk.FieldPracticeQuota:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeQuota(v)
		return nil
	case chunk.FieldArchiveQuota:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchiveQuota(v)
		return nil
	case chunk.FieldExamQuota:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamQuota(v)
		return nil
	case chunk.FieldGenerationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Chunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChunkMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, chunk.FieldPosition)
	}
	if m.addword_count != nil {
		fields = append(fields, chunk.FieldWordCount)
	}
	if m.adddensity_score != nil {
		fields = append(fields, chunk.FieldDensityScore)
	}
	if m.adddifficulty_index != nil {
		fields = append(fields, chunk.FieldDifficultyIndex)
	}
	if m.addpractice_quota != nil {
		fields = append(fields, chunk.FieldPracticeQuota)
	}
	if m.addarchive_quota != nil {
		fields = append(fields, chunk.FieldArchiveQuota)
	}
	if m.addexam_quota != nil {
		fields = append(fields, chunk.FieldExamQuota)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChunkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chunk.FieldPosition:
		return m.AddedPosition()
	case chunk.FieldWordCount:
		return m.AddedWordCount()
	case chunk.FieldDensityScore:
		return m.AddedDensityScore()
	case chunk.FieldDifficultyIndex:
		return m.AddedDifficultyIndex()
	case chunk.FieldPracticeQuota:
		return m.AddedPracticeQuota()
	case chunk.FieldArchiveQuota:
		return m.AddedArchiveQuota()
	case chunk.FieldExamQuota:
		return m.AddedExamQuota()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chunk.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case chunk.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	case chunk.FieldDensityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDensityScore(v)
		return nil
	case chunk.FieldDifficultyIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyIndex(v)
		return nil
	case chunk.FieldPracticeQuota:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPracticeQuota(v)
		return nil
	case chunk.FieldArchiveQuota:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArchiveQuota(v)
		return nil
	case chunk.FieldExamQuota:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExamQuota(v)
		return nil
	}
	return fmt.Errorf("unknown Chunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChunkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chunk.FieldConceptMap) {
		fields = append(fields, chunk.FieldConceptMap)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChunkMutation) ClearField(name string) error {
	switch name {
	case chunk.FieldConceptMap:
		m.ClearConceptMap()
		return nil
	}
	return fmt.Errorf("unknown Chunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChunkMutation) ResetField(name string) error {
	switch name {
	case chunk.FieldCourseID:
		m.ResetCourseID()
		return nil
	case chunk.FieldTitle:
		m.ResetTitle()
		return nil
	case chunk.FieldContent:
		m.ResetContent()
		return nil
	case chunk.FieldPosition:
		m.ResetPosition()
		return nil
	case chunk.FieldWordCount:
		m.ResetWordCount()
		return nil
	case chunk.FieldDensityScore:
		m.ResetDensityScore()
		return nil
	case chunk.FieldConceptMap:
		m.ResetConceptMap()
		return nil
	case chunk.FieldDifficultyIndex:
		m.ResetDifficultyIndex()
		return nil
	case chunk.FieldPracticeQuota:
		m.ResetPracticeQuota()
		return nil
	case chunk.FieldArchiveQuota:
		m.ResetArchiveQuota()
		return nil
	case chunk.FieldExamQuota:
		m.ResetExamQuota()
		return nil
	case chunk.FieldGenerationStatus:
		m.ResetGenerationStatus()
		return nil
	}
	return fmt.Errorf("unknown Chunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChunkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChunkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChunkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Chunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChunkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Chunk edge %s", name)
}

// ChunkMasteryMutation represents an operation that mutates the ChunkMastery nodes in the graph.
type ChunkMasteryMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	user_id                  *uuid.UUID
	chunk_id                 *uuid.UUID
	course_id                *uuid.UUID
	mastery_score            *int
	addmastery_score         *int
	last_reviewed_session    *int
	addlast_reviewed_session *int
	last_full_review_at      *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*ChunkMastery, error)
	predicates               []predicate.ChunkMastery
}

var _ ent.Mutation = (*ChunkMasteryMutation)(nil)

// chunkmasteryOption allows management of the mutation configuration using functional options.
type chunkmasteryOption func(*ChunkMasteryMutation)

// newChunkMasteryMutation creates new mutation for the ChunkMastery entity.
func newChunkMasteryMutation(c config, op Op, opts ...chunkmasteryOption) *ChunkMasteryMutation {
	m := &ChunkMasteryMutation{
		config:        c,
		op:            op,
		typ:           TypeChunkMastery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChunkMasteryID sets the ID field of the mutation.
func withChunkMasteryID(id int) chunkmasteryOption {
	return func(m *ChunkMasteryMutation) {
		var (
			err   error
			once  sync.Once
			value *ChunkMastery
		)
		m.oldValue = func(ctx context.Context) (*ChunkMastery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChunkMastery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChunkMastery sets the old ChunkMastery of the mutation.
func withChunkMastery(node *ChunkMastery) chunkmasteryOption {
	return func(m *ChunkMasteryMutation) {
		m.oldValue = func(context.Context) (*ChunkMastery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChunkMasteryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChunkMasteryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChunkMasteryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChunkMasteryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChunkMastery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ChunkMasteryMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChunkMasteryMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChunkMastery entity.
// If the ChunkMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMasteryMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChunkMasteryMutation) ResetUserID() {
	m.user_id = nil
}

// SetChunkID sets the "chunk_id" field.
func (m *ChunkMasteryMutation) SetChunkID(u uuid.UUID) {
	m.chunk_id = &u
}

// ChunkID returns the value of the "chunk_id" field in the mutation.
func (m *ChunkMasteryMutation) ChunkID() (r uuid.UUID, exists bool) {
	v := m.chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkID returns the old "chunk_id" field's value of the ChunkMastery entity.
// If the ChunkMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMasteryMutation) OldChunkID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkID: %w", err)
	}
	return oldValue.ChunkID, nil
}

// ResetChunkID resets all changes to the "chunk_id" field.
func (m *ChunkMasteryMutation) ResetChunkID() {
	m.chunk_id = nil
}

// SetCourseID sets the "course_id" field.
func (m *ChunkMasteryMutation) SetCourseID(u uuid.UUID) {
	m.course_id = &u
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *ChunkMasteryMutation) CourseID() (r uuid.UUID, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the ChunkMastery entity.
// If the ChunkMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMasteryMutation) OldCourseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *ChunkMasteryMutation) ResetCourseID() {
	m.course_id = nil
}

// SetMasteryScore sets the "mastery_score" field.
func (m *ChunkMasteryMutation) SetMasteryScore(i int) {
	m.mastery_score = &i
	m.addmastery_score = nil
}

// MasteryScore returns the value of the "mastery_score" field in the mutation.
func (m *ChunkMasteryMutation) MasteryScore() (r int, exists bool) {
	v := m.mastery_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryScore returns the old "mastery_score" field's value of the ChunkMastery entity.
// If the ChunkMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMasteryMutation) OldMasteryScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryScore: %w", err)
	}
	return oldValue.MasteryScore, nil
}

// AddMasteryScore adds i to the "mastery_score" field.
func (m *ChunkMasteryMutation) AddMasteryScore(i int) {
	if m.addmastery_score != nil {
		*m.addmastery_score += i
	} else {
		m.addmastery_score = &i
	}
}

// AddedMasteryScore returns the value that was added to the "mastery_score" field in this mutation.
func (m *ChunkMasteryMutation) AddedMasteryScore() (r int, exists bool) {
	v := m.addmastery_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryScore resets all changes to the "mastery_score" field.
func (m *ChunkMasteryMutation) ResetMasteryScore() {
	m.mastery_score = nil
	m.addmastery_score = nil
}

// SetLastReviewedSession sets the "last_reviewed_session" field.
func (m *ChunkMasteryMutation) SetLastReviewedSession(i int) {
	m.last_reviewed_session = &i
	m.addlast_reviewed_session = nil
}

// LastReviewedSession returns the value of the "last_reviewed_session" field in the mutation.
func (m *ChunkMasteryMutation) LastReviewedSession() (r int, exists bool) {
	v := m.last_reviewed_session
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedSession returns the old "last_reviewed_session" field's value of the ChunkMastery entity.
// If the ChunkMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMasteryMutation) OldLastReviewedSession(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedSession is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedSession requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedSession: %w", err)
	}
	return oldValue.LastReviewedSession, nil
}

// AddLastReviewedSession adds i to the "last_reviewed_session" field.
func (m *ChunkMasteryMutation) AddLastReviewedSession(i int) {
	if m.addlast_reviewed_session != nil {
		*m.addlast_reviewed_session += i
	} else {
		m.addlast_reviewed_session = &i
	}
}

// AddedLastReviewedSession returns the value that was added to the "last_reviewed_session" field in this mutation.
func (m *ChunkMasteryMutation) AddedLastReviewedSession() (r int, exists bool) {
	v := m.addlast_reviewed_session
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastReviewedSession resets all changes to the "last_reviewed_session" field.
func (m *ChunkMasteryMutation) ResetLastReviewedSession() {
	m.last_reviewed_session = nil
	m.addlast_reviewed_session = nil
}

// SetLastFullReviewAt sets the "last_full_review_at" field.
func (m *ChunkMasteryMutation) SetLastFullReviewAt(t time.Time) {
	m.last_full_review_at = &t
}

// LastFullReviewAt returns the value of the "last_full_review_at" field in the mutation.
func (m *ChunkMasteryMutation) LastFullReviewAt() (r time.Time, exists bool) {
	v := m.last_full_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFullReviewAt returns the old "last_full_review_at" field's value of the ChunkMastery entity.
// If the ChunkMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMasteryMutation) OldLastFullReviewAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFullReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFullReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFullReviewAt: %w", err)
	}
	return oldValue.LastFullReviewAt, nil
}

// ClearLastFullReviewAt clears the value of the "last_full_review_at" field.
func (m *ChunkMasteryMutation) ClearLastFullReviewAt() {
	m.last_full_review_at = nil
	m.clearedFields[chunkmastery.FieldLastFullReviewAt] = struct{}{}
}

// LastFullReviewAtCleared returns if the "last_full_review_at" field was cleared in this mutation.
func (m *ChunkMasteryMutation) LastFullReviewAtCleared() bool {
	_, ok := m.clearedFields[chunkmastery.FieldLastFullReviewAt]
	return ok
}

// ResetLastFullReviewAt resets all changes to the "last_full_review_at" field.
func (m *ChunkMasteryMutation) ResetLastFullReviewAt() {
	m.last_full_review_at = nil
	delete(m.clearedFields, chunkmastery.FieldLastFullReviewAt)
}

// Where appends a list predicates to the ChunkMasteryMutation builder.
func (m *ChunkMasteryMutation) Where(ps ...predicate.ChunkMastery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChunkMasteryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChunkMasteryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChunkMastery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChunkMasteryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChunkMasteryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChunkMastery).
func (m *ChunkMasteryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChunkMasteryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, chunkmastery.FieldUserID)
	}
	if m.chunk_id != nil {
		fields = append(fields, chunkmastery.FieldChunkID)
	}
	if m.course_id != nil {
		fields = append(fields, chunkmastery.FieldCourseID)
	}
	if m.mastery_score != nil {
		fields = append(fields, chunkmastery.FieldMasteryScore)
	}
	if m.last_reviewed_session != nil {
		fields = append(fields, chunkmastery.FieldLastReviewedSession)
	}
	if m.last_full_review_at != nil {
		fields = append(fields, chunkmastery.FieldLastFullReviewAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChunkMasteryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chunkmastery.FieldUserID:
		return m.UserID()
	case chunkmastery.FieldChunkID:
		return m.ChunkID()
	case chunkmastery.FieldCourseID:
		return m.CourseID()
	case chunkmastery.FieldMasteryScore:
		return m.MasteryScore()
	case chunkmastery.FieldLastReviewedSession:
		return m.LastReviewedSession()
	case chunkmastery.FieldLastFullReviewAt:
		return m.LastFullReviewAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChunkMasteryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chunkmastery.FieldUserID:
		return m.OldUserID(ctx)
	case chunkmastery.FieldChunkID:
		return m.OldChunkID(ctx)
	case chunkmastery.FieldCourseID:
		return m.OldCourseID(ctx)
	case chunkmastery.FieldMasteryScore:
		return m.OldMasteryScore(ctx)
	case chunkmastery.FieldLastReviewedSession:
		return m.OldLastReviewedSession(ctx)
	case chunkmastery.FieldLastFullReviewAt:
		return m.OldLastFullReviewAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChunkMastery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkMasteryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chunkmastery.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chunkmastery.FieldChunkID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkID(v)
		return nil
	case chunkmastery.FieldCourseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case chunkmastery.FieldMasteryScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryScore(v)
		return nil
	case chunkmastery.FieldLastReviewedSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedSession(v)
		return nil
	case chunkmastery.FieldLastFullReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFullReviewAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChunkMastery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChunkMasteryMutation) AddedFields() []string {
	var fields []string
	if m.addmastery_score != nil {
		fields = append(fields, chunkmastery.FieldMasteryScore)
	}
	if m.addlast_reviewed_session != nil {
		fields = append(fields, chunkmastery.FieldLastReviewedSession)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChunkMasteryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chunkmastery.FieldMasteryScore:
		return m.AddedMasteryScore()
	case chunkmastery.FieldLastReviewedSession:
		return m.AddedLastReviewedSession()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkMasteryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chunkmastery.FieldMasteryScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryScore(v)
		return nil
	case chunkmastery.FieldLastReviewedSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastReviewedSession(v)
		return nil
	}
	return fmt.Errorf("unknown ChunkMastery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChunkMasteryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chunkmastery.FieldLastFullReviewAt) {
		fields = append(fields, chunkmastery.FieldLastFullReviewAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChunkMasteryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChunkMasteryMutation) ClearField(name string) error {
	switch name {
	case chunkmastery.FieldLastFullReviewAt:
		m.ClearLastFullReviewAt()
		return nil
	}
	return fmt.Errorf("unknown ChunkMastery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChunkMasteryMutation) ResetField(name string) error {
	switch name {
	case chunkmastery.FieldUserID:
		m.ResetUserID()
		return nil
	case chunkmastery.FieldChunkID:
		m.ResetChunkID()
		return nil
	case chunkmastery.FieldCourseID:
		m.ResetCourseID()
		return nil
	case chunkmastery.FieldMasteryScore:
		m.ResetMasteryScore()
		return nil
	case chunkmastery.FieldLastReviewedSession:
		m.ResetLastReviewedSession()
		return nil
	case chunkmastery.FieldLastFullReviewAt:
		m.ResetLastFullReviewAt()
		return nil
	}
	return fmt.Errorf("unknown ChunkMastery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChunkMasteryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChunkMasteryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChunkMasteryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChunkMasteryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChunkMasteryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChunkMasteryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChunkMasteryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChunkMastery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChunkMasteryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChunkMastery edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	chunk_id           *uuid.UUID
	course_id          *uuid.UUID
	usage_category     *string
	bloom_level        *string
	concept_title      *string
	parent_question_id *uuid.UUID
	payload            *schema.QuestionPayload
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Question, error)
	predicates         []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id uuid.UUID) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChunkID sets the "chunk_id" field.
func (m *QuestionMutation) SetChunkID(u uuid.UUID) {
	m.chunk_id = &u
}

// ChunkID returns the value of the "chunk_id" field in the mutation.
func (m *QuestionMutation) ChunkID() (r uuid.UUID, exists bool) {
	v := m.chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkID returns the old "chunk_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldChunkID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkID: %w", err)
	}
	return oldValue.ChunkID, nil
}

// ResetChunkID resets all changes to the "chunk_id" field.
func (m *QuestionMutation) ResetChunkID() {
	m.chunk_id = nil
}

// SetCourseID sets the "course_id" field.
func (m *QuestionMutation) SetCourseID(u uuid.UUID) {
	m.course_id = &u
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *QuestionMutation) CourseID() (r uuid.UUID, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCourseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *QuestionMutation) ResetCourseID() {
	m.course_id = nil
}

// SetUsageCategory sets the "usage_category" field.
func (m *QuestionMutation) SetUsageCategory(s string) {
	m.usage_category = &s
}

// UsageCategory returns the value of the "usage_category" field in the mutation.
func (m *QuestionMutation) UsageCategory() (r string, exists bool) {
	v := m.usage_category
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCategory returns the old "usage_category" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUsageCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCategory: %w", err)
	}
	return oldValue.UsageCategory, nil
}

// ResetUsageCategory resets all changes to the "usage_category" field.
func (m *QuestionMutation) ResetUsageCategory() {
	m.usage_category = nil
}

// SetBloomLevel sets the "bloom_level" field.
func (m *QuestionMutation) SetBloomLevel(s string) {
	m.bloom_level = &s
}

// BloomLevel returns the value of the "bloom_level" field in the mutation.
func (m *QuestionMutation) BloomLevel() (r string, exists bool) {
	v := m.bloom_level
	if v == nil {
		return
	}
	return *v, true
}

// OldBloomLevel returns the old "bloom_level" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldBloomLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloomLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloomLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloomLevel: %w", err)
	}
	return oldValue.BloomLevel, nil
}

// ResetBloomLevel resets all changes to the "bloom_level" field.
func (m *QuestionMutation) ResetBloomLevel() {
	m.bloom_level = nil
}

// SetConceptTitle sets the "concept_title" field.
func (m *QuestionMutation) SetConceptTitle(s string) {
	m.concept_title = &s
}

// ConceptTitle returns the value of the "concept_title" field in the mutation.
func (m *QuestionMutation) ConceptTitle() (r string, exists bool) {
	v := m.concept_title
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptTitle returns the old "concept_title" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldConceptTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptTitle: %w", err)
	}
	return oldValue.ConceptTitle, nil
}

// ResetConceptTitle resets all changes to the "concept_title" field.
func (m *QuestionMutation) ResetConceptTitle() {
	m.concept_title = nil
}

// SetParentQuestionID sets the "parent_question_id" field.
func (m *QuestionMutation) SetParentQuestionID(u uuid.UUID) {
	m.parent_question_id = &u
}

// ParentQuestionID returns the value of the "parent_question_id" field in the mutation.
func (m *QuestionMutation) ParentQuestionID() (r uuid.UUID, exists bool) {
	v := m.parent_question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentQuestionID returns the old "parent_question_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldParentQuestionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentQuestionID: %w", err)
	}
	return oldValue.ParentQuestionID, nil
}

// ClearParentQuestionID clears the value of the "parent_question_id" field.
func (m *QuestionMutation) ClearParentQuestionID() {
	m.parent_question_id = nil
	m.clearedFields[question.FieldParentQuestionID] = struct{}{}
}

// ParentQuestionIDCleared returns if the "parent_question_id" field was cleared in this mutation.
func (m *QuestionMutation) ParentQuestionIDCleared() bool {
	_, ok := m.clearedFields[question.FieldParentQuestionID]
	return ok
}

// ResetParentQuestionID resets all changes to the "parent_question_id" field.
func (m *QuestionMutation) ResetParentQuestionID() {
	m.parent_question_id = nil
	delete(m.clearedFields, question.FieldParentQuestionID)
}

// SetPayload sets the "payload" field.
func (m *QuestionMutation) SetPayload(sp schema.QuestionPayload) {
	m.payload = &sp
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QuestionMutation) Payload() (r schema.QuestionPayload, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPayload(ctx context.Context) (v schema.QuestionPayload, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *QuestionMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.chunk_id != nil {
		fields = append(fields, question.FieldChunkID)
	}
	if m.course_id != nil {
		fields = append(fields, question.FieldCourseID)
	}
	if m.usage_category != nil {
		fields = append(fields, question.FieldUsageCategory)
	}
	if m.bloom_level != nil {
		fields = append(fields, question.FieldBloomLevel)
	}
	if m.concept_title != nil {
		fields = append(fields, question.FieldConceptTitle)
	}
	if m.parent_question_id != nil {
		fields = append(fields, question.FieldParentQuestionID)
	}
	if m.payload != nil {
		fields = append(fields, question.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldChunkID:
		return m.ChunkID()
	case question.FieldCourseID:
		return m.CourseID()
	case question.FieldUsageCategory:
		return m.UsageCategory()
	case question.FieldBloomLevel:
		return m.BloomLevel()
	case question.FieldConceptTitle:
		return m.ConceptTitle()
	case question.FieldParentQuestionID:
		return m.ParentQuestionID()
	case question.FieldPayload:
		return m.Payload()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldChunkID:
		return m.OldChunkID(ctx)
	case question.FieldCourseID:
		return m.OldCourseID(ctx)
	case question.FieldUsageCategory:
		return m.OldUsageCategory(ctx)
	case question.FieldBloomLevel:
		return m.OldBloomLevel(ctx)
	case question.FieldConceptTitle:
		return m.OldConceptTitle(ctx)
	case question.FieldParentQuestionID:
		return m.OldParentQuestionID(ctx)
	case question.FieldPayload:
		return m.OldPayload(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldChunkID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkID(v)
		return nil
	case question.FieldCourseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case question.FieldUsageCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCategory(v)
		return nil
	case question.FieldBloomLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloomLevel(v)
		return nil
	case question.FieldConceptTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptTitle(v)
		return nil
	case question.FieldParentQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentQuestionID(v)
		return nil
	case question.FieldPayload:
		v, ok := value.(schema.QuestionPayload)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldParentQuestionID) {
		fields = append(fields, question.FieldParentQuestionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldParentQuestionID:
		m.ClearParentQuestionID()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldChunkID:
		m.ResetChunkID()
		return nil
	case question.FieldCourseID:
		m.ResetCourseID()
		return nil
	case question.FieldUsageCategory:
		m.ResetUsageCategory()
		return nil
	case question.FieldBloomLevel:
		m.ResetBloomLevel()
		return nil
	case question.FieldConceptTitle:
		m.ResetConceptTitle()
		return nil
	case question.FieldParentQuestionID:
		m.ResetParentQuestionID()
		return nil
	case question.FieldPayload:
		m.ResetPayload()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// SessionCacheMutation represents an operation that mutates the SessionCache nodes in the graph.
type SessionCacheMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *uuid.UUID
	course_id         *uuid.UUID
	session_id        *string
	session_number    *int
	addsession_number *int
	review_index      *int
	addreview_index   *int
	queue             *[]schema.CachedItem
	appendqueue       []schema.CachedItem
	expires_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SessionCache, error)
	predicates        []predicate.SessionCache
}

var _ ent.Mutation = (*SessionCacheMutation)(nil)

// sessioncacheOption allows management of the mutation configuration using functional options.
type sessioncacheOption func(*SessionCacheMutation)

// newSessionCacheMutation creates new mutation for the SessionCache entity.
func newSessionCacheMutation(c config, op Op, opts ...sessioncacheOption) *SessionCacheMutation {
	m := &SessionCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionCacheID sets the ID field of the mutation.
func withSessionCacheID(id int) sessioncacheOption {
	return func(m *SessionCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionCache
		)
		m.oldValue = func(ctx context.Context) (*SessionCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionCache sets the old SessionCache of the mutation.
func withSessionCache(node *SessionCache) sessioncacheOption {
	return func(m *SessionCacheMutation) {
		m.oldValue = func(context.Context) (*SessionCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionCacheMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionCacheMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionCacheMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionCacheMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionCache entity.
// If the SessionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionCacheMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionCacheMutation) ResetUserID() {
	m.user_id = nil
}

// SetCourseID sets the "course_id" field.
func (m *SessionCacheMutation) SetCourseID(u uuid.UUID) {
	m.course_id = &u
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *SessionCacheMutation) CourseID() (r uuid.UUID, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the SessionCache entity.
// If the SessionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionCacheMutation) OldCourseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *SessionCacheMutation) ResetCourseID() {
	m.course_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionCacheMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionCacheMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionCache entity.
// If the SessionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionCacheMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionCacheMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSessionNumber sets the "session_number" field.
func (m *SessionCacheMutation) SetSessionNumber(i int) {
	m.session_number = &i
	m.addsession_number = nil
}

// SessionNumber returns the value of the "session_number" field in the mutation.
func (m *SessionCacheMutation) SessionNumber() (r int, exists bool) {
	v := m.session_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionNumber returns the old "session_number" field's value of the SessionCache entity.
// If the SessionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionCacheMutation) OldSessionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionNumber: %w", err)
	}
	return oldValue.SessionNumber, nil
}

// AddSessionNumber adds i to the "session_number" field.
func (m *SessionCacheMutation) AddSessionNumber(i int) {
	if m.addsession_number != nil {
		*m.addsession_number += i
	} else {
		m.addsession_number = &i
	}
}

// AddedSessionNumber returns the value that was added to the "session_number" field in this mutation.
func (m *SessionCacheMutation) AddedSessionNumber() (r int, exists bool) {
	v := m.addsession_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionNumber resets all changes to the "session_number" field.
func (m *SessionCacheMutation) ResetSessionNumber() {
	m.session_number = nil
	m.addsession_number = nil
}

// SetReviewIndex sets the "review_index" field.
func (m *SessionCacheMutation) SetReviewIndex(i int) {
	m.review_index = &i
	m.addreview_index = nil
}

// ReviewIndex returns the value of the "review_index" field in the mutation.
func (m *SessionCacheMutation) ReviewIndex() (r int, exists bool) {
	v := m.review_index
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewIndex returns the old "review_index" field's value of the SessionCache entity.
// If the SessionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionCacheMutation) OldReviewIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewIndex: %w", err)
	}
	return oldValue.ReviewIndex, nil
}

// AddReviewIndex adds i to the "review_index" field.
func (m *SessionCacheMutation) AddReviewIndex(i int) {
	if m.addreview_index != nil {
		*m.addreview_index += i
	} else {
		m.addreview_index = &i
	}
}

// AddedReviewIndex returns the value that was added to the "review_index" field in this mutation.
func (m *SessionCacheMutation) AddedReviewIndex() (r int, exists bool) {
	v := m.addreview_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewIndex resets all changes to the "review_index" field.
func (m *SessionCacheMutation) ResetReviewIndex() {
	m.review_index = nil
	m.addreview_index = nil
}

// SetQueue sets the "queue" field.
func (m *SessionCacheMutation) SetQueue(si []schema.CachedItem) {
	m.queue = &si
	m.appendqueue = nil
}

// Queue returns the value of the "queue" field in the mutation.
func (m *SessionCacheMutation) Queue() (r []schema.CachedItem, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the SessionCache entity.
// If the SessionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionCacheMutation) OldQueue(ctx context.Context) (v []schema.CachedItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// AppendQueue adds si to the "queue" field.
func (m *SessionCacheMutation) AppendQueue(si []schema.CachedItem) {
	m.appendqueue = append(m.appendqueue, si...)
}

// AppendedQueue returns the list of values that were appended to the "queue" field in this mutation.
func (m *SessionCacheMutation) AppendedQueue() ([]schema.CachedItem, bool) {
	if len(m.appendqueue) == 0 {
		return nil, false
	}
	return m.appendqueue, true
}

// ResetQueue resets all changes to the "queue" field.
func (m *SessionCacheMutation) ResetQueue() {
	m.queue = nil
	m.appendqueue = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *SessionCacheMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SessionCacheMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the SessionCache entity.
// If the SessionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionCacheMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SessionCacheMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the SessionCacheMutation builder.
func (m *SessionCacheMutation) Where(ps ...predicate.SessionCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionCache).
func (m *SessionCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionCacheMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, sessioncache.FieldUserID)
	}
	if m.course_id != nil {
		fields = append(fields, sessioncache.FieldCourseID)
	}
	if m.session_id != nil {
		fields = append(fields, sessioncache.FieldSessionID)
	}
	if m.session_number != nil {
		fields = append(fields, sessioncache.FieldSessionNumber)
	}
	if m.review_index != nil {
		fields = append(fields, sessioncache.FieldReviewIndex)
	}
	if m.queue != nil {
		fields = append(fields, sessioncache.FieldQueue)
	}
	if m.expires_at != nil {
		fields = append(fields, sessioncache.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessioncache.FieldUserID:
		return m.UserID()
	case sessioncache.FieldCourseID:
		return m.CourseID()
	case sessioncache.FieldSessionID:
		return m.SessionID()
	case sessioncache.FieldSessionNumber:
		return m.SessionNumber()
	case sessioncache.FieldReviewIndex:
		return m.ReviewIndex()
	case sessioncache.FieldQueue:
		return m.Queue()
	case sessioncache.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessioncache.FieldUserID:
		return m.OldUserID(ctx)
	case sessioncache.FieldCourseID:
		return m.OldCourseID(ctx)
	case sessioncache.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessioncache.FieldSessionNumber:
		return m.OldSessionNumber(ctx)
	case sessioncache.FieldReviewIndex:
		return m.OldReviewIndex(ctx)
	case sessioncache.FieldQueue:
		return m.OldQueue(ctx)
	case sessioncache.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessioncache.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessioncache.FieldCourseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case sessioncache.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessioncache.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionNumber(v)
		return nil
	case sessioncache.FieldReviewIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewIndex(v)
		return nil
	case sessioncache.FieldQueue:
		v, ok := value.([]schema.CachedItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case sessioncache.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionCacheMutation) AddedFields() []string {
	var fields []string
	if m.addsession_number != nil {
		fields = append(fields, sessioncache.FieldSessionNumber)
	}
	if m.addreview_index != nil {
		fields = append(fields, sessioncache.FieldReviewIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionCacheMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessioncache.FieldSessionNumber:
		return m.AddedSessionNumber()
	case sessioncache.FieldReviewIndex:
		return m.AddedReviewIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessioncache.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionNumber(v)
		return nil
	case sessioncache.FieldReviewIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewIndex(v)
		return nil
	}
	return fmt.Errorf("unknown SessionCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionCacheMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionCacheMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionCacheMutation) ResetField(name string) error {
	switch name {
	case sessioncache.FieldUserID:
		m.ResetUserID()
		return nil
	case sessioncache.FieldCourseID:
		m.ResetCourseID()
		return nil
	case sessioncache.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessioncache.FieldSessionNumber:
		m.ResetSessionNumber()
		return nil
	case sessioncache.FieldReviewIndex:
		m.ResetReviewIndex()
		return nil
	case sessioncache.FieldQueue:
		m.ResetQueue()
		return nil
	case sessioncache.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown SessionCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionCache edge %s", name)
}

// SessionCounterMutation represents an operation that mutates the SessionCounter nodes in the graph.
type SessionCounterMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *uuid.UUID
	course_id          *uuid.UUID
	current_session    *int
	addcurrent_session *int
	last_session_date  *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*SessionCounter, error)
	predicates         []predicate.SessionCounter
}

var _ ent.Mutation = (*SessionCounterMutation)(nil)

// sessioncounterOption allows management of the mutation configuration using functional options.
type sessioncounterOption func(*SessionCounterMutation)

// newSessionCounterMutation creates new mutation for the SessionCounter entity.
func newSessionCounterMutation(c config, op Op, opts ...sessioncounterOption) *SessionCounterMutation {
	m := &SessionCounterMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionCounterID sets the ID field of the mutation.
func withSessionCounterID(id int) sessioncounterOption {
	return func(m *SessionCounterMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionCounter
		)
		m.oldValue = func(ctx context.Context) (*SessionCounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionCounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionCounter sets the old SessionCounter of the mutation.
func withSessionCounter(node *SessionCounter) sessioncounterOption {
	return func(m *SessionCounterMutation) {
		m.oldValue = func(context.Context) (*SessionCounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionCounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionCounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionCounterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionCounterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionCounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionCounterMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionCounterMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionCounter entity.
// If the SessionCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionCounterMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionCounterMutation) ResetUserID() {
	m.user_id = nil
}

// SetCourseID sets the "course_id" field.
func (m *SessionCounterMutation) SetCourseID(u uuid.UUID) {
	m.course_id = &u
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *SessionCounterMutation) CourseID() (r uuid.UUID, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the SessionCounter entity.
// If the SessionCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionCounterMutation) OldCourseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *SessionCounterMutation) ResetCourseID() {
	m.course_id = nil
}

// SetCurrentSession sets the "current_session" field.
func (m *SessionCounterMutation) SetCurrentSession(i int) {
	m.current_session = &i
	m.addcurrent_session = nil
}

// CurrentSession returns the value of the "current_session" field in the mutation.
func (m *SessionCounterMutation) CurrentSession() (r int, exists bool) {
	v := m.current_session
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentSession returns the old "current_session" field's value of the SessionCounter entity.
// If the SessionCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionCounterMutation) OldCurrentSession(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentSession is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentSession requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentSession: %w", err)
	}
	return oldValue.CurrentSession, nil
}

// AddCurrentSession adds i to the "current_session" field.
func (m *SessionCounterMutation) AddCurrentSession(i int) {
	if m.addcurrent_session != nil {
		*m.addcurrent_session += i
	} else {
		m.addcurrent_session = &i
	}
}

// AddedCurrentSession returns the value that was added to the "current_session" field in this mutation.
func (m *SessionCounterMutation) AddedCurrentSession() (r int, exists bool) {
	v := m.addcurrent_session
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentSession resets all changes to the "current_session" field.
func (m *SessionCounterMutation) ResetCurrentSession() {
	m.current_session = nil
	m.addcurrent_session = nil
}

// SetLastSessionDate sets the "last_session_date" field.
func (m *SessionCounterMutation) SetLastSessionDate(s string) {
	m.last_session_date = &s
}

// LastSessionDate returns the value of the "last_session_date" field in the mutation.
func (m *SessionCounterMutation) LastSessionDate() (r string, exists bool) {
	v := m.last_session_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSessionDate returns the old "last_session_date" field's value of the SessionCounter entity.
// If the SessionCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionCounterMutation) OldLastSessionDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSessionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSessionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSessionDate: %w", err)
	}
	return oldValue.LastSessionDate, nil
}

// ResetLastSessionDate resets all changes to the "last_session_date" field.
func (m *SessionCounterMutation) ResetLastSessionDate() {
	m.last_session_date = nil
}

// Where appends a list predicates to the SessionCounterMutation builder.
func (m *SessionCounterMutation) Where(ps ...predicate.SessionCounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionCounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionCounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionCounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionCounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionCounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionCounter).
func (m *SessionCounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionCounterMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, sessioncounter.FieldUserID)
	}
	if m.course_id != nil {
		fields = append(fields, sessioncounter.FieldCourseID)
	}
	if m.current_session != nil {
		fields = append(fields, sessioncounter.FieldCurrentSession)
	}
	if m.last_session_date != nil {
		fields = append(fields, sessioncounter.FieldLastSessionDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionCounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessioncounter.FieldUserID:
		return m.UserID()
	case sessioncounter.FieldCourseID:
		return m.CourseID()
	case sessioncounter.FieldCurrentSession:
		return m.CurrentSession()
	case sessioncounter.FieldLastSessionDate:
		return m.LastSessionDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionCounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessioncounter.FieldUserID:
		return m.OldUserID(ctx)
	case sessioncounter.FieldCourseID:
		return m.OldCourseID(ctx)
	case sessioncounter.FieldCurrentSession:
		return m.OldCurrentSession(ctx)
	case sessioncounter.FieldLastSessionDate:
		return m.OldLastSessionDate(ctx)
	}
	return nil, fmt.Errorf("unknown SessionCounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionCounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessioncounter.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessioncounter.FieldCourseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case sessioncounter.FieldCurrentSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentSession(v)
		return nil
	case sessioncounter.FieldLastSessionDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSessionDate(v)
		return nil
	}
	return fmt.Errorf("unknown SessionCounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionCounterMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_session != nil {
		fields = append(fields, sessioncounter.FieldCurrentSession)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionCounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessioncounter.FieldCurrentSession:
		return m.AddedCurrentSession()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionCounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessioncounter.FieldCurrentSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentSession(v)
		return nil
	}
	return fmt.Errorf("unknown SessionCounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionCounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionCounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionCounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionCounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionCounterMutation) ResetField(name string) error {
	switch name {
	case sessioncounter.FieldUserID:
		m.ResetUserID()
		return nil
	case sessioncounter.FieldCourseID:
		m.ResetCourseID()
		return nil
	case sessioncounter.FieldCurrentSession:
		m.ResetCurrentSession()
		return nil
	case sessioncounter.FieldLastSessionDate:
		m.ResetLastSessionDate()
		return nil
	}
	return fmt.Errorf("unknown SessionCounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionCounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionCounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionCounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionCounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionCounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionCounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionCounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionCounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionCounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionCounter edge %s", name)
}

// UserQuestionStatusMutation represents an operation that mutates the UserQuestionStatus nodes in the graph.
type UserQuestionStatusMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	user_id                *uuid.UUID
	question_id            *uuid.UUID
	course_id              *uuid.UUID
	status                 *string
	success_streak         *int
	addsuccess_streak      *int
	fail_streak            *int
	addfail_streak         *int
	next_review_session    *int
	addnext_review_session *int
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*UserQuestionStatus, error)
	predicates             []predicate.UserQuestionStatus
}

var _ ent.Mutation = (*UserQuestionStatusMutation)(nil)

// userquestionstatusOption allows management of the mutation configuration using functional options.
type userquestionstatusOption func(*UserQuestionStatusMutation)

// newUserQuestionStatusMutation creates new mutation for the UserQuestionStatus entity.
func newUserQuestionStatusMutation(c config, op Op, opts ...userquestionstatusOption) *UserQuestionStatusMutation {
	m := &UserQuestionStatusMutation{
		config:        c,
		op:            op,
		typ:           TypeUserQuestionStatus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserQuestionStatusID sets the ID field of the mutation.
func withUserQuestionStatusID(id int) userquestionstatusOption {
	return func(m *UserQuestionStatusMutation) {
		var (
			err   error
			once  sync.Once
			value *UserQuestionStatus
		)
		m.oldValue = func(ctx context.Context) (*UserQuestionStatus, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserQuestionStatus.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserQuestionStatus sets the old UserQuestionStatus of the mutation.
func withUserQuestionStatus(node *UserQuestionStatus) userquestionstatusOption {
	return func(m *UserQuestionStatusMutation) {
		m.oldValue = func(context.Context) (*UserQuestionStatus, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserQuestionStatusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserQuestionStatusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserQuestionStatusMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserQuestionStatusMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserQuestionStatus.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserQuestionStatusMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserQuestionStatusMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserQuestionStatus entity.
// If the UserQuestionStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuestionStatusMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserQuestionStatusMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *UserQuestionStatusMutation) SetQuestionID(u uuid.UUID) {
	m.question_id = &u
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *UserQuestionStatusMutation) QuestionID() (r uuid.UUID, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the UserQuestionStatus entity.
// If the UserQuestionStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuestionStatusMutation) OldQuestionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *UserQuestionStatusMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetCourseID sets the "course_id" field.
func (m *UserQuestionStatusMutation) SetCourseID(u uuid.UUID) {
	m.course_id = &u
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *UserQuestionStatusMutation) CourseID() (r uuid.UUID, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the UserQuestionStatus entity.
// If the UserQuestionStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuestionStatusMutation) OldCourseID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *UserQuestionStatusMutation) ResetCourseID() {
	m.course_id = nil
}

// SetStatus sets the "status" field.
func (m *UserQuestionStatusMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UserQuestionStatusMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UserQuestionStatus entity.
// If the UserQuestionStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuestionStatusMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserQuestionStatusMutation) ResetStatus() {
	m.status = nil
}

// SetSuccessStreak sets the "success_streak" field.
func (m *UserQuestionStatusMutation) SetSuccessStreak(i int) {
	m.success_streak = &i
	m.addsuccess_streak = nil
}

// SuccessStreak returns the value of the "success_streak" field in the mutation.
func (m *UserQuestionStatusMutation) SuccessStreak() (r int, exists bool) {
	v := m.success_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessStreak returns the old "success_streak" field's value of the UserQuestionStatus entity.
// If the UserQuestionStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuestionStatusMutation) OldSuccessStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessStreak: %w", err)
	}
	return oldValue.SuccessStreak, nil
}

// AddSuccessStreak adds i to the "success_streak" field.
func (m *UserQuestionStatusMutation) AddSuccessStreak(i int) {
	if m.addsuccess_streak != nil {
		*m.addsuccess_streak += i
	} else {
		m.addsuccess_streak = &i
	}
}

// AddedSuccessStreak returns the value that was added to the "success_streak" field in this mutation.
func (m *UserQuestionStatusMutation) AddedSuccessStreak() (r int, exists bool) {
	v := m.addsuccess_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessStreak resets all changes to the "success_streak" field.
func (m *UserQuestionStatusMutation) ResetSuccessStreak() {
	m.success_streak = nil
	m.addsuccess_streak = nil
}

// SetFailStreak sets the "fail_streak" field.
func (m *UserQuestionStatusMutation) SetFailStreak(i int) {
	m.fail_streak = &i
	m.addfail_streak = nil
}

// FailStreak returns the value of the "fail_streak" field in the mutation.
func (m *UserQuestionStatusMutation) FailStreak() (r int, exists bool) {
	v := m.fail_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldFailStreak returns the old "fail_streak" field's value of the UserQuestionStatus entity.
// If the UserQuestionStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuestionStatusMutation) OldFailStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailStreak: %w", err)
	}
	return oldValue.FailStreak, nil
}

// AddFailStreak adds i to the "fail_streak" field.
func (m *UserQuestionStatusMutation) AddFailStreak(i int) {
	if m.addfail_streak != nil {
		*m.addfail_streak += i
	} else {
		m.addfail_streak = &i
	}
}

// AddedFailStreak returns the value that was added to the "fail_streak" field in this mutation.
func (m *UserQuestionStatusMutation) AddedFailStreak() (r int, exists bool) {
	v := m.addfail_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailStreak resets all changes to the "fail_streak" field.
func (m *UserQuestionStatusMutation) ResetFailStreak() {
	m.fail_streak = nil
	m.addfail_streak = nil
}

// SetNextReviewSession sets the "next_review_session" field.
func (m *UserQuestionStatusMutation) SetNextReviewSession(i int) {
	m.next_review_session = &i
	m.addnext_review_session = nil
}

// NextReviewSession returns the value of the "next_review_session" field in the mutation.
func (m *UserQuestionStatusMutation) NextReviewSession() (r int, exists bool) {
	v := m.next_review_session
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewSession returns the old "next_review_session" field's value of the UserQuestionStatus entity.
// If the UserQuestionStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuestionStatusMutation) OldNextReviewSession(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewSession is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewSession requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewSession: %w", err)
	}
	return oldValue.NextReviewSession, nil
}

// AddNextReviewSession adds i to the "next_review_session" field.
func (m *UserQuestionStatusMutation) AddNextReviewSession(i int) {
	if m.addnext_review_session != nil {
		*m.addnext_review_session += i
	} else {
		m.addnext_review_session = &i
	}
}

// AddedNextReviewSession returns the value that was added to the "next_review_session" field in this mutation.
func (m *UserQuestionStatusMutation) AddedNextReviewSession() (r int, exists bool) {
	v := m.addnext_review_session
	if v == nil {
		return
	}
	return *v, true
}

// ResetNextReviewSession resets all changes to the "next_review_session" field.
func (m *UserQuestionStatusMutation) ResetNextReviewSession() {
	m.next_review_session = nil
	m.addnext_review_session = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserQuestionStatusMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserQuestionStatusMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserQuestionStatus entity.
// If the UserQuestionStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserQuestionStatusMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserQuestionStatusMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserQuestionStatusMutation builder.
func (m *UserQuestionStatusMutation) Where(ps ...predicate.UserQuestionStatus) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserQuestionStatusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserQuestionStatusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserQuestionStatus, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserQuestionStatusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserQuestionStatusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserQuestionStatus).
func (m *UserQuestionStatusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserQuestionStatusMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, userquestionstatus.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, userquestionstatus.FieldQuestionID)
	}
	if m.course_id != nil {
		fields = append(fields, userquestionstatus.FieldCourseID)
	}
	if m.status != nil {
		fields = append(fields, userquestionstatus.FieldStatus)
	}
	if m.success_streak != nil {
		fields = append(fields, userquestionstatus.FieldSuccessStreak)
	}
	if m.fail_streak != nil {
		fields = append(fields, userquestionstatus.FieldFailStreak)
	}
	if m.next_review_session != nil {
		fields = append(fields, userquestionstatus.FieldNextReviewSession)
	}
	if m.updated_at != nil {
		fields = append(fields, userquestionstatus.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserQuestionStatusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userquestionstatus.FieldUserID:
		return m.UserID()
	case userquestionstatus.FieldQuestionID:
		return m.QuestionID()
	case userquestionstatus.FieldCourseID:
		return m.CourseID()
	case userquestionstatus.FieldStatus:
		return m.Status()
	case userquestionstatus.FieldSuccessStreak:
		return m.SuccessStreak()
	case userquestionstatus.FieldFailStreak:
		return m.FailStreak()
	case userquestionstatus.FieldNextReviewSession:
		return m.NextReviewSession()
	case userquestionstatus.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserQuestionStatusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userquestionstatus.FieldUserID:
		return m.OldUserID(ctx)
	case userquestionstatus.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case userquestionstatus.FieldCourseID:
		return m.OldCourseID(ctx)
	case userquestionstatus.FieldStatus:
		return m.OldStatus(ctx)
	case userquestionstatus.FieldSuccessStreak:
		return m.OldSuccessStreak(ctx)
	case userquestionstatus.FieldFailStreak:
		return m.OldFailStreak(ctx)
	case userquestionstatus.FieldNextReviewSession:
		return m.OldNextReviewSession(ctx)
	case userquestionstatus.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserQuestionStatus field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserQuestionStatusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userquestionstatus.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userquestionstatus.FieldQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case userquestionstatus.FieldCourseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case userquestionstatus.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case userquestionstatus.FieldSuccessStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessStreak(v)
		return nil
	case userquestionstatus.FieldFailStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailStreak(v)
		return nil
	case userquestionstatus.FieldNextReviewSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewSession(v)
		return nil
	case userquestionstatus.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserQuestionStatus field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserQuestionStatusMutation) AddedFields() []string {
	var fields []string
	if m.addsuccess_streak != nil {
		fields = append(fields, userquestionstatus.FieldSuccessStreak)
	}
	if m.addfail_streak != nil {
		fields = append(fields, userquestionstatus.FieldFailStreak)
	}
	if m.addnext_review_session != nil {
		fields = append(fields, userquestionstatus.FieldNextReviewSession)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserQuestionStatusMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userquestionstatus.FieldSuccessStreak:
		return m.AddedSuccessStreak()
	case userquestionstatus.FieldFailStreak:
		return m.AddedFailStreak()
	case userquestionstatus.FieldNextReviewSession:
		return m.AddedNextReviewSession()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserQuestionStatusMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userquestionstatus.FieldSuccessStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessStreak(v)
		return nil
	case userquestionstatus.FieldFailStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailStreak(v)
		return nil
	case userquestionstatus.FieldNextReviewSession:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNextReviewSession(v)
		return nil
	}
	return fmt.Errorf("unknown UserQuestionStatus numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserQuestionStatusMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserQuestionStatusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserQuestionStatusMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserQuestionStatus nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserQuestionStatusMutation) ResetField(name string) error {
	switch name {
	case userquestionstatus.FieldUserID:
		m.ResetUserID()
		return nil
	case userquestionstatus.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case userquestionstatus.FieldCourseID:
		m.ResetCourseID()
		return nil
	case userquestionstatus.FieldStatus:
		m.ResetStatus()
		return nil
	case userquestionstatus.FieldSuccessStreak:
		m.ResetSuccessStreak()
		return nil
	case userquestionstatus.FieldFailStreak:
		m.ResetFailStreak()
		return nil
	case userquestionstatus.FieldNextReviewSession:
		m.ResetNextReviewSession()
		return nil
	case userquestionstatus.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserQuestionStatus field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserQuestionStatusMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserQuestionStatusMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserQuestionStatusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserQuestionStatusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserQuestionStatusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserQuestionStatusMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserQuestionStatusMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserQuestionStatus unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserQuestionStatusMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserQuestionStatus edge %s", name)
}
