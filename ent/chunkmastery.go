// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/chunkmastery"
	"github.com/google/uuid"
)

// ChunkMastery is the model entity for the ChunkMastery schema.
type ChunkMastery struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// ChunkID holds the value of the "chunk_id" field.
	ChunkID uuid.UUID `json:"chunk_id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID uuid.UUID `json:"course_id,omitempty"`
	// 0-100
	MasteryScore int `json:"mastery_score,omitempty"`
	// LastReviewedSession holds the value of the "last_reviewed_session" field.
	LastReviewedSession int `json:"last_reviewed_session,omitempty"`
	// Refreshed when coverage reaches the full-review threshold
	LastFullReviewAt *time.Time `json:"last_full_review_at,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChunkMastery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chunkmastery.FieldID, chunkmastery.FieldMasteryScore, chunkmastery.FieldLastReviewedSession:
			values[i] = new(sql.NullInt64)
		case chunkmastery.FieldLastFullReviewAt:
			values[i] = new(sql.NullTime)
		case chunkmastery.FieldUserID, chunkmastery.FieldChunkID, chunkmastery.FieldCourseID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChunkMastery fields.
func (_m *ChunkMastery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chunkmastery.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case chunkmastery.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case chunkmastery.FieldChunkID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_id", values[i])
			} else if value != nil {
				_m.ChunkID = *value
			}
		case chunkmastery.FieldCourseID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value != nil {
				_m.CourseID = *value
			}
		case chunkmastery.FieldMasteryScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_score", values[i])
			} else if value.Valid {
				_m.MasteryScore = int(value.Int64)
			}
		case chunkmastery.FieldLastReviewedSession:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_session", values[i])
			} else if value.Valid {
				_m.LastReviewedSession = int(value.Int64)
			}
		case chunkmastery.FieldLastFullReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_full_review_at", values[i])
			} else if value.Valid {
				_m.LastFullReviewAt = new(time.Time)
				*_m.LastFullReviewAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChunkMastery.
// This includes values selected through modifiers, order, etc.
func (_m *ChunkMastery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChunkMastery.
// Note that you need to call ChunkMastery.Unwrap() before calling this method if this ChunkMastery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChunkMastery) Update() *ChunkMasteryUpdateOne {
	return NewChunkMasteryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChunkMastery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChunkMastery) Unwrap() *ChunkMastery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChunkMastery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChunkMastery) String() string {
	var builder strings.Builder
	builder.WriteString("ChunkMastery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("chunk_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkID))
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseID))
	builder.WriteString(", ")
	builder.WriteString("mastery_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryScore))
	builder.WriteString(", ")
	builder.WriteString("last_reviewed_session=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastReviewedSession))
	builder.WriteString(", ")
	if v := _m.LastFullReviewAt; v != nil {
		builder.WriteString("last_full_review_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ChunkMasteries is a parsable slice of ChunkMastery.
type ChunkMasteries []*ChunkMastery
