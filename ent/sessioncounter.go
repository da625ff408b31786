// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/sessioncounter"
	"github.com/google/uuid"
)

// SessionCounter is the model entity for the SessionCounter schema.
type SessionCounter struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID uuid.UUID `json:"course_id,omitempty"`
	// CurrentSession holds the value of the "current_session" field.
	CurrentSession int `json:"current_session,omitempty"`
	// Calendar day of the last increment, YYYY-MM-DD in UTC
	LastSessionDate string `json:"last_session_date,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionCounter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessioncounter.FieldID, sessioncounter.FieldCurrentSession:
			values[i] = new(sql.NullInt64)
		case sessioncounter.FieldLastSessionDate:
			values[i] = new(sql.NullString)
		case sessioncounter.FieldUserID, sessioncounter.FieldCourseID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionCounter fields.
func (_m *SessionCounter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessioncounter.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessioncounter.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case sessioncounter.FieldCourseID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value != nil {
				_m.CourseID = *value
			}
		case sessioncounter.FieldCurrentSession:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_session", values[i])
			} else if value.Valid {
				_m.CurrentSession = int(value.Int64)
			}
		case sessioncounter.FieldLastSessionDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_session_date", values[i])
			} else if value.Valid {
				_m.LastSessionDate = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionCounter.
// This includes values selected through modifiers, order, etc.
func (_m *SessionCounter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionCounter.
// Note that you need to call SessionCounter.Unwrap() before calling this method if this SessionCounter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionCounter) Update() *SessionCounterUpdateOne {
	return NewSessionCounterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionCounter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionCounter) Unwrap() *SessionCounter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionCounter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionCounter) String() string {
	var builder strings.Builder
	builder.WriteString("SessionCounter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseID))
	builder.WriteString(", ")
	builder.WriteString("current_session=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentSession))
	builder.WriteString(", ")
	builder.WriteString("last_session_date=")
	builder.WriteString(_m.LastSessionDate)
	builder.WriteByte(')')
	return builder.String()
}

// SessionCounters is a parsable slice of SessionCounter.
type SessionCounters []*SessionCounter
