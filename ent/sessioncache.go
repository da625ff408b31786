// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/schema"
	"github.com/astiages123/auditpath/ent/sessioncache"
	"github.com/google/uuid"
)

// SessionCache is the model entity for the SessionCache schema.
type SessionCache struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID uuid.UUID `json:"course_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// SessionNumber holds the value of the "session_number" field.
	SessionNumber int `json:"session_number,omitempty"`
	// ReviewIndex holds the value of the "review_index" field.
	ReviewIndex int `json:"review_index,omitempty"`
	// Queue holds the value of the "queue" field.
	Queue []schema.CachedItem `json:"queue,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessioncache.FieldQueue:
			values[i] = new([]byte)
		case sessioncache.FieldID, sessioncache.FieldSessionNumber, sessioncache.FieldReviewIndex:
			values[i] = new(sql.NullInt64)
		case sessioncache.FieldSessionID:
			values[i] = new(sql.NullString)
		case sessioncache.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		case sessioncache.FieldUserID, sessioncache.FieldCourseID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionCache fields.
func (_m *SessionCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessioncache.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessioncache.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case sessioncache.FieldCourseID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value != nil {
				_m.CourseID = *value
			}
		case sessioncache.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessioncache.FieldSessionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_number", values[i])
			} else if value.Valid {
				_m.SessionNumber = int(value.Int64)
			}
		case sessioncache.FieldReviewIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_index", values[i])
			} else if value.Valid {
				_m.ReviewIndex = int(value.Int64)
			}
		case sessioncache.FieldQueue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field queue", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Queue); err != nil {
					return fmt.Errorf("unmarshal field queue: %w", err)
				}
			}
		case sessioncache.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionCache.
// This includes values selected through modifiers, order, etc.
func (_m *SessionCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionCache.
// Note that you need to call SessionCache.Unwrap() before calling this method if this SessionCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionCache) Update() *SessionCacheUpdateOne {
	return NewSessionCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionCache) Unwrap() *SessionCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionCache) String() string {
	var builder strings.Builder
	builder.WriteString("SessionCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseID))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("session_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionNumber))
	builder.WriteString(", ")
	builder.WriteString("review_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewIndex))
	builder.WriteString(", ")
	builder.WriteString("queue=")
	builder.WriteString(fmt.Sprintf("%v", _m.Queue))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionCaches is a parsable slice of SessionCache.
type SessionCaches []*SessionCache
