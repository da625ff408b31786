// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/userquestionstatus"
	"github.com/google/uuid"
)

// UserQuestionStatus is the model entity for the UserQuestionStatus schema.
type UserQuestionStatus struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID uuid.UUID `json:"question_id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID uuid.UUID `json:"course_id,omitempty"`
	// active, pending_followup, or archived
	Status string `json:"status,omitempty"`
	// Consecutive correct-and-fast answers
	SuccessStreak int `json:"success_streak,omitempty"`
	// Consecutive incorrect answers; diagnostic only
	FailStreak int `json:"fail_streak,omitempty"`
	// Session number the item comes due; 0 = not scheduled
	NextReviewSession int `json:"next_review_session,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserQuestionStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userquestionstatus.FieldID, userquestionstatus.FieldSuccessStreak, userquestionstatus.FieldFailStreak, userquestionstatus.FieldNextReviewSession:
			values[i] = new(sql.NullInt64)
		case userquestionstatus.FieldStatus:
			values[i] = new(sql.NullString)
		case userquestionstatus.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case userquestionstatus.FieldUserID, userquestionstatus.FieldQuestionID, userquestionstatus.FieldCourseID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserQuestionStatus fields.
func (_m *UserQuestionStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userquestionstatus.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userquestionstatus.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case userquestionstatus.FieldQuestionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value != nil {
				_m.QuestionID = *value
			}
		case userquestionstatus.FieldCourseID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value != nil {
				_m.CourseID = *value
			}
		case userquestionstatus.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case userquestionstatus.FieldSuccessStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_streak", values[i])
			} else if value.Valid {
				_m.SuccessStreak = int(value.Int64)
			}
		case userquestionstatus.FieldFailStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fail_streak", values[i])
			} else if value.Valid {
				_m.FailStreak = int(value.Int64)
			}
		case userquestionstatus.FieldNextReviewSession:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_session", values[i])
			} else if value.Valid {
				_m.NextReviewSession = int(value.Int64)
			}
		case userquestionstatus.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserQuestionStatus.
// This includes values selected through modifiers, order, etc.
func (_m *UserQuestionStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserQuestionStatus.
// Note that you need to call UserQuestionStatus.Unwrap() before calling this method if this UserQuestionStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserQuestionStatus) Update() *UserQuestionStatusUpdateOne {
	return NewUserQuestionStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserQuestionStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserQuestionStatus) Unwrap() *UserQuestionStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserQuestionStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserQuestionStatus) String() string {
	var builder strings.Builder
	builder.WriteString("UserQuestionStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("success_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessStreak))
	builder.WriteString(", ")
	builder.WriteString("fail_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailStreak))
	builder.WriteString(", ")
	builder.WriteString("next_review_session=")
	builder.WriteString(fmt.Sprintf("%v", _m.NextReviewSession))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserQuestionStatusSlice is a parsable slice of UserQuestionStatus.
type UserQuestionStatusSlice []*UserQuestionStatus
