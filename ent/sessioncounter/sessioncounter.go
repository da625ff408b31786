// Code generated by ent, DO NOT EDIT.

package sessioncounter

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessioncounter type in the database.
	Label = "session_counter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldCurrentSession holds the string denoting the current_session field in the database.
	FieldCurrentSession = "current_session"
	// FieldLastSessionDate holds the string denoting the last_session_date field in the database.
	FieldLastSessionDate = "last_session_date"
	// Table holds the table name of the sessioncounter in the database.
	Table = "session_counters"
)

// Columns holds all SQL columns for sessioncounter fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCourseID,
	FieldCurrentSession,
	FieldLastSessionDate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCurrentSession holds the default value on creation for the "current_session" field.
	DefaultCurrentSession int
)

// OrderOption defines the ordering options for the SessionCounter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByCurrentSession orders the results by the current_session field.
func ByCurrentSession(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentSession, opts...).ToFunc()
}

// ByLastSessionDate orders the results by the last_session_date field.
func ByLastSessionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSessionDate, opts...).ToFunc()
}
