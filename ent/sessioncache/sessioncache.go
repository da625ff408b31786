// Code generated by ent, DO NOT EDIT.

package sessioncache

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessioncache type in the database.
	Label = "session_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSessionNumber holds the string denoting the session_number field in the database.
	FieldSessionNumber = "session_number"
	// FieldReviewIndex holds the string denoting the review_index field in the database.
	FieldReviewIndex = "review_index"
	// FieldQueue holds the string denoting the queue field in the database.
	FieldQueue = "queue"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the sessioncache in the database.
	Table = "session_caches"
)

// Columns holds all SQL columns for sessioncache fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCourseID,
	FieldSessionID,
	FieldSessionNumber,
	FieldReviewIndex,
	FieldQueue,
	FieldExpiresAt,
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
	// DefaultReviewIndex holds the default value on creation for the "review_index" field.
	DefaultReviewIndex int
)

// OrderOption defines the ordering options for the SessionCache queries.
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySessionNumber orders the results by the session_number field.
func BySessionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionNumber, opts...).ToFunc()
}

// ByReviewIndex orders the results by the review_index field.
func ByReviewIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewIndex, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
