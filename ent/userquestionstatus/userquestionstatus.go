// Code generated by ent, DO NOT EDIT.

package userquestionstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userquestionstatus type in the database.
	Label = "user_question_status"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSuccessStreak holds the string denoting the success_streak field in the database.
	FieldSuccessStreak = "success_streak"
	// FieldFailStreak holds the string denoting the fail_streak field in the database.
	FieldFailStreak = "fail_streak"
	// FieldNextReviewSession holds the string denoting the next_review_session field in the database.
	FieldNextReviewSession = "next_review_session"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the userquestionstatus in the database.
	Table = "user_question_status"
)

// Columns holds all SQL columns for userquestionstatus fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuestionID,
	FieldCourseID,
	FieldStatus,
	FieldSuccessStreak,
	FieldFailStreak,
	FieldNextReviewSession,
	FieldUpdatedAt,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultSuccessStreak holds the default value on creation for the "success_streak" field.
	DefaultSuccessStreak int
	// DefaultFailStreak holds the default value on creation for the "fail_streak" field.
	DefaultFailStreak int
	// DefaultNextReviewSession holds the default value on creation for the "next_review_session" field.
	DefaultNextReviewSession int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the UserQuestionStatus queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySuccessStreak orders the results by the success_streak field.
func BySuccessStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessStreak, opts...).ToFunc()
}

// ByFailStreak orders the results by the fail_streak field.
func ByFailStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailStreak, opts...).ToFunc()
}

// ByNextReviewSession orders the results by the next_review_session field.
func ByNextReviewSession(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewSession, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
