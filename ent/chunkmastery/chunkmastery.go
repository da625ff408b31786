// Code generated by ent, DO NOT EDIT.

package chunkmastery

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the chunkmastery type in the database.
	Label = "chunk_mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldChunkID holds the string denoting the chunk_id field in the database.
	FieldChunkID = "chunk_id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldMasteryScore holds the string denoting the mastery_score field in the database.
	FieldMasteryScore = "mastery_score"
	// FieldLastReviewedSession holds the string denoting the last_reviewed_session field in the database.
	FieldLastReviewedSession = "last_reviewed_session"
	// FieldLastFullReviewAt holds the string denoting the last_full_review_at field in the database.
	FieldLastFullReviewAt = "last_full_review_at"
	// Table holds the table name of the chunkmastery in the database.
	Table = "chunk_masteries"
)

// Columns holds all SQL columns for chunkmastery fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldChunkID,
	FieldCourseID,
	FieldMasteryScore,
	FieldLastReviewedSession,
	FieldLastFullReviewAt,
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
	// DefaultMasteryScore holds the default value on creation for the "mastery_score" field.
	DefaultMasteryScore int
	// DefaultLastReviewedSession holds the default value on creation for the "last_reviewed_session" field.
	DefaultLastReviewedSession int
)

// OrderOption defines the ordering options for the ChunkMastery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByChunkID orders the results by the chunk_id field.
func ByChunkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByMasteryScore orders the results by the mastery_score field.
func ByMasteryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryScore, opts...).ToFunc()
}

// ByLastReviewedSession orders the results by the last_reviewed_session field.
func ByLastReviewedSession(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedSession, opts...).ToFunc()
}

// ByLastFullReviewAt orders the results by the last_full_review_at field.
func ByLastFullReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFullReviewAt, opts...).ToFunc()
}
