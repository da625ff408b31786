// Code generated by ent, DO NOT EDIT.

package chunk

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the chunk type in the database.
	Label = "chunk"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldDensityScore holds the string denoting the density_score field in the database.
	FieldDensityScore = "density_score"
	// FieldConceptMap holds the string denoting the concept_map field in the database.
	FieldConceptMap = "concept_map"
	// FieldDifficultyIndex holds the string denoting the difficulty_index field in the database.
	FieldDifficultyIndex = "difficulty_index"
	// FieldPracticeQuota holds the string denoting the practice_quota field in the database.
	FieldPracticeQuota = "practice_quota"
	// FieldArchiveQuota holds the string denoting the archive_quota field in the database.
	FieldArchiveQuota = "archive_quota"
	// FieldExamQuota holds the string denoting the exam_quota field in the database.
	FieldExamQuota = "exam_quota"
	// FieldGenerationStatus holds the string denoting the generation_status field in the database.
	FieldGenerationStatus = "generation_status"
	// Table holds the table name of the chunk in the database.
	Table = "chunks"
)

// Columns holds all SQL columns for chunk fields.
var Columns = []string{
	FieldID,
	FieldCourseID,
	FieldTitle,
	FieldContent,
	FieldPosition,
	FieldWordCount,
	FieldDensityScore,
	FieldConceptMap,
	FieldDifficultyIndex,
	FieldPracticeQuota,
	FieldArchiveQuota,
	FieldExamQuota,
	FieldGenerationStatus,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultWordCount holds the default value on creation for the "word_count" field.
	DefaultWordCount int
	// DefaultDensityScore holds the default value on creation for the "density_score" field.
	DefaultDensityScore float64
	// DefaultDifficultyIndex holds the default value on creation for the "difficulty_index" field.
	DefaultDifficultyIndex float64
	// DefaultPracticeQuota holds the default value on creation for the "practice_quota" field.
	DefaultPracticeQuota int
	// DefaultArchiveQuota holds the default value on creation for the "archive_quota" field.
	DefaultArchiveQuota int
	// DefaultExamQuota holds the default value on creation for the "exam_quota" field.
	DefaultExamQuota int
	// DefaultGenerationStatus holds the default value on creation for the "generation_status" field.
	DefaultGenerationStatus string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Chunk queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByDensityScore orders the results by the density_score field.
func ByDensityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDensityScore, opts...).ToFunc()
}

// ByDifficultyIndex orders the results by the difficulty_index field.
func ByDifficultyIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyIndex, opts...).ToFunc()
}

// ByPracticeQuota orders the results by the practice_quota field.
func ByPracticeQuota(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeQuota, opts...).ToFunc()
}

// ByArchiveQuota orders the results by the archive_quota field.
func ByArchiveQuota(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchiveQuota, opts...).ToFunc()
}

// ByExamQuota orders the results by the exam_quota field.
func ByExamQuota(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamQuota, opts...).ToFunc()
}

// ByGenerationStatus orders the results by the generation_status field.
func ByGenerationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationStatus, opts...).ToFunc()
}
