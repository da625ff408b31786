// Code generated by ent, DO NOT EDIT.

package chunk

import (
	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldID, id))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldCourseID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldTitle, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldContent, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldPosition, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldWordCount, v))
}

// DensityScore applies equality check predicate on the "density_score" field. It's identical to DensityScoreEQ.
func DensityScore(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldDensityScore, v))
}

// DifficultyIndex applies equality check predicate on the "difficulty_index" field. It's identical to DifficultyIndexEQ.
func DifficultyIndex(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldDifficultyIndex, v))
}

// PracticeQuota applies equality check predicate on the "practice_quota" field. It's identical to PracticeQuotaEQ.
func PracticeQuota(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldPracticeQuota, v))
}

// ArchiveQuota applies equality check predicate on the "archive_quota" field. It's identical to ArchiveQuotaEQ.
func ArchiveQuota(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldArchiveQuota, v))
}

// ExamQuota applies equality check predicate on the "exam_quota" field. It's identical to ExamQuotaEQ.
func ExamQuota(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldExamQuota, v))
}

// GenerationStatus applies equality check predicate on the "generation_status" field. It's identical to GenerationStatusEQ.
func GenerationStatus(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldGenerationStatus, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v uuid.UUID) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldCourseID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContainsFold(FieldTitle, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContainsFold(FieldContent, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldPosition, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldWordCount, v))
}

// DensityScoreEQ applies the EQ predicate on the "density_score" field.
func DensityScoreEQ(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldDensityScore, v))
}

// DensityScoreNEQ applies the NEQ predicate on the "density_score" field.
func DensityScoreNEQ(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldDensityScore, v))
}

// DensityScoreIn applies the In predicate on the "density_score" field.
func DensityScoreIn(vs ...float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldDensityScore, vs...))
}

// DensityScoreNotIn applies the NotIn predicate on the "density_score" field.
func DensityScoreNotIn(vs ...float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldDensityScore, vs...))
}

// DensityScoreGT applies the GT predicate on the "density_score" field.
func DensityScoreGT(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldDensityScore, v))
}

// DensityScoreGTE applies the GTE predicate on the "density_score" field.
func DensityScoreGTE(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldDensityScore, v))
}

// DensityScoreLT applies the LT predicate on the "density_score" field.
func DensityScoreLT(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldDensityScore, v))
}

// DensityScoreLTE applies the LTE predicate on the "density_score" field.
func DensityScoreLTE(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldDensityScore, v))
}

// ConceptMapIsNil applies the IsNil predicate on the "concept_map" field.
func ConceptMapIsNil() predicate.Chunk {
	return predicate.Chunk(sql.FieldIsNull(FieldConceptMap))
}

// ConceptMapNotNil applies the NotNil predicate on the "concept_map" field.
func ConceptMapNotNil() predicate.Chunk {
	return predicate.Chunk(sql.FieldNotNull(FieldConceptMap))
}

// DifficultyIndexEQ applies the EQ predicate on the "difficulty_index" field.
func DifficultyIndexEQ(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldDifficultyIndex, v))
}

// DifficultyIndexNEQ applies the NEQ predicate on the "difficulty_index" field.
func DifficultyIndexNEQ(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldDifficultyIndex, v))
}

// DifficultyIndexIn applies the In predicate on the "difficulty_index" field.
func DifficultyIndexIn(vs ...float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldDifficultyIndex, vs...))
}

// DifficultyIndexNotIn applies the NotIn predicate on the "difficulty_index" field.
func DifficultyIndexNotIn(vs ...float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldDifficultyIndex, vs...))
}

// DifficultyIndexGT applies the GT predicate on the "difficulty_index" field.
func DifficultyIndexGT(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldDifficultyIndex, v))
}

// DifficultyIndexGTE applies the GTE predicate on the "difficulty_index" field.
func DifficultyIndexGTE(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldDifficultyIndex, v))
}

// DifficultyIndexLT applies the LT predicate on the "difficulty_index" field.
func DifficultyIndexLT(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldDifficultyIndex, v))
}

// DifficultyIndexLTE applies the LTE predicate on the "difficulty_index" field.
func DifficultyIndexLTE(v float64) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldDifficultyIndex, v))
}

// PracticeQuotaEQ applies the EQ predicate on the "practice_quota" field.
func PracticeQuotaEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldPracticeQuota, v))
}

// PracticeQuotaNEQ applies the NEQ predicate on the "practice_quota" field.
func PracticeQuotaNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldPracticeQuota, v))
}

// PracticeQuotaIn applies the In predicate on the "practice_quota" field.
func PracticeQuotaIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldPracticeQuota, vs...))
}

// PracticeQuotaNotIn applies the NotIn predicate on the "practice_quota" field.
func PracticeQuotaNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldPracticeQuota, vs...))
}

// PracticeQuotaGT applies the GT predicate on the "practice_quota" field.
func PracticeQuotaGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldPracticeQuota, v))
}

// PracticeQuotaGTE applies the GTE predicate on the "practice_quota" field.
func PracticeQuotaGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldPracticeQuota, v))
}

// PracticeQuotaLT applies the LT predicate on the "practice_quota" field.
func PracticeQuotaLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldPracticeQuota, v))
}

// PracticeQuotaLTE applies the LTE predicate on the "practice_quota" field.
func PracticeQuotaLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldPracticeQuota, v))
}

// ArchiveQuotaEQ applies the EQ predicate on the "archive_quota" field.
func ArchiveQuotaEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldArchiveQuota, v))
}

// ArchiveQuotaNEQ applies the NEQ predicate on the "archive_quota" field.
func ArchiveQuotaNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldArchiveQuota, v))
}

// ArchiveQuotaIn applies the In predicate on the "archive_quota" field.
func ArchiveQuotaIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldArchiveQuota, vs...))
}

// ArchiveQuotaNotIn applies the NotIn predicate on the "archive_quota" field.
func ArchiveQuotaNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldArchiveQuota, vs...))
}

// ArchiveQuotaGT applies the GT predicate on the "archive_quota" field.
func ArchiveQuotaGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldArchiveQuota, v))
}

// ArchiveQuotaGTE applies the GTE predicate on the "archive_quota" field.
func ArchiveQuotaGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldArchiveQuota, v))
}

// ArchiveQuotaLT applies the LT predicate on the "archive_quota" field.
func ArchiveQuotaLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldArchiveQuota, v))
}

// ArchiveQuotaLTE applies the LTE predicate on the "archive_quota" field.
func ArchiveQuotaLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldArchiveQuota, v))
}

// ExamQuotaEQ applies the EQ predicate on the "exam_quota" field.
func ExamQuotaEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldExamQuota, v))
}

// ExamQuotaNEQ applies the NEQ predicate on the "exam_quota" field.
func ExamQuotaNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldExamQuota, v))
}

// ExamQuotaIn applies the In predicate on the "exam_quota" field.
func ExamQuotaIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldExamQuota, vs...))
}

// ExamQuotaNotIn applies the NotIn predicate on the "exam_quota" field.
func ExamQuotaNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldExamQuota, vs...))
}

// ExamQuotaGT applies the GT predicate on the "exam_quota" field.
func ExamQuotaGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldExamQuota, v))
}

// ExamQuotaGTE applies the GTE predicate on the "exam_quota" field.
func ExamQuotaGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldExamQuota, v))
}

// ExamQuotaLT applies the LT predicate on the "exam_quota" field.
func ExamQuotaLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldExamQuota, v))
}

// ExamQuotaLTE applies the LTE predicate on the "exam_quota" field.
func ExamQuotaLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldExamQuota, v))
}

// GenerationStatusEQ applies the EQ predicate on the "generation_status" field.
func GenerationStatusEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldGenerationStatus, v))
}

// GenerationStatusNEQ applies the NEQ predicate on the "generation_status" field.
func GenerationStatusNEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldGenerationStatus, v))
}

// GenerationStatusIn applies the In predicate on the "generation_status" field.
func GenerationStatusIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldGenerationStatus, vs...))
}

// GenerationStatusNotIn applies the NotIn predicate on the "generation_status" field.
func GenerationStatusNotIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldGenerationStatus, vs...))
}

// GenerationStatusGT applies the GT predicate on the "generation_status" field.
func GenerationStatusGT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldGenerationStatus, v))
}

// GenerationStatusGTE applies the GTE predicate on the "generation_status" field.
func GenerationStatusGTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldGenerationStatus, v))
}

// GenerationStatusLT applies the LT predicate on the "generation_status" field.
func GenerationStatusLT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldGenerationStatus, v))
}

// GenerationStatusLTE applies the LTE predicate on the "generation_status" field.
func GenerationStatusLTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldGenerationStatus, v))
}

// GenerationStatusContains applies the Contains predicate on the "generation_status" field.
func GenerationStatusContains(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContains(FieldGenerationStatus, v))
}

// GenerationStatusHasPrefix applies the HasPrefix predicate on the "generation_status" field.
func GenerationStatusHasPrefix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasPrefix(FieldGenerationStatus, v))
}

// GenerationStatusHasSuffix applies the HasSuffix predicate on the "generation_status" field.
func GenerationStatusHasSuffix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasSuffix(FieldGenerationStatus, v))
}

// GenerationStatusEqualFold applies the EqualFold predicate on the "generation_status" field.
func GenerationStatusEqualFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEqualFold(FieldGenerationStatus, v))
}

// GenerationStatusContainsFold applies the ContainsFold predicate on the "generation_status" field.
func GenerationStatusContainsFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContainsFold(FieldGenerationStatus, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.NotPredicates(p))
}
