// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// ChunkID applies equality check predicate on the "chunk_id" field. It's identical to ChunkIDEQ.
func ChunkID(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldChunkID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCourseID, v))
}

// UsageCategory applies equality check predicate on the "usage_category" field. It's identical to UsageCategoryEQ.
func UsageCategory(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUsageCategory, v))
}

// BloomLevel applies equality check predicate on the "bloom_level" field. It's identical to BloomLevelEQ.
func BloomLevel(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBloomLevel, v))
}

// ConceptTitle applies equality check predicate on the "concept_title" field. It's identical to ConceptTitleEQ.
func ConceptTitle(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldConceptTitle, v))
}

// ParentQuestionID applies equality check predicate on the "parent_question_id" field. It's identical to ParentQuestionIDEQ.
func ParentQuestionID(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldParentQuestionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// ChunkIDEQ applies the EQ predicate on the "chunk_id" field.
func ChunkIDEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldChunkID, v))
}

// ChunkIDNEQ applies the NEQ predicate on the "chunk_id" field.
func ChunkIDNEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldChunkID, v))
}

// ChunkIDIn applies the In predicate on the "chunk_id" field.
func ChunkIDIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldChunkID, vs...))
}

// ChunkIDNotIn applies the NotIn predicate on the "chunk_id" field.
func ChunkIDNotIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldChunkID, vs...))
}

// ChunkIDGT applies the GT predicate on the "chunk_id" field.
func ChunkIDGT(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldChunkID, v))
}

// ChunkIDGTE applies the GTE predicate on the "chunk_id" field.
func ChunkIDGTE(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldChunkID, v))
}

// ChunkIDLT applies the LT predicate on the "chunk_id" field.
func ChunkIDLT(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldChunkID, v))
}

// ChunkIDLTE applies the LTE predicate on the "chunk_id" field.
func ChunkIDLTE(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldChunkID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCourseID, v))
}

// UsageCategoryEQ applies the EQ predicate on the "usage_category" field.
func UsageCategoryEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUsageCategory, v))
}

// UsageCategoryNEQ applies the NEQ predicate on the "usage_category" field.
func UsageCategoryNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUsageCategory, v))
}

// UsageCategoryIn applies the In predicate on the "usage_category" field.
func UsageCategoryIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUsageCategory, vs...))
}

// UsageCategoryNotIn applies the NotIn predicate on the "usage_category" field.
func UsageCategoryNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUsageCategory, vs...))
}

// UsageCategoryGT applies the GT predicate on the "usage_category" field.
func UsageCategoryGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUsageCategory, v))
}

// UsageCategoryGTE applies the GTE predicate on the "usage_category" field.
func UsageCategoryGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUsageCategory, v))
}

// UsageCategoryLT applies the LT predicate on the "usage_category" field.
func UsageCategoryLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUsageCategory, v))
}

// UsageCategoryLTE applies the LTE predicate on the "usage_category" field.
func UsageCategoryLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUsageCategory, v))
}

// UsageCategoryContains applies the Contains predicate on the "usage_category" field.
func UsageCategoryContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldUsageCategory, v))
}

// UsageCategoryHasPrefix applies the HasPrefix predicate on the "usage_category" field.
func UsageCategoryHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldUsageCategory, v))
}

// UsageCategoryHasSuffix applies the HasSuffix predicate on the "usage_category" field.
func UsageCategoryHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldUsageCategory, v))
}

// UsageCategoryEqualFold applies the EqualFold predicate on the "usage_category" field.
func UsageCategoryEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldUsageCategory, v))
}

// UsageCategoryContainsFold applies the ContainsFold predicate on the "usage_category" field.
func UsageCategoryContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldUsageCategory, v))
}

// BloomLevelEQ applies the EQ predicate on the "bloom_level" field.
func BloomLevelEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldBloomLevel, v))
}

// BloomLevelNEQ applies the NEQ predicate on the "bloom_level" field.
func BloomLevelNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldBloomLevel, v))
}

// BloomLevelIn applies the In predicate on the "bloom_level" field.
func BloomLevelIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldBloomLevel, vs...))
}

// BloomLevelNotIn applies the NotIn predicate on the "bloom_level" field.
func BloomLevelNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldBloomLevel, vs...))
}

// BloomLevelGT applies the GT predicate on the "bloom_level" field.
func BloomLevelGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldBloomLevel, v))
}

// BloomLevelGTE applies the GTE predicate on the "bloom_level" field.
func BloomLevelGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldBloomLevel, v))
}

// BloomLevelLT applies the LT predicate on the "bloom_level" field.
func BloomLevelLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldBloomLevel, v))
}

// BloomLevelLTE applies the LTE predicate on the "bloom_level" field.
func BloomLevelLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldBloomLevel, v))
}

// BloomLevelContains applies the Contains predicate on the "bloom_level" field.
func BloomLevelContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldBloomLevel, v))
}

// BloomLevelHasPrefix applies the HasPrefix predicate on the "bloom_level" field.
func BloomLevelHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldBloomLevel, v))
}

// BloomLevelHasSuffix applies the HasSuffix predicate on the "bloom_level" field.
func BloomLevelHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldBloomLevel, v))
}

// BloomLevelEqualFold applies the EqualFold predicate on the "bloom_level" field.
func BloomLevelEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldBloomLevel, v))
}

// BloomLevelContainsFold applies the ContainsFold predicate on the "bloom_level" field.
func BloomLevelContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldBloomLevel, v))
}

// ConceptTitleEQ applies the EQ predicate on the "concept_title" field.
func ConceptTitleEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldConceptTitle, v))
}

// ConceptTitleNEQ applies the NEQ predicate on the "concept_title" field.
func ConceptTitleNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldConceptTitle, v))
}

// ConceptTitleIn applies the In predicate on the "concept_title" field.
func ConceptTitleIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldConceptTitle, vs...))
}

// ConceptTitleNotIn applies the NotIn predicate on the "concept_title" field.
func ConceptTitleNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldConceptTitle, vs...))
}

// ConceptTitleGT applies the GT predicate on the "concept_title" field.
func ConceptTitleGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldConceptTitle, v))
}

// ConceptTitleGTE applies the GTE predicate on the "concept_title" field.
func ConceptTitleGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldConceptTitle, v))
}

// ConceptTitleLT applies the LT predicate on the "concept_title" field.
func ConceptTitleLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldConceptTitle, v))
}

// ConceptTitleLTE applies the LTE predicate on the "concept_title" field.
func ConceptTitleLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldConceptTitle, v))
}

// ConceptTitleContains applies the Contains predicate on the "concept_title" field.
func ConceptTitleContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldConceptTitle, v))
}

// ConceptTitleHasPrefix applies the HasPrefix predicate on the "concept_title" field.
func ConceptTitleHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldConceptTitle, v))
}

// ConceptTitleHasSuffix applies the HasSuffix predicate on the "concept_title" field.
func ConceptTitleHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldConceptTitle, v))
}

// ConceptTitleEqualFold applies the EqualFold predicate on the "concept_title" field.
func ConceptTitleEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldConceptTitle, v))
}

// ConceptTitleContainsFold applies the ContainsFold predicate on the "concept_title" field.
func ConceptTitleContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldConceptTitle, v))
}

// ParentQuestionIDEQ applies the EQ predicate on the "parent_question_id" field.
func ParentQuestionIDEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldParentQuestionID, v))
}

// ParentQuestionIDNEQ applies the NEQ predicate on the "parent_question_id" field.
func ParentQuestionIDNEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldParentQuestionID, v))
}

// ParentQuestionIDIn applies the In predicate on the "parent_question_id" field.
func ParentQuestionIDIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldParentQuestionID, vs...))
}

// ParentQuestionIDNotIn applies the NotIn predicate on the "parent_question_id" field.
func ParentQuestionIDNotIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldParentQuestionID, vs...))
}

// ParentQuestionIDGT applies the GT predicate on the "parent_question_id" field.
func ParentQuestionIDGT(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldParentQuestionID, v))
}

// ParentQuestionIDGTE applies the GTE predicate on the "parent_question_id" field.
func ParentQuestionIDGTE(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldParentQuestionID, v))
}

// ParentQuestionIDLT applies the LT predicate on the "parent_question_id" field.
func ParentQuestionIDLT(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldParentQuestionID, v))
}

// ParentQuestionIDLTE applies the LTE predicate on the "parent_question_id" field.
func ParentQuestionIDLTE(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldParentQuestionID, v))
}

// ParentQuestionIDIsNil applies the IsNil predicate on the "parent_question_id" field.
func ParentQuestionIDIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldParentQuestionID))
}

// ParentQuestionIDNotNil applies the NotNil predicate on the "parent_question_id" field.
func ParentQuestionIDNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldParentQuestionID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
