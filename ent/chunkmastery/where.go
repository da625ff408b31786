// Code generated by ent, DO NOT EDIT.

package chunkmastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldUserID, v))
}

// ChunkID applies equality check predicate on the "chunk_id" field. It's identical to ChunkIDEQ.
func ChunkID(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldChunkID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldCourseID, v))
}

// MasteryScore applies equality check predicate on the "mastery_score" field. It's identical to MasteryScoreEQ.
func MasteryScore(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldMasteryScore, v))
}

// LastReviewedSession applies equality check predicate on the "last_reviewed_session" field. It's identical to LastReviewedSessionEQ.
func LastReviewedSession(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldLastReviewedSession, v))
}

// LastFullReviewAt applies equality check predicate on the "last_full_review_at" field. It's identical to LastFullReviewAtEQ.
func LastFullReviewAt(v time.Time) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldLastFullReviewAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLTE(FieldUserID, v))
}

// ChunkIDEQ applies the EQ predicate on the "chunk_id" field.
func ChunkIDEQ(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldChunkID, v))
}

// ChunkIDNEQ applies the NEQ predicate on the "chunk_id" field.
func ChunkIDNEQ(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNEQ(FieldChunkID, v))
}

// ChunkIDIn applies the In predicate on the "chunk_id" field.
func ChunkIDIn(vs ...uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldIn(FieldChunkID, vs...))
}

// ChunkIDNotIn applies the NotIn predicate on the "chunk_id" field.
func ChunkIDNotIn(vs ...uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNotIn(FieldChunkID, vs...))
}

// ChunkIDGT applies the GT predicate on the "chunk_id" field.
func ChunkIDGT(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGT(FieldChunkID, v))
}

// ChunkIDGTE applies the GTE predicate on the "chunk_id" field.
func ChunkIDGTE(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGTE(FieldChunkID, v))
}

// ChunkIDLT applies the LT predicate on the "chunk_id" field.
func ChunkIDLT(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLT(FieldChunkID, v))
}

// ChunkIDLTE applies the LTE predicate on the "chunk_id" field.
func ChunkIDLTE(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLTE(FieldChunkID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v uuid.UUID) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLTE(FieldCourseID, v))
}

// MasteryScoreEQ applies the EQ predicate on the "mastery_score" field.
func MasteryScoreEQ(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldMasteryScore, v))
}

// MasteryScoreNEQ applies the NEQ predicate on the "mastery_score" field.
func MasteryScoreNEQ(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNEQ(FieldMasteryScore, v))
}

// MasteryScoreIn applies the In predicate on the "mastery_score" field.
func MasteryScoreIn(vs ...int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldIn(FieldMasteryScore, vs...))
}

// MasteryScoreNotIn applies the NotIn predicate on the "mastery_score" field.
func MasteryScoreNotIn(vs ...int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNotIn(FieldMasteryScore, vs...))
}

// MasteryScoreGT applies the GT predicate on the "mastery_score" field.
func MasteryScoreGT(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGT(FieldMasteryScore, v))
}

// MasteryScoreGTE applies the GTE predicate on the "mastery_score" field.
func MasteryScoreGTE(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGTE(FieldMasteryScore, v))
}

// MasteryScoreLT applies the LT predicate on the "mastery_score" field.
func MasteryScoreLT(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLT(FieldMasteryScore, v))
}

// MasteryScoreLTE applies the LTE predicate on the "mastery_score" field.
func MasteryScoreLTE(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLTE(FieldMasteryScore, v))
}

// LastReviewedSessionEQ applies the EQ predicate on the "last_reviewed_session" field.
func LastReviewedSessionEQ(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldLastReviewedSession, v))
}

// LastReviewedSessionNEQ applies the NEQ predicate on the "last_reviewed_session" field.
func LastReviewedSessionNEQ(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNEQ(FieldLastReviewedSession, v))
}

// LastReviewedSessionIn applies the In predicate on the "last_reviewed_session" field.
func LastReviewedSessionIn(vs ...int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldIn(FieldLastReviewedSession, vs...))
}

// LastReviewedSessionNotIn applies the NotIn predicate on the "last_reviewed_session" field.
func LastReviewedSessionNotIn(vs ...int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNotIn(FieldLastReviewedSession, vs...))
}

// LastReviewedSessionGT applies the GT predicate on the "last_reviewed_session" field.
func LastReviewedSessionGT(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGT(FieldLastReviewedSession, v))
}

// LastReviewedSessionGTE applies the GTE predicate on the "last_reviewed_session" field.
func LastReviewedSessionGTE(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGTE(FieldLastReviewedSession, v))
}

// LastReviewedSessionLT applies the LT predicate on the "last_reviewed_session" field.
func LastReviewedSessionLT(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLT(FieldLastReviewedSession, v))
}

// LastReviewedSessionLTE applies the LTE predicate on the "last_reviewed_session" field.
func LastReviewedSessionLTE(v int) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLTE(FieldLastReviewedSession, v))
}

// LastFullReviewAtEQ applies the EQ predicate on the "last_full_review_at" field.
func LastFullReviewAtEQ(v time.Time) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldEQ(FieldLastFullReviewAt, v))
}

// LastFullReviewAtNEQ applies the NEQ predicate on the "last_full_review_at" field.
func LastFullReviewAtNEQ(v time.Time) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNEQ(FieldLastFullReviewAt, v))
}

// LastFullReviewAtIn applies the In predicate on the "last_full_review_at" field.
func LastFullReviewAtIn(vs ...time.Time) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldIn(FieldLastFullReviewAt, vs...))
}

// LastFullReviewAtNotIn applies the NotIn predicate on the "last_full_review_at" field.
func LastFullReviewAtNotIn(vs ...time.Time) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNotIn(FieldLastFullReviewAt, vs...))
}

// LastFullReviewAtGT applies the GT predicate on the "last_full_review_at" field.
func LastFullReviewAtGT(v time.Time) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGT(FieldLastFullReviewAt, v))
}

// LastFullReviewAtGTE applies the GTE predicate on the "last_full_review_at" field.
func LastFullReviewAtGTE(v time.Time) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldGTE(FieldLastFullReviewAt, v))
}

// LastFullReviewAtLT applies the LT predicate on the "last_full_review_at" field.
func LastFullReviewAtLT(v time.Time) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLT(FieldLastFullReviewAt, v))
}

// LastFullReviewAtLTE applies the LTE predicate on the "last_full_review_at" field.
func LastFullReviewAtLTE(v time.Time) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldLTE(FieldLastFullReviewAt, v))
}

// LastFullReviewAtIsNil applies the IsNil predicate on the "last_full_review_at" field.
func LastFullReviewAtIsNil() predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldIsNull(FieldLastFullReviewAt))
}

// LastFullReviewAtNotNil applies the NotNil predicate on the "last_full_review_at" field.
func LastFullReviewAtNotNil() predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.FieldNotNull(FieldLastFullReviewAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChunkMastery) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChunkMastery) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChunkMastery) predicate.ChunkMastery {
	return predicate.ChunkMastery(sql.NotPredicates(p))
}
