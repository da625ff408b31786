// Code generated by ent, DO NOT EDIT.

package userquestionstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldQuestionID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldCourseID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldStatus, v))
}

// SuccessStreak applies equality check predicate on the "success_streak" field. It's identical to SuccessStreakEQ.
func SuccessStreak(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldSuccessStreak, v))
}

// FailStreak applies equality check predicate on the "fail_streak" field. It's identical to FailStreakEQ.
func FailStreak(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldFailStreak, v))
}

// NextReviewSession applies equality check predicate on the "next_review_session" field. It's identical to NextReviewSessionEQ.
func NextReviewSession(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldNextReviewSession, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLTE(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLTE(FieldQuestionID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v uuid.UUID) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLTE(FieldCourseID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldContainsFold(FieldStatus, v))
}

// SuccessStreakEQ applies the EQ predicate on the "success_streak" field.
func SuccessStreakEQ(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldSuccessStreak, v))
}

// SuccessStreakNEQ applies the NEQ predicate on the "success_streak" field.
func SuccessStreakNEQ(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNEQ(FieldSuccessStreak, v))
}

// SuccessStreakIn applies the In predicate on the "success_streak" field.
func SuccessStreakIn(vs ...int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldIn(FieldSuccessStreak, vs...))
}

// SuccessStreakNotIn applies the NotIn predicate on the "success_streak" field.
func SuccessStreakNotIn(vs ...int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNotIn(FieldSuccessStreak, vs...))
}

// SuccessStreakGT applies the GT predicate on the "success_streak" field.
func SuccessStreakGT(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGT(FieldSuccessStreak, v))
}

// SuccessStreakGTE applies the GTE predicate on the "success_streak" field.
func SuccessStreakGTE(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGTE(FieldSuccessStreak, v))
}

// SuccessStreakLT applies the LT predicate on the "success_streak" field.
func SuccessStreakLT(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLT(FieldSuccessStreak, v))
}

// SuccessStreakLTE applies the LTE predicate on the "success_streak" field.
func SuccessStreakLTE(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLTE(FieldSuccessStreak, v))
}

// FailStreakEQ applies the EQ predicate on the "fail_streak" field.
func FailStreakEQ(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldFailStreak, v))
}

// FailStreakNEQ applies the NEQ predicate on the "fail_streak" field.
func FailStreakNEQ(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNEQ(FieldFailStreak, v))
}

// FailStreakIn applies the In predicate on the "fail_streak" field.
func FailStreakIn(vs ...int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldIn(FieldFailStreak, vs...))
}

// FailStreakNotIn applies the NotIn predicate on the "fail_streak" field.
func FailStreakNotIn(vs ...int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNotIn(FieldFailStreak, vs...))
}

// FailStreakGT applies the GT predicate on the "fail_streak" field.
func FailStreakGT(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGT(FieldFailStreak, v))
}

// FailStreakGTE applies the GTE predicate on the "fail_streak" field.
func FailStreakGTE(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGTE(FieldFailStreak, v))
}

// FailStreakLT applies the LT predicate on the "fail_streak" field.
func FailStreakLT(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLT(FieldFailStreak, v))
}

// FailStreakLTE applies the LTE predicate on the "fail_streak" field.
func FailStreakLTE(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLTE(FieldFailStreak, v))
}

// NextReviewSessionEQ applies the EQ predicate on the "next_review_session" field.
func NextReviewSessionEQ(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldNextReviewSession, v))
}

// NextReviewSessionNEQ applies the NEQ predicate on the "next_review_session" field.
func NextReviewSessionNEQ(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNEQ(FieldNextReviewSession, v))
}

// NextReviewSessionIn applies the In predicate on the "next_review_session" field.
func NextReviewSessionIn(vs ...int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldIn(FieldNextReviewSession, vs...))
}

// NextReviewSessionNotIn applies the NotIn predicate on the "next_review_session" field.
func NextReviewSessionNotIn(vs ...int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNotIn(FieldNextReviewSession, vs...))
}

// NextReviewSessionGT applies the GT predicate on the "next_review_session" field.
func NextReviewSessionGT(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGT(FieldNextReviewSession, v))
}

// NextReviewSessionGTE applies the GTE predicate on the "next_review_session" field.
func NextReviewSessionGTE(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGTE(FieldNextReviewSession, v))
}

// NextReviewSessionLT applies the LT predicate on the "next_review_session" field.
func NextReviewSessionLT(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLT(FieldNextReviewSession, v))
}

// NextReviewSessionLTE applies the LTE predicate on the "next_review_session" field.
func NextReviewSessionLTE(v int) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLTE(FieldNextReviewSession, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserQuestionStatus) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserQuestionStatus) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserQuestionStatus) predicate.UserQuestionStatus {
	return predicate.UserQuestionStatus(sql.NotPredicates(p))
}
