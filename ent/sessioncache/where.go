// Code generated by ent, DO NOT EDIT.

package sessioncache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldUserID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldCourseID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldSessionID, v))
}

// SessionNumber applies equality check predicate on the "session_number" field. It's identical to SessionNumberEQ.
func SessionNumber(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldSessionNumber, v))
}

// ReviewIndex applies equality check predicate on the "review_index" field. It's identical to ReviewIndexEQ.
func ReviewIndex(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldReviewIndex, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldExpiresAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLTE(FieldUserID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v uuid.UUID) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLTE(FieldCourseID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldContainsFold(FieldSessionID, v))
}

// SessionNumberEQ applies the EQ predicate on the "session_number" field.
func SessionNumberEQ(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldSessionNumber, v))
}

// SessionNumberNEQ applies the NEQ predicate on the "session_number" field.
func SessionNumberNEQ(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNEQ(FieldSessionNumber, v))
}

// SessionNumberIn applies the In predicate on the "session_number" field.
func SessionNumberIn(vs ...int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldIn(FieldSessionNumber, vs...))
}

// SessionNumberNotIn applies the NotIn predicate on the "session_number" field.
func SessionNumberNotIn(vs ...int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNotIn(FieldSessionNumber, vs...))
}

// SessionNumberGT applies the GT predicate on the "session_number" field.
func SessionNumberGT(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGT(FieldSessionNumber, v))
}

// SessionNumberGTE applies the GTE predicate on the "session_number" field.
func SessionNumberGTE(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGTE(FieldSessionNumber, v))
}

// SessionNumberLT applies the LT predicate on the "session_number" field.
func SessionNumberLT(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLT(FieldSessionNumber, v))
}

// SessionNumberLTE applies the LTE predicate on the "session_number" field.
func SessionNumberLTE(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLTE(FieldSessionNumber, v))
}

// ReviewIndexEQ applies the EQ predicate on the "review_index" field.
func ReviewIndexEQ(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldReviewIndex, v))
}

// ReviewIndexNEQ applies the NEQ predicate on the "review_index" field.
func ReviewIndexNEQ(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNEQ(FieldReviewIndex, v))
}

// ReviewIndexIn applies the In predicate on the "review_index" field.
func ReviewIndexIn(vs ...int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldIn(FieldReviewIndex, vs...))
}

// ReviewIndexNotIn applies the NotIn predicate on the "review_index" field.
func ReviewIndexNotIn(vs ...int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNotIn(FieldReviewIndex, vs...))
}

// ReviewIndexGT applies the GT predicate on the "review_index" field.
func ReviewIndexGT(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGT(FieldReviewIndex, v))
}

// ReviewIndexGTE applies the GTE predicate on the "review_index" field.
func ReviewIndexGTE(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGTE(FieldReviewIndex, v))
}

// ReviewIndexLT applies the LT predicate on the "review_index" field.
func ReviewIndexLT(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLT(FieldReviewIndex, v))
}

// ReviewIndexLTE applies the LTE predicate on the "review_index" field.
func ReviewIndexLTE(v int) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLTE(FieldReviewIndex, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.SessionCache {
	return predicate.SessionCache(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionCache) predicate.SessionCache {
	return predicate.SessionCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionCache) predicate.SessionCache {
	return predicate.SessionCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionCache) predicate.SessionCache {
	return predicate.SessionCache(sql.NotPredicates(p))
}
