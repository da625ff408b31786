// Code generated by ent, DO NOT EDIT.

package sessioncounter

import (
	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldUserID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldCourseID, v))
}

// CurrentSession applies equality check predicate on the "current_session" field. It's identical to CurrentSessionEQ.
func CurrentSession(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldCurrentSession, v))
}

// LastSessionDate applies equality check predicate on the "last_session_date" field. It's identical to LastSessionDateEQ.
func LastSessionDate(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldLastSessionDate, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLTE(FieldUserID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v uuid.UUID) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLTE(FieldCourseID, v))
}

// CurrentSessionEQ applies the EQ predicate on the "current_session" field.
func CurrentSessionEQ(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldCurrentSession, v))
}

// CurrentSessionNEQ applies the NEQ predicate on the "current_session" field.
func CurrentSessionNEQ(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNEQ(FieldCurrentSession, v))
}

// CurrentSessionIn applies the In predicate on the "current_session" field.
func CurrentSessionIn(vs ...int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldIn(FieldCurrentSession, vs...))
}

// CurrentSessionNotIn applies the NotIn predicate on the "current_session" field.
func CurrentSessionNotIn(vs ...int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNotIn(FieldCurrentSession, vs...))
}

// CurrentSessionGT applies the GT predicate on the "current_session" field.
func CurrentSessionGT(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGT(FieldCurrentSession, v))
}

// CurrentSessionGTE applies the GTE predicate on the "current_session" field.
func CurrentSessionGTE(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGTE(FieldCurrentSession, v))
}

// CurrentSessionLT applies the LT predicate on the "current_session" field.
func CurrentSessionLT(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLT(FieldCurrentSession, v))
}

// CurrentSessionLTE applies the LTE predicate on the "current_session" field.
func CurrentSessionLTE(v int) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLTE(FieldCurrentSession, v))
}

// LastSessionDateEQ applies the EQ predicate on the "last_session_date" field.
func LastSessionDateEQ(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEQ(FieldLastSessionDate, v))
}

// LastSessionDateNEQ applies the NEQ predicate on the "last_session_date" field.
func LastSessionDateNEQ(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNEQ(FieldLastSessionDate, v))
}

// LastSessionDateIn applies the In predicate on the "last_session_date" field.
func LastSessionDateIn(vs ...string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldIn(FieldLastSessionDate, vs...))
}

// LastSessionDateNotIn applies the NotIn predicate on the "last_session_date" field.
func LastSessionDateNotIn(vs ...string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldNotIn(FieldLastSessionDate, vs...))
}

// LastSessionDateGT applies the GT predicate on the "last_session_date" field.
func LastSessionDateGT(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGT(FieldLastSessionDate, v))
}

// LastSessionDateGTE applies the GTE predicate on the "last_session_date" field.
func LastSessionDateGTE(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldGTE(FieldLastSessionDate, v))
}

// LastSessionDateLT applies the LT predicate on the "last_session_date" field.
func LastSessionDateLT(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLT(FieldLastSessionDate, v))
}

// LastSessionDateLTE applies the LTE predicate on the "last_session_date" field.
func LastSessionDateLTE(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldLTE(FieldLastSessionDate, v))
}

// LastSessionDateContains applies the Contains predicate on the "last_session_date" field.
func LastSessionDateContains(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldContains(FieldLastSessionDate, v))
}

// LastSessionDateHasPrefix applies the HasPrefix predicate on the "last_session_date" field.
func LastSessionDateHasPrefix(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldHasPrefix(FieldLastSessionDate, v))
}

// LastSessionDateHasSuffix applies the HasSuffix predicate on the "last_session_date" field.
func LastSessionDateHasSuffix(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldHasSuffix(FieldLastSessionDate, v))
}

// LastSessionDateEqualFold applies the EqualFold predicate on the "last_session_date" field.
func LastSessionDateEqualFold(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldEqualFold(FieldLastSessionDate, v))
}

// LastSessionDateContainsFold applies the ContainsFold predicate on the "last_session_date" field.
func LastSessionDateContainsFold(v string) predicate.SessionCounter {
	return predicate.SessionCounter(sql.FieldContainsFold(FieldLastSessionDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionCounter) predicate.SessionCounter {
	return predicate.SessionCounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionCounter) predicate.SessionCounter {
	return predicate.SessionCounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionCounter) predicate.SessionCounter {
	return predicate.SessionCounter(sql.NotPredicates(p))
}
