package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// UserQuestionStatus is the per-(user, question) shelf record. One row
// per pair, upserted after every answer; the shelf engine is the only
// writer of status and streak fields.
type UserQuestionStatus struct {
	ent.Schema
}

func (UserQuestionStatus) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("question_id", uuid.UUID{}),
		field.UUID("course_id", uuid.UUID{}),
		field.String("status").
			Default("active").
			Comment("active, pending_followup, or archived"),
		field.Int("success_streak").
			Default(0).
			Comment("Consecutive correct-and-fast answers"),
		field.Int("fail_streak").
			Default(0).
			Comment("Consecutive incorrect answers; diagnostic only"),
		field.Int("next_review_session").
			Default(0).
			Comment("Session number the item comes due; 0 = not scheduled"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (UserQuestionStatus) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").
			Unique(),
		index.Fields("user_id", "course_id", "status"),
		index.Fields("user_id", "course_id", "next_review_session"),
	}
}
