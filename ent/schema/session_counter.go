package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// SessionCounter is the per-(user, course) session clock. The current
// session number increments at most once per calendar day; the increment
// itself is a raw-SQL conditional update in the store because ent cannot
// express an atomic compare-and-increment (see store.sessionRepo).
type SessionCounter struct {
	ent.Schema
}

func (SessionCounter) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("course_id", uuid.UUID{}),
		field.Int("current_session").
			Default(1),
		field.String("last_session_date").
			Comment("Calendar day of the last increment, YYYY-MM-DD in UTC"),
	}
}

func (SessionCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "course_id").
			Unique(),
	}
}
