package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AnswerEvent records a single answer submission. Append-only telemetry;
// the shelf and mastery engines never read it on the hot path.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("question_id", uuid.UUID{}),
		field.UUID("chunk_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Absent when the chunk reference was rejected as malformed"),
		field.Int("session_number"),
		field.Bool("correct"),
		field.Bool("fast").
			Comment("Answered within the time-to-solve threshold"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.String("status_after").
			Comment("Shelf status after the transition"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id"),
		index.Fields("user_id", "session_number"),
		index.Fields("correct"),
	}
}
