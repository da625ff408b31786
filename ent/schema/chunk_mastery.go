package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ChunkMastery is the per-(user, chunk) mastery record, recomputed after
// every answer whose question belongs to the chunk.
type ChunkMastery struct {
	ent.Schema
}

func (ChunkMastery) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("chunk_id", uuid.UUID{}),
		field.UUID("course_id", uuid.UUID{}),
		field.Int("mastery_score").
			Default(0).
			Comment("0-100"),
		field.Int("last_reviewed_session").
			Default(0),
		field.Time("last_full_review_at").
			Optional().
			Nillable().
			Comment("Refreshed when coverage reaches the full-review threshold"),
	}
}

func (ChunkMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "chunk_id").
			Unique(),
		index.Fields("user_id", "course_id", "mastery_score"),
	}
}
