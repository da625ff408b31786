package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// SessionCache holds the resume snapshot for an interrupted practice
// session. Valid only while the stored session number still matches the
// server-side counter and the entry has not expired (~24h).
type SessionCache struct {
	ent.Schema
}

// CachedItem is the serialized form of one queued review item.
type CachedItem struct {
	QuestionID string `json:"question_id"`
	ChunkID    string `json:"chunk_id"`
	CourseID   string `json:"course_id"`
	Tier       int    `json:"tier"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

func (SessionCache) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("course_id", uuid.UUID{}),
		field.String("session_id"),
		field.Int("session_number"),
		field.Int("review_index").
			Default(0),
		field.JSON("queue", []CachedItem{}),
		field.Time("expires_at"),
	}
}

func (SessionCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "course_id").
			Unique(),
		index.Fields("expires_at"),
	}
}
