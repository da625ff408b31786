package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Question is an immutable content unit produced by the generation
// pipeline. Its usage category never changes after creation; retirement
// happens by deletion outside this engine.
type Question struct {
	ent.Schema
}

// QuestionPayload is the displayable body of a question.
type QuestionPayload struct {
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("chunk_id", uuid.UUID{}).
			Immutable(),
		field.UUID("course_id", uuid.UUID{}).
			Immutable(),
		field.String("usage_category").
			Immutable().
			Comment("practice, archive, or exam"),
		field.String("bloom_level").
			Immutable().
			Comment("knowledge, application, or analysis"),
		field.String("concept_title").
			Immutable().
			Comment("Concept-map title this question covers"),
		field.UUID("parent_question_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable().
			Comment("Set on remedial follow-ups, linking back to the failed question"),
		field.JSON("payload", QuestionPayload{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chunk_id", "usage_category", "concept_title"),
		index.Fields("course_id"),
		index.Fields("parent_question_id"),
	}
}
