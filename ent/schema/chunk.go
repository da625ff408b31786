package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Chunk is a titled section of course content that questions are
// generated against. The concept map and quotas are written once by the
// generation pipeline's mapping stage and read on every subsequent run.
type Chunk struct {
	ent.Schema
}

// ConceptEntry is the serialized form of one concept-map item.
type ConceptEntry struct {
	Title    string `json:"title"`
	Focus    string `json:"focus"`
	Level    string `json:"level"`
	ImageRef string `json:"image_ref,omitempty"`
}

func (Chunk) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("course_id", uuid.UUID{}),
		field.String("title").
			NotEmpty(),
		field.Text("content").
			Comment("Raw source text questions are drafted against"),
		field.Int("position").
			Default(0).
			Comment("Order of the chunk within its course"),
		field.Int("word_count").
			Default(0),
		field.Float("density_score").
			Default(0).
			Comment("Content-density score in [0,1]; scales the reading-speed model"),
		field.JSON("concept_map", []ConceptEntry{}).
			Optional().
			Comment("Cached concept map; empty until the mapping stage runs"),
		field.Float("difficulty_index").
			Default(0).
			Comment("Derived from the concept map at mapping time"),
		field.Int("practice_quota").
			Default(0),
		field.Int("archive_quota").
			Default(0),
		field.Int("exam_quota").
			Default(0),
		field.String("generation_status").
			Default("pending").
			Comment("pending, processing, completed, or failed"),
	}
}

func (Chunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("course_id", "position"),
		index.Fields("generation_status"),
	}
}
