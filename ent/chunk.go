// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/astiages123/auditpath/ent/chunk"
	"github.com/astiages123/auditpath/ent/schema"
	"github.com/google/uuid"
)

// Chunk is the model entity for the Chunk schema.
type Chunk struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID uuid.UUID `json:"course_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Raw source text questions are drafted against
	Content string `json:"content,omitempty"`
	// Order of the chunk within its course
	Position int `json:"position,omitempty"`
	// WordCount holds the value of the "word_count" field.
	WordCount int `json:"word_count,omitempty"`
	// Content-density score in [0,1]; scales the reading-speed model
	DensityScore float64 `json:"density_score,omitempty"`
	// Cached concept map; empty until the mapping stage runs
	ConceptMap []schema.ConceptEntry `json:"concept_map,omitempty"`
	// Derived from the concept map at mapping time
	DifficultyIndex float64 `json:"difficulty_index,omitempty"`
	// PracticeQuota holds the value of the "practice_quota" field.
	PracticeQuota int `json:"practice_quota,omitempty"`
	// ArchiveQuota holds the value of the "archive_quota" field.
	ArchiveQuota int `json:"archive_quota,omitempty"`
	// ExamQuota holds the value of the "exam_quota" field.
	ExamQuota int `json:"exam_quota,omitempty"`
	// pending, processing, completed, or failed
	GenerationStatus string `json:"generation_status,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Chunk) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chunk.FieldConceptMap:
			values[i] = new([]byte)
		case chunk.FieldDensityScore, chunk.FieldDifficultyIndex:
			values[i] = new(sql.NullFloat64)
		case chunk.FieldPosition, chunk.FieldWordCount, chunk.FieldPracticeQuota, chunk.FieldArchiveQuota, chunk.FieldExamQuota:
			values[i] = new(sql.NullInt64)
		case chunk.FieldTitle, chunk.FieldContent, chunk.FieldGenerationStatus:
			values[i] = new(sql.NullString)
		case chunk.FieldID, chunk.FieldCourseID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Chunk fields.
func (_m *Chunk) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chunk.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case chunk.FieldCourseID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value != nil {
				_m.CourseID = *value
			}
		case chunk.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case chunk.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case chunk.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case chunk.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				_m.WordCount = int(value.Int64)
			}
		case chunk.FieldDensityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field density_score", values[i])
			} else if value.Valid {
				_m.DensityScore = value.Float64
			}
		case chunk.FieldConceptMap:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concept_map", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptMap); err != nil {
					return fmt.Errorf("unmarshal field concept_map: %w", err)
				}
			}
		case chunk.FieldDifficultyIndex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_index", values[i])
			} else if value.Valid {
				_m.DifficultyIndex = value.Float64
			}
		case chunk.FieldPracticeQuota:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_quota", values[i])
			} else if value.Valid {
				_m.PracticeQuota = int(value.Int64)
			}
		case chunk.FieldArchiveQuota:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field archive_quota", values[i])
			} else if value.Valid {
				_m.ArchiveQuota = int(value.Int64)
			}
		case chunk.FieldExamQuota:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exam_quota", values[i])
			} else if value.Valid {
				_m.ExamQuota = int(value.Int64)
			}
		case chunk.FieldGenerationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generation_status", values[i])
			} else if value.Valid {
				_m.GenerationStatus = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Chunk.
// This includes values selected through modifiers, order, etc.
func (_m *Chunk) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Chunk.
// Note that you need to call Chunk.Unwrap() before calling this method if this Chunk
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Chunk) Update() *ChunkUpdateOne {
	return NewChunkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Chunk entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Chunk) Unwrap() *Chunk {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Chunk is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Chunk) String() string {
	var builder strings.Builder
	builder.WriteString("Chunk(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("course_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("word_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordCount))
	builder.WriteString(", ")
	builder.WriteString("density_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DensityScore))
	builder.WriteString(", ")
	builder.WriteString("concept_map=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptMap))
	builder.WriteString(", ")
	builder.WriteString("difficulty_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyIndex))
	builder.WriteString(", ")
	builder.WriteString("practice_quota=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeQuota))
	builder.WriteString(", ")
	builder.WriteString("archive_quota=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArchiveQuota))
	builder.WriteString(", ")
	builder.WriteString("exam_quota=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExamQuota))
	builder.WriteString(", ")
	builder.WriteString("generation_status=")
	builder.WriteString(_m.GenerationStatus)
	builder.WriteByte(')')
	return builder.String()
}

// Chunks is a parsable slice of Chunk.
type Chunks []*Chunk
