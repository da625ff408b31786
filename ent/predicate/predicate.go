// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// Chunk is the predicate function for chunk builders.
type Chunk func(*sql.Selector)

// ChunkMastery is the predicate function for chunkmastery builders.
type ChunkMastery func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// SessionCache is the predicate function for sessioncache builders.
type SessionCache func(*sql.Selector)

// SessionCounter is the predicate function for sessioncounter builders.
type SessionCounter func(*sql.Selector)

// UserQuestionStatus is the predicate function for userquestionstatus builders.
type UserQuestionStatus func(*sql.Selector)
