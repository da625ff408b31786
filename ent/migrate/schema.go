// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "question_id", Type: field.TypeUUID},
		{Name: "chunk_id", Type: field.TypeUUID, Nullable: true},
		{Name: "session_number", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "fast", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "status_after", Type: field.TypeString},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_user_id_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3], AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_user_id_session_number",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3], AnswerEventsColumns[6]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[7]},
			},
		},
	}
	// ChunksColumns holds the columns for the "chunks" table.
	ChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "density_score", Type: field.TypeFloat64, Default: 0},
		{Name: "concept_map", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty_index", Type: field.TypeFloat64, Default: 0},
		{Name: "practice_quota", Type: field.TypeInt, Default: 0},
		{Name: "archive_quota", Type: field.TypeInt, Default: 0},
		{Name: "exam_quota", Type: field.TypeInt, Default: 0},
		{Name: "generation_status", Type: field.TypeString, Default: "pending"},
	}
	// ChunksTable holds the schema information for the "chunks" table.
	ChunksTable = &schema.Table{
		Name:       "chunks",
		Columns:    ChunksColumns,
		PrimaryKey: []*schema.Column{ChunksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chunk_course_id",
				Unique:  false,
				Columns: []*schema.Column{ChunksColumns[1]},
			},
			{
				Name:    "chunk_course_id_position",
				Unique:  false,
				Columns: []*schema.Column{ChunksColumns[1], ChunksColumns[4]},
			},
			{
				Name:    "chunk_generation_status",
				Unique:  false,
				Columns: []*schema.Column{ChunksColumns[12]},
			},
		},
	}
	// ChunkMasteriesColumns holds the columns for the "chunk_masteries" table.
	ChunkMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "chunk_id", Type: field.TypeUUID},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "mastery_score", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_session", Type: field.TypeInt, Default: 0},
		{Name: "last_full_review_at", Type: field.TypeTime, Nullable: true},
	}
	// ChunkMasteriesTable holds the schema information for the "chunk_masteries" table.
	ChunkMasteriesTable = &schema.Table{
		Name:       "chunk_masteries",
		Columns:    ChunkMasteriesColumns,
		PrimaryKey: []*schema.Column{ChunkMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chunkmastery_user_id_chunk_id",
				Unique:  true,
				Columns: []*schema.Column{ChunkMasteriesColumns[1], ChunkMasteriesColumns[2]},
			},
			{
				Name:    "chunkmastery_user_id_course_id_mastery_score",
				Unique:  false,
				Columns: []*schema.Column{ChunkMasteriesColumns[1], ChunkMasteriesColumns[3], ChunkMasteriesColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "chunk_id", Type: field.TypeUUID},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "usage_category", Type: field.TypeString},
		{Name: "bloom_level", Type: field.TypeString},
		{Name: "concept_title", Type: field.TypeString},
		{Name: "parent_question_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_chunk_id_usage_category_concept_title",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[3], QuestionsColumns[5]},
			},
			{
				Name:    "question_course_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[2]},
			},
			{
				Name:    "question_parent_question_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[6]},
			},
		},
	}
	// SessionCachesColumns holds the columns for the "session_caches" table.
	SessionCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "session_id", Type: field.TypeString},
		{Name: "session_number", Type: field.TypeInt},
		{Name: "review_index", Type: field.TypeInt, Default: 0},
		{Name: "queue", Type: field.TypeJSON},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// SessionCachesTable holds the schema information for the "session_caches" table.
	SessionCachesTable = &schema.Table{
		Name:       "session_caches",
		Columns:    SessionCachesColumns,
		PrimaryKey: []*schema.Column{SessionCachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessioncache_user_id_course_id",
				Unique:  true,
				Columns: []*schema.Column{SessionCachesColumns[1], SessionCachesColumns[2]},
			},
			{
				Name:    "sessioncache_expires_at",
				Unique:  false,
				Columns: []*schema.Column{SessionCachesColumns[7]},
			},
		},
	}
	// SessionCountersColumns holds the columns for the "session_counters" table.
	SessionCountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "current_session", Type: field.TypeInt, Default: 1},
		{Name: "last_session_date", Type: field.TypeString},
	}
	// SessionCountersTable holds the schema information for the "session_counters" table.
	SessionCountersTable = &schema.Table{
		Name:       "session_counters",
		Columns:    SessionCountersColumns,
		PrimaryKey: []*schema.Column{SessionCountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessioncounter_user_id_course_id",
				Unique:  true,
				Columns: []*schema.Column{SessionCountersColumns[1], SessionCountersColumns[2]},
			},
		},
	}
	// UserQuestionStatusColumns holds the columns for the "user_question_status" table.
	UserQuestionStatusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "question_id", Type: field.TypeUUID},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "success_streak", Type: field.TypeInt, Default: 0},
		{Name: "fail_streak", Type: field.TypeInt, Default: 0},
		{Name: "next_review_session", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserQuestionStatusTable holds the schema information for the "user_question_status" table.
	UserQuestionStatusTable = &schema.Table{
		Name:       "user_question_status",
		Columns:    UserQuestionStatusColumns,
		PrimaryKey: []*schema.Column{UserQuestionStatusColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userquestionstatus_user_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{UserQuestionStatusColumns[1], UserQuestionStatusColumns[2]},
			},
			{
				Name:    "userquestionstatus_user_id_course_id_status",
				Unique:  false,
				Columns: []*schema.Column{UserQuestionStatusColumns[1], UserQuestionStatusColumns[3], UserQuestionStatusColumns[4]},
			},
			{
				Name:    "userquestionstatus_user_id_course_id_next_review_session",
				Unique:  false,
				Columns: []*schema.Column{UserQuestionStatusColumns[1], UserQuestionStatusColumns[3], UserQuestionStatusColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		ChunksTable,
		ChunkMasteriesTable,
		LlmRequestEventsTable,
		QuestionsTable,
		SessionCachesTable,
		SessionCountersTable,
		UserQuestionStatusTable,
	}
)

func init() {
}
