// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/astiages123/auditpath/ent/answerevent"
	"github.com/astiages123/auditpath/ent/chunk"
	"github.com/astiages123/auditpath/ent/chunkmastery"
	"github.com/astiages123/auditpath/ent/llmrequestevent"
	"github.com/astiages123/auditpath/ent/question"
	"github.com/astiages123/auditpath/ent/schema"
	"github.com/astiages123/auditpath/ent/sessioncache"
	"github.com/astiages123/auditpath/ent/sessioncounter"
	"github.com/astiages123/auditpath/ent/userquestionstatus"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	chunkFields := schema.Chunk{}.Fields()
	_ = chunkFields
	// chunkDescTitle is the schema descriptor for title field.
	chunkDescTitle := chunkFields[2].Descriptor()
	// chunk.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	chunk.TitleValidator = chunkDescTitle.Validators[0].(func(string) error)
	// chunkDescPosition is the schema descriptor for position field.
	chunkDescPosition := chunkFields[4].Descriptor()
	// chunk.DefaultPosition holds the default value on creation for the position field.
	chunk.DefaultPosition = chunkDescPosition.Default.(int)
	// chunkDescWordCount is the schema descriptor for word_count field.
	chunkDescWordCount := chunkFields[5].Descriptor()
	// chunk.DefaultWordCount holds the default value on creation for the word_count field.
	chunk.DefaultWordCount = chunkDescWordCount.Default.(int)
	// chunkDescDensityScore is the schema descriptor for density_score field.
	chunkDescDensityScore := chunkFields[6].Descriptor()
	// chunk.DefaultDensityScore holds the default value on creation for the density_score field.
	chunk.DefaultDensityScore = chunkDescDensityScore.Default.(float64)
	// chunkDescDifficultyIndex is the schema descriptor for difficulty_index field.
	chunkDescDifficultyIndex := chunkFields[8].Descriptor()
	// chunk.DefaultDifficultyIndex holds the default value on creation for the difficulty_index field.
	chunk.DefaultDifficultyIndex = chunkDescDifficultyIndex.Default.(float64)
	// chunkDescPracticeQuota is the schema descriptor for practice_quota field.
	chunkDescPracticeQuota := chunkFields[9].Descriptor()
	// chunk.DefaultPracticeQuota holds the default value on creation for the practice_quota field.
	chunk.DefaultPracticeQuota = chunkDescPracticeQuota.Default.(int)
	// chunkDescArchiveQuota is the schema descriptor for archive_quota field.
	chunkDescArchiveQuota := chunkFields[10].Descriptor()
	// chunk.DefaultArchiveQuota holds the default value on creation for the archive_quota field.
	chunk.DefaultArchiveQuota = chunkDescArchiveQuota.Default.(int)
	// chunkDescExamQuota is the schema descriptor for exam_quota field.
	chunkDescExamQuota := chunkFields[11].Descriptor()
	// chunk.DefaultExamQuota holds the default value on creation for the exam_quota field.
	chunk.DefaultExamQuota = chunkDescExamQuota.Default.(int)
	// chunkDescGenerationStatus is the schema descriptor for generation_status field.
	chunkDescGenerationStatus := chunkFields[12].Descriptor()
	// chunk.DefaultGenerationStatus holds the default value on creation for the generation_status field.
	chunk.DefaultGenerationStatus = chunkDescGenerationStatus.Default.(string)
	// chunkDescID is the schema descriptor for id field.
	chunkDescID := chunkFields[0].Descriptor()
	// chunk.DefaultID holds the default value on creation for the id field.
	chunk.DefaultID = chunkDescID.Default.(func() uuid.UUID)
	chunkmasteryFields := schema.ChunkMastery{}.Fields()
	_ = chunkmasteryFields
	// chunkmasteryDescMasteryScore is the schema descriptor for mastery_score field.
	chunkmasteryDescMasteryScore := chunkmasteryFields[3].Descriptor()
	// chunkmastery.DefaultMasteryScore holds the default value on creation for the mastery_score field.
	chunkmastery.DefaultMasteryScore = chunkmasteryDescMasteryScore.Default.(int)
	// chunkmasteryDescLastReviewedSession is the schema descriptor for last_reviewed_session field.
	chunkmasteryDescLastReviewedSession := chunkmasteryFields[4].Descriptor()
	// chunkmastery.DefaultLastReviewedSession holds the default value on creation for the last_reviewed_session field.
	chunkmastery.DefaultLastReviewedSession = chunkmasteryDescLastReviewedSession.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[8].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	sessioncacheFields := schema.SessionCache{}.Fields()
	_ = sessioncacheFields
	// sessioncacheDescReviewIndex is the schema descriptor for review_index field.
	sessioncacheDescReviewIndex := sessioncacheFields[4].Descriptor()
	// sessioncache.DefaultReviewIndex holds the default value on creation for the review_index field.
	sessioncache.DefaultReviewIndex = sessioncacheDescReviewIndex.Default.(int)
	sessioncounterFields := schema.SessionCounter{}.Fields()
	_ = sessioncounterFields
	// sessioncounterDescCurrentSession is the schema descriptor for current_session field.
	sessioncounterDescCurrentSession := sessioncounterFields[2].Descriptor()
	// sessioncounter.DefaultCurrentSession holds the default value on creation for the current_session field.
	sessioncounter.DefaultCurrentSession = sessioncounterDescCurrentSession.Default.(int)
	userquestionstatusFields := schema.UserQuestionStatus{}.Fields()
	_ = userquestionstatusFields
	// userquestionstatusDescStatus is the schema descriptor for status field.
	userquestionstatusDescStatus := userquestionstatusFields[3].Descriptor()
	// userquestionstatus.DefaultStatus holds the default value on creation for the status field.
	userquestionstatus.DefaultStatus = userquestionstatusDescStatus.Default.(string)
	// userquestionstatusDescSuccessStreak is the schema descriptor for success_streak field.
	userquestionstatusDescSuccessStreak := userquestionstatusFields[4].Descriptor()
	// userquestionstatus.DefaultSuccessStreak holds the default value on creation for the success_streak field.
	userquestionstatus.DefaultSuccessStreak = userquestionstatusDescSuccessStreak.Default.(int)
	// userquestionstatusDescFailStreak is the schema descriptor for fail_streak field.
	userquestionstatusDescFailStreak := userquestionstatusFields[5].Descriptor()
	// userquestionstatus.DefaultFailStreak holds the default value on creation for the fail_streak field.
	userquestionstatus.DefaultFailStreak = userquestionstatusDescFailStreak.Default.(int)
	// userquestionstatusDescNextReviewSession is the schema descriptor for next_review_session field.
	userquestionstatusDescNextReviewSession := userquestionstatusFields[6].Descriptor()
	// userquestionstatus.DefaultNextReviewSession holds the default value on creation for the next_review_session field.
	userquestionstatus.DefaultNextReviewSession = userquestionstatusDescNextReviewSession.Default.(int)
	// userquestionstatusDescUpdatedAt is the schema descriptor for updated_at field.
	userquestionstatusDescUpdatedAt := userquestionstatusFields[7].Descriptor()
	// userquestionstatus.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userquestionstatus.DefaultUpdatedAt = userquestionstatusDescUpdatedAt.Default.(func() time.Time)
	// userquestionstatus.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userquestionstatus.UpdateDefaultUpdatedAt = userquestionstatusDescUpdatedAt.UpdateDefault.(func() time.Time)
}
