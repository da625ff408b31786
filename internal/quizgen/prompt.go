package quizgen

import (
	"fmt"
	"strings"

	"github.com/astiages123/auditpath/internal/course"
	"github.com/astiages123/auditpath/internal/store"
)

const mappingSystemPrompt = `You are a curriculum designer preparing a study text for quiz generation.

Rules:
- Extract the distinct pedagogical concepts the text teaches, in the order they appear.
- Each concept gets a short unique title, a one-sentence focus describing what a question should test, and a Bloom depth: "knowledge" for definitions and facts, "application" for procedures and calculations, "analysis" for judgement calls and comparisons.
- Do not invent concepts the text does not cover. Merge near-duplicates.
- When the text references a figure or table essential to a concept, record it in image_ref; otherwise leave image_ref empty.`

const draftSystemPrompt = `You are an exam author writing multiple-choice questions for professional certification study.

Rules:
- Write a single question testing exactly the given concept at the given Bloom depth, answerable from the source text alone.
- "knowledge" questions test recall of definitions or facts. "application" questions require applying a rule or performing a calculation. "analysis" questions require comparing, classifying, or judging a scenario.
- Provide exactly 4 options. Exactly one is correct and must match the answer field verbatim. Distractors reflect plausible misreadings of the text, not random values.
- Questions for the "exam" category mimic real exam phrasing and length. "archive" category questions rephrase the concept so a learner who memorized an earlier answer must still reason. "practice" category questions are direct.
- The explanation cites the relevant part of the source text.
- Plain text only. No markdown, no numbering of options.`

const validateSystemPrompt = `You are a strict reviewer checking a drafted quiz question against its source text.

Reject the question when any of the following holds:
- The stated answer is wrong, ambiguous, or not answerable from the source text.
- More than one option is defensible, or the answer does not match any option verbatim.
- The question tests a different concept or a different Bloom depth than requested.
- The explanation contradicts the source text.

Score 0-100. Approve at 70 or above. When rejecting, give concrete revision instructions in the feedback field; keep feedback empty when approving.`

const followupSystemPrompt = `You are a tutor writing one remedial question after a learner answered incorrectly.

Rules:
- Target the specific misunderstanding revealed by the learner's wrong answer.
- The new question must be simpler than the original: isolate the single step or definition the learner got wrong.
- Provide exactly 4 options, one correct, matching the answer field verbatim.
- The explanation addresses the learner's mistake directly.
- Plain text only.`

// buildMappingMessage formats a chunk for the concept-mapping call.
func buildMappingMessage(chunk *store.ChunkRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n\n", chunk.Title)
	b.WriteString("Source text:\n")
	b.WriteString(chunk.Content)
	return b.String()
}

// buildDraftMessage formats one concept+category draft request.
func buildDraftMessage(chunk *store.ChunkRecord, concept course.ConceptMapItem, category UsageCategory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Concept: %s\n", concept.Title)
	fmt.Fprintf(&b, "Focus: %s\n", concept.Focus)
	fmt.Fprintf(&b, "Bloom depth: %s\n", concept.Level)
	fmt.Fprintf(&b, "Category: %s\n", category)
	if concept.ImageRef != "" {
		fmt.Fprintf(&b, "Referenced figure: %s\n", concept.ImageRef)
	}
	b.WriteString("\nSource text:\n")
	b.WriteString(chunk.Content)
	return b.String()
}

// buildValidateMessage formats a draft for the review call.
func buildValidateMessage(chunk *store.ChunkRecord, concept course.ConceptMapItem, draft draftOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Concept: %s\n", concept.Title)
	fmt.Fprintf(&b, "Bloom depth: %s\n\n", concept.Level)
	fmt.Fprintf(&b, "Question: %s\n", draft.QuestionText)
	for i, opt := range draft.Options {
		fmt.Fprintf(&b, "Option %d: %s\n", i+1, opt)
	}
	fmt.Fprintf(&b, "Stated answer: %s\n", draft.Answer)
	fmt.Fprintf(&b, "Explanation: %s\n", draft.Explanation)
	b.WriteString("\nSource text:\n")
	b.WriteString(chunk.Content)
	return b.String()
}

// buildReviseMessage feeds the rejection feedback back into a redraft.
func buildReviseMessage(chunk *store.ChunkRecord, concept course.ConceptMapItem, category UsageCategory, prior draftOutput, feedback string) string {
	var b strings.Builder
	b.WriteString(buildDraftMessage(chunk, concept, category))
	b.WriteString("\n\nYour previous draft was rejected.\n")
	fmt.Fprintf(&b, "Previous question: %s\n", prior.QuestionText)
	fmt.Fprintf(&b, "Previous answer: %s\n", prior.Answer)
	fmt.Fprintf(&b, "Reviewer feedback: %s\n", feedback)
	b.WriteString("Write a corrected question addressing the feedback.")
	return b.String()
}

// buildFollowupMessage formats the wrong-answer context for remedial
// generation.
func buildFollowupMessage(q *store.QuestionRecord, userAnswer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Original question: %s\n", q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "Option %d: %s\n", i+1, opt)
	}
	fmt.Fprintf(&b, "Correct answer: %s\n", q.Answer)
	fmt.Fprintf(&b, "Learner's answer: %s\n", userAnswer)
	fmt.Fprintf(&b, "Concept: %s\n", q.ConceptTitle)
	return b.String()
}
