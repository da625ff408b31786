package practice

import (
	"github.com/astiages123/auditpath/internal/session"
	"github.com/astiages123/auditpath/internal/store"
)

// initDoneMsg is sent when the session queue has been built or resumed.
type initDoneMsg struct {
	Err error
}

// questionReadyMsg is sent when the question under the cursor has loaded.
type questionReadyMsg struct {
	Question *store.QuestionRecord
	Err      error
}

// answerGradedMsg is sent when an answer has been graded and persisted.
// Slow path: a wrong answer may wait on follow-up generation.
type answerGradedMsg struct {
	Outcome *session.AnswerOutcome
	Err     error
}
