// Package shelf implements the per-question review state machine. Every
// (user, question) pair sits on one of three shelves: active rotation,
// pending a remedial follow-up, or archived as mastered. It moves
// between them based on correctness and response speed.
package shelf

// Status is a question's position in the shelf lifecycle.
type Status string

const (
	StatusActive          Status = "active"
	StatusPendingFollowup Status = "pending_followup"
	StatusArchived        Status = "archived"
)

// ArchiveStreak is the number of consecutive correct-and-fast answers
// that shelves a question as mastered.
const ArchiveStreak = 3

// TransitionInput is the state read before applying an answer.
type TransitionInput struct {
	Status        Status
	SuccessStreak int
	FailStreak    int
	Correct       bool
	Fast          bool
	SessionNumber int
}

// TransitionResult is the state to persist after an answer.
type TransitionResult struct {
	Status        Status
	SuccessStreak int
	FailStreak    int
	// NextReviewSession is set only when Status is pending_followup;
	// zero otherwise.
	NextReviewSession int
	// Archived reports whether this transition crossed the archive
	// threshold, for caller-side telemetry.
	Archived bool
}

// Transition applies the three-strike rule to one answer. Pure: no
// clock, no store.
//
//   - Correct and fast increments the success streak; at ArchiveStreak
//     the question is archived and the streak resets.
//   - Correct but slow clears a pending shelf without advancing the
//     streak. Mastery requires fluency, not just correctness.
//   - Incorrect resets the streak, bumps the fail streak, and schedules
//     the question for a future session, unless it was archived, in
//     which case it only falls back into active rotation.
func Transition(in TransitionInput) TransitionResult {
	status := in.Status
	if status == "" {
		status = StatusActive
	}

	if !in.Correct {
		out := TransitionResult{
			SuccessStreak: 0,
			FailStreak:    in.FailStreak + 1,
		}
		if status == StatusArchived {
			out.Status = StatusActive
			return out
		}
		out.Status = StatusPendingFollowup
		out.NextReviewSession = NextReviewSession(in.SessionNumber, in.SuccessStreak)
		return out
	}

	if status == StatusArchived {
		// Archived items passing a re-touch stay archived; the streak
		// machinery only matters on the way up.
		return TransitionResult{Status: StatusArchived}
	}

	// Any correct answer clears the fail streak and releases a pending
	// shelf back into the active rotation.
	out := TransitionResult{
		Status:        StatusActive,
		SuccessStreak: in.SuccessStreak,
		FailStreak:    0,
	}

	if in.Fast {
		out.SuccessStreak = in.SuccessStreak + 1
		if out.SuccessStreak >= ArchiveStreak {
			out.Status = StatusArchived
			out.SuccessStreak = 0
			out.Archived = true
		}
	}

	return out
}
