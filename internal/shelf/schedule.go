package shelf

// reviewIntervals is the expanding spacing schedule in sessions, indexed
// by the success streak the question held before it failed. A question
// the learner almost had can wait longer than one they never got.
// Tunable policy, not a contract.
var reviewIntervals = []int{1, 3, 7}

// NextReviewSession returns the session number a failed question comes
// due, given the current session and the pre-failure success streak.
func NextReviewSession(sessionNumber, streak int) int {
	idx := streak
	if idx < 0 {
		idx = 0
	}
	if idx >= len(reviewIntervals) {
		idx = len(reviewIntervals) - 1
	}
	return sessionNumber + reviewIntervals[idx]
}
