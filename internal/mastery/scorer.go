// Package mastery computes the 0-100 chunk mastery score: how much of a
// chunk's question pool the learner has covered, blended with a slower
// signal of how reliably they answer inside it.
package mastery

import (
	"math"
	"time"
)

const (
	coverageWeight = 60.0
	srsWeight      = 0.4

	correctDelta   = 10.0
	incorrectDelta = -15.0
	// repeatDamping shrinks the update when the learner re-answers a
	// question they already solved, so grinding one item cannot farm
	// the score.
	repeatDamping = 0.25
)

// FullReviewCoverage is the coverage ratio at which a chunk counts as
// fully reviewed.
const FullReviewCoverage = 0.8

// FullReviewThrottle bounds how often the full-review timestamp may
// refresh.
const FullReviewThrottle = 10 * time.Minute

// ScoreInput carries everything needed to recompute a chunk's mastery
// after one answer.
type ScoreInput struct {
	UniqueSolved    int
	TotalQuestions  int
	Correct         bool
	PreviousScore   int
	RepeatedAttempt bool
}

// Score recomputes the chunk mastery score. Always in [0, 100]; any
// non-finite intermediate collapses to 0 rather than poisoning the row.
func Score(in ScoreInput) int {
	coverage := CoverageRatio(in.UniqueSolved, in.TotalQuestions)

	// Recover the incremental component from the previous score, then
	// nudge it by this answer.
	srs := (float64(in.PreviousScore) - coverage*coverageWeight) / srsWeight
	srs = clamp(srs, 0, 100)

	delta := correctDelta
	if !in.Correct {
		delta = incorrectDelta
	}
	if in.RepeatedAttempt {
		delta *= repeatDamping
	}
	srs = clamp(srs+delta, 0, 100)

	return Combine(coverage, srs)
}

// CoverageRatio returns min(1, solved/total), guarding empty chunks.
func CoverageRatio(uniqueSolved, totalQuestions int) float64 {
	if totalQuestions <= 0 || uniqueSolved < 0 {
		return 0
	}
	r := float64(uniqueSolved) / float64(totalQuestions)
	if r > 1 {
		return 1
	}
	return r
}

// Combine blends coverage and the incremental component into the final
// rounded score.
func Combine(coverageRatio, srsComponent float64) int {
	v := coverageRatio*coverageWeight + srsComponent*srsWeight
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(clamp(math.Round(v), 0, 100))
}

// ShouldMarkFullReview reports whether this answer completes a full
// review of the chunk, throttled so a burst of answers near the
// threshold refreshes the timestamp at most once per throttle window.
func ShouldMarkFullReview(coverageRatio float64, lastFullReviewAt *time.Time, now time.Time) bool {
	if coverageRatio < FullReviewCoverage {
		return false
	}
	if lastFullReviewAt == nil {
		return true
	}
	return now.Sub(*lastFullReviewAt) >= FullReviewThrottle
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
