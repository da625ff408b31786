package shelf

import (
	"time"

	"github.com/astiages123/auditpath/internal/course"
)

// The time-to-solve model: a question is "fast" when answered within a
// budget derived from reading time plus a thinking allowance. Reading
// speed starts at 180 words per minute and slows for dense source
// material; the thinking allowance scales with the Bloom level.

const baseWordsPerMinute = 180.0

// bloomTiming holds the per-level knobs of the solve-time budget.
type bloomTiming struct {
	multiplier float64       // scales the fixed thinking allowance
	buffer     time.Duration // slack added on top
}

var bloomTimings = map[course.Level]bloomTiming{
	course.LevelKnowledge:   {multiplier: 1.0, buffer: 5 * time.Second},
	course.LevelApplication: {multiplier: 1.2, buffer: 15 * time.Second},
	course.LevelAnalysis:    {multiplier: 1.5, buffer: 30 * time.Second},
}

// densityCoefficient slows the assumed reading speed for dense chunks.
// Score is the chunk's content-density in [0,1].
func densityCoefficient(score float64) float64 {
	switch {
	case score < 0.33:
		return 1.0
	case score < 0.66:
		return 0.75
	default:
		return 0.6
	}
}

// MaxSolveTime returns the fast/slow threshold for one question.
// Simulated-exam questions get half the buffer to emulate time pressure.
func MaxSolveTime(wordCount int, densityScore float64, level course.Level, isExam bool) time.Duration {
	bt, ok := bloomTimings[level]
	if !ok {
		bt = bloomTimings[course.LevelKnowledge]
	}

	if wordCount < 0 {
		wordCount = 0
	}

	readSecs := float64(wordCount) / (baseWordsPerMinute * densityCoefficient(densityScore)) * 60.0
	thinkSecs := 15.0 * bt.multiplier

	buffer := bt.buffer
	if isExam {
		buffer /= 2
	}

	return time.Duration(readSecs*float64(time.Second)) +
		time.Duration(thinkSecs*float64(time.Second)) +
		buffer
}

// IsFast reports whether an answer beat the solve-time budget.
func IsFast(elapsed, budget time.Duration) bool {
	return elapsed <= budget
}
