package mastery

import (
	"math"
	"testing"
	"time"
)

func TestCombineReferenceScenario(t *testing.T) {
	// 8 of 10 solved with an incremental component of 50:
	// 0.8×60 + 50×0.4 = 48 + 20 = 68.
	got := Combine(CoverageRatio(8, 10), 50)
	if got != 68 {
		t.Errorf("Combine = %d, want 68", got)
	}
}

func TestCombineBounds(t *testing.T) {
	tests := []struct {
		name     string
		coverage float64
		srs      float64
		want     int
	}{
		{"floor", 0, 0, 0},
		{"ceiling", 1, 100, 100},
		{"nan collapses to zero", math.NaN(), 50, 0},
		{"inf collapses to zero", math.Inf(1), 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(tt.coverage, tt.srs)
			if got != tt.want {
				t.Errorf("Combine(%v, %v) = %d, want %d", tt.coverage, tt.srs, got, tt.want)
			}
		})
	}
}

func TestCoverageRatio(t *testing.T) {
	tests := []struct {
		solved, total int
		want          float64
	}{
		{8, 10, 0.8},
		{12, 10, 1},  // capped
		{0, 0, 0},    // empty chunk guard
		{3, -1, 0},   // invalid total guard
		{-2, 10, 0},  // invalid solved guard
		{10, 10, 1},
	}

	for _, tt := range tests {
		got := CoverageRatio(tt.solved, tt.total)
		if got != tt.want {
			t.Errorf("CoverageRatio(%d, %d) = %v, want %v", tt.solved, tt.total, got, tt.want)
		}
	}
}

func TestScoreMovesWithAnswers(t *testing.T) {
	base := Score(ScoreInput{UniqueSolved: 5, TotalQuestions: 10, Correct: true, PreviousScore: 50})

	up := Score(ScoreInput{UniqueSolved: 5, TotalQuestions: 10, Correct: true, PreviousScore: base})
	if up < base {
		t.Errorf("correct answer should not lower the score: %d -> %d", base, up)
	}

	down := Score(ScoreInput{UniqueSolved: 5, TotalQuestions: 10, Correct: false, PreviousScore: base})
	if down >= base {
		t.Errorf("incorrect answer should lower the score: %d -> %d", base, down)
	}
}

func TestScoreRepeatDamping(t *testing.T) {
	fresh := Score(ScoreInput{UniqueSolved: 4, TotalQuestions: 10, Correct: true, PreviousScore: 40})
	ground := Score(ScoreInput{UniqueSolved: 4, TotalQuestions: 10, Correct: true, PreviousScore: 40, RepeatedAttempt: true})

	if ground >= fresh {
		t.Errorf("repeated attempt must be dampened: fresh=%d repeated=%d", fresh, ground)
	}
}

func TestScoreAlwaysInBounds(t *testing.T) {
	inputs := []ScoreInput{
		{UniqueSolved: 0, TotalQuestions: 0, Correct: false, PreviousScore: 0},
		{UniqueSolved: 100, TotalQuestions: 1, Correct: true, PreviousScore: 100},
		{UniqueSolved: -5, TotalQuestions: -5, Correct: false, PreviousScore: -20},
		{UniqueSolved: 1, TotalQuestions: 1, Correct: true, PreviousScore: 999},
	}

	for _, in := range inputs {
		got := Score(in)
		if got < 0 || got > 100 {
			t.Errorf("Score(%+v) = %d, out of bounds", in, got)
		}
	}
}

func TestShouldMarkFullReview(t *testing.T) {
	now := time.Now()
	recent := now.Add(-5 * time.Minute)
	old := now.Add(-15 * time.Minute)

	tests := []struct {
		name     string
		coverage float64
		last     *time.Time
		want     bool
	}{
		{"below threshold", 0.5, nil, false},
		{"first full review", 0.8, nil, true},
		{"throttled", 0.9, &recent, false},
		{"throttle expired", 0.9, &old, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldMarkFullReview(tt.coverage, tt.last, now)
			if got != tt.want {
				t.Errorf("ShouldMarkFullReview = %v, want %v", got, tt.want)
			}
		})
	}
}
