package shelf

import (
	"testing"
	"time"

	"github.com/astiages123/auditpath/internal/course"
)

func TestMaxSolveTimeByLevel(t *testing.T) {
	// 60 words, sparse content: 60/180 min = 20s reading time.
	tests := []struct {
		name  string
		level course.Level
		want  time.Duration
	}{
		{"knowledge", course.LevelKnowledge, 20*time.Second + 15*time.Second + 5*time.Second},
		{"application", course.LevelApplication, 20*time.Second + 18*time.Second + 15*time.Second},
		{"analysis", course.LevelAnalysis, 20*time.Second + 22500*time.Millisecond + 30*time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxSolveTime(60, 0.1, tt.level, false)
			if got != tt.want {
				t.Errorf("MaxSolveTime = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxSolveTimeDensitySlowsReading(t *testing.T) {
	sparse := MaxSolveTime(180, 0.1, course.LevelKnowledge, false)
	medium := MaxSolveTime(180, 0.5, course.LevelKnowledge, false)
	dense := MaxSolveTime(180, 0.9, course.LevelKnowledge, false)

	if !(sparse < medium && medium < dense) {
		t.Errorf("denser content must allow more time: %v, %v, %v", sparse, medium, dense)
	}

	// 180 words at coefficient 0.6 → 100s of reading time.
	wantDense := 100*time.Second + 15*time.Second + 5*time.Second
	if dense != wantDense {
		t.Errorf("dense budget = %v, want %v", dense, wantDense)
	}
}

func TestMaxSolveTimeExamHalvesBuffer(t *testing.T) {
	normal := MaxSolveTime(0, 0, course.LevelAnalysis, false)
	exam := MaxSolveTime(0, 0, course.LevelAnalysis, true)

	if normal-exam != 15*time.Second {
		t.Errorf("exam pressure should halve the 30s buffer, diff = %v", normal-exam)
	}
}

func TestMaxSolveTimeUnknownLevel(t *testing.T) {
	got := MaxSolveTime(0, 0, "made-up", false)
	want := MaxSolveTime(0, 0, course.LevelKnowledge, false)
	if got != want {
		t.Errorf("unknown level should fall back to knowledge timing: %v != %v", got, want)
	}
}

func TestMaxSolveTimeNegativeWordCount(t *testing.T) {
	got := MaxSolveTime(-10, 0, course.LevelKnowledge, false)
	want := MaxSolveTime(0, 0, course.LevelKnowledge, false)
	if got != want {
		t.Errorf("negative word count should clamp to zero: %v != %v", got, want)
	}
}

func TestIsFast(t *testing.T) {
	budget := 30 * time.Second
	if !IsFast(30*time.Second, budget) {
		t.Error("hitting the budget exactly counts as fast")
	}
	if IsFast(31*time.Second, budget) {
		t.Error("over budget is slow")
	}
}
