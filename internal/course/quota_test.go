package course

import "testing"

func TestComputeQuota(t *testing.T) {
	tests := []struct {
		name         string
		conceptCount int
		want         Quota
	}{
		{"five concepts", 5, Quota{Practice: 5, Archive: 2, Exam: 1}},
		{"floor applies below five", 2, Quota{Practice: 5, Archive: 2, Exam: 1}},
		{"zero concepts still floored", 0, Quota{Practice: 5, Archive: 2, Exam: 1}},
		{"ten concepts", 10, Quota{Practice: 10, Archive: 3, Exam: 2}},
		{"seven concepts rounds up", 7, Quota{Practice: 7, Archive: 3, Exam: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeQuota(tt.conceptCount)
			if got != tt.want {
				t.Errorf("ComputeQuota(%d) = %+v, want %+v", tt.conceptCount, got, tt.want)
			}
		})
	}
}

func TestQuotaTotal(t *testing.T) {
	q := ComputeQuota(10)
	if q.Total() != 15 {
		t.Errorf("Total() = %d, want 15", q.Total())
	}
}

func TestDifficultyIndex(t *testing.T) {
	tests := []struct {
		name     string
		concepts []ConceptMapItem
		want     float64
	}{
		{"empty map", nil, 0},
		{"all knowledge", []ConceptMapItem{{Level: LevelKnowledge}, {Level: LevelKnowledge}}, 1.0},
		{"mixed", []ConceptMapItem{{Level: LevelKnowledge}, {Level: LevelAnalysis}}, 2.0},
		{"unknown level treated as knowledge", []ConceptMapItem{{Level: "made-up"}}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DifficultyIndex(tt.concepts)
			if got != tt.want {
				t.Errorf("DifficultyIndex = %v, want %v", got, tt.want)
			}
		})
	}
}
