package course

import "math"

// Quota is the per-chunk question target for each usage category.
type Quota struct {
	Practice int `json:"practice"`
	Archive  int `json:"archive"`
	Exam     int `json:"exam"`
}

// MinPracticeQuota is the floor applied to thin chunks so every chunk
// yields a workable practice pool.
const MinPracticeQuota = 5

const (
	archiveRatio = 0.3
	examRatio    = 0.2
)

// ComputeQuota derives question targets from the chunk's concept count:
// one practice question per concept (floored at MinPracticeQuota), with
// archive and exam pools sized as fractions of the practice pool.
func ComputeQuota(conceptCount int) Quota {
	practice := conceptCount
	if practice < MinPracticeQuota {
		practice = MinPracticeQuota
	}
	return Quota{
		Practice: practice,
		Archive:  int(math.Ceil(float64(practice) * archiveRatio)),
		Exam:     int(math.Ceil(float64(practice) * examRatio)),
	}
}

// Total returns the combined target across all categories.
func (q Quota) Total() int {
	return q.Practice + q.Archive + q.Exam
}

// ForCategory returns the target for a usage category name. Unknown
// categories get 0.
func (q Quota) ForCategory(category string) int {
	switch category {
	case "practice":
		return q.Practice
	case "archive":
		return q.Archive
	case "exam":
		return q.Exam
	}
	return 0
}
