// Package course holds the content-side domain types: chunks are the
// unit questions are generated against, concept maps drive generation
// targets, and quotas bound how many questions each chunk carries.
package course

// Level is the pedagogical depth of a concept, mirrored onto the Bloom
// level of questions generated for it.
type Level string

const (
	LevelKnowledge   Level = "knowledge"
	LevelApplication Level = "application"
	LevelAnalysis    Level = "analysis"
)

// ConceptMapItem is one pedagogical concept extracted from a chunk by
// the mapping stage. Produced once and cached on the chunk.
type ConceptMapItem struct {
	Title    string `json:"title"`
	Focus    string `json:"focus"`
	Level    Level  `json:"level"`
	ImageRef string `json:"image_ref,omitempty"`
}

// levelWeights feed the chunk difficulty index: deeper concepts pull
// the index up.
var levelWeights = map[Level]float64{
	LevelKnowledge:   1.0,
	LevelApplication: 2.0,
	LevelAnalysis:    3.0,
}

// DifficultyIndex derives a chunk-level difficulty in [1,3] from its
// concept map. Returns 0 for an empty map.
func DifficultyIndex(concepts []ConceptMapItem) float64 {
	if len(concepts) == 0 {
		return 0
	}
	var sum float64
	for _, c := range concepts {
		w, ok := levelWeights[c.Level]
		if !ok {
			w = levelWeights[LevelKnowledge]
		}
		sum += w
	}
	return sum / float64(len(concepts))
}
