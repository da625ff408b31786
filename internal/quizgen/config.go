package quizgen

// Config controls the generation pipeline.
type Config struct {
	// MaxRevisions is how many times a rejected draft is revised before
	// the concept is skipped.
	MaxRevisions int

	// ApproveScore is the minimum reviewer score for persistence. The
	// verdict field gates independently; both must pass.
	ApproveScore int

	// DraftMaxTokens is the token budget for drafting and revision.
	DraftMaxTokens int

	// MappingMaxTokens is the token budget for concept mapping.
	MappingMaxTokens int

	// VerdictMaxTokens is the token budget for validation calls.
	VerdictMaxTokens int

	// DraftTemperature controls draft randomness. Validation always
	// runs at temperature 0.
	DraftTemperature float64
}

// DefaultConfig returns the recommended pipeline configuration.
func DefaultConfig() Config {
	return Config{
		MaxRevisions:     2,
		ApproveScore:     70,
		DraftMaxTokens:   1024,
		MappingMaxTokens: 2048,
		VerdictMaxTokens: 512,
		DraftTemperature: 0.7,
	}
}
