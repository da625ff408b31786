package llm

import "context"

// Purpose labels classify requests in the event log so token spend can
// be broken down by pipeline stage.
const (
	PurposeConceptMap     = "concept-map"
	PurposeDraft          = "question-draft"
	PurposeValidate       = "question-validate"
	PurposeRevise         = "question-revise"
	PurposeFollowup       = "followup"
	PurposeArchiveRefresh = "archive-refresh"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
