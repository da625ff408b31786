package quizgen

import "github.com/astiages123/auditpath/internal/llm"

// conceptMapSchema defines the JSON schema for concept-mapping responses.
var conceptMapSchema = &llm.Schema{
	Name:        "concept-map",
	Description: "The ordered list of pedagogical concepts covered by a study text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concepts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short concept name, unique within the text",
						},
						"focus": map[string]any{
							"type":        "string",
							"description": "One sentence on what a question about this concept should test",
						},
						"level": map[string]any{
							"type":        "string",
							"enum":        []any{"knowledge", "application", "analysis"},
							"description": "Bloom depth the concept is taught at",
						},
						"image_ref": map[string]any{
							"type":        "string",
							"description": "Reference to a figure or table in the text, empty when none",
						},
					},
					"required":             []any{"title", "focus", "level", "image_ref"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"concepts"},
		"additionalProperties": false,
	},
}

// questionSchema defines the JSON schema for drafted quiz questions.
var questionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice quiz question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner, in plain text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options, one of which matches the answer",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The text of the correct option, verbatim",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Brief worked justification of the correct answer",
			},
		},
		"required":             []any{"question_text", "options", "answer", "explanation"},
		"additionalProperties": false,
	},
}

// verdictSchema defines the JSON schema for validation verdicts.
var verdictSchema = &llm.Schema{
	Name:        "question-verdict",
	Description: "An approve/reject judgement of a drafted question against its source text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall quality score",
			},
			"verdict": map[string]any{
				"type":        "string",
				"enum":        []any{"approve", "reject"},
				"description": "Whether the question may be persisted as-is",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Concrete revision instructions when rejecting, empty when approving",
			},
		},
		"required":             []any{"score", "verdict", "feedback"},
		"additionalProperties": false,
	},
}
