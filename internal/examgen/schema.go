package examgen

// Contract names a JSON Schema that model output must satisfy before it is
// trusted. The model's output is wholly untrusted input: "parse succeeded"
// and "shape is valid" are separate checks, and the schemas here implement
// the second.
type Contract struct {
	Name       string
	Definition map[string]any
}

// QuestionContract is the shape of a single generated question.
var QuestionContract = &Contract{
	Name: "generated-question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The question prompt shown to the student",
			},
			"context": map[string]any{
				"type":        "string",
				"description": "Background context and information",
			},
			"rubric": map[string]any{
				"type":        "string",
				"description": "Detailed grading rubric with criteria",
			},
		},
		"required": []any{"question_text", "context", "rubric"},
	},
}

// ExamContract is the shape of a generated exam batch.
var ExamContract = &Contract{
	Name: "generated-exam",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_number": map[string]any{
							"type":    "integer",
							"minimum": 1,
						},
						"question_text": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"context": map[string]any{
							"type": "string",
						},
						"rubric": map[string]any{
							"type": "string",
						},
					},
					"required": []any{"question_number", "question_text", "context", "rubric"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
