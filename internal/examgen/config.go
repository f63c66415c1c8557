package examgen

import "os"

// Config controls the behavior of the generation Service.
type Config struct {
	// MaxAttempts is the generation attempt budget per call. Each attempt
	// is one full round trip through the gateway; the gateway's own
	// transport retries are separate and internal to it.
	MaxAttempts int

	// MaxTokens is the token budget for a single-question response.
	MaxTokens int

	// ExamMaxTokens is the token budget for a batch exam response.
	ExamMaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// PromptDir is the directory holding prompt template files.
	// Empty means built-in defaults only.
	PromptDir string

	// DefaultTopic and DefaultDifficulty fill unset request fields.
	DefaultTopic      string
	DefaultDifficulty string
}

// DefaultConfig returns a Config with the standard defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:       5,
		MaxTokens:         1024,
		ExamMaxTokens:     4096,
		Temperature:       0.7,
		PromptDir:         os.Getenv("EXAMGEN_PROMPTS"),
		DefaultTopic:      "Computer Science",
		DefaultDifficulty: "Intermediate",
	}
}
