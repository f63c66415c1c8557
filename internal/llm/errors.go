package llm

import (
	"fmt"
	"time"
)

// ErrMissingCredential indicates the selected provider has no API key
// configured. This is a configuration problem, never transient, and is the
// only error the generation pipeline lets escape to callers.
type ErrMissingCredential struct {
	Provider string
	EnvVar   string
}

func (e *ErrMissingCredential) Error() string {
	if e.EnvVar != "" {
		return fmt.Sprintf("%s API key is not set (%s)", e.Provider, e.EnvVar)
	}
	return fmt.Sprintf("%s API key is not set", e.Provider)
}

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrParse indicates no JSON object could be recovered from the model's
// text output, even after fence stripping and brace matching. Raw and
// Cleaned carry truncated previews of the text for diagnosis.
type ErrParse struct {
	Raw     string
	Cleaned string
	Err     error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("unparseable LLM response: %v (raw: %q, cleaned: %q)",
		e.Err, preview(e.Raw), preview(e.Cleaned))
}

func (e *ErrParse) Unwrap() error { return e.Err }

// preview truncates text for inclusion in error messages.
func preview(s string) string {
	const max = 200
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Text string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}
