package llm

const defaultTogetherBaseURL = "https://api.together.xyz/v1"

// TogetherProvider targets the Together.ai API. Together exposes an
// OpenAI-compatible API, so the underlying SDK is reused.
type TogetherProvider struct {
	*OpenAIProvider
}

// NewTogetherProvider creates a provider targeting the Together.ai API.
func NewTogetherProvider(cfg TogetherConfig) (*TogetherProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrMissingCredential{Provider: "together", EnvVar: "EXAMGEN_TOGETHER_API_KEY"}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultTogetherBaseURL
	}

	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &TogetherProvider{OpenAIProvider: inner}, nil
}
