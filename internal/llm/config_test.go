package llm

import (
	"errors"
	"testing"
)

// clearKeyEnv blanks every API key variable so tests are hermetic even when
// the developer has real keys exported.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"EXAMGEN_LLM_PROVIDER",
		"EXAMGEN_OPENAI_API_KEY", "OPENAI_API_KEY",
		"EXAMGEN_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY",
		"EXAMGEN_GEMINI_API_KEY", "GEMINI_API_KEY",
		"EXAMGEN_TOGETHER_API_KEY", "TOGETHER_API_KEY",
		"EXAMGEN_OPENROUTER_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(v, "")
	}
}

func TestConfigFromEnv_PrefixedVarsWin(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("EXAMGEN_LLM_PROVIDER", "openai")
	t.Setenv("EXAMGEN_OPENAI_API_KEY", "prefixed-key")
	t.Setenv("OPENAI_API_KEY", "standard-key")
	t.Setenv("EXAMGEN_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "prefixed-key" {
		t.Errorf("prefixed var should take precedence, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q", cfg.OpenAI.Model)
	}
}

func TestConfigFromEnv_StandardKeyFallback(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("TOGETHER_API_KEY", "standard-key")

	cfg := ConfigFromEnv()
	if cfg.Provider != "together" {
		t.Errorf("default provider should be together, got %q", cfg.Provider)
	}
	if cfg.Together.APIKey != "standard-key" {
		t.Errorf("standard key not picked up, got %q", cfg.Together.APIKey)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"

	err := cfg.Validate()
	var missing *ErrMissingCredential
	if !errors.As(err, &missing) {
		t.Fatalf("expected *ErrMissingCredential, got %v", err)
	}
	if missing.Provider != "anthropic" {
		t.Errorf("Provider = %q", missing.Provider)
	}
	if missing.EnvVar == "" {
		t.Error("error should name the env var to set")
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "llamacpp"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	var missing *ErrMissingCredential
	if errors.As(err, &missing) {
		t.Error("unknown provider is not a credential problem")
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider should validate without a key: %v", err)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("gemini should win over openai in discovery order, got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Errorf("APIKey = %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	clearKeyEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Error("discovery should fail with no keys set")
	}
}
