package cmd

import (
	"fmt"

	"github.com/dmarek/examgen/internal/llm"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Verify the configured LLM provider is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()

		fmt.Printf("Provider: %s\n", cfg.Provider)
		if err := cfg.Validate(); err != nil {
			fmt.Println("API key:  NOT SET")
			return err
		}
		fmt.Println("API key:  set")

		provider, err := llm.NewProvider(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		fmt.Printf("Model:    %s\n\n", provider.ModelID())

		fmt.Println("Testing completion round trip...")
		resp, err := provider.Complete(cmd.Context(), llm.Request{
			System: "You are a JSON formatter. Only return valid JSON.",
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: `Respond with this exact JSON: {"test": "hello"}`},
			},
			MaxTokens: 64,
		})
		if err != nil {
			return fmt.Errorf("completion failed: %w", err)
		}

		raw, err := llm.ExtractJSON(resp.Text)
		if err != nil {
			return fmt.Errorf("response was not JSON: %w", err)
		}

		fmt.Printf("OK: got response %s (%d in / %d out tokens)\n",
			string(raw), resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return nil
	},
}
