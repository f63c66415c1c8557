package cmd

import (
	"github.com/dmarek/examgen/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "examgen",
	Short: "LLM exam question generator",
	Long:  "Examgen generates essay-style exam questions and full oral exams through an LLM, with novelty and structural guarantees and deterministic fallbacks.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log file (overrides EXAMGEN_DB env var)")

	rootCmd.AddCommand(questionCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event log path using --db flag (highest
// priority), then EXAMGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEventRepo opens the event store for request logging. Logging is an
// ancillary concern: on failure generation proceeds without it.
func openEventRepo(cmd *cobra.Command) (store.EventRepo, func()) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		cmd.PrintErrf("warning: event log disabled: %v\n", err)
		return nil, func() {}
	}
	s, err := store.Open(dbPath)
	if err != nil {
		cmd.PrintErrf("warning: event log disabled: %v\n", err)
		return nil, func() {}
	}
	return s.EventRepo(), func() { s.Close() }
}
