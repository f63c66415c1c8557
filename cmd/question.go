package cmd

import (
	"fmt"
	"strings"

	"github.com/dmarek/examgen/internal/examgen"
	"github.com/spf13/cobra"
)

var questionCmd = &cobra.Command{
	Use:   "question",
	Short: "Generate exam questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		eventRepo, closeStore := openEventRepo(cmd)
		defer closeStore()

		svc := examgen.New(examgen.EnvProviderFactory(eventRepo), examgen.DefaultConfig())
		session := examgen.NewSession(svc)

		for i := 0; i < count; i++ {
			q, err := session.GenerateQuestion(cmd.Context(), topic, difficulty, 0)
			if err != nil {
				return err
			}
			printQuestion(i+1, q)
		}
		return nil
	},
}

func printQuestion(n int, q examgen.GeneratedQuestion) {
	sep := strings.Repeat("─", 72)
	fmt.Println(sep)
	fmt.Printf("Question %d\n", n)
	fmt.Println(sep)
	fmt.Println(q.QuestionText)
	fmt.Println("\nContext:")
	fmt.Println(q.Context)
	fmt.Println("\nRubric:")
	fmt.Println(q.Rubric)
	fmt.Println()
}

func init() {
	questionCmd.Flags().StringP("topic", "t", "", "Question topic (default: Computer Science)")
	questionCmd.Flags().StringP("difficulty", "d", "", "Difficulty (default: Intermediate)")
	questionCmd.Flags().IntP("count", "n", 1, "Number of questions to generate in this session")
}
