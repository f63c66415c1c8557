package cmd

import (
	"fmt"
	"strings"

	"github.com/dmarek/examgen/internal/examgen"
	"github.com/spf13/cobra"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Generate a full exam",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		details, _ := cmd.Flags().GetString("details")

		if count < 1 {
			return fmt.Errorf("--count must be at least 1")
		}
		if topic == "" {
			topic = examgen.DefaultConfig().DefaultTopic
		}

		eventRepo, closeStore := openEventRepo(cmd)
		defer closeStore()

		svc := examgen.New(examgen.EnvProviderFactory(eventRepo), examgen.DefaultConfig())
		session := examgen.NewSession(svc)

		exam, err := session.GenerateExam(cmd.Context(), topic, count, details)
		if err != nil {
			return err
		}

		sep := strings.Repeat("═", 72)
		fmt.Println(sep)
		fmt.Printf("Exam: %s (%d questions)\n", topic, len(exam.Questions))
		fmt.Println(sep)
		for _, q := range exam.Questions {
			printQuestion(q.QuestionNumber, q.GeneratedQuestion)
		}
		return nil
	},
}

func init() {
	examCmd.Flags().StringP("topic", "t", "", "Exam topic (default: Computer Science)")
	examCmd.Flags().IntP("count", "n", 3, "Number of questions")
	examCmd.Flags().String("details", "", "Additional instructor guidance for question content")
}
