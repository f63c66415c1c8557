package examgen

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/dmarek/examgen/internal/llm"
)

// examJSON builds an exam response body with the given numbers and texts.
func examJSON(t *testing.T, numbers []int, texts []string) string {
	t.Helper()
	if len(numbers) != len(texts) {
		t.Fatalf("examJSON: %d numbers vs %d texts", len(numbers), len(texts))
	}
	questions := make([]map[string]any, len(texts))
	for i := range texts {
		questions[i] = map[string]any{
			"question_number": numbers[i],
			"question_text":   texts[i],
			"context":         fmt.Sprintf("Context for question %d.", numbers[i]),
			"rubric":          "Grading: complete answer - 100 points.",
		}
	}
	b, err := json.Marshal(map[string]any{"questions": questions})
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

var distinctTexts = []string{
	"Describe the TCP three way handshake.",
	"Compare quicksort and mergesort complexity.",
	"Explain how virtual memory paging works.",
}

func TestGenerateExam_AcceptsValidBatch(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: examJSON(t, []int{1, 2, 3}, distinctTexts)},
	)
	svc := newTestService(mock)

	exam, err := svc.GenerateExam(context.Background(), ExamInput{Topic: "Systems", NumQuestions: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exam.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(exam.Questions))
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 model call, got %d", mock.CallCount())
	}
	for i, q := range exam.Questions {
		if q.QuestionText != distinctTexts[i] {
			t.Errorf("question %d: got %q", i+1, q.QuestionText)
		}
	}
}

func TestGenerateExam_RejectsWrongCount(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: examJSON(t, []int{1, 2}, distinctTexts[:2])},
		llm.MockResponse{Text: examJSON(t, []int{1, 2, 3}, distinctTexts)},
	)
	svc := newTestService(mock)

	exam, err := svc.GenerateExam(context.Background(), ExamInput{Topic: "Systems", NumQuestions: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exam.Questions) != 3 {
		t.Errorf("short batch should have been rejected")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 model calls, got %d", mock.CallCount())
	}
}

func TestGenerateExam_RejectsBadNumbering(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: examJSON(t, []int{1, 1, 3}, distinctTexts)},
		llm.MockResponse{Text: examJSON(t, []int{1, 2, 3}, distinctTexts)},
	)
	svc := newTestService(mock)

	_, err := svc.GenerateExam(context.Background(), ExamInput{Topic: "Systems", NumQuestions: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("batch numbered [1,1,3] should have been rejected, got %d calls", mock.CallCount())
	}
}

func TestGenerateExam_RejectsNearDuplicatePair(t *testing.T) {
	nearDup := []string{
		"Explain recursion in programming",
		"Explain recursion in programming with one example",
		"Describe the TCP three way handshake.",
	}
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: examJSON(t, []int{1, 2, 3}, nearDup)},
		llm.MockResponse{Text: examJSON(t, []int{1, 2, 3}, distinctTexts)},
	)
	svc := newTestService(mock)

	exam, err := svc.GenerateExam(context.Background(), ExamInput{Topic: "CS", NumQuestions: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("near-duplicate batch should have been rejected, got %d calls", mock.CallCount())
	}
	if exam.Questions[0].QuestionText != distinctTexts[0] {
		t.Errorf("expected second batch, got %q", exam.Questions[0].QuestionText)
	}
}

func TestGenerateExam_AcceptsRelatedButDistinct(t *testing.T) {
	related := []string{
		"What is a hash table?",
		"How does a hash table work?",
	}
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: examJSON(t, []int{1, 2}, related)},
	)
	svc := newTestService(mock)

	_, err := svc.GenerateExam(context.Background(), ExamInput{Topic: "CS", NumQuestions: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("distinct questions rejected as duplicates, %d calls", mock.CallCount())
	}
}

func TestGenerateExam_FallbackOnExhaustion(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := newTestService(mock)

	exam, err := svc.GenerateExam(context.Background(), ExamInput{Topic: "Compilers", NumQuestions: 5})
	if err != nil {
		t.Fatalf("fallback path must not error: %v", err)
	}
	if mock.CallCount() != 5 {
		t.Errorf("expected full attempt budget of 5, got %d", mock.CallCount())
	}
	if len(exam.Questions) != 5 {
		t.Fatalf("fallback exam should have 5 questions, got %d", len(exam.Questions))
	}
	for i, q := range exam.Questions {
		if q.QuestionNumber != i+1 {
			t.Errorf("question %d numbered %d", i, q.QuestionNumber)
		}
		if !strings.Contains(q.QuestionText, "Compilers") {
			t.Errorf("fallback question not parametrized by topic: %q", q.QuestionText)
		}
	}
}

func TestFallbackExam_Deterministic(t *testing.T) {
	a := fallbackExam("Networking", 3)
	b := fallbackExam("Networking", 3)
	if !reflect.DeepEqual(a, b) {
		t.Error("fallback exam should be deterministic for the same inputs")
	}
}

func TestGenerateExam_MissingCredentialPropagates(t *testing.T) {
	factory := func(context.Context) (llm.Provider, error) {
		return nil, &llm.ErrMissingCredential{Provider: "gemini", EnvVar: "GEMINI_API_KEY"}
	}
	svc := New(factory, testConfig())

	_, err := svc.GenerateExam(context.Background(), ExamInput{Topic: "CS", NumQuestions: 3})
	if err == nil {
		t.Fatal("expected configuration error to propagate")
	}
}

func TestNumberingValid(t *testing.T) {
	mk := func(nums ...int) []NumberedQuestion {
		qs := make([]NumberedQuestion, len(nums))
		for i, n := range nums {
			qs[i] = NumberedQuestion{QuestionNumber: n}
		}
		return qs
	}

	tests := []struct {
		name string
		nums []int
		n    int
		want bool
	}{
		{"in order", []int{1, 2, 3}, 3, true},
		{"out of order", []int{3, 1, 2}, 3, true},
		{"duplicate number", []int{1, 1, 3}, 3, false},
		{"out of range high", []int{1, 2, 4}, 3, false},
		{"zero", []int{0, 1, 2}, 3, false},
		{"single", []int{1}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := numberingValid(mk(tt.nums...), tt.n); got != tt.want {
				t.Errorf("numberingValid(%v, %d) = %v, want %v", tt.nums, tt.n, got, tt.want)
			}
		})
	}
}

func TestHasDuplicates_ExactMatchAfterNormalization(t *testing.T) {
	qs := []NumberedQuestion{
		{QuestionNumber: 1, GeneratedQuestion: GeneratedQuestion{QuestionText: "What is a   Mutex?"}},
		{QuestionNumber: 2, GeneratedQuestion: GeneratedQuestion{QuestionText: "what is a mutex?"}},
	}
	if !hasDuplicates(qs) {
		t.Error("texts equal after normalization should flag as duplicates")
	}
}
