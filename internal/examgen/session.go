package examgen

import (
	"context"

	"github.com/google/uuid"
)

// Session bundles a Service with one Dedup Ledger and question counter for
// a single exam-authoring session. The ledger makes the session the novelty
// boundary: questions generated through one Session never repeat each other.
//
// A Session is not safe for concurrent use; allocate one per session rather
// than sharing across concurrent callers.
type Session struct {
	id      string
	svc     *Service
	ledger  *Ledger
	counter int
}

// NewSession starts a fresh session with an empty ledger.
func NewSession(svc *Service) *Session {
	return &Session{
		id:     uuid.NewString(),
		svc:    svc,
		ledger: NewLedger(),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Ledger exposes the session's dedup ledger.
func (s *Session) Ledger() *Ledger { return s.ledger }

// GenerateQuestion produces one novel question for this session. A
// questionNumber of 0 or less auto-increments the session counter instead.
func (s *Session) GenerateQuestion(ctx context.Context, topic, difficulty string, questionNumber int) (GeneratedQuestion, error) {
	if questionNumber <= 0 {
		s.counter++
		questionNumber = s.counter
	}
	return s.svc.GenerateQuestion(ctx, s.ledger, QuestionInput{
		Topic:          topic,
		Difficulty:     difficulty,
		QuestionNumber: questionNumber,
	})
}

// GenerateExam produces a full exam. The session ledger is not consulted:
// exams are validated for internal consistency only.
func (s *Session) GenerateExam(ctx context.Context, topic string, numQuestions int, additionalDetails string) (GeneratedExam, error) {
	return s.svc.GenerateExam(ctx, ExamInput{
		Topic:             topic,
		NumQuestions:      numQuestions,
		AdditionalDetails: additionalDetails,
	})
}
