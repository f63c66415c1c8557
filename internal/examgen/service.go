package examgen

import (
	"context"
	"errors"

	"github.com/dmarek/examgen/internal/llm"
	"github.com/dmarek/examgen/internal/store"
)

// ProviderFactory supplies the LLM provider for one generation call. It is
// invoked at the start of every call so configuration changes (keys, model
// selection) take effect without restarting the service.
type ProviderFactory func(ctx context.Context) (llm.Provider, error)

// EnvProviderFactory returns a factory that reads provider configuration
// from the environment on each call. Events are recorded to eventRepo when
// it is non-nil.
func EnvProviderFactory(eventRepo store.EventRepo) ProviderFactory {
	return func(ctx context.Context) (llm.Provider, error) {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return llm.NewProvider(ctx, cfg, eventRepo)
	}
}

// StaticProviderFactory returns a factory that always yields p. Used by
// tests and by callers that manage provider lifecycle themselves.
func StaticProviderFactory(p llm.Provider) ProviderFactory {
	return func(context.Context) (llm.Provider, error) {
		return p, nil
	}
}

// Service generates exam questions through an LLM provider under structural
// and novelty guarantees. Its two operations never fail in normal operation:
// every upstream failure resolves into a retry or a deterministic fallback.
// The only error either operation returns is a missing-credential
// configuration error, for which no fallback can substitute.
type Service struct {
	factory ProviderFactory
	config  Config
	prompts *Composer
}

// New creates a Service with the given provider factory and config.
func New(factory ProviderFactory, cfg Config) *Service {
	return &Service{
		factory: factory,
		config:  cfg,
		prompts: NewComposer(cfg.PromptDir),
	}
}

// QuestionInput holds the parameters for a single-question request.
type QuestionInput struct {
	Topic          string // default: Config.DefaultTopic
	Difficulty     string // default: Config.DefaultDifficulty
	QuestionNumber int
}

// ExamInput holds the parameters for a batch exam request.
type ExamInput struct {
	Topic             string
	NumQuestions      int
	AdditionalDetails string // optional free-form instructor guidance
}

// GenerateQuestion produces one novel question. Up to MaxAttempts model
// round trips; a question whose normalized text is already in the ledger is
// rejected as a duplicate of prior output. On exhaustion the canned fallback
// bank answers. The accepted or fallback text always enters the ledger.
func (s *Service) GenerateQuestion(ctx context.Context, ledger *Ledger, in QuestionInput) (GeneratedQuestion, error) {
	if in.Topic == "" {
		in.Topic = s.config.DefaultTopic
	}
	if in.Difficulty == "" {
		in.Difficulty = s.config.DefaultDifficulty
	}

	provider, err := s.factory(ctx)
	if err != nil {
		return GeneratedQuestion{}, err
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	var result GeneratedQuestion
	accepted := runAttempts(ctx, s.config.MaxAttempts, func(ctx context.Context, attempt int) outcome {
		user, system := s.prompts.Question(in.Topic, in.Difficulty, in.QuestionNumber)

		resp, err := provider.Complete(ctx, llm.Request{
			System:      system,
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
			MaxTokens:   s.config.MaxTokens,
			Temperature: s.config.Temperature,
		})
		if err != nil {
			if isFatal(err) {
				return outcomeFatal
			}
			return outcomeRetry
		}

		raw, err := llm.ExtractJSON(resp.Text)
		if err != nil {
			return outcomeRetry
		}

		q, ok := decodeQuestion(raw)
		if !ok {
			return outcomeRetry
		}

		normalized := Normalize(q.QuestionText)
		if ledger.Seen(normalized) {
			return outcomeRetry
		}

		ledger.Add(normalized)
		result = q
		return outcomeAccept
	})

	if accepted {
		return result, nil
	}

	fb := fallbackQuestion(ledger, in.QuestionNumber)
	ledger.Add(Normalize(fb.QuestionText))
	return fb, nil
}

// GenerateExam produces a full exam of exactly NumQuestions questions
// numbered 1..N with no duplicate or near-duplicate pairs. Each attempt is
// validated atomically: any structural defect rejects the whole batch. On
// exhaustion a deterministic topic-parametrized fallback exam answers.
//
// Accepted exams are not cross-checked against any single-question ledger:
// a fresh exam must be internally self-consistent but is not required to
// differ from previously generated exams.
func (s *Service) GenerateExam(ctx context.Context, in ExamInput) (GeneratedExam, error) {
	if in.Topic == "" {
		in.Topic = s.config.DefaultTopic
	}

	provider, err := s.factory(ctx)
	if err != nil {
		return GeneratedExam{}, err
	}

	ctx = llm.WithPurpose(ctx, "exam-gen")

	var result GeneratedExam
	accepted := runAttempts(ctx, s.config.MaxAttempts, func(ctx context.Context, attempt int) outcome {
		user, system := s.prompts.Exam(in.Topic, in.NumQuestions, in.AdditionalDetails)

		resp, err := provider.Complete(ctx, llm.Request{
			System:      system,
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
			MaxTokens:   s.config.ExamMaxTokens,
			Temperature: s.config.Temperature,
		})
		if err != nil {
			if isFatal(err) {
				return outcomeFatal
			}
			return outcomeRetry
		}

		raw, err := llm.ExtractJSON(resp.Text)
		if err != nil {
			return outcomeRetry
		}

		exam, ok := decodeExam(raw)
		if !ok {
			return outcomeRetry
		}

		if len(exam.Questions) != in.NumQuestions {
			return outcomeRetry
		}
		if !numberingValid(exam.Questions, in.NumQuestions) {
			return outcomeRetry
		}
		if hasDuplicates(exam.Questions) {
			return outcomeRetry
		}

		result = exam
		return outcomeAccept
	})

	if accepted {
		return result, nil
	}

	return fallbackExam(in.Topic, in.NumQuestions), nil
}

// isFatal reports whether the error makes further attempts pointless.
func isFatal(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var missing *llm.ErrMissingCredential
	return errors.As(err, &missing)
}

// numberingValid checks that the multiset of question numbers is exactly
// {1..n}. Duplicated or missing numbers fail.
func numberingValid(questions []NumberedQuestion, n int) bool {
	seen := make([]bool, n+1)
	for _, q := range questions {
		if q.QuestionNumber < 1 || q.QuestionNumber > n || seen[q.QuestionNumber] {
			return false
		}
		seen[q.QuestionNumber] = true
	}
	return true
}

// hasDuplicates compares each question's normalized text against all
// distinct texts seen earlier in the batch, in input order. Exact matches
// always flag; otherwise the combined similarity score must stay at or
// below the duplicate threshold.
func hasDuplicates(questions []NumberedQuestion) bool {
	var prior []string
	for _, q := range questions {
		normalized := Normalize(q.QuestionText)
		for _, earlier := range prior {
			if normalized == earlier {
				return true
			}
			if Similarity(normalized, earlier) > DuplicateThreshold {
				return true
			}
		}
		prior = append(prior, normalized)
	}
	return false
}
