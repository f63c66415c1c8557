package examgen

// GeneratedQuestion is a single essay-style exam question ready for use.
// Produced by the model or by the fallback bank; immutable once returned.
type GeneratedQuestion struct {
	// QuestionText is the question prompt shown to the student.
	QuestionText string `json:"question_text"`

	// Context is background information accompanying the question.
	Context string `json:"context"`

	// Rubric is the detailed grading rubric for the question.
	Rubric string `json:"rubric"`
}

// NumberedQuestion is a GeneratedQuestion with its position in an exam.
// Used only in batch results.
type NumberedQuestion struct {
	QuestionNumber int `json:"question_number"`
	GeneratedQuestion
}

// GeneratedExam is an ordered set of numbered questions. An accepted exam
// always has exactly the requested count of questions numbered 1..N.
type GeneratedExam struct {
	Questions []NumberedQuestion `json:"questions"`
}
