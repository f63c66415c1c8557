package examgen

import "fmt"

// fallbackQuestions is the fixed bank served when single-question generation
// exhausts its attempts. Topic-agnostic by design: these must be safe to
// return for any request.
var fallbackQuestions = [3]GeneratedQuestion{
	{
		QuestionText: "Explain the fundamental principles of data structures. Discuss the differences between arrays and linked lists, and when you would use each.",
		Context:      "Data structures are fundamental to computer science. Arrays store elements in contiguous memory, while linked lists use nodes with pointers.",
		Rubric:       "Grading criteria: (1) Understanding of arrays - 25 points, (2) Understanding of linked lists - 25 points, (3) Comparison - 25 points, (4) Use cases - 25 points.",
	},
	{
		QuestionText: "Describe the concept of algorithm time complexity (Big O notation). Provide examples of O(1), O(n), and O(n²) algorithms.",
		Context:      "Algorithm complexity analysis helps developers understand how algorithms scale. Big O notation describes worst-case time complexity.",
		Rubric:       "Grading criteria: (1) Explanation of Big O - 30 points, (2) O(1) example - 20 points, (3) O(n) example - 20 points, (4) O(n²) example - 20 points, (5) Importance - 10 points.",
	},
	{
		QuestionText: "Explain the concept of recursion in programming. Discuss its advantages and disadvantages, and provide an example.",
		Context:      "Recursion is a programming technique where a function calls itself. It's used in tree traversal and divide-and-conquer algorithms.",
		Rubric:       "Grading criteria: (1) Explanation - 25 points, (2) Advantages - 20 points, (3) Disadvantages - 20 points, (4) Example - 30 points, (5) Clarity - 5 points.",
	},
}

// fallbackQuestion returns the first bank entry whose normalized text is not
// already in the ledger. When the whole bank is used up it synthesizes a
// generic placeholder carrying the question index, which is unique per index
// by construction. Never fails.
func fallbackQuestion(ledger *Ledger, questionNumber int) GeneratedQuestion {
	for _, q := range fallbackQuestions {
		if !ledger.Seen(Normalize(q.QuestionText)) {
			return q
		}
	}

	return GeneratedQuestion{
		QuestionText: fmt.Sprintf("Generic CS question #%d.", questionNumber),
		Context:      "This is a fallback question.",
		Rubric:       "Grading criteria: complete answer - 100 points.",
	}
}

// examTemplates is the canned bank for batch fallback, parametrized by topic.
var examTemplates = [3]struct {
	questionText string
	context      string
	rubric       string
}{
	{
		questionText: "Explain the fundamental concepts related to %s. Provide examples and discuss their importance.",
		context:      "This question tests understanding of core concepts in %s.",
		rubric:       "Grading: Understanding of concepts (40 points), Examples (30 points), Discussion of importance (30 points).",
	},
	{
		questionText: "Compare and contrast different approaches or methods within %s. When would you use each?",
		context:      "This question evaluates the ability to analyze different approaches in %s.",
		rubric:       "Grading: Comparison (40 points), Contrast (30 points), Use cases (30 points).",
	},
	{
		questionText: "Describe a real-world application of %s. Explain how it works and why it's effective.",
		context:      "This question tests practical understanding of %s.",
		rubric:       "Grading: Application description (40 points), Explanation (30 points), Effectiveness (30 points).",
	},
}

// fallbackExam synthesizes a full exam by cycling the template bank and
// renumbering sequentially 1..n. Deterministic given (topic, n); never fails.
func fallbackExam(topic string, n int) GeneratedExam {
	questions := make([]NumberedQuestion, 0, n)
	for i := range n {
		t := examTemplates[i%len(examTemplates)]
		questions = append(questions, NumberedQuestion{
			QuestionNumber: i + 1,
			GeneratedQuestion: GeneratedQuestion{
				QuestionText: fmt.Sprintf(t.questionText, topic),
				Context:      fmt.Sprintf(t.context, topic),
				Rubric:       t.rubric,
			},
		})
	}
	return GeneratedExam{Questions: questions}
}
