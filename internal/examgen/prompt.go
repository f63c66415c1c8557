package examgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Template file names looked up in the prompt directory. A missing file is
// non-fatal; the built-in defaults below are used instead.
const (
	questionTemplateFile = "question_gen_v1.txt"
	examTemplateFile     = "exam_gen_v1.txt"
)

const defaultQuestionTemplate = `Generate an essay-style exam question for a computer science course.

Topic: {topic}
Difficulty: {difficulty}
Question Number: {question_number}

Requirements:
1. Each question you generate must be unique for the exam. Do not repeat previous questions.
2. Provide relevant background context.
3. Provide a detailed grading rubric.

Important: Respond only in JSON format exactly like this:
{
    "question_text": "The question text",
    "context": "Background context and information",
    "rubric": "Detailed grading rubric with criteria"
}
Do not add anything else outside the JSON object.`

const defaultExamTemplate = `Generate {num_questions} exam questions for topic: {topic}

{additional_details_section}

{guidance_section}

Respond in JSON format with a "questions" array containing {num_questions} question objects.
Each question should have: question_number, question_text, context, and rubric.`

// Composer builds user and system prompts from templates plus parameters.
// Pure formatting: its only failure mode, a missing template file, falls
// back to the built-in default.
type Composer struct {
	dir string // prompt template directory ("" = defaults only)
}

// NewComposer creates a Composer loading templates from dir. An empty dir
// skips file lookup entirely.
func NewComposer(dir string) *Composer {
	return &Composer{dir: dir}
}

// Question builds the (user, system) prompt pair for single-question mode.
func (c *Composer) Question(topic, difficulty string, questionNumber int) (string, string) {
	tmpl := c.load(questionTemplateFile, defaultQuestionTemplate)

	user := strings.NewReplacer(
		"{topic}", topic,
		"{difficulty}", difficulty,
		"{question_number}", strconv.Itoa(questionNumber),
	).Replace(tmpl)

	var b strings.Builder
	b.WriteString("You are an expert computer science professor generating exam questions.\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "Question Number: %d\n", questionNumber)
	b.WriteString(`
Rules:
- Generate a NEW and UNIQUE question for each question number.
- Do NOT repeat previous questions.
- Respond with VALID JSON ONLY.
- Do NOT include explanations or extra text.

Required JSON format:
{
  "question_text": "string",
  "context": "string",
  "rubric": "string"
}
`)

	return user, b.String()
}

// Exam builds the (user, system) prompt pair for batch mode.
func (c *Composer) Exam(topic string, numQuestions int, additionalDetails string) (string, string) {
	tmpl := c.load(examTemplateFile, defaultExamTemplate)

	var detailsSection, guidanceSection string
	if additionalDetails != "" {
		detailsSection = "Additional Details:\n" + additionalDetails
		guidanceSection = `Use the additional details provided above to tailor the questions. Consider:
- Any specific sub-topics mentioned
- Grading criteria and expectations
- Specific questions or concepts the instructor wants included
- Expected answer elements
- Any other guidance provided`
	} else {
		guidanceSection = "Since no additional details were provided, create well-rounded questions that cover the topic comprehensively. Make reasonable assumptions about appropriate difficulty level and scope."
	}

	user := strings.NewReplacer(
		"{topic}", topic,
		"{num_questions}", strconv.Itoa(numQuestions),
		"{additional_details_section}", detailsSection,
		"{guidance_section}", guidanceSection,
	).Replace(tmpl)

	var b strings.Builder
	b.WriteString("You are an expert computer science professor creating a comprehensive oral exam.\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Number of Questions: %d\n", numQuestions)
	if additionalDetails != "" {
		fmt.Fprintf(&b, "Additional Details: %s\n", additionalDetails)
	}
	fmt.Fprintf(&b, `
Rules:
- Generate exactly %d unique questions
- Each question must test DIFFERENT and DISTINCT aspects of the topic
- NO two questions should cover the same concept or ask about the same thing
- Questions should vary significantly in focus, approach, and subject matter
- Questions should be appropriate for oral examination (encourage discussion)
- Provide detailed rubrics for each question
- Respond with VALID JSON ONLY
- Do NOT include explanations or extra text outside the JSON object

CRITICAL: Before finalizing your response, review all questions to ensure:
- No two questions ask about the same concept
- No two questions are rewordings of each other
- Each question tests a genuinely different aspect of the topic
- Questions cover diverse sub-topics and perspectives

Required JSON format:
{
  "questions": [
    {
      "question_number": 1,
      "question_text": "string",
      "context": "string",
      "rubric": "string"
    }
  ]
}
`, numQuestions)

	return user, b.String()
}

// load reads a template file from the prompt directory, falling back to the
// built-in default when the directory is unset or the file is missing.
func (c *Composer) load(name, fallback string) string {
	if c.dir == "" {
		return fallback
	}
	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: prompt template %s not found, using default\n", name)
		return fallback
	}
	return string(data)
}
