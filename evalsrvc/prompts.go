package evalsrvc

import (
	"fmt"
	"strings"

	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/rubric"
)

const responseSchema = `{
  "earnedMarks": <integer, sum of stepAnalysis marksAwarded>,
  "maxMarks": <integer, total marks of the question>,
  "isFullyCorrect": <true/false>,
  "expectedAnswer": "<the model answer>",
  "studentAnswer": "<the student's answer as given>",
  "stepAnalysis": [
    {"stepNumber": <n>, "description": "<step>", "isCorrect": <true/false>,
     "marksAwarded": <integer>, "maxMarks": <integer>, "feedback": "<short feedback>"}
  ],
  "overallFeedback": "<2-3 sentences for the student>"
}`

func buildRubricSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are an exam grader. You grade one subjective answer against a fixed rubric.\n\n")
	sb.WriteString("INSTRUCTIONS:\n")
	sb.WriteString("- Score each rubric step independently, in the order given.\n")
	sb.WriteString("- Award between 0 and that step's max marks, whole marks only.\n")
	sb.WriteString("- A step is isCorrect only when it earns its full marks.\n")
	sb.WriteString("- earnedMarks must equal the sum of the step marks you award.\n")
	sb.WriteString("- Judge the content, not the handwriting; the answer came from OCR and may contain transcription noise.\n")
	sb.WriteString("\nRespond ONLY with a JSON object matching this schema:\n")
	sb.WriteString(responseSchema)
	sb.WriteString("\n")
	return sb.String()
}

func buildFreeSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are an exam grader. You grade one subjective answer without a rubric.\n\n")
	sb.WriteString("INSTRUCTIONS:\n")
	sb.WriteString("- Break the ideal solution into 2-5 logical steps yourself and allocate the question's marks across them.\n")
	sb.WriteString("- Score each of your steps independently, whole marks only.\n")
	sb.WriteString("- earnedMarks must equal the sum of the step marks you award.\n")
	sb.WriteString("- Judge the content, not the handwriting; the answer came from OCR and may contain transcription noise.\n")
	sb.WriteString("\nRespond ONLY with a JSON object matching this schema:\n")
	sb.WriteString(responseSchema)
	sb.WriteString("\n")
	return sb.String()
}

func buildUserPrompt(q exam.MarkedQuestion, rub *rubric.Rubric, answer string) string {
	var sb strings.Builder
	sb.WriteString("QUESTION: " + q.Text + "\n")
	sb.WriteString(fmt.Sprintf("TOTAL MARKS: %d\n\n", q.Marks))

	if q.CorrectAnswer != "" {
		sb.WriteString("MODEL ANSWER (not shown to the student):\n" + q.CorrectAnswer + "\n\n")
	}

	if rub != nil {
		sb.WriteString("RUBRIC:\n")
		for _, step := range rub.Steps {
			sb.WriteString(fmt.Sprintf("%d. %s (%d marks)\n", step.Number, step.Description, step.Marks))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("STUDENT'S ANSWER:\n<student-answer>\n")
	sb.WriteString(answer)
	sb.WriteString("\n</student-answer>\n")
	return sb.String()
}
