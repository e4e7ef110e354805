package examgen

import (
	"fmt"
	"strings"

	"github.com/skolapp/backend/exam"
)

const genSystemPrompt = `You are an experienced school teacher preparing an exam paper.
Generate questions exactly as requested and respond with a single JSON object only, no markdown, no commentary.

The JSON must have this shape:
{
  "parts": [
    {
      "title": "<part title>",
      "questions": [
        {
          "question": "<question text>",
          "options": ["<option>", ...],
          "correctAnswer": "<answer>"
        }
      ]
    }
  ]
}

Rules:
- Produce the parts in the order given, with exactly the requested number of questions each.
- For MCQ parts give exactly 4 options and set correctAnswer to the exact text of the correct option.
- For non-MCQ parts omit options (use an empty array) and set correctAnswer to a full worked model answer a teacher could grade against.
- Questions must match the subject, grade level and chapter.`

func buildGenUserPrompt(params Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", params.Subject)
	fmt.Fprintf(&b, "Grade: %d\n", params.Grade)
	fmt.Fprintf(&b, "Chapter: %s\n\n", params.Chapter)
	b.WriteString("Parts to generate:\n")
	for i, part := range params.Parts {
		kind := "subjective (written answer)"
		if exam.KindFromLabel(part.TypeLabel) == exam.KindMcq {
			kind = "multiple choice"
		}
		fmt.Fprintf(&b, "%d. %q — %s, %d questions, %d mark(s) each\n",
			i+1, part.Title, kind, part.QuestionCount, part.MarksPerQuestion)
	}
	return b.String()
}
