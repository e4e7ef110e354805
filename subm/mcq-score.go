package subm

import (
	"context"
	"strings"

	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/logger"
)

// scoreMcqAnswers scores submitted answers against the exam's MCQ
// questions. Option comparison is case-insensitive. Answers referencing
// unknown or non-MCQ question ids are skipped with a warning. TotalMarks
// always covers every MCQ question of the exam, answered or not.
func scoreMcqAnswers(ctx context.Context, ex *exam.Exam, answers []McqAnswer) (results []McqAnswerResult, score int, totalMarks int) {
	log := logger.FromContext(ctx)

	mcqById := make(map[string]exam.MarkedQuestion)
	for _, q := range ex.McqQuestions() {
		mcqById[q.ID] = q
		totalMarks += q.Marks
	}

	for _, ans := range answers {
		q, ok := mcqById[ans.QuestionID]
		if !ok {
			log.Warn("skipping answer for unknown mcq question",
				"exam_id", ex.ID, "question_id", ans.QuestionID)
			continue
		}
		correct := strings.EqualFold(
			strings.TrimSpace(ans.SelectedOption),
			strings.TrimSpace(q.CorrectAnswer),
		)
		awarded := 0
		if correct {
			awarded = q.Marks
		}
		results = append(results, McqAnswerResult{
			QuestionID:     ans.QuestionID,
			SelectedOption: ans.SelectedOption,
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      correct,
			MarksAwarded:   awarded,
			MaxMarks:       q.Marks,
		})
		score += awarded
	}

	return results, score, totalMarks
}
