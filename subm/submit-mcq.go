package subm

import (
	"context"
	"fmt"
	"time"

	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/srvcerror"
)

// SubmitMcq scores a directly submitted MCQ answer set and stores it.
// Resubmission for the same (examId, studentId) overwrites the previous
// submission.
func (s *SubmSrvc) SubmitMcq(ctx context.Context, examId string, studentId string, answers []McqAnswer) (*McqSubmission, error) {
	if examId == "" {
		return nil, ErrMissingExamId()
	}
	if studentId == "" {
		return nil, ErrMissingStudentId()
	}
	if len(answers) == 0 {
		return nil, ErrNoAnswers()
	}

	ex, err := s.exams.Get(ctx, examId)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to load exam %s: %w", examId, err))
	}
	if ex == nil {
		return nil, exam.ErrExamNotFound()
	}
	if len(ex.McqQuestions()) == 0 {
		return nil, ErrExamHasNoMcq()
	}

	results, score, totalMarks := scoreMcqAnswers(ctx, ex, answers)
	subm := McqSubmission{
		ExamID:      examId,
		StudentID:   studentId,
		Answers:     answers,
		Results:     results,
		Score:       score,
		TotalMarks:  totalMarks,
		SubmittedAt: time.Now(),
	}
	if err := s.mcqSubms.Save(ctx, subm); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to store mcq submission: %w", err))
	}
	return &subm, nil
}
