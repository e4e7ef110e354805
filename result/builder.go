package result

import (
	"context"
	"fmt"

	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/grade"
	"github.com/skolapp/backend/srvcerror"
	"github.com/skolapp/backend/subm"
)

// Builder assembles consolidated results from the submission stores.
type Builder struct {
	exams   exam.Repo
	mcq     subm.McqRepo
	written subm.WrittenRepo
	evals   subm.EvalRepo
}

func NewBuilder(exams exam.Repo, mcq subm.McqRepo, written subm.WrittenRepo, evals subm.EvalRepo) *Builder {
	return &Builder{
		exams:   exams,
		mcq:     mcq,
		written: written,
		evals:   evals,
	}
}

// Build consolidates the direct MCQ submission and the written-sheet
// evaluation for one (examId, studentId). An MCQ score extracted from the
// uploaded sheet takes precedence over a directly submitted one. With no
// submissions at all the result is a not-found error.
func (b *Builder) Build(ctx context.Context, examId string, studentId string) (*ConsolidatedResult, error) {
	ex, err := b.exams.Get(ctx, examId)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to load exam %s: %w", examId, err))
	}
	if ex == nil {
		return nil, exam.ErrExamNotFound()
	}

	mcqSubm, err := b.mcq.Get(ctx, examId, studentId)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to load mcq submission: %w", err))
	}
	writtenSubm, err := b.written.GetByExamStudent(ctx, examId, studentId)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to load written submission: %w", err))
	}

	var eval *subm.WrittenEvaluation
	if writtenSubm != nil {
		eval, err = b.evals.GetBySubm(ctx, writtenSubm.ID)
		if err != nil {
			return nil, srvcerror.ErrInternalSE().SetDebug(
				fmt.Errorf("failed to load written evaluation: %w", err))
		}
	}

	if mcqSubm == nil && eval == nil && writtenSubm == nil {
		return nil, ErrNoResultsFound()
	}

	res := &ConsolidatedResult{
		ExamID:    examId,
		StudentID: studentId,
		Subject:   ex.Subject,
		Grade:     ex.Grade,
		Chapter:   ex.Chapter,
	}

	if eval != nil && eval.SheetMcq != nil {
		res.Mcq = &McqSection{
			Source:     McqSourceSheet,
			SheetMcq:   eval.SheetMcq.Answers,
			Score:      eval.SheetMcq.Score,
			TotalMarks: eval.SheetMcq.TotalMarks,
		}
	} else if mcqSubm != nil {
		res.Mcq = &McqSection{
			Source:     McqSourceDirect,
			Answers:    mcqSubm.Results,
			Score:      mcqSubm.Score,
			TotalMarks: mcqSubm.TotalMarks,
		}
	}

	if eval != nil && len(eval.Subjective) > 0 {
		section := &SubjectiveSection{
			SubmissionID: writtenSubm.ID.String(),
			Results:      eval.Subjective,
			EvaluatedAt:  eval.EvaluatedAt,
		}
		for _, r := range eval.Subjective {
			section.Score += r.EarnedMarks
			section.TotalMarks += r.MaxMarks
		}
		res.Subjective = section
	}
	if writtenSubm != nil && !writtenSubm.Status.IsTerminal() {
		res.WrittenStatus = string(writtenSubm.Status)
	}

	if res.Mcq != nil {
		res.TotalScore += res.Mcq.Score
		res.TotalMarks += res.Mcq.TotalMarks
	}
	if res.Subjective != nil {
		res.TotalScore += res.Subjective.Score
		res.TotalMarks += res.Subjective.TotalMarks
	}
	res.Percentage = grade.Percentage(res.TotalScore, res.TotalMarks)
	res.LetterGrade = grade.Letter(res.Percentage)
	res.Passed = grade.Passed(res.Percentage)

	return res, nil
}
