package rubric

import (
	"context"

	"github.com/skolapp/backend/exam"
)

// Srvc validates rubrics against their exam question at save time and
// serves them to the evaluator afterwards.
type Srvc struct {
	exams   exam.Repo
	rubrics Repo
}

func NewSrvc(exams exam.Repo, rubrics Repo) *Srvc {
	return &Srvc{
		exams:   exams,
		rubrics: rubrics,
	}
}

// Put rejects rubrics whose step marks do not sum to the question's total
// marks. This is the only place the invariant is checked; the evaluator
// trusts stored rubrics.
func (s *Srvc) Put(ctx context.Context, r Rubric) error {
	e, err := s.exams.Get(ctx, r.ExamID)
	if err != nil {
		return err
	}
	if e == nil {
		return exam.ErrExamNotFound()
	}

	q, found := e.FindQuestion(r.QuestionID)
	if !found {
		return ErrQuestionNotFound(r.QuestionID)
	}
	if q.Kind == exam.KindMcq {
		return ErrRubricForMcq(r.QuestionID)
	}

	if err := r.Validate(q.Marks); err != nil {
		return err
	}

	return s.rubrics.Save(ctx, r)
}

func (s *Srvc) Get(ctx context.Context, examId string, questionId string) (*Rubric, error) {
	return s.rubrics.Get(ctx, examId, questionId)
}
