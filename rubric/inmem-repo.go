package rubric

import (
	"context"
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"
)

type InMemRepo struct {
	rubrics *xsync.MapOf[string, Rubric]
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		rubrics: xsync.NewMapOf[string, Rubric](),
	}
}

func rubricKey(examId, questionId string) string {
	return fmt.Sprintf("%s#%s", examId, questionId)
}

func (r *InMemRepo) Save(ctx context.Context, rubric Rubric) error {
	r.rubrics.Store(rubricKey(rubric.ExamID, rubric.QuestionID), rubric)
	return nil
}

func (r *InMemRepo) Get(ctx context.Context, examId string, questionId string) (*Rubric, error) {
	rubric, ok := r.rubrics.Load(rubricKey(examId, questionId))
	if !ok {
		return nil, nil
	}
	return &rubric, nil
}
