package exam

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"
)

// InMemRepo is the exam store used by tests and local runs.
type InMemRepo struct {
	exams *xsync.MapOf[string, Exam]
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		exams: xsync.NewMapOf[string, Exam](),
	}
}

func (r *InMemRepo) Store(ctx context.Context, exam Exam) error {
	r.exams.Store(exam.ID, exam)
	return nil
}

func (r *InMemRepo) Get(ctx context.Context, examId string) (*Exam, error) {
	exam, ok := r.exams.Load(examId)
	if !ok {
		return nil, nil
	}
	return &exam, nil
}

func (r *InMemRepo) Exists(ctx context.Context, examId string) (bool, error) {
	_, ok := r.exams.Load(examId)
	return ok, nil
}
