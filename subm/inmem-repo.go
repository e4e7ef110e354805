package subm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// In-memory repos back tests and local runs. All three are safe for
// concurrent use.

type InMemMcqRepo struct {
	subms *xsync.MapOf[string, McqSubmission]
}

func NewInMemMcqRepo() *InMemMcqRepo {
	return &InMemMcqRepo{subms: xsync.NewMapOf[string, McqSubmission]()}
}

func examStudentKey(examId, studentId string) string {
	return fmt.Sprintf("%s#%s", examId, studentId)
}

func (r *InMemMcqRepo) Save(ctx context.Context, subm McqSubmission) error {
	r.subms.Store(examStudentKey(subm.ExamID, subm.StudentID), subm)
	return nil
}

func (r *InMemMcqRepo) Get(ctx context.Context, examId string, studentId string) (*McqSubmission, error) {
	subm, ok := r.subms.Load(examStudentKey(examId, studentId))
	if !ok {
		return nil, nil
	}
	return &subm, nil
}

type InMemWrittenRepo struct {
	subms *xsync.MapOf[uuid.UUID, WrittenSubmission]
}

func NewInMemWrittenRepo() *InMemWrittenRepo {
	return &InMemWrittenRepo{subms: xsync.NewMapOf[uuid.UUID, WrittenSubmission]()}
}

func (r *InMemWrittenRepo) Save(ctx context.Context, subm WrittenSubmission) error {
	r.subms.Store(subm.ID, subm)
	return nil
}

func (r *InMemWrittenRepo) Get(ctx context.Context, id uuid.UUID) (*WrittenSubmission, error) {
	subm, ok := r.subms.Load(id)
	if !ok {
		return nil, nil
	}
	return &subm, nil
}

func (r *InMemWrittenRepo) GetByExamStudent(ctx context.Context, examId string, studentId string) (*WrittenSubmission, error) {
	var latest *WrittenSubmission
	r.subms.Range(func(_ uuid.UUID, subm WrittenSubmission) bool {
		if subm.ExamID != examId || subm.StudentID != studentId {
			return true
		}
		if latest == nil || subm.CreatedAt.After(latest.CreatedAt) {
			s := subm
			latest = &s
		}
		return true
	})
	return latest, nil
}

type InMemEvalRepo struct {
	evals *xsync.MapOf[uuid.UUID, WrittenEvaluation]
}

func NewInMemEvalRepo() *InMemEvalRepo {
	return &InMemEvalRepo{evals: xsync.NewMapOf[uuid.UUID, WrittenEvaluation]()}
}

func (r *InMemEvalRepo) Save(ctx context.Context, eval WrittenEvaluation) error {
	r.evals.Store(eval.SubmID, eval)
	return nil
}

func (r *InMemEvalRepo) GetBySubm(ctx context.Context, submId uuid.UUID) (*WrittenEvaluation, error) {
	eval, ok := r.evals.Load(submId)
	if !ok {
		return nil, nil
	}
	return &eval, nil
}
