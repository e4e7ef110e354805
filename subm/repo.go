package subm

import (
	"context"

	"github.com/google/uuid"
)

// McqRepo stores directly submitted MCQ answer sets. Save overwrites the
// previous submission for the same (examId, studentId).
type McqRepo interface {
	Save(ctx context.Context, subm McqSubmission) error
	Get(ctx context.Context, examId string, studentId string) (*McqSubmission, error)
}

// WrittenRepo stores written submissions. Save is an upsert by id;
// concurrent writers for the same id are last-writer-wins.
type WrittenRepo interface {
	Save(ctx context.Context, subm WrittenSubmission) error
	Get(ctx context.Context, id uuid.UUID) (*WrittenSubmission, error)
	// GetByExamStudent returns the most recent written submission for the
	// pair, or nil.
	GetByExamStudent(ctx context.Context, examId string, studentId string) (*WrittenSubmission, error)
}

// EvalRepo stores written-submission evaluation outcomes keyed by
// submission id.
type EvalRepo interface {
	Save(ctx context.Context, eval WrittenEvaluation) error
	GetBySubm(ctx context.Context, submId uuid.UUID) (*WrittenEvaluation, error)
}
