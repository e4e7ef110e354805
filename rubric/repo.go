package rubric

import "context"

// Repo stores rubrics keyed by (examId, questionId). Save overwrites, Get
// returns nil for a missing rubric.
type Repo interface {
	Save(ctx context.Context, rubric Rubric) error
	Get(ctx context.Context, examId string, questionId string) (*Rubric, error)
}
