package exam

import "context"

// Repo stores generated exam content. Store is an idempotent upsert, Get
// returns nil for a missing exam.
type Repo interface {
	Store(ctx context.Context, exam Exam) error
	Get(ctx context.Context, examId string) (*Exam, error)
	Exists(ctx context.Context, examId string) (bool, error)
}
