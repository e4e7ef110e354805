package rubric

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skolapp/backend/logger"
)

type PgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *PgRepo {
	return &PgRepo{pool: pool}
}

func (r *PgRepo) Save(ctx context.Context, rubric Rubric) error {
	log := logger.FromContext(ctx)
	log.Debug("storing rubric", "exam_id", rubric.ExamID, "question_id", rubric.QuestionID)

	steps, err := json.Marshal(rubric.Steps)
	if err != nil {
		return fmt.Errorf("failed to marshal rubric steps: %w", err)
	}

	query := `
		INSERT INTO rubrics (exam_id, question_id, steps)
		VALUES ($1, $2, $3)
		ON CONFLICT (exam_id, question_id) DO UPDATE SET
			steps = EXCLUDED.steps
	`
	_, err = r.pool.Exec(ctx, query, rubric.ExamID, rubric.QuestionID, steps)
	if err != nil {
		return fmt.Errorf("failed to store rubric: %w", err)
	}
	return nil
}

func (r *PgRepo) Get(ctx context.Context, examId string, questionId string) (*Rubric, error) {
	query := `
		SELECT steps FROM rubrics
		WHERE exam_id = $1 AND question_id = $2
	`
	var stepsJson []byte
	err := r.pool.QueryRow(ctx, query, examId, questionId).Scan(&stepsJson)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rubric: %w", err)
	}

	var steps []Step
	if err := json.Unmarshal(stepsJson, &steps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rubric steps: %w", err)
	}
	return &Rubric{
		ExamID:     examId,
		QuestionID: questionId,
		Steps:      steps,
	}, nil
}
