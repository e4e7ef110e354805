package subm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgMcqRepo struct {
	pool *pgxpool.Pool
}

func NewPgMcqRepo(pool *pgxpool.Pool) *PgMcqRepo {
	return &PgMcqRepo{pool: pool}
}

func (r *PgMcqRepo) Save(ctx context.Context, subm McqSubmission) error {
	answers, err := json.Marshal(subm.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal mcq answers: %w", err)
	}
	results, err := json.Marshal(subm.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal mcq results: %w", err)
	}

	query := `
		INSERT INTO mcq_submissions (
			exam_id, student_id, answers, results, score, total_marks, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (exam_id, student_id) DO UPDATE SET
			answers = EXCLUDED.answers,
			results = EXCLUDED.results,
			score = EXCLUDED.score,
			total_marks = EXCLUDED.total_marks,
			submitted_at = EXCLUDED.submitted_at
	`
	_, err = r.pool.Exec(ctx, query,
		subm.ExamID,
		subm.StudentID,
		answers,
		results,
		subm.Score,
		subm.TotalMarks,
		subm.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store mcq submission: %w", err)
	}
	return nil
}

func (r *PgMcqRepo) Get(ctx context.Context, examId string, studentId string) (*McqSubmission, error) {
	query := `
		SELECT answers, results, score, total_marks, submitted_at
		FROM mcq_submissions
		WHERE exam_id = $1 AND student_id = $2
	`
	subm := McqSubmission{ExamID: examId, StudentID: studentId}
	var answersJson, resultsJson []byte
	err := r.pool.QueryRow(ctx, query, examId, studentId).Scan(
		&answersJson,
		&resultsJson,
		&subm.Score,
		&subm.TotalMarks,
		&subm.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query mcq submission: %w", err)
	}
	if err := json.Unmarshal(answersJson, &subm.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mcq answers: %w", err)
	}
	if err := json.Unmarshal(resultsJson, &subm.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mcq results: %w", err)
	}
	return &subm, nil
}

type PgWrittenRepo struct {
	pool *pgxpool.Pool
}

func NewPgWrittenRepo(pool *pgxpool.Pool) *PgWrittenRepo {
	return &PgWrittenRepo{pool: pool}
}

const writtenSubmColumns = `
	id, exam_id, student_id, file_keys, status, ocr_text, error_msg,
	created_at, ocr_started_at, eval_started_at, evaluated_at,
	total_score, total_marks, percentage, grade
`

func (r *PgWrittenRepo) Save(ctx context.Context, subm WrittenSubmission) error {
	fileKeys, err := json.Marshal(subm.FileKeys)
	if err != nil {
		return fmt.Errorf("failed to marshal file keys: %w", err)
	}

	query := `
		INSERT INTO written_submissions (` + writtenSubmColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			file_keys = EXCLUDED.file_keys,
			status = EXCLUDED.status,
			ocr_text = EXCLUDED.ocr_text,
			error_msg = EXCLUDED.error_msg,
			ocr_started_at = EXCLUDED.ocr_started_at,
			eval_started_at = EXCLUDED.eval_started_at,
			evaluated_at = EXCLUDED.evaluated_at,
			total_score = EXCLUDED.total_score,
			total_marks = EXCLUDED.total_marks,
			percentage = EXCLUDED.percentage,
			grade = EXCLUDED.grade
	`
	_, err = r.pool.Exec(ctx, query,
		subm.ID,
		subm.ExamID,
		subm.StudentID,
		fileKeys,
		string(subm.Status),
		subm.OcrText,
		subm.ErrorMsg,
		subm.CreatedAt,
		subm.OcrStartedAt,
		subm.EvalStartedAt,
		subm.EvaluatedAt,
		subm.TotalScore,
		subm.TotalMarks,
		subm.Percentage,
		subm.Grade,
	)
	if err != nil {
		return fmt.Errorf("failed to store written submission: %w", err)
	}
	return nil
}

func scanWrittenSubm(row pgx.Row) (*WrittenSubmission, error) {
	var subm WrittenSubmission
	var fileKeysJson []byte
	var status string
	err := row.Scan(
		&subm.ID,
		&subm.ExamID,
		&subm.StudentID,
		&fileKeysJson,
		&status,
		&subm.OcrText,
		&subm.ErrorMsg,
		&subm.CreatedAt,
		&subm.OcrStartedAt,
		&subm.EvalStartedAt,
		&subm.EvaluatedAt,
		&subm.TotalScore,
		&subm.TotalMarks,
		&subm.Percentage,
		&subm.Grade,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan written submission: %w", err)
	}
	subm.Status = Status(status)
	if err := json.Unmarshal(fileKeysJson, &subm.FileKeys); err != nil {
		return nil, fmt.Errorf("failed to unmarshal file keys: %w", err)
	}
	return &subm, nil
}

func (r *PgWrittenRepo) Get(ctx context.Context, id uuid.UUID) (*WrittenSubmission, error) {
	query := `
		SELECT ` + writtenSubmColumns + `
		FROM written_submissions
		WHERE id = $1
	`
	return scanWrittenSubm(r.pool.QueryRow(ctx, query, id))
}

func (r *PgWrittenRepo) GetByExamStudent(ctx context.Context, examId string, studentId string) (*WrittenSubmission, error) {
	query := `
		SELECT ` + writtenSubmColumns + `
		FROM written_submissions
		WHERE exam_id = $1 AND student_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanWrittenSubm(r.pool.QueryRow(ctx, query, examId, studentId))
}

type PgEvalRepo struct {
	pool *pgxpool.Pool
}

func NewPgEvalRepo(pool *pgxpool.Pool) *PgEvalRepo {
	return &PgEvalRepo{pool: pool}
}

func (r *PgEvalRepo) Save(ctx context.Context, eval WrittenEvaluation) error {
	sheetMcq, err := json.Marshal(eval.SheetMcq)
	if err != nil {
		return fmt.Errorf("failed to marshal sheet mcq evaluation: %w", err)
	}
	subjective, err := json.Marshal(eval.Subjective)
	if err != nil {
		return fmt.Errorf("failed to marshal subjective results: %w", err)
	}

	query := `
		INSERT INTO written_evaluations (subm_id, sheet_mcq, subjective, evaluated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (subm_id) DO UPDATE SET
			sheet_mcq = EXCLUDED.sheet_mcq,
			subjective = EXCLUDED.subjective,
			evaluated_at = EXCLUDED.evaluated_at
	`
	_, err = r.pool.Exec(ctx, query, eval.SubmID, sheetMcq, subjective, eval.EvaluatedAt)
	if err != nil {
		return fmt.Errorf("failed to store written evaluation: %w", err)
	}
	return nil
}

func (r *PgEvalRepo) GetBySubm(ctx context.Context, submId uuid.UUID) (*WrittenEvaluation, error) {
	query := `
		SELECT sheet_mcq, subjective, evaluated_at
		FROM written_evaluations
		WHERE subm_id = $1
	`
	eval := WrittenEvaluation{SubmID: submId}
	var sheetMcqJson, subjectiveJson []byte
	err := r.pool.QueryRow(ctx, query, submId).Scan(&sheetMcqJson, &subjectiveJson, &eval.EvaluatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query written evaluation: %w", err)
	}
	if err := json.Unmarshal(sheetMcqJson, &eval.SheetMcq); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sheet mcq evaluation: %w", err)
	}
	if err := json.Unmarshal(subjectiveJson, &eval.Subjective); err != nil {
		return nil, fmt.Errorf("failed to unmarshal subjective results: %w", err)
	}
	return &eval, nil
}
