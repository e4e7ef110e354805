package exam

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/guregu/dynamo/v2"
)

// ddbExamRow is the single-table row holding one exam. pk is exam#<id> so
// the table can later hold other per-exam rows under the same partition.
type ddbExamRow struct {
	Pk      string `dynamo:"pk,hash"`
	Sk      string `dynamo:"sk,range"`
	ExamId  string `dynamo:"exam_id"`
	Subject string `dynamo:"subject"`
	Grade   int    `dynamo:"grade"`
	Chapter string `dynamo:"chapter"`
	Parts   []Part `dynamo:"parts"`
}

func examRowKey(examId string) (string, string) {
	return fmt.Sprintf("exam#%s", examId), "content#"
}

// DdbRepo stores exams in a DynamoDB table.
type DdbRepo struct {
	table dynamo.Table
}

func NewDdbRepo(ctx context.Context, region string, tableName string) (*DdbRepo, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	db := dynamo.New(cfg)
	return &DdbRepo{table: db.Table(tableName)}, nil
}

func (r *DdbRepo) Store(ctx context.Context, exam Exam) error {
	pk, sk := examRowKey(exam.ID)
	row := ddbExamRow{
		Pk:      pk,
		Sk:      sk,
		ExamId:  exam.ID,
		Subject: exam.Subject,
		Grade:   exam.Grade,
		Chapter: exam.Chapter,
		Parts:   exam.Parts,
	}
	if err := r.table.Put(row).Run(ctx); err != nil {
		return fmt.Errorf("failed to store exam: %w", err)
	}
	return nil
}

func (r *DdbRepo) Get(ctx context.Context, examId string) (*Exam, error) {
	pk, sk := examRowKey(examId)
	var row ddbExamRow
	err := r.table.Get("pk", pk).Range("sk", dynamo.Equal, sk).One(ctx, &row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}
	return &Exam{
		ID:      row.ExamId,
		Subject: row.Subject,
		Grade:   row.Grade,
		Chapter: row.Chapter,
		Parts:   row.Parts,
	}, nil
}

func (r *DdbRepo) Exists(ctx context.Context, examId string) (bool, error) {
	exam, err := r.Get(ctx, examId)
	if err != nil {
		return false, err
	}
	return exam != nil, nil
}
