package subm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/logger"
	"github.com/skolapp/backend/srvcerror"
)

// UploadFile is one answer-sheet file received from the client.
type UploadFile struct {
	Filename string
	Content  []byte
}

// UploadWritten stores the uploaded sheet files, persists a pending
// submission record and enqueues it for evaluation. It returns as soon as
// the submission is queued; evaluation happens on the worker pool.
func (s *SubmSrvc) UploadWritten(ctx context.Context, examId string, studentId string, files []UploadFile) (*WrittenSubmission, error) {
	if examId == "" {
		return nil, ErrMissingExamId()
	}
	if studentId == "" {
		return nil, ErrMissingStudentId()
	}
	if len(files) == 0 {
		return nil, ErrNoFilesUploaded()
	}

	exists, err := s.exams.Exists(ctx, examId)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to check exam %s: %w", examId, err))
	}
	if !exists {
		return nil, exam.ErrExamNotFound()
	}

	fileKeys := make([]string, 0, len(files))
	for _, f := range files {
		key, err := s.sheets.Save(ctx, f.Content, f.Filename, examId, studentId)
		if err != nil {
			return nil, err
		}
		fileKeys = append(fileKeys, key)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to generate submission id: %w", err))
	}
	subm := WrittenSubmission{
		ID:        id,
		ExamID:    examId,
		StudentID: studentId,
		FileKeys:  fileKeys,
		Status:    StatusPendingEvaluation,
		CreatedAt: time.Now(),
	}
	if err := s.written.Save(ctx, subm); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to store written submission: %w", err))
	}

	if err := s.queue.Enqueue(ctx, subm.ID); err != nil {
		// the record is persisted, the job can be re-driven later
		logger.FromContext(ctx).Error("failed to enqueue submission for evaluation",
			"subm_id", subm.ID, "error", err)
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to enqueue submission: %w", err))
	}

	return &subm, nil
}

// GetStatus returns a written submission by id.
func (s *SubmSrvc) GetStatus(ctx context.Context, submId uuid.UUID) (*WrittenSubmission, error) {
	subm, err := s.written.Get(ctx, submId)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to load submission %s: %w", submId, err))
	}
	if subm == nil {
		return nil, ErrSubmissionNotFound()
	}
	return subm, nil
}
