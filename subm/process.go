package subm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skolapp/backend/evalsrvc"
	"github.com/skolapp/backend/grade"
	"github.com/skolapp/backend/logger"
)

// Process runs the full evaluation pipeline for one written submission:
// OCR, best-effort sheet MCQ extraction, subjective evaluation,
// consolidation and the retention policy. It is safe to call again for a
// submission that already reached a terminal state.
func (s *SubmSrvc) Process(ctx context.Context, submId uuid.UUID) error {
	ctx = logger.WithSubmId(ctx, submId.String())
	log := logger.FromContext(ctx)

	subm, err := s.written.Get(ctx, submId)
	if err != nil {
		return fmt.Errorf("failed to load submission: %w", err)
	}
	if subm == nil {
		log.Warn("queued submission no longer exists, dropping")
		return nil
	}
	if subm.Status.IsTerminal() {
		log.Debug("submission already in terminal state, skipping", "status", subm.Status)
		return nil
	}

	ex, err := s.exams.Get(ctx, subm.ExamID)
	if err != nil {
		return s.markFailed(ctx, subm, fmt.Errorf("failed to load exam: %w", err))
	}
	if ex == nil {
		return s.markFailed(ctx, subm, fmt.Errorf("exam %s no longer exists", subm.ExamID))
	}

	now := time.Now()
	subm.OcrStartedAt = &now
	if err := s.transition(ctx, subm, StatusOcrProcessing); err != nil {
		return err
	}

	// a retried submission that already has OCR text skips the OCR call
	if subm.OcrText == "" {
		text, err := s.ocr.ExtractText(ctx, subm.FileKeys)
		if err != nil {
			return s.markFailed(ctx, subm, fmt.Errorf("text extraction failed: %w", err))
		}
		subm.OcrText = text
	}

	// sheet MCQ answers are a bonus, extraction finding nothing is fine
	var sheetMcq *evalsrvc.McqSheetEvaluation
	if mcqCount := len(ex.McqQuestions()); mcqCount > 0 {
		extraction := evalsrvc.ExtractMcq(subm.OcrText, mcqCount)
		if len(extraction.Guesses) > 0 {
			eval := evalsrvc.EvaluateSheet(ex, extraction)
			sheetMcq = &eval
			log.Info("extracted mcq answers from sheet",
				"guesses", len(extraction.Guesses), "confidence", extraction.Confidence)
		}
	}

	now = time.Now()
	subm.EvalStartedAt = &now
	if err := s.transition(ctx, subm, StatusEvaluating); err != nil {
		return err
	}

	subjective := s.evaluator.EvaluateAll(ctx, ex, subm.OcrText)

	totalScore, totalMarks := 0, 0
	for _, res := range subjective {
		totalScore += res.EarnedMarks
		totalMarks += res.MaxMarks
	}

	evaluatedAt := time.Now()
	eval := WrittenEvaluation{
		SubmID:      subm.ID,
		SheetMcq:    sheetMcq,
		Subjective:  subjective,
		EvaluatedAt: evaluatedAt,
	}
	if err := s.evals.Save(ctx, eval); err != nil {
		return s.markFailed(ctx, subm, fmt.Errorf("failed to store evaluation: %w", err))
	}

	subm.TotalScore = totalScore
	subm.TotalMarks = totalMarks
	subm.Percentage = grade.Percentage(totalScore, totalMarks)
	subm.Grade = grade.Letter(subm.Percentage)
	subm.EvaluatedAt = &evaluatedAt
	if err := s.transition(ctx, subm, StatusCompleted); err != nil {
		return err
	}

	s.retention.Apply(ctx, subm)
	if err := s.written.Save(ctx, *subm); err != nil {
		log.Error("failed to persist submission after retention pass", "error", err)
	}

	log.Info("submission evaluated",
		"score", totalScore, "total_marks", totalMarks,
		"percentage", subm.Percentage, "grade", subm.Grade)
	return nil
}

// transition advances the submission's status and persists it. An illegal
// transition is a programming error and aborts processing.
func (s *SubmSrvc) transition(ctx context.Context, subm *WrittenSubmission, next Status) error {
	if !subm.Status.CanTransitionTo(next) {
		return fmt.Errorf("illegal status transition %s -> %s for submission %s",
			subm.Status, next, subm.ID)
	}
	subm.Status = next
	if err := s.written.Save(ctx, *subm); err != nil {
		return fmt.Errorf("failed to persist status %s: %w", next, err)
	}
	return nil
}

// markFailed moves the submission to failed, recording what went wrong so
// the status endpoint can surface it. The original cause is logged and
// returned.
func (s *SubmSrvc) markFailed(ctx context.Context, subm *WrittenSubmission, cause error) error {
	log := logger.FromContext(ctx)
	log.Error("submission evaluation failed", "error", cause)

	if !subm.Status.CanTransitionTo(StatusFailed) {
		return cause
	}
	subm.Status = StatusFailed
	subm.ErrorMsg = summarizeCause(cause)
	if err := s.written.Save(ctx, *subm); err != nil {
		log.Error("failed to persist failed status", "error", err)
	}
	return cause
}

const maxErrorMsgLen = 300

// summarizeCause trims the cause to something short enough to store and
// show in a status response.
func summarizeCause(cause error) string {
	msg := cause.Error()
	if len(msg) > maxErrorMsgLen {
		msg = msg[:maxErrorMsgLen]
	}
	return msg
}
