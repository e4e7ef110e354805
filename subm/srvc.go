package subm

import (
	"github.com/skolapp/backend/evalsrvc"
	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/ocr"
	"github.com/skolapp/backend/sheetstore"
)

// SubmSrvc takes in exam submissions and drives the written-submission
// evaluation pipeline. MCQ answer sets are scored synchronously on intake;
// written sheets are persisted, queued, and worked off asynchronously.
type SubmSrvc struct {
	exams     exam.Repo
	mcqSubms  McqRepo
	written   WrittenRepo
	evals     EvalRepo
	sheets    sheetstore.Storage
	queue     Queue
	ocr       ocr.TextExtractor
	evaluator *evalsrvc.SubjectiveEvaluator
	retention *RetentionPolicy
}

func NewSubmSrvc(
	exams exam.Repo,
	mcqSubms McqRepo,
	written WrittenRepo,
	evals EvalRepo,
	sheets sheetstore.Storage,
	queue Queue,
	textExtractor ocr.TextExtractor,
	evaluator *evalsrvc.SubjectiveEvaluator,
	retention *RetentionPolicy,
) *SubmSrvc {
	return &SubmSrvc{
		exams:     exams,
		mcqSubms:  mcqSubms,
		written:   written,
		evals:     evals,
		sheets:    sheets,
		queue:     queue,
		ocr:       textExtractor,
		evaluator: evaluator,
		retention: retention,
	}
}
