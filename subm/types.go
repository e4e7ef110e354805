package subm

import (
	"time"

	"github.com/google/uuid"
	"github.com/skolapp/backend/evalsrvc"
)

// McqAnswer is one submitted (question, selected option) pair.
type McqAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
}

// McqAnswerResult is a scored MCQ answer. Serialized into API responses
// and the pg jsonb column, so it carries camelCase tags.
type McqAnswerResult struct {
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
	CorrectAnswer  string `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
	MarksAwarded   int    `json:"marksAwarded"`
	MaxMarks       int    `json:"maxMarks"`
}

// McqSubmission is a directly submitted MCQ answer set, scored on intake.
// Keyed by (ExamID, StudentID); resubmission overwrites.
type McqSubmission struct {
	ExamID      string
	StudentID   string
	Answers     []McqAnswer
	Results     []McqAnswerResult
	Score       int
	TotalMarks  int
	SubmittedAt time.Time
}

// WrittenSubmission is an uploaded answer sheet moving through the
// evaluation pipeline. FileKeys may be cleared by the retention policy
// after completion; OcrText and the evaluation record are kept.
type WrittenSubmission struct {
	ID        uuid.UUID
	ExamID    string
	StudentID string
	FileKeys  []string
	Status    Status
	OcrText   string
	ErrorMsg  string

	CreatedAt     time.Time
	OcrStartedAt  *time.Time
	EvalStartedAt *time.Time
	EvaluatedAt   *time.Time

	// subjective totals, filled when the pipeline completes
	TotalScore int
	TotalMarks int
	Percentage float64
	Grade      string
}

// WrittenEvaluation is the stored outcome of one written submission's
// evaluation: the sheet-extracted MCQ score (if any answers were found on
// the sheet) and the per-question subjective results.
type WrittenEvaluation struct {
	SubmID      uuid.UUID
	SheetMcq    *evalsrvc.McqSheetEvaluation
	Subjective  []evalsrvc.SubjectiveResult
	EvaluatedAt time.Time
}
