// Package result consolidates everything known about a student's exam
// attempt into one response. Results are recomputed on every request,
// never persisted.
package result

import (
	"time"

	"github.com/skolapp/backend/evalsrvc"
	"github.com/skolapp/backend/subm"
)

// McqSource says where the MCQ score in a consolidated result came from.
type McqSource string

const (
	McqSourceDirect McqSource = "direct" // submitted through the MCQ endpoint
	McqSourceSheet  McqSource = "sheet"  // extracted from the uploaded answer sheet
)

// McqSection is the MCQ portion of a consolidated result.
type McqSection struct {
	Source     McqSource                `json:"source"`
	Answers    []subm.McqAnswerResult   `json:"answers,omitempty"`
	SheetMcq   []evalsrvc.McqAnswerEval `json:"sheetAnswers,omitempty"`
	Score      int                      `json:"score"`
	TotalMarks int                      `json:"totalMarks"`
}

// SubjectiveSection is the written-evaluation portion of a consolidated
// result.
type SubjectiveSection struct {
	SubmissionID string                      `json:"submissionId"`
	Results      []evalsrvc.SubjectiveResult `json:"results"`
	Score        int                         `json:"score"`
	TotalMarks   int                         `json:"totalMarks"`
	EvaluatedAt  time.Time                   `json:"evaluatedAt"`
}

// ConsolidatedResult is the full scoring picture for one (exam, student)
// pair. Either section may be absent; both absent is a not-found error at
// the builder.
type ConsolidatedResult struct {
	ExamID    string `json:"examId"`
	StudentID string `json:"studentId"`
	Subject   string `json:"subject"`
	Grade     int    `json:"grade"`
	Chapter   string `json:"chapter"`

	Mcq        *McqSection        `json:"mcq,omitempty"`
	Subjective *SubjectiveSection `json:"subjective,omitempty"`
	// WrittenStatus surfaces an in-flight written submission so the client
	// can tell "not evaluated yet" from "never uploaded".
	WrittenStatus string `json:"writtenStatus,omitempty"`

	TotalScore  int     `json:"totalScore"`
	TotalMarks  int     `json:"totalMarks"`
	Percentage  float64 `json:"percentage"`
	LetterGrade string  `json:"letterGrade"`
	Passed      bool    `json:"passed"`
}
