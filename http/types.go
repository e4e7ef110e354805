package http

import (
	"time"

	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/subm"
)

type questionDto struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
	// CorrectAnswer is only populated on teacher-facing responses.
	CorrectAnswer string `json:"correctAnswer,omitempty"`
}

type partDto struct {
	Title            string        `json:"title"`
	Kind             string        `json:"kind"`
	MarksPerQuestion int           `json:"marksPerQuestion"`
	Questions        []questionDto `json:"questions"`
}

type examDto struct {
	ID      string    `json:"id"`
	Subject string    `json:"subject"`
	Grade   int       `json:"grade"`
	Chapter string    `json:"chapter"`
	Parts   []partDto `json:"parts"`
}

// mapExam converts an exam to its transport shape. withAnswers controls
// whether correct answers and model answers are included; student-facing
// responses must not leak them.
func mapExam(ex *exam.Exam, withAnswers bool) examDto {
	dto := examDto{
		ID:      ex.ID,
		Subject: ex.Subject,
		Grade:   ex.Grade,
		Chapter: ex.Chapter,
	}
	for _, part := range ex.Parts {
		p := partDto{
			Title:            part.Title,
			Kind:             string(part.Kind),
			MarksPerQuestion: part.MarksPerQuestion,
		}
		for _, q := range part.Questions {
			qDto := questionDto{
				ID:      q.ID,
				Text:    q.Text,
				Options: q.Options,
			}
			if withAnswers {
				qDto.CorrectAnswer = q.CorrectAnswer
			}
			p.Questions = append(p.Questions, qDto)
		}
		dto.Parts = append(dto.Parts, p)
	}
	return dto
}

type mcqSubmissionDto struct {
	ExamID      string                 `json:"examId"`
	StudentID   string                 `json:"studentId"`
	Results     []subm.McqAnswerResult `json:"results"`
	Score       int                    `json:"score"`
	TotalMarks  int                    `json:"totalMarks"`
	SubmittedAt time.Time              `json:"submittedAt"`
}

func mapMcqSubmission(s *subm.McqSubmission) mcqSubmissionDto {
	return mcqSubmissionDto{
		ExamID:      s.ExamID,
		StudentID:   s.StudentID,
		Results:     s.Results,
		Score:       s.Score,
		TotalMarks:  s.TotalMarks,
		SubmittedAt: s.SubmittedAt,
	}
}

type writtenSubmissionDto struct {
	ID          string     `json:"id"`
	ExamID      string     `json:"examId"`
	StudentID   string     `json:"studentId"`
	Status      string     `json:"status"`
	ErrorMsg    string     `json:"errorMessage,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	EvaluatedAt *time.Time `json:"evaluatedAt,omitempty"`
	TotalScore  int        `json:"totalScore"`
	TotalMarks  int        `json:"totalMarks"`
	Percentage  float64    `json:"percentage"`
	Grade       string     `json:"grade,omitempty"`
}

func mapWrittenSubmission(s *subm.WrittenSubmission) writtenSubmissionDto {
	return writtenSubmissionDto{
		ID:          s.ID.String(),
		ExamID:      s.ExamID,
		StudentID:   s.StudentID,
		Status:      string(s.Status),
		ErrorMsg:    s.ErrorMsg,
		CreatedAt:   s.CreatedAt,
		EvaluatedAt: s.EvaluatedAt,
		TotalScore:  s.TotalScore,
		TotalMarks:  s.TotalMarks,
		Percentage:  s.Percentage,
		Grade:       s.Grade,
	}
}
