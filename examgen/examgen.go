// Package examgen generates exam content with an LLM and stores it
// together with default rubrics for the subjective questions.
package examgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/logger"
	"github.com/skolapp/backend/rubric"
	"github.com/skolapp/backend/srvcerror"
)

// CompletionClient is the LLM boundary; the reply must be JSON.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// PartPlan describes one part of the exam to generate. TypeLabel is
// free-form ("MCQ", "Short Answer", "Long Answer"); the question kind is
// resolved from it once, here.
type PartPlan struct {
	Title            string `json:"title"`
	TypeLabel        string `json:"type"`
	QuestionCount    int    `json:"questionCount"`
	MarksPerQuestion int    `json:"marksPerQuestion"`
}

// Params is the exam generation request.
type Params struct {
	Subject string     `json:"subject"`
	Grade   int        `json:"grade"`
	Chapter string     `json:"chapter"`
	Parts   []PartPlan `json:"parts"`
}

type Srvc struct {
	llm     CompletionClient
	exams   exam.Repo
	rubrics rubric.Repo
}

func NewSrvc(llm CompletionClient, exams exam.Repo, rubrics rubric.Repo) *Srvc {
	return &Srvc{
		llm:     llm,
		exams:   exams,
		rubrics: rubrics,
	}
}

// Generate produces a full exam for the given plan, stores it and saves a
// default rubric for every subjective question.
func (s *Srvc) Generate(ctx context.Context, params Params) (*exam.Exam, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	raw, err := s.llm.Complete(ctx, genSystemPrompt, buildGenUserPrompt(params))
	if err != nil {
		return nil, ErrGenerationFailed().SetDebug(
			fmt.Errorf("LLM generation call failed: %w", err))
	}

	ex, err := parseGenerated(ctx, raw, params)
	if err != nil {
		return nil, ErrGenerationFailed().SetDebug(err)
	}

	if err := s.exams.Store(ctx, *ex); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to store generated exam: %w", err))
	}

	if err := s.saveDefaultRubrics(ctx, ex); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}

	return ex, nil
}

func validateParams(params Params) error {
	if params.Subject == "" {
		return ErrInvalidGenParams("subject is required")
	}
	if params.Grade < 1 || params.Grade > 12 {
		return ErrInvalidGenParams("grade must be between 1 and 12")
	}
	if params.Chapter == "" {
		return ErrInvalidGenParams("chapter is required")
	}
	if len(params.Parts) == 0 {
		return ErrInvalidGenParams("at least one part is required")
	}
	for _, part := range params.Parts {
		if part.QuestionCount < 1 {
			return ErrInvalidGenParams("every part needs at least one question")
		}
		if part.MarksPerQuestion < 1 {
			return ErrInvalidGenParams("marks per question must be at least 1")
		}
	}
	return nil
}

// generated* mirror the JSON schema genSystemPrompt demands.
type generatedExam struct {
	Parts []generatedPart `json:"parts"`
}

type generatedPart struct {
	Title     string              `json:"title"`
	Questions []generatedQuestion `json:"questions"`
}

type generatedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

func parseGenerated(ctx context.Context, raw string, params Params) (*exam.Exam, error) {
	log := logger.FromContext(ctx)

	var gen generatedExam
	if err := json.Unmarshal([]byte(raw), &gen); err != nil {
		return nil, fmt.Errorf("failed to parse generated exam: %w", err)
	}
	if len(gen.Parts) != len(params.Parts) {
		return nil, fmt.Errorf("generated %d parts, expected %d", len(gen.Parts), len(params.Parts))
	}

	ex := &exam.Exam{
		ID:      uuid.New().String(),
		Subject: params.Subject,
		Grade:   params.Grade,
		Chapter: params.Chapter,
	}

	qNum := 0
	for i, plan := range params.Parts {
		kind := exam.KindFromLabel(plan.TypeLabel)
		genPart := gen.Parts[i]
		if len(genPart.Questions) != plan.QuestionCount {
			return nil, fmt.Errorf("part %q has %d questions, expected %d",
				plan.Title, len(genPart.Questions), plan.QuestionCount)
		}

		part := exam.Part{
			Title:            plan.Title,
			Kind:             kind,
			MarksPerQuestion: plan.MarksPerQuestion,
		}
		for _, gq := range genPart.Questions {
			qNum++
			q := exam.Question{
				ID:            fmt.Sprintf("q%d", qNum),
				Text:          gq.Question,
				CorrectAnswer: gq.CorrectAnswer,
			}
			if kind == exam.KindMcq {
				if len(gq.Options) < 2 {
					return nil, fmt.Errorf("mcq question %s has %d options", q.ID, len(gq.Options))
				}
				q.Options = gq.Options
				q.CorrectAnswer = normalizeCorrectOption(gq.Options, gq.CorrectAnswer)
				if q.CorrectAnswer != gq.CorrectAnswer {
					log.Debug("normalized mcq correct answer casing", "question_id", q.ID)
				}
			}
			part.Questions = append(part.Questions, q)
		}
		ex.Parts = append(ex.Parts, part)
	}
	return ex, nil
}

// normalizeCorrectOption snaps the model's correct answer onto the exact
// option text so downstream comparisons never fight casing drift. An
// answer matching no option is kept as-is and will simply never score.
func normalizeCorrectOption(options []string, answer string) string {
	for _, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(answer)) {
			return opt
		}
	}
	return answer
}

func (s *Srvc) saveDefaultRubrics(ctx context.Context, ex *exam.Exam) error {
	for _, q := range ex.SubjectiveQuestions() {
		steps := rubric.GenerateSteps(q.Marks)
		rub := rubric.Rubric{
			ExamID:     ex.ID,
			QuestionID: q.ID,
			Steps:      steps,
		}
		if err := s.rubrics.Save(ctx, rub); err != nil {
			return fmt.Errorf("failed to save default rubric for %s: %w", q.ID, err)
		}
	}
	return nil
}
