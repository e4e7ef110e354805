package evalsrvc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/logger"
	"github.com/skolapp/backend/rubric"
)

// CompletionClient is the LLM boundary the evaluator talks to. The reply
// is expected to be JSON matching the documented schema.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// fixed feedback for answers the pipeline could not score
const supportFeedback = "This answer could not be evaluated automatically. Please contact support."

// SubjectiveEvaluator grades subjective answers with an LLM, one question
// per call. Failures are isolated per question: a bad LLM reply yields a
// zero-score result, never an error that would abort the batch.
type SubjectiveEvaluator struct {
	llm     CompletionClient
	rubrics rubric.Repo
}

func NewSubjectiveEvaluator(llm CompletionClient, rubrics rubric.Repo) *SubjectiveEvaluator {
	return &SubjectiveEvaluator{
		llm:     llm,
		rubrics: rubrics,
	}
}

// EvaluateAll splits the submission's OCR text into per-question answers
// and evaluates every subjective question of the exam, in part order.
func (e *SubjectiveEvaluator) EvaluateAll(ctx context.Context, ex *exam.Exam, ocrText string) []SubjectiveResult {
	questions := ex.SubjectiveQuestions()
	answers := SplitAnswers(ocrText, len(questions))

	results := make([]SubjectiveResult, 0, len(questions))
	for i, q := range questions {
		results = append(results, e.EvaluateQuestion(ctx, ex.ID, q, answers[i]))
	}
	return results
}

// EvaluateQuestion grades a single answer, against the stored rubric when
// one exists and with the rubric-free prompt variant otherwise.
func (e *SubjectiveEvaluator) EvaluateQuestion(ctx context.Context, examId string, q exam.MarkedQuestion, answer string) SubjectiveResult {
	log := logger.FromContext(ctx)

	if answer == "" {
		res := zeroResult(q)
		res.OverallFeedback = "No answer was found for this question."
		return res
	}

	rub, err := e.rubrics.Get(ctx, examId, q.ID)
	if err != nil {
		log.Warn("failed to load rubric, evaluating without one",
			"question_id", q.ID, "error", err)
		rub = nil
	}

	systemPrompt := buildFreeSystemPrompt()
	if rub != nil {
		systemPrompt = buildRubricSystemPrompt()
	}

	raw, err := e.llm.Complete(ctx, systemPrompt, buildUserPrompt(q, rub, answer))
	if err != nil {
		log.Warn("LLM evaluation failed", "question_id", q.ID, "error", err)
		return failedResult(q, answer)
	}

	res, err := parseEvalResponse(raw, q)
	if err != nil {
		log.Warn("failed to parse LLM evaluation response",
			"question_id", q.ID, "error", err)
		return failedResult(q, answer)
	}
	res.StudentAnswer = answer
	return res
}

// llmEvalResponse mirrors the JSON schema the prompts demand. The marks
// sums inside it are trusted, not re-verified.
type llmEvalResponse struct {
	EarnedMarks     int            `json:"earnedMarks"`
	MaxMarks        int            `json:"maxMarks"`
	IsFullyCorrect  bool           `json:"isFullyCorrect"`
	ExpectedAnswer  string         `json:"expectedAnswer"`
	StudentAnswer   string         `json:"studentAnswer"`
	StepAnalysis    []StepAnalysis `json:"stepAnalysis"`
	OverallFeedback string         `json:"overallFeedback"`
}

func parseEvalResponse(raw string, q exam.MarkedQuestion) (SubjectiveResult, error) {
	var resp llmEvalResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return SubjectiveResult{}, fmt.Errorf("failed to parse evaluation response: %w", err)
	}
	return SubjectiveResult{
		QuestionID:      q.ID,
		EarnedMarks:     resp.EarnedMarks,
		MaxMarks:        q.Marks,
		IsFullyCorrect:  resp.IsFullyCorrect,
		ExpectedAnswer:  resp.ExpectedAnswer,
		StepAnalysis:    resp.StepAnalysis,
		OverallFeedback: resp.OverallFeedback,
	}, nil
}

func zeroResult(q exam.MarkedQuestion) SubjectiveResult {
	return SubjectiveResult{
		QuestionID:     q.ID,
		EarnedMarks:    0,
		MaxMarks:       q.Marks,
		ExpectedAnswer: q.CorrectAnswer,
	}
}

func failedResult(q exam.MarkedQuestion, answer string) SubjectiveResult {
	res := zeroResult(q)
	res.StudentAnswer = answer
	res.OverallFeedback = supportFeedback
	return res
}
