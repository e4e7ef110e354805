package subm_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skolapp/backend/evalsrvc"
	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/rubric"
	"github.com/skolapp/backend/sheetstore"
	"github.com/skolapp/backend/srvcerror"
	"github.com/skolapp/backend/subm"
)

// stubOcr returns fixed text for any file set.
type stubOcr struct {
	text string
	fail bool
}

func (o *stubOcr) ExtractText(ctx context.Context, fileKeys []string) (string, error) {
	if o.fail {
		return "", errors.New("vision model unavailable")
	}
	return o.text, nil
}

// stubLlm awards marks from a fixed sequence, one entry per call.
type stubLlm struct {
	awards []int
	calls  int
}

func (s *stubLlm) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	award := 0
	if s.calls < len(s.awards) {
		award = s.awards[s.calls]
	}
	s.calls++
	body, _ := json.Marshal(map[string]any{
		"earnedMarks":     award,
		"isFullyCorrect":  false,
		"expectedAnswer":  "model answer",
		"stepAnalysis":    []any{},
		"overallFeedback": "graded",
	})
	return string(body), nil
}

// scienceExam has 5 one-mark MCQ questions and 2 five-mark subjective ones.
func scienceExam() exam.Exam {
	mcqPart := exam.Part{
		Title:            "Part A",
		Kind:             exam.KindMcq,
		MarksPerQuestion: 1,
	}
	for i := 1; i <= 5; i++ {
		mcqPart.Questions = append(mcqPart.Questions, exam.Question{
			ID:            fmt.Sprintf("q%d", i),
			Text:          fmt.Sprintf("MCQ %d", i),
			Options:       []string{"Alpha", "Beta", "Gamma", "Delta"},
			CorrectAnswer: "Beta",
		})
	}
	return exam.Exam{
		ID:      "exam1",
		Subject: "Science",
		Grade:   7,
		Chapter: "Energy",
		Parts: []exam.Part{
			mcqPart,
			{
				Title:            "Part B",
				Kind:             exam.KindSubjective,
				MarksPerQuestion: 5,
				Questions: []exam.Question{
					{ID: "q6", Text: "Explain conservation of energy", CorrectAnswer: "Energy cannot be created or destroyed."},
					{ID: "q7", Text: "Explain kinetic energy", CorrectAnswer: "Energy of motion, E = mv^2/2."},
				},
			},
		},
	}
}

type fixture struct {
	srvc    *subm.SubmSrvc
	written *subm.InMemWrittenRepo
	evals   *subm.InMemEvalRepo
	ocr     *stubOcr
	llm     *stubLlm
}

func setupSubmSrvc(t *testing.T) *fixture {
	t.Helper()

	exams := exam.NewInMemRepo()
	require.NoError(t, exams.Store(context.Background(), scienceExam()))

	f := &fixture{
		written: subm.NewInMemWrittenRepo(),
		evals:   subm.NewInMemEvalRepo(),
		ocr:     &stubOcr{},
		llm:     &stubLlm{awards: []int{3, 4}},
	}
	evaluator := evalsrvc.NewSubjectiveEvaluator(f.llm, rubric.NewInMemRepo())
	f.srvc = subm.NewSubmSrvc(
		exams,
		subm.NewInMemMcqRepo(),
		f.written,
		f.evals,
		sheetstore.NewInMemSheetStore(),
		subm.NewChanQueue(16),
		f.ocr,
		evaluator,
		nil,
	)
	return f
}

func TestSubmitMcqScoring(t *testing.T) {
	f := setupSubmSrvc(t)
	ctx := context.Background()

	res, err := f.srvc.SubmitMcq(ctx, "exam1", "stu1", []subm.McqAnswer{
		{QuestionID: "q1", SelectedOption: "beta"},  // correct, case-insensitive
		{QuestionID: "q2", SelectedOption: "Beta"},  // correct
		{QuestionID: "q3", SelectedOption: "Alpha"}, // wrong
		{QuestionID: "q99", SelectedOption: "Beta"}, // unknown id, skipped
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 5, res.TotalMarks) // all exam MCQs count, answered or not
	require.Len(t, res.Results, 3)
	assert.True(t, res.Results[0].IsCorrect)
	assert.True(t, res.Results[1].IsCorrect)
	assert.False(t, res.Results[2].IsCorrect)
}

func TestSubmitMcqOverwrite(t *testing.T) {
	f := setupSubmSrvc(t)
	ctx := context.Background()

	_, err := f.srvc.SubmitMcq(ctx, "exam1", "stu1", []subm.McqAnswer{
		{QuestionID: "q1", SelectedOption: "Alpha"},
	})
	require.NoError(t, err)

	res, err := f.srvc.SubmitMcq(ctx, "exam1", "stu1", []subm.McqAnswer{
		{QuestionID: "q1", SelectedOption: "Beta"},
		{QuestionID: "q2", SelectedOption: "Beta"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Score)
	assert.Len(t, res.Results, 2)
}

func TestSubmitMcqValidation(t *testing.T) {
	f := setupSubmSrvc(t)
	ctx := context.Background()

	_, err := f.srvc.SubmitMcq(ctx, "", "stu1", []subm.McqAnswer{{QuestionID: "q1", SelectedOption: "Beta"}})
	assertHttpStatus(t, err, 400)

	_, err = f.srvc.SubmitMcq(ctx, "exam1", "", []subm.McqAnswer{{QuestionID: "q1", SelectedOption: "Beta"}})
	assertHttpStatus(t, err, 400)

	_, err = f.srvc.SubmitMcq(ctx, "exam1", "stu1", nil)
	assertHttpStatus(t, err, 400)

	_, err = f.srvc.SubmitMcq(ctx, "ghost", "stu1", []subm.McqAnswer{{QuestionID: "q1", SelectedOption: "Beta"}})
	assertHttpStatus(t, err, 404)
}

func TestUploadWrittenNoFiles(t *testing.T) {
	f := setupSubmSrvc(t)
	ctx := context.Background()

	_, err := f.srvc.UploadWritten(ctx, "exam1", "stu1", nil)
	assertHttpStatus(t, err, 400)

	// no record was created
	got, repoErr := f.written.GetByExamStudent(ctx, "exam1", "stu1")
	require.NoError(t, repoErr)
	assert.Nil(t, got)
}

func TestUploadWrittenUnknownExam(t *testing.T) {
	f := setupSubmSrvc(t)

	_, err := f.srvc.UploadWritten(context.Background(), "ghost", "stu1", []subm.UploadFile{
		{Filename: "sheet.jpg", Content: []byte("img")},
	})
	assertHttpStatus(t, err, 404)
}

func TestUploadAndProcessWritten(t *testing.T) {
	f := setupSubmSrvc(t)
	ctx := context.Background()
	f.ocr.text = "1. Energy cannot be created or destroyed, only transformed.\n" +
		"2. Kinetic energy is the energy of motion."

	uploaded, err := f.srvc.UploadWritten(ctx, "exam1", "stu1", []subm.UploadFile{
		{Filename: "page1.jpg", Content: []byte("img")},
	})
	require.NoError(t, err)
	assert.Equal(t, subm.StatusPendingEvaluation, uploaded.Status)

	require.NoError(t, f.srvc.Process(ctx, uploaded.ID))

	got, err := f.srvc.GetStatus(ctx, uploaded.ID)
	require.NoError(t, err)
	assert.Equal(t, subm.StatusCompleted, got.Status)
	assert.Equal(t, 7, got.TotalScore) // 3 + 4 from the two subjective answers
	assert.Equal(t, 10, got.TotalMarks)
	assert.Equal(t, 70.0, got.Percentage)
	assert.Equal(t, "B+", got.Grade)
	require.NotNil(t, got.EvaluatedAt)

	eval, err := f.evals.GetBySubm(ctx, uploaded.ID)
	require.NoError(t, err)
	require.NotNil(t, eval)
	require.Len(t, eval.Subjective, 2)
	assert.Nil(t, eval.SheetMcq) // no letter-only answer lines on this sheet
}

func TestProcessExtractsSheetMcq(t *testing.T) {
	f := setupSubmSrvc(t)
	ctx := context.Background()
	f.ocr.text = "1. b\n2. b\n3. a\n4. b\n5. c"

	uploaded, err := f.srvc.UploadWritten(ctx, "exam1", "stu1", []subm.UploadFile{
		{Filename: "page1.jpg", Content: []byte("img")},
	})
	require.NoError(t, err)
	require.NoError(t, f.srvc.Process(ctx, uploaded.ID))

	eval, err := f.evals.GetBySubm(ctx, uploaded.ID)
	require.NoError(t, err)
	require.NotNil(t, eval)
	require.NotNil(t, eval.SheetMcq)
	assert.Equal(t, 3, eval.SheetMcq.Score) // q1, q2, q4 answered B
	assert.Equal(t, 5, eval.SheetMcq.TotalMarks)
	assert.Equal(t, 1.0, eval.SheetMcq.Confidence)
}

func TestProcessIsIdempotentOnTerminal(t *testing.T) {
	f := setupSubmSrvc(t)
	ctx := context.Background()
	f.ocr.text = "1. answer one\n2. answer two"

	uploaded, err := f.srvc.UploadWritten(ctx, "exam1", "stu1", []subm.UploadFile{
		{Filename: "page1.jpg", Content: []byte("img")},
	})
	require.NoError(t, err)
	require.NoError(t, f.srvc.Process(ctx, uploaded.ID))
	callsAfterFirst := f.llm.calls

	require.NoError(t, f.srvc.Process(ctx, uploaded.ID))
	assert.Equal(t, callsAfterFirst, f.llm.calls)
}

func TestProcessOcrFailureMarksFailed(t *testing.T) {
	f := setupSubmSrvc(t)
	ctx := context.Background()
	f.ocr.fail = true

	uploaded, err := f.srvc.UploadWritten(ctx, "exam1", "stu1", []subm.UploadFile{
		{Filename: "page1.jpg", Content: []byte("img")},
	})
	require.NoError(t, err)

	require.Error(t, f.srvc.Process(ctx, uploaded.ID))

	got, err := f.srvc.GetStatus(ctx, uploaded.ID)
	require.NoError(t, err)
	assert.Equal(t, subm.StatusFailed, got.Status)
	// the stored message carries the actual cause, not a canned string
	assert.Contains(t, got.ErrorMsg, "vision model unavailable")
}

func TestWorkersDrainQueue(t *testing.T) {
	f := setupSubmSrvc(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.ocr.text = "1. answer one\n2. answer two"

	go f.srvc.RunWorkers(ctx, 2)

	uploaded, err := f.srvc.UploadWritten(ctx, "exam1", "stu1", []subm.UploadFile{
		{Filename: "page1.jpg", Content: []byte("img")},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := f.written.Get(context.Background(), uploaded.ID)
		return err == nil && got != nil && got.Status == subm.StatusCompleted
	}, 5*time.Second, 10*time.Millisecond)
}

func TestGetStatusNotFound(t *testing.T) {
	f := setupSubmSrvc(t)

	id, err := uuid.NewV7()
	require.NoError(t, err)
	_, err = f.srvc.GetStatus(context.Background(), id)
	assertHttpStatus(t, err, 404)
}

func assertHttpStatus(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, want, srvcErr.HttpStatusCode())
}
