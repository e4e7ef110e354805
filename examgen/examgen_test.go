package examgen_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/examgen"
	"github.com/skolapp/backend/rubric"
	"github.com/skolapp/backend/srvcerror"
)

// stubLlm replies with a fixed JSON body.
type stubLlm struct {
	reply string
	calls int
}

func (s *stubLlm) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	return s.reply, nil
}

func genReply(t *testing.T) string {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"parts": []map[string]any{
			{
				"title": "Part A",
				"questions": []map[string]any{
					{"question": "What is 2+2?", "options": []string{"3", "4", "5", "6"}, "correctAnswer": "4"},
					{"question": "What is 3+3?", "options": []string{"5", "6", "7", "8"}, "correctAnswer": "6"},
				},
			},
			{
				"title": "Part B",
				"questions": []map[string]any{
					{"question": "Solve x+3=7", "options": []string{}, "correctAnswer": "x = 4"},
				},
			},
		},
	})
	require.NoError(t, err)
	return string(body)
}

func genParams() examgen.Params {
	return examgen.Params{
		Subject: "Mathematics",
		Grade:   6,
		Chapter: "Arithmetic",
		Parts: []examgen.PartPlan{
			{Title: "Part A", TypeLabel: "MCQ", QuestionCount: 2, MarksPerQuestion: 1},
			{Title: "Part B", TypeLabel: "Short Answer", QuestionCount: 1, MarksPerQuestion: 5},
		},
	}
}

func TestGenerate(t *testing.T) {
	llm := &stubLlm{}
	llm.reply = genReply(t)
	exams := exam.NewInMemRepo()
	rubrics := rubric.NewInMemRepo()
	srvc := examgen.NewSrvc(llm, exams, rubrics)

	ex, err := srvc.Generate(context.Background(), genParams())
	require.NoError(t, err)
	require.Len(t, ex.Parts, 2)

	// kinds come from the plan labels, resolved once
	assert.Equal(t, exam.KindMcq, ex.Parts[0].Kind)
	assert.Equal(t, exam.KindSubjective, ex.Parts[1].Kind)

	// question ids are assigned sequentially across parts
	assert.Equal(t, "q1", ex.Parts[0].Questions[0].ID)
	assert.Equal(t, "q2", ex.Parts[0].Questions[1].ID)
	assert.Equal(t, "q3", ex.Parts[1].Questions[0].ID)

	// exam was stored
	stored, err := exams.Get(context.Background(), ex.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// subjective questions got a default rubric summing to their marks
	rub, err := rubrics.Get(context.Background(), ex.ID, "q3")
	require.NoError(t, err)
	require.NotNil(t, rub)
	assert.Equal(t, 5, rub.TotalMarks())

	// mcq questions do not
	rub, err = rubrics.Get(context.Background(), ex.ID, "q1")
	require.NoError(t, err)
	assert.Nil(t, rub)
}

func TestGenerateRejectsBadParams(t *testing.T) {
	srvc := examgen.NewSrvc(&stubLlm{}, exam.NewInMemRepo(), rubric.NewInMemRepo())

	bad := []examgen.Params{
		{Grade: 6, Chapter: "A", Parts: genParams().Parts},
		{Subject: "Math", Grade: 0, Chapter: "A", Parts: genParams().Parts},
		{Subject: "Math", Grade: 6, Parts: genParams().Parts},
		{Subject: "Math", Grade: 6, Chapter: "A"},
		{Subject: "Math", Grade: 6, Chapter: "A",
			Parts: []examgen.PartPlan{{Title: "P", TypeLabel: "MCQ", QuestionCount: 0, MarksPerQuestion: 1}}},
	}
	for i, params := range bad {
		_, err := srvc.Generate(context.Background(), params)
		require.Error(t, err, "case %d", i)
		srvcErr := &srvcerror.Error{}
		require.ErrorAs(t, err, &srvcErr, "case %d", i)
		assert.Equal(t, 400, srvcErr.HttpStatusCode(), "case %d", i)
	}
}

func TestGenerateRejectsWrongShape(t *testing.T) {
	llm := &stubLlm{reply: `{"parts": []}`}
	srvc := examgen.NewSrvc(llm, exam.NewInMemRepo(), rubric.NewInMemRepo())

	_, err := srvc.Generate(context.Background(), genParams())
	require.Error(t, err)
}

func TestGenerateNormalizesCorrectAnswerCasing(t *testing.T) {
	body, err := json.Marshal(map[string]any{
		"parts": []map[string]any{
			{
				"title": "Part A",
				"questions": []map[string]any{
					{"question": "?", "options": []string{"Paris", "London"}, "correctAnswer": "paris"},
				},
			},
		},
	})
	require.NoError(t, err)

	llm := &stubLlm{reply: string(body)}
	srvc := examgen.NewSrvc(llm, exam.NewInMemRepo(), rubric.NewInMemRepo())

	ex, err := srvc.Generate(context.Background(), examgen.Params{
		Subject: "Geography", Grade: 5, Chapter: "Capitals",
		Parts: []examgen.PartPlan{{Title: "Part A", TypeLabel: "MCQ", QuestionCount: 1, MarksPerQuestion: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Paris", ex.Parts[0].Questions[0].CorrectAnswer)
}
