package rubric_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/rubric"
	"github.com/skolapp/backend/srvcerror"
)

func setupRubricSrvc(t *testing.T) (*rubric.Srvc, *exam.Exam) {
	t.Helper()

	ex := exam.Exam{
		ID:      "exam1",
		Subject: "Mathematics",
		Grade:   8,
		Chapter: "Algebra",
		Parts: []exam.Part{
			{
				Title:            "Part A",
				Kind:             exam.KindMcq,
				MarksPerQuestion: 1,
				Questions: []exam.Question{
					{ID: "q1", Text: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4"},
				},
			},
			{
				Title:            "Part B",
				Kind:             exam.KindSubjective,
				MarksPerQuestion: 5,
				Questions: []exam.Question{
					{ID: "q2", Text: "Solve x+3=7", CorrectAnswer: "x = 4"},
				},
			},
		},
	}

	exams := exam.NewInMemRepo()
	require.NoError(t, exams.Store(context.Background(), ex))
	return rubric.NewSrvc(exams, rubric.NewInMemRepo()), &ex
}

func TestPutAndGetRubric(t *testing.T) {
	srvc, _ := setupRubricSrvc(t)
	ctx := context.Background()

	rub := rubric.Rubric{
		ExamID:     "exam1",
		QuestionID: "q2",
		Steps: []rubric.Step{
			{Number: 1, Description: "Isolate x", Marks: 2},
			{Number: 2, Description: "Compute the value", Marks: 2},
			{Number: 3, Description: "State the answer", Marks: 1},
		},
	}
	require.NoError(t, srvc.Put(ctx, rub))

	got, err := srvc.Get(ctx, "exam1", "q2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rub.Steps, got.Steps)
}

func TestPutRejectsWrongSum(t *testing.T) {
	srvc, _ := setupRubricSrvc(t)

	rub := rubric.Rubric{
		ExamID:     "exam1",
		QuestionID: "q2",
		Steps: []rubric.Step{
			{Number: 1, Description: "Isolate x", Marks: 2},
			{Number: 2, Description: "State the answer", Marks: 2},
		},
	}
	err := srvc.Put(context.Background(), rub)
	require.Error(t, err)

	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, 400, srvcErr.HttpStatusCode())

	// nothing was saved
	got, err := srvc.Get(context.Background(), "exam1", "q2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPutRejectsZeroMarkStep(t *testing.T) {
	srvc, _ := setupRubricSrvc(t)

	rub := rubric.Rubric{
		ExamID:     "exam1",
		QuestionID: "q2",
		Steps: []rubric.Step{
			{Number: 1, Description: "Isolate x", Marks: 5},
			{Number: 2, Description: "Free step", Marks: 0},
		},
	}
	assert.Error(t, srvc.Put(context.Background(), rub))
}

func TestPutRejectsMcqQuestion(t *testing.T) {
	srvc, _ := setupRubricSrvc(t)

	rub := rubric.Rubric{
		ExamID:     "exam1",
		QuestionID: "q1",
		Steps:      []rubric.Step{{Number: 1, Description: "Pick the option", Marks: 1}},
	}
	assert.Error(t, srvc.Put(context.Background(), rub))
}

func TestPutUnknownExamAndQuestion(t *testing.T) {
	srvc, _ := setupRubricSrvc(t)

	rub := rubric.Rubric{
		ExamID:     "nope",
		QuestionID: "q2",
		Steps:      []rubric.Step{{Number: 1, Description: "Work", Marks: 5}},
	}
	assert.Error(t, srvc.Put(context.Background(), rub))

	rub.ExamID = "exam1"
	rub.QuestionID = "q99"
	assert.Error(t, srvc.Put(context.Background(), rub))
}
