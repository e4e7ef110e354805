package evalsrvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skolapp/backend/exam"
)

func TestExtractMcqMixedFormats(t *testing.T) {
	text := "1. B\nQ2: (c)\n3) ans: D\nsome working that mentions 7 apples\n4 - a"
	extraction := ExtractMcq(text, 5)

	require.Len(t, extraction.Guesses, 4)
	assert.Equal(t, McqGuess{QuestionNumber: 1, Option: "B"}, extraction.Guesses[0])
	assert.Equal(t, McqGuess{QuestionNumber: 2, Option: "C"}, extraction.Guesses[1])
	assert.Equal(t, McqGuess{QuestionNumber: 3, Option: "D"}, extraction.Guesses[2])
	assert.Equal(t, McqGuess{QuestionNumber: 4, Option: "A"}, extraction.Guesses[3])
	assert.InDelta(t, 0.8, extraction.Confidence, 1e-9)
}

func TestExtractMcqDuplicatesKeepFirst(t *testing.T) {
	extraction := ExtractMcq("1. B\n1. C", 2)
	require.Len(t, extraction.Guesses, 1)
	assert.Equal(t, "B", extraction.Guesses[0].Option)
}

func TestExtractMcqIgnoresProse(t *testing.T) {
	text := "The mitochondria is the powerhouse of the cell.\nBecause 3 plus 4 equals 7."
	extraction := ExtractMcq(text, 3)
	assert.Empty(t, extraction.Guesses)
	assert.Zero(t, extraction.Confidence)
}

func TestExtractMcqConfidenceCapped(t *testing.T) {
	extraction := ExtractMcq("1. A\n2. B\n3. C", 2)
	assert.Equal(t, 1.0, extraction.Confidence)
}

func mcqExam() *exam.Exam {
	return &exam.Exam{
		ID:      "exam1",
		Subject: "Science",
		Grade:   7,
		Chapter: "Plants",
		Parts: []exam.Part{
			{
				Title:            "Part A",
				Kind:             exam.KindMcq,
				MarksPerQuestion: 1,
				Questions: []exam.Question{
					{ID: "q1", Text: "?", Options: []string{"Root", "Stem", "Leaf", "Flower"}, CorrectAnswer: "Leaf"},
					{ID: "q2", Text: "?", Options: []string{"Red", "Green", "Blue", "Yellow"}, CorrectAnswer: "Green"},
				},
			},
		},
	}
}

func TestEvaluateSheet(t *testing.T) {
	ex := mcqExam()
	extraction := McqExtraction{
		Guesses: []McqGuess{
			{QuestionNumber: 1, Option: "C"}, // Leaf, correct
			{QuestionNumber: 2, Option: "A"}, // Red, wrong
			{QuestionNumber: 9, Option: "B"}, // unknown number, dropped
		},
		Confidence: 1,
	}

	eval := EvaluateSheet(ex, extraction)
	require.Len(t, eval.Answers, 2)
	assert.True(t, eval.Answers[0].IsCorrect)
	assert.Equal(t, "Leaf", eval.Answers[0].SelectedOption)
	assert.False(t, eval.Answers[1].IsCorrect)
	assert.Equal(t, "Red", eval.Answers[1].SelectedOption)
	assert.Equal(t, 1, eval.Score)
	assert.Equal(t, 2, eval.TotalMarks)
}

func TestResolveOptionOutOfRangeKeepsLetter(t *testing.T) {
	ex := mcqExam()
	extraction := McqExtraction{Guesses: []McqGuess{{QuestionNumber: 1, Option: "F"}}}

	eval := EvaluateSheet(ex, extraction)
	require.Len(t, eval.Answers, 1)
	assert.Equal(t, "F", eval.Answers[0].SelectedOption)
	assert.False(t, eval.Answers[0].IsCorrect)
}

func TestEvaluateSheetCountsUnansweredInTotal(t *testing.T) {
	ex := mcqExam()
	extraction := McqExtraction{
		Guesses:    []McqGuess{{QuestionNumber: 1, Option: "C"}}, // Leaf, correct
		Confidence: 0.5,
	}

	eval := EvaluateSheet(ex, extraction)
	require.Len(t, eval.Answers, 1)
	assert.Equal(t, 1, eval.Score)
	// same denominator as a direct MCQ submission: every exam MCQ counts
	assert.Equal(t, 2, eval.TotalMarks)
}
