package evalsrvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAnswersNumberedMarkers(t *testing.T) {
	text := "1. The answer is photosynthesis\n2) Water boils at 100 degrees"
	answers := SplitAnswers(text, 2)
	assert.Equal(t, "The answer is photosynthesis", answers[0])
	assert.Equal(t, "Water boils at 100 degrees", answers[1])
}

func TestSplitAnswersQuestionPrefix(t *testing.T) {
	text := "Q1 energy cannot be created\nQuestion 2. it can only change form"
	answers := SplitAnswers(text, 2)
	assert.Equal(t, "energy cannot be created", answers[0])
	assert.Equal(t, "it can only change form", answers[1])
}

func TestSplitAnswersMultilineChunks(t *testing.T) {
	text := "1. first line\nsecond line of same answer\n2. next answer"
	answers := SplitAnswers(text, 2)
	assert.Equal(t, "first line\nsecond line of same answer", answers[0])
	assert.Equal(t, "next answer", answers[1])
}

func TestSplitAnswersNoMarkers(t *testing.T) {
	text := "one big blob of handwriting without numbering"
	answers := SplitAnswers(text, 3)
	for _, a := range answers {
		assert.Equal(t, text, a)
	}
}

func TestSplitAnswersFewerChunksThanQuestions(t *testing.T) {
	answers := SplitAnswers("1. only one answer", 3)
	assert.Equal(t, "only one answer", answers[0])
	assert.Empty(t, answers[1])
	assert.Empty(t, answers[2])
}

func TestSplitAnswersEmptyText(t *testing.T) {
	answers := SplitAnswers("   ", 2)
	assert.Len(t, answers, 2)
	assert.Empty(t, answers[0])
	assert.Empty(t, answers[1])
}

func TestSplitAnswersBareNumberNeedsPunctuation(t *testing.T) {
	// "42" mid-text must not start a new answer
	text := "1. the answer is\n42 apples\n2. done"
	answers := SplitAnswers(text, 2)
	assert.Equal(t, "the answer is\n42 apples", answers[0])
	assert.Equal(t, "done", answers[1])
}
