package subm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForwardTransitions(t *testing.T) {
	assert.True(t, StatusPendingEvaluation.CanTransitionTo(StatusOcrProcessing))
	assert.True(t, StatusOcrProcessing.CanTransitionTo(StatusEvaluating))
	assert.True(t, StatusEvaluating.CanTransitionTo(StatusCompleted))

	// skipping ahead is still forward
	assert.True(t, StatusPendingEvaluation.CanTransitionTo(StatusCompleted))
}

func TestStatusNoRegression(t *testing.T) {
	assert.False(t, StatusEvaluating.CanTransitionTo(StatusOcrProcessing))
	assert.False(t, StatusOcrProcessing.CanTransitionTo(StatusPendingEvaluation))
	assert.False(t, StatusEvaluating.CanTransitionTo(StatusEvaluating))
}

func TestStatusFailedFromAnyNonTerminal(t *testing.T) {
	assert.True(t, StatusPendingEvaluation.CanTransitionTo(StatusFailed))
	assert.True(t, StatusOcrProcessing.CanTransitionTo(StatusFailed))
	assert.True(t, StatusEvaluating.CanTransitionTo(StatusFailed))
}

func TestStatusTerminalAllowsNothing(t *testing.T) {
	assert.False(t, StatusCompleted.CanTransitionTo(StatusFailed))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusEvaluating))
	assert.False(t, StatusFailed.CanTransitionTo(StatusPendingEvaluation))
	assert.False(t, StatusFailed.CanTransitionTo(StatusCompleted))

	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.False(t, StatusEvaluating.IsTerminal())
}
