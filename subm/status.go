package subm

// Status is the written-submission pipeline state. There is exactly one
// terminal success state; transitions only ever move forward.
type Status string

const (
	StatusPendingEvaluation Status = "pending_evaluation"
	StatusOcrProcessing     Status = "ocr_processing"
	StatusEvaluating        Status = "evaluating"
	StatusCompleted         Status = "completed"
	StatusFailed            Status = "failed"
)

var statusRank = map[Status]int{
	StatusPendingEvaluation: 0,
	StatusOcrProcessing:     1,
	StatusEvaluating:        2,
	StatusCompleted:         3,
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo reports whether next is a legal forward transition.
// Failed is reachable from any non-terminal state; a terminal state allows
// nothing.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusFailed {
		return true
	}
	curRank, ok := statusRank[s]
	if !ok {
		return false
	}
	nextRank, ok := statusRank[next]
	if !ok {
		return false
	}
	return nextRank > curRank
}
