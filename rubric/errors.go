package rubric

import (
	"fmt"

	"github.com/skolapp/backend/srvcerror"
)

const ErrCodeInvalidRubric = "invalid_rubric"

func ErrRubricNoSteps() *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeInvalidRubric,
		"a rubric must have at least one step",
	)
}

func ErrRubricStepMarksBelowOne(stepNumber int) *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeInvalidRubric,
		fmt.Sprintf("rubric step %d is worth less than one mark", stepNumber),
	)
}

func ErrRubricStepsOutOfOrder() *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeInvalidRubric,
		"rubric steps must be numbered sequentially starting from 1",
	)
}

func ErrRubricMarksSumMismatch(sum int, total int) *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeInvalidRubric,
		fmt.Sprintf("rubric step marks sum to %d but the question is worth %d", sum, total),
	)
}

const ErrCodeQuestionNotFound = "question_not_found"

func ErrQuestionNotFound(questionId string) *srvcerror.Error {
	return srvcerror.NewNotFound(
		ErrCodeQuestionNotFound,
		fmt.Sprintf("question %q was not found in the exam", questionId),
	)
}

const ErrCodeRubricForMcq = "rubric_for_mcq_question"

func ErrRubricForMcq(questionId string) *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeRubricForMcq,
		fmt.Sprintf("question %q is an MCQ and cannot have a rubric", questionId),
	)
}
