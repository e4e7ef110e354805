package subm

import "github.com/skolapp/backend/srvcerror"

const ErrCodeInvalidSubmission = "invalid_submission"

func ErrMissingExamId() *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeInvalidSubmission,
		"exam id is required",
	)
}

func ErrMissingStudentId() *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeInvalidSubmission,
		"student id is required",
	)
}

func ErrNoAnswers() *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeInvalidSubmission,
		"the submission contains no answers",
	)
}

func ErrNoFilesUploaded() *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeInvalidSubmission,
		"at least one answer-sheet file must be uploaded",
	)
}

const ErrCodeExamHasNoMcq = "exam_has_no_mcq"

func ErrExamHasNoMcq() *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeExamHasNoMcq,
		"the exam has no MCQ questions to score",
	)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func ErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.NewNotFound(
		ErrCodeSubmissionNotFound,
		"the requested submission was not found",
	)
}
