package tutor

import "github.com/skolapp/backend/srvcerror"

const ErrCodeInvalidChatRequest = "invalid_chat_request"

func ErrMissingExamId() *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeInvalidChatRequest,
		"exam id is required",
	)
}

func ErrEmptyQuestion() *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeInvalidChatRequest,
		"the question must not be empty",
	)
}
