package examgen

import "github.com/skolapp/backend/srvcerror"

const ErrCodeInvalidGenParams = "invalid_generation_params"

func ErrInvalidGenParams(msg string) *srvcerror.Error {
	return srvcerror.NewValidation(ErrCodeInvalidGenParams, msg)
}

const ErrCodeGenerationFailed = "exam_generation_failed"

func ErrGenerationFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeGenerationFailed,
		"exam generation failed, please try again",
	).SetHttpStatusCode(502)
}
