package exam

import "github.com/skolapp/backend/srvcerror"

const ErrCodeExamNotFound = "exam_not_found"

func ErrExamNotFound() *srvcerror.Error {
	return srvcerror.NewNotFound(
		ErrCodeExamNotFound,
		"the requested exam was not found",
	)
}
