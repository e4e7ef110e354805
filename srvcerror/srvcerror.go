package srvcerror

import "net/http"

// Error is the service-level error carried from domain packages up to the
// HTTP layer. The message is safe to show to the user; the debug cause is
// logged only.
type Error struct {
	errorCode  string
	msgToUser  string // public
	dbgInfoErr error  // private, for debugging

	httpStatus int // optional, for HTTP responses
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) DebugInfo() error {
	return e.dbgInfoErr
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgInfoErr = err
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}

// NewValidation is a shorthand for a 400 validation error.
func NewValidation(errorCode string, msgToUser string) *Error {
	return New(errorCode, msgToUser).SetHttpStatusCode(http.StatusBadRequest)
}

// NewNotFound is a shorthand for a 404 error.
func NewNotFound(errorCode string, msgToUser string) *Error {
	return New(errorCode, msgToUser).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
