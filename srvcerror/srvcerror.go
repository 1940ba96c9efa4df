package srvcerror

import "net/http"

// Error is a service-layer error that carries a stable machine-readable
// code, a message that is safe to show to the client, and an optional
// private debug error that only ends up in logs.
type Error struct {
	errorCode string
	msgToUser string // public
	dbgInfo   error  // private, logged but never returned to the client

	httpStatus int
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) DebugInfo() error {
	return e.dbgInfo
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgInfo = err
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

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
