package apperror

import "net/http"

// Error kinds exposed in the API error body. The HTTP status for each kind
// is fixed here so handlers never pick status codes themselves.
const (
	KindValidation        = "ValidationError"
	KindInvalidFileType   = "InvalidFileType"
	KindFileTooLarge      = "FileTooLarge"
	KindStorage           = "StorageError"
	KindCandidateNotFound = "CandidateNotFound"
	KindInternal          = "InternalServerError"
)

// AppError is never marshaled directly; the error middleware renders it
// through response.ErrorBody.
type AppError struct {
	Kind    string
	Code    int
	Message string
	Detail  interface{}
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind string, code int, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetail attaches extra context to be included in the error body.
func (e *AppError) WithDetail(detail interface{}) *AppError {
	e.Detail = detail
	return e
}

func Validation(message string) *AppError {
	return New(KindValidation, http.StatusUnprocessableEntity, message, nil)
}

func InvalidFileType(message string) *AppError {
	return New(KindInvalidFileType, http.StatusBadRequest, message, nil)
}

func FileTooLarge(message string) *AppError {
	return New(KindFileTooLarge, http.StatusRequestEntityTooLarge, message, nil)
}

func Storage(message string, err error) *AppError {
	return New(KindStorage, http.StatusInternalServerError, message, err)
}

func NotFound(message string) *AppError {
	return New(KindCandidateNotFound, http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(KindInternal, http.StatusInternalServerError, "Internal Server Error", err)
}
