package apperror

import "net/http"

// AppError is the error type handlers attach to the gin context. Code and
// Message (plus the optional Details) are caller-visible; Err is the wrapped
// cause and is only ever logged.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation marks incomplete or malformed caller input. Never retried.
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Persistence marks a store or mail collaborator failure. The cause is
// logged server-side; the caller only sees the generic message.
func Persistence(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}

// Upstream marks an AI-provider failure. The cause text is exposed to the
// caller in the details field, matching the public chat error contract.
func Upstream(message string, err error) *AppError {
	e := New(http.StatusInternalServerError, message, err)
	if err != nil {
		e.Details = err.Error()
	}
	return e
}
