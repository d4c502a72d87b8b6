package apperror

import "net/http"

// ResolutionMessage is the only message a client sees when the landing page cannot be produced.
const ResolutionMessage = "page resolution failed"

type AppError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the cause so errors.Is can match domain sentinels.
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

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation reports a rejected submission. The cause's text is what the caller sees.
func Validation(cause error, details []string) *AppError {
	e := New(http.StatusBadRequest, cause.Error(), cause)
	if len(details) > 0 {
		e.Details = details
	}
	return e
}

// Resolution hides filesystem detail behind a generic 500.
func Resolution(err error) *AppError {
	return New(http.StatusInternalServerError, ResolutionMessage, err)
}
