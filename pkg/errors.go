package pkg

import "net/http"

// AppError is the error shape handlers translate use case failures into.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    []string
}

// HTTPError is the wire body of every error response.
type HTTPError struct {
	Message string   `json:"message"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainError builds an AppError that keeps the low-level cause.
func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError lists every field violation of a request payload.
func NewValidationError(details []string) *AppError {
	return &AppError{
		Code:       "INVALID_REQUEST",
		Message:    "Dados inválidos",
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// ToHTTPError renders the response body. The cause is only exposed for 5xx
// responses, where it carries the diagnostic text of the failure.
func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Message: e.Message, Errors: e.Details}
	if e.Err != nil && e.HTTPStatus >= http.StatusInternalServerError {
		out.Error = e.Err.Error()
	}
	return out
}
