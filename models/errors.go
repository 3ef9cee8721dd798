package models

// ErrorKind is the closed taxonomy every failure envelope reports. The HTTP
// status is derived from the kind in helper.
type ErrorKind string

const (
	ErrUnauthenticated  ErrorKind = "UNAUTHENTICATED"
	ErrForbidden        ErrorKind = "FORBIDDEN"
	ErrNotFound         ErrorKind = "NOT_FOUND"
	ErrValidationFailed ErrorKind = "VALIDATION_FAILED"
	ErrBadRequest       ErrorKind = "BAD_REQUEST"
	ErrMethodNotAllowed ErrorKind = "METHOD_NOT_ALLOWED"
	ErrConflict         ErrorKind = "CONFLICT"
	ErrInternal         ErrorKind = "INTERNAL_ERROR"
)

// APIError is the error shape services hand back to handlers. Details is
// optional structured context (field-error maps, reasons).
type APIError struct {
	Kind    ErrorKind   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(kind ErrorKind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

func Unauthenticated(message string, details interface{}) *APIError {
	return &APIError{Kind: ErrUnauthenticated, Message: message, Details: details}
}

func Forbidden(message string) *APIError {
	return &APIError{Kind: ErrForbidden, Message: message}
}

func NotFound(message string) *APIError {
	return &APIError{Kind: ErrNotFound, Message: message}
}

func ValidationFailed(details interface{}) *APIError {
	return &APIError{Kind: ErrValidationFailed, Message: "validation failed", Details: details}
}

func BadRequest(message string) *APIError {
	return &APIError{Kind: ErrBadRequest, Message: message}
}

func Conflict(message string) *APIError {
	return &APIError{Kind: ErrConflict, Message: message}
}

func Internal(message string) *APIError {
	return &APIError{Kind: ErrInternal, Message: message}
}
