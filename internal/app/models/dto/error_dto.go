package dto

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeAlreadyExists   ErrorCode = "ALREADY_EXISTS"
	ErrorCodeInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrorCodeDependencyError ErrorCode = "DEPENDENCY_ERROR"
	ErrorCodeInternalServer  ErrorCode = "INTERNAL_ERROR"
	ErrorCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    ErrorCode   `json:"code" example:"NOT_FOUND"`
	Message string      `json:"message" example:"Escola com ID 42 não encontrada."`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}
