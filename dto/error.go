package dto

import "github.com/prodcat-api/validation"

// ErrorResponse is the failure envelope: a summary message plus a
// field-keyed map of ordered error messages.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  validation.Errors `json:"errors"`
}

// NewError builds an envelope from validation errors.
func NewError(message string, errs validation.Errors) ErrorResponse {
	return ErrorResponse{Message: message, Errors: errs}
}

// NewFieldError builds an envelope holding a single message under one field.
func NewFieldError(message, field, detail string) ErrorResponse {
	return ErrorResponse{
		Message: message,
		Errors:  validation.Errors{field: {detail}},
	}
}
