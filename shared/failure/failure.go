package failure

import (
	"errors"
	"net/http"
)

// FieldError ties a validation message to the form field it concerns.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// BadRequestFromFields returns a new Failure carrying one message per invalid field.
// The leading message is taken from the first field error.
func BadRequestFromFields(fields []FieldError) error {
	msg := "validation failed"
	if len(fields) > 0 {
		msg = fields[0].Message
	}

	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Fields:  fields,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the field errors of an error interface, if any.
func GetFields(err error) []FieldError {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}
