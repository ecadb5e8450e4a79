package pkg

import "dealflow/internal/domain/domainerr"

// AppError is the error envelope returned by every HTTP endpoint.
//
// Err keeps the underlying cause for logging; it is never serialized.
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Fields     []domainerr.FieldError `json:"fields,omitempty"`
	HTTPStatus int                    `json:"-"`
	Err        error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewValidationError lists every offending field under VALIDATION_FAILED.
func NewValidationError(message string, fields []domainerr.FieldError, httpStatus int) *AppError {
	return &AppError{Code: "VALIDATION_FAILED", Message: message, Fields: fields, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Error HTTPErrorBody `json:"error"`
}

type HTTPErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Fields  []domainerr.FieldError `json:"fields,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: HTTPErrorBody{Code: e.Code, Message: e.Message, Fields: e.Fields}}
}
