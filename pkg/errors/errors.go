package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error represents a structured application error following RFC 9457 (Problem Details)
type Error struct {
	// Type is a URI reference that identifies the error type
	Type string `json:"type"`

	// Title is a short, human-readable summary of the error
	Title string `json:"title"`

	// Status is the HTTP status code (used for categorization)
	Status int `json:"status"`

	// Detail is a human-readable explanation specific to this occurrence
	Detail string `json:"detail,omitempty"`

	// Code is an application-specific error code
	Code ErrorCode `json:"code"`

	// Cause is the underlying error that caused this error
	Cause error `json:"-"`

	// Fields contains additional context
	Fields map[string]interface{} `json:"fields,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Title, e.Detail)
	}
	return e.Title
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds detail to the error
func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	if e.Detail == "" && cause != nil {
		e.Detail = cause.Error()
	}
	return e
}

// WithField adds a field to the error context
func (e *Error) WithField(key string, value interface{}) *Error {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields adds multiple fields to the error context
func (e *Error) WithFields(fields map[string]interface{}) *Error {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// MarshalJSON implements json.Marshaler
func (e *Error) MarshalJSON() ([]byte, error) {
	type Alias Error
	var causeMsg string
	if e.Cause != nil {
		causeMsg = e.Cause.Error()
	}
	return json.Marshal(&struct {
		*Alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		Alias:    (*Alias)(e),
		CauseMsg: causeMsg,
	})
}

// New creates a new Error
func New(code ErrorCode, title string) *Error {
	info := GetErrorInfo(code)
	return &Error{
		Type:   info.Type,
		Title:  title,
		Status: info.Status,
		Code:   code,
		Fields: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(code ErrorCode, cause error, title string) *Error {
	return New(code, title).WithCause(cause)
}

// Is checks if the error carries a specific code
func Is(err error, code ErrorCode) bool {
	var appErr *Error
	if As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// As walks the error chain looking for an application Error
func As(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			err = unwrapper.Unwrap()
		} else {
			break
		}
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	var appErr *Error
	if As(err, &appErr) {
		return appErr.Code
	}
	return ErrUnknown
}

// Redact creates a sanitized version of the error for external display.
// Credential material must never leak through error context.
func (e *Error) Redact() *Error {
	redacted := &Error{
		Type:   e.Type,
		Title:  e.Title,
		Status: e.Status,
		Code:   e.Code,
		Fields: make(map[string]interface{}),
	}

	for k, v := range e.Fields {
		if !isSensitiveField(k) {
			redacted.Fields[k] = v
		}
	}

	return redacted
}

// isSensitiveField checks if a field name indicates sensitive data
func isSensitiveField(field string) bool {
	sensitive := []string{
		"secret", "token", "key", "credential", "signature_secret",
		"api_secret", "private_key", "password",
	}

	field = strings.ToLower(field)
	for _, s := range sensitive {
		if field == s {
			return true
		}
	}
	return false
}
