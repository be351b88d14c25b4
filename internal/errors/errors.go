// Package errors provides the shared error taxonomy for the NPS MCP server.
// Every error produced while servicing a tool call maps onto an Envelope
// before it crosses the tool boundary; nothing is surfaced as a protocol
// fault.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// NotFoundError indicates a lookup matched zero upstream records.
// This is a designed outcome, not an upstream failure.
type NotFoundError struct {
	Resource   string // "park", "alert"
	Identifier string // the park code or query that matched nothing
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.Identifier)
	}
	return fmt.Sprintf("not found: %s", e.Identifier)
}

// NewNotFoundError creates a NotFoundError for a lookup that matched nothing.
func NewNotFoundError(resource, identifier string) *NotFoundError {
	return &NotFoundError{Resource: resource, Identifier: identifier}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// InvalidStateCodesError reports jurisdiction codes outside the fixed valid
// set. It carries both the rejected codes and the full valid set so the
// caller can self-correct.
type InvalidStateCodesError struct {
	Invalid []string
	Valid   []string
}

func (e *InvalidStateCodesError) Error() string {
	return fmt.Sprintf("invalid state code(s): %s", strings.Join(e.Invalid, ", "))
}

// UpstreamError indicates the NPS API call failed: transport error, non-2xx
// status, or a malformed response body.
type UpstreamError struct {
	Endpoint   string // upstream resource path, e.g. "/parks"
	StatusCode int    // 0 when no response was received
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("NPS API error %d on %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("NPS API request to %s failed: %s", e.Endpoint, e.Message)
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return stderrors.As(err, &nf)
}

// IsValidation returns true if the error is a ValidationError or an
// InvalidStateCodesError.
func IsValidation(err error) bool {
	var ve *ValidationError
	var sc *InvalidStateCodesError
	return stderrors.As(err, &ve) || stderrors.As(err, &sc)
}

// Envelope is the structured error payload returned through the tool
// boundary. It is always delivered inside a successful transport response.
type Envelope struct {
	Error        string   `json:"error"`
	Message      string   `json:"message,omitempty"`
	InvalidCodes []string `json:"invalidCodes,omitempty"`
	ValidCodes   []string `json:"validCodes,omitempty"`
}

// FromError maps the error taxonomy onto an Envelope. Unknown error types
// map to a generic envelope carrying the error text.
func FromError(err error) Envelope {
	var sc *InvalidStateCodesError
	if stderrors.As(err, &sc) {
		return Envelope{
			Error:        "Invalid state code",
			Message:      fmt.Sprintf("Invalid state code(s): %s", strings.Join(sc.Invalid, ", ")),
			InvalidCodes: sc.Invalid,
			ValidCodes:   sc.Valid,
		}
	}

	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		return Envelope{
			Error:   "Park not found",
			Message: fmt.Sprintf("No park found with code: %s", nf.Identifier),
		}
	}

	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return Envelope{
			Error:   "Invalid arguments",
			Message: ve.Error(),
		}
	}

	var ue *UpstreamError
	if stderrors.As(err, &ue) {
		return Envelope{
			Error:   "NPS API request failed",
			Message: ue.Message,
		}
	}

	return Envelope{
		Error:   "Request failed",
		Message: err.Error(),
	}
}
