package assess

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/katerynabilinska11/ProjectRiskAnalyzer/internal/llm"
)

const (
	ErrorCodeValidation     = "validation_error"
	ErrorCodeUpstream       = "upstream_error"
	ErrorCodeTimeout        = "upstream_timeout"
	ErrorCodeSchemaMismatch = "schema_mismatch"
	ErrorCodeInternal       = "internal_error"
)

// ValidationError reports client input rejected before any provider call.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func newWordCountError(got, min int) *ValidationError {
	return &ValidationError{
		msg: fmt.Sprintf("project description must contain at least %d words (got %d)", min, got),
	}
}

// UpstreamError wraps a provider transport or API failure. The message is
// the provider error verbatim so clients see what the provider reported.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }
func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError reports a completion that did not match the output contract.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// ClassifyError maps a pipeline error to an error code and HTTP status.
func ClassifyError(err error) (string, int) {
	var validationErr *ValidationError
	var parseErr *ParseError
	var upstreamErr *UpstreamError
	switch {
	case errors.As(err, &validationErr):
		return ErrorCodeValidation, http.StatusBadRequest
	case errors.Is(err, llm.ErrTimeout):
		return ErrorCodeTimeout, http.StatusGatewayTimeout
	case errors.Is(err, llm.ErrNotConfigured):
		return ErrorCodeInternal, http.StatusInternalServerError
	case errors.As(err, &parseErr):
		return ErrorCodeSchemaMismatch, http.StatusUnprocessableEntity
	case errors.As(err, &upstreamErr):
		return ErrorCodeUpstream, http.StatusBadGateway
	default:
		return ErrorCodeInternal, http.StatusInternalServerError
	}
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
