package careers

import (
	"fmt"
	"net/http"
)

// Error codes for the recommendation pipeline.
const (
	CodeConfiguration    = "configuration_error"
	CodeAuthentication   = "authentication_error"
	CodeQuota            = "quota_error"
	CodeRateLimit        = "rate_limit_error"
	CodeUpstream         = "upstream_error"
	CodeUpstreamShape    = "upstream_shape_error"
	CodeResponseParse    = "response_parse_error"
	CodeIncompleteResult = "incomplete_result_error"
	CodeUnexpected       = "unexpected_error"
)

// ServiceError is the typed failure returned by the recommendation service.
// Status is the HTTP status the handler should surface; Message is the
// client-facing error text; Details carries optional diagnostics.
type ServiceError struct {
	Code    string
	Status  int
	Message string
	Details string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func errConfiguration() *ServiceError {
	return &ServiceError{
		Code:    CodeConfiguration,
		Status:  http.StatusInternalServerError,
		Message: "API key not configured. Please set OPENROUTER_API_KEY in the environment",
	}
}

func errAuthentication() *ServiceError {
	return &ServiceError{
		Code:    CodeAuthentication,
		Status:  http.StatusUnauthorized,
		Message: "Invalid API key. Please check your OPENROUTER_API_KEY",
	}
}

func errQuota() *ServiceError {
	return &ServiceError{
		Code:    CodeQuota,
		Status:  http.StatusPaymentRequired,
		Message: "Insufficient credits. Please add credits to your OpenRouter account",
	}
}

func errRateLimit() *ServiceError {
	return &ServiceError{
		Code:    CodeRateLimit,
		Status:  http.StatusTooManyRequests,
		Message: "Rate limit exceeded. Please wait a moment and try again.",
	}
}

func errUpstream(status int, upstreamMessage string) *ServiceError {
	return &ServiceError{
		Code:    CodeUpstream,
		Status:  status,
		Message: fmt.Sprintf("OpenRouter API error: %d - %s", status, upstreamMessage),
	}
}

func errUpstreamShape() *ServiceError {
	return &ServiceError{
		Code:    CodeUpstreamShape,
		Status:  http.StatusInternalServerError,
		Message: "Invalid response from AI. Please try again.",
	}
}

func errResponseParse(rawExcerpt string) *ServiceError {
	return &ServiceError{
		Code:    CodeResponseParse,
		Status:  http.StatusInternalServerError,
		Message: "Failed to parse career recommendations. The AI response was not in the expected format.",
		Details: rawExcerpt,
	}
}

func errIncompleteResult() *ServiceError {
	return &ServiceError{
		Code:    CodeIncompleteResult,
		Status:  http.StatusInternalServerError,
		Message: "Incomplete career recommendations received. Please try again.",
	}
}

func errUnexpected(cause error) *ServiceError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &ServiceError{
		Code:    CodeUnexpected,
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred while generating recommendations",
		Details: details,
	}
}
