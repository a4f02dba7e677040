package esp

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindUnauthorized  Kind = "unauthorized"
	KindRateLimited   Kind = "rate_limited"
	KindNotFound      Kind = "not_found"
	KindProviderError Kind = "provider_error"
	KindNetwork       Kind = "network"
	KindUnknown       Kind = "unknown"
)

const (
	rateLimitedMessage = "Rate limit exceeded. Please try again later."
	notFoundMessage    = "Resource not found"
	networkMessage     = "Network error. Please check your connection."
	unknownMessage     = "An unexpected error occurred"
)

// Error is a provider failure translated into the uniform {message, statusCode} shape.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("esp %s (%d): %s", e.Kind, e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// statusError means the provider answered with a 4xx/5xx.
type statusError struct {
	StatusCode int
	Message    string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, message: %s", e.StatusCode, e.Message)
}

// networkError means the request never got a response.
type networkError struct {
	Err error
}

func (e *networkError) Error() string {
	return fmt.Sprintf("do request: %v", e.Err)
}

func (e *networkError) Unwrap() error {
	return e.Err
}

type classifyRules struct {
	unauthorizedMessage string
	fallbackMessage     string
	mapNotFound         bool
}

func classify(err error, rules classifyRules) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden:
			return &Error{Kind: KindUnauthorized, StatusCode: http.StatusUnauthorized, Message: rules.unauthorizedMessage, Err: err}
		case statusErr.StatusCode == http.StatusTooManyRequests:
			return &Error{Kind: KindRateLimited, StatusCode: http.StatusTooManyRequests, Message: rateLimitedMessage, Err: err}
		case statusErr.StatusCode == http.StatusNotFound && rules.mapNotFound:
			return &Error{Kind: KindNotFound, StatusCode: http.StatusNotFound, Message: notFoundMessage, Err: err}
		default:
			message := statusErr.Message
			if message == "" {
				message = rules.fallbackMessage
			}
			return &Error{Kind: KindProviderError, StatusCode: statusErr.StatusCode, Message: message, Err: err}
		}
	}

	var netErr *networkError
	if errors.As(err, &netErr) {
		return &Error{Kind: KindNetwork, StatusCode: http.StatusServiceUnavailable, Message: networkMessage, Err: err}
	}

	return &Error{Kind: KindUnknown, StatusCode: http.StatusInternalServerError, Message: unknownMessage, Err: err}
}
