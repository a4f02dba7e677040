package esp

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	mailchimp := NewMailchimpClient("key-us1")
	getResponse := NewGetResponseClient("key")

	tests := []struct {
		name        string
		client      Client
		err         error
		wantKind    Kind
		wantStatus  int
		wantMessage string
	}{
		{"mailchimp 401", mailchimp, &statusError{StatusCode: 401}, KindUnauthorized, 401, "Invalid API key"},
		{"mailchimp 403", mailchimp, &statusError{StatusCode: 403, Message: "Forbidden"}, KindUnauthorized, 401, "Invalid API key"},
		{"getresponse 401", getResponse, &statusError{StatusCode: 401}, KindUnauthorized, 401, "Invalid API key or unauthorized access"},
		{"getresponse 403", getResponse, &statusError{StatusCode: 403}, KindUnauthorized, 401, "Invalid API key or unauthorized access"},
		{"mailchimp 429", mailchimp, &statusError{StatusCode: 429}, KindRateLimited, 429, "Rate limit exceeded. Please try again later."},
		{"getresponse 429", getResponse, &statusError{StatusCode: 429}, KindRateLimited, 429, "Rate limit exceeded. Please try again later."},
		{"getresponse 404", getResponse, &statusError{StatusCode: 404, Message: "gone"}, KindNotFound, 404, "Resource not found"},
		{"mailchimp 404 passes through", mailchimp, &statusError{StatusCode: 404, Message: "The requested resource could not be found."}, KindProviderError, 404, "The requested resource could not be found."},
		{"mailchimp 500 with message", mailchimp, &statusError{StatusCode: 500, Message: "boom"}, KindProviderError, 500, "boom"},
		{"mailchimp 400 fallback", mailchimp, &statusError{StatusCode: 400}, KindProviderError, 400, "Mailchimp API error"},
		{"getresponse 502 fallback", getResponse, &statusError{StatusCode: 502}, KindProviderError, 502, "GetResponse API error"},
		{"network", mailchimp, &networkError{Err: errors.New("dial tcp: connection refused")}, KindNetwork, 503, "Network error. Please check your connection."},
		{"wrapped network", getResponse, fmt.Errorf("lists: %w", &networkError{Err: errors.New("timeout")}), KindNetwork, 503, "Network error. Please check your connection."},
		{"unknown", getResponse, errors.New("decode response: unexpected EOF"), KindUnknown, 500, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.client.ClassifyError(tt.err)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyKeepsClassifiedErrors(t *testing.T) {
	original := &Error{Kind: KindRateLimited, StatusCode: http.StatusTooManyRequests, Message: rateLimitedMessage}

	got := NewMailchimpClient("k-us1").ClassifyError(fmt.Errorf("wrapped: %w", original))

	assert.Same(t, original, got)
	assert.Nil(t, NewMailchimpClient("k-us1").ClassifyError(nil))
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: KindUnauthorized, StatusCode: 401, Message: "Invalid API key"}
	assert.Equal(t, "esp unauthorized (401): Invalid API key", err.Error())
}
