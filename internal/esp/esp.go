package esp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vibe-gaming/esp-integrations/internal/domain"
)

const (
	defaultTimeout          = 30 * time.Second
	defaultListsPageSize    = 1000
	defaultStatsConcurrency = 10
	defaultMailchimpDomain  = "api.mailchimp.com"
	defaultGetResponseURL   = "https://api.getresponse.com/v3"

	maxBodyBytes = 32 << 20
)

var ErrUnknownProvider = errors.New("no such provider")

// Client is the capability set every ESP integration provides.
// ValidateConnection and GetLists return a *Error on failure.
type Client interface {
	Provider() domain.Provider
	ValidateConnection(ctx context.Context) (domain.AccountInfo, error)
	GetLists(ctx context.Context) ([]domain.ListEntry, error)
	ClassifyError(err error) *Error
}

type options struct {
	httpClient         *http.Client
	metrics            *Metrics
	mailchimpDomain    string
	mailchimpBaseURL   string
	getResponseBaseURL string
	listsPageSize      int
	statsConcurrency   int
}

type Option func(*options)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

func WithMailchimpDomain(domain string) Option {
	return func(o *options) {
		if domain != "" {
			o.mailchimpDomain = domain
		}
	}
}

// WithMailchimpBaseURL replaces the derived https://<prefix>.<domain>/3.0 endpoint.
func WithMailchimpBaseURL(baseURL string) Option {
	return func(o *options) {
		o.mailchimpBaseURL = baseURL
	}
}

func WithGetResponseBaseURL(baseURL string) Option {
	return func(o *options) {
		if baseURL != "" {
			o.getResponseBaseURL = baseURL
		}
	}
}

func WithListsPageSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.listsPageSize = size
		}
	}
}

func WithStatsConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.statsConcurrency = n
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		httpClient:         &http.Client{Timeout: defaultTimeout},
		mailchimpDomain:    defaultMailchimpDomain,
		getResponseBaseURL: defaultGetResponseURL,
		listsPageSize:      defaultListsPageSize,
		statsConcurrency:   defaultStatsConcurrency,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// apiClient holds the transport shared by the provider implementations.
type apiClient struct {
	httpClient *http.Client
	metrics    *Metrics
}

func (c *apiClient) getJSON(
	ctx context.Context,
	reqURL string,
	authorize func(req *http.Request),
	errorMessage func(body []byte) string,
	out any,
) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &networkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &statusError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// firstMessage decodes a provider error body and returns the first non-empty field of keys.
func firstMessage(body []byte, keys ...string) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range keys {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
