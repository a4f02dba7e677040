package esp

import (
	"net/http"

	"github.com/vibe-gaming/esp-integrations/internal/config"
	"github.com/vibe-gaming/esp-integrations/internal/domain"
)

// Selector builds the Client for a provider. Clients are built per call because the key varies.
type Selector struct {
	opts []Option
}

func NewSelector(cfg config.ESP, metrics *Metrics, opts ...Option) *Selector {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base := []Option{
		WithHTTPClient(&http.Client{Timeout: timeout}),
		WithMetrics(metrics),
		WithMailchimpDomain(cfg.MailchimpDomain),
		WithGetResponseBaseURL(cfg.GetResponseBaseURL),
		WithListsPageSize(cfg.ListsPageSize),
		WithStatsConcurrency(cfg.StatsConcurrency),
	}

	return &Selector{opts: append(base, opts...)}
}

func (s *Selector) Client(provider domain.Provider, apiKey string) (Client, error) {
	switch provider {
	case domain.Mailchimp:
		return NewMailchimpClient(apiKey, s.opts...), nil
	case domain.GetResponse:
		return NewGetResponseClient(apiKey, s.opts...), nil
	}
	return nil, ErrUnknownProvider
}
