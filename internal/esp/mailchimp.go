package esp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vibe-gaming/esp-integrations/internal/domain"
)

const mailchimpUsername = "anystring"

type MailchimpClient struct {
	apiClient
	apiKey       string
	serverPrefix string
	baseURL      string
	pageSize     int
}

func NewMailchimpClient(apiKey string, opts ...Option) *MailchimpClient {
	o := newOptions(opts)
	prefix := domain.ServerPrefix(apiKey)

	baseURL := o.mailchimpBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.%s/3.0", prefix, o.mailchimpDomain)
	}

	return &MailchimpClient{
		apiClient:    apiClient{httpClient: o.httpClient, metrics: o.metrics},
		apiKey:       apiKey,
		serverPrefix: prefix,
		baseURL:      baseURL,
		pageSize:     o.listsPageSize,
	}
}

func (c *MailchimpClient) Provider() domain.Provider {
	return domain.Mailchimp
}

func (c *MailchimpClient) ServerPrefix() string {
	return c.serverPrefix
}

func (c *MailchimpClient) BaseURL() string {
	return c.baseURL
}

type mailchimpAccount struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

func (c *MailchimpClient) ValidateConnection(ctx context.Context) (domain.AccountInfo, error) {
	var account mailchimpAccount
	if err := c.get(ctx, c.baseURL+"/", &account); err != nil {
		return nil, c.fail(operationValidate, err)
	}
	c.metrics.observe(domain.Mailchimp.String(), operationValidate, nil)

	return domain.AccountInfo{
		"accountId":   account.AccountID,
		"accountName": account.AccountName,
		"email":       account.Email,
		"role":        account.Role,
	}, nil
}

type mailchimpLists struct {
	Lists []mailchimpList `json:"lists"`
}

type mailchimpList struct {
	ID          string `json:"id"`
	WebID       int    `json:"web_id"`
	Name        string `json:"name"`
	DateCreated string `json:"date_created"`
	Stats       struct {
		MemberCount      int `json:"member_count"`
		UnsubscribeCount int `json:"unsubscribe_count"`
		CleanedCount     int `json:"cleaned_count"`
	} `json:"stats"`
}

func (c *MailchimpClient) GetLists(ctx context.Context) ([]domain.ListEntry, error) {
	query := url.Values{}
	query.Set("count", strconv.Itoa(c.pageSize))

	var resp mailchimpLists
	if err := c.get(ctx, c.baseURL+"/lists?"+query.Encode(), &resp); err != nil {
		return nil, c.fail(operationLists, err)
	}
	c.metrics.observe(domain.Mailchimp.String(), operationLists, nil)

	lists := make([]domain.ListEntry, 0, len(resp.Lists))
	for _, l := range resp.Lists {
		lists = append(lists, domain.ListEntry{
			ID:                l.ID,
			Name:              l.Name,
			CreatedAt:         l.DateCreated,
			UnsubscribedCount: l.Stats.UnsubscribeCount,
			MailchimpDetails: &domain.MailchimpDetails{
				WebID:           l.WebID,
				MemberCount:     l.Stats.MemberCount,
				SubscribedCount: l.Stats.MemberCount,
				CleanedCount:    l.Stats.CleanedCount,
			},
		})
	}

	return lists, nil
}

func (c *MailchimpClient) ClassifyError(err error) *Error {
	return classify(err, classifyRules{
		unauthorizedMessage: "Invalid API key",
		fallbackMessage:     "Mailchimp API error",
	})
}

func (c *MailchimpClient) get(ctx context.Context, reqURL string, out any) error {
	return c.getJSON(ctx, reqURL, c.authorize, mailchimpErrorMessage, out)
}

func (c *MailchimpClient) authorize(req *http.Request) {
	req.SetBasicAuth(mailchimpUsername, c.apiKey)
}

func (c *MailchimpClient) fail(operation string, err error) *Error {
	classified := c.ClassifyError(err)
	c.metrics.observe(domain.Mailchimp.String(), operation, classified)
	return classified
}

func mailchimpErrorMessage(body []byte) string {
	return firstMessage(body, "detail", "title")
}
