package esp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vibe-gaming/esp-integrations/internal/domain"
	"github.com/vibe-gaming/esp-integrations/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const notAvailable = "N/A"

type GetResponseClient struct {
	apiClient
	apiKey           string
	baseURL          string
	pageSize         int
	statsConcurrency int
}

func NewGetResponseClient(apiKey string, opts ...Option) *GetResponseClient {
	o := newOptions(opts)

	return &GetResponseClient{
		apiClient:        apiClient{httpClient: o.httpClient, metrics: o.metrics},
		apiKey:           apiKey,
		baseURL:          strings.TrimRight(o.getResponseBaseURL, "/"),
		pageSize:         o.listsPageSize,
		statsConcurrency: o.statsConcurrency,
	}
}

func (c *GetResponseClient) Provider() domain.Provider {
	return domain.GetResponse
}

func (c *GetResponseClient) BaseURL() string {
	return c.baseURL
}

type getResponseAccount struct {
	AccountID   string `json:"accountId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	CompanyName any    `json:"companyName"`
	Phone       any    `json:"phone"`
}

func (c *GetResponseClient) ValidateConnection(ctx context.Context) (domain.AccountInfo, error) {
	var account getResponseAccount
	if err := c.get(ctx, c.baseURL+"/accounts", &account); err != nil {
		return nil, c.fail(operationValidate, err)
	}
	c.metrics.observe(domain.GetResponse.String(), operationValidate, nil)

	return domain.AccountInfo{
		"accountId":   account.AccountID,
		"firstName":   account.FirstName,
		"lastName":    account.LastName,
		"email":       account.Email,
		"companyName": orNotAvailable(account.CompanyName),
		"phone":       orNotAvailable(account.Phone),
	}, nil
}

type getResponseCampaign struct {
	CampaignID   string   `json:"campaignId"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	LanguageCode string   `json:"languageCode"`
	IsDefault    flexBool `json:"isDefault"`
	CreatedOn    string   `json:"createdOn"`
}

type getResponseStatistics struct {
	Subscriptions   int `json:"subscriptions"`
	Active          int `json:"active"`
	Unsubscriptions int `json:"unsubscriptions"`
	Removed         int `json:"removed"`
	Complaints      int `json:"complaints"`
}

// GetLists fetches campaigns in one page and appends per-campaign statistics.
// Statistics are fetched concurrently; a failed statistics call leaves that entry with zero values.
func (c *GetResponseClient) GetLists(ctx context.Context) ([]domain.ListEntry, error) {
	query := url.Values{}
	query.Set("perPage", strconv.Itoa(c.pageSize))
	query.Set("sort[createdOn]", "desc")

	var campaigns []getResponseCampaign
	if err := c.get(ctx, c.baseURL+"/campaigns?"+query.Encode(), &campaigns); err != nil {
		return nil, c.fail(operationLists, err)
	}
	c.metrics.observe(domain.GetResponse.String(), operationLists, nil)

	lists := make([]domain.ListEntry, len(campaigns))

	var g errgroup.Group
	g.SetLimit(c.statsConcurrency)

	for i, campaign := range campaigns {
		g.Go(func() error {
			stats, err := c.campaignStatistics(ctx, campaign.CampaignID)
			if err != nil {
				logger.Warn("getresponse campaign statistics failed, using zero values",
					zap.String("campaign_id", campaign.CampaignID),
					zap.Error(err),
				)
				stats = getResponseStatistics{}
			}
			lists[i] = campaign.toListEntry(stats)
			return nil
		})
	}
	_ = g.Wait()

	return lists, nil
}

func (c *GetResponseClient) campaignStatistics(ctx context.Context, campaignID string) (getResponseStatistics, error) {
	var stats getResponseStatistics
	err := c.get(ctx, c.baseURL+"/campaigns/"+url.PathEscape(campaignID)+"/statistics", &stats)
	if err != nil {
		return stats, c.fail(operationStats, err)
	}
	c.metrics.observe(domain.GetResponse.String(), operationStats, nil)

	return stats, nil
}

func (c getResponseCampaign) toListEntry(stats getResponseStatistics) domain.ListEntry {
	return domain.ListEntry{
		ID:                c.CampaignID,
		Name:              c.Name,
		Description:       c.Description,
		CreatedAt:         c.CreatedOn,
		UnsubscribedCount: stats.Unsubscriptions,
		GetResponseDetails: &domain.GetResponseDetails{
			LanguageCode:      c.LanguageCode,
			IsDefault:         bool(c.IsDefault),
			SubscribersCount:  stats.Subscriptions,
			ActiveSubscribers: stats.Active,
			RemovedCount:      stats.Removed,
			ComplaintsCount:   stats.Complaints,
		},
	}
}

func (c *GetResponseClient) ClassifyError(err error) *Error {
	return classify(err, classifyRules{
		unauthorizedMessage: "Invalid API key or unauthorized access",
		fallbackMessage:     "GetResponse API error",
		mapNotFound:         true,
	})
}

func (c *GetResponseClient) get(ctx context.Context, reqURL string, out any) error {
	return c.getJSON(ctx, reqURL, c.authorize, getResponseErrorMessage, out)
}

func (c *GetResponseClient) authorize(req *http.Request) {
	req.Header.Set("X-Auth-Token", "api-key "+c.apiKey)
}

func (c *GetResponseClient) fail(operation string, err error) *Error {
	classified := c.ClassifyError(err)
	c.metrics.observe(domain.GetResponse.String(), operation, classified)
	return classified
}

func getResponseErrorMessage(body []byte) string {
	return firstMessage(body, "message", "error")
}

// flexBool accepts both JSON booleans and the "true"/"false" strings GetResponse returns.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*b = false
		return nil
	}
	parsed, _ := strconv.ParseBool(s)
	*b = flexBool(parsed)
	return nil
}

func orNotAvailable(v any) any {
	if v == nil {
		return notAvailable
	}
	if s, ok := v.(string); ok && s == "" {
		return notAvailable
	}
	return v
}
