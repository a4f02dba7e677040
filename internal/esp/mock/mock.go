package mock_esp

import (
	"context"
	"errors"

	"github.com/vibe-gaming/esp-integrations/internal/domain"
	"github.com/vibe-gaming/esp-integrations/internal/esp"

	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (m *Client) Provider() domain.Provider {
	args := m.Called()

	return args.Get(0).(domain.Provider)
}

func (m *Client) ValidateConnection(ctx context.Context) (domain.AccountInfo, error) {
	args := m.Called(ctx)

	info, _ := args.Get(0).(domain.AccountInfo)
	return info, args.Error(1)
}

func (m *Client) GetLists(ctx context.Context) ([]domain.ListEntry, error) {
	args := m.Called(ctx)

	lists, _ := args.Get(0).([]domain.ListEntry)
	return lists, args.Error(1)
}

// ClassifyError is not recorded, classified errors pass through unchanged.
func (m *Client) ClassifyError(err error) *esp.Error {
	var classified *esp.Error
	if errors.As(err, &classified) {
		return classified
	}
	return &esp.Error{Kind: esp.KindUnknown, StatusCode: 500, Message: "An unexpected error occurred", Err: err}
}

type Selector struct {
	mock.Mock
}

func (m *Selector) Client(provider domain.Provider, apiKey string) (esp.Client, error) {
	args := m.Called(provider, apiKey)

	client, _ := args.Get(0).(esp.Client)
	return client, args.Error(1)
}
