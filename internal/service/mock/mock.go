package mock_service

import (
	"context"

	"github.com/vibe-gaming/esp-integrations/internal/domain"

	"github.com/stretchr/testify/mock"
)

type Integrations struct {
	mock.Mock
}

func (m *Integrations) Save(ctx context.Context, provider, apiKey string) (*domain.Integration, error) {
	args := m.Called(ctx, provider, apiKey)

	integration, _ := args.Get(0).(*domain.Integration)
	return integration, args.Error(1)
}

func (m *Integrations) Verify(ctx context.Context, provider string) (*domain.Integration, error) {
	args := m.Called(ctx, provider)

	integration, _ := args.Get(0).(*domain.Integration)
	return integration, args.Error(1)
}

func (m *Integrations) GetLists(ctx context.Context, provider string) ([]domain.ListEntry, error) {
	args := m.Called(ctx, provider)

	lists, _ := args.Get(0).([]domain.ListEntry)
	return lists, args.Error(1)
}

func (m *Integrations) GetAll(ctx context.Context) ([]domain.Integration, error) {
	args := m.Called(ctx)

	integrations, _ := args.Get(0).([]domain.Integration)
	return integrations, args.Error(1)
}
