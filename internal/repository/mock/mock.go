package mock_repository

import (
	"context"

	"github.com/vibe-gaming/esp-integrations/internal/domain"

	"github.com/stretchr/testify/mock"
)

type Integrations struct {
	mock.Mock
}

func (m *Integrations) GetByProvider(ctx context.Context, provider domain.Provider) (*domain.Integration, error) {
	args := m.Called(ctx, provider)

	integration, _ := args.Get(0).(*domain.Integration)
	return integration, args.Error(1)
}

func (m *Integrations) GetActiveByProvider(ctx context.Context, provider domain.Provider) (*domain.Integration, error) {
	args := m.Called(ctx, provider)

	integration, _ := args.Get(0).(*domain.Integration)
	return integration, args.Error(1)
}

func (m *Integrations) GetAll(ctx context.Context) ([]domain.Integration, error) {
	args := m.Called(ctx)

	integrations, _ := args.Get(0).([]domain.Integration)
	return integrations, args.Error(1)
}

func (m *Integrations) Create(ctx context.Context, integration *domain.Integration) error {
	args := m.Called(ctx, integration)

	return args.Error(0)
}

func (m *Integrations) Update(ctx context.Context, integration *domain.Integration) error {
	args := m.Called(ctx, integration)

	return args.Error(0)
}
