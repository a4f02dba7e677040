package mock_worker

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type IntegrationVerifier struct {
	mock.Mock
}

func (m *IntegrationVerifier) EnqueueAll(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

func (m *IntegrationVerifier) Verify(ctx context.Context, provider string) error {
	args := m.Called(ctx, provider)

	return args.Error(0)
}
