package worker

import (
	"context"

	"github.com/vibe-gaming/esp-integrations/internal/service"
)

type Workers struct {
	IntegrationVerifier IntegrationVerifier
}

type Deps struct {
	Services *service.Services
}

// IntegrationVerifier re-validates stored ESP credentials in the background.
type IntegrationVerifier interface {
	EnqueueAll(ctx context.Context) error
	Verify(ctx context.Context, provider string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		IntegrationVerifier: newIntegrationVerifier(deps.Services),
	}
}
