package service

import (
	"context"
	"time"

	"github.com/vibe-gaming/esp-integrations/internal/config"
	"github.com/vibe-gaming/esp-integrations/internal/domain"
	"github.com/vibe-gaming/esp-integrations/internal/esp"
	"github.com/vibe-gaming/esp-integrations/internal/repository"
)

type Services struct {
	Integrations Integrations
}

type Deps struct {
	Config   *config.Config
	Repos    *repository.Repositories
	Selector ClientSelector
}

func NewServices(deps Deps) *Services {
	return &Services{
		Integrations: newIntegrationService(deps.Repos.Integrations, deps.Selector, time.Now),
	}
}

// ClientSelector resolves the ESP client for a provider and credential.
type ClientSelector interface {
	Client(provider domain.Provider, apiKey string) (esp.Client, error)
}

// Integrations validates, stores and reads ESP connections.
// Provider failures are returned as *esp.Error.
type Integrations interface {
	Save(ctx context.Context, provider, apiKey string) (*domain.Integration, error)
	Verify(ctx context.Context, provider string) (*domain.Integration, error)
	GetLists(ctx context.Context, provider string) ([]domain.ListEntry, error)
	GetAll(ctx context.Context) ([]domain.Integration, error)
}
