package repository

import (
	"context"

	"github.com/vibe-gaming/esp-integrations/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Integrations Integrations
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Integrations: newIntegrationRepository(db),
	}
}

// Integrations stores at most one record per provider. Uniqueness is kept by the
// callers doing lookup-then-write, the table has no unique key on provider.
type Integrations interface {
	GetByProvider(ctx context.Context, provider domain.Provider) (*domain.Integration, error)
	GetActiveByProvider(ctx context.Context, provider domain.Provider) (*domain.Integration, error)
	GetAll(ctx context.Context) ([]domain.Integration, error)
	Create(ctx context.Context, integration *domain.Integration) error
	Update(ctx context.Context, integration *domain.Integration) error
}
