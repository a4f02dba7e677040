package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vibe-gaming/esp-integrations/internal/domain"
	"github.com/vibe-gaming/esp-integrations/internal/esp"
	"github.com/vibe-gaming/esp-integrations/internal/repository"
	"github.com/vibe-gaming/esp-integrations/pkg/logger"
)

type integrationService struct {
	integrationRepository repository.Integrations
	selector              ClientSelector
	now                   func() time.Time
}

func newIntegrationService(
	integrationRepository repository.Integrations,
	selector ClientSelector,
	now func() time.Time,
) *integrationService {
	return &integrationService{
		integrationRepository: integrationRepository,
		selector:              selector,
		now:                   now,
	}
}

// Save validates apiKey against the provider and upserts the provider's record.
// Nothing is stored when validation fails.
func (s *integrationService) Save(ctx context.Context, provider, apiKey string) (*domain.Integration, error) {
	if provider == "" || apiKey == "" {
		return nil, ErrCredentialsRequired
	}

	p, client, err := s.client(provider, apiKey)
	if err != nil {
		return nil, err
	}

	info, err := client.ValidateConnection(ctx)
	if err != nil {
		return nil, client.ClassifyError(err)
	}

	now := s.now()

	integration, err := s.integrationRepository.GetByProvider(ctx, p)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get integration: %w", err)
	}

	if integration == nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("generate integration id: %w", err)
		}

		integration = &domain.Integration{
			ID:        id,
			Provider:  p,
			CreatedAt: now,
			UpdatedAt: now,
		}
		integration.SetAPIKey(apiKey)
		integration.MarkValidated(info, now)

		if err := s.integrationRepository.Create(ctx, integration); err != nil {
			return nil, fmt.Errorf("create integration: %w", err)
		}

		logger.Info("integration created",
			zap.String("provider", p.String()),
			zap.String("integration_id", integration.ID.String()),
		)
		return integration, nil
	}

	integration.SetAPIKey(apiKey)
	integration.MarkValidated(info, now)
	integration.UpdatedAt = now

	if err := s.integrationRepository.Update(ctx, integration); err != nil {
		return nil, fmt.Errorf("update integration: %w", err)
	}

	logger.Info("integration updated",
		zap.String("provider", p.String()),
		zap.String("integration_id", integration.ID.String()),
	)
	return integration, nil
}

// Verify re-validates the stored credential. A rejected credential deactivates the record.
func (s *integrationService) Verify(ctx context.Context, provider string) (*domain.Integration, error) {
	if provider == "" {
		return nil, ErrProviderRequired
	}

	p, err := parseProvider(provider)
	if err != nil {
		return nil, err
	}

	integration, err := s.integrationRepository.GetByProvider(ctx, p)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrIntegrationNotFound
		}
		return nil, fmt.Errorf("get integration: %w", err)
	}

	_, client, err := s.client(provider, integration.APIKey)
	if err != nil {
		return nil, err
	}

	now := s.now()

	info, err := client.ValidateConnection(ctx)
	if err != nil {
		classified := client.ClassifyError(err)

		integration.IsActive = false
		integration.UpdatedAt = now
		if err := s.integrationRepository.Update(ctx, integration); err != nil {
			return nil, fmt.Errorf("deactivate integration: %w", err)
		}

		logger.Warn("integration deactivated",
			zap.String("provider", p.String()),
			zap.String("kind", string(classified.Kind)),
			zap.Int("status", classified.StatusCode),
		)
		return nil, classified
	}

	integration.MarkValidated(info, now)
	integration.UpdatedAt = now

	if err := s.integrationRepository.Update(ctx, integration); err != nil {
		return nil, fmt.Errorf("update integration: %w", err)
	}

	return integration, nil
}

// GetLists fetches the provider's lists with the credential of its active record.
func (s *integrationService) GetLists(ctx context.Context, provider string) ([]domain.ListEntry, error) {
	if provider == "" {
		return nil, ErrProviderRequired
	}

	p, err := parseProvider(provider)
	if err != nil {
		return nil, err
	}

	integration, err := s.integrationRepository.GetActiveByProvider(ctx, p)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNoActiveIntegration
		}
		return nil, fmt.Errorf("get active integration: %w", err)
	}

	_, client, err := s.client(provider, integration.APIKey)
	if err != nil {
		return nil, err
	}

	lists, err := client.GetLists(ctx)
	if err != nil {
		return nil, client.ClassifyError(err)
	}

	return lists, nil
}

func (s *integrationService) GetAll(ctx context.Context) ([]domain.Integration, error) {
	return s.integrationRepository.GetAll(ctx)
}

func (s *integrationService) client(provider, apiKey string) (domain.Provider, esp.Client, error) {
	p, err := parseProvider(provider)
	if err != nil {
		return "", nil, err
	}

	client, err := s.selector.Client(p, apiKey)
	if err != nil {
		if errors.Is(err, esp.ErrUnknownProvider) {
			return "", nil, ErrInvalidProvider
		}
		return "", nil, fmt.Errorf("select esp client: %w", err)
	}

	return p, client, nil
}

func parseProvider(provider string) (domain.Provider, error) {
	p, err := domain.ParseProvider(provider)
	if err != nil {
		return "", ErrInvalidProvider
	}
	return p, nil
}
