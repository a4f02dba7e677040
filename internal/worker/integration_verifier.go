package worker

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vibe-gaming/esp-integrations/internal/esp"
	"github.com/vibe-gaming/esp-integrations/internal/queue/client"
	"github.com/vibe-gaming/esp-integrations/internal/queue/task"
	"github.com/vibe-gaming/esp-integrations/internal/service"
	"github.com/vibe-gaming/esp-integrations/pkg/logger"
)

var ErrQueueClientNotConfigured = errors.New("queue client is not configured")

type integrationVerifier struct {
	services *service.Services
}

func newIntegrationVerifier(services *service.Services) *integrationVerifier {
	return &integrationVerifier{
		services: services,
	}
}

// EnqueueAll schedules one verification task per stored integration, active or not.
func (v *integrationVerifier) EnqueueAll(ctx context.Context) error {
	integrations, err := v.services.Integrations.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("get integrations failed: %w", err)
	}

	queue := client.GetClient(ctx)
	if queue == nil {
		return ErrQueueClientNotConfigured
	}

	for _, integration := range integrations {
		t, err := task.NewVerifyIntegrationTask(integration.Provider.String())
		if err != nil {
			return err
		}

		if _, err := queue.EnqueueContext(ctx, t); err != nil {
			return fmt.Errorf("enqueue verify %s failed: %w", integration.Provider, err)
		}
	}

	logger.Info("integration verification scheduled", zap.Int("count", len(integrations)))

	return nil
}

// Verify runs a single verification. Provider rejections are final and not retried.
func (v *integrationVerifier) Verify(ctx context.Context, provider string) error {
	integration, err := v.services.Integrations.Verify(ctx, provider)
	if err != nil {
		var espErr *esp.Error
		switch {
		case errors.As(err, &espErr):
			logger.Warn("integration verification rejected",
				zap.String("provider", provider),
				zap.String("kind", string(espErr.Kind)),
				zap.Int("status", espErr.StatusCode),
				zap.String("message", espErr.Message),
			)
			return nil
		case errors.Is(err, service.ErrIntegrationNotFound):
			logger.Warn("integration removed before verification", zap.String("provider", provider))
			return nil
		}
		return fmt.Errorf("verify integration failed: %w", err)
	}

	logger.Info("integration verified",
		zap.String("provider", provider),
		zap.Time("last_validated", integration.LastValidated.Time),
	)

	return nil
}
