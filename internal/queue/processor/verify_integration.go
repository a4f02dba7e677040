package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vibe-gaming/esp-integrations/internal/queue/task"
	"github.com/vibe-gaming/esp-integrations/internal/worker"

	"github.com/hibiken/asynq"
)

type verifyAllProcessor struct {
	workers *worker.Workers
}

func NewVerifyAllProcessor(workers *worker.Workers) *verifyAllProcessor {
	return &verifyAllProcessor{
		workers: workers,
	}
}

func (p *verifyAllProcessor) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	if err := p.workers.IntegrationVerifier.EnqueueAll(ctx); err != nil {
		return fmt.Errorf("enqueue integration verification failed: %w", err)
	}

	return nil
}

type verifyIntegrationProcessor struct {
	workers *worker.Workers
}

func NewVerifyIntegrationProcessor(workers *worker.Workers) *verifyIntegrationProcessor {
	return &verifyIntegrationProcessor{
		workers: workers,
	}
}

func (p *verifyIntegrationProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.VerifyIntegration
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("process verify integration task json unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}

	if err := p.workers.IntegrationVerifier.Verify(ctx, data.Provider); err != nil {
		return fmt.Errorf("verify integration %s failed: %w", data.Provider, err)
	}

	return nil
}
