package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	VerifyAllTaskName         = "integrations:verify_all"
	VerifyIntegrationTaskName = "integration:verify"
	VerifyIntegrationQueue    = "integrationsVerifyQueue"
)

type VerifyIntegration struct {
	Provider string `json:"provider"`
}

// NewVerifyAllTask fans out into one VerifyIntegration task per stored integration.
func NewVerifyAllTask() *asynq.Task {
	return asynq.NewTask(
		VerifyAllTaskName,
		nil,
		asynq.MaxRetry(1),
		asynq.Queue(VerifyIntegrationQueue),
	)
}

func NewVerifyIntegrationTask(provider string) (*asynq.Task, error) {
	payload, err := json.Marshal(VerifyIntegration{Provider: provider})
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		VerifyIntegrationTaskName,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(VerifyIntegrationQueue),
	), nil
}
