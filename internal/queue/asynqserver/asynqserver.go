package asynqserver

import (
	"github.com/hibiken/asynq"

	"github.com/vibe-gaming/esp-integrations/internal/cache"
	"github.com/vibe-gaming/esp-integrations/internal/config"
	"github.com/vibe-gaming/esp-integrations/internal/queue/processor"
	"github.com/vibe-gaming/esp-integrations/internal/queue/task"
	"github.com/vibe-gaming/esp-integrations/internal/worker"
)

func New(cfg *config.Config, workers *worker.Workers) (*asynq.Server, *asynq.ServeMux) {
	mux, queues := getQueues(workers)
	srv := asynq.NewServer(
		RedisOptions(cfg.Cache),
		asynq.Config{
			Concurrency: cfg.Worker.Concurrency,
			LogLevel:    asynq.ErrorLevel,
			Queues:      queues,
		},
	)

	return srv, mux
}

// NewScheduler registers the periodic re-verification of stored integrations.
func NewScheduler(cfg *config.Config) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(RedisOptions(cfg.Cache), &asynq.SchedulerOpts{
		LogLevel: asynq.ErrorLevel,
	})

	if _, err := scheduler.Register(cfg.Worker.VerifyCron, task.NewVerifyAllTask()); err != nil {
		return nil, err
	}

	return scheduler, nil
}

func RedisOptions(cfg config.Cache) asynq.RedisConnOpt {
	var opts asynq.RedisConnOpt
	if cfg.Type == cache.RedisTypeCluster {
		opts = asynq.RedisClusterClientOpt{
			Addrs:    cfg.RedisCluster.Addresses,
			Password: cfg.RedisCluster.Password,
		}
	} else {
		opts = asynq.RedisClientOpt{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
		}
	}
	return opts
}

func getQueues(workers *worker.Workers) (*asynq.ServeMux, map[string]int) {
	mux := asynq.NewServeMux()
	mux.Handle(task.VerifyAllTaskName, processor.NewVerifyAllProcessor(workers))
	mux.Handle(task.VerifyIntegrationTaskName, processor.NewVerifyIntegrationProcessor(workers))
	queues := map[string]int{
		task.VerifyIntegrationQueue: 1,
	}
	return mux, queues
}
