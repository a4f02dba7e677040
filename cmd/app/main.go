package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apiHttp "github.com/vibe-gaming/esp-integrations/internal/api/http"
	"github.com/vibe-gaming/esp-integrations/internal/cache"
	"github.com/vibe-gaming/esp-integrations/internal/config"
	"github.com/vibe-gaming/esp-integrations/internal/db"
	"github.com/vibe-gaming/esp-integrations/internal/esp"
	"github.com/vibe-gaming/esp-integrations/internal/queue/asynqserver"
	"github.com/vibe-gaming/esp-integrations/internal/queue/client"
	"github.com/vibe-gaming/esp-integrations/internal/repository"
	"github.com/vibe-gaming/esp-integrations/internal/server"
	"github.com/vibe-gaming/esp-integrations/internal/service"
	"github.com/vibe-gaming/esp-integrations/internal/worker"
	"github.com/vibe-gaming/esp-integrations/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting esp integrations api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	if cfg.Database.Migrate {
		if err := db.Migrate(cfg.Database); err != nil {
			logger.Fatal("mysql migrate problem", zap.Error(err))
		}
	}

	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Fatal("mysql connect problem", zap.Error(err))
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	espMetrics := esp.NewMetrics(registry)

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:   cfg,
		Repos:    repos,
		Selector: esp.NewSelector(cfg.ESP, espMetrics),
	})
	handlers := apiHttp.NewHandlers(services, registry)

	// Background re-verification
	var (
		asynqSrv  *asynq.Server
		scheduler *asynq.Scheduler
		redisDB   redis.UniversalClient
	)
	if cfg.Worker.Enabled {
		redisDB, err = cache.NewRedis(cfg.Cache)
		if err != nil {
			logger.Fatal("redis connect problem", zap.Error(err))
		}
		defer redisDB.Close()

		queueClient := asynq.NewClientFromRedisClient(redisDB)
		defer queueClient.Close()
		client.SetClient(queueClient)

		workers := worker.NewWorkers(worker.Deps{Services: services})

		var mux *asynq.ServeMux
		asynqSrv, mux = asynqserver.New(cfg, workers)
		go func() {
			if err := asynqSrv.Run(mux); err != nil {
				logger.Error("asynq server stopped", zap.Error(err))
			}
		}()

		scheduler, err = asynqserver.NewScheduler(cfg)
		if err != nil {
			logger.Fatal("asynq scheduler setup failed", zap.Error(err))
		}
		go func() {
			if err := scheduler.Run(); err != nil {
				logger.Error("asynq scheduler stopped", zap.Error(err))
			}
		}()
		logger.Info("worker started", zap.String("verify_cron", cfg.Worker.VerifyCron))
	}

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	if scheduler != nil {
		scheduler.Shutdown()
	}
	if asynqSrv != nil {
		asynqSrv.Shutdown()
	}

	logger.Info("app stopped")
}
