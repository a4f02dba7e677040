package apiHttp

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vibe-gaming/esp-integrations/docs"
	"github.com/vibe-gaming/esp-integrations/pkg/limiter"
	"github.com/vibe-gaming/esp-integrations/pkg/logger"
	"github.com/vibe-gaming/esp-integrations/pkg/validator"

	internalV1 "github.com/vibe-gaming/esp-integrations/internal/api/http/internal/v1"
	"github.com/vibe-gaming/esp-integrations/internal/config"
	"github.com/vibe-gaming/esp-integrations/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	RouteNotFoundMessage = "Route not found"
	PanicMessage         = "Something went wrong!"
)

type Handler struct {
	services *service.Services
	gatherer prometheus.Gatherer
}

func NewHandlers(services *service.Services, gatherer prometheus.Gatherer) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Handler{
		services: services,
		gatherer: gatherer,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.HttpServer.CORSOrigins),
	)
	router.Use(ginzap.CustomRecoveryWithZap(logger.Logger(), true, func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": PanicMessage})
	}))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))

	h.initAPI(router)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": RouteNotFoundMessage})
	})

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}
