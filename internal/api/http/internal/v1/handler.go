package v1

import (
	"github.com/vibe-gaming/esp-integrations/internal/service"

	"github.com/gin-gonic/gin"
)

// @title ESP Integrations API
// @version 1.0
// @description Connects Mailchimp and GetResponse accounts and reads their lists.

// @BasePath /api

type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initIntegrationsRoutes(api)
}
