package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vibe-gaming/esp-integrations/internal/domain"
	"github.com/vibe-gaming/esp-integrations/internal/service"
)

func (h *Handler) initIntegrationsRoutes(api *gin.RouterGroup) {
	integrations := api.Group("/integrations")
	{
		integrations.POST("/esp", h.saveIntegration)
		integrations.GET("/esp/verify", h.verifyIntegration)
		integrations.GET("/esp/lists", h.getIntegrationLists)
	}
}

type saveIntegrationRequest struct {
	Provider string `json:"provider" binding:"required,esp_provider"`
	APIKey   string `json:"apiKey" binding:"required"`
}

type providerQuery struct {
	Provider string `form:"provider" binding:"required,esp_provider"`
}

type integrationData struct {
	ID          string             `json:"id"`
	Provider    domain.Provider    `json:"provider"`
	IsActive    bool               `json:"isActive"`
	AccountInfo domain.AccountInfo `json:"accountInfo"`
	ConnectedAt time.Time          `json:"connectedAt"`
}

type saveIntegrationResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    integrationData `json:"data"`
}

type verifyData struct {
	Provider      domain.Provider    `json:"provider"`
	AccountInfo   domain.AccountInfo `json:"accountInfo"`
	LastValidated time.Time          `json:"lastValidated"`
}

type verifyIntegrationResponse struct {
	Success   bool       `json:"success"`
	Connected bool       `json:"connected"`
	Message   string     `json:"message"`
	Data      verifyData `json:"data"`
}

type listsResponse struct {
	Success  bool               `json:"success"`
	Provider domain.Provider    `json:"provider"`
	Count    int                `json:"count"`
	Lists    []domain.ListEntry `json:"lists"`
}

// @Summary Save ESP integration
// @Tags Integrations
// @Description Validates the API key against the provider and stores it. Nothing is stored when validation fails.
// @ModuleID saveIntegration
// @Accept  json
// @Produce  json
// @Param input body saveIntegrationRequest true "provider and api key"
// @Success 200 {object} saveIntegrationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /integrations/esp [post]
func (h *Handler) saveIntegration(c *gin.Context) {
	var req saveIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err, CredentialsRequiredMessage)
		return
	}

	integration, err := h.services.Integrations.Save(c.Request.Context(), req.Provider, req.APIKey)
	if err != nil {
		if serviceErrorResponse(c, err, "save integration", nil) {
			return
		}
		internalErrorResponse(c, err, "save integration")
		return
	}

	c.JSON(http.StatusOK, saveIntegrationResponse{
		Success: true,
		Message: savedMessage(integration.Provider.Title()),
		Data: integrationData{
			ID:          integration.ID.String(),
			Provider:    integration.Provider,
			IsActive:    integration.IsActive,
			AccountInfo: integration.AccountInfo,
			ConnectedAt: integration.LastValidated.Time,
		},
	})
}

// @Summary Verify ESP integration
// @Tags Integrations
// @Description Re-validates the stored API key. A rejected key deactivates the integration.
// @ModuleID verifyIntegration
// @Produce  json
// @Param provider query string true "mailchimp or getresponse"
// @Success 200 {object} verifyIntegrationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} VerifyErrorResponse
// @Failure 404 {object} VerifyErrorResponse
// @Failure 429 {object} VerifyErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} VerifyErrorResponse
// @Router /integrations/esp/verify [get]
func (h *Handler) verifyIntegration(c *gin.Context) {
	var query providerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindingErrorResponse(c, err, ProviderRequiredMessage)
		return
	}

	integration, err := h.services.Integrations.Verify(c.Request.Context(), query.Provider)
	if err != nil {
		if errors.Is(err, service.ErrIntegrationNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, VerifyErrorResponse{
				Success:   false,
				Connected: false,
				Message:   notConnectedMessage(query.Provider),
			})
			return
		}
		if serviceErrorResponse(c, err, "verify integration", gin.H{"connected": false}) {
			return
		}
		internalErrorResponse(c, err, "verify integration")
		return
	}

	c.JSON(http.StatusOK, verifyIntegrationResponse{
		Success:   true,
		Connected: true,
		Message:   VerifiedMessage,
		Data: verifyData{
			Provider:      integration.Provider,
			AccountInfo:   integration.AccountInfo,
			LastValidated: integration.LastValidated.Time,
		},
	})
}

// @Summary Get ESP lists
// @Tags Integrations
// @Description Returns the audiences (Mailchimp) or campaigns (GetResponse) of the active integration.
// @ModuleID getIntegrationLists
// @Produce  json
// @Param provider query string true "mailchimp or getresponse"
// @Success 200 {object} listsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /integrations/esp/lists [get]
func (h *Handler) getIntegrationLists(c *gin.Context) {
	var query providerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindingErrorResponse(c, err, ProviderRequiredMessage)
		return
	}

	lists, err := h.services.Integrations.GetLists(c.Request.Context(), query.Provider)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveIntegration) {
			errorResponse(c, http.StatusNotFound, noActiveIntegrationMessage(query.Provider))
			return
		}
		if serviceErrorResponse(c, err, "get integration lists", nil) {
			return
		}
		internalErrorResponse(c, err, "get integration lists")
		return
	}

	if lists == nil {
		lists = []domain.ListEntry{}
	}

	c.JSON(http.StatusOK, listsResponse{
		Success:  true,
		Provider: domain.Provider(query.Provider),
		Count:    len(lists),
		Lists:    lists,
	})
}
