package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vibe-gaming/esp-integrations/internal/esp"
	"github.com/vibe-gaming/esp-integrations/internal/service"
	"github.com/vibe-gaming/esp-integrations/pkg/logger"
	espValidator "github.com/vibe-gaming/esp-integrations/pkg/validator"
)

func errorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Message: message})
}

// bindingErrorResponse answers a failed bind. requiredMessage is used when a field is missing.
func bindingErrorResponse(c *gin.Context, err error, requiredMessage string) {
	if errors.Is(err, io.EOF) {
		errorResponse(c, http.StatusBadRequest, requiredMessage)
		return
	}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		errorResponse(c, http.StatusBadRequest, InvalidBodyMessage)
		return
	}

	for _, ferr := range verr {
		if ferr.Tag() == "required" {
			errorResponse(c, http.StatusBadRequest, requiredMessage)
			return
		}
	}
	for _, ferr := range verr {
		if ferr.Tag() == espValidator.ProviderTag {
			errorResponse(c, http.StatusBadRequest, InvalidProviderMessage)
			return
		}
	}
	errorResponse(c, http.StatusBadRequest, InvalidBodyMessage)
}

// serviceErrorResponse maps orchestration errors shared by all endpoints.
// It reports false when err needs endpoint specific handling.
func serviceErrorResponse(c *gin.Context, err error, op string, extra gin.H) bool {
	switch {
	case errors.Is(err, service.ErrCredentialsRequired):
		errorResponse(c, http.StatusBadRequest, CredentialsRequiredMessage)
		return true
	case errors.Is(err, service.ErrProviderRequired):
		errorResponse(c, http.StatusBadRequest, ProviderRequiredMessage)
		return true
	case errors.Is(err, service.ErrInvalidProvider):
		errorResponse(c, http.StatusBadRequest, InvalidProviderMessage)
		return true
	}

	var espErr *esp.Error
	if errors.As(err, &espErr) {
		status := espErr.StatusCode
		if status == 0 {
			status = http.StatusBadRequest
		}
		body := gin.H{"success": false, "message": espErr.Message}
		for k, v := range extra {
			body[k] = v
		}
		logger.Info(op+" rejected by provider",
			zap.String("kind", string(espErr.Kind)),
			zap.Int("status", espErr.StatusCode),
		)
		c.AbortWithStatusJSON(status, body)
		return true
	}

	return false
}

func internalErrorResponse(c *gin.Context, err error, op string) {
	logger.Error(op+" failed", zap.Error(err))
	errorResponse(c, http.StatusInternalServerError, InternalErrorMessage)
}
