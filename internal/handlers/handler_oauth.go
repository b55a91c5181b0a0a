package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kash-money/kash_backend/internal/core/ports/services"
	"github.com/kash-money/kash_backend/internal/dto"
	"github.com/kash-money/kash_backend/internal/middleware"
)

// oauthHandler handles the Google sign-in flow.
type oauthHandler struct {
	authService portssvc.AuthSvcFacade
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := &oauthHandler{authService: services.AuthSvc}

	auth := r.Group("/auth")
	{
		auth.POST("/google/exchange-code", h.exchangeCodeGoogle)
	}
}

// exchangeCodeGoogle godoc
// @Summary Exchange authorization code for access token
// @Description Exchanges a Google OAuth authorization code for an application JWT, creating the user on first sign-in
// @Tags oauth
// @Accept  json
// @Produce  json
// @Param   code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.ExchangeCodeResponse
// @Failure 400 {object} map[string]string "Invalid or expired authorization code"
// @Failure 403 {object} map[string]string "Invalid Google ID token"
// @Failure 500 {object} map[string]string "Failed to complete sign-in"
// @Router /auth/google/exchange-code [post]
func (h *oauthHandler) exchangeCodeGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for exchangeCodeGoogle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.authService.ExchangeGoogleCode(c.Request.Context(), req.Code)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeCodeResponse(result))
}
