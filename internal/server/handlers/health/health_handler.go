package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handtracking3d/handtracking-api/internal/version"
)

const (
	indexMessage   = version.AppName + " is running"
	healthyMessage = "API is healthy"
)

type HealthHandler struct{}

func New() *HealthHandler {
	return &HealthHandler{}
}

// Index reports that the API process is up.
//
//	@Summary		Service status
//	@Description	Reports that the API process is running
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/ [get]
func (h *HealthHandler) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{
		Status:  StatusOK,
		Message: indexMessage,
	})
}

// Health is the liveness probe.
//
//	@Summary		Health check
//	@Description	Liveness probe, always ok while the process serves requests
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/api/health [get]
func (h *HealthHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{
		Status:  StatusOK,
		Message: healthyMessage,
	})
}
