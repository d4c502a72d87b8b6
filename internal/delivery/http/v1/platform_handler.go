package v1

import (
	"net/http"

	"ggenius-website/internal/domain"

	"github.com/gin-gonic/gin"
)

type PlatformHandler struct {
	healthUC domain.HealthUsecase
	statsUC  domain.StatsUsecase
}

func NewPlatformHandler(r gin.IRoutes, healthUC domain.HealthUsecase, statsUC domain.StatsUsecase) {
	handler := &PlatformHandler{
		healthUC: healthUC,
		statsUC:  statsUC,
	}

	r.GET("/health", handler.Health)
	r.GET("/api/stats", handler.Stats)
	r.GET("/api/version", handler.Version)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  domain.HealthStatus
// @Router       /health [get]
func (h *PlatformHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}

// Stats godoc
// @Summary      Platform statistics
// @Tags         stats
// @Produce      json
// @Success      200  {object}  domain.PlatformStats
// @Router       /api/stats [get]
func (h *PlatformHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsUC.Stats(c.Request.Context()))
}

// Version godoc
// @Summary      Build version
// @Tags         system
// @Produce      json
// @Success      200  {object}  domain.VersionInfo
// @Router       /api/version [get]
func (h *PlatformHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsUC.Version(c.Request.Context()))
}
