package handlers

import (
	"net/http"

	"tou-pricegen/internal/config"

	"github.com/gin-gonic/gin"
)

// TariffHandler exposes the tariff the server generates against.
type TariffHandler struct {
	cfg *config.Config
}

func NewTariffHandler(cfg *config.Config) *TariffHandler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &TariffHandler{cfg: cfg}
}

// GetTariff handles GET /api/v1/tariff.
func (h *TariffHandler) GetTariff(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tariff":   h.cfg.Tariff,
		"defaults": defaultsView(h.cfg),
	})
}

func defaultsView(cfg *config.Config) gin.H {
	return gin.H{
		"start_date":        cfg.Generation.StartDate,
		"num_days":          cfg.Generation.NumDays,
		"time_step_minutes": cfg.Generation.TimeStepMinutes,
	}
}
