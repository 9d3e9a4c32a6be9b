package controller

import (
	"interview_sim_backend/internal/config"
	"interview_sim_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Cfg *config.Config
}

func NewHealthController(cfg *config.Config) *HealthController {
	return &HealthController{Cfg: cfg}
}

// HealthCheck godoc
// @Summary Service health and active backend mode
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (ctl *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status":      "OK",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": ctl.Cfg.Server.Mode,
		"backend":     ctl.Cfg.BackendMode(),
	})
}
