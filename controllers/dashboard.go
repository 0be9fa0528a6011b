// controllers/dashboard.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"salonbook-backend/logger"
	"salonbook-backend/services"
)

type DashboardController struct {
	svc *services.DashboardService
	log *logger.Logger
}

func NewDashboardController(svc *services.DashboardService, log *logger.Logger) *DashboardController {
	return &DashboardController{svc: svc, log: log}
}

func (ct *DashboardController) Overview(c *gin.Context) {
	overview, err := ct.svc.Overview(c.Request.Context())
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	jsonOK(c, overview)
}
