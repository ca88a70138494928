package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/ranch_roi_server/internal/api/middleware"
	"github.com/qs3c/ranch_roi_server/internal/pkg/response"
	"github.com/qs3c/ranch_roi_server/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Dashboard 收益面板：价格快照 + 全部资产指标 + 汇总
// GET /api/v1/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	resp, err := h.dashboardService.GetDashboard(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSnapshot) {
			response.PriceError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, resp)
}
