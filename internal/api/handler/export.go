package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/ranch_roi_server/internal/api/middleware"
	"github.com/qs3c/ranch_roi_server/internal/export"
	"github.com/qs3c/ranch_roi_server/internal/pkg/response"
	"github.com/qs3c/ranch_roi_server/internal/service"
)

type ExportHandler struct {
	dashboardService *service.DashboardService
}

func NewExportHandler(dashboardService *service.DashboardService) *ExportHandler {
	return &ExportHandler{
		dashboardService: dashboardService,
	}
}

// Export 下载 CSV 分析报告。
// 无有效订阅时静默返回 204，前端据此引导开通，不弹错误。
// GET /api/v1/export
func (h *ExportHandler) Export(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	data, entitled, err := h.dashboardService.ExportCSV(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSnapshot) {
			response.PriceError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}
	if !entitled {
		c.Status(http.StatusNoContent)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, data)
}
