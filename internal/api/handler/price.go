package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/ranch_roi_server/internal/model/dto"
	"github.com/qs3c/ranch_roi_server/internal/pkg/response"
	"github.com/qs3c/ranch_roi_server/internal/service"
)

type PriceHandler struct {
	priceService *service.PriceService
}

func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// Snapshot 当前价格快照（公开接口，不需要登录）
// GET /api/v1/prices
func (h *PriceHandler) Snapshot(c *gin.Context) {
	snap, ok := h.priceService.Snapshot()
	if !ok {
		response.PriceError(c, service.ErrNoSnapshot.Error())
		return
	}

	response.Success(c, &dto.PriceInfo{
		Prices:    snap.Prices,
		NoData:    snap.NoData,
		UpdatedAt: snap.UpdatedAt,
	})
}

// Refresh 手动触发一轮价格聚合
// POST /api/v1/prices/refresh
func (h *PriceHandler) Refresh(c *gin.Context) {
	if err := h.priceService.Refresh(c.Request.Context()); err != nil {
		if errors.Is(err, service.ErrAggregation) {
			response.PriceError(c, service.ErrAggregation.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	snap, _ := h.priceService.Snapshot()
	response.SuccessWithMessage(c, "价格已刷新", &dto.PriceInfo{
		Prices:    snap.Prices,
		NoData:    snap.NoData,
		UpdatedAt: snap.UpdatedAt,
	})
}
