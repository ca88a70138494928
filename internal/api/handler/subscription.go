package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/ranch_roi_server/internal/api/middleware"
	"github.com/qs3c/ranch_roi_server/internal/model/dto"
	"github.com/qs3c/ranch_roi_server/internal/pkg/response"
	"github.com/qs3c/ranch_roi_server/internal/service"
)

type SubscriptionHandler struct {
	subService *service.SubscriptionService
}

func NewSubscriptionHandler(subService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subService: subService,
	}
}

// Status 订阅状态
// GET /api/v1/subscription
func (h *SubscriptionHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	status, err := h.subService.Status(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, status)
}

// Purchase 消费支付结果并开通订阅
// POST /api/v1/subscription/purchase
func (h *SubscriptionHandler) Purchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	sub, err := h.subService.Activate(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrPaymentFailed) {
			response.PaymentError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "订阅已开通", &dto.SubscriptionStatus{
		Active:    true,
		Plan:      sub.Plan,
		ExpiresAt: &sub.ExpiresAt,
	})
}
