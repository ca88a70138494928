package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/ranch_roi_server/internal/api/middleware"
	"github.com/qs3c/ranch_roi_server/internal/model/dto"
	"github.com/qs3c/ranch_roi_server/internal/pkg/response"
	"github.com/qs3c/ranch_roi_server/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// WalletLogin 钱包登录（首次登录自动建档）
// POST /api/v1/auth/wallet-login
func (h *AuthHandler) WalletLogin(c *gin.Context) {
	var req dto.WalletLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.authService.WalletLogin(&req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "登录成功", resp)
}

// Me 当前用户档案
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	info, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, info)
}
