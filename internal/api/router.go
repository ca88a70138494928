package api

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/ranch_roi_server/config"
	"github.com/qs3c/ranch_roi_server/internal/api/handler"
	"github.com/qs3c/ranch_roi_server/internal/api/middleware"
)

type Router struct {
	authHandler         *handler.AuthHandler
	priceHandler        *handler.PriceHandler
	dashboardHandler    *handler.DashboardHandler
	subscriptionHandler *handler.SubscriptionHandler
	exportHandler       *handler.ExportHandler
	websocketHandler    *handler.WebSocketHandler
	cfg                 *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	priceHandler *handler.PriceHandler,
	dashboardHandler *handler.DashboardHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	exportHandler *handler.ExportHandler,
	websocketHandler *handler.WebSocketHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:         authHandler,
		priceHandler:        priceHandler,
		dashboardHandler:    dashboardHandler,
		subscriptionHandler: subscriptionHandler,
		exportHandler:       exportHandler,
		websocketHandler:    websocketHandler,
		cfg:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// WebSocket（价格刷新推送）
		api.GET("/ws", r.websocketHandler.Handle)

		// 公开接口 - 认证
		auth := api.Group("/auth")
		{
			auth.POST("/wallet-login", r.authHandler.WalletLogin)
		}

		// 公开接口 - 价格快照（带上 token 也能访问，不强制）
		prices := api.Group("/prices")
		prices.Use(middleware.OptionalAuth(r.cfg.JWT.Secret))
		{
			prices.GET("", r.priceHandler.Snapshot)
		}

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			authenticated.GET("/auth/me", r.authHandler.Me)

			authenticated.POST("/prices/refresh", r.priceHandler.Refresh)

			authenticated.GET("/dashboard", r.dashboardHandler.Dashboard)
			authenticated.GET("/export", r.exportHandler.Export)

			subscription := authenticated.Group("/subscription")
			{
				subscription.GET("", r.subscriptionHandler.Status)
				subscription.POST("/purchase", r.subscriptionHandler.Purchase)
			}
		}
	}

	return engine
}
