package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qs3c/ranch_roi_server/config"
	"github.com/qs3c/ranch_roi_server/internal/api"
	"github.com/qs3c/ranch_roi_server/internal/api/handler"
	"github.com/qs3c/ranch_roi_server/internal/database"
	"github.com/qs3c/ranch_roi_server/internal/pkg/cron"
	"github.com/qs3c/ranch_roi_server/internal/pkg/market"
	"github.com/qs3c/ranch_roi_server/internal/pkg/pubsub"
	"github.com/qs3c/ranch_roi_server/internal/pkg/ws"
	"github.com/qs3c/ranch_roi_server/internal/repository"
	"github.com/qs3c/ranch_roi_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	// 初始化 WebSocket Hub
	wsHub := ws.NewHub()

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	// 初始化 Service
	marketClient := market.NewClient(cfg.Market.BaseURL,
		time.Duration(cfg.Market.TimeoutSeconds)*time.Second)
	publisher := pubsub.NewPublisher(rdb)
	priceService := service.NewPriceService(marketClient, rdb, publisher, cfg)
	authService := service.NewAuthService(userRepo, cfg)
	subService := service.NewSubscriptionService(subRepo, cfg)
	dashboardService := service.NewDashboardService(priceService, subService)

	// 首轮同步聚合：失败只记录，服务照常起（镜像里可能有 last-known-good）
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := priceService.Refresh(startupCtx); err != nil {
		log.Printf("Initial price refresh failed: %v", err)
	}
	startupCancel()

	// 定时刷新，句柄唯一，Stop 在退出时调用
	refreshSchedule := cron.NewService(priceService,
		time.Duration(cfg.Market.RefreshMinutes)*time.Minute)
	refreshSchedule.Start()

	// 订阅价格刷新消息，推给所有在线面板
	subCtx, subCancel := context.WithCancel(context.Background())
	subscriber := pubsub.NewSubscriber(rdb)
	go func() {
		err := subscriber.Subscribe(subCtx, func(msg *pubsub.PriceUpdateMessage) {
			if err := wsHub.Broadcast(&ws.Message{Type: msg.Type, Data: msg}); err != nil {
				log.Printf("Failed to broadcast price update: %v", err)
			}
		})
		if err != nil && subCtx.Err() == nil {
			log.Printf("Price update subscriber exited: %v", err)
		}
	}()

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService)
	priceHandler := handler.NewPriceHandler(priceService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	subscriptionHandler := handler.NewSubscriptionHandler(subService)
	exportHandler := handler.NewExportHandler(dashboardService)
	websocketHandler := handler.NewWebSocketHandler(wsHub, cfg.JWT.Secret)

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		priceHandler,
		dashboardHandler,
		subscriptionHandler,
		exportHandler,
		websocketHandler,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// 监听退出信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Received shutdown signal")

	refreshSchedule.Stop()
	subCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server shutdown complete")
}
