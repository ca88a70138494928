package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/qs3c/ranch_roi_server/config"
	"github.com/qs3c/ranch_roi_server/internal/catalog"
	"github.com/qs3c/ranch_roi_server/internal/database"
	"github.com/qs3c/ranch_roi_server/internal/economics"
	"github.com/qs3c/ranch_roi_server/internal/pkg/market"
	"github.com/qs3c/ranch_roi_server/internal/pkg/pubsub"
	"github.com/qs3c/ranch_roi_server/internal/service"
)

var (
	noRedis = flag.Bool("no-redis", false, "Skip Redis mirror and pub/sub, print only")
	timeout = flag.Int("timeout", 30, "Seconds to wait for the aggregation pass")
)

// 单次聚合：拉一轮价格、算一遍指标、打印结果。
// 供运维排查和 cron 外部调度使用。
func main() {
	flag.Parse()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client := market.NewClient(cfg.Market.BaseURL,
		time.Duration(cfg.Market.TimeoutSeconds)*time.Second)

	var priceService *service.PriceService
	if *noRedis {
		priceService = service.NewPriceService(client, nil, nil, cfg)
	} else {
		rdb, err := database.NewRedis(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect redis: %v", err)
		}
		defer rdb.Close()
		priceService = service.NewPriceService(client, rdb, pubsub.NewPublisher(rdb), cfg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeout)*time.Second)
	defer cancel()

	if err := priceService.Refresh(ctx); err != nil {
		log.Fatalf("Aggregation failed: %v", err)
	}

	snap, _ := priceService.Snapshot()
	fmt.Printf("Prices (updated %s):\n", snap.UpdatedAt.Format(time.RFC3339))
	for _, sym := range catalog.Symbols() {
		if snap.Prices.HasData(sym) {
			fmt.Printf("  %-6s $%s\n", sym, snap.Prices.Price(sym).String())
		} else {
			fmt.Printf("  %-6s (no data)\n", sym)
		}
	}

	fmt.Println("\nAsset metrics:")
	list := economics.ComputeAll(catalog.All(), snap.Prices)
	for _, m := range list {
		fmt.Printf("  %-22s daily %-10s roi %6s%%  payback %s\n",
			m.Name,
			m.DailyProfitUSD.StringFixed(4),
			m.DailyROIPercent.StringFixed(2),
			m.Payback.Format(0))
	}

	summary := economics.Summarize(list)
	fmt.Printf("\nPortfolio: %d profitable, total daily %s, total investment %s, roi %s%%\n",
		summary.ProfitableCount,
		summary.TotalDailyProfitUSD.StringFixed(4),
		summary.TotalInvestmentUSD.StringFixed(2),
		summary.PortfolioROIPercent.StringFixed(2))
}
