package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"

	"github.com/qs3c/ranch_roi_server/config"
	"github.com/qs3c/ranch_roi_server/internal/catalog"
	"github.com/qs3c/ranch_roi_server/internal/economics"
	"github.com/qs3c/ranch_roi_server/internal/pkg/market"
	"github.com/qs3c/ranch_roi_server/internal/pkg/pubsub"
)

var (
	// ErrAggregation 整轮聚合无法执行（如完全断网），区别于单符号失败
	ErrAggregation = errors.New("行情数据源不可用")
	// ErrNoSnapshot 从未成功过一轮聚合，没有可用快照
	ErrNoSnapshot = errors.New("行情数据尚未就绪")
)

// snapshotKey 最近一次成功快照的 Redis 镜像，进程重启后作为 last-known-good
const snapshotKey = "roi:price_snapshot"

// PriceSnapshot 一轮聚合的结果：完整价格表 + 无数据符号 + 采集时间
type PriceSnapshot struct {
	Prices    economics.PriceTable `json:"prices"`
	NoData    []string             `json:"no_data,omitempty"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type PriceService struct {
	client    *market.Client
	rdb       *redis.Client
	publisher *pubsub.Publisher
	cfg       *config.Config

	mu       sync.RWMutex
	snapshot *PriceSnapshot
}

func NewPriceService(client *market.Client, rdb *redis.Client, publisher *pubsub.Publisher, cfg *config.Config) *PriceService {
	s := &PriceService{
		client:    client,
		rdb:       rdb,
		publisher: publisher,
		cfg:       cfg,
	}
	s.loadMirror()
	return s
}

// Refresh 执行一轮聚合：每个符号独立抓取，单符号失败不影响其他符号；
// 相邻请求之间留出固定间隔，避免对数据源突发请求。
// 只有所有符号都在传输层失败才算聚合失败，此时保留上一次快照不动。
func (s *PriceService) Refresh(ctx context.Context) error {
	symbols := catalog.Symbols()
	delay := time.Duration(s.cfg.Market.RequestDelayMS) * time.Millisecond

	results := make(chan market.Outcome, len(symbols))
	for i, sym := range symbols {
		if i > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrAggregation, ctx.Err())
			case <-time.After(delay):
			}
		}
		go func(symbol string) {
			price, err := s.client.FetchPrice(ctx, symbol)
			results <- market.Outcome{Symbol: symbol, Price: price, Err: err}
		}(sym)
	}

	prices := make(map[string]decimal.Decimal, len(symbols))
	var firstErr error
	failures := 0
	for range symbols {
		out := <-results
		if !out.OK() {
			// 单符号失败：记 0（无数据），继续
			log.Printf("Price fetch failed for %s: %v", out.Symbol, out.Err)
			prices[out.Symbol] = decimal.Zero
			failures++
			if firstErr == nil {
				firstErr = out.Err
			}
			continue
		}
		prices[out.Symbol] = out.Price
	}

	if failures == len(symbols) {
		return fmt.Errorf("%w: %v", ErrAggregation, firstErr)
	}

	table := economics.NewPriceTable(prices)
	snap := &PriceSnapshot{
		Prices:    table,
		UpdatedAt: time.Now(),
	}
	for _, sym := range symbols {
		if !table.HasData(sym) {
			snap.NoData = append(snap.NoData, sym)
		}
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	s.storeMirror(ctx, snap)
	s.publish(ctx, snap)

	return nil
}

// Snapshot 返回当前快照的副本；从未成功过则 ok 为 false
func (s *PriceService) Snapshot() (*PriceSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, false
	}

	cp := &PriceSnapshot{
		Prices:    make(economics.PriceTable, len(s.snapshot.Prices)),
		NoData:    append([]string(nil), s.snapshot.NoData...),
		UpdatedAt: s.snapshot.UpdatedAt,
	}
	for sym, p := range s.snapshot.Prices {
		cp.Prices[sym] = p
	}
	return cp, true
}

// loadMirror 启动时从 Redis 恢复 last-known-good 快照（尽力而为）
func (s *PriceService) loadMirror() {
	if s.rdb == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	data, err := s.rdb.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Failed to load price snapshot mirror: %v", err)
		}
		return
	}

	var snap PriceSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("Failed to decode price snapshot mirror: %v", err)
		return
	}
	// 镜像数据同样要满足"三符号齐全"的约定
	snap.Prices = economics.NewPriceTable(snap.Prices)

	s.mu.Lock()
	s.snapshot = &snap
	s.mu.Unlock()
	log.Printf("Price snapshot restored from mirror (updated at %s)", snap.UpdatedAt.Format(time.RFC3339))
}

func (s *PriceService) storeMirror(ctx context.Context, snap *PriceSnapshot) {
	if s.rdb == nil {
		return
	}

	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Failed to encode price snapshot mirror: %v", err)
		return
	}
	if err := s.rdb.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		log.Printf("Failed to store price snapshot mirror: %v", err)
	}
}

func (s *PriceService) publish(ctx context.Context, snap *PriceSnapshot) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.PublishPriceUpdate(ctx, &pubsub.PriceUpdateMessage{
		Prices:    snap.Prices,
		NoData:    snap.NoData,
		UpdatedAt: snap.UpdatedAt,
	})
	if err != nil {
		log.Printf("Failed to publish price update: %v", err)
	}
}
