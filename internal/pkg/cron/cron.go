package cron

import (
	"context"
	"log"
	"sync"
	"time"
)

// Refresher 一轮价格聚合
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Service 持有唯一的定时刷新句柄。
// 同一时间最多只有一个刷新循环在跑：Start 会先停掉旧的再装新的
// （替换而不是叠加），Stop 幂等。
type Service struct {
	refresher Refresher
	interval  time.Duration

	mu       sync.Mutex
	stopChan chan struct{}
	running  bool
}

func NewService(refresher Refresher, interval time.Duration) *Service {
	return &Service{
		refresher: refresher,
		interval:  interval,
	}
}

// Start 启动定时刷新；已有循环在跑时先停掉它
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		close(s.stopChan)
	}
	s.stopChan = make(chan struct{})
	s.running = true

	go s.runPriceRefresh(s.stopChan)
	log.Printf("Price refresh schedule started (interval %s)", s.interval)
}

// Stop 停止定时刷新，重复调用无副作用
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	close(s.stopChan)
	s.running = false
	log.Println("Price refresh schedule stopped")
}

// Running 当前是否有刷新循环在跑
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Service) runPriceRefresh(stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.refreshOnce()
		}
	}
}

func (s *Service) refreshOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	if err := s.refresher.Refresh(ctx); err != nil {
		// 失败只记录：上一次快照仍是 last-known-good
		log.Printf("Scheduled price refresh failed: %v", err)
	}
}
