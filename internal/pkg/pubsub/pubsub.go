package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

const (
	ChannelPriceUpdates = "price_updates"
)

// PriceUpdateMessage 价格刷新广播消息
type PriceUpdateMessage struct {
	Type      string                     `json:"type"`
	Prices    map[string]decimal.Decimal `json:"prices"`
	NoData    []string                   `json:"no_data,omitempty"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// Publisher Redis 发布者
type Publisher struct {
	client *redis.Client
}

// NewPublisher 创建发布者
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// PublishPriceUpdate 发布价格刷新消息
func (p *Publisher) PublishPriceUpdate(ctx context.Context, msg *PriceUpdateMessage) error {
	msg.Type = "prices_updated"

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal price update: %w", err)
	}

	return p.client.Publish(ctx, ChannelPriceUpdates, data).Err()
}

// Subscriber Redis 订阅者
type Subscriber struct {
	client *redis.Client
}

// NewSubscriber 创建订阅者
func NewSubscriber(client *redis.Client) *Subscriber {
	return &Subscriber{client: client}
}

// Subscribe 订阅价格刷新消息，阻塞直到 ctx 取消
func (s *Subscriber) Subscribe(ctx context.Context, handler func(*PriceUpdateMessage)) error {
	pubsub := s.client.Subscribe(ctx, ChannelPriceUpdates)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			var update PriceUpdateMessage
			if err := json.Unmarshal([]byte(msg.Payload), &update); err != nil {
				continue // 忽略解析错误
			}

			handler(&update)
		}
	}
}
