package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/ranch_roi_server/internal/model"
)

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	nano := time.Now().UnixNano()
	user := &model.User{
		WalletAddress: fmt.Sprintf("0xtest%d", nano),
		Username:      fmt.Sprintf("rancher_%d", nano%10000),
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithWallet 设置钱包地址
func WithWallet(address string) func(*model.User) {
	return func(u *model.User) {
		u.WalletAddress = address
	}
}

// WithUsername 设置用户名
func WithUsername(username string) func(*model.User) {
	return func(u *model.User) {
		u.Username = username
	}
}

// TestSubscription 创建测试订阅，过期时间由调用方指定
func TestSubscription(t *testing.T, db *gorm.DB, userID int64, expiresAt time.Time, opts ...func(*model.Subscription)) *model.Subscription {
	t.Helper()

	sub := &model.Subscription{
		UserID:        userID,
		Plan:          "premium_monthly",
		AmountUSD:     9.99,
		StartedAt:     expiresAt.Add(-30 * 24 * time.Hour),
		ExpiresAt:     expiresAt,
		Status:        "active",
		PaymentMethod: "wallet",
		TransactionID: fmt.Sprintf("tx_%d", time.Now().UnixNano()),
	}

	for _, opt := range opts {
		opt(sub)
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	return sub
}

// WithSubStatus 设置订阅记录的 status 字段
func WithSubStatus(status string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.Status = status
	}
}
