package service

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/ranch_roi_server/config"
	"github.com/qs3c/ranch_roi_server/internal/model"
	"github.com/qs3c/ranch_roi_server/internal/model/dto"
	"github.com/qs3c/ranch_roi_server/internal/repository"
)

var (
	// ErrPaymentFailed 支付协作方返回失败，不写任何订阅状态
	ErrPaymentFailed = errors.New("支付失败，请重试")
)

// SubscriptionService 订阅门：
// 支付成功信号 → 生效记录；读取时惰性判定过期并删除记录。
type SubscriptionService struct {
	subRepo *repository.SubscriptionRepository
	cfg     *config.Config
}

func NewSubscriptionService(subRepo *repository.SubscriptionRepository, cfg *config.Config) *SubscriptionService {
	return &SubscriptionService{
		subRepo: subRepo,
		cfg:     cfg,
	}
}

// Activate 消费外部支付结果。失败直接报错且不落任何记录；
// 成功则写入一条有效期 duration_days 的订阅，替换该用户的旧记录。
func (s *SubscriptionService) Activate(userID int64, req *dto.PurchaseRequest) (*model.Subscription, error) {
	if !req.Succeeded {
		return nil, ErrPaymentFailed
	}

	if err := s.subRepo.DeleteByUserID(userID); err != nil {
		return nil, err
	}

	now := time.Now()
	sub := &model.Subscription{
		UserID:        userID,
		Plan:          s.cfg.Subscription.Plan,
		AmountUSD:     s.cfg.Subscription.PriceUSD,
		StartedAt:     now,
		ExpiresAt:     now.Add(time.Duration(s.cfg.Subscription.DurationDays) * 24 * time.Hour),
		Status:        "active",
		PaymentMethod: "wallet",
		TransactionID: req.TransactionID,
	}
	if err := s.subRepo.Create(sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// CheckActive 判定当前是否有有效订阅。
// expires_at 已过的记录在读取时即删除（惰性过期，没有后台清扫），
// 无论建档时的 status 是什么。
func (s *SubscriptionService) CheckActive(userID int64) (*model.Subscription, bool, error) {
	sub, err := s.subRepo.GetLatestByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if !sub.ExpiresAt.After(time.Now()) {
		if err := s.subRepo.Delete(sub.ID); err != nil {
			log.Printf("Failed to remove expired subscription %d: %v", sub.ID, err)
		}
		return nil, false, nil
	}

	return sub, true, nil
}

// Status 对外的订阅状态视图
func (s *SubscriptionService) Status(userID int64) (*dto.SubscriptionStatus, error) {
	sub, active, err := s.CheckActive(userID)
	if err != nil {
		return nil, err
	}
	if !active {
		return &dto.SubscriptionStatus{Active: false}, nil
	}
	return &dto.SubscriptionStatus{
		Active:    true,
		Plan:      sub.Plan,
		ExpiresAt: &sub.ExpiresAt,
	}, nil
}
