package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/ranch_roi_server/internal/model"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	return r.db.Create(sub).Error
}

// GetLatestByUserID 取该用户最近一条订阅记录
func (r *SubscriptionRepository) GetLatestByUserID(userID int64) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("user_id = ?", userID).
		Order("expires_at DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Delete(id int64) error {
	return r.db.Delete(&model.Subscription{}, id).Error
}

// DeleteByUserID 清掉该用户的全部订阅记录（开通新订阅前替换旧记录）
func (r *SubscriptionRepository) DeleteByUserID(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Subscription{}).Error
}
