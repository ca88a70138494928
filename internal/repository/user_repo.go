package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/ranch_roi_server/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByWalletAddress(address string) (*model.User, error) {
	var user model.User
	err := r.db.Where("wallet_address = ?", address).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) TouchLastLogin(id int64, at time.Time) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Update("last_login_at", at).Error
}

func (r *UserRepository) ExistsByWalletAddress(address string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("wallet_address = ?", address).Count(&count).Error
	return count > 0, err
}
