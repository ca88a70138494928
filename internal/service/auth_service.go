package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/ranch_roi_server/config"
	"github.com/qs3c/ranch_roi_server/internal/model"
	"github.com/qs3c/ranch_roi_server/internal/model/dto"
	"github.com/qs3c/ranch_roi_server/internal/pkg/jwt"
	"github.com/qs3c/ranch_roi_server/internal/repository"
)

var (
	ErrUserNotFound = errors.New("用户不存在")
)

type AuthService struct {
	userRepo *repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// WalletLogin 钱包登录：首次登录自动建档，之后按地址找回。
// 签名校验由钱包网关在上游完成，这里拿到的地址视为已验证。
func (s *AuthService) WalletLogin(req *dto.WalletLoginRequest) (*dto.WalletLoginResponse, error) {
	user, err := s.userRepo.GetByWalletAddress(req.WalletAddress)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		username := req.Username
		if username == "" {
			username = defaultUsername(req.WalletAddress)
		}
		user = &model.User{
			WalletAddress: req.WalletAddress,
			Username:      username,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	if err := s.userRepo.TouchLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.WalletLoginResponse{
		Token: token,
		User:  toUserInfo(user),
	}, nil
}

// GetUser 查询用户档案
func (s *AuthService) GetUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:            user.ID,
		WalletAddress: user.WalletAddress,
		Username:      user.Username,
		LastLoginAt:   user.LastLoginAt,
	}
}

// defaultUsername 用地址头尾拼一个展示名
func defaultUsername(address string) string {
	if len(address) <= 10 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:6], address[len(address)-4:])
}
