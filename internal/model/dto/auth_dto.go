package dto

import (
	"time"
)

type WalletLoginRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required,min=8,max=64"`
	Username      string `json:"username" binding:"omitempty,max=50"`
}

type WalletLoginResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

type UserInfo struct {
	ID            int64      `json:"id"`
	WalletAddress string     `json:"wallet_address"`
	Username      string     `json:"username"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
}
