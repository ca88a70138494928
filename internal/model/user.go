package model

import (
	"time"
)

type User struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	WalletAddress string     `gorm:"size:64;uniqueIndex;not null" json:"wallet_address"`
	Username      string     `gorm:"size:50" json:"username"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
