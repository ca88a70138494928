package dto

import (
	"time"
)

// PurchaseRequest 外部支付协作方的结果信号。
// 金额与收款方校验是支付侧的契约，到达这里时已经完成。
type PurchaseRequest struct {
	Succeeded     bool   `json:"succeeded"`
	TransactionID string `json:"transaction_id" binding:"omitempty,max=100"`
}

type SubscriptionStatus struct {
	Active    bool       `json:"active"`
	Plan      string     `json:"plan,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
