package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/qs3c/ranch_roi_server/internal/economics"
)

// PriceInfo 当前价格快照。价格为 0 的符号出现在 NoData 里，
// 表示"无数据"而不是真实零价。
type PriceInfo struct {
	Prices    map[string]decimal.Decimal `json:"prices"`
	NoData    []string                   `json:"no_data,omitempty"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// AssetMetrics 单个资产的收益指标。
// Weekly/Monthly/Payback 仅对有效订阅用户返回。
type AssetMetrics struct {
	AssetID  int    `json:"asset_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Rarity   string `json:"rarity"`

	CostPerCycleUSD      decimal.Decimal `json:"cost_per_cycle_usd"`
	RewardPerCycleUSD    decimal.Decimal `json:"reward_per_cycle_usd"`
	NetProfitPerCycleUSD decimal.Decimal `json:"net_profit_per_cycle_usd"`

	CyclesPerDay    int64             `json:"cycles_per_day"`
	Lifespan        economics.DaySpan `json:"lifespan"`
	DailyProfitUSD  decimal.Decimal   `json:"daily_profit_usd"`
	CraftingCostUSD decimal.Decimal   `json:"crafting_cost_usd"`
	DailyROIPercent decimal.Decimal   `json:"daily_roi_percent"`

	WeeklyProfitUSD  *decimal.Decimal   `json:"weekly_profit_usd,omitempty"`
	MonthlyProfitUSD *decimal.Decimal   `json:"monthly_profit_usd,omitempty"`
	Payback          *economics.DaySpan `json:"payback,omitempty"`
}

// PortfolioSummary 汇总统计。TotalInvestment 与 PortfolioROI 仅订阅用户可见。
type PortfolioSummary struct {
	ProfitableCount     int              `json:"profitable_count"`
	TotalDailyProfitUSD decimal.Decimal  `json:"total_daily_profit_usd"`
	TotalInvestmentUSD  *decimal.Decimal `json:"total_investment_usd,omitempty"`
	PortfolioROIPercent *decimal.Decimal `json:"portfolio_roi_percent,omitempty"`
}

type DashboardResponse struct {
	Prices  *PriceInfo        `json:"prices"`
	Metrics []AssetMetrics    `json:"metrics"`
	Summary *PortfolioSummary `json:"summary"`
	Premium bool              `json:"premium"`
}
