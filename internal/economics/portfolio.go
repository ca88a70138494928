package economics

import (
	"github.com/shopspring/decimal"
)

// PortfolioSummary 全目录指标的汇总统计
type PortfolioSummary struct {
	ProfitableCount     int             `json:"profitable_count"`
	TotalDailyProfitUSD decimal.Decimal `json:"total_daily_profit_usd"`
	TotalInvestmentUSD  decimal.Decimal `json:"total_investment_usd"`
	PortfolioROIPercent decimal.Decimal `json:"portfolio_roi_percent"`
}

// Summarize 对指标列表做一次完整归约，每次价格或目录变化后整表重算。
// 空列表得到全 0 汇总。
func Summarize(list []Metrics) PortfolioSummary {
	s := PortfolioSummary{
		TotalDailyProfitUSD: decimal.Zero,
		TotalInvestmentUSD:  decimal.Zero,
		PortfolioROIPercent: decimal.Zero,
	}

	for _, m := range list {
		if m.DailyProfitUSD.IsPositive() {
			s.ProfitableCount++
		}
		s.TotalDailyProfitUSD = s.TotalDailyProfitUSD.Add(m.DailyProfitUSD)
		s.TotalInvestmentUSD = s.TotalInvestmentUSD.Add(m.CraftingCostUSD)
	}

	// 与单资产 ROI 同一条规则：总收益为正且总投入为正才计算
	if s.TotalDailyProfitUSD.IsPositive() && s.TotalInvestmentUSD.IsPositive() {
		s.PortfolioROIPercent = s.TotalDailyProfitUSD.Div(s.TotalInvestmentUSD).Mul(hundred)
	}

	return s
}
