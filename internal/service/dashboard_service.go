package service

import (
	"github.com/qs3c/ranch_roi_server/internal/catalog"
	"github.com/qs3c/ranch_roi_server/internal/economics"
	"github.com/qs3c/ranch_roi_server/internal/export"
	"github.com/qs3c/ranch_roi_server/internal/model/dto"
)

// DashboardService 把价格快照和资产目录拼成面板数据。
// 所有指标都是从当前输入现算的，不缓存、不落库。
type DashboardService struct {
	priceService *PriceService
	subService   *SubscriptionService
}

func NewDashboardService(priceService *PriceService, subService *SubscriptionService) *DashboardService {
	return &DashboardService{
		priceService: priceService,
		subService:   subService,
	}
}

// GetDashboard 生成面板数据。周/月投影与回本天数只对有效订阅用户展开。
func (s *DashboardService) GetDashboard(userID int64) (*dto.DashboardResponse, error) {
	snap, ok := s.priceService.Snapshot()
	if !ok {
		return nil, ErrNoSnapshot
	}

	_, premium, err := s.subService.CheckActive(userID)
	if err != nil {
		return nil, err
	}

	list := economics.ComputeAll(catalog.All(), snap.Prices)
	summary := economics.Summarize(list)

	resp := &dto.DashboardResponse{
		Prices: &dto.PriceInfo{
			Prices:    snap.Prices,
			NoData:    snap.NoData,
			UpdatedAt: snap.UpdatedAt,
		},
		Metrics: make([]dto.AssetMetrics, 0, len(list)),
		Premium: premium,
	}

	for _, m := range list {
		resp.Metrics = append(resp.Metrics, toAssetMetrics(m, premium))
	}

	sum := &dto.PortfolioSummary{
		ProfitableCount:     summary.ProfitableCount,
		TotalDailyProfitUSD: summary.TotalDailyProfitUSD,
	}
	if premium {
		investment := summary.TotalInvestmentUSD
		roi := summary.PortfolioROIPercent
		sum.TotalInvestmentUSD = &investment
		sum.PortfolioROIPercent = &roi
	}
	resp.Summary = sum

	return resp, nil
}

// ExportCSV 导出全量指标。无有效订阅时是 no-op（返回 entitled=false），不是错误。
func (s *DashboardService) ExportCSV(userID int64) ([]byte, bool, error) {
	_, premium, err := s.subService.CheckActive(userID)
	if err != nil {
		return nil, false, err
	}
	if !premium {
		return nil, false, nil
	}

	snap, ok := s.priceService.Snapshot()
	if !ok {
		return nil, true, ErrNoSnapshot
	}

	list := economics.ComputeAll(catalog.All(), snap.Prices)
	data, err := export.Marshal(list)
	if err != nil {
		return nil, true, err
	}
	return data, true, nil
}

func toAssetMetrics(m economics.Metrics, premium bool) dto.AssetMetrics {
	out := dto.AssetMetrics{
		AssetID:              m.AssetID,
		Name:                 m.Name,
		Category:             string(m.Category),
		Rarity:               string(m.Rarity),
		CostPerCycleUSD:      m.CostPerCycleUSD,
		RewardPerCycleUSD:    m.RewardPerCycleUSD,
		NetProfitPerCycleUSD: m.NetProfitPerCycleUSD,
		CyclesPerDay:         m.CyclesPerDay,
		Lifespan:             m.Lifespan,
		DailyProfitUSD:       m.DailyProfitUSD,
		CraftingCostUSD:      m.CraftingCostUSD,
		DailyROIPercent:      m.DailyROIPercent,
	}

	if premium {
		weekly := m.WeeklyProfitUSD
		monthly := m.MonthlyProfitUSD
		payback := m.Payback
		out.WeeklyProfitUSD = &weekly
		out.MonthlyProfitUSD = &monthly
		out.Payback = &payback
	}

	return out
}
