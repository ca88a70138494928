package economics

import (
	"github.com/shopspring/decimal"

	"github.com/qs3c/ranch_roi_server/internal/catalog"
)

// 资源与代币的固定换算比例（游戏规则，不随资产配置变化）
const (
	EnergyPerFARM     = 5 // 5 点能量 = 1 FARM
	DurabilityPerTOOL = 5 // 5 点耐久 = 1 TOOL
)

const secondsPerDay = 86400

var (
	hundred = decimal.NewFromInt(100)
	seven   = decimal.NewFromInt(7)
	thirty  = decimal.NewFromInt(30)
)

// PriceTable 代币符号到 USD 价格的映射。
// 约定：三种符号永远齐全，价格为 0 表示"无数据"，不是真实市价。
type PriceTable map[string]decimal.Decimal

// NewPriceTable 构造完整价格表，缺失的符号补 0
func NewPriceTable(prices map[string]decimal.Decimal) PriceTable {
	t := make(PriceTable, 3)
	for _, sym := range catalog.Symbols() {
		t[sym] = decimal.Zero
	}
	for sym, p := range prices {
		if _, ok := t[sym]; ok {
			t[sym] = p
		}
	}
	return t
}

// Price 查询价格，未知符号返回 0
func (t PriceTable) Price(symbol string) decimal.Decimal {
	return t[symbol]
}

// HasData 该符号是否有有效行情（0 表示无数据）
func (t PriceTable) HasData(symbol string) bool {
	return !t[symbol].IsZero()
}

// DaySpan 以天计的期限。Unbounded 为 true 表示永不发生（展示为 "Never"），
// 任何边界（JSON/CSV/展示）都不会出现 Inf/NaN。
type DaySpan struct {
	Days      decimal.Decimal `json:"days"`
	Unbounded bool            `json:"unbounded"`
}

func FiniteDays(days decimal.Decimal) DaySpan {
	return DaySpan{Days: days}
}

func UnboundedSpan() DaySpan {
	return DaySpan{Unbounded: true}
}

// Format 固定小数位格式化，Unbounded 输出 "Never"
func (s DaySpan) Format(places int32) string {
	if s.Unbounded {
		return "Never"
	}
	return s.Days.StringFixed(places)
}

// Metrics 单个资产在一张价格表下的收益指标，纯派生数据，不落库
type Metrics struct {
	AssetID  int              `json:"asset_id"`
	Name     string           `json:"name"`
	Category catalog.Category `json:"category"`
	Rarity   catalog.Rarity   `json:"rarity"`

	EnergyCostUSD        decimal.Decimal `json:"energy_cost_usd"`
	DurabilityCostUSD    decimal.Decimal `json:"durability_cost_usd"`
	CostPerCycleUSD      decimal.Decimal `json:"cost_per_cycle_usd"`
	RewardPerCycleUSD    decimal.Decimal `json:"reward_per_cycle_usd"`
	NetProfitPerCycleUSD decimal.Decimal `json:"net_profit_per_cycle_usd"`

	CyclesPerDay          int64   `json:"cycles_per_day"`
	Lifespan              DaySpan `json:"lifespan"` // 耐久耗尽前的天数
	EffectiveCyclesPerDay int64   `json:"effective_cycles_per_day"`

	DailyProfitUSD   decimal.Decimal `json:"daily_profit_usd"`
	WeeklyProfitUSD  decimal.Decimal `json:"weekly_profit_usd"`
	MonthlyProfitUSD decimal.Decimal `json:"monthly_profit_usd"`

	CraftingCostUSD decimal.Decimal `json:"crafting_cost_usd"`
	DailyROIPercent decimal.Decimal `json:"daily_roi_percent"`
	Payback         DaySpan         `json:"payback"`
}

// ComputeMetrics 纯函数：资产配置 + 价格表 → 收益指标。
// 无副作用，相同输入必得相同输出；所有除零分支都落到明确的哨兵值。
func ComputeMetrics(asset catalog.Asset, prices PriceTable) Metrics {
	m := Metrics{
		AssetID:  asset.ID,
		Name:     asset.Name,
		Category: asset.Category,
		Rarity:   asset.Rarity,
	}

	// 1-2. 能量/耐久消耗折算成代币再折算成 USD
	energyFARM := decimal.NewFromInt(int64(asset.PrimaryConsumption)).
		Div(decimal.NewFromInt(EnergyPerFARM))
	durabilityTOOL := decimal.NewFromInt(int64(asset.SecondaryConsumption)).
		Div(decimal.NewFromInt(DurabilityPerTOOL))
	m.EnergyCostUSD = energyFARM.Mul(prices.Price(catalog.TokenFARM))
	m.DurabilityCostUSD = durabilityTOOL.Mul(prices.Price(catalog.TokenTOOL))
	m.CostPerCycleUSD = m.EnergyCostUSD.Add(m.DurabilityCostUSD)

	// 3-4. 单周期产出与净收益（可以为负）
	m.RewardPerCycleUSD = asset.RewardPerCycle.Amount.
		Mul(prices.Price(asset.RewardPerCycle.Token))
	m.NetProfitPerCycleUSD = m.RewardPerCycleUSD.Sub(m.CostPerCycleUSD)

	// 5. 耐久耗尽前的总周期数；耐久不消耗则永不耗尽
	totalCycles := int64(0)
	unboundedLife := asset.SecondaryConsumption == 0
	if !unboundedLife {
		totalCycles = int64(asset.MaxDurability / asset.SecondaryConsumption)
	}

	// 6. 冷却允许的每日最大周期数（向下取整）
	m.CyclesPerDay = int64(secondsPerDay / asset.CycleCooldownSeconds)

	// 7-8. 耗尽天数与有效每日周期数。
	// 冷却超过一天时每日周期数取整为 0，视为没有日产能，寿命同样按无限处理。
	switch {
	case m.CyclesPerDay == 0:
		m.Lifespan = UnboundedSpan()
		m.EffectiveCyclesPerDay = 0
	case unboundedLife:
		m.Lifespan = UnboundedSpan()
		m.EffectiveCyclesPerDay = m.CyclesPerDay
	default:
		days := decimal.NewFromInt(totalCycles).Div(decimal.NewFromInt(m.CyclesPerDay))
		m.Lifespan = FiniteDays(days)
		if days.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			m.EffectiveCyclesPerDay = m.CyclesPerDay
		} else {
			// 不满一天就报废，日产能只剩余下的周期数
			m.EffectiveCyclesPerDay = totalCycles
		}
	}

	// 9. 日/周/月收益投影（月按 30 天近似）
	m.DailyProfitUSD = m.NetProfitPerCycleUSD.Mul(decimal.NewFromInt(m.EffectiveCyclesPerDay))
	m.WeeklyProfitUSD = m.DailyProfitUSD.Mul(seven)
	m.MonthlyProfitUSD = m.DailyProfitUSD.Mul(thirty)

	// 10. 制造总成本
	cost := decimal.Zero
	for _, c := range asset.CraftingCosts {
		cost = cost.Add(c.Amount.Mul(prices.Price(c.Token)))
	}
	m.CraftingCostUSD = cost

	// 11. 日 ROI：只有日收益为正且成本为正才计算，其余一律 0%
	if m.DailyProfitUSD.IsPositive() && m.CraftingCostUSD.IsPositive() {
		m.DailyROIPercent = m.DailyProfitUSD.Div(m.CraftingCostUSD).Mul(hundred)
	} else {
		m.DailyROIPercent = decimal.Zero
	}

	// 12. 回本天数：日收益不为正则永不回本
	if m.DailyProfitUSD.IsPositive() {
		m.Payback = FiniteDays(m.CraftingCostUSD.Div(m.DailyProfitUSD))
	} else {
		m.Payback = UnboundedSpan()
	}

	return m
}

// ComputeAll 按目录顺序为每个资产计算指标
func ComputeAll(assets []catalog.Asset, prices PriceTable) []Metrics {
	out := make([]Metrics, 0, len(assets))
	for _, a := range assets {
		out = append(out, ComputeMetrics(a, prices))
	}
	return out
}
