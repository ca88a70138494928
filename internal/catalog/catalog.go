package catalog

import (
	"github.com/shopspring/decimal"
)

// 代币符号（固定三种，行情与估值只认这三个）
const (
	TokenFARM  = "FARM"
	TokenRANCH = "RANCH"
	TokenTOOL  = "TOOL"
)

// Symbols 返回固定的代币符号列表
func Symbols() []string {
	return []string{TokenFARM, TokenRANCH, TokenTOOL}
}

type Category string

const (
	CategoryRanch Category = "Ranch"
	CategoryFarm  Category = "Farm"
	CategoryTool  Category = "Tool"
)

type Rarity string

const (
	RarityBasic    Rarity = "Basic"
	RarityCommon   Rarity = "Common"
	RarityUncommon Rarity = "Uncommon"
	RarityRare     Rarity = "Rare"
)

// TokenAmount 代币数量（数量 + 符号）
type TokenAmount struct {
	Amount decimal.Decimal `json:"amount"`
	Token  string          `json:"token"`
}

// Asset 可制造资产的静态配置，进程启动时确定，运行期不变
type Asset struct {
	ID                   int           `json:"id"`
	Name                 string        `json:"name"`
	Category             Category      `json:"category"`
	Rarity               Rarity        `json:"rarity"`
	PrimaryConsumption   int           `json:"primary_consumption"`   // 每周期消耗的能量
	SecondaryConsumption int           `json:"secondary_consumption"` // 每周期消耗的耐久
	MaxDurability        int           `json:"max_durability"`
	CraftingCosts        []TokenAmount `json:"crafting_costs"`
	RewardPerCycle       TokenAmount   `json:"reward_per_cycle"`
	CycleCooldownSeconds int           `json:"cycle_cooldown_seconds"`
}

func amt(s, token string) TokenAmount {
	return TokenAmount{Amount: decimal.RequireFromString(s), Token: token}
}

var assets = []Asset{
	{
		ID: 1, Name: "Chicken", Category: CategoryRanch, Rarity: RarityBasic,
		PrimaryConsumption: 2, SecondaryConsumption: 1, MaxDurability: 40,
		CraftingCosts:  []TokenAmount{amt("120", TokenRANCH), amt("10", TokenTOOL)},
		RewardPerCycle: amt("0.3", TokenRANCH), CycleCooldownSeconds: 14400,
	},
	{
		ID: 2, Name: "Sheep", Category: CategoryRanch, Rarity: RarityCommon,
		PrimaryConsumption: 3, SecondaryConsumption: 2, MaxDurability: 60,
		CraftingCosts:  []TokenAmount{amt("300", TokenRANCH), amt("25", TokenTOOL)},
		RewardPerCycle: amt("0.8", TokenRANCH), CycleCooldownSeconds: 7200,
	},
	{
		ID: 3, Name: "Dairy Cow", Category: CategoryRanch, Rarity: RarityUncommon,
		PrimaryConsumption: 5, SecondaryConsumption: 3, MaxDurability: 100,
		CraftingCosts:  []TokenAmount{amt("135", TokenTOOL), amt("800", TokenRANCH)},
		RewardPerCycle: amt("1.7", TokenRANCH), CycleCooldownSeconds: 3600,
	},
	{
		ID: 4, Name: "Prize Bull", Category: CategoryRanch, Rarity: RarityRare,
		PrimaryConsumption: 8, SecondaryConsumption: 5, MaxDurability: 200,
		CraftingCosts:  []TokenAmount{amt("2500", TokenRANCH), amt("400", TokenTOOL)},
		RewardPerCycle: amt("3.5", TokenRANCH), CycleCooldownSeconds: 3600,
	},
	{
		ID: 5, Name: "Corn Plot", Category: CategoryFarm, Rarity: RarityBasic,
		PrimaryConsumption: 1, SecondaryConsumption: 1, MaxDurability: 30,
		CraftingCosts:  []TokenAmount{amt("80", TokenFARM), amt("5", TokenTOOL)},
		RewardPerCycle: amt("0.25", TokenFARM), CycleCooldownSeconds: 21600,
	},
	{
		ID: 6, Name: "Wheat Field", Category: CategoryFarm, Rarity: RarityCommon,
		PrimaryConsumption: 3, SecondaryConsumption: 2, MaxDurability: 80,
		CraftingCosts:  []TokenAmount{amt("350", TokenFARM), amt("30", TokenTOOL)},
		RewardPerCycle: amt("1.1", TokenFARM), CycleCooldownSeconds: 10800,
	},
	{
		// 温室不磨损耐久，生命周期无限
		ID: 7, Name: "Greenhouse", Category: CategoryFarm, Rarity: RarityRare,
		PrimaryConsumption: 6, SecondaryConsumption: 0, MaxDurability: 150,
		CraftingCosts:  []TokenAmount{amt("1800", TokenFARM), amt("220", TokenTOOL)},
		RewardPerCycle: amt("2.4", TokenFARM), CycleCooldownSeconds: 7200,
	},
	{
		ID: 8, Name: "Harvester", Category: CategoryTool, Rarity: RarityUncommon,
		PrimaryConsumption: 10, SecondaryConsumption: 4, MaxDurability: 120,
		CraftingCosts:  []TokenAmount{amt("900", TokenTOOL)},
		RewardPerCycle: amt("2.2", TokenTOOL), CycleCooldownSeconds: 5400,
	},
}

// All 返回全部资产配置（副本，调用方不能改动目录本身）
func All() []Asset {
	out := make([]Asset, len(assets))
	copy(out, assets)
	return out
}

// ByID 按 ID 查找资产配置
func ByID(id int) (Asset, bool) {
	for _, a := range assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}
