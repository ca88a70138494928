package export

import (
	"bytes"
	"encoding/csv"

	"github.com/qs3c/ranch_roi_server/internal/economics"
)

// Filename 下载文件名
const Filename = "ranchers-roi-analysis.csv"

// ContentType 下载 MIME 类型
const ContentType = "text/csv"

var header = []string{
	"Name", "Category", "Rarity",
	"Daily Profit", "Weekly Profit", "Monthly Profit",
	"ROI %", "Payback Days", "Crafting Cost",
}

// Marshal 把指标列表序列化成 CSV：一行表头 + 每个资产一行。
// 收益保留 4 位小数，ROI 保留 2 位，回本天数取整，永不回本输出 "Never"。
// 已知限制：资产名不允许包含逗号（目录数据保证）。
func Marshal(list []economics.Metrics) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, m := range list {
		row := []string{
			m.Name,
			string(m.Category),
			string(m.Rarity),
			m.DailyProfitUSD.StringFixed(4),
			m.WeeklyProfitUSD.StringFixed(4),
			m.MonthlyProfitUSD.StringFixed(4),
			m.DailyROIPercent.StringFixed(2),
			m.Payback.Format(0),
			m.CraftingCostUSD.StringFixed(4),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
