package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client 行情数据源客户端，每个代币符号一次独立请求
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// priceResponse 行情接口返回体；usd_price 缺失按 0 处理（无数据，不是错误）
type priceResponse struct {
	USDPrice decimal.Decimal `json:"usd_price"`
}

// Outcome 单个符号的抓取结果：成功带价格，失败带错误，二者互斥
type Outcome struct {
	Symbol string
	Price  decimal.Decimal
	Err    error
}

// OK 该符号是否抓取成功
func (o Outcome) OK() bool {
	return o.Err == nil
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchPrice 抓取单个符号的 USD 价格
// GET {base}/v1/tokens/{SYMBOL}/price
func (c *Client) FetchPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/v1/tokens/%s/price", c.baseURL, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch price for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Zero, fmt.Errorf("market api error for %s: %s: %s", symbol, resp.Status, string(body))
	}

	var pr priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode price for %s: %w", symbol, err)
	}

	if pr.USDPrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price for %s: %s", symbol, pr.USDPrice)
	}

	return pr.USDPrice, nil
}
