package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cryptoview/internal/domain"

	"github.com/shopspring/decimal"
)

// tickerPriceResponse is the Binance spot ticker payload. The price arrives as
// a JSON string.
type tickerPriceResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// BinanceClient fetches current spot prices from the Binance REST API.
// One GET per symbol, no retry: a failed lookup is retried on the next fetch
// cycle by the caller.
type BinanceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBinanceClient creates a new Binance REST client.
func NewBinanceClient(cfg *Config) *BinanceClient {
	return &BinanceClient{
		baseURL: cfg.API.Binance.RestURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.API.Binance.TimeoutSec) * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
	}
}

// GetPrice returns the current spot price for symbol.
func (c *BinanceClient) GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	reqURL := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", c.baseURL, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Zero, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("binance request [%s]: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		io.Copy(io.Discard, resp.Body)
		return decimal.Zero, fmt.Errorf("binance rejected %s: %w", symbol, domain.ErrInvalidSymbol)
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return decimal.Zero, fmt.Errorf("binance status %d [%s]: %w", resp.StatusCode, symbol, domain.ErrPriceUnavailable)
	}

	var body tickerPriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("binance decode [%s]: %w", symbol, err)
	}

	price, err := decimal.NewFromString(body.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("binance price format [%s] %q: %w", symbol, body.Price, err)
	}

	return price, nil
}
