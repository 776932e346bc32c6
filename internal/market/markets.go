package market

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jshelley/wxmarket-data/internal/cities"
)

// GetMarkets fetches a page of markets.
func (c *Client) GetMarkets(ctx context.Context, opts GetMarketsOptions) (*MarketsResponse, error) {
	query := url.Values{}

	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}
	if opts.SeriesTicker != "" {
		query.Set("series_ticker", opts.SeriesTicker)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}

	var resp MarketsResponse
	if err := c.get(ctx, "/markets", query, &resp); err != nil {
		return nil, fmt.Errorf("get markets: %w", err)
	}

	return &resp, nil
}

// GetOrderbook fetches the orderbook for a market.
func (c *Client) GetOrderbook(ctx context.Context, ticker string) (*OrderbookResponse, error) {
	var resp OrderbookResponse
	if err := c.get(ctx, "/markets/"+ticker+"/orderbook", nil, &resp); err != nil {
		return nil, fmt.Errorf("get orderbook %s: %w", ticker, err)
	}

	return &resp, nil
}

// DateToken formats a time as the settlement-date token embedded in
// contract tickers: two-digit year, three-letter month, two-digit day,
// upper-cased (e.g. "24MAR05").
func DateToken(t time.Time) string {
	return strings.ToUpper(t.Format("06Jan02"))
}

// ListEligibleContracts returns the tickers of live contracts in the
// (city, direction) series settling on the target day.
//
// The series-list endpoint's "open" status filter is looser than a
// market's own status, so markets are re-filtered to status "active"
// before matching the date token. An empty result is normal: the
// series simply has no live contracts for that day yet.
func (c *Client) ListEligibleContracts(ctx context.Context, city cities.City, direction cities.Direction, isToday bool) ([]string, error) {
	series := city.Series(direction)

	target := c.now().In(c.loc)
	if !isToday {
		target = target.AddDate(0, 0, 1)
	}
	token := DateToken(target)

	opts := GetMarketsOptions{
		SeriesTicker: series,
		Status:       "open",
		Limit:        1000,
	}

	var eligible []string
	for {
		resp, err := c.GetMarkets(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("list contracts %s: %w", series, err)
		}

		for _, m := range resp.markets() {
			if m.Status != "active" {
				continue
			}
			if !strings.Contains(m.Ticker, token) {
				continue
			}
			eligible = append(eligible, m.Ticker)
		}

		if resp.Cursor == "" {
			break
		}
		opts.Cursor = resp.Cursor
	}

	c.logger.Debug("listed eligible contracts",
		"series", series,
		"token", token,
		"count", len(eligible),
	)

	return eligible, nil
}
