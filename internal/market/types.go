package market

// MarketsResponse from GET /markets.
//
// Older API revisions keyed the array "market"; the current one uses
// "markets". Both are accepted and merged by the markets accessor.
type MarketsResponse struct {
	Markets       []Market `json:"markets"`
	LegacyMarkets []Market `json:"market"`
	Cursor        string   `json:"cursor"`
}

func (r *MarketsResponse) markets() []Market {
	if len(r.Markets) > 0 {
		return r.Markets
	}
	return r.LegacyMarkets
}

// Market represents a market from the Kalshi API. Only the fields the
// collector needs are decoded.
type Market struct {
	Ticker      string `json:"ticker"`
	EventTicker string `json:"event_ticker"`
	Status      string `json:"status"`
	CloseTime   string `json:"close_time"`
}

// OrderbookResponse from GET /markets/{ticker}/orderbook.
type OrderbookResponse struct {
	Orderbook Orderbook `json:"orderbook"`
}

// Orderbook holds [price_cents, quantity] levels per side. Both the
// row and its price can come back null, so levels decode as pointers.
type Orderbook struct {
	Yes [][]*int `json:"yes"`
	No  [][]*int `json:"no"`
}

// GetMarketsOptions configures a GetMarkets request.
type GetMarketsOptions struct {
	Limit        int
	Cursor       string
	SeriesTicker string
	Status       string
}
