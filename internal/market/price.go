package market

import "context"

// NoPrice is the sentinel recorded when a contract's NO book is empty
// or has a null price level, so no implied price can be derived.
const NoPrice = -1

// PriceFromNoBook derives the implied YES price from the NO side of an
// orderbook: 100 minus the best (highest) NO bid. Returns NoPrice when
// the book is empty or any row is missing its price.
func PriceFromNoBook(no [][]*int) int {
	if len(no) == 0 {
		return NoPrice
	}

	best := 0
	for _, row := range no {
		if len(row) == 0 || row[0] == nil {
			return NoPrice
		}
		if *row[0] > best {
			best = *row[0]
		}
	}

	return 100 - best
}

// FetchPrice fetches a contract's orderbook and derives its implied
// YES price in cents.
func (c *Client) FetchPrice(ctx context.Context, ticker string) (int, error) {
	resp, err := c.GetOrderbook(ctx, ticker)
	if err != nil {
		return 0, err
	}

	return PriceFromNoBook(resp.Orderbook.No), nil
}
