package market

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jshelley/wxmarket-data/internal/cities"
)

// refDate pins the reference clock to 2024-03-05.
func refDate() time.Time {
	return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
}

func testCity() cities.City {
	c, ok := cities.ByCode("ny")
	if !ok {
		panic("ny missing from city table")
	}
	return c
}

func TestDateToken(t *testing.T) {
	tests := []struct {
		date     time.Time
		expected string
	}{
		{time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), "24MAR05"},
		{time.Date(2024, time.March, 6, 23, 59, 0, 0, time.UTC), "24MAR06"},
		{time.Date(2025, time.December, 31, 12, 0, 0, 0, time.UTC), "25DEC31"},
		{time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "26JAN01"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := DateToken(tt.date); got != tt.expected {
				t.Errorf("DateToken(%v) = %q, want %q", tt.date, got, tt.expected)
			}
		})
	}
}

func TestListEligibleContracts(t *testing.T) {
	t.Run("filters by status and date token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("series_ticker"); got != "KXHIGHNY" {
				t.Errorf("series_ticker = %q, want %q", got, "KXHIGHNY")
			}
			if got := r.URL.Query().Get("status"); got != "open" {
				t.Errorf("status = %q, want %q", got, "open")
			}
			w.Write([]byte(`{
				"markets": [
					{"ticker": "KXHIGHNY-24MAR05-B52", "status": "active"},
					{"ticker": "KXHIGHNY-24MAR05-B54", "status": "initialized"},
					{"ticker": "KXHIGHNY-24MAR06-B52", "status": "active"},
					{"ticker": "KXHIGHNY-24MAR05-B56", "status": "active"}
				],
				"cursor": ""
			}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, time.UTC, WithClock(refDate))

		tickers, err := c.ListEligibleContracts(context.Background(), testCity(), cities.High, true)
		if err != nil {
			t.Fatalf("ListEligibleContracts: %v", err)
		}

		want := []string{"KXHIGHNY-24MAR05-B52", "KXHIGHNY-24MAR05-B56"}
		if len(tickers) != len(want) {
			t.Fatalf("got %d tickers %v, want %d", len(tickers), tickers, len(want))
		}
		for i := range want {
			if tickers[i] != want[i] {
				t.Errorf("tickers[%d] = %q, want %q", i, tickers[i], want[i])
			}
		}
	})

	t.Run("tomorrow uses next day's token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"markets": [
					{"ticker": "KXHIGHNY-24MAR05-B52", "status": "active"},
					{"ticker": "KXHIGHNY-24MAR06-B52", "status": "active"}
				],
				"cursor": ""
			}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, time.UTC, WithClock(refDate))

		tickers, err := c.ListEligibleContracts(context.Background(), testCity(), cities.High, false)
		if err != nil {
			t.Fatalf("ListEligibleContracts: %v", err)
		}
		if len(tickers) != 1 || tickers[0] != "KXHIGHNY-24MAR06-B52" {
			t.Errorf("tickers = %v, want [KXHIGHNY-24MAR06-B52]", tickers)
		}
	})

	t.Run("accepts legacy market key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"market": [
					{"ticker": "KXHIGHNY-24MAR05-B52", "status": "active"}
				],
				"cursor": ""
			}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, time.UTC, WithClock(refDate))

		tickers, err := c.ListEligibleContracts(context.Background(), testCity(), cities.High, true)
		if err != nil {
			t.Fatalf("ListEligibleContracts: %v", err)
		}
		if len(tickers) != 1 || tickers[0] != "KXHIGHNY-24MAR05-B52" {
			t.Errorf("tickers = %v, want [KXHIGHNY-24MAR05-B52]", tickers)
		}
	})

	t.Run("no live contracts is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"markets": [], "cursor": ""}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, time.UTC, WithClock(refDate))

		tickers, err := c.ListEligibleContracts(context.Background(), testCity(), cities.High, true)
		if err != nil {
			t.Fatalf("ListEligibleContracts: %v", err)
		}
		if len(tickers) != 0 {
			t.Errorf("tickers = %v, want empty", tickers)
		}
	})

	t.Run("paginates with cursor", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if r.URL.Query().Get("cursor") == "" {
				w.Write([]byte(`{
					"markets": [{"ticker": "KXHIGHNY-24MAR05-B52", "status": "active"}],
					"cursor": "page2"
				}`))
				return
			}
			if got := r.URL.Query().Get("cursor"); got != "page2" {
				t.Errorf("cursor = %q, want %q", got, "page2")
			}
			w.Write([]byte(`{
				"markets": [{"ticker": "KXHIGHNY-24MAR05-B54", "status": "active"}],
				"cursor": ""
			}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, time.UTC, WithClock(refDate))

		tickers, err := c.ListEligibleContracts(context.Background(), testCity(), cities.High, true)
		if err != nil {
			t.Fatalf("ListEligibleContracts: %v", err)
		}
		if calls != 2 {
			t.Errorf("server calls = %d, want 2", calls)
		}
		if len(tickers) != 2 {
			t.Errorf("tickers = %v, want 2 entries", tickers)
		}
	})

	t.Run("api error propagates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := NewClient(server.URL, time.UTC, WithClock(refDate))

		_, err := c.ListEligibleContracts(context.Background(), testCity(), cities.High, true)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error %v is not an *APIError", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
		}
	})
}

func TestFetchPrice(t *testing.T) {
	t.Run("derives price from no book", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/markets/KXHIGHNY-24MAR05-B52/orderbook" {
				t.Errorf("path = %q", r.URL.Path)
			}
			w.Write([]byte(`{"orderbook": {"yes": [[10, 5]], "no": [[30, 100], [45, 50], [60, 10]]}}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, time.UTC)

		price, err := c.FetchPrice(context.Background(), "KXHIGHNY-24MAR05-B52")
		if err != nil {
			t.Fatalf("FetchPrice: %v", err)
		}
		if price != 40 {
			t.Errorf("price = %d, want 40", price)
		}
	})

	t.Run("empty book yields sentinel", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"orderbook": {"yes": [], "no": []}}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, time.UTC)

		price, err := c.FetchPrice(context.Background(), "KXHIGHNY-24MAR05-B52")
		if err != nil {
			t.Fatalf("FetchPrice: %v", err)
		}
		if price != NoPrice {
			t.Errorf("price = %d, want %d", price, NoPrice)
		}
	})

	t.Run("null price level yields sentinel", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"orderbook": {"no": [[30, 100], [null, 5]]}}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, time.UTC)

		price, err := c.FetchPrice(context.Background(), "KXHIGHNY-24MAR05-B52")
		if err != nil {
			t.Fatalf("FetchPrice: %v", err)
		}
		if price != NoPrice {
			t.Errorf("price = %d, want %d", price, NoPrice)
		}
	})
}
