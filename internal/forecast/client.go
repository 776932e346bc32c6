package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jshelley/wxmarket-data/internal/cities"
)

// Client provides access to the Open-Meteo forecast and ensemble APIs.
type Client struct {
	forecastURL string
	ensembleURL string
	httpClient  *http.Client
	logger      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new forecast client.
func NewClient(forecastURL, ensembleURL string, opts ...ClientOption) *Client {
	c := &Client{
		forecastURL: forecastURL,
		ensembleURL: ensembleURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// baseQuery returns the parameters shared by both endpoints: the
// city's coordinates and a two-day daily aggregate in Fahrenheit.
func baseQuery(city cities.City, direction cities.Direction) url.Values {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(city.Lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(city.Lon, 'f', -1, 64))
	query.Set("daily", direction.DailyVariable())
	query.Set("timezone", "auto")
	query.Set("forecast_days", "2")
	query.Set("temperature_unit", "fahrenheit")
	return query
}

// fetch performs a GET and returns the raw response body.
func (c *Client) fetch(ctx context.Context, baseURL string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("forecast api error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return body, nil
}

// FetchSingle fetches the deterministic-model forecast for the city's
// daily high or low, returning today's and tomorrow's values.
func (c *Client) FetchSingle(ctx context.Context, city cities.City, direction cities.Direction) (today, tomorrow float64, err error) {
	body, err := c.fetch(ctx, c.forecastURL, baseQuery(city, direction))
	if err != nil {
		return 0, 0, fmt.Errorf("single forecast %s/%s: %w", city.Code, direction, err)
	}

	var payload struct {
		Daily struct {
			TemperatureMax []float64 `json:"temperature_2m_max"`
			TemperatureMin []float64 `json:"temperature_2m_min"`
		} `json:"daily"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, 0, fmt.Errorf("single forecast %s/%s: unmarshal: %w", city.Code, direction, err)
	}

	values := payload.Daily.TemperatureMax
	if direction == cities.Low {
		values = payload.Daily.TemperatureMin
	}
	if len(values) < 2 {
		return 0, 0, fmt.Errorf("single forecast %s/%s: want 2 daily values, got %d", city.Code, direction, len(values))
	}

	return values[0], values[1], nil
}

// FetchEnsemble fetches the per-member ensemble forecast for the
// city's daily high or low. The returned slices hold one raw value per
// ensemble member, today and tomorrow respectively, in the order the
// members appear in the response.
func (c *Client) FetchEnsemble(ctx context.Context, city cities.City, direction cities.Direction) (today, tomorrow []float64, err error) {
	query := baseQuery(city, direction)
	query.Set("models", city.EnsembleModel)

	body, err := c.fetch(ctx, c.ensembleURL, query)
	if err != nil {
		return nil, nil, fmt.Errorf("ensemble forecast %s/%s: %w", city.Code, direction, err)
	}

	today, tomorrow, err = extractMembers(body)
	if err != nil {
		return nil, nil, fmt.Errorf("ensemble forecast %s/%s: %w", city.Code, direction, err)
	}

	c.logger.Debug("fetched ensemble forecast",
		"city", city.Code,
		"direction", direction,
		"model", city.EnsembleModel,
		"members", len(today),
	)

	return today, tomorrow, nil
}
