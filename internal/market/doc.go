// Package market provides the Kalshi REST client used to find live
// temperature contracts and derive implied prices from their orderbooks.
//
// REST endpoint:
//   - Production: https://api.elections.kalshi.com/trade-api/v2
//
// Only public read endpoints are used; no authentication is required.
package market
