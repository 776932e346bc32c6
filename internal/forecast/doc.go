// Package forecast provides the Open-Meteo client used to fetch daily
// high/low temperature forecasts.
//
// Two endpoints are used:
//   - https://api.open-meteo.com/v1/forecast (single deterministic model)
//   - https://ensemble-api.open-meteo.com/v1/ensemble (per-member output)
//
// All temperatures are requested in Fahrenheit, matching how the
// contracts settle.
package forecast
