package cities

import "fmt"

// Direction selects which daily temperature extreme a forecast or
// market query is about.
type Direction string

const (
	High Direction = "high"
	Low  Direction = "low"
)

// DailyVariable returns the Open-Meteo daily variable name for the direction.
func (d Direction) DailyVariable() string {
	if d == Low {
		return "temperature_2m_min"
	}
	return "temperature_2m_max"
}

// City is one tracked city. All fields are required.
type City struct {
	Code          string  // Short code used in records and the schedule table
	Lat           float64 // Station coordinates (not city center)
	Lon           float64
	EnsembleModel string // Open-Meteo ensemble model id
	HighSeries    string // Kalshi series ticker for daily-high contracts
	LowSeries     string // Kalshi series ticker for daily-low contracts
}

// Series returns the city's series ticker for the given direction.
func (c City) Series(d Direction) string {
	if d == Low {
		return c.LowSeries
	}
	return c.HighSeries
}

// table lists every tracked city. Coordinates are the settlement
// stations the contracts resolve against.
var table = []City{
	{Code: "ny", Lat: 40.77898, Lon: -73.96925, EnsembleModel: "ecmwf_ifs025", HighSeries: "KXHIGHNY", LowSeries: "KXLOWTNY"},
	{Code: "mia", Lat: 25.78805, Lon: -80.31694, EnsembleModel: "ecmwf_ifs025", HighSeries: "KXHIGHMIA", LowSeries: "KXLOWTMIA"},
	{Code: "phil", Lat: 39.87326, Lon: -75.22681, EnsembleModel: "ecmwf_ifs025", HighSeries: "KXHIGHPHIL", LowSeries: "KXLOWTPHIL"},
	{Code: "chi", Lat: 41.78412, Lon: -87.75514, EnsembleModel: "ecmwf_ifs025", HighSeries: "KXHIGHCHI", LowSeries: "KXLOWTCHI"},
	{Code: "aus", Lat: 30.18304, Lon: -97.67987, EnsembleModel: "gfs_seamless", HighSeries: "KXHIGHAUS", LowSeries: "KXLOWTAUS"},
	{Code: "den", Lat: 39.76746, Lon: -104.86948, EnsembleModel: "gfs_seamless", HighSeries: "KXHIGHDEN", LowSeries: "KXLOWTDEN"},
	{Code: "la", Lat: 33.93816, Lon: -118.38660, EnsembleModel: "ecmwf_ifs025", HighSeries: "KXHIGHLAX", LowSeries: "KXLOWTLAX"},
}

var byCode = func() map[string]City {
	m := make(map[string]City, len(table))
	for _, c := range table {
		m[c.Code] = c
	}
	return m
}()

// All returns every tracked city in a stable order.
func All() []City {
	out := make([]City, len(table))
	copy(out, table)
	return out
}

// ByCode looks up a city by its short code.
func ByCode(code string) (City, bool) {
	c, ok := byCode[code]
	return c, ok
}

// Codes returns the short codes of all tracked cities, in table order.
func Codes() []string {
	out := make([]string, len(table))
	for i, c := range table {
		out[i] = c.Code
	}
	return out
}

// Validate checks that every declared city has a complete entry.
func Validate() error {
	seen := make(map[string]bool, len(table))
	for _, c := range table {
		if c.Code == "" {
			return fmt.Errorf("city with empty code in table")
		}
		if seen[c.Code] {
			return fmt.Errorf("city %q declared twice", c.Code)
		}
		seen[c.Code] = true

		if c.Lat == 0 || c.Lon == 0 {
			return fmt.Errorf("city %q missing coordinates", c.Code)
		}
		if c.EnsembleModel == "" {
			return fmt.Errorf("city %q missing ensemble model", c.Code)
		}
		if c.HighSeries == "" || c.LowSeries == "" {
			return fmt.Errorf("city %q missing series tickers", c.Code)
		}
	}
	return nil
}
