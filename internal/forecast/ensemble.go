package forecast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// extractMembers pulls the per-member temperature series out of an
// ensemble response's "daily" object.
//
// The object holds one array per member under keys like
// "temperature_2m_max_member01", plus non-temperature keys such as
// "time". Every temperature key counts, and member order must match
// the response, so the object is walked with a token decoder instead
// of a map (Go map iteration would scramble the order).
func extractMembers(body []byte) (today, tomorrow []float64, err error) {
	var payload struct {
		Daily json.RawMessage `json:"daily"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, fmt.Errorf("unmarshal: %w", err)
	}
	if len(payload.Daily) == 0 {
		return nil, nil, fmt.Errorf("response has no daily object")
	}

	dec := json.NewDecoder(bytes.NewReader(payload.Daily))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("decode daily: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("daily is not an object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("decode daily key: %w", err)
		}
		key := tok.(string)

		if !strings.Contains(key, "temperature") {
			// Skip the value ("time" and friends).
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, nil, fmt.Errorf("skip %s: %w", key, err)
			}
			continue
		}

		var values []float64
		if err := dec.Decode(&values); err != nil {
			return nil, nil, fmt.Errorf("decode %s: %w", key, err)
		}
		if len(values) < 2 {
			return nil, nil, fmt.Errorf("member %s: want 2 daily values, got %d", key, len(values))
		}

		today = append(today, values[0])
		tomorrow = append(tomorrow, values[1])
	}

	if len(today) == 0 {
		return nil, nil, fmt.Errorf("response has no temperature members")
	}

	return today, tomorrow, nil
}
