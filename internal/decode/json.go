package decode

import (
	"bytes"
	"encoding/json"
	"strconv"

	"tramflux/internal/marker"
)

// JSON decodes the later feed version: a JSON array of marker objects.
// Numbers keep their literal digits (json.Number) so integer fields survive
// the round trip into the loosely typed marker record unchanged.
type JSON struct{}

func (JSON) Decode(body []byte) ([]marker.Raw, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, &DecodeError{Format: "json", Err: err}
	}

	markers := make([]marker.Raw, 0, len(rows))
	for _, row := range rows {
		m := make(marker.Raw, len(row))
		for k, v := range row {
			switch val := v.(type) {
			case string:
				m[k] = val
			case json.Number:
				m[k] = val.String()
			case bool:
				m[k] = strconv.FormatBool(val)
			case nil:
				// absent upstream value, leave the key out
			default:
				// nested structures have no normalizer mapping; keep the
				// JSON text so nothing is silently lost
				if b, err := json.Marshal(val); err == nil {
					m[k] = string(b)
				}
			}
		}
		markers = append(markers, m)
	}
	return markers, nil
}
