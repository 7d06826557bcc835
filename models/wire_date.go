package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// WireDate is a timestamp that tolerates every shape chat servers emit:
// RFC 3339 strings, raw millisecond numbers and the legacy {"$date": millis}
// object. Values unmarshal into UTC.
type WireDate struct {
	time.Time
}

// UnmarshalJSON implements [json.Unmarshaler].
func (d *WireDate) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("error decoding wire date: %w", err)
	}

	switch typed := value.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339, typed)
		if err != nil {
			return fmt.Errorf("error parsing wire date %q: %w", typed, err)
		}
		d.Time = parsed.UTC()
		return nil
	case float64:
		d.Time = time.UnixMilli(int64(typed)).UTC()
		return nil
	case map[string]any:
		millis, ok := typed["$date"].(float64)
		if !ok {
			return fmt.Errorf("wire date object is missing the $date field")
		}
		d.Time = time.UnixMilli(int64(millis)).UTC()
		return nil
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported wire date shape %T", value)
	}
}

// MarshalJSON implements [json.Marshaler]. Dates are always written in the
// RFC 3339 form regardless of the shape they were read from.
func (d WireDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339Nano))
}

// WireDateFromJSON extracts a timestamp from a loosely-typed payload value.
// The second return reports whether the value carried a usable date.
func WireDateFromJSON(raw gjson.Result) (WireDate, bool) {
	switch {
	case !raw.Exists():
		return WireDate{}, false
	case raw.Type == gjson.String:
		parsed, err := time.Parse(time.RFC3339, raw.String())
		if err != nil {
			return WireDate{}, false
		}
		return WireDate{Time: parsed.UTC()}, true
	case raw.Type == gjson.Number:
		return WireDate{Time: time.UnixMilli(raw.Int()).UTC()}, true
	case raw.IsObject():
		millis := raw.Get("$date")
		if !millis.Exists() {
			return WireDate{}, false
		}
		return WireDate{Time: time.UnixMilli(millis.Int()).UTC()}, true
	default:
		return WireDate{}, false
	}
}
