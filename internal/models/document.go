package models

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// Document is the full persisted mapping of date key (YYYY-MM-DD) to that
// day's record. Day payloads stay raw JSON so a saved record reads back
// byte-for-byte; the typed lenient view is applied only when aggregating.
type Document map[string]json.RawMessage

// Revision is the opaque content hash identifying the stored version of
// the serialized Document. An empty Revision means the file does not
// exist yet.
type Revision string

// DayRecord maps member name to that member's consumption for one day.
type DayRecord map[string]MemberEntry

// MemberEntry holds one member's quantities for a single day, each in the
// beverage's native unit.
type MemberEntry struct {
	Baijiu  float64 `json:"baijiu"`
	Beer    float64 `json:"beer"`
	Red     float64 `json:"red"`
	Qingdao float64 `json:"qingdao"`
}

// UnmarshalJSON coerces each quantity leniently: absent, null or
// non-numeric values count as zero, numeric strings are accepted.
func (e *MemberEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Baijiu = coerce(raw["baijiu"])
	e.Beer = coerce(raw["beer"])
	e.Red = coerce(raw["red"])
	e.Qingdao = coerce(raw["qingdao"])
	return nil
}

func coerce(v interface{}) float64 {
	switch v.(type) {
	case bool, nil:
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}

// Day decodes one date's raw payload into its typed record. Payloads that
// are not an object of member entries yield an empty record.
func (d Document) Day(key string) DayRecord {
	raw, ok := d[key]
	if !ok {
		return nil
	}
	var rec DayRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil
	}
	return rec
}

// Merge overwrites d's keys with every key present in other. Keys absent
// from other are preserved.
func (d Document) Merge(other Document) {
	for date, rec := range other {
		d[date] = rec
	}
}
