package pincode

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"nexgen/internal/domain"
)

// ListResult is the output of list mode.
type ListResult struct {
	Entries []domain.PincodeEntry
	Total   int
	Unique  int
}

// Dedupe walks records in order and keeps the first record seen for each
// pincode. Records without a pincode are skipped.
func Dedupe(records []Record) *ListResult {
	entries := make([]domain.PincodeEntry, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		pin, ok := rec.Pincode()
		if !ok {
			continue
		}
		key := identity(pin)
		if seen[key] {
			continue
		}
		seen[key] = true

		entries = append(entries, domain.PincodeEntry{
			Pincode: pin,
			City:    rec.District(),
			State:   rec.StateName(),
		})
	}

	return &ListResult{Entries: entries, Total: len(records), Unique: len(entries)}
}

// MapResult is the output of map mode.
type MapResult struct {
	Locations *LocationMap
	Total     int
}

// Unique is the number of distinct pincodes in the map.
func (r *MapResult) Unique() int {
	return r.Locations.Len()
}

// BuildMap walks records in order and maps each pincode to its location.
// A later record for the same pincode overwrites the earlier one. Keys are
// the canonical text of the pincode, so 110001 and 110001.0 share a key.
func BuildMap(records []Record) *MapResult {
	locations := NewLocationMap()
	for _, rec := range records {
		pin, ok := rec.Pincode()
		if !ok {
			continue
		}
		locations.Set(canonicalText(pin), domain.Location{
			City:  rec.District(),
			State: rec.StateName(),
		})
	}
	return &MapResult{Locations: locations, Total: len(records)}
}

// identity keys a pincode by JSON type and value, so 110001 and "110001"
// are different pincodes while 110001 and 110001.0 are the same.
func identity(pin any) string {
	switch pin.(type) {
	case string:
		return "s:" + canonicalText(pin)
	case json.Number:
		return "n:" + canonicalText(pin)
	default:
		return "v:" + canonicalText(pin)
	}
}

// canonicalText renders a pincode so that equal numbers render alike:
// 110001, 110001.0 and 1.10001e5 all become "110001". Integer literals are
// kept as written, so values beyond float precision stay distinct.
func canonicalText(pin any) string {
	n, ok := pin.(json.Number)
	if !ok {
		return domain.TextValue(pin)
	}
	text := n.String()
	if !strings.ContainsAny(text, ".eE") {
		return text
	}
	f, err := n.Float64()
	if err != nil {
		return text
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
