package pincode

import (
	"bytes"
	"encoding/json"

	"nexgen/internal/domain"
)

// LocationMap is a pincode -> location map that remembers first-insertion
// order so the map artifact is stable across runs.
type LocationMap struct {
	keys   []string
	values map[string]domain.Location
}

// NewLocationMap creates an empty LocationMap.
func NewLocationMap() *LocationMap {
	return &LocationMap{values: make(map[string]domain.Location)}
}

// Set stores loc under pincode. Overwriting keeps the original position.
func (m *LocationMap) Set(pincode string, loc domain.Location) {
	if _, ok := m.values[pincode]; !ok {
		m.keys = append(m.keys, pincode)
	}
	m.values[pincode] = loc
}

// Get returns the location stored under pincode.
func (m *LocationMap) Get(pincode string) (domain.Location, bool) {
	loc, ok := m.values[pincode]
	return loc, ok
}

// Len returns the number of pincodes.
func (m *LocationMap) Len() int {
	return len(m.keys)
}

// Keys returns the pincodes in insertion order.
func (m *LocationMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *LocationMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		if err := enc.Encode(m.values[k]); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
