package pincode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"nexgen/internal/domain"
)

// PincodeLength is the length of an Indian postal index number.
const PincodeLength = 6

// Directory is an in-memory pincode lookup built from the map artifact.
// City and state names are stored lowercase.
type Directory struct {
	entries map[string]domain.Location
}

// NewDirectory builds a Directory from a location map.
func NewDirectory(locations *LocationMap) *Directory {
	d := &Directory{entries: make(map[string]domain.Location, locations.Len())}
	for _, k := range locations.Keys() {
		loc, _ := locations.Get(k)
		d.entries[k] = domain.Location{City: lowerString(loc.City), State: lowerString(loc.State)}
	}
	return d
}

// DecodeLocationMap decodes a map artifact, keeping the file's key order.
func DecodeLocationMap(data []byte) (*LocationMap, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: pincode map must be a JSON object", domain.ErrUnexpectedShape)
	}

	locations := NewLocationMap()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
		}
		key, _ := tok.(string)

		var loc domain.Location
		if err := dec.Decode(&loc); err != nil {
			return nil, fmt.Errorf("%w: pincode %s: %v", domain.ErrInvalidFormat, key, err)
		}
		locations.Set(key, loc)
	}
	return locations, nil
}

// Len returns the number of known pincodes.
func (d *Directory) Len() int {
	return len(d.entries)
}

// Lookup returns the title-cased city and state for pincode.
func (d *Directory) Lookup(pincode string) (*domain.PincodeLocation, error) {
	if err := ValidatePincode(pincode); err != nil {
		return nil, err
	}
	loc, ok := d.entries[pincode]
	if !ok {
		return nil, domain.ErrPincodeNotFound
	}
	return &domain.PincodeLocation{
		Pincode: pincode,
		City:    TitleCase(domain.TextValue(loc.City)),
		State:   TitleCase(domain.TextValue(loc.State)),
	}, nil
}

// ValidatePincode checks that pincode has exactly PincodeLength characters.
func ValidatePincode(pincode string) error {
	if utf8.RuneCountInString(pincode) != PincodeLength {
		return fmt.Errorf("%w: got %q", domain.ErrInvalidPincode, pincode)
	}
	return nil
}

// TitleCase upper-cases the first letter of every word, where a word is a
// run of ASCII letters, digits, and underscores.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevWord := false
	for _, r := range s {
		word := isWordRune(r)
		if word && !prevWord && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		b.WriteRune(r)
		prevWord = word
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func lowerString(v any) any {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.ToLower(s)
}
