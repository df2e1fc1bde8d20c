// Package artifact reads and writes the JSON artifacts under the data directory.
package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"nexgen/internal/domain"
	"nexgen/internal/pincode"
)

// EncodePretty writes v as 2-space indented JSON to w without HTML escaping.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteJSON overwrites path with the pretty-printed encoding of v, creating
// the parent directory when needed. v is fully encoded before the file is
// touched, so an encoding error leaves the previous artifact in place.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	if err := EncodePretty(&buf, v); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ReadList reads a cleaned list artifact. Numeric pincodes decode as json.Number.
func ReadList(path string) ([]domain.PincodeEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var entries []domain.PincodeEntry
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidFormat, filepath.Base(path), err)
	}
	return entries, nil
}

// ReadMap reads a map artifact, keeping its key order.
func ReadMap(path string) (*pincode.LocationMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return pincode.DecodeLocationMap(data)
}
