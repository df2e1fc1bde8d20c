// Package pincode loads raw pincode datasets and derives the cleaned list and
// lookup map artifacts from them.
package pincode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/valyala/fastjson"

	"nexgen/internal/domain"
)

// ReadInput reads the raw dataset at path. A missing file yields
// domain.ErrInputNotFound and a zero-length file yields domain.ErrEmptyInput.
func ReadInput(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(content) == 0 {
		return nil, domain.ErrEmptyInput
	}
	return content, nil
}

// Document is a parsed dataset.
type Document struct {
	root *fastjson.Value
}

// Parse parses content as JSON. The parser alone tolerates some invalid
// input (leading zeros, unknown escapes, NaN), so content is validated first.
func Parse(content []byte) (*Document, error) {
	if err := fastjson.ValidateBytes(content); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}

	var p fastjson.Parser
	root, err := p.ParseBytes(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	return &Document{root: root}, nil
}

// Records classifies the document shape and returns its records.
//
//	{"records": [...]}        -> the records
//	{} / {"records": []}      -> domain.ErrNoRecords
//	{"records": "x"}          -> domain.ErrUnexpectedShape
//	{"records": [1]}          -> an unclassified error, the run fails
//	[...] or a scalar         -> domain.ErrUnexpectedShape
func (d *Document) Records() ([]Record, error) {
	if d.root.Type() != fastjson.TypeObject {
		return nil, domain.ErrUnexpectedShape
	}

	v := d.root.Get("records")
	if !truthy(v) {
		return nil, domain.ErrNoRecords
	}
	if v.Type() != fastjson.TypeArray {
		return nil, fmt.Errorf("%w: records is a %s", domain.ErrUnexpectedShape, v.Type())
	}

	items, err := v.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnexpectedShape, err)
	}
	records := make([]Record, len(items))
	for i, item := range items {
		if item.Type() != fastjson.TypeObject {
			return nil, fmt.Errorf("record %d is not an object (%s)", i, item.Type())
		}
		records[i] = Record{v: item}
	}
	return records, nil
}

// Record is one JSON object of the records array. Fields are read through
// accessors that report absence instead of failing.
type Record struct {
	v *fastjson.Value
}

func (r Record) field(name string) *fastjson.Value {
	if r.v == nil || r.v.Type() != fastjson.TypeObject {
		return nil
	}
	return r.v.Get(name)
}

// Pincode returns the record's pincode. ok is false when it is missing,
// null, or otherwise falsy ("", 0, false, [], {}).
func (r Record) Pincode() (value any, ok bool) {
	v := r.field("pincode")
	if !truthy(v) {
		return nil, false
	}
	return toGo(v), true
}

// District returns the district field, or nil when absent.
func (r Record) District() any {
	return toGo(r.field("district"))
}

// StateName returns the statename field, or nil when absent.
func (r Record) StateName() any {
	return toGo(r.field("statename"))
}

func truthy(v *fastjson.Value) bool {
	if v == nil {
		return false
	}
	switch v.Type() {
	case fastjson.TypeNull, fastjson.TypeFalse:
		return false
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return len(b) > 0
	case fastjson.TypeNumber:
		f, err := v.Float64()
		return err != nil || f != 0
	case fastjson.TypeArray:
		items, _ := v.Array()
		return len(items) > 0
	case fastjson.TypeObject:
		o, _ := v.Object()
		return o != nil && o.Len() > 0
	default:
		return true
	}
}

// toGo converts a fastjson value into the shapes encoding/json marshals back
// verbatim. Numbers keep their original text.
func toGo(v *fastjson.Value) any {
	if v == nil {
		return nil
	}
	switch v.Type() {
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return string(b)
	case fastjson.TypeNumber:
		raw := v.String()
		if json.Valid([]byte(raw)) {
			return json.Number(raw)
		}
		f, _ := v.Float64()
		return f
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeArray:
		items, _ := v.Array()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = toGo(item)
		}
		return out
	case fastjson.TypeObject:
		o, _ := v.Object()
		out := make(map[string]any, o.Len())
		o.Visit(func(key []byte, item *fastjson.Value) {
			out[string(key)] = toGo(item)
		})
		return out
	default:
		return nil
	}
}
