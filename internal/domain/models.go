package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PincodeEntry is one row of the cleaned list artifact. Values are kept as
// they appeared in the input: a numeric pincode stays a json.Number and an
// absent district or state name stays nil.
type PincodeEntry struct {
	Pincode any `json:"pincode"`
	City    any `json:"city"`
	State   any `json:"state"`
}

// Location is the value stored against a pincode in the map artifact.
type Location struct {
	City  any `json:"city"`
	State any `json:"state"`
}

// PincodeLocation is a resolved, display-ready lookup result.
type PincodeLocation struct {
	Pincode string `json:"pincode"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// ZoneResult is the outcome of classifying a shipment route.
type ZoneResult struct {
	Zone        Zone             `json:"zone"`
	Origin      *PincodeLocation `json:"origin,omitempty"`
	Destination *PincodeLocation `json:"destination,omitempty"`
}

// RunReport summarizes one pipeline run.
type RunReport struct {
	Mode       Mode       `json:"mode"`
	Outcome    RunOutcome `json:"outcome"`
	Total      int        `json:"total"`
	Unique     int        `json:"unique"`
	InputPath  string     `json:"input_path"`
	OutputPath string     `json:"output_path,omitempty"`
	Err        error      `json:"-"`
}

// TextValue renders a loosely-typed JSON value as plain text. Nil renders as "".
func TextValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
