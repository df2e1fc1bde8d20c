package domain

import "errors"

// Mode selects which artifact a pipeline run produces.
type Mode string

const (
	ModeList Mode = "list"
	ModeMap  Mode = "map"
)

// RunOutcome is the terminal state reached by a pipeline run.
type RunOutcome string

const (
	OutcomeSuccess         RunOutcome = "success"
	OutcomeEmptyInput      RunOutcome = "empty_input"
	OutcomeNoRecords       RunOutcome = "no_records"
	OutcomeUnexpectedShape RunOutcome = "unexpected_shape"
	OutcomeInvalidFormat   RunOutcome = "invalid_format"
	OutcomeNotFound        RunOutcome = "not_found"
	OutcomeFailed          RunOutcome = "failed"
)

// OutcomeFor classifies a pipeline error into its terminal outcome.
func OutcomeFor(err error) RunOutcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrEmptyInput):
		return OutcomeEmptyInput
	case errors.Is(err, ErrNoRecords):
		return OutcomeNoRecords
	case errors.Is(err, ErrUnexpectedShape):
		return OutcomeUnexpectedShape
	case errors.Is(err, ErrInvalidFormat):
		return OutcomeInvalidFormat
	case errors.Is(err, ErrInputNotFound):
		return OutcomeNotFound
	default:
		return OutcomeFailed
	}
}

// WroteOutput reports whether a run with this outcome leaves an artifact behind.
func (o RunOutcome) WroteOutput() bool {
	return o == OutcomeSuccess || o == OutcomeNoRecords
}

// Zone is a shipping zone between two pincodes.
type Zone string

const (
	ZoneA Zone = "a" // same city
	ZoneB Zone = "b" // same or neighbouring state
	ZoneC Zone = "c" // metro to metro
	ZoneD Zone = "d" // rest of India
	ZoneE Zone = "e" // special destinations
)
