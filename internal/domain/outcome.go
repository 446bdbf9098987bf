package domain

import "encoding/json"

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeUnauthorized
	OutcomeFailure
)

// Outcome is the classified result of one backend call: exactly one of
// Success(data), Unauthorized, or Failure(cause). It is a value, not an
// error; transport and envelope failures are folded into the Failure
// variant instead of escaping as raw errors.
type Outcome struct {
	Kind  OutcomeKind
	Data  json.RawMessage
	Cause error
}

func Success(data json.RawMessage) Outcome {
	return Outcome{Kind: OutcomeSuccess, Data: data}
}

func Unauthorized() Outcome {
	return Outcome{Kind: OutcomeUnauthorized}
}

func Failure(cause error) Outcome {
	return Outcome{Kind: OutcomeFailure, Cause: cause}
}

func (o Outcome) IsSuccess() bool      { return o.Kind == OutcomeSuccess }
func (o Outcome) IsUnauthorized() bool { return o.Kind == OutcomeUnauthorized }
func (o Outcome) IsFailure() bool      { return o.Kind == OutcomeFailure }

// Decode unmarshals the success payload into v.
func (o Outcome) Decode(v any) error {
	if !o.IsSuccess() {
		return ErrValidation
	}
	if len(o.Data) == 0 {
		return nil
	}
	return json.Unmarshal(o.Data, v)
}
